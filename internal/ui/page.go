// internal/ui/page.go
package ui

import (
	"image"

	"valentine-card/internal/app"
	"valentine-card/internal/assets"
	"valentine-card/internal/config"
	"valentine-card/internal/event"
	"valentine-card/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Faces — начертания страницы под текущий dpr.
type Faces struct {
	Title   font.Face
	Regular font.Face
	Small   font.Face
}

// LoadFaces берет из менеджера начертания, масштабированные на dpr.
func LoadFaces(fonts *assets.FontManager, dpr float64) Faces {
	if fonts == nil {
		return Faces{}
	}
	return Faces{
		Title:   fonts.Face(config.TitleFontSize * dpr),
		Regular: fonts.Face(config.RegularFontSize * dpr),
		Small:   fonts.Face(config.SmallFontSize * dpr),
	}
}

// Page — прокручиваемая страница из двух экранов: шапка и вопрос.
type Page struct {
	Polaroid *Polaroid
	Scroll   Scroller

	OpenButton    Button
	ScrollButton  Button
	MusicButton   Button
	SparkleButton Button
	YesButton     Button
	NoButton      Button

	resultBox     image.Rectangle
	width, height int
	dpr           float64
}

// NewPage создает страницу и подписывает ее на запросы прокрутки и блокировку под письмом.
func NewPage(dispatcher *event.Dispatcher) *Page {
	p := &Page{
		Polaroid:      NewPolaroid(dispatcher),
		OpenButton:    Button{Label: "Open letter", Action: ActionOpenLetter},
		ScrollButton:  Button{Label: "I have a question", Action: ActionScroll, Ghost: true},
		MusicButton:   Button{Label: "Music", Action: ActionMusic, Ghost: true},
		SparkleButton: Button{Label: "Sparkle", Action: ActionSparkle, Ghost: true},
		YesButton:     Button{Label: "Yes", Action: ActionYes},
		NoButton:      Button{Label: "No", Action: ActionNo, Ghost: true},
		dpr:           1,
	}
	if dispatcher != nil {
		dispatcher.Subscribe(event.ScrollRequested, p)
		dispatcher.Subscribe(event.LetterOpened, p)
		dispatcher.Subscribe(event.LetterClosed, p)
	}
	return p
}

func (p *Page) OnEvent(e event.Event) {
	switch e.Type {
	case event.ScrollRequested:
		p.Scroll.ScrollTo(float64(p.height))
	case event.LetterOpened:
		p.Scroll.Lock(true)
	case event.LetterClosed:
		p.Scroll.Lock(false)
	}
}

// Layout раскладывает элементы под экран width×height в пикселях устройства.
func (p *Page) Layout(width, height int, dpr float64) {
	if dpr <= 0 {
		dpr = 1
	}
	p.width, p.height, p.dpr = width, height, dpr
	p.Scroll.SetMax(float64(height))

	pw := int(config.PolaroidWidth * dpr)
	ph := int(config.PolaroidHeight * dpr)
	cx := width / 2
	top := height * 26 / 100
	p.Polaroid.Rect = image.Rect(cx-pw/2, top, cx+pw/2, top+ph)

	bw := int(config.ButtonWidth * dpr)
	bh := int(config.ButtonHeight * dpr)
	gap := int(config.ButtonSpacing * dpr)

	hero := []*Button{&p.OpenButton, &p.ScrollButton, &p.MusicButton, &p.SparkleButton}
	rowY := top + ph + gap*2
	perRow := len(hero)
	for perRow > 1 && perRow*bw+(perRow-1)*gap > width-2*gap {
		perRow--
	}
	for i, b := range hero {
		row, col := i/perRow, i%perRow
		inRow := min(perRow, len(hero)-row*perRow)
		rowW := inRow*bw + (inRow-1)*gap
		x := cx - rowW/2 + col*(bw+gap)
		y := rowY + row*(bh+gap)
		b.Rect = image.Rect(x, y, x+bw, y+bh)
	}

	qy := height + height*45/100
	p.YesButton.Rect = image.Rect(cx-gap/2-bw, qy, cx-gap/2, qy+bh)
	p.NoButton.Rect = image.Rect(cx+gap/2, qy, cx+gap/2+bw, qy+bh)

	boxW := min(int(config.ModalWidth*dpr), width-4*gap)
	boxY := qy + bh + gap*2
	p.resultBox = image.Rect(cx-boxW/2, boxY, cx+boxW/2, boxY+bh*2)
}

func (p *Page) buttons() []*Button {
	return []*Button{
		&p.OpenButton, &p.ScrollButton, &p.MusicButton, &p.SparkleButton,
		&p.YesButton, &p.NoButton,
	}
}

// HitTest возвращает действие для клика в экранных координатах.
func (p *Page) HitTest(x, y int) Action {
	return hitTest(p.buttons(), x, y+p.offset())
}

func (p *Page) Update(deltaTime float64) {
	p.Scroll.Update()
	p.Polaroid.Update(deltaTime)
}

func (p *Page) offset() int {
	return int(p.Scroll.Offset())
}

// Draw рисует страницу поверх фоновых сердечек. cursor в экранных координатах.
func (p *Page) Draw(screen *ebiten.Image, filler *render.Filler, card *app.Card, faces Faces, cursor image.Point) {
	off := p.offset()
	cx := p.width / 2
	p.MusicButton.Label = card.MusicLabel()

	// Полупрозрачная подложка второй секции
	var tint vector.Path
	top := float32(p.height - off)
	tint.MoveTo(0, top)
	tint.LineTo(float32(p.width), top)
	tint.LineTo(float32(p.width), top+float32(p.height))
	tint.LineTo(0, top+float32(p.height))
	tint.Close()
	filler.Fill(screen, &tint, render.WithAlpha(render.HSLA(345, 1, 0.95, 1), 0.55))

	if faces.Title != nil {
		maxW := p.width - int(64*p.dpr)
		drawLines(screen, WrapText(faces.Title, card.Content.Title, maxW), faces.Title, cx, p.height*8/100-off, config.TitleColor)
		drawLines(screen, WrapText(faces.Title, card.Content.Question, maxW), faces.Title, cx, p.height+p.height*22/100-off, config.TitleColor)
	}
	if faces.Regular != nil {
		maxW := p.width - int(64*p.dpr)
		drawLines(screen, WrapText(faces.Regular, card.Content.Subtitle, maxW), faces.Regular, cx, p.height*16/100-off, config.MutedTextColor)
	}

	p.Polaroid.Draw(screen, filler, off, p.dpr)

	shift := image.Pt(0, -off)
	for _, b := range p.buttons() {
		moved := *b
		moved.Rect = b.Rect.Add(shift)
		moved.Draw(screen, filler, faces.Regular, moved.Contains(cursor.X, cursor.Y), p.dpr)
	}

	p.drawResult(screen, filler, card.Message(), faces.Regular, p.resultBox.Add(shift))
}

func (p *Page) drawResult(screen *ebiten.Image, filler *render.Filler, message string, face font.Face, box image.Rectangle) {
	var path vector.Path
	render.AppendRoundedRect(&path,
		float32(box.Min.X), float32(box.Min.Y), float32(box.Dx()), float32(box.Dy()),
		float32(config.ButtonRadius*p.dpr))
	filler.Fill(screen, &path, config.ResultBoxColor)
	if face == nil || message == "" {
		return
	}
	lines := WrapText(face, message, box.Dx()-int(24*p.dpr))
	y := box.Min.Y + (box.Dy()-len(lines)*lineHeight(face))/2 - lineHeight(face)/4
	drawLines(screen, lines, face, (box.Min.X+box.Max.X)/2, y, config.TextColor)
}

// internal/ui/modal.go
package ui

import (
	"image"

	"valentine-card/internal/app"
	"valentine-card/internal/config"
	"valentine-card/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// LetterModal — письмо поверх страницы с затемненным фоном.
type LetterModal struct {
	Rect          image.Rectangle
	CloseButton   Button
	SealButton    Button
	CopyButton    Button
	width, height int
	dpr           float64
}

func NewLetterModal() *LetterModal {
	return &LetterModal{
		CloseButton: Button{Label: "Close", Action: ActionCloseLetter, Ghost: true},
		SealButton:  Button{Label: "Seal it", Action: ActionSeal},
		CopyButton:  Button{Label: "Copy letter", Action: ActionCopy, Ghost: true},
	}
}

// Layout раскладывает письмо по центру экрана width×height.
func (m *LetterModal) Layout(width, height int, dpr float64) {
	m.width, m.height, m.dpr = width, height, dpr
	margin := int(16 * dpr)
	w := min(int(config.ModalWidth*dpr), width-2*margin)
	h := min(int(config.ModalHeight*dpr), height-2*margin)
	x := (width - w) / 2
	y := (height - h) / 2
	m.Rect = image.Rect(x, y, x+w, y+h)

	pad := int(config.ModalPadding * dpr)
	bw := int(config.ButtonWidth * dpr * 0.7)
	bh := int(config.ButtonHeight * dpr)
	gap := int(config.ButtonSpacing * dpr)

	m.CloseButton.Rect = image.Rect(m.Rect.Max.X-pad-bw*2/3, m.Rect.Min.Y+pad/2, m.Rect.Max.X-pad/2, m.Rect.Min.Y+pad/2+bh*3/4)
	bottom := m.Rect.Max.Y - pad
	m.SealButton.Rect = image.Rect(m.Rect.Min.X+pad, bottom-bh, m.Rect.Min.X+pad+bw, bottom)
	m.CopyButton.Rect = image.Rect(m.Rect.Min.X+pad+bw+gap, bottom-bh, m.Rect.Min.X+pad+2*bw+gap, bottom)
}

func (m *LetterModal) buttons() []*Button {
	return []*Button{&m.CloseButton, &m.SealButton, &m.CopyButton}
}

// HitTest возвращает действие по клику. Клик мимо письма (по фону) закрывает его.
func (m *LetterModal) HitTest(x, y int) Action {
	if a := hitTest(m.buttons(), x, y); a != ActionNone {
		return a
	}
	if !image.Pt(x, y).In(m.Rect) {
		return ActionCloseLetter
	}
	return ActionNone
}

func (m *LetterModal) Draw(screen *ebiten.Image, filler *render.Filler, card *app.Card, faces Faces, cursor image.Point) {
	if m.Rect.Empty() {
		return
	}
	var backdrop vector.Path
	backdrop.MoveTo(0, 0)
	backdrop.LineTo(float32(m.width), 0)
	backdrop.LineTo(float32(m.width), float32(m.height))
	backdrop.LineTo(0, float32(m.height))
	backdrop.Close()
	filler.Fill(screen, &backdrop, config.BackdropColor)

	var body vector.Path
	render.AppendRoundedRect(&body,
		float32(m.Rect.Min.X), float32(m.Rect.Min.Y),
		float32(m.Rect.Dx()), float32(m.Rect.Dy()),
		float32(config.ButtonRadius*2*m.dpr))
	filler.Fill(screen, &body, config.ModalColor)

	pad := int(config.ModalPadding * m.dpr)
	if faces.Title != nil {
		text.Draw(screen, "My letter to you", faces.Title, m.Rect.Min.X+pad, m.Rect.Min.Y+pad+lineHeight(faces.Title), config.TitleColor)
	}

	if faces.Regular != nil {
		y := m.Rect.Min.Y + pad + lineHeight(faces.Regular)*3
		maxW := m.Rect.Dx() - 2*pad
		for _, para := range card.Content.Letter {
			for _, l := range WrapText(faces.Regular, para, maxW) {
				y += lineHeight(faces.Regular)
				text.Draw(screen, l, faces.Regular, m.Rect.Min.X+pad, y, config.TextColor)
			}
			y += lineHeight(faces.Regular) / 2
		}
		sig := card.Content.Signature
		sigW := font.MeasureString(faces.Regular, sig).Ceil()
		text.Draw(screen, sig, faces.Regular, m.Rect.Max.X-pad-sigW, y+lineHeight(faces.Regular)*3/2, config.TitleColor)
	}

	for _, b := range m.buttons() {
		b.Draw(screen, filler, faces.Small, b.Contains(cursor.X, cursor.Y), m.dpr)
	}
}

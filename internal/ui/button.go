// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"valentine-card/internal/config"
	"valentine-card/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Action — что делает кнопка. Страница возвращает его при клике,
// а состояние открытки вызывает нужный обработчик.
type Action int

const (
	ActionNone Action = iota
	ActionOpenLetter
	ActionCloseLetter
	ActionScroll
	ActionMusic
	ActionSparkle
	ActionYes
	ActionNo
	ActionSeal
	ActionCopy
)

// Button представляет кликабельную кнопку со скругленными углами.
type Button struct {
	Rect   image.Rectangle
	Label  string
	Action Action
	Ghost  bool // светлая кнопка с обводкой вместо заливки
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку. hovered подсвечивает ее под курсором.
func (b *Button) Draw(screen *ebiten.Image, filler *render.Filler, face font.Face, hovered bool, dpr float64) {
	if b.Rect.Empty() {
		return
	}
	var path vector.Path
	render.AppendRoundedRect(&path,
		float32(b.Rect.Min.X), float32(b.Rect.Min.Y),
		float32(b.Rect.Dx()), float32(b.Rect.Dy()),
		float32(config.ButtonRadius*dpr))

	var bg, fg color.Color = config.ButtonColor, config.ButtonTextColor
	if hovered {
		bg = config.ButtonHoverColor
	}
	if b.Ghost {
		bg, fg = config.ButtonGhostColor, config.TitleColor
		if hovered {
			bg = config.SectionTint
		}
	}
	filler.Fill(screen, &path, bg)
	if b.Ghost {
		filler.Stroke(screen, &path, float32(1.5*dpr), config.ButtonColor)
	}
	drawCentered(screen, b.Label, face, b.Rect, fg)
}

// drawCentered рисует одну строку по центру прямоугольника.
func drawCentered(screen *ebiten.Image, s string, face font.Face, r image.Rectangle, clr color.Color) {
	if face == nil || s == "" {
		return
	}
	bounds := text.BoundString(face, s)
	x := r.Min.X + (r.Dx()-bounds.Dx())/2 - bounds.Min.X
	y := r.Min.Y + (r.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}

// hitTest возвращает действие первой кнопки под точкой.
func hitTest(buttons []*Button, x, y int) Action {
	for _, b := range buttons {
		if b.Contains(x, y) {
			return b.Action
		}
	}
	return ActionNone
}

package render

import (
	"image/color"

	"valentine-card/internal/component"
	"valentine-card/internal/config"
	"valentine-card/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HeartRenderer рисует фоновые сердечки и конфетти.
type HeartRenderer struct {
	filler *Filler
	path   vector.Path
}

func NewHeartRenderer() *HeartRenderer {
	return &HeartRenderer{filler: NewFiller()}
}

// DrawHearts рисует весь пул. Без поверхности (screen == nil) ничего не делает.
func (r *HeartRenderer) DrawHearts(screen *ebiten.Image, hearts []component.Heart, dpr float64) {
	if screen == nil {
		return
	}
	blur := config.HeartGlowBlur * dpr
	for i := range hearts {
		h := &hearts[i]
		base := HSLA(h.Hue, config.HeartSaturation, config.HeartLightness, 1)

		// Свечение: несколько расширенных полупрозрачных копий под сердцем
		for k := config.HeartGlowLayers; k >= 1; k-- {
			spread := blur * float64(k) / config.HeartGlowLayers
			glow := WithAlpha(base, h.Alpha*config.HeartGlowAlpha/config.HeartGlowLayers)
			r.fillHeart(screen, h.X, h.Y, h.Size+spread, h.Rot, glow)
		}
		r.fillHeart(screen, h.X, h.Y, h.Size, h.Rot, WithAlpha(base, h.Alpha))
	}
}

// DrawConfetti рисует все активные залпы поверх страницы.
func (r *HeartRenderer) DrawConfetti(screen *ebiten.Image, layers []*component.ConfettiLayer, dpr float64) {
	if screen == nil {
		return
	}
	bounds := screen.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())
	shadowY := config.ConfettiShadowY * dpr

	for _, layer := range layers {
		for _, piece := range layer.Pieces {
			y, rot, alpha := system.ConfettiPose(piece, layer.Age, height)
			if y < -height || y > height*1.2 {
				continue
			}
			x := piece.Left * width
			size := piece.Size * dpr
			r.drawPiece(screen, piece.Kind, x, y+shadowY, size, rot, 1, true)
			r.drawPiece(screen, piece.Kind, x, y, size, rot, alpha, false)
		}
	}
}

func (r *HeartRenderer) drawPiece(screen *ebiten.Image, kind component.ConfettiKind, x, y, size, rot, alpha float64, shadow bool) {
	shadowColor := WithAlpha(config.ConfettiShadow, alpha)
	switch kind {
	case component.ConfettiSparkle:
		clr := WithAlpha(config.SparkleColor, alpha)
		if shadow {
			clr = shadowColor
		}
		r.path = vector.Path{}
		AppendSparkle(&r.path, x, y, size*0.5, rot)
		r.filler.Fill(screen, &r.path, clr)

	case component.ConfettiArrowHeart:
		clr := HSLA(config.ArrowHeartHue, config.HeartSaturation, 0.6, alpha)
		arrow := WithAlpha(config.ArrowColor, alpha)
		if shadow {
			clr, arrow = shadowColor, shadowColor
		}
		r.fillHeart(screen, x, y, size, rot, clr)
		tail := HeartOutline(x, y, size*0.9, rot+0.8)
		r.path = vector.Path{}
		r.path.MoveTo(float32(tail[5].X), float32(tail[5].Y))
		r.path.LineTo(float32(tail[2].X), float32(tail[2].Y))
		r.filler.Stroke(screen, &r.path, float32(size*0.08), arrow)

	default:
		clr := HSLA(config.ConfettiHeartHue, config.HeartSaturation, config.HeartLightness, alpha)
		if shadow {
			r.fillHeart(screen, x, y, size, rot, shadowColor)
			return
		}
		r.fillHeart(screen, x, y, size, rot, clr)
		r.path = vector.Path{}
		AppendSparkle(&r.path, x+size*0.35, y-size*0.35, size*0.18, 0)
		r.filler.Fill(screen, &r.path, WithAlpha(config.SparkleColor, alpha))
	}
}

func (r *HeartRenderer) fillHeart(screen *ebiten.Image, x, y, size, rot float64, clr color.Color) {
	r.path = vector.Path{}
	AppendHeart(&r.path, x, y, size, rot)
	r.filler.Fill(screen, &r.path, clr)
}

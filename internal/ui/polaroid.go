// internal/ui/polaroid.go
package ui

import (
	"image"
	"math"

	"valentine-card/internal/config"
	"valentine-card/internal/event"
	"valentine-card/internal/utils"
	"valentine-card/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Polaroid — фото-карточка в шапке страницы, которая пульсирует на "да".
type Polaroid struct {
	Rect     image.Rectangle
	age      float64
	pulsing  bool
	path     vector.Path
	photoBox vector.Path
}

func NewPolaroid(dispatcher *event.Dispatcher) *Polaroid {
	p := &Polaroid{}
	if dispatcher != nil {
		dispatcher.Subscribe(event.HeroPulse, p)
	}
	return p
}

func (p *Polaroid) OnEvent(e event.Event) {
	if e.Type == event.HeroPulse {
		p.Pulse()
	}
}

// Pulse запускает анимацию заново, даже если предыдущая еще идет.
func (p *Polaroid) Pulse() {
	p.age = 0
	p.pulsing = true
}

func (p *Polaroid) Update(deltaTime float64) {
	if !p.pulsing {
		return
	}
	p.age += deltaTime
	if p.age >= config.PulseDuration {
		p.pulsing = false
		p.age = 0
	}
}

// Pose возвращает текущий поворот (радианы) и масштаб карточки.
func (p *Polaroid) Pose() (rot, scale float64) {
	if !p.pulsing {
		return PulsePose(0)
	}
	return PulsePose(p.age / config.PulseDuration)
}

// PulsePose — кадры пульса для доли анимации t в [0, 1]:
// поворот -2°→2°→-2°, масштаб 1→1.03→1, время с замедлением в конце.
func PulsePose(t float64) (rot, scale float64) {
	e := utils.EaseOut(t)
	if e < 0.5 {
		u := e * 2
		return utils.Lerp(-config.PulseAngle, config.PulseAngle, u), utils.Lerp(1, 1+config.PulseScale, u)
	}
	u := (e - 0.5) * 2
	return utils.Lerp(config.PulseAngle, -config.PulseAngle, u), utils.Lerp(1+config.PulseScale, 1, u)
}

// Draw рисует карточку, смещенную на offsetY.
func (p *Polaroid) Draw(screen *ebiten.Image, filler *render.Filler, offsetY int, dpr float64) {
	if p.Rect.Empty() {
		return
	}
	rot, scale := p.Pose()
	r := p.Rect.Add(image.Pt(0, -offsetY))
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	w := float64(r.Dx()) * scale
	h := float64(r.Dy()) * scale
	border := 14 * dpr * scale

	p.path = vector.Path{}
	render.AppendRotatedRect(&p.path, cx, cy, w, h, rot)
	filler.Fill(screen, &p.path, config.PolaroidColor)

	// Фото смещено вверх: снизу у полароида поле шире
	p.photoBox = vector.Path{}
	photoW := w - 2*border
	photoH := h - 2*border - 3*border
	photoCY := -h/2 + border + photoH/2
	sin, cos := math.Sincos(rot)
	render.AppendRotatedRect(&p.photoBox, cx-photoCY*sin, cy+photoCY*cos, photoW, photoH, rot)
	filler.Fill(screen, &p.photoBox, config.PhotoColor)

	// Сердце на фото
	var heart vector.Path
	render.AppendHeart(&heart, cx-photoCY*sin, cy+photoCY*cos, photoW*0.45, rot)
	filler.Fill(screen, &heart, render.HSLA(config.ConfettiHeartHue, 0.9, 0.6, 1))
}

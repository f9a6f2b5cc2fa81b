package ui

import (
	"valentine-card/internal/config"
	"valentine-card/internal/utils"
)

// Scroller плавно ведет смещение страницы к цели, как выезд инфо-панели.
type Scroller struct {
	current float64
	target  float64
	max     float64
	locked  bool
}

// SetMax задает максимальное смещение и поджимает текущее под него.
func (s *Scroller) SetMax(max float64) {
	if max < 0 {
		max = 0
	}
	s.max = max
	s.current = utils.Clamp(s.current, 0, max)
	s.target = utils.Clamp(s.target, 0, max)
}

// Lock запрещает прокрутку колесом, пока открыто письмо.
func (s *Scroller) Lock(locked bool) {
	s.locked = locked
}

func (s *Scroller) Locked() bool { return s.locked }

// Wheel сдвигает цель на delta пикселей (больше нуля вниз).
func (s *Scroller) Wheel(delta float64) {
	if s.locked {
		return
	}
	s.target = utils.Clamp(s.target+delta, 0, s.max)
}

// ScrollTo задает цель плавной прокрутки.
func (s *Scroller) ScrollTo(y float64) {
	s.target = utils.Clamp(y, 0, s.max)
}

// Update приближает смещение к цели на один кадр.
func (s *Scroller) Update() {
	s.current = utils.Approach(s.current, s.target, config.ScrollEase, config.ScrollSnap)
}

func (s *Scroller) Offset() float64 { return s.current }

func (s *Scroller) Target() float64 { return s.target }

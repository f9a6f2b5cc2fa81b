package system

import (
	"math"

	"valentine-card/internal/component"
	"valentine-card/internal/config"
	"valentine-card/internal/utils"
)

// Rand — источник случайных чисел в [0, 1). PRNGService ему удовлетворяет.
type Rand interface {
	Float64() float64
}

// Range — замкнутый числовой диапазон параметра.
type Range struct {
	Min, Max float64
}

// Contains сообщает, попадает ли v в [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// HeartParams — все константы анимации сердечек. Величины с пометкой dpr
// умножаются на device pixel ratio в момент использования.
type HeartParams struct {
	Count            int
	SpawnSize        Range // × dpr
	SpawnSpeed       Range // × dpr
	SpawnDrift       Range // × dpr
	SpawnSpin        Range
	Alpha            Range
	Hue              Range
	Sway             Range   // × dpr, шум горизонтальной скорости за кадр
	MaxDrift         float64 // × dpr, |vx| не превышает это значение
	RecycleThreshold float64 // × dpr
	RecycleDepth     Range   // × dpr, отступ под нижним краем при сбросе
	RecycleSpeed     Range   // × dpr
}

// DefaultHeartParams возвращает параметры из config.
func DefaultHeartParams() HeartParams {
	spawnSpeed := Range{config.HeartSpeedMin, config.HeartSpeedMax}
	return HeartParams{
		Count:            config.HeartCount,
		SpawnSize:        Range{config.HeartSizeMin, config.HeartSizeMax},
		SpawnSpeed:       spawnSpeed,
		SpawnDrift:       Range{config.HeartDriftMin, config.HeartDriftMax},
		SpawnSpin:        Range{config.HeartSpinMin, config.HeartSpinMax},
		Alpha:            Range{config.HeartAlphaMin, config.HeartAlphaMax},
		Hue:              Range{config.HeartHueMin, config.HeartHueMax},
		Sway:             Range{config.HeartSwayMin, config.HeartSwayMax},
		MaxDrift:         config.HeartMaxDrift,
		RecycleThreshold: config.HeartRecycleThreshold,
		RecycleDepth:     Range{config.HeartRecycleDepthMin, config.HeartRecycleDepthMax},
		RecycleSpeed:     spawnSpeed,
	}
}

// HeartSystem владеет фиксированным пулом сердечек и двигает их по кадрам.
// Пул выделяется один раз в Init; сердца, ушедшие за верхний край,
// перезапускаются снизу на месте, без удаления из пула.
type HeartSystem struct {
	params HeartParams
	rng    Rand
	hearts []component.Heart
	width  float64
	height float64
	dpr    float64
	ready  bool
}

// NewHeartSystem создает систему. Пул пуст до вызова Init.
func NewHeartSystem(params HeartParams, rng Rand) *HeartSystem {
	return &HeartSystem{params: params, rng: rng, dpr: 1}
}

// Init выделяет пул и раскидывает сердца по всему экрану,
// чтобы первый кадр уже был заполнен.
func (s *HeartSystem) Init(width, height, dpr float64) {
	s.Resize(width, height, dpr)
	s.hearts = make([]component.Heart, s.params.Count)
	for i := range s.hearts {
		s.spawn(&s.hearts[i], s.uniform(Range{0, s.width}), s.uniform(Range{0, s.height}))
	}
	s.ready = true
}

// Resize запоминает новый размер экрана в физических пикселях.
// Позиции сердец не пересчитываются: вышедшие за границы просто уйдут на повтор.
func (s *HeartSystem) Resize(width, height, dpr float64) {
	if dpr <= 0 {
		dpr = 1
	}
	s.width, s.height, s.dpr = width, height, dpr
}

// Step продвигает анимацию на один кадр и возвращает число перезапущенных сердец.
func (s *HeartSystem) Step() int {
	if !s.ready {
		return 0
	}
	p := &s.params
	maxDrift := p.MaxDrift * s.dpr
	threshold := p.RecycleThreshold * s.dpr

	recycled := 0
	for i := range s.hearts {
		h := &s.hearts[i]
		h.X += h.VX
		h.Y -= h.VY
		h.Rot += h.VR

		h.VX += s.uniform(p.Sway) * s.dpr
		h.VX = utils.Clamp(h.VX, -maxDrift, maxDrift)

		if h.Y < threshold {
			s.recycle(h)
			recycled++
		}
	}
	return recycled
}

// Dispose освобождает пул. После этого Step и отрисовка ничего не делают.
func (s *HeartSystem) Dispose() {
	s.hearts = nil
	s.ready = false
}

// Ready сообщает, инициализирован ли пул.
func (s *HeartSystem) Ready() bool {
	return s.ready
}

// Hearts возвращает пул для отрисовки. Вызывающий не должен его менять.
func (s *HeartSystem) Hearts() []component.Heart {
	return s.hearts
}

// Viewport возвращает текущий размер экрана и dpr.
func (s *HeartSystem) Viewport() (width, height, dpr float64) {
	return s.width, s.height, s.dpr
}

// Params возвращает параметры анимации.
func (s *HeartSystem) Params() HeartParams {
	return s.params
}

func (s *HeartSystem) spawn(h *component.Heart, x, y float64) {
	p := &s.params
	*h = component.Heart{
		X:     x,
		Y:     y,
		VY:    s.uniform(p.SpawnSpeed) * s.dpr,
		VX:    s.uniform(p.SpawnDrift) * s.dpr,
		Size:  s.uniform(p.SpawnSize) * s.dpr,
		Rot:   s.uniform(Range{0, 2 * math.Pi}),
		VR:    s.uniform(p.SpawnSpin),
		Alpha: s.uniform(p.Alpha),
		Hue:   s.uniform(p.Hue),
	}
}

// recycle переносит сердце под нижний край. Rot, VR и VX не трогаем,
// чтобы вращение и покачивание не прыгали.
func (s *HeartSystem) recycle(h *component.Heart) {
	p := &s.params
	h.Y = s.height + s.uniform(p.RecycleDepth)*s.dpr
	h.X = s.uniform(Range{0, s.width})
	h.VY = s.uniform(p.RecycleSpeed) * s.dpr
	h.Alpha = s.uniform(p.Alpha)
	h.Size = s.uniform(p.SpawnSize) * s.dpr
}

func (s *HeartSystem) uniform(r Range) float64 {
	return r.Min + s.rng.Float64()*(r.Max-r.Min)
}

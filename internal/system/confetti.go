package system

import (
	"math"

	"valentine-card/internal/component"
	"valentine-card/internal/config"
	"valentine-card/internal/event"
	"valentine-card/internal/utils"
)

// DefaultConfettiCount — размер залпа, если число не указано.
const DefaultConfettiCount = 140

// ConfettiSystem управляет залпами конфетти. Каждый залп живет
// config.ConfettiLifetime секунд и затем удаляется целиком.
type ConfettiSystem struct {
	rng    Rand
	layers []*component.ConfettiLayer
}

// NewConfettiSystem создает систему и подписывает ее на ConfettiRequested.
func NewConfettiSystem(rng Rand, dispatcher *event.Dispatcher) *ConfettiSystem {
	s := &ConfettiSystem{rng: rng}
	if dispatcher != nil {
		dispatcher.Subscribe(event.ConfettiRequested, s)
	}
	return s
}

func (s *ConfettiSystem) OnEvent(e event.Event) {
	if e.Type != event.ConfettiRequested {
		return
	}
	count, _ := e.Data.(int)
	s.Burst(count)
}

// Burst добавляет новый слой из count кусочков.
func (s *ConfettiSystem) Burst(count int) *component.ConfettiLayer {
	if count <= 0 {
		count = DefaultConfettiCount
	}
	layer := &component.ConfettiLayer{
		Pieces:   make([]component.ConfettiPiece, count),
		Lifetime: config.ConfettiLifetime,
	}
	for i := range layer.Pieces {
		layer.Pieces[i] = component.ConfettiPiece{
			Kind:     s.kind(),
			Left:     s.rng.Float64(),
			Duration: s.between(config.ConfettiDurationMin, config.ConfettiDurationMax),
			Size:     s.between(config.ConfettiSizeMin, config.ConfettiSizeMax),
		}
	}
	s.layers = append(s.layers, layer)
	return layer
}

// Update старит слои и убирает истекшие.
func (s *ConfettiSystem) Update(deltaTime float64) {
	alive := s.layers[:0]
	for _, layer := range s.layers {
		layer.Age += deltaTime
		if layer.Age < layer.Lifetime {
			alive = append(alive, layer)
		}
	}
	for i := len(alive); i < len(s.layers); i++ {
		s.layers[i] = nil
	}
	s.layers = alive
}

// Layers возвращает активные слои.
func (s *ConfettiSystem) Layers() []*component.ConfettiLayer {
	return s.layers
}

// Clear убирает все слои сразу.
func (s *ConfettiSystem) Clear() {
	s.layers = nil
}

// ConfettiPose считает положение кусочка через age секунд после залпа:
// смещение по y от верха экрана, поворот и прозрачность.
// Падение линейное, после окончания анимации кусочек остается в конечной точке.
func ConfettiPose(piece component.ConfettiPiece, age, viewHeight float64) (y, rot, alpha float64) {
	progress := 1.0
	if piece.Duration > 0 {
		progress = utils.Clamp(age/piece.Duration, 0, 1)
	}
	vh := viewHeight / 100
	y = config.ConfettiTopVH*vh + utils.Lerp(config.ConfettiStartVH, config.ConfettiEndVH, progress)*vh
	rot = 2 * math.Pi * progress
	alpha = utils.Lerp(1, config.ConfettiEndAlpha, progress)
	return y, rot, alpha
}

func (s *ConfettiSystem) kind() component.ConfettiKind {
	if s.rng.Float64() < config.ConfettiHeartChance {
		return component.ConfettiSparklingHeart
	}
	if s.rng.Float64() < 0.5 {
		return component.ConfettiSparkle
	}
	return component.ConfettiArrowHeart
}

func (s *ConfettiSystem) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

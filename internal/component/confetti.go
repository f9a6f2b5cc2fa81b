package component

// ConfettiKind — вид кусочка конфетти
type ConfettiKind int

const (
	ConfettiSparklingHeart ConfettiKind = iota
	ConfettiSparkle
	ConfettiArrowHeart
)

// ConfettiPiece описывает один падающий кусочек.
type ConfettiPiece struct {
	Kind     ConfettiKind
	Left     float64 // доля ширины экрана, [0, 1)
	Duration float64 // секунды
	Size     float64 // логические пиксели
}

// ConfettiLayer — слой одного залпа. Удаляется целиком по истечении Lifetime.
type ConfettiLayer struct {
	Pieces   []ConfettiPiece
	Age      float64
	Lifetime float64
}

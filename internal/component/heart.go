package component

// Heart — одна ячейка пула летящих сердечек.
// Координаты и скорости в физических пикселях (CSS px × dpr).
type Heart struct {
	X, Y   float64
	VX, VY float64 // VY положительная, сердце движется вверх (y уменьшается)
	Size   float64
	Rot    float64 // радианы
	VR     float64
	Alpha  float64
	Hue    float64
}

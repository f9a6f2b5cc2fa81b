package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает значение диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// EaseOut — кривая замедления в конце (аналог cubic-bezier ease-out)
func EaseOut(t float64) float64 {
	t = Clamp(t, 0, 1)
	return 1 - (1-t)*(1-t)*(1-t)
}

// Approach сдвигает current к target на долю factor и защёлкивает значение,
// когда до цели остаётся меньше snap.
func Approach(current, target, factor, snap float64) float64 {
	diff := target - current
	if math.Abs(diff) < snap {
		return target
	}
	return current + diff*factor
}

package render

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// TestHeartOutlineClosed tests that the outline starts and ends at the same point
func TestHeartOutlineClosed(t *testing.T) {
	p := HeartOutline(100, 50, 20, 1.3)
	if !near(p[0].X, p[6].X) || !near(p[0].Y, p[6].Y) {
		t.Errorf("Expected closed outline, start %v end %v", p[0], p[6])
	}
}

// TestHeartOutlineSymmetric tests left/right mirror symmetry without rotation
func TestHeartOutlineSymmetric(t *testing.T) {
	p := HeartOutline(0, 0, 10, 0)
	pairs := [][2]int{{1, 5}, {2, 4}}
	for _, pr := range pairs {
		a, b := p[pr[0]], p[pr[1]]
		if !near(a.X, -b.X) || !near(a.Y, b.Y) {
			t.Errorf("Expected points %d and %d mirrored, got %v and %v", pr[0], pr[1], a, b)
		}
	}
	// Нижний острый кончик на оси симметрии
	if !near(p[3].X, 0) || !near(p[3].Y, 5.5) {
		t.Errorf("Expected cusp at (0, 5.5), got %v", p[3])
	}
}

// TestHeartOutlineRotation tests that rotation keeps distances to the center
func TestHeartOutlineRotation(t *testing.T) {
	plain := HeartOutline(30, 40, 12, 0)
	rotated := HeartOutline(30, 40, 12, math.Pi/3)
	for i := range plain {
		d1 := math.Hypot(plain[i].X-30, plain[i].Y-40)
		d2 := math.Hypot(rotated[i].X-30, rotated[i].Y-40)
		if math.Abs(d1-d2) > 1e-6 {
			t.Errorf("Point %d: expected distance %v, got %v", i, d1, d2)
		}
	}

	half := HeartOutline(0, 0, 10, math.Pi)
	if !near(half[3].X, 0) || math.Abs(half[3].Y+5.5) > 1e-6 {
		t.Errorf("Expected cusp flipped to (0, -5.5), got %v", half[3])
	}
}

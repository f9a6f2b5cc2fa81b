package ui

import (
	"math"
	"testing"

	"valentine-card/internal/assets"
	"valentine-card/internal/config"
	"valentine-card/internal/event"
)

// TestPulsePose tests the keyframes of the polaroid pulse
func TestPulsePose(t *testing.T) {
	tests := []struct {
		name       string
		t          float64
		rot, scale float64
	}{
		{"start", 0, -config.PulseAngle, 1},
		{"end", 1, -config.PulseAngle, 1},
		{"past end", 2, -config.PulseAngle, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rot, scale := PulsePose(tt.t)
			if math.Abs(rot-tt.rot) > 1e-9 || math.Abs(scale-tt.scale) > 1e-9 {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.rot, tt.scale, rot, scale)
			}
		})
	}

	// Пик наступает раньше середины из-за замедления в конце
	peak := 1 - math.Cbrt(0.5)
	rot, scale := PulsePose(peak)
	if math.Abs(rot-config.PulseAngle) > 1e-9 || math.Abs(scale-(1+config.PulseScale)) > 1e-9 {
		t.Errorf("Expected peak (%v, %v) at t=%v, got (%v, %v)", config.PulseAngle, 1+config.PulseScale, peak, rot, scale)
	}
	for i := 0; i <= 100; i++ {
		_, s := PulsePose(float64(i) / 100)
		if s < 1-1e-9 || s > 1+config.PulseScale+1e-9 {
			t.Fatalf("Expected scale within [1, %v], got %v", 1+config.PulseScale, s)
		}
	}
}

// TestPolaroidPulseEvent tests that HeroPulse restarts the animation and it ends after 650ms
func TestPolaroidPulseEvent(t *testing.T) {
	d := event.NewDispatcher()
	p := NewPolaroid(d)

	d.Emit(event.HeroPulse, nil)
	p.Update(0.3)
	if !p.pulsing {
		t.Fatal("Expected pulse running at 0.3s")
	}
	d.Emit(event.HeroPulse, nil)
	if p.age != 0 {
		t.Errorf("Expected a new pulse to restart, got age %v", p.age)
	}
	p.Update(0.4)
	p.Update(0.3)
	if p.pulsing {
		t.Error("Expected pulse finished after 0.7s")
	}
	if rot, scale := p.Pose(); rot != -config.PulseAngle || scale != 1 {
		t.Errorf("Expected resting pose, got (%v, %v)", rot, scale)
	}
}

// TestScrollerApproach tests easing toward the target and the clamp
func TestScrollerApproach(t *testing.T) {
	var s Scroller
	s.SetMax(600)
	s.ScrollTo(1000)
	if s.Target() != 600 {
		t.Fatalf("Expected target clamped to 600, got %v", s.Target())
	}
	for i := 0; i < 200 && s.Offset() != 600; i++ {
		s.Update()
	}
	if s.Offset() != 600 {
		t.Errorf("Expected offset to reach 600, got %v", s.Offset())
	}

	s.Wheel(-10000)
	if s.Target() != 0 {
		t.Errorf("Expected target clamped to 0, got %v", s.Target())
	}
}

// TestScrollerLocked tests that the wheel is ignored while the letter is open
func TestScrollerLocked(t *testing.T) {
	d := event.NewDispatcher()
	p := NewPage(d)
	p.Layout(800, 600, 1)

	d.Emit(event.LetterOpened, nil)
	p.Scroll.Wheel(120)
	if p.Scroll.Target() != 0 {
		t.Errorf("Expected locked scroll, got target %v", p.Scroll.Target())
	}
	d.Emit(event.LetterClosed, nil)
	p.Scroll.Wheel(120)
	if p.Scroll.Target() != 120 {
		t.Errorf("Expected target 120 after unlock, got %v", p.Scroll.Target())
	}
}

// TestPageHitTest tests hero buttons, scroll to question and the offset hit test
func TestPageHitTest(t *testing.T) {
	d := event.NewDispatcher()
	p := NewPage(d)
	p.Layout(960, 640, 1)

	center := func(b *Button) (int, int) {
		return (b.Rect.Min.X + b.Rect.Max.X) / 2, (b.Rect.Min.Y + b.Rect.Max.Y) / 2
	}
	x, y := center(&p.OpenButton)
	if a := p.HitTest(x, y); a != ActionOpenLetter {
		t.Errorf("Expected open letter, got %v", a)
	}
	if a := p.HitTest(2, 2); a != ActionNone {
		t.Errorf("Expected no action in the corner, got %v", a)
	}

	d.Emit(event.ScrollRequested, nil)
	for i := 0; i < 200; i++ {
		p.Update(1.0 / 60)
	}
	if p.Scroll.Offset() != 640 {
		t.Fatalf("Expected page scrolled to 640, got %v", p.Scroll.Offset())
	}
	x, y = center(&p.YesButton)
	if a := p.HitTest(x, y-640); a != ActionYes {
		t.Errorf("Expected yes after scroll, got %v", a)
	}
	x, y = center(&p.NoButton)
	if a := p.HitTest(x, y-640); a != ActionNo {
		t.Errorf("Expected no after scroll, got %v", a)
	}
}

// TestPageNarrowLayout tests that hero buttons wrap into rows inside a narrow window
func TestPageNarrowLayout(t *testing.T) {
	p := NewPage(nil)
	p.Layout(420, 800, 1)
	for _, b := range p.buttons() {
		if b.Rect.Min.X < 0 || b.Rect.Max.X > 420 {
			t.Errorf("Button %q outside the window: %v", b.Label, b.Rect)
		}
	}
	if p.OpenButton.Rect.Min.Y == p.SparkleButton.Rect.Min.Y {
		t.Error("Expected buttons to wrap onto a second row")
	}
}

// TestModalHitTest tests modal buttons and closing on the backdrop
func TestModalHitTest(t *testing.T) {
	m := NewLetterModal()
	m.Layout(960, 640, 1)

	if a := m.HitTest(5, 5); a != ActionCloseLetter {
		t.Errorf("Expected backdrop click to close, got %v", a)
	}
	if a := m.HitTest(m.Rect.Min.X+m.Rect.Dx()/2, m.Rect.Min.Y+m.Rect.Dy()/2); a != ActionNone {
		t.Errorf("Expected no action inside the letter, got %v", a)
	}
	buttons := map[Action]*Button{
		ActionCloseLetter: &m.CloseButton,
		ActionSeal:        &m.SealButton,
		ActionCopy:        &m.CopyButton,
	}
	for want, b := range buttons {
		x, y := (b.Rect.Min.X+b.Rect.Max.X)/2, (b.Rect.Min.Y+b.Rect.Max.Y)/2
		if !b.Rect.In(m.Rect) {
			t.Errorf("Button %q outside the letter", b.Label)
		}
		if a := m.HitTest(x, y); a != want {
			t.Errorf("Button %q: expected %v, got %v", b.Label, want, a)
		}
	}
}

// TestWrapText tests greedy wrapping by measured width
func TestWrapText(t *testing.T) {
	fonts, err := assets.NewFontManager()
	if err != nil {
		t.Fatalf("Expected font manager, got %v", err)
	}
	defer fonts.Cleanup()
	face := fonts.Face(16)

	lines := WrapText(face, "one two three four five six seven eight nine ten", 80)
	if len(lines) < 3 {
		t.Errorf("Expected several lines, got %q", lines)
	}
	for _, l := range lines {
		if len(lines) > 1 && l == "" {
			t.Errorf("Expected no empty lines, got %q", lines)
		}
	}

	lines = WrapText(face, "a\n\nb", 1000)
	if len(lines) != 3 || lines[1] != "" {
		t.Errorf("Expected blank line preserved, got %q", lines)
	}
}

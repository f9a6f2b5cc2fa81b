package app

import (
	"errors"
	"testing"

	"valentine-card/internal/config"
	"valentine-card/internal/defs"
	"valentine-card/internal/event"
	"valentine-card/internal/interfaces"
)

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) confetti() []int {
	var counts []int
	for _, e := range l.events {
		if e.Type == event.ConfettiRequested {
			counts = append(counts, e.Data.(int))
		}
	}
	return counts
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type fakeMusic struct {
	playErr error
	plays   int
	pauses  int
}

func (m *fakeMusic) Play() error {
	m.plays++
	return m.playErr
}

func (m *fakeMusic) Pause() { m.pauses++ }

func newTestCard(clip *fakeClipboard, music *fakeMusic) (*Card, *eventLog) {
	d := event.NewDispatcher()
	log := &eventLog{}
	for _, t := range []event.EventType{
		event.ConfettiRequested, event.HeroPulse, event.MessageChanged,
		event.MusicToggled, event.LetterOpened, event.LetterClosed, event.ScrollRequested,
	} {
		d.Subscribe(t, log)
	}
	content := defs.DefaultContent()
	content.YesLines = []string{"y1", "y2", "y3"}
	content.NoLines = []string{"n1", "n2"}
	content.Letter = []string{"  Dear you,  ", "", "line two", "   "}
	content.Signature = "Cristian"

	// typed nil в интерфейсе не равен nil
	var cb interfaces.Clipboard
	if clip != nil {
		cb = clip
	}
	var mp interfaces.MusicPlayer
	if music != nil {
		mp = music
	}
	return NewCard(content, d, cb, mp), log
}

// TestYesCyclesAndCelebrates tests yes line cycling with confetti and pulse
func TestYesCyclesAndCelebrates(t *testing.T) {
	c, log := newTestCard(nil, nil)

	expected := []string{"y1", "y2", "y3", "y1"}
	for i, want := range expected {
		c.Yes()
		if c.Message() != want {
			t.Errorf("Click %d: expected %q, got %q", i, want, c.Message())
		}
	}
	for _, n := range log.confetti() {
		if n != config.ConfettiYes {
			t.Errorf("Expected yes confetti %d, got %d", config.ConfettiYes, n)
		}
	}
	if log.count(event.HeroPulse) != 4 {
		t.Errorf("Expected 4 pulses, got %d", log.count(event.HeroPulse))
	}
}

// TestNoCycles tests no line cycling with a small burst
func TestNoCycles(t *testing.T) {
	c, log := newTestCard(nil, nil)

	for i, want := range []string{"n1", "n2", "n1"} {
		c.No()
		if c.Message() != want {
			t.Errorf("Click %d: expected %q, got %q", i, want, c.Message())
		}
	}
	counts := log.confetti()
	if len(counts) != 3 || counts[0] != config.ConfettiNo {
		t.Errorf("Expected three bursts of %d, got %v", config.ConfettiNo, counts)
	}
	if log.count(event.HeroPulse) != 0 {
		t.Error("Expected no pulse on no")
	}
}

// TestSealAndSparkle tests the seal message and the message-less sparkle
func TestSealAndSparkle(t *testing.T) {
	c, log := newTestCard(nil, nil)

	c.Seal()
	if c.Message() != c.Content.SealMessage {
		t.Errorf("Expected seal message, got %q", c.Message())
	}
	c.Sparkle()
	if c.Message() != c.Content.SealMessage {
		t.Errorf("Expected sparkle to keep the message, got %q", c.Message())
	}
	counts := log.confetti()
	if len(counts) != 2 || counts[0] != config.ConfettiSeal || counts[1] != config.ConfettiSparkle {
		t.Errorf("Expected [%d %d], got %v", config.ConfettiSeal, config.ConfettiSparkle, counts)
	}
}

// TestLetterText tests trimming and joining of the letter
func TestLetterText(t *testing.T) {
	c, _ := newTestCard(nil, nil)
	want := "Dear you,\n\nline two\n\nCristian"
	if got := c.LetterText(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

// TestCopyLetter tests clipboard success and failure messages
func TestCopyLetter(t *testing.T) {
	clip := &fakeClipboard{}
	c, log := newTestCard(clip, nil)
	c.CopyLetter()
	if clip.text != c.LetterText() {
		t.Errorf("Expected clipboard to hold the letter, got %q", clip.text)
	}
	if c.Message() != c.Content.CopiedMessage {
		t.Errorf("Expected copied message, got %q", c.Message())
	}
	if counts := log.confetti(); len(counts) != 1 || counts[0] != config.ConfettiCopy {
		t.Errorf("Expected one burst of %d, got %v", config.ConfettiCopy, counts)
	}

	failing := &fakeClipboard{err: errors.New("no xclip")}
	c2, log2 := newTestCard(failing, nil)
	c2.CopyLetter()
	if c2.Message() != c2.Content.CopyFailed {
		t.Errorf("Expected copy failed message, got %q", c2.Message())
	}
	if len(log2.confetti()) != 0 {
		t.Error("Expected no confetti on copy failure")
	}

	c3, _ := newTestCard(nil, nil)
	c3.CopyLetter()
	if c3.Message() != c3.Content.CopyFailed {
		t.Errorf("Expected copy failed without clipboard, got %q", c3.Message())
	}
}

// TestToggleMusic tests on/off flips and the button label
func TestToggleMusic(t *testing.T) {
	music := &fakeMusic{}
	c, log := newTestCard(nil, music)

	c.ToggleMusic()
	if !c.MusicOn() || c.MusicLabel() != c.Content.MusicOnLabel {
		t.Errorf("Expected music on with label %q, got %v %q", c.Content.MusicOnLabel, c.MusicOn(), c.MusicLabel())
	}
	if counts := log.confetti(); len(counts) != 1 || counts[0] != config.ConfettiMusic {
		t.Errorf("Expected one burst of %d, got %v", config.ConfettiMusic, counts)
	}

	c.ToggleMusic()
	if c.MusicOn() || c.MusicLabel() != c.Content.MusicLabel {
		t.Errorf("Expected music off with label %q", c.Content.MusicLabel)
	}
	if music.plays != 1 || music.pauses != 1 {
		t.Errorf("Expected 1 play and 1 pause, got %d and %d", music.plays, music.pauses)
	}
	if log.count(event.MusicToggled) != 2 {
		t.Errorf("Expected 2 toggle events, got %d", log.count(event.MusicToggled))
	}
}

// TestToggleMusicFailure tests that a play error shows the tip and keeps music off
func TestToggleMusicFailure(t *testing.T) {
	music := &fakeMusic{playErr: errors.New("no track")}
	c, _ := newTestCard(nil, music)

	c.ToggleMusic()
	if c.MusicOn() {
		t.Error("Expected music to stay off")
	}
	if c.Message() != c.Content.MusicTip {
		t.Errorf("Expected music tip, got %q", c.Message())
	}
}

// TestLetterModal tests open/close idempotency and escape handling
func TestLetterModal(t *testing.T) {
	c, log := newTestCard(nil, nil)

	if c.HandleEscape() {
		t.Error("Expected escape to do nothing while closed")
	}
	c.OpenLetter()
	c.OpenLetter()
	if !c.LetterOpen() {
		t.Fatal("Expected letter open")
	}
	if log.count(event.LetterOpened) != 1 {
		t.Errorf("Expected one open event, got %d", log.count(event.LetterOpened))
	}
	if !c.HandleEscape() || c.LetterOpen() {
		t.Error("Expected escape to close the letter")
	}
	c.CloseLetter()
	if log.count(event.LetterClosed) != 1 {
		t.Errorf("Expected one close event, got %d", log.count(event.LetterClosed))
	}
}

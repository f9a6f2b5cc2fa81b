package audio

import (
	"errors"
	"path/filepath"
	"testing"
)

type stubPicker struct {
	path  string
	err   error
	calls int
}

func (p *stubPicker) PickMusic() (string, error) {
	p.calls++
	return p.path, p.err
}

var errCanceled = errors.New("dialog canceled")

// TestPlayMissingTrack tests the ErrNoTrack path without a picker
func TestPlayMissingTrack(t *testing.T) {
	m := NewMusic(filepath.Join(t.TempDir(), "music.mp3"), nil)
	if err := m.Play(); !errors.Is(err, ErrNoTrack) {
		t.Errorf("Expected ErrNoTrack, got %v", err)
	}
}

// TestPlayPickerCanceled tests that a canceled dialog keeps both errors
func TestPlayPickerCanceled(t *testing.T) {
	picker := &stubPicker{err: errCanceled}
	m := NewMusic(filepath.Join(t.TempDir(), "music.mp3"), picker)

	err := m.Play()
	if !errors.Is(err, ErrNoTrack) || !errors.Is(err, errCanceled) {
		t.Errorf("Expected ErrNoTrack wrapping the cancel, got %v", err)
	}
	if picker.calls != 1 {
		t.Errorf("Expected picker to be asked once, got %d", picker.calls)
	}
}

// TestPlayPickedUnsupported tests that a picked file with a foreign extension is rejected
func TestPlayPickedUnsupported(t *testing.T) {
	picker := &stubPicker{path: "song.ogg"}
	m := NewMusic(filepath.Join(t.TempDir(), "music.mp3"), picker)

	if err := m.Play(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Expected ErrUnsupported, got %v", err)
	}
}

// TestDecoderFor tests extension matching
func TestDecoderFor(t *testing.T) {
	for _, path := range []string{"a.mp3", "b.WAV", "c.Flac"} {
		if _, err := decoderFor(path); err != nil {
			t.Errorf("Expected decoder for %s, got %v", path, err)
		}
	}
	if _, err := decoderFor("d.ogg"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Expected ErrUnsupported for ogg, got %v", err)
	}
}

// TestPauseWithoutTrack tests that Pause and Close are safe before Play
func TestPauseWithoutTrack(t *testing.T) {
	m := NewMusic("missing.mp3", nil)
	m.Pause()
	m.Close()
}

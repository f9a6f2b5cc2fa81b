package audio

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"valentine-card/internal/interfaces"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

var (
	// ErrNoTrack — файла с музыкой нет и выбрать его не удалось
	ErrNoTrack = errors.New("no music track")
	// ErrUnsupported — формат файла не поддерживается
	ErrUnsupported = errors.New("unsupported audio format")
)

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

// Music проигрывает один трек по кругу с паузой через beep.Ctrl.
// Ctrl читается горутиной speaker, поэтому любые изменения идут под speaker.Lock.
type Music struct {
	path   string
	picker interfaces.FilePicker

	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	initDone bool
}

// NewMusic создает плеер для path. picker может быть nil.
func NewMusic(path string, picker interfaces.FilePicker) *Music {
	return &Music{path: path, picker: picker}
}

// Play запускает или продолжает воспроизведение.
func (m *Music) Play() error {
	if m.ctrl != nil {
		speaker.Lock()
		m.ctrl.Paused = false
		speaker.Unlock()
		return nil
	}

	path, err := m.resolvePath()
	if err != nil {
		return err
	}
	return m.load(path)
}

// Pause ставит трек на паузу. Без загруженного трека ничего не делает.
func (m *Music) Pause() {
	if m.ctrl == nil {
		return
	}
	speaker.Lock()
	m.ctrl.Paused = true
	speaker.Unlock()
}

// Close останавливает звук и закрывает файл.
func (m *Music) Close() {
	if m.initDone {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
	if m.streamer != nil {
		_ = m.streamer.Close()
		m.streamer = nil
	}
	if m.file != nil {
		_ = m.file.Close()
		m.file = nil
	}
	m.ctrl = nil
}

func (m *Music) resolvePath() (string, error) {
	if _, err := os.Stat(m.path); err == nil {
		return m.path, nil
	}
	if m.picker == nil {
		return "", fmt.Errorf("%w: %s", ErrNoTrack, m.path)
	}
	picked, err := m.picker.PickMusic()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoTrack, err)
	}
	if picked == "" {
		return "", ErrNoTrack
	}
	m.path = picked
	return picked, nil
}

func (m *Music) load(path string) error {
	decode, err := decoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open music: %w", err)
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if !m.initDone {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("failed to init speaker: %w", err)
		}
		m.initDone = true
	}

	m.file = f
	m.streamer = streamer
	m.format = format
	m.ctrl = &beep.Ctrl{Streamer: beep.Loop(-1, streamer)}
	speaker.Play(m.ctrl)

	log.Printf("Playing music %s (%d Hz)", path, format.SampleRate)
	return nil
}

func decoderFor(path string) (decodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }, nil
	case ".wav":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }, nil
	case ".flac":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(f) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// Package termview рисует поле сердечек в терминале через tcell.
package termview

import (
	"context"
	"time"

	"valentine-card/internal/config"
	"valentine-card/internal/system"
	"valentine-card/pkg/render"

	"github.com/gdamore/tcell/v2"
)

const heartRune = '♥'

// View связывает экран терминала с полем сердечек. Одна клетка соответствует
// config.TerminalCellW×config.TerminalCellH пикселям поля при dpr 1.
type View struct {
	screen tcell.Screen
	hearts *system.HeartSystem
	frame  time.Duration
}

func New(screen tcell.Screen, hearts *system.HeartSystem) *View {
	return &View{
		screen: screen,
		hearts: hearts,
		frame:  config.TerminalFrame,
	}
}

// Resize подгоняет поле под текущий размер экрана. Первый вызов запускает поле.
func (v *View) Resize() {
	cols, rows := v.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	w := float64(cols * config.TerminalCellW)
	h := float64(rows * config.TerminalCellH)
	if v.hearts.Ready() {
		v.hearts.Resize(w, h, 1)
		return
	}
	v.hearts.Init(w, h, 1)
}

// Frame продвигает поле на кадр и перерисовывает экран.
func (v *View) Frame() {
	v.hearts.Step()
	v.Draw()
}

func (v *View) Draw() {
	v.screen.Clear()
	cols, rows := v.screen.Size()
	for _, h := range v.hearts.Hearts() {
		col := int(h.X) / config.TerminalCellW
		row := int(h.Y) / config.TerminalCellH
		if h.X < 0 || h.Y < 0 || col >= cols || row >= rows {
			continue
		}
		v.screen.SetContent(col, row, heartRune, nil, heartStyle(h.Hue, h.Alpha))
	}
	v.screen.Show()
}

// heartStyle — цвет сердца; прозрачность передается яркостью, фон терминала неизвестен.
func heartStyle(hue, alpha float64) tcell.Style {
	lightness := config.HeartLightness + (1-alpha)*0.2
	c := render.HSLA(hue, config.HeartSaturation, lightness, 1)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// HandleEvent обрабатывает событие терминала и сообщает, нужно ли выйти.
func (v *View) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.Resize()
		v.screen.Sync()
	case *tcell.EventKey:
		return isQuitKey(ev.Key(), ev.Rune())
	}
	return false
}

func isQuitKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return r == 'q' || r == 'Q'
	}
	return false
}

// Run крутит кадры до выхода по клавише или отмены ctx.
func (v *View) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	v.Resize()
	ticker := time.NewTicker(v.frame)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if v.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			v.Frame()
		}
	}
}

// cmd/card/main.go
package main

import (
	"flag"
	"log"
	"math"
	"time"

	"valentine-card/internal/app"
	"valentine-card/internal/assets"
	"valentine-card/internal/audio"
	"valentine-card/internal/config"
	"valentine-card/internal/defs"
	"valentine-card/internal/platform"
	"valentine-card/internal/state"
	"valentine-card/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppCard struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
	dpr            float64
}

func (a *AppCard) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppCard) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout отдает холст в пикселях устройства, чтобы сердечки были четкими на HiDPI
func (a *AppCard) Layout(outsideWidth, outsideHeight int) (int, int) {
	dpr := ebiten.Monitor().DeviceScaleFactor()
	if dpr <= 0 {
		dpr = 1
	}
	w := int(math.Ceil(float64(outsideWidth) * dpr))
	h := int(math.Ceil(float64(outsideHeight) * dpr))
	if w != a.width || h != a.height || dpr != a.dpr {
		a.width, a.height, a.dpr = w, h, dpr
		a.stateMachine.Resize(w, h, dpr)
	}
	return w, h
}

func main() {
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	contentPath := flag.String("content", config.DefaultContentPath, "path to the card content JSON")
	musicPath := flag.String("music", config.DefaultMusicPath, "path to the background music")
	flag.Parse()

	content, err := defs.LoadContent(*contentPath)
	if err != nil {
		log.Printf("WARNING: %v, using built-in content", err)
		content = defs.DefaultContent()
	}

	fonts, err := assets.NewFontManager()
	if err != nil {
		log.Printf("WARNING: %v, text disabled", err)
	}

	rng := utils.NewPRNGService(*seed)
	log.Printf("Seed: %d", rng.Seed())

	music := audio.NewMusic(*musicPath, platform.DialogPicker{})
	defer music.Close()

	card := app.NewCard(content, nil, platform.SystemClipboard{}, music)
	sm := state.NewStateMachine()
	sm.SetState(state.NewCardState(sm, card, rng, fonts))
	defer sm.Close()

	a := &AppCard{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}

// cmd/hearts-term/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"valentine-card/internal/system"
	"valentine-card/internal/termview"
	"valentine-card/internal/utils"

	"github.com/gdamore/tcell/v2"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal init: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rng := utils.NewPRNGService(*seed)
	hearts := system.NewHeartSystem(system.DefaultHeartParams(), rng)
	view := termview.New(screen, hearts)

	err = view.Run(ctx)
	hearts.Dispose()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("Seed: %d", rng.Seed())
}

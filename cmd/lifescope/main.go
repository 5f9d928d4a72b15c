//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"lifescope/internal/app"
	"lifescope/internal/seed"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	var cells []uint8
	var err error
	if cfg.SeedPath != "" {
		cells, err = seed.LoadFile(cfg.SeedPath, cfg.Width, cfg.Height)
		if err != nil {
			log.Fatalf("load seed: %v", err)
		}
	} else {
		cells = seed.Random(cfg.Width, cfg.Height, cfg.Seed)
	}

	game, err := app.New(cfg, cells)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	ebiten.SetWindowTitle(fmt.Sprintf("lifescope %dx%d", cfg.Width, cfg.Height))
	ebiten.SetWindowSize(cfg.Window, cfg.Window)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

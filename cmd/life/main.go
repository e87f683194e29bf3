//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"torus-life/internal/app"
	"torus-life/internal/render"
	"torus-life/pkg/universe"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	uni, err := universe.New(cfg.Width, cfg.Height)
	if err != nil {
		log.Fatal(err)
	}
	switch cfg.Pattern {
	case "random":
		uni.Randomize(cfg.Seed)
	case "default":
		uni.SeedDefault()
	default:
		log.Fatalf("unknown pattern %q", cfg.Pattern)
	}

	game := app.New(uni, cfg.CellSize, cfg.TPS, cfg.Seed)
	w, h := render.CanvasSize(cfg.Width, cfg.Height, cfg.CellSize)

	ebiten.SetWindowTitle("torus-life")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

package main

import (
	"flag"
	"log"

	"torus-life/internal/app"
	"torus-life/internal/term"
	"torus-life/pkg/universe"
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

	loop, err := term.NewLoop(uni, cfg.TPS, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}
	if err := loop.Run(); err != nil {
		log.Fatal(err)
	}
}

//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"openlife/internal/app"
	"openlife/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.DefaultConfig()
	scale := flag.Int("scale", 2, "window scale multiplier")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg)
	if err != nil {
		log.Fatalf("openlife: %v", err)
	}
	session.Seed(cfg.Seed)

	game := app.New(session, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("openlife — " + cfg.Topology)
	ebiten.SetWindowSize(w*(*scale), h*(*scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifegif/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	rec, err := cfg.NewRecorder()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("recording %d generations to %s", cfg.Frames, cfg.Output)

	game := app.New(rec, cfg.Pace)
	size := rec.DisplaySize()

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(size.W, size.H)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

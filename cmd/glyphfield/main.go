//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"glyphfield/internal/app"
	"glyphfield/pkg/field"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	palette, ok := field.LookupPalette(cfg.Palette)
	if !ok {
		log.Fatalf("unknown palette %q", cfg.Palette)
	}

	f := field.New(cfg.Cols, cfg.Rows)
	game := app.New(f, palette, cfg.Palette, cfg.Cell)

	ebiten.SetWindowTitle("glyphfield — " + cfg.Palette)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Cols*cfg.Cell, cfg.Rows*cfg.Cell)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

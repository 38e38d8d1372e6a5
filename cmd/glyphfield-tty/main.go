package main

import (
	"flag"
	"log"

	"glyphfield/internal/app"
	"glyphfield/internal/term"
	"glyphfield/pkg/field"
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
	a, err := term.New(f, palette, cfg.TPS)
	if err != nil {
		log.Fatal(err)
	}
	if err := a.Run(); err != nil {
		log.Fatal(err)
	}
}

package field

import (
	"math"
	"testing"
)

func TestMapCellIsPure(t *testing.T) {
	p := Palette(".:*#")
	for _, a := range []float64{0, 0.12, 0.5, 0.999, 1} {
		first := MapCell(p, a)
		second := MapCell(p, a)
		if first != second {
			t.Fatalf("activation %v: %+v != %+v", a, first, second)
		}
	}
}

func TestSymbolSelection(t *testing.T) {
	p := Palette(".:*#")
	cases := []struct {
		activation float64
		want       rune
	}{
		{0, '.'},
		{0.3, '.'},    // floor(0.9) = 0
		{0.34, ':'},   // floor(1.02) = 1
		{0.5, ':'},    // floor(1.5) = 1
		{0.67, '*'},   // floor(2.01) = 2
		{0.999, '*'},  // floor(2.997) = 2
		{1, '#'},      // floor(3) = 3, densest
	}
	for _, c := range cases {
		if got := MapCell(p, c.activation).Symbol; got != c.want {
			t.Fatalf("activation %v: symbol %q, want %q", c.activation, got, c.want)
		}
	}
}

func TestOpacityAndScale(t *testing.T) {
	p := Palette(".:*#")
	cases := []struct {
		activation, opacity, scale float64
	}{
		{0, 0.12, 1},
		{0.5, 0.56, 1.4},
		{1, 1, 1.8},
	}
	for _, c := range cases {
		v := MapCell(p, c.activation)
		if math.Abs(v.Opacity-c.opacity) > 1e-12 {
			t.Fatalf("activation %v: opacity %v, want %v", c.activation, v.Opacity, c.opacity)
		}
		if math.Abs(v.Scale-c.scale) > 1e-12 {
			t.Fatalf("activation %v: scale %v, want %v", c.activation, v.Scale, c.scale)
		}
	}
}

func TestEmptyPaletteFallsBackToBlank(t *testing.T) {
	v := MapCell(nil, 0.5)
	if v.Symbol != ' ' {
		t.Fatalf("empty palette must map to a blank symbol, got %q", v.Symbol)
	}
}

func TestRegisteredPalettesAreOrdered(t *testing.T) {
	for _, name := range []string{"dots", "ascii", "blocks"} {
		p, ok := LookupPalette(name)
		if !ok {
			t.Fatalf("palette %q must be registered", name)
		}
		if len(p) < 2 {
			t.Fatalf("palette %q too short to express sparse and dense ends", name)
		}
	}
	if _, ok := LookupPalette("no-such-palette"); ok {
		t.Fatalf("unknown palette name must not resolve")
	}
}

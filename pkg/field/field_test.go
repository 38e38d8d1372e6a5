package field

import (
	"math"
	"testing"
)

func TestStepAgesRipplesBeforeComputing(t *testing.T) {
	f := New(28, 18)
	f.Click(140, 90, 280, 180)

	for i := 0; i < 5; i++ {
		f.Step(280, 180)
	}

	ripples := f.Ripples()
	if len(ripples) != 1 {
		t.Fatalf("expected 1 live ripple, got %d", len(ripples))
	}
	if ripples[0].Radius != 60 {
		t.Fatalf("radius after 5 steps = %v, want 60", ripples[0].Radius)
	}
	if math.Abs(ripples[0].Opacity-0.9) > 1e-9 {
		t.Fatalf("opacity after 5 steps = %v, want 0.9", ripples[0].Opacity)
	}
}

func TestZeroSurfaceStepLeavesStateUntouched(t *testing.T) {
	f := New(4, 4)
	f.PointerMove(5, 5)
	f.Step(40, 40)
	f.Click(20, 20, 40, 40)

	before := f.Values()
	f.Step(0, 0)

	after := f.Values()
	if &after[0] != &before[0] {
		t.Fatalf("skipped tick must not replace the value slice")
	}
	ripples := f.Ripples()
	if len(ripples) != 1 || ripples[0].Radius != 0 {
		t.Fatalf("skipped tick must not age ripples, got %+v", ripples)
	}
}

func TestResetClearsState(t *testing.T) {
	f := New(8, 8)
	f.PointerMove(10, 10)
	f.Click(10, 10, 80, 80)
	f.Step(80, 80)

	f.Reset()

	if f.RippleCount() != 0 {
		t.Fatalf("reset must discard ripples")
	}
	for i, v := range f.Values() {
		if v != 0 {
			t.Fatalf("reset must zero activation, cell %d = %v", i, v)
		}
	}
	// The pointer sentinel must be restored too: a step after reset
	// produces no activation.
	f.Step(80, 80)
	for i, v := range f.Values() {
		if v != 0 {
			t.Fatalf("reset must clear the pointer, cell %d = %v", i, v)
		}
	}
}

func TestFieldsAreIndependent(t *testing.T) {
	a := New(4, 4)
	b := New(4, 4)

	a.PointerMove(20, 20)
	a.Click(20, 20, 40, 40)
	a.Step(40, 40)
	b.Step(40, 40)

	if b.RippleCount() != 0 {
		t.Fatalf("stimulating one field must not ripple into another")
	}
	for i, v := range b.Values() {
		if v != 0 {
			t.Fatalf("untouched field gained activation at cell %d: %v", i, v)
		}
	}
}

func TestValuesSliceIsStablePerTick(t *testing.T) {
	f := New(4, 4)
	f.PointerMove(20, 20)

	f.Step(40, 40)
	held := f.Values()
	snapshot := append([]float64(nil), held...)

	f.Step(40, 40)
	for i, v := range held {
		if v != snapshot[i] {
			t.Fatalf("a held slice must stay a point-in-time read, cell %d changed", i)
		}
	}
}

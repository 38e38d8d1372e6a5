package field

import "math"

// Params holds the tunable constants driving activation dynamics.
type Params struct {
	// Decay is the per-tick retention of prior activation.
	Decay float64
	// PointerReach is the distance in pixels beyond which the pointer
	// contributes no stimulus.
	PointerReach float64
	// RippleSpeed is the ring expansion in pixels per tick.
	RippleSpeed float64
	// RingWidth is the half-width of the elevated band around a ring.
	RingWidth float64
	// RippleFade is the per-tick opacity loss of a ring.
	RippleFade float64
}

// DefaultParams returns the reference tuning.
func DefaultParams() Params {
	return Params{
		Decay:        0.92,
		PointerReach: 150,
		RippleSpeed:  12,
		RingWidth:    60,
		RippleFade:   0.02,
	}
}

// Simulator advances an activation slice one tick at a time. Each tick
// is a pure state transition from (previous values, stimulus snapshot,
// surface size) to a fresh slice.
type Simulator struct {
	grid   Grid
	params Params
}

// NewSimulator returns a simulator for the given grid and tuning.
func NewSimulator(grid Grid, params Params) *Simulator {
	return &Simulator{grid: grid, params: params}
}

// Tick computes the next activation slice. The previous slice is never
// written; callers always receive a newly allocated result. A
// degenerate surface (zero width or height, before layout settles)
// returns prev untouched so the caller can retry next tick.
//
// Every term entering a cell's value is bounded in [0, 1], so the
// result needs no clamping: activation rises instantly with stimulus
// and otherwise decays geometrically toward zero.
func (s *Simulator) Tick(prev []float64, pointer Point, ripples []Ripple, surfaceW, surfaceH float64) []float64 {
	if surfaceW <= 0 || surfaceH <= 0 {
		return prev
	}
	next := make([]float64, s.grid.CellCount())
	for y := 0; y < s.grid.Rows; y++ {
		for x := 0; x < s.grid.Cols; x++ {
			cx, cy := s.grid.CellCenter(x, y, surfaceW, surfaceH)
			idx := s.grid.Index(x, y)
			a := prev[idx] * s.params.Decay
			if p := s.pointerStimulus(cx, cy, pointer); p > a {
				a = p
			}
			if r := s.rippleStimulus(cx, cy, ripples); r > a {
				a = r
			}
			next[idx] = a
		}
	}
	return next
}

// pointerStimulus falls off linearly from 1 at the pointer to 0 at
// PointerReach and beyond.
func (s *Simulator) pointerStimulus(cx, cy float64, p Point) float64 {
	d := math.Hypot(cx-p.X, cy-p.Y)
	if d >= s.params.PointerReach {
		return 0
	}
	return 1 - d/s.params.PointerReach
}

// rippleStimulus returns the strongest single ring contribution at the
// cell. Overlapping rings never stack beyond the strongest one.
func (s *Simulator) rippleStimulus(cx, cy float64, ripples []Ripple) float64 {
	best := 0.0
	for _, r := range ripples {
		d := math.Hypot(cx-r.Origin.X, cy-r.Origin.Y)
		band := math.Abs(d - r.Radius)
		if band >= s.params.RingWidth {
			continue
		}
		if c := (1 - band/s.params.RingWidth) * r.Opacity; c > best {
			best = c
		}
	}
	return best
}

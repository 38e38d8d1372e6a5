package field

// farAway is the sentinel pointer coordinate used before any pointer
// event has been observed and after the pointer leaves the surface. It
// is distant enough that proximity stimulus saturates to zero for every
// cell.
const farAway = -1e4

// Point is a surface-local pixel coordinate.
type Point struct {
	X, Y float64
}

// Ripple is a single click-triggered expanding ring. Its radius only
// grows and its opacity only falls until it is pruned.
type Ripple struct {
	Origin    Point
	Radius    float64
	MaxRadius float64
	Opacity   float64
}

// Tracker records the pointer position and the set of active ripples
// between ticks. Each field instance owns its own tracker, so
// independent fields never share stimulus state.
type Tracker struct {
	pointer Point
	ripples []Ripple
}

// NewTracker returns a tracker with the pointer at the far-away
// sentinel and no ripples.
func NewTracker() *Tracker {
	return &Tracker{pointer: Point{X: farAway, Y: farAway}}
}

// PointerMove records the latest pointer coordinate. No bounds check:
// coordinates outside the surface simply contribute less (or no)
// stimulus as distance grows.
func (t *Tracker) PointerMove(x, y float64) {
	t.pointer = Point{X: x, Y: y}
}

// PointerLeave restores the far-away sentinel so no cell receives
// pointer stimulus.
func (t *Tracker) PointerLeave() {
	t.pointer = Point{X: farAway, Y: farAway}
}

// Click spawns a ripple at (x, y) with zero radius and full opacity.
// The ring may grow until it covers the surface's larger dimension.
func (t *Tracker) Click(x, y, surfaceW, surfaceH float64) {
	max := surfaceW
	if surfaceH > max {
		max = surfaceH
	}
	t.ripples = append(t.ripples, Ripple{
		Origin:    Point{X: x, Y: y},
		MaxRadius: max,
		Opacity:   1,
	})
}

// Advance ages every ripple by one tick and prunes the ones that have
// faded out or reached their maximum radius. Called exactly once per
// tick, before the simulator reads ripple state.
func (t *Tracker) Advance(speed, fade float64) {
	live := t.ripples[:0]
	for _, r := range t.ripples {
		r.Radius += speed
		r.Opacity -= fade
		if r.Opacity <= 0 || r.Radius >= r.MaxRadius {
			continue
		}
		live = append(live, r)
	}
	t.ripples = live
}

// Snapshot returns the current pointer position and a copy of the
// active ripples for one tick's computation. Mutating the returned
// slice does not affect the tracker.
func (t *Tracker) Snapshot() (Point, []Ripple) {
	out := make([]Ripple, len(t.ripples))
	copy(out, t.ripples)
	return t.pointer, out
}

// RippleCount reports how many ripples are currently alive.
func (t *Tracker) RippleCount() int { return len(t.ripples) }

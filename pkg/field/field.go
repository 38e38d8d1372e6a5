// Package field implements the activation field behind an interactive
// glyph grid: a fixed lattice of cells whose activation rises near the
// pointer and along click-triggered expanding rings, then fades
// geometrically. The package is display-agnostic; frontends feed it
// pointer and click events, step it once per rendered frame, and map
// each cell's activation to a glyph, an opacity, and a scale.
package field

// Field bundles a grid, its tuning, a stimulus tracker, and the current
// activation values into one self-contained instance. Instances share
// no state, so any number of fields can run side by side.
type Field struct {
	grid    Grid
	params  Params
	tracker *Tracker
	sim     *Simulator
	values  []float64
}

// New returns a field with the given grid dimensions and the default
// tuning.
func New(cols, rows int) *Field {
	return NewWithParams(cols, rows, DefaultParams())
}

// NewWithParams returns a field with the given dimensions and tuning.
func NewWithParams(cols, rows int, params Params) *Field {
	grid := NewGrid(cols, rows)
	return &Field{
		grid:    grid,
		params:  params,
		tracker: NewTracker(),
		sim:     NewSimulator(grid, params),
		values:  make([]float64, grid.CellCount()),
	}
}

// Name identifies the simulation.
func (f *Field) Name() string { return "glyphfield" }

// Grid returns the fixed cell layout.
func (f *Field) Grid() Grid { return f.grid }

// Params returns the active tuning.
func (f *Field) Params() Params { return f.params }

// Values exposes the current activation slice. The slice is replaced,
// never mutated, on each Step, so a held reference remains a consistent
// point-in-time read.
func (f *Field) Values() []float64 { return f.values }

// PointerMove records the latest pointer coordinate in surface-local
// pixels.
func (f *Field) PointerMove(x, y float64) { f.tracker.PointerMove(x, y) }

// PointerLeave clears the pointer so no cell receives proximity
// stimulus.
func (f *Field) PointerLeave() { f.tracker.PointerLeave() }

// Click spawns a ripple at (x, y) sized to the current surface.
func (f *Field) Click(x, y, surfaceW, surfaceH float64) {
	f.tracker.Click(x, y, surfaceW, surfaceH)
}

// RippleCount reports how many ripples are currently alive.
func (f *Field) RippleCount() int { return f.tracker.RippleCount() }

// Ripples returns a copy of the active ripples.
func (f *Field) Ripples() []Ripple {
	_, ripples := f.tracker.Snapshot()
	return ripples
}

// Step runs one simulation tick against the given surface size: ripples
// age once, then every cell recomputes from its decayed prior value,
// pointer proximity, and ring proximity. A zero-sized surface skips the
// tick entirely and leaves all state untouched; the field self-heals
// once layout reports real dimensions.
func (f *Field) Step(surfaceW, surfaceH float64) {
	if surfaceW <= 0 || surfaceH <= 0 {
		return
	}
	f.tracker.Advance(f.params.RippleSpeed, f.params.RippleFade)
	pointer, ripples := f.tracker.Snapshot()
	f.values = f.sim.Tick(f.values, pointer, ripples, surfaceW, surfaceH)
}

// Reset clears all activation and discards pointer and ripple state.
func (f *Field) Reset() {
	f.tracker = NewTracker()
	f.values = make([]float64, f.grid.CellCount())
}

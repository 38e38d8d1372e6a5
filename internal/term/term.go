// Package term runs an activation field inside a tcell screen. One
// terminal cell hosts one grid cell; the simulation surface is a
// virtual pixel plane where every terminal cell stands in for a fixed
// pixel square, so the field's distances keep their reference tuning.
// Terminals cannot scale glyphs, so a cell's opacity maps onto a
// grayscale ramp instead.
package term

import (
	"github.com/gdamore/tcell/v2"

	"glyphfield/internal/core"
	"glyphfield/pkg/field"
)

// cellPx is the pixel size one terminal cell stands in for when mapping
// mouse coordinates onto the simulation surface.
const cellPx = 10

// App owns the screen, the field, and the tick loop.
type App struct {
	screen  tcell.Screen
	field   *field.Field
	palette field.Palette
	tps     int

	// buttons holds the mask from the previous mouse event so clicks
	// fire on the press edge, not on every motion report while held.
	buttons tcell.ButtonMask
}

// New initializes the terminal screen and wires it to the field.
func New(f *field.Field, palette field.Palette, tps int) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newApp(screen, f, palette, tps)
}

func newApp(screen tcell.Screen, f *field.Field, palette field.Palette, tps int) (*App, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()
	return &App{screen: screen, field: f, palette: palette, tps: tps}, nil
}

// Run drives the field until the user quits. The tick loop is owned by
// a cancellable handle stopped exactly once on the way out; events and
// ticks are consumed on this goroutine only, so tracker mutation never
// overlaps a field step.
func (a *App) Run() error {
	defer a.screen.Fini()

	events := make(chan tcell.Event, 64)
	closed := make(chan struct{})
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(closed)
				return
			}
			events <- ev
		}
	}()

	loop := core.StartLoop(a.tps)
	defer loop.Stop()

	w, h := a.surfaceSize()
	for {
		select {
		case <-closed:
			return nil
		case ev := <-events:
			if !a.handleEvent(ev, w, h) {
				return nil
			}
		case <-loop.C():
			a.field.Step(w, h)
			a.draw()
		}
	}
}

func (a *App) surfaceSize() (float64, float64) {
	grid := a.field.Grid()
	return float64(grid.Cols * cellPx), float64(grid.Rows * cellPx)
}

func (a *App) handleEvent(ev tcell.Event, w, h float64) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			a.field.Reset()
		}
	case *tcell.EventMouse:
		a.handleMouse(ev, w, h)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse, w, h float64) {
	x, y := ev.Position()
	grid := a.field.Grid()
	if x < 0 || y < 0 || x >= grid.Cols || y >= grid.Rows {
		a.field.PointerLeave()
		a.buttons = ev.Buttons()
		return
	}

	px := (float64(x) + 0.5) * cellPx
	py := (float64(y) + 0.5) * cellPx
	a.field.PointerMove(px, py)

	pressed := ev.Buttons()&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
	if pressed {
		a.field.Click(px, py, w, h)
	}
	a.buttons = ev.Buttons()
}

func (a *App) draw() {
	grid := a.field.Grid()
	values := a.field.Values()
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			v := field.MapCell(a.palette, values[grid.Index(x, y)])
			level := int32(255 * v.Opacity)
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(level, level, level))
			a.screen.SetContent(x, y, v.Symbol, nil, style)
		}
	}
	a.screen.Show()
}

//go:build ebiten

package app

import (
	"glyphfield/internal/render"
	"glyphfield/internal/ui"
	"glyphfield/pkg/field"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a field.Field to the ebiten.Game interface: cursor and
// click events feed the field's stimulus tracker, and each Update runs
// exactly one simulation tick.
type Game struct {
	field       *field.Field
	palette     field.Palette
	paletteName string
	painter     *render.GlyphPainter
	hud         *ui.HUD

	cell     int
	paused   bool
	tickOnce bool
}

// New constructs a Game around the provided field.
func New(f *field.Field, palette field.Palette, paletteName string, cellPx int) *Game {
	return &Game{
		field:       f,
		palette:     palette,
		paletteName: paletteName,
		painter:     render.NewGlyphPainter(palette, cellPx),
		hud:         ui.NewHUD(),
		cell:        cellPx,
	}
}

func (g *Game) surfaceSize() (float64, float64) {
	grid := g.field.Grid()
	return float64(grid.Cols * g.cell), float64(grid.Rows * g.cell)
}

// Update handles input and advances the simulation by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.field.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	w, h := g.surfaceSize()

	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || float64(mx) >= w || float64(my) >= h {
		g.field.PointerLeave()
	} else {
		g.field.PointerMove(float64(mx), float64(my))
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.field.Click(float64(mx), float64(my), w, h)
		}
	}

	if !g.paused || g.tickOnce {
		g.field.Step(w, h)
		g.tickOnce = false
	}
	return nil
}

// Draw renders every cell's glyph plus the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.surfaceSize()
	grid := g.field.Grid()
	values := g.field.Values()
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			v := field.MapCell(g.palette, values[grid.Index(x, y)])
			cx, cy := grid.CellCenter(x, y, w, h)
			g.painter.Draw(screen, v, cx, cy)
		}
	}
	g.hud.Draw(screen, g.paletteName, g.field.RippleCount(), g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.field.Grid()
	return grid.Cols * g.cell, grid.Rows * g.cell
}

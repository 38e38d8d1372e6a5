//go:build !ebiten

package render

import "glyphfield/pkg/field"

// GlyphPainter is a placeholder for headless builds.
type GlyphPainter struct{}

// NewGlyphPainter panics to indicate that the ebiten build tag is
// required for GUI support.
func NewGlyphPainter(field.Palette, int) *GlyphPainter {
	panic("render.NewGlyphPainter requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (gp *GlyphPainter) Draw(any, field.Visual, float64, float64) {}

// CellSize returns zero in the headless build.
func (gp *GlyphPainter) CellSize() int { return 0 }

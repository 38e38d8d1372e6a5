//go:build ebiten

package render

import (
	"image/color"

	"glyphfield/pkg/field"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// GlyphPainter rasterizes each palette glyph once and composites cells
// with per-draw opacity and scale.
type GlyphPainter struct {
	face   font.Face
	cell   int
	glyphs map[rune]*ebiten.Image
}

// NewGlyphPainter prepares glyph sprites for the palette at the given
// cell pixel size.
func NewGlyphPainter(palette field.Palette, cellPx int) *GlyphPainter {
	if cellPx <= 0 {
		cellPx = 1
	}
	gp := &GlyphPainter{
		face:   basicfont.Face7x13,
		cell:   cellPx,
		glyphs: make(map[rune]*ebiten.Image, len(palette)),
	}
	for _, r := range palette {
		if _, ok := gp.glyphs[r]; !ok {
			gp.glyphs[r] = gp.renderGlyph(r)
		}
	}
	return gp
}

func (gp *GlyphPainter) renderGlyph(r rune) *ebiten.Image {
	img := ebiten.NewImage(gp.cell, gp.cell)
	s := string(r)
	bounds := text.BoundString(gp.face, s)
	x := (gp.cell-bounds.Dx())/2 - bounds.Min.X
	y := (gp.cell-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(img, s, gp.face, x, y, color.White)
	return img
}

// Draw blits one cell's visual centered at (cx, cy), scaling the sprite
// about its center and applying the visual's opacity.
func (gp *GlyphPainter) Draw(dst *ebiten.Image, v field.Visual, cx, cy float64) {
	img, ok := gp.glyphs[v.Symbol]
	if !ok {
		return
	}
	half := float64(gp.cell) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-half, -half)
	op.GeoM.Scale(v.Scale, v.Scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleAlpha(float32(v.Opacity))
	dst.DrawImage(img, op)
}

// CellSize returns the sprite edge length in pixels.
func (gp *GlyphPainter) CellSize() int { return gp.cell }

package field

// Grid describes the fixed cell layout of an activation field. The
// layout never changes for the lifetime of a field; only the surface it
// is projected onto does.
type Grid struct {
	Cols, Rows int
}

// NewGrid returns a grid with the given dimensions.
func NewGrid(cols, rows int) Grid {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	return Grid{Cols: cols, Rows: rows}
}

// Index returns the row-major slice index for cell (x, y).
func (g Grid) Index(x, y int) int { return y*g.Cols + x }

// CellCount returns the total number of cells.
func (g Grid) CellCount() int { return g.Cols * g.Rows }

// CellCenter returns the pixel center of cell (x, y) on a surface of
// the given size. The surface is divided evenly between columns and
// rows.
func (g Grid) CellCenter(x, y int, surfaceW, surfaceH float64) (float64, float64) {
	cw := surfaceW / float64(g.Cols)
	ch := surfaceH / float64(g.Rows)
	return (float64(x) + 0.5) * cw, (float64(y) + 0.5) * ch
}

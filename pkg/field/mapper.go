package field

const (
	// BaseOpacity keeps idle cells faintly visible.
	BaseOpacity = 0.12
	// ScaleRange is the growth of a fully activated cell over its rest
	// size.
	ScaleRange = 0.8
)

// Visual is the render recipe for one cell.
type Visual struct {
	Symbol  rune
	Opacity float64
	Scale   float64
}

// MapCell translates an activation scalar into a glyph from the
// palette, an opacity, and a scale factor. Pure: equal inputs always
// yield equal outputs.
func MapCell(p Palette, activation float64) Visual {
	v := Visual{
		Symbol:  ' ',
		Opacity: BaseOpacity + activation*(1-BaseOpacity),
		Scale:   1 + activation*ScaleRange,
	}
	if len(p) == 0 {
		return v
	}
	idx := int(activation * float64(len(p)-1))
	if idx < 0 {
		idx = 0
	}
	if idx > len(p)-1 {
		idx = len(p) - 1
	}
	v.Symbol = p[idx]
	return v
}

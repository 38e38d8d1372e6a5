package field

// Palette is an ordered set of glyphs, sparsest first. The mapper
// indexes into it by activation, so the last glyph marks a fully
// activated cell.
type Palette []rune

var palettes = map[string]Palette{}

// RegisterPalette adds a palette under the provided name. Empty names
// and empty palettes are ignored.
func RegisterPalette(name string, p Palette) {
	if name == "" || len(p) == 0 {
		return
	}
	palettes[name] = p
}

// LookupPalette returns the named palette.
func LookupPalette(name string) (Palette, bool) {
	p, ok := palettes[name]
	return p, ok
}

// Palettes exposes the registry of named palettes.
func Palettes() map[string]Palette { return palettes }

func init() {
	// The "dots" and "blocks" palettes rely on glyphs outside the GUI
	// bitmap font's coverage; they render best in the terminal frontend.
	RegisterPalette("dots", Palette("·∙•●"))
	RegisterPalette("ascii", Palette(".:-=+*#%@"))
	RegisterPalette("blocks", Palette("░▒▓█"))
}

package app

import "flag"

// Config represents the command-line parameters shared by the
// frontends.
type Config struct {
	Cols    int
	Rows    int
	Cell    int
	TPS     int
	Palette string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Cols: 28, Rows: 18, Cell: 24, TPS: 60, Palette: "ascii"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.Palette, "palette", c.Palette, "glyph palette name")
}

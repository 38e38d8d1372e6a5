// field-trace runs the activation field without a display and prints a
// per-tick CSV trace, for tuning decay and ripple constants.
package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strconv"

	"glyphfield/pkg/field"
)

func main() {
	cols := flag.Int("cols", 28, "grid columns")
	rows := flag.Int("rows", 18, "grid rows")
	cell := flag.Int("cell", 10, "cell size in pixels")
	ticks := flag.Int("ticks", 120, "ticks to simulate")
	clickTick := flag.Int("click", 0, "tick at which to click the surface center (-1 disables)")
	pinPointer := flag.Bool("pointer", false, "pin the pointer to the surface center for the whole run")
	probeX := flag.Int("probe-x", 0, "probe cell column")
	probeY := flag.Int("probe-y", 0, "probe cell row")
	flag.Parse()

	f := field.New(*cols, *rows)
	grid := f.Grid()
	w := float64(grid.Cols * *cell)
	h := float64(grid.Rows * *cell)

	if *probeX < 0 || *probeX >= grid.Cols || *probeY < 0 || *probeY >= grid.Rows {
		log.Fatalf("probe cell (%d,%d) outside %dx%d grid", *probeX, *probeY, grid.Cols, grid.Rows)
	}

	if *pinPointer {
		f.PointerMove(w/2, h/2)
	}

	out := csv.NewWriter(os.Stdout)
	defer out.Flush()
	if err := out.Write([]string{"tick", "ripples", "max", "probe"}); err != nil {
		log.Fatal(err)
	}

	for tick := 0; tick < *ticks; tick++ {
		if tick == *clickTick {
			f.Click(w/2, h/2, w, h)
		}
		f.Step(w, h)

		values := f.Values()
		max := 0.0
		for _, v := range values {
			if v > max {
				max = v
			}
		}
		rec := []string{
			strconv.Itoa(tick),
			strconv.Itoa(f.RippleCount()),
			strconv.FormatFloat(max, 'f', 4, 64),
			strconv.FormatFloat(values[grid.Index(*probeX, *probeY)], 'f', 4, 64),
		}
		if err := out.Write(rec); err != nil {
			log.Fatal(err)
		}
	}
}

// Package series loads per-second pixel-count samples for plotting.
// The input format is two-column CSV: second-of-day, count.
package series

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/plot/plotter"
)

// Parse reads two-column CSV records into plot points. A first row that
// does not parse as numbers is treated as a header and skipped; any
// later malformed row is an error naming the line.
func Parse(r io.Reader) (plotter.XYs, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var xys plotter.XYs
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line++

		x, errX := strconv.ParseFloat(rec[0], 64)
		y, errY := strconv.ParseFloat(rec[1], 64)
		if errX != nil || errY != nil {
			if line == 1 {
				// Header row
				continue
			}
			if errX != nil {
				return nil, fmt.Errorf("line %d: parse second value %q: %w", line, rec[0], errX)
			}
			return nil, fmt.Errorf("line %d: parse count %q: %w", line, rec[1], errY)
		}

		xys = append(xys, plotter.XY{X: x, Y: y})
	}

	return xys, nil
}

// Load reads samples from a CSV file.
func Load(path string) (plotter.XYs, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	xys, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return xys, nil
}

// MaxCount returns the largest count in the samples, 0 if there are none.
func MaxCount(xys plotter.XYs) float64 {
	max := 0.0
	for _, xy := range xys {
		if xy.Y > max {
			max = xy.Y
		}
	}
	return max
}

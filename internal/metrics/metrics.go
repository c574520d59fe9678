package metrics

import "github.com/san-kum/matrixbg/internal/raster"

// Metric accumulates a scalar over the pixels of a frame.
type Metric interface {
	Name() string
	Observe(col, row int, r, g, b uint8)
	Value() float64
	Reset()
}

// Defaults returns the metrics reported by the CLI.
func Defaults() []Metric {
	return []Metric{NewCoverage(), NewLuma(), NewHot(200)}
}

// Collect runs every metric over f and returns name -> value.
func Collect(f *raster.Frame, ms ...Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for row := 0; row < f.Height; row++ {
		for col := 0; col < f.Width; col++ {
			r, g, b := f.At(col, row)
			for _, m := range ms {
				m.Observe(col, row, r, g, b)
			}
		}
	}

	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// RowCounts returns the number of non-black pixels in each row.
func RowCounts(f *raster.Frame) []float64 {
	counts := make([]float64, f.Height)
	for row := 0; row < f.Height; row++ {
		px := f.Row(row)
		for i := 0; i < len(px); i += 3 {
			if px[i]|px[i+1]|px[i+2] != 0 {
				counts[row]++
			}
		}
	}
	return counts
}

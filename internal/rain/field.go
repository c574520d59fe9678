package rain

import (
	"math"
	"runtime"

	"github.com/san-kum/matrixbg/internal/config"
	"github.com/san-kum/matrixbg/internal/raster"
)

const (
	trailGamma    = 1.4
	headReach     = 2.0
	blackFloor    = 0.01
	layerHueStep  = 0.33
	hueSpread     = 1.5
	hueDrift      = 0.07
	waveSpeed     = 0.4
	waveAmplitude = 0.18
	headDesat     = 0.55
	valueBoost    = 1.5
	glowGain      = 0.45
)

// Sample is the cross-layer result for one pixel before colouring.
type Sample struct {
	Brightness float64
	HeadProx   float64
	Layer      int
}

// Field holds the per-column stream parameters and hue terms for one
// timestamp.
type Field struct {
	width   int
	height  int
	layers  int
	streams []Stream // col*layers + layer
	hueBase []float64
	hueWave []float64
}

func NewField(cfg config.Config, now float64) *Field {
	f := &Field{
		width:   cfg.Width,
		height:  cfg.Height,
		layers:  cfg.Layers,
		streams: make([]Stream, cfg.Width*cfg.Layers),
		hueBase: make([]float64, cfg.Width),
		hueWave: make([]float64, cfg.Width),
	}

	w := float64(cfg.Width)
	for col := 0; col < cfg.Width; col++ {
		for layer := 0; layer < cfg.Layers; layer++ {
			f.streams[col*cfg.Layers+layer] = NewStream(col, layer, cfg.Height, now)
		}
		x := float64(col) / w
		f.hueBase[col] = x*hueSpread + now*hueDrift
		f.hueWave[col] = Sin(now*waveSpeed+x*2*math.Pi) * waveAmplitude
	}
	return f
}

func (f *Field) Stream(col, layer int) Stream {
	return f.streams[col*f.layers+layer]
}

// Sample evaluates every layer of a column at one row. Brightness ties keep
// the lower layer.
func (f *Field) Sample(col, row int) Sample {
	var s Sample
	for layer := 0; layer < f.layers; layer++ {
		st := f.streams[col*f.layers+layer]
		d := st.Head - float64(row)

		if d > 0 && d < st.Tail {
			b := math.Pow(1-d/st.Tail, trailGamma)
			if b > s.Brightness {
				s.Brightness = b
				s.Layer = layer
			}
		}
		if d > 0 && d < headReach {
			hp := 1 - d*0.5
			if hp > s.HeadProx {
				s.HeadProx = hp
			}
		}
	}
	return s
}

// Hue returns the unwrapped hue for a column and winning layer.
func (f *Field) Hue(col, layer int) float64 {
	return f.hueBase[col] + float64(layer)*layerHueStep + f.hueWave[col]
}

// Color returns the final RGB for a pixel. Pixels below the brightness
// floor are exactly black.
func (f *Field) Color(col, row int) (r, g, b uint8) {
	s := f.Sample(col, row)
	if s.Brightness < blackFloor {
		return 0, 0, 0
	}

	sat := 1 - s.HeadProx*headDesat
	val := math.Min(s.Brightness*valueBoost, 1)
	r, g, b = HSV(wrap(f.Hue(col, s.Layer), 1), sat, val)

	glow := int(math.Round(s.HeadProx * s.Brightness * glowGain * 255))
	return addClamp(r, glow), addClamp(g, glow), addClamp(b, glow)
}

// Fill writes the field into dst using up to workers goroutines. dst must
// match the field dimensions.
func (f *Field) Fill(dst *raster.Frame, workers int) {
	ParallelFor(f.height, workers, func(start, end int) {
		for row := start; row < end; row++ {
			for col := 0; col < f.width; col++ {
				r, g, b := f.Color(col, row)
				dst.Set(col, row, r, g, b)
			}
		}
	})
}

// Synthesize renders the full grid for cfg at time now (seconds).
func Synthesize(cfg config.Config, now float64) *raster.Frame {
	frame := raster.NewFrame(cfg.Width, cfg.Height)
	NewField(cfg, now).Fill(frame, runtime.GOMAXPROCS(0))
	return frame
}

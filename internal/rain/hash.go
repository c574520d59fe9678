package rain

import "math"

const hashScale = 43758.5453123

// Hash maps a seed to [0,1) as fract(sin(n) * 43758.5453123).
func Hash(n float64) float64 {
	v := Sin(n) * hashScale
	return v - math.Floor(v)
}

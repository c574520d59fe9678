package rain

import "math"

const (
	layerPrime = 7919

	speedBase  = 3.5
	speedRange = 7.0
	phaseSpan  = 3.0
	tailBase   = 12.0
	tailRange  = 20.0
)

// Stream is the state of one (column, layer) stream at a given time.
type Stream struct {
	Speed float64
	Phase float64
	Tail  float64
	Head  float64
}

// Seed decorrelates layers sharing a column.
func Seed(col, layer int) float64 {
	return float64(col + layer*layerPrime)
}

// NewStream derives the stream parameters for a column and layer on a grid
// of the given height. Head always lies in [0, height+Tail).
func NewStream(col, layer, height int, now float64) Stream {
	seed := Seed(col, layer)
	s := Stream{
		Speed: speedBase + Hash(seed)*speedRange,
		Phase: Hash(seed+1) * float64(height) * phaseSpan,
		Tail:  tailBase + Hash(seed+2)*tailRange,
	}
	s.Head = wrap(s.Speed*now+s.Phase, float64(height)+s.Tail)
	return s
}

// wrap returns x mod m in [0, m) for m > 0.
func wrap(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		r = 0
	}
	return r
}

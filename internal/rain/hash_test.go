package rain

import (
	"math"
	"testing"
)

func TestHashRange(t *testing.T) {
	seeds := []float64{0, 1, -1, 0.5, -0.5, 7919, -7919, 1e6, -1e6, 1e12, -1e12, math.Pi, -math.Pi}
	for i := -5000; i <= 5000; i++ {
		seeds = append(seeds, float64(i)*13.37)
	}

	for _, s := range seeds {
		h := Hash(s)
		if h < 0 || h >= 1 {
			t.Errorf("hash(%g) = %g, outside [0,1)", s, h)
		}
	}
}

func TestHashDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		seed := float64(i) * 1.7
		if Hash(seed) != Hash(seed) {
			t.Errorf("hash(%g) not stable", seed)
		}
	}
}

func TestHashReferenceValues(t *testing.T) {
	tests := []struct {
		seed     float64
		expected float64
	}{
		{0, 0},
		{1, 0.5462177020381205},
		{2, 0.5326541093818378},
		{7921, 0.9109426959257689},
		{15840, 0.007647207588433957},
	}

	for _, tt := range tests {
		if got := Hash(tt.seed); got != tt.expected {
			t.Errorf("hash(%g): expected %v, got %v", tt.seed, tt.expected, got)
		}
	}
}

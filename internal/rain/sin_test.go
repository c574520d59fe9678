package rain

import (
	"math"
	"testing"
)

func TestSinReferenceValues(t *testing.T) {
	tests := []struct {
		x        float64
		expected float64
	}{
		{0.5, 0.479425538604203},
		{2, 0.9092974268256817},
		{-3, -0.1411200080598672},
		{7921, -0.8648845336882347},
		{680000000.1, 0.9090503312376739},
		{1e22, -0.8522008497671888},
		{1e300, -0.8178819121159085},
	}

	for _, tt := range tests {
		if got := Sin(tt.x); got != tt.expected {
			t.Errorf("sin(%g): expected %v, got %v", tt.x, tt.expected, got)
		}
	}
}

func TestSinWithinOneUlp(t *testing.T) {
	for i := -2000; i <= 2000; i++ {
		x := float64(i) * 0.731
		got, ref := Sin(x), math.Sin(x)
		if got != ref && math.Nextafter(ref, got) != got {
			t.Fatalf("sin(%g): %v more than one ulp from %v", x, got, ref)
		}
	}
}

func TestSinSpecialValues(t *testing.T) {
	if got := Sin(0); got != 0 || math.Signbit(got) {
		t.Errorf("expected +0, got %v", got)
	}
	if got := Sin(math.Copysign(0, -1)); !math.Signbit(got) {
		t.Errorf("expected -0, got %v", got)
	}
	if !math.IsNaN(Sin(math.Inf(1))) || !math.IsNaN(Sin(math.NaN())) {
		t.Error("expected NaN for non-finite input")
	}
	if got := Sin(-2); got != -Sin(2) {
		t.Errorf("sin should be odd, got %v vs %v", got, Sin(2))
	}
}

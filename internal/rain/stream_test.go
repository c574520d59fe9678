package rain

import (
	"math"
	"testing"
)

func TestStreamBounds(t *testing.T) {
	const height = 68
	times := []float64{0, 0.25, 1, 59.9, 3600, 1.7e9, -12.5}

	for col := 0; col < 120; col++ {
		for layer := 0; layer < 3; layer++ {
			for _, now := range times {
				s := NewStream(col, layer, height, now)
				if s.Tail < 12 || s.Tail > 32 {
					t.Fatalf("col %d layer %d: tail %f outside [12,32]", col, layer, s.Tail)
				}
				if s.Speed < 3.5 || s.Speed > 10.5 {
					t.Fatalf("col %d layer %d: speed %f outside [3.5,10.5]", col, layer, s.Speed)
				}
				if s.Head < 0 || s.Head >= height+s.Tail {
					t.Fatalf("col %d layer %d t=%g: head %f outside [0,%f)", col, layer, now, s.Head, height+s.Tail)
				}
			}
		}
	}
}

func TestStreamParams(t *testing.T) {
	s := NewStream(5, 2, 40, 3)
	seed := float64(5 + 2*7919)

	if s.Speed != 3.5+Hash(seed)*7 {
		t.Errorf("unexpected speed %f", s.Speed)
	}
	if s.Phase != Hash(seed+1)*40*3 {
		t.Errorf("unexpected phase %f", s.Phase)
	}
	if s.Tail != 12+Hash(seed+2)*20 {
		t.Errorf("unexpected tail %f", s.Tail)
	}
}

func TestStreamLayersDiffer(t *testing.T) {
	a := NewStream(10, 0, 68, 0)
	b := NewStream(10, 1, 68, 0)
	if a.Speed == b.Speed && a.Phase == b.Phase {
		t.Error("layers sharing a column should be decorrelated")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		x, m, expected float64
	}{
		{5, 3, 2},
		{-1, 3, 2},
		{0, 3, 0},
		{6, 3, 0},
		{0.25, 1, 0.25},
		{-0.25, 1, 0.75},
	}

	for _, tt := range tests {
		if got := wrap(tt.x, tt.m); got != tt.expected {
			t.Errorf("wrap(%g, %g): expected %g, got %g", tt.x, tt.m, tt.expected, got)
		}
	}
}

func TestStreamAtWallClock(t *testing.T) {
	s := NewStream(2, 1, 68, 1700000000.25)

	if s.Speed != 9.876598871480383 {
		t.Errorf("expected speed 9.876598871480383, got %v", s.Speed)
	}
	if s.Phase != 66.8356856344908 {
		t.Errorf("expected phase 66.8356856344908, got %v", s.Phase)
	}
	if s.Tail != 18.886945129717787 {
		t.Errorf("expected tail 18.886945129717787, got %v", s.Tail)
	}
	if math.Abs(s.Head-65.422529354164) > 1e-9 {
		t.Errorf("expected head 65.422529354164, got %v", s.Head)
	}
}

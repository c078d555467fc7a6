package modfm

import (
	"math"
	"testing"
)

func TestShapeToRS(t *testing.T) {
	tests := []struct {
		v, r, s float64
	}{
		{0, 0, 1},
		{0.125, 0.5, 0},
		{0.25, 1, -1},
		{0.375, 1, -0.5},
		{0.5, 1, 0},
		{0.625, 1, 0.5},
		{0.75, 1, 1},
		{0.875, 0.5, 1},
		{1, 0, 1},
		{-1, 0, 1},
		{2, 0, 1},
	}
	for _, tt := range tests {
		r, s := ShapeToRS(tt.v)
		if math.Abs(r-tt.r) > 1e-12 || math.Abs(s-tt.s) > 1e-12 {
			t.Fatalf("ShapeToRS(%v) = (%v, %v), want (%v, %v)", tt.v, r, s, tt.r, tt.s)
		}
	}
}

func TestShapeToRSRanges(t *testing.T) {
	for v := 0.0; v <= 1; v += 0.001 {
		r, s := ShapeToRS(v)
		if r < 0 || r > 1 || s < -1 || s > 1 {
			t.Fatalf("ShapeToRS(%v) = (%v, %v) out of range", v, r, s)
		}
	}
}

package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestLinspace(t *testing.T) {
	got := Linspace(0, 1, 5)
	RequireSliceNearlyEqual(t, got, []float64{0, 0.25, 0.5, 0.75, 1}, 1e-15)

	if one := Linspace(3, 7, 1); len(one) != 1 || one[0] != 3 {
		t.Fatalf("Linspace(3, 7, 1) = %v, want [3]", one)
	}
	if none := Linspace(0, 1, 0); none != nil {
		t.Fatalf("Linspace(0, 1, 0) = %v, want nil", none)
	}
}

func TestLogspace(t *testing.T) {
	got := Logspace(20, 20000, 4)
	RequireSliceNearlyEqual(t, got, []float64{20, 200, 2000, 20000}, 1e-9)
}

func TestDeterministicPhases(t *testing.T) {
	a := DeterministicPhases(42, 64)
	b := DeterministicPhases(42, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("phases not deterministic at index %d", i)
		}
		if a[i] < 0 || a[i] >= 1 {
			t.Fatalf("phase[%d] = %v outside [0, 1)", i, a[i])
		}
	}
}

package formant

import (
	"math"
	"testing"
)

func TestAtMatchesShapePoints(t *testing.T) {
	for r := Bass; r <= Soprano; r++ {
		table := Lookup(r)
		for n := 0; n < ShapeSpan; n++ {
			set := At(r, float64(n))
			for k := range set {
				if set[k].Frequency != table[k].Frequency[n] {
					t.Fatalf("%v partial %d point %d: freq %v, want %v", r, k, n, set[k].Frequency, table[k].Frequency[n])
				}
				if set[k].Bandwidth != table[k].Bandwidth[n] {
					t.Fatalf("%v partial %d point %d: bw %v, want %v", r, k, n, set[k].Bandwidth, table[k].Bandwidth[n])
				}
				if set[k].Amplitude != table[k].Amplitude[n] {
					t.Fatalf("%v partial %d point %d: amp %v, want %v", r, k, n, set[k].Amplitude, table[k].Amplitude[n])
				}
			}
		}
	}
}

func TestAtInterpolatesLinearly(t *testing.T) {
	set := At(Bass, 0.25)
	// Bass first formant goes 600 -> 400 between points 0 and 1.
	if math.Abs(set[0].Frequency-550) > 1e-12 {
		t.Fatalf("freq = %v, want 550", set[0].Frequency)
	}
	// Second formant amplitude goes 0.45 -> 0.25.
	if math.Abs(set[1].Amplitude-0.4) > 1e-12 {
		t.Fatalf("amp = %v, want 0.4", set[1].Amplitude)
	}
	// Point 4.5 sits between u and the closing a.
	set = At(Tenor, 4.5)
	if math.Abs(set[0].Frequency-500) > 1e-12 {
		t.Fatalf("freq = %v, want 500", set[0].Frequency)
	}
}

func TestAtWrapsPosition(t *testing.T) {
	tests := []struct {
		in, same float64
	}{
		{5, 0},
		{6.5, 1.5},
		{-0.5, 4.5},
		{-7.25, 2.75},
	}
	for _, tt := range tests {
		got := At(Alto, tt.in)
		want := At(Alto, tt.same)
		for k := range got {
			if math.Abs(got[k].Frequency-want[k].Frequency) > 1e-9 {
				t.Fatalf("At(%v) partial %d = %v, want %v", tt.in, k, got[k].Frequency, want[k].Frequency)
			}
		}
	}
}

func TestWrapPosition(t *testing.T) {
	for _, p := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := WrapPosition(p); got != 0 {
			t.Fatalf("WrapPosition(%v) = %v, want 0", p, got)
		}
	}
	for p := -20.0; p < 20; p += 0.173 {
		w := WrapPosition(p)
		if w < 0 || w >= ShapeSpan {
			t.Fatalf("WrapPosition(%v) = %v out of range", p, w)
		}
	}
}

func TestFirstFormantIsReference(t *testing.T) {
	for r := Bass; r <= Soprano; r++ {
		table := Lookup(r)
		for n := 0; n < ShapePoints; n++ {
			if table[0].Amplitude[n] != 1 {
				t.Fatalf("%v first formant amplitude[%d] = %v, want 1", r, n, table[0].Amplitude[n])
			}
			for k := 1; k < Partials; k++ {
				a := table[k].Amplitude[n]
				if a <= 0 || a >= 1 {
					t.Fatalf("%v partial %d amplitude[%d] = %v out of (0,1)", r, k, n, a)
				}
			}
		}
	}
}

func TestLookupClampsRegister(t *testing.T) {
	if Lookup(-3) != Lookup(Bass) {
		t.Fatal("negative register not clamped to bass")
	}
	if Lookup(42) != Lookup(Soprano) {
		t.Fatal("large register not clamped to soprano")
	}
}

func TestRegisterString(t *testing.T) {
	names := map[Register]string{Bass: "bass", Tenor: "tenor", Alto: "alto", Soprano: "soprano", 9: "Register(9)"}
	for r, want := range names {
		if got := r.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
	if Register(4).Valid() || !Alto.Valid() {
		t.Fatal("Valid() mismatch")
	}
}

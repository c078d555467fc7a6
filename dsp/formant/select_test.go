package formant

import "testing"

func TestSelectDirect(t *testing.T) {
	for sel := 0; sel < FirstAutoSelector; sel++ {
		for _, note := range []int{0, 40, 60, 100, 127} {
			if got := Select(sel, note); got != Register(sel) {
				t.Fatalf("Select(%d, %d) = %v, want %v", sel, note, got, Register(sel))
			}
		}
	}
	if got := Select(-1, 60); got != Bass {
		t.Fatalf("Select(-1) = %v, want bass", got)
	}
}

func TestSelectThresholdBoundaries(t *testing.T) {
	for sel := FirstAutoSelector; sel <= MaxSelector; sel++ {
		points, ok := SplitPoints(sel)
		if !ok {
			t.Fatalf("SplitPoints(%d) not ok", sel)
		}
		for i, p := range points {
			below := Register(i)
			at := Register(i + 1)
			if got := Select(sel, p-1); got != below {
				t.Fatalf("selector %d note %d = %v, want %v", sel, p-1, got, below)
			}
			if got := Select(sel, p); got != at {
				t.Fatalf("selector %d note %d (threshold) = %v, want %v", sel, p, got, at)
			}
		}
	}
}

func TestSelectKnownSplits(t *testing.T) {
	tests := []struct {
		sel, note int
		want      Register
	}{
		{4, 53, Bass},
		{4, 54, Tenor},
		{4, 64, Alto},
		{4, 74, Soprano},
		{7, 47, Bass},
		{7, 48, Tenor},
		{7, 68, Soprano},
		{99, 68, Soprano},
	}
	for _, tt := range tests {
		if got := Select(tt.sel, tt.note); got != tt.want {
			t.Fatalf("Select(%d, %d) = %v, want %v", tt.sel, tt.note, got, tt.want)
		}
	}
}

func TestSplitPointsAscending(t *testing.T) {
	for sel := FirstAutoSelector; sel <= MaxSelector; sel++ {
		p, _ := SplitPoints(sel)
		if !(p[0] < p[1] && p[1] < p[2]) {
			t.Fatalf("selector %d thresholds not ascending: %v", sel, p)
		}
	}
	if _, ok := SplitPoints(2); ok {
		t.Fatal("direct selector reported split points")
	}
}

package level

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-modfm/dsp/fastmath"
	"github.com/cwbudde/algo-modfm/dsp/osc"
	"github.com/cwbudde/algo-modfm/internal/testutil"
)

func TestCalculateSine(t *testing.T) {
	sig := testutil.DeterministicSine(100, 8000, 0.5, 8000)
	st := Calculate(sig)

	if st.Frames != 8000 {
		t.Fatalf("Frames = %d", st.Frames)
	}
	if math.Abs(st.RMS-0.5/math.Sqrt2) > 1e-6 {
		t.Fatalf("RMS = %v", st.RMS)
	}
	if math.Abs(st.Peak-0.5) > 1e-9 {
		t.Fatalf("Peak = %v", st.Peak)
	}
	if math.Abs(st.DC) > 1e-9 {
		t.Fatalf("DC = %v", st.DC)
	}
	if math.Abs(st.CrestFactor-math.Sqrt2) > 1e-5 {
		t.Fatalf("CrestFactor = %v", st.CrestFactor)
	}
	if math.Abs(st.PeakdB+6.0206) > 1e-3 {
		t.Fatalf("PeakdB = %v", st.PeakdB)
	}
	// 100 cycles, two crossings each, minus the exact zeros that do not
	// count as a sign change.
	if st.ZeroCrossings < 190 || st.ZeroCrossings > 200 {
		t.Fatalf("ZeroCrossings = %d", st.ZeroCrossings)
	}
}

func TestMeterMatchesCalculate(t *testing.T) {
	sig := testutil.DeterministicSine(440, 48000, 0.9, 1000)
	var m Meter
	for i := 0; i < len(sig); i += 64 {
		m.Update(sig[i:min(i+64, len(sig))])
	}
	got, want := m.Result(), Calculate(sig)
	if got.Frames != want.Frames || got.PeakPos != want.PeakPos || got.ZeroCrossings != want.ZeroCrossings {
		t.Fatalf("streamed %+v, want %+v", got, want)
	}
	if math.Abs(got.RMS-want.RMS) > 1e-12 || got.Peak != want.Peak {
		t.Fatalf("streamed %+v, want %+v", got, want)
	}

	m.Reset()
	if m.Frames() != 0 {
		t.Fatal("Reset did not clear meter")
	}
}

func TestEmpty(t *testing.T) {
	st := Calculate(nil)
	if st.Frames != 0 || !math.IsInf(st.RMSdB, -1) || !math.IsInf(st.PeakdB, -1) {
		t.Fatalf("empty stats = %+v", st)
	}
}

func TestEnvelopeShapesTimbreNotLevel(t *testing.T) {
	for _, variant := range osc.Variants {
		v, err := osc.New(variant, osc.WithSampleRate(48000), osc.WithMath(fastmath.Exact{}))
		if err != nil {
			t.Fatal(err)
		}
		// The envelope drives modulation depth, not gain. With amount 0
		// the release leaves the output level unchanged.
		v.SetParameter(osc.ParamAttack, 0)
		v.SetParameter(osc.ParamDecay, 10)
		p := osc.NewNoteParams(60, 0, 0)
		v.NoteOn(p)

		buf := make([]float64, 4800)
		v.RenderFloat(p, buf)
		held := Calculate(buf)
		v.NoteOff(p)
		v.RenderFloat(p, buf)
		released := Calculate(buf)

		if math.Abs(held.RMS-released.RMS) > 0.05 {
			t.Fatalf("%v: rms held %v, released %v", variant, held.RMS, released.RMS)
		}
	}
}

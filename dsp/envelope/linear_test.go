package envelope

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-modfm/dsp/fastmath"
)

const testSampleRate = 48000

func newTestEnvelope(t *testing.T) *Linear {
	t.Helper()
	e, err := NewLinear(testSampleRate)
	if err != nil {
		t.Fatalf("NewLinear() error = %v", err)
	}
	return e
}

func TestNewLinearValidation(t *testing.T) {
	for _, sr := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := NewLinear(sr); err == nil {
			t.Fatalf("NewLinear(%v) expected error", sr)
		}
	}
}

func TestAttackIsMonotonicAndConverges(t *testing.T) {
	tests := []struct {
		name   string
		attack float64
	}{
		{name: "10ms", attack: 0.01},
		{name: "37ms", attack: 0.037},
		{name: "1s", attack: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnvelope(t)
			e.Start(tt.attack, 0.1)
			if e.Level() != 0 {
				t.Fatalf("level after Start = %v, want 0", e.Level())
			}

			want := tt.attack * testSampleRate
			if inc := e.AttackIncrement(); math.Abs(inc*want-1) > 1e-12 {
				t.Fatalf("AttackIncrement() = %v, want 1/%v", inc, want)
			}
			prev := 0.0
			steps := 0
			for e.Level() < 1 {
				got := e.Step()
				steps++
				if got < prev {
					t.Fatalf("step %d: level decreased %v -> %v", steps, prev, got)
				}
				prev = got
				if float64(steps) > want+2 {
					t.Fatalf("attack did not converge within %v steps", want+2)
				}
			}
			if math.Abs(float64(steps)-want) > 1 {
				t.Fatalf("attack took %d steps, want %v +-1", steps, want)
			}
			if e.Step() != 1 {
				t.Fatal("level must hold at 1 while not releasing")
			}
		})
	}
}

func TestReleaseIsMonotonicAndConverges(t *testing.T) {
	e := newTestEnvelope(t)
	e.Start(0, 0.05)
	e.Release()
	if e.Level() != 1 {
		t.Fatalf("Release must not change level immediately, got %v", e.Level())
	}
	if !e.Releasing() {
		t.Fatal("Releasing() = false after Release")
	}

	want := 0.05 * testSampleRate
	if inc := e.DecayIncrement(); math.Abs(inc*want-1) > 1e-12 {
		t.Fatalf("DecayIncrement() = %v, want 1/%v", inc, want)
	}
	prev := e.Level()
	steps := 0
	for e.Level() > 0 {
		got := e.Step()
		steps++
		if got > prev {
			t.Fatalf("step %d: level increased %v -> %v", steps, prev, got)
		}
		prev = got
		if float64(steps) > want+2 {
			t.Fatalf("decay did not converge within %v steps", want+2)
		}
	}
	if math.Abs(float64(steps)-want) > 1 {
		t.Fatalf("decay took %d steps, want %v +-1", steps, want)
	}
	if e.Step() != 0 {
		t.Fatal("level must hold at 0 after decay")
	}
}

func TestZeroAttackStartsAtFullLevel(t *testing.T) {
	e := newTestEnvelope(t)
	e.Start(0, 1)
	if e.Level() != 1 {
		t.Fatalf("Level() = %v, want 1", e.Level())
	}
	if e.Step() != 1 {
		t.Fatal("zero attack must not ramp")
	}
}

func TestZeroDecayDropsInOneStep(t *testing.T) {
	e := newTestEnvelope(t)
	e.Start(0.5, 0)
	if e.DecayIncrement() != 1 {
		t.Fatalf("DecayIncrement() = %v, want 1", e.DecayIncrement())
	}
	for i := 0; i < 100; i++ {
		e.Step()
	}
	e.Release()
	if got := e.Step(); got != 0 {
		t.Fatalf("level after one release step = %v, want 0", got)
	}
}

func TestReleaseDuringAttack(t *testing.T) {
	e := newTestEnvelope(t)
	e.Start(1, 1)
	for i := 0; i < 4800; i++ {
		e.Step()
	}
	peak := e.Level()
	e.Release()
	if got := e.Step(); got >= peak {
		t.Fatalf("release step = %v, want < %v", got, peak)
	}
}

func TestStartRearms(t *testing.T) {
	e := newTestEnvelope(t)
	e.Start(0.01, 0.01)
	e.Release()
	e.Step()
	e.Start(0.01, 0.01)
	if e.Releasing() || e.Level() != 0 {
		t.Fatalf("Start did not re-arm: releasing=%v level=%v", e.Releasing(), e.Level())
	}
}

func TestTimeFromControl(t *testing.T) {
	m := fastmath.Exact{}
	if got := TimeFromControl(m, 0); got != 0 {
		t.Fatalf("TimeFromControl(0) = %v, want 0", got)
	}
	if got := TimeFromControl(m, 1); math.Abs(got-MaxTimeSeconds) > 1e-9 {
		t.Fatalf("TimeFromControl(1) = %v, want %v", got, MaxTimeSeconds)
	}
	if got := TimeFromControl(m, 3); math.Abs(got-MaxTimeSeconds) > 1e-9 {
		t.Fatalf("TimeFromControl(3) = %v, want clamp to %v", got, MaxTimeSeconds)
	}
	prev := -1.0
	for x := 0.0; x <= 1; x += 0.01 {
		got := TimeFromControl(m, x)
		if got < prev {
			t.Fatalf("TimeFromControl not monotonic at %v", x)
		}
		prev = got
	}
	for _, s := range []float64{0.01, 0.1, 2.5} {
		if got := TimeFromControl(m, ControlFromTime(s)); math.Abs(got-s) > 1e-9 {
			t.Fatalf("round trip %v -> %v", s, got)
		}
	}
}

package motion

import (
	"math"
	"testing"
)

func TestOscillatorRidesBaseline(t *testing.T) {
	o := Oscillator{Amplitude: 2, Speed: math.Pi}

	if y, ok := o.Step(0.5, 10); ok || y != 10 {
		t.Fatalf("idle oscillator should pass the baseline through, got %v ok=%v", y, ok)
	}
	if o.Phase() != 0 {
		t.Fatalf("idle oscillator should not advance its phase")
	}

	o.Start()
	y, ok := o.Step(0.5, 10)
	if !ok || math.Abs(y-12) > 1e-9 {
		t.Fatalf("expected peak at 12, got %v ok=%v", y, ok)
	}

	// baseline moved; the offset follows it
	y, _ = o.Step(0.5, 20)
	if math.Abs(y-20) > 1e-9 {
		t.Fatalf("expected 20 at phase pi, got %v", y)
	}

	o.Stop()
	if o.Running() {
		t.Fatalf("oscillator should be stopped")
	}
	phase := o.Phase()
	o.Step(1, 0)
	if o.Phase() != phase {
		t.Fatalf("phase advanced while stopped")
	}
}

func TestOscillatorContinuous(t *testing.T) {
	o := Oscillator{Amplitude: 1, Speed: 1, Continuous: true}
	o.Stop()
	if !o.Running() {
		t.Fatalf("continuous oscillation ignores Stop")
	}
	if _, ok := o.Step(0.1, 0); !ok {
		t.Fatalf("continuous oscillator should step")
	}
}

package motion

import "math"

// Oscillator bobs a position up and down around a moving baseline.
// Continuous keeps it running permanently; Start and Stop toggle it
// temporarily on top of that.
type Oscillator struct {
	Amplitude  float64
	Speed      float64
	Continuous bool

	phase  float64
	active bool
}

func (o *Oscillator) Start() {
	o.active = true
}

func (o *Oscillator) Stop() {
	o.active = false
}

func (o *Oscillator) Running() bool {
	return o.Continuous || o.active
}

func (o *Oscillator) Phase() float64 {
	return o.phase
}

// Step advances the phase by dt and returns the vertical coordinate for the
// given baseline. ok is false while the oscillator is idle, in which case the
// phase does not advance.
func (o *Oscillator) Step(dt, baseY float64) (float64, bool) {
	if !o.Running() {
		return baseY, false
	}
	o.phase += dt * o.Speed
	return baseY + o.Amplitude*math.Sin(o.phase), true
}

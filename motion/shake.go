package motion

import (
	"math/rand/v2"

	"github.com/milk9111/pathrig/geom"
)

// ShakePreset is a named duration and intensity pair played in place of the
// shake's configured values.
type ShakePreset struct {
	Duration  float64 `yaml:"duration"`
	Intensity float64 `yaml:"intensity"`
}

// DefaultShakePresets returns the built-in presets. Prefabs may override or
// extend them.
func DefaultShakePresets() map[string]ShakePreset {
	return map[string]ShakePreset{
		"short":  {Duration: 0.3, Intensity: 0.15},
		"medium": {Duration: 0.8, Intensity: 0.2},
		"long":   {Duration: 1.5, Intensity: 0.25},
	}
}

// Shake is a one-shot jitter. Each tick it yields an independent random
// offset per axis scaled by Intensity and the envelope sampled at the
// normalized elapsed time. With RotationScale set it also yields a pitch and
// yaw jitter of up to RotationScale degrees per unit of scaled intensity. A
// running shake cannot be restarted or cancelled.
type Shake struct {
	Duration      float64
	Intensity     float64
	RotationScale float64
	Envelope      Curve

	// duration and intensity of the current run
	duration  float64
	intensity float64
	elapsed   float64
	running   bool
	rotation  geom.Quat
}

// Play starts the shake with its configured duration and intensity. It
// reports false and leaves the running shake untouched when one is already
// in progress.
func (s *Shake) Play() bool {
	return s.PlayPreset(ShakePreset{Duration: s.Duration, Intensity: s.Intensity})
}

// PlayPreset starts the shake with the preset's duration and intensity. The
// configured values are kept for later calls to Play.
func (s *Shake) PlayPreset(p ShakePreset) bool {
	if s.running {
		return false
	}
	s.running = true
	s.elapsed = 0
	s.duration = p.Duration
	s.intensity = p.Intensity
	s.rotation = geom.Identity()
	return true
}

func (s *Shake) Running() bool {
	return s.running
}

func (s *Shake) Elapsed() float64 {
	return s.elapsed
}

// Rotation returns the rotational jitter of the last Step. ok is false when
// the last Step produced none.
func (s *Shake) Rotation() (q geom.Quat, ok bool) {
	if s.rotation == (geom.Quat{}) || s.rotation == geom.Identity() {
		return geom.Identity(), false
	}
	return s.rotation, true
}

// Step returns the offset to add this tick. done is true on the tick the
// shake finishes; after that Step returns a zero offset until Play is called
// again.
func (s *Shake) Step(dt float64, rng *rand.Rand) (offset geom.Vec, done bool) {
	s.rotation = geom.Identity()
	if !s.running {
		return geom.Vec{}, false
	}
	if s.duration <= 0 {
		s.running = false
		return geom.Vec{}, true
	}

	s.elapsed += dt
	if s.elapsed >= s.duration {
		s.elapsed = s.duration
		s.running = false
		done = true
	}

	envelope := s.Envelope
	if envelope.Empty() {
		envelope = LinearFalloff()
	}
	scale := envelope.Evaluate(s.elapsed/s.duration) * s.intensity
	if scale == 0 {
		return geom.Vec{}, done
	}
	offset = geom.Vec{
		X: (rng.Float64()*2 - 1) * scale,
		Y: (rng.Float64()*2 - 1) * scale,
		Z: (rng.Float64()*2 - 1) * scale,
	}
	if s.RotationScale != 0 {
		pitch := (rng.Float64()*2 - 1) * scale * s.RotationScale
		yaw := (rng.Float64()*2 - 1) * scale * s.RotationScale
		s.rotation = geom.FromEuler(pitch, yaw, 0)
	}
	return offset, done
}

package system

import (
	"log/slog"
	"math/rand/v2"

	"github.com/milk9111/pathrig/ecs"
	"github.com/milk9111/pathrig/ecs/component"
	"github.com/milk9111/pathrig/geom"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ShakeSystem starts requested shakes and adds the running shake's offset
// to the actor position each tick. Rotational jitter replaces the previous
// tick's jitter on the actor rotation.
type ShakeSystem struct {
	rng    *rand.Rand
	logger *slog.Logger
}

func NewShakeSystem(seed uint64, logger *slog.Logger) *ShakeSystem {
	return &ShakeSystem{
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		logger: componentLogger(logger, "system.shake"),
	}
}

func (s *ShakeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Clock().Delta()
	ecs.ForEach2(w, component.ShakeComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, sh *component.Shake, tr *component.Transform) {
		if req, ok := ecs.Get(w, e, component.ShakeRequestComponent.Kind()); ok {
			_ = ecs.Remove(w, e, component.ShakeRequestComponent.Kind())
			s.play(e, sh, req.Preset)
		}

		tr.Rotation = withoutJitter(tr.Rotation, sh)
		sh.Applied = geom.Quat{}

		offset, done := sh.Shake.Step(dt, s.rng)
		if offset != (geom.Vec{}) {
			tr.Position = r3.Add(tr.Position, offset)
		}
		if rot, ok := sh.Shake.Rotation(); ok {
			tr.Rotation = quat.Mul(tr.Rotation, rot)
			sh.Applied = rot
		}
		if done {
			w.Emit(e, ecs.EventShakeFinished, nil)
		}
	})
}

func (s *ShakeSystem) play(e ecs.Entity, sh *component.Shake, preset string) {
	var started bool
	if preset == "" {
		started = sh.Shake.Play()
	} else {
		p, ok := sh.Presets[preset]
		if !ok {
			s.logger.Warn("unknown shake preset", "entity", e, "preset", preset)
			return
		}
		started = sh.Shake.PlayPreset(p)
	}
	if !started {
		s.logger.Debug("shake already running", "entity", e, "elapsed", sh.Shake.Elapsed())
	}
}

// withoutJitter removes the shake rotation applied on the previous tick.
func withoutJitter(q geom.Quat, sh *component.Shake) geom.Quat {
	if sh == nil || sh.Applied == (geom.Quat{}) {
		return q
	}
	return quat.Mul(q, quat.Conj(sh.Applied))
}

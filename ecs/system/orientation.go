package system

import (
	"github.com/milk9111/pathrig/ecs"
	"github.com/milk9111/pathrig/ecs/component"
	"github.com/milk9111/pathrig/geom"
	"github.com/milk9111/pathrig/route"
	"gonum.org/v1/gonum/num/quat"
)

// OrientationSystem turns the actor towards the target orientation derived
// from the path. Ticks with no usable direction leave the rotation alone.
// Smoothing starts from the rotation without this tick's shake jitter, and
// the jitter is composed back on top afterwards.
type OrientationSystem struct{}

func NewOrientationSystem() *OrientationSystem {
	return &OrientationSystem{}
}

func (s *OrientationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Clock().Delta()
	ecs.ForEach2(w, component.PathFollowerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pf *component.PathFollower, tr *component.Transform) {
		if !pf.Enabled || len(pf.Path) < 2 {
			return
		}

		sh, _ := ecs.Get(w, e, component.ShakeComponent.Kind())
		base := withoutJitter(tr.Rotation, sh)

		target, ok := route.Orientation(pf.Path, pf.T, route.OrientationOptions{
			Heading:        pf.Heading,
			Interpolation:  pf.Interpolation,
			SampleDelta:    pf.SampleDelta,
			CurrentForward: geom.ForwardOf(base),
		})
		if !ok {
			return
		}
		next := route.Smooth(base, target, dt, pf.RotationSpeed, pf.SmoothRotation)
		if sh != nil && sh.Applied != (geom.Quat{}) {
			next = quat.Mul(next, sh.Applied)
		}
		tr.Rotation = next
	})
}

package system

import (
	"github.com/milk9111/pathrig/ecs"
	"github.com/milk9111/pathrig/ecs/component"
	"github.com/milk9111/pathrig/route"
)

// SteeringSystem estimates curvature at the follower's progress and eases
// the rig's parts towards the matching steering angle.
type SteeringSystem struct{}

func NewSteeringSystem() *SteeringSystem {
	return &SteeringSystem{}
}

func (s *SteeringSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Clock().Delta()
	ecs.ForEach2(w, component.SteeringRigComponent.Kind(), component.PathFollowerComponent.Kind(), func(e ecs.Entity, rig *component.SteeringRig, pf *component.PathFollower) {
		if !pf.Enabled {
			return
		}

		rig.Rate = route.AngularRate(pf.Path, pf.T, pf.Interpolation, pf.SampleDelta)
		rig.Angle = route.SteerToward(rig.Angle, rig.Rate*rig.MaxAngle, dt, rig.Speed)
		for i := range rig.Parts {
			rig.Parts[i].Angle = rig.Angle * rig.Parts[i].Scale
		}
	})
}

package system

import (
	"github.com/milk9111/pathrig/ecs"
	"github.com/milk9111/pathrig/ecs/component"
)

// PathFollowSystem writes the path-driven base position. It runs before the
// motion effects, which perturb the result, and before orientation.
type PathFollowSystem struct{}

func NewPathFollowSystem() *PathFollowSystem {
	return &PathFollowSystem{}
}

func (s *PathFollowSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PathFollowerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pf *component.PathFollower, tr *component.Transform) {
		if !pf.Enabled || len(pf.Path) == 0 {
			return
		}

		pf.T = pf.Progress.Resolve(len(pf.Path))
		pos, ok := pf.Path.Position(pf.T, pf.Interpolation)
		if !ok {
			return
		}
		tr.Position = pos

		if osc, ok := ecs.Get(w, e, component.OscillationComponent.Kind()); ok {
			osc.BaseY = pos.Y
		}
	})
}

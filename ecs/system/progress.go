package system

import (
	"github.com/milk9111/pathrig/ecs"
	"github.com/milk9111/pathrig/ecs/component"
)

// ProgressSystem applies progress overrides and otherwise lets the follower
// travel at its configured speed. An override wins for the tick it arrives.
type ProgressSystem struct{}

func NewProgressSystem() *ProgressSystem {
	return &ProgressSystem{}
}

func (s *ProgressSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Clock().Delta()
	ecs.ForEach(w, component.PathFollowerComponent.Kind(), func(e ecs.Entity, pf *component.PathFollower) {
		req, hasReq := ecs.Get(w, e, component.ProgressRequestComponent.Kind())
		if hasReq {
			_ = ecs.Remove(w, e, component.ProgressRequestComponent.Kind())
		}
		if !pf.Enabled {
			return
		}

		if hasReq {
			if req.Waypoint {
				pf.Progress.MoveToWaypoint(req.Index, req.Fraction)
			} else {
				pf.Progress.SetNormalized(req.T)
			}
			return
		}
		pf.Progress.Advance(dt, pf.Travel.Speed, pf.Travel.Loop, len(pf.Path))
	})
}

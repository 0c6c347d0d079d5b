package system

import (
	"github.com/milk9111/pathrig/ecs"
	"github.com/milk9111/pathrig/ecs/component"
)

// OscillationSystem overwrites the vertical coordinate with a sine bob around
// the baseline the path follow system recorded this tick.
type OscillationSystem struct{}

func NewOscillationSystem() *OscillationSystem {
	return &OscillationSystem{}
}

func (s *OscillationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Clock().Delta()
	ecs.ForEach2(w, component.OscillationComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, osc *component.Oscillation, tr *component.Transform) {
		if req, ok := ecs.Get(w, e, component.OscillationRequestComponent.Kind()); ok {
			_ = ecs.Remove(w, e, component.OscillationRequestComponent.Kind())
			if req.Start {
				osc.Oscillator.Start()
			} else {
				osc.Oscillator.Stop()
			}
		}

		if pf, ok := ecs.Get(w, e, component.PathFollowerComponent.Kind()); ok && (!pf.Enabled || len(pf.Path) == 0) {
			return
		}

		if y, ok := osc.Oscillator.Step(dt, osc.BaseY); ok {
			tr.Position.Y = y
		}
	})
}

package system

import (
	"log/slog"

	"github.com/milk9111/pathrig/ecs"
	"github.com/milk9111/pathrig/ecs/component"
)

// GroupSwitchSystem consumes SwitchRequest components.
type GroupSwitchSystem struct {
	logger *slog.Logger
}

func NewGroupSwitchSystem(logger *slog.Logger) *GroupSwitchSystem {
	return &GroupSwitchSystem{logger: componentLogger(logger, "system.group_switch")}
}

func (s *GroupSwitchSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.SwitchRequestComponent.Kind(), func(e ecs.Entity, req *component.SwitchRequest) {
		_ = ecs.Remove(w, e, component.SwitchRequestComponent.Kind())

		pf, ok := ecs.Get(w, e, component.PathFollowerComponent.Kind())
		if !ok {
			return
		}
		if !pf.Enabled {
			s.logger.Info("switch ignored while disabled", "entity", e, "kind", req.Kind)
			return
		}
		_ = ApplySwitch(w, e, pf, *req, s.logger)
	})
}

package system

import (
	"log/slog"

	"github.com/milk9111/pathrig/ecs"
	"github.com/milk9111/pathrig/ecs/component"
)

// ActivationSystem applies enable/disable requests and performs each
// follower's one-time first activation. Re-enabling a follower resumes its
// last active group instead of activating it again.
type ActivationSystem struct {
	logger *slog.Logger
}

func NewActivationSystem(logger *slog.Logger) *ActivationSystem {
	return &ActivationSystem{logger: componentLogger(logger, "system.activation")}
}

func (s *ActivationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	// The scheduler has already advanced the clock, so a follower activated
	// on the first tick records that tick's delta as its start time.
	now := w.Clock().Elapsed()
	ecs.ForEach(w, component.PathFollowerComponent.Kind(), func(e ecs.Entity, pf *component.PathFollower) {
		if req, ok := ecs.Get(w, e, component.EnableRequestComponent.Kind()); ok {
			_ = ecs.Remove(w, e, component.EnableRequestComponent.Kind())
			s.setEnabled(w, e, pf, req.Enabled)
		}
		if !pf.Enabled || pf.Switcher == nil {
			return
		}

		if pf.Switcher.Activate(now, pf.InitialGroup) {
			loadGroup(w, e, pf, pf.Switcher.Active(), s.logger)
			pf.Progress.Reset()
			s.logger.Debug("activated", "entity", e, "group", pf.Switcher.Active(), "at", now)
		}
	})
}

func (s *ActivationSystem) setEnabled(w *ecs.World, e ecs.Entity, pf *component.PathFollower, enabled bool) {
	if pf.Enabled == enabled {
		return
	}
	pf.Enabled = enabled
	if pf.Switcher == nil || !pf.Switcher.Activated() {
		return
	}

	if !enabled {
		pf.LastActiveGroup = pf.Switcher.Active()
		return
	}
	// The switcher kept its state while paused; reload its group in case the
	// route changed underneath us. Progress resumes where it stopped.
	loadGroup(w, e, pf, pf.Switcher.Active(), s.logger)
}

package system

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/milk9111/pathrig/ecs"
	"github.com/milk9111/pathrig/ecs/component"
	"github.com/milk9111/pathrig/route"
)

// loadGroup makes group idx the follower's active path. An empty group is
// loaded as an empty path so the follower holds its pose until a non-empty
// group arrives; it is reported once, here.
func loadGroup(w *ecs.World, e ecs.Entity, pf *component.PathFollower, idx int, logger *slog.Logger) {
	g, err := pf.Route.Group(idx)
	switch {
	case err == nil:
		pf.Path = g.Path
		pf.LastActiveGroup = idx
	case errors.Is(err, route.ErrEmptyGroup):
		logger.Warn("loaded empty group, holding pose", "entity", e, "group", idx, "name", g.Name)
		w.Emit(e, ecs.EventGroupEmpty, idx)
		pf.Path = nil
		pf.LastActiveGroup = idx
	default:
		logger.Warn("load group", "entity", e, "group", idx, "err", err)
	}
}

// ApplySwitch runs a switch request against the follower's switcher. On
// success the new group is loaded and progress restarts from the beginning.
// Rejections are logged and returned; they never change state.
func ApplySwitch(w *ecs.World, e ecs.Entity, pf *component.PathFollower, req component.SwitchRequest, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if pf == nil || pf.Switcher == nil {
		return route.ErrInactive
	}
	now := w.Clock().Elapsed()
	prev := pf.Switcher.Active()

	var (
		next int
		err  error
	)
	switch req.Kind {
	case component.SwitchNext:
		next, err = pf.Switcher.Next(now)
	case component.SwitchPrevious:
		next, err = pf.Switcher.Previous(now)
	case component.SwitchToName:
		if idx := pf.Route.IndexOf(req.Name); idx >= 0 {
			next, err = pf.Switcher.To(idx, now)
		} else {
			err = fmt.Errorf("%w: no group named %q", route.ErrInvalidIndex, req.Name)
		}
	default:
		next, err = pf.Switcher.To(req.Index, now)
	}
	if err != nil {
		logger.Info("switch rejected", "entity", e, "kind", req.Kind, "active", prev, "at", now, "reason", err)
		w.Emit(e, ecs.EventSwitchRejected, err)
		return err
	}

	loadGroup(w, e, pf, next, logger)
	pf.Progress.Reset()
	pf.T = 0
	logger.Info("switched group", "entity", e, "from", prev, "to", next, "at", now)
	w.Emit(e, ecs.EventGroupSwitched, next)
	return nil
}

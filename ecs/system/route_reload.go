package system

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/milk9111/pathrig/ecs"
	"github.com/milk9111/pathrig/ecs/component"
	"github.com/milk9111/pathrig/ecs/entity"
	"github.com/milk9111/pathrig/prefabs"
	"github.com/milk9111/pathrig/route"
)

// ChangeSource reports changed prefab files by base name without blocking.
// *prefabs.Watcher satisfies it.
type ChangeSource interface {
	Poll() []string
}

// RouteReloadSystem rebuilds a follower's groups when its route prefab
// changes on disk and tells the cue script system about edited scripts.
type RouteReloadSystem struct {
	source   ChangeSource
	onScript func(name string)
	logger   *slog.Logger
}

func NewRouteReloadSystem(source ChangeSource, onScript func(name string), logger *slog.Logger) *RouteReloadSystem {
	return &RouteReloadSystem{
		source:   source,
		onScript: onScript,
		logger:   componentLogger(logger, "system.route_reload"),
	}
}

func (s *RouteReloadSystem) Update(w *ecs.World) {
	if w == nil || s.source == nil {
		return
	}

	for _, name := range s.source.Poll() {
		if filepath.Ext(name) == ".tengo" {
			if s.onScript != nil {
				s.onScript(name)
			}
			continue
		}

		ecs.ForEach(w, component.PathFollowerComponent.Kind(), func(e ecs.Entity, pf *component.PathFollower) {
			if pf.RouteFile == "" || filepath.Base(prefabs.DiskPath(pf.RouteFile)) != name {
				return
			}
			if err := ReloadRoute(w, e, pf, s.logger); err != nil {
				s.logger.Warn("reload route", "entity", e, "file", name, "err", err)
			}
		})
	}
}

// ReloadRoute reloads pf's route prefab and swaps in the new groups. The
// active group index and progress are kept when the group still exists. A
// prefab that fails to load leaves the follower untouched.
func ReloadRoute(w *ecs.World, e ecs.Entity, pf *component.PathFollower, logger *slog.Logger) error {
	spec, err := prefabs.LoadRouteSpec(pf.RouteFile)
	if err != nil {
		return err
	}
	rt, err := entity.BuildRoute(spec)
	if err != nil {
		return fmt.Errorf("build route: %w", err)
	}
	return SwapRoute(w, e, pf, rt, logger)
}

// SwapRoute replaces pf's route in place.
func SwapRoute(w *ecs.World, e ecs.Entity, pf *component.PathFollower, rt *route.Route, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if rt.Len() == 0 {
		return fmt.Errorf("route %q has no groups", rt.Name)
	}

	prev := pf.Switcher.Active()
	pf.Route = rt
	pf.Switcher.SetGroupCount(rt.Len())
	if pf.Switcher.Active() != prev {
		pf.Progress.Reset()
		pf.T = 0
	}
	if pf.Switcher.Activated() {
		loadGroup(w, e, pf, pf.Switcher.Active(), logger)
	}

	logger.Info("route reloaded", "entity", e, "route", rt.Name, "revision", rt.Revision, "group", pf.Switcher.Active())
	w.Emit(e, ecs.EventRouteReloaded, rt.Revision)
	return nil
}

package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/pathrig/geom"
	"github.com/milk9111/pathrig/prefabs"
	"github.com/milk9111/pathrig/route"
)

// BuildRoute converts a route prefab into runtime groups. Groups without
// waypoints are kept; they are reported when switched to.
func BuildRoute(spec *prefabs.RouteSpec) (*route.Route, error) {
	if spec == nil {
		return nil, errors.New("route: nil spec")
	}
	groups := make([]route.Group, 0, len(spec.Groups))
	for i, gs := range spec.Groups {
		name := gs.Name
		if name == "" {
			name = fmt.Sprintf("group_%d", i)
		}
		path := make(route.Path, 0, len(gs.Waypoints))
		for _, wp := range gs.Waypoints {
			cp := route.ControlPoint{
				Position: geom.V(wp.Position[0], wp.Position[1], wp.Position[2]),
				Rotation: geom.Identity(),
			}
			if wp.Rotation != nil {
				cp.Rotation = geom.FromEuler(wp.Rotation[0], wp.Rotation[1], wp.Rotation[2])
				cp.HasRotation = true
			}
			path = append(path, cp)
		}
		groups = append(groups, route.Group{Name: name, Path: path})
	}
	return route.NewRoute(spec.Name, groups...), nil
}

// SwitchConfig applies the prefab's overrides to the default switch timings.
func SwitchConfig(s prefabs.SwitchSpec) route.SwitchConfig {
	cfg := route.DefaultSwitchConfig()
	if s.StartupGrace != nil {
		cfg.StartupGrace = *s.StartupGrace
	}
	if s.Cooldown != nil {
		cfg.Cooldown = *s.Cooldown
	}
	if s.FlapWindow != nil {
		cfg.FlapWindow = *s.FlapWindow
	}
	if s.CooldownEnabled != nil {
		cfg.CooldownEnabled = *s.CooldownEnabled
	}
	return cfg
}

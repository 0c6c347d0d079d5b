package entity

import (
	"github.com/milk9111/pathrig/ecs"
	"github.com/milk9111/pathrig/ecs/component"
)

// The functions below are the external entry points of a follower. Each one
// queues a request that the systems apply on the next tick; a later call in
// the same tick replaces an earlier one of the same kind.

func SwitchToNext(w *ecs.World, e ecs.Entity) error {
	return ecs.Add(w, e, component.SwitchRequestComponent.Kind(), &component.SwitchRequest{Kind: component.SwitchNext})
}

func SwitchToPrevious(w *ecs.World, e ecs.Entity) error {
	return ecs.Add(w, e, component.SwitchRequestComponent.Kind(), &component.SwitchRequest{Kind: component.SwitchPrevious})
}

func SwitchTo(w *ecs.World, e ecs.Entity, index int) error {
	return ecs.Add(w, e, component.SwitchRequestComponent.Kind(), &component.SwitchRequest{Kind: component.SwitchTo, Index: index})
}

// SwitchToName switches directly to the group with the given name. Unknown
// names are rejected when the request is applied.
func SwitchToName(w *ecs.World, e ecs.Entity, name string) error {
	return ecs.Add(w, e, component.SwitchRequestComponent.Kind(), &component.SwitchRequest{Kind: component.SwitchToName, Name: name})
}

func MoveToWaypoint(w *ecs.World, e ecs.Entity, index, fraction float64) error {
	return ecs.Add(w, e, component.ProgressRequestComponent.Kind(), &component.ProgressRequest{
		Waypoint: true,
		Index:    index,
		Fraction: fraction,
	})
}

func SetProgress(w *ecs.World, e ecs.Entity, t float64) error {
	return ecs.Add(w, e, component.ProgressRequestComponent.Kind(), &component.ProgressRequest{T: t})
}

func StartOscillation(w *ecs.World, e ecs.Entity) error {
	return ecs.Add(w, e, component.OscillationRequestComponent.Kind(), &component.OscillationRequest{Start: true})
}

func StopOscillation(w *ecs.World, e ecs.Entity) error {
	return ecs.Add(w, e, component.OscillationRequestComponent.Kind(), &component.OscillationRequest{Start: false})
}

func PlayShake(w *ecs.World, e ecs.Entity) error {
	return ecs.Add(w, e, component.ShakeRequestComponent.Kind(), &component.ShakeRequest{})
}

func PlayShakePreset(w *ecs.World, e ecs.Entity, preset string) error {
	return ecs.Add(w, e, component.ShakeRequestComponent.Kind(), &component.ShakeRequest{Preset: preset})
}

func SetEnabled(w *ecs.World, e ecs.Entity, enabled bool) error {
	return ecs.Add(w, e, component.EnableRequestComponent.Kind(), &component.EnableRequest{Enabled: enabled})
}

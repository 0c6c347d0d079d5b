package component

import "github.com/milk9111/pathrig/route"

// Travel drives progress forward on its own when no timeline does.
type Travel struct {
	// Speed is in normalized progress per second; 0 leaves progress alone.
	Speed float64
	Loop  bool
}

// PathFollower holds a follower's route, active path and per-tick settings.
type PathFollower struct {
	// RouteFile is the prefab the route was loaded from, used for hot reload.
	RouteFile string
	Route     *route.Route
	// Path is the active group's waypoints; empty while an empty group is
	// loaded, in which case position and orientation are held.
	Path     route.Path
	Switcher *route.Switcher

	Interpolation route.Interpolation
	Heading       route.HeadingMode
	Progress      route.Progress
	Travel        Travel

	SmoothRotation bool
	RotationSpeed  float64
	SampleDelta    float64

	// InitialGroup is used on first activation only.
	InitialGroup int

	// Enabled pauses the follower when false. LastActiveGroup survives
	// disable/enable cycles so re-enabling restores it.
	Enabled         bool
	LastActiveGroup int

	// T is the normalized progress resolved on the last tick.
	T float64
}

var PathFollowerComponent = NewComponent[PathFollower]()

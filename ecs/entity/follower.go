package entity

import (
	"fmt"

	"github.com/milk9111/pathrig/ecs"
	"github.com/milk9111/pathrig/ecs/component"
	"github.com/milk9111/pathrig/geom"
	"github.com/milk9111/pathrig/motion"
	"github.com/milk9111/pathrig/prefabs"
	"github.com/milk9111/pathrig/route"
)

const (
	defaultRotationSpeed = 5.0
	defaultSteerSpeed    = 5.0
	defaultShakeDuration = 0.5
)

// LoadFollower loads a route prefab and builds a follower entity from it.
func LoadFollower(w *ecs.World, file string) (ecs.Entity, error) {
	spec, err := prefabs.LoadRouteSpec(file)
	if err != nil {
		return 0, fmt.Errorf("follower: %w", err)
	}
	return NewFollower(w, spec, file)
}

// NewFollower builds a path follower entity. The follower activates on the
// first tick, loading its initial group then.
func NewFollower(w *ecs.World, spec *prefabs.RouteSpec, file string) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("follower: nil spec")
	}
	if err := spec.Validate(); err != nil {
		return 0, fmt.Errorf("follower: %w", err)
	}
	rt, err := BuildRoute(spec)
	if err != nil {
		return 0, fmt.Errorf("follower: build route: %w", err)
	}

	fs := spec.Follower
	interp, err := route.ParseInterpolation(fs.Interpolation)
	if err != nil {
		return 0, fmt.Errorf("follower: %w", err)
	}
	heading, err := route.ParseHeadingMode(fs.Heading)
	if err != nil {
		return 0, fmt.Errorf("follower: %w", err)
	}
	progressMode, err := route.ParseProgressMode(fs.ProgressMode)
	if err != nil {
		return 0, fmt.Errorf("follower: %w", err)
	}

	smooth := true
	if fs.SmoothRotation != nil {
		smooth = *fs.SmoothRotation
	}
	rotSpeed := fs.RotationSpeed
	if rotSpeed <= 0 {
		rotSpeed = defaultRotationSpeed
	}
	delta := fs.SampleDelta
	if delta <= 0 {
		delta = route.DefaultSampleDelta
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.FollowerTagComponent.Kind(), &component.FollowerTag{}); err != nil {
		return 0, fmt.Errorf("follower: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Name}); err != nil {
		return 0, fmt.Errorf("follower: add name: %w", err)
	}

	start := geom.Vec{}
	if g := spec.Groups[fs.InitialGroup]; len(g.Waypoints) > 0 {
		p := g.Waypoints[0].Position
		start = geom.V(p[0], p[1], p[2])
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: start,
		Rotation: geom.Identity(),
	}); err != nil {
		return 0, fmt.Errorf("follower: add transform: %w", err)
	}

	if err := ecs.Add(w, e, component.PathFollowerComponent.Kind(), &component.PathFollower{
		RouteFile:      file,
		Route:          rt,
		Switcher:       route.NewSwitcher(SwitchConfig(fs.Switch), rt.Len()),
		Interpolation:  interp,
		Heading:        heading,
		Progress:       route.Progress{Mode: progressMode},
		Travel:         component.Travel{Speed: fs.Travel.Speed, Loop: fs.Travel.Loop},
		SmoothRotation: smooth,
		RotationSpeed:  rotSpeed,
		SampleDelta:    delta,
		InitialGroup:   fs.InitialGroup,
		Enabled:        true,
	}); err != nil {
		return 0, fmt.Errorf("follower: add path follower: %w", err)
	}

	if err := addMotionEffects(w, e, fs); err != nil {
		return 0, err
	}

	if fs.CueScript != "" {
		if err := ecs.Add(w, e, component.CueScriptComponent.Kind(), &component.CueScript{Path: fs.CueScript}); err != nil {
			return 0, fmt.Errorf("follower: add cue script: %w", err)
		}
	}

	return e, nil
}

func addMotionEffects(w *ecs.World, e ecs.Entity, fs prefabs.FollowerSpec) error {
	if o := fs.Oscillation; o != nil {
		if err := ecs.Add(w, e, component.OscillationComponent.Kind(), &component.Oscillation{
			Oscillator: motion.Oscillator{Amplitude: o.Amplitude, Speed: o.Speed, Continuous: o.Continuous},
		}); err != nil {
			return fmt.Errorf("follower: add oscillation: %w", err)
		}
	}

	if s := fs.Shake; s != nil {
		duration := s.Duration
		if duration <= 0 {
			duration = defaultShakeDuration
		}
		presets := motion.DefaultShakePresets()
		for name, p := range s.Presets {
			presets[name] = p
		}
		if err := ecs.Add(w, e, component.ShakeComponent.Kind(), &component.Shake{
			Shake: motion.Shake{
				Duration:      duration,
				Intensity:     s.Intensity,
				RotationScale: s.RotationScale,
				Envelope:      s.Curve,
			},
			Presets: presets,
		}); err != nil {
			return fmt.Errorf("follower: add shake: %w", err)
		}
	}

	if st := fs.Steering; st != nil {
		speed := st.Speed
		if speed <= 0 {
			speed = defaultSteerSpeed
		}
		parts := make([]component.SteeringPart, 0, len(st.Parts))
		for _, p := range st.Parts {
			scale := 1.0
			if p.Scale != nil {
				scale = *p.Scale
			}
			parts = append(parts, component.SteeringPart{Name: p.Name, Scale: scale})
		}
		if err := ecs.Add(w, e, component.SteeringRigComponent.Kind(), &component.SteeringRig{
			MaxAngle: st.MaxAngle,
			Speed:    speed,
			Parts:    parts,
		}); err != nil {
			return fmt.Errorf("follower: add steering rig: %w", err)
		}
	}
	return nil
}

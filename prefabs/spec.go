package prefabs

import (
	"fmt"

	"github.com/milk9111/pathrig/motion"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// RouteSpec is a route prefab: the follower settings plus its waypoint
// groups.
type RouteSpec struct {
	Name     string       `yaml:"name"`
	Follower FollowerSpec `yaml:"follower"`
	Groups   []GroupSpec  `yaml:"groups"`
}

func LoadRouteSpec(filename string) (*RouteSpec, error) {
	spec, err := LoadSpec[RouteSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

// ParseRouteSpec decodes a route prefab from raw YAML.
func ParseRouteSpec(data []byte) (*RouteSpec, error) {
	var spec RouteSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal route: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %w", err)
	}
	return &spec, nil
}

// Validate checks structural problems only. Empty groups are allowed; they
// are reported when loaded.
func (s *RouteSpec) Validate() error {
	if len(s.Groups) == 0 {
		return fmt.Errorf("route %q has no groups", s.Name)
	}
	seen := make(map[string]bool, len(s.Groups))
	for i, g := range s.Groups {
		if g.Name == "" {
			continue
		}
		if seen[g.Name] {
			return fmt.Errorf("route %q: duplicate group name %q at %d", s.Name, g.Name, i)
		}
		seen[g.Name] = true
	}
	if ig := s.Follower.InitialGroup; ig < 0 || ig >= len(s.Groups) {
		return fmt.Errorf("route %q: initial_group %d out of range", s.Name, ig)
	}
	return nil
}

type FollowerSpec struct {
	Interpolation  string         `yaml:"interpolation"`
	Heading        string         `yaml:"heading"`
	ProgressMode   string         `yaml:"progress_mode"`
	SmoothRotation *bool          `yaml:"smooth_rotation"`
	RotationSpeed  float64        `yaml:"rotation_speed"`
	SampleDelta    float64        `yaml:"sample_delta"`
	InitialGroup   int            `yaml:"initial_group"`
	Travel         TravelSpec     `yaml:"travel"`
	Switch         SwitchSpec     `yaml:"switch"`
	Oscillation    *OscillateSpec `yaml:"oscillation"`
	Shake          *ShakeSpec     `yaml:"shake"`
	Steering       *SteeringSpec  `yaml:"steering"`
	CueScript      string         `yaml:"cue_script"`
}

type TravelSpec struct {
	Speed float64 `yaml:"speed"`
	Loop  bool    `yaml:"loop"`
}

// SwitchSpec timings are in seconds. Nil fields take the route package
// defaults.
type SwitchSpec struct {
	StartupGrace    *float64 `yaml:"startup_grace"`
	Cooldown        *float64 `yaml:"cooldown"`
	FlapWindow      *float64 `yaml:"flap_window"`
	CooldownEnabled *bool    `yaml:"cooldown_enabled"`
}

type OscillateSpec struct {
	Amplitude  float64 `yaml:"amplitude"`
	Speed      float64 `yaml:"speed"`
	Continuous bool    `yaml:"continuous"`
}

// ShakeSpec rotation_scale is degrees of pitch and yaw jitter per unit of
// intensity; zero disables it. Presets override the built-in short, medium
// and long presets by name.
type ShakeSpec struct {
	Duration      float64                       `yaml:"duration"`
	Intensity     float64                       `yaml:"intensity"`
	RotationScale float64                       `yaml:"rotation_scale"`
	Curve         motion.Curve                  `yaml:"curve"`
	Presets       map[string]motion.ShakePreset `yaml:"presets"`
}

type SteeringSpec struct {
	MaxAngle float64    `yaml:"max_angle"`
	Speed    float64    `yaml:"speed"`
	Parts    []PartSpec `yaml:"parts"`
}

type PartSpec struct {
	Name  string   `yaml:"name"`
	Scale *float64 `yaml:"scale"`
}

type GroupSpec struct {
	Name      string         `yaml:"name"`
	Waypoints []WaypointSpec `yaml:"waypoints"`
}

// WaypointSpec positions are [x, y, z]; rotation is optional Euler degrees
// [pitch, yaw, roll].
type WaypointSpec struct {
	Position Vec3Spec  `yaml:"position"`
	Rotation *Vec3Spec `yaml:"rotation"`
}

type Vec3Spec [3]float64

func (v *Vec3Spec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var xs []float64
		if err := value.Decode(&xs); err != nil {
			return err
		}
		if len(xs) != 3 {
			return fmt.Errorf("line %d: vector needs 3 components, got %d", value.Line, len(xs))
		}
		copy(v[:], xs)
		return nil
	case yaml.MappingNode:
		var m struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
			Z float64 `yaml:"z"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		*v = Vec3Spec{m.X, m.Y, m.Z}
		return nil
	default:
		return fmt.Errorf("line %d: vector must be a list or map", value.Line)
	}
}

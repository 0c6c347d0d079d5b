package entity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/pathrig/ecs"
	"github.com/milk9111/pathrig/ecs/component"
	"github.com/milk9111/pathrig/geom"
	"github.com/milk9111/pathrig/motion"
	"github.com/milk9111/pathrig/prefabs"
	"github.com/milk9111/pathrig/route"
)

func parse(t *testing.T, src string) *prefabs.RouteSpec {
	t.Helper()
	spec, err := prefabs.ParseRouteSpec([]byte(src))
	require.NoError(t, err)
	return spec
}

func TestBuildRoute(t *testing.T) {
	spec := parse(t, `
name: r
groups:
  - waypoints:
      - position: [0, 0, 0]
        rotation: [0, 90, 0]
      - position: [1, 2, 3]
  - name: named
`)
	rt, err := BuildRoute(spec)
	require.NoError(t, err)
	require.Equal(t, "r", rt.Name)
	require.Equal(t, "group_0", rt.Groups[0].Name)
	require.Equal(t, "named", rt.Groups[1].Name)

	p := rt.Groups[0].Path
	require.True(t, p[0].HasRotation)
	require.True(t, geom.ApproxEqual(geom.V(1, 0, 0), geom.ForwardOf(p[0].Rotation), 1e-9))
	require.False(t, p[1].HasRotation)
	require.Equal(t, geom.V(1, 2, 3), p[1].Position)

	_, err = BuildRoute(nil)
	require.Error(t, err)
}

func TestSwitchConfigOverrides(t *testing.T) {
	require.Equal(t, route.DefaultSwitchConfig(), SwitchConfig(prefabs.SwitchSpec{}))

	grace, off := 0.0, false
	cfg := SwitchConfig(prefabs.SwitchSpec{StartupGrace: &grace, CooldownEnabled: &off})
	require.Equal(t, 0.0, cfg.StartupGrace)
	require.False(t, cfg.CooldownEnabled)
	require.Equal(t, route.DefaultCooldown, cfg.Cooldown)
}

func TestNewFollower(t *testing.T) {
	spec := parse(t, `
name: rig
follower:
  initial_group: 1
  heading: authored
  interpolation: catmull_rom
  oscillation: {amplitude: 1, speed: 2}
  shake: {intensity: 0.2}
  steering:
    max_angle: 20
    parts:
      - name: wheel
  cue_script: rig.tengo
groups:
  - name: a
    waypoints:
      - position: [0, 0, 0]
  - name: b
    waypoints:
      - position: [4, 5, 6]
      - position: [7, 8, 9]
`)
	w := ecs.NewWorld()
	e, err := NewFollower(w, spec, "rig")
	require.NoError(t, err)

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	require.Equal(t, geom.V(4, 5, 6), tr.Position, "spawns on the initial group's first waypoint")

	pf, ok := ecs.Get(w, e, component.PathFollowerComponent.Kind())
	require.True(t, ok)
	require.Equal(t, "rig", pf.RouteFile)
	require.Equal(t, route.HeadingAuthored, pf.Heading)
	require.Equal(t, route.CatmullRom, pf.Interpolation)
	require.True(t, pf.SmoothRotation)
	require.Equal(t, defaultRotationSpeed, pf.RotationSpeed)
	require.Equal(t, route.DefaultSampleDelta, pf.SampleDelta)
	require.True(t, pf.Enabled)
	require.False(t, pf.Switcher.Activated(), "activation waits for the first tick")
	require.Equal(t, 2, pf.Switcher.GroupCount())

	sh, ok := ecs.Get(w, e, component.ShakeComponent.Kind())
	require.True(t, ok)
	require.Equal(t, defaultShakeDuration, sh.Shake.Duration)
	require.Equal(t, motion.DefaultShakePresets(), sh.Presets)

	rig, ok := ecs.Get(w, e, component.SteeringRigComponent.Kind())
	require.True(t, ok)
	require.Equal(t, defaultSteerSpeed, rig.Speed)
	require.Equal(t, 1.0, rig.Parts[0].Scale)

	require.True(t, ecs.Has(w, e, component.OscillationComponent.Kind()))
	cue, ok := ecs.Get(w, e, component.CueScriptComponent.Kind())
	require.True(t, ok)
	require.Equal(t, "rig.tengo", cue.Path)

	name, _ := ecs.Get(w, e, component.NameComponent.Kind())
	require.Equal(t, "rig", name.Value)
}

func TestNewFollowerRejectsBadModes(t *testing.T) {
	spec := parse(t, `
name: bad
follower:
  heading: sideways
groups:
  - name: a
`)
	_, err := NewFollower(ecs.NewWorld(), spec, "")
	require.ErrorContains(t, err, "heading")
}

func TestNewFollowerRejectsInvalidSpec(t *testing.T) {
	oneGroup := []prefabs.GroupSpec{{Name: "a", Waypoints: []prefabs.WaypointSpec{{}}}}
	tests := []struct {
		name string
		spec *prefabs.RouteSpec
		want string
	}{
		{"nil", nil, "nil spec"},
		{"no_groups", &prefabs.RouteSpec{Name: "x"}, "no groups"},
		{"initial_group_high", &prefabs.RouteSpec{Name: "x", Follower: prefabs.FollowerSpec{InitialGroup: 1}, Groups: oneGroup}, "initial_group"},
		{"initial_group_negative", &prefabs.RouteSpec{Name: "x", Follower: prefabs.FollowerSpec{InitialGroup: -1}, Groups: oneGroup}, "initial_group"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			require.NotPanics(t, func() {
				_, err := NewFollower(w, tc.spec, "")
				require.ErrorContains(t, err, tc.want)
			})
			require.Empty(t, ecs.Entities(w), "a rejected spec creates no entity")
		})
	}
}

func TestTriggersQueueRequests(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)

	require.NoError(t, SwitchToNext(w, e))
	require.NoError(t, SwitchTo(w, e, 3))
	req, ok := ecs.Get(w, e, component.SwitchRequestComponent.Kind())
	require.True(t, ok)
	require.Equal(t, component.SwitchRequest{Kind: component.SwitchTo, Index: 3}, *req, "the latest request replaces earlier ones")

	require.NoError(t, SwitchToName(w, e, "dock"))
	req, _ = ecs.Get(w, e, component.SwitchRequestComponent.Kind())
	require.Equal(t, component.SwitchRequest{Kind: component.SwitchToName, Name: "dock"}, *req)

	require.NoError(t, PlayShakePreset(w, e, "long"))
	sreq, ok := ecs.Get(w, e, component.ShakeRequestComponent.Kind())
	require.True(t, ok)
	require.Equal(t, "long", sreq.Preset)

	require.NoError(t, MoveToWaypoint(w, e, 1, 0.5))
	preq, _ := ecs.Get(w, e, component.ProgressRequestComponent.Kind())
	require.True(t, preq.Waypoint)

	ecs.DestroyEntity(w, e)
	require.Error(t, PlayShake(w, e))
}

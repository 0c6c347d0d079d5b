package prefabs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedRoutes(t *testing.T) {
	orig := Dir
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = orig })

	canal, err := LoadRouteSpec("canal")
	require.NoError(t, err)
	require.Equal(t, "canal", canal.Name)
	require.Equal(t, "catmull_rom", canal.Follower.Interpolation)
	require.Len(t, canal.Groups, 3)
	require.NotNil(t, canal.Follower.Shake)
	require.False(t, canal.Follower.Shake.Curve.Empty())
	require.Equal(t, 2.0, canal.Follower.Shake.RotationScale)
	require.Equal(t, 1.2, canal.Follower.Shake.Presets["lock_gate"].Duration)
	require.NotNil(t, canal.Follower.Steering)
	require.Len(t, canal.Follower.Steering.Parts, 3)
	require.NotNil(t, canal.Follower.Switch.Cooldown)
	require.Equal(t, 0.5, *canal.Follower.Switch.Cooldown)

	straight, err := LoadRouteSpec("routes/straight.yaml")
	require.NoError(t, err)
	require.Len(t, straight.Groups[0].Waypoints, 4)
	require.Empty(t, straight.Groups[2].Waypoints)
	require.NotNil(t, straight.Follower.SmoothRotation)
	require.False(t, *straight.Follower.SmoothRotation)
}

func TestParseRouteSpec(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
		check   func(t *testing.T, s *RouteSpec)
	}{
		{
			name: "vector_forms",
			src: `
name: forms
groups:
  - name: a
    waypoints:
      - position: [1, 2, 3]
        rotation: {y: 90}
      - position: {x: 4, z: 6}
`,
			check: func(t *testing.T, s *RouteSpec) {
				wps := s.Groups[0].Waypoints
				if diff := cmp.Diff(Vec3Spec{1, 2, 3}, wps[0].Position); diff != "" {
					t.Fatalf("position mismatch (-want +got):\n%s", diff)
				}
				require.Equal(t, Vec3Spec{0, 90, 0}, *wps[0].Rotation)
				require.Equal(t, Vec3Spec{4, 0, 6}, wps[1].Position)
				require.Nil(t, wps[1].Rotation)
			},
		},
		{
			name: "empty_group_allowed",
			src: `
name: e
groups:
  - name: a
`,
			check: func(t *testing.T, s *RouteSpec) {
				require.Empty(t, s.Groups[0].Waypoints)
			},
		},
		{name: "no_groups", src: "name: x\n", wantErr: "no groups"},
		{
			name: "duplicate_group",
			src: `
name: dup
groups:
  - name: a
  - name: a
`,
			wantErr: "duplicate group",
		},
		{
			name: "initial_group_out_of_range",
			src: `
name: r
follower:
  initial_group: 2
groups:
  - name: a
`,
			wantErr: "initial_group",
		},
		{
			name: "short_vector",
			src: `
name: v
groups:
  - waypoints:
      - position: [1, 2]
`,
			wantErr: "3 components",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := ParseRouteSpec([]byte(tc.src))
			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.check(t, s)
		})
	}
}

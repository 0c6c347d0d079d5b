package route

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/pathrig/geom"
)

func TestAngularRate(t *testing.T) {
	tests := []struct {
		name  string
		path  Path
		t     float64
		delta float64
		check func(t *testing.T, rate float64)
	}{
		{
			name:  "straight",
			path:  collinear(),
			t:     0.3,
			delta: 0.05,
			check: func(t *testing.T, rate float64) { require.InDelta(t, 0, rate, 1e-9) },
		},
		{
			name:  "right_turn_clamped",
			path:  pathOf(geom.V(0, 0, 0), geom.V(0, 0, 1), geom.V(1, 0, 1)),
			t:     0.45,
			delta: 0.1,
			check: func(t *testing.T, rate float64) { require.Equal(t, 1.0, rate) },
		},
		{
			name:  "left_turn_clamped",
			path:  pathOf(geom.V(0, 0, 0), geom.V(0, 0, 1), geom.V(-1, 0, 1)),
			t:     0.45,
			delta: 0.1,
			check: func(t *testing.T, rate float64) { require.Equal(t, -1.0, rate) },
		},
		{
			name:  "gentle_turn_unclamped",
			path:  pathOf(geom.V(0, 0, 0), geom.V(0, 0, 10), geom.V(0.1, 0, 20)),
			t:     0.45,
			delta: 0.1,
			check: func(t *testing.T, rate float64) {
				require.Greater(t, rate, 0.0)
				require.Less(t, rate, 1.0)
			},
		},
		{
			name:  "vertical_only_is_degenerate",
			path:  pathOf(geom.V(0, 0, 0), geom.V(0, 4, 0)),
			t:     0.5,
			delta: 0.1,
			check: func(t *testing.T, rate float64) { require.Equal(t, 0.0, rate) },
		},
		{
			name:  "end_of_path",
			path:  pathOf(geom.V(0, 0, 0), geom.V(0, 0, 1), geom.V(1, 0, 1)),
			t:     1,
			delta: 0.1,
			check: func(t *testing.T, rate float64) { require.Equal(t, 0.0, rate) },
		},
		{
			name: "single_waypoint",
			path: pathOf(geom.V(0, 0, 0)),
			check: func(t *testing.T, rate float64) {
				require.Equal(t, 0.0, rate)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, AngularRate(tc.path, tc.t, Linear, tc.delta))
		})
	}
}

func TestSteerToward(t *testing.T) {
	require.InDelta(t, 5, SteerToward(0, 10, 0.1, 5), 1e-9)
	require.InDelta(t, 10, SteerToward(0, 10, 1, 5), 1e-9)
	require.InDelta(t, 3, SteerToward(3, 10, 0, 5), 1e-9)
}

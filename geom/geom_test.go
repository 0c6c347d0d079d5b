package geom

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"
)

func TestLookRotation(t *testing.T) {
	s := 1 / math.Sqrt2
	tests := []struct {
		name    string
		forward Vec
		wantOK  bool
	}{
		{"forward", V(0, 0, 1), true},
		{"backward", V(0, 0, -1), true},
		{"right", V(3, 0, 0), true},
		{"pitched", V(s, s, 0), true},
		{"straight_up", V(0, 2, 0), true},
		{"straight_down", V(0, -1, 0), true},
		{"zero", V(0, 0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q, ok := LookRotation(tc.forward, Up)
			require.Equal(t, tc.wantOK, ok)
			if !ok {
				return
			}
			want, _ := Normalize(tc.forward)
			require.True(t, ApproxEqual(want, ForwardOf(q), 1e-9), "forward %v", ForwardOf(q))
			require.InDelta(t, 1, quatNorm(q), 1e-9)

			// up stays in the vertical plane containing forward
			up := Rotate(q, Up)
			if math.Abs(want.Y) < 0.999 {
				require.Greater(t, up.Y, 0.0)
				require.InDelta(t, 0, r3Dot(up, want), 1e-9)
			}
		})
	}
}

func TestSlerp(t *testing.T) {
	a := Identity()
	b := FromEuler(0, 90, 0)

	require.InDelta(t, 0, Angle(a, Slerp(a, b, 0)), 1e-9)
	require.InDelta(t, 0, Angle(b, Slerp(a, b, 1)), 1e-9)
	require.InDelta(t, math.Pi/4, Yaw(Slerp(a, b, 0.5)), 1e-9)

	// the shorter arc is taken even when b is expressed with a negative sign
	negB := Quat{Real: -b.Real, Imag: -b.Imag, Jmag: -b.Jmag, Kmag: -b.Kmag}
	require.InDelta(t, math.Pi/4, Yaw(Slerp(a, negB, 0.5)), 1e-9)

	// nearly identical rotations fall back to nlerp without NaNs
	c := FromEuler(0, 0.001, 0)
	mid := Slerp(a, c, 0.5)
	require.False(t, math.IsNaN(mid.Real))
	require.InDelta(t, 1, quatNorm(mid), 1e-9)
}

func TestFromEuler(t *testing.T) {
	require.True(t, ApproxEqual(V(1, 0, 0), ForwardOf(FromEuler(0, 90, 0)), 1e-9))
	require.True(t, ApproxEqual(V(0, -1, 0), ForwardOf(FromEuler(90, 0, 0)), 1e-9))
	require.True(t, ApproxEqual(V(0, 0, 1), ForwardOf(FromEuler(0, 0, 45)), 1e-9), "roll keeps forward")
	require.Equal(t, Identity(), FromAxisAngle(Vec{}, 1))
}

func TestSignedYaw(t *testing.T) {
	north := Planar(V(0, 0, 1))
	east := Planar(V(1, 0, 0))
	west := Planar(V(-1, 0, 0))

	require.InDelta(t, math.Pi/2, SignedYaw(north, east), 1e-9, "turning towards +X is a right turn")
	require.InDelta(t, -math.Pi/2, SignedYaw(north, west), 1e-9)
	require.Equal(t, 0.0, SignedYaw(north, cp.Vector{}))
	require.Equal(t, V(1, 7, 2), FromPlanar(Planar(V(1, 0, 2)), 7))
}

func TestDirection(t *testing.T) {
	d, ok := Direction(V(1, 1, 1), V(1, 1, 4))
	require.True(t, ok)
	require.True(t, ApproxEqual(V(0, 0, 1), d, 1e-12))

	_, ok = Direction(V(1, 1, 1), V(1, 1, 1+1e-9))
	require.False(t, ok)
}

func quatNorm(q Quat) float64 {
	return math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
}

func r3Dot(a, b Vec) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

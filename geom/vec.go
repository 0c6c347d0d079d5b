// Package geom holds the small amount of 3D math the path follower needs on
// top of gonum's r3 vectors and quaternions.
package geom

import (
	"math"

	"github.com/jakecoffman/cp"
	"gonum.org/v1/gonum/spatial/r3"
)

// Epsilon is the length below which a direction is treated as degenerate.
const Epsilon = 1e-6

type Vec = r3.Vec

var (
	Up      = Vec{Y: 1}
	Forward = Vec{Z: 1}
	Right   = Vec{X: 1}
)

func V(x, y, z float64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

func LerpVec(a, b Vec, t float64) Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// Direction returns the unit vector from a to b and false when the two
// points coincide.
func Direction(a, b Vec) (Vec, bool) {
	return Normalize(r3.Sub(b, a))
}

func Normalize(v Vec) (Vec, bool) {
	n := r3.Norm(v)
	if n < Epsilon || math.IsNaN(n) {
		return Vec{}, false
	}
	return r3.Scale(1/n, v), true
}

// Flatten drops the vertical component.
func Flatten(v Vec) Vec {
	return Vec{X: v.X, Z: v.Z}
}

// Planar projects v onto the horizontal plane as a chipmunk vector, with world
// Z mapped to the vector's Y.
func Planar(v Vec) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Z}
}

func FromPlanar(p cp.Vector, y float64) Vec {
	return Vec{X: p.X, Y: y, Z: p.Y}
}

// SignedYaw is the angle in radians that turns from onto to about +Y.
// Positive values turn right (+Z towards +X). Degenerate inputs yield 0.
func SignedYaw(from, to cp.Vector) float64 {
	if from.Length() < Epsilon || to.Length() < Epsilon {
		return 0
	}
	a := from.Normalize()
	b := to.Normalize()
	return -math.Atan2(a.Cross(b), a.Dot(b))
}

func ApproxEqual(a, b Vec, tol float64) bool {
	return r3.Norm(r3.Sub(a, b)) <= tol
}

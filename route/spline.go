// Package route evaluates authored waypoint paths: positions along a
// piecewise-linear or Catmull-Rom curve, progress bookkeeping, heading and
// steering estimates, and switching between alternate waypoint groups.
package route

import (
	"fmt"
	"math"

	"github.com/milk9111/pathrig/common"
	"github.com/milk9111/pathrig/geom"
)

// ControlPoint is an authored waypoint. Rotation is only meaningful when
// HasRotation is set.
type ControlPoint struct {
	Position    geom.Vec
	Rotation    geom.Quat
	HasRotation bool
}

// Path is an ordered waypoint sequence. Indices stay stable while a path is
// being traversed.
type Path []ControlPoint

// Interpolation selects how positions between waypoints are computed.
type Interpolation int

const (
	Linear Interpolation = iota
	CatmullRom
)

func (m Interpolation) String() string {
	switch m {
	case Linear:
		return "linear"
	case CatmullRom:
		return "catmull_rom"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(m))
	}
}

func ParseInterpolation(s string) (Interpolation, error) {
	switch s {
	case "", "linear":
		return Linear, nil
	case "catmull_rom", "catmullrom", "spline":
		return CatmullRom, nil
	default:
		return Linear, fmt.Errorf("route: unknown interpolation %q", s)
	}
}

// Len returns the number of waypoints.
func (p Path) Len() int {
	return len(p)
}

// Segment maps normalized progress t onto a segment index in [0, n-2] and a
// local fraction within that segment. t is expected in [0,1].
func Segment(t float64, n int) (int, float64) {
	if n < 2 {
		return 0, 0
	}
	scaled := common.Clamp01(t) * float64(n-1)
	idx := common.ClampInt(int(math.Floor(scaled)), 0, n-2)
	return idx, scaled - float64(idx)
}

// Position evaluates the path at normalized progress t. It reports false only
// for an empty path. A single waypoint is returned as-is, and Catmull-Rom
// falls back to linear below four waypoints.
func (p Path) Position(t float64, mode Interpolation) (geom.Vec, bool) {
	switch len(p) {
	case 0:
		return geom.Vec{}, false
	case 1:
		return p[0].Position, true
	}

	t = common.Clamp01(t)
	if mode == CatmullRom && len(p) >= 4 {
		return p.catmullRom(t), true
	}
	return p.linear(t), true
}

func (p Path) linear(t float64) geom.Vec {
	idx, u := Segment(t, len(p))
	return geom.LerpVec(p[idx].Position, p[idx+1].Position, u)
}

func (p Path) catmullRom(t float64) geom.Vec {
	n := len(p)
	idx, u := Segment(t, n)
	at := func(i int) geom.Vec {
		return p[common.ClampInt(i, 0, n-1)].Position
	}
	a, b, c, d := at(idx-1), at(idx), at(idx+1), at(idx+2)
	return geom.Vec{
		X: catmullRom1D(a.X, b.X, c.X, d.X, u),
		Y: catmullRom1D(a.Y, b.Y, c.Y, d.Y, u),
		Z: catmullRom1D(a.Z, b.Z, c.Z, d.Z, u),
	}
}

func catmullRom1D(a, b, c, d, u float64) float64 {
	u2 := u * u
	u3 := u2 * u
	return 0.5 * (2*b +
		(-a+c)*u +
		(2*a-5*b+4*c-d)*u2 +
		(-a+3*b-3*c+d)*u3)
}

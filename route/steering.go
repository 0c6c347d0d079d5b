package route

import (
	"math"

	"github.com/milk9111/pathrig/common"
	"github.com/milk9111/pathrig/geom"
)

// AngularRate estimates signed horizontal curvature at progress t: the yaw
// change between the travel direction at t and at t+delta, divided by delta
// and clamped to [-1,1]. Positive values turn right. Degenerate directions
// and straight paths yield 0.
func AngularRate(p Path, t float64, mode Interpolation, delta float64) float64 {
	if len(p) < 2 {
		return 0
	}
	if delta <= 0 {
		delta = DefaultSampleDelta
	}
	t = common.Clamp01(t)
	t2 := math.Min(t+delta, 1)

	d0, ok := planarDirection(p, t, mode, delta)
	if !ok {
		return 0
	}
	d1, ok := planarDirection(p, t2, mode, delta)
	if !ok {
		return 0
	}

	yaw := geom.SignedYaw(geom.Planar(d0), geom.Planar(d1))
	return common.Clamp(yaw/delta, -1, 1)
}

func planarDirection(p Path, t float64, mode Interpolation, delta float64) (geom.Vec, bool) {
	a, ok := p.Position(t, mode)
	if !ok {
		return geom.Vec{}, false
	}
	b, _ := p.Position(math.Min(t+delta, 1), mode)
	return geom.Direction(geom.Flatten(a), geom.Flatten(b))
}

// SteerToward moves an auxiliary part angle towards target using the same
// exponential approach as orientation smoothing.
func SteerToward(current, target, dt, speed float64) float64 {
	return common.Lerp(current, target, common.ApproachRate(dt, speed))
}

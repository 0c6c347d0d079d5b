package route

import (
	"fmt"
	"math"

	"github.com/milk9111/pathrig/common"
	"github.com/milk9111/pathrig/geom"
)

// DefaultSampleDelta is the progress offset used to estimate the direction of
// travel.
const DefaultSampleDelta = 0.01

// HeadingMode selects where a follower's target orientation comes from.
type HeadingMode int

const (
	// HeadingAuthored blends the per-waypoint rotations.
	HeadingAuthored HeadingMode = iota
	// HeadingSlope looks along the 3D direction of travel, pitch included.
	HeadingSlope
	// HeadingFlat looks along the direction of travel projected onto the
	// horizontal plane.
	HeadingFlat
)

func (m HeadingMode) String() string {
	switch m {
	case HeadingAuthored:
		return "authored"
	case HeadingSlope:
		return "slope"
	case HeadingFlat:
		return "flat"
	default:
		return fmt.Sprintf("HeadingMode(%d)", int(m))
	}
}

func ParseHeadingMode(s string) (HeadingMode, error) {
	switch s {
	case "", "flat":
		return HeadingFlat, nil
	case "slope":
		return HeadingSlope, nil
	case "authored":
		return HeadingAuthored, nil
	default:
		return HeadingFlat, fmt.Errorf("route: unknown heading mode %q", s)
	}
}

// OrientationOptions configures Orientation.
type OrientationOptions struct {
	Heading       HeadingMode
	Interpolation Interpolation
	// SampleDelta is the look-ahead in normalized progress; zero means
	// DefaultSampleDelta.
	SampleDelta float64
	// CurrentForward is used by HeadingFlat when the travel direction has no
	// horizontal component.
	CurrentForward geom.Vec
}

func (o OrientationOptions) delta() float64 {
	if o.SampleDelta <= 0 {
		return DefaultSampleDelta
	}
	return o.SampleDelta
}

// Orientation returns the target orientation at progress t. It reports false
// when the orientation should not be updated this tick: paths with fewer than
// two waypoints, or a degenerate direction of travel (expected at the end of
// a path).
func Orientation(p Path, t float64, opts OrientationOptions) (geom.Quat, bool) {
	if len(p) < 2 {
		return geom.Identity(), false
	}
	t = common.Clamp01(t)

	if opts.Heading == HeadingAuthored {
		idx, u := Segment(t, len(p))
		return geom.Slerp(p[idx].rotation(), p[idx+1].rotation(), u), true
	}

	dir, ok := TravelDirection(p, t, opts.Interpolation, opts.delta())
	if !ok {
		return geom.Identity(), false
	}

	if opts.Heading == HeadingSlope {
		return geom.LookRotation(dir, geom.Up)
	}

	flat, ok := geom.Normalize(geom.Flatten(dir))
	if !ok {
		flat, ok = geom.Normalize(geom.Flatten(opts.CurrentForward))
		if !ok {
			return geom.Identity(), false
		}
	}
	return geom.LookRotation(flat, geom.Up)
}

// TravelDirection samples the path at t and min(t+delta, 1) and returns the
// unit direction between the samples.
func TravelDirection(p Path, t float64, mode Interpolation, delta float64) (geom.Vec, bool) {
	a, ok := p.Position(t, mode)
	if !ok {
		return geom.Vec{}, false
	}
	b, _ := p.Position(math.Min(t+delta, 1), mode)
	return geom.Direction(a, b)
}

// Smooth moves current towards target. When enabled it slerps by
// min(1, dt*speed) per call; otherwise it snaps.
func Smooth(current, target geom.Quat, dt, speed float64, enabled bool) geom.Quat {
	if !enabled {
		return geom.NormalizeQuat(target)
	}
	return geom.Slerp(current, target, common.ApproachRate(dt, speed))
}

func (c ControlPoint) rotation() geom.Quat {
	if !c.HasRotation {
		return geom.Identity()
	}
	return c.Rotation
}

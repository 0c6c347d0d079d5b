package route

import (
	"fmt"
	"math"

	"github.com/milk9111/pathrig/common"
)

// ProgressMode selects which progress representation drives position on a
// tick. Only one is authoritative at a time.
type ProgressMode int

const (
	ProgressNormalized ProgressMode = iota
	ProgressWaypoint
)

func (m ProgressMode) String() string {
	switch m {
	case ProgressNormalized:
		return "normalized"
	case ProgressWaypoint:
		return "waypoint"
	default:
		return fmt.Sprintf("ProgressMode(%d)", int(m))
	}
}

func ParseProgressMode(s string) (ProgressMode, error) {
	switch s {
	case "", "normalized":
		return ProgressNormalized, nil
	case "waypoint":
		return ProgressWaypoint, nil
	default:
		return ProgressNormalized, fmt.Errorf("route: unknown progress mode %q", s)
	}
}

// ToNormalized converts a waypoint number and intra-segment fraction into
// normalized progress over a path of n waypoints. The waypoint number may be
// fractional, so 1.5 is halfway between waypoints 1 and 2. Both inputs are
// clamped before conversion; paths with fewer than two waypoints always
// yield 0.
func ToNormalized(index, fraction float64, n int) float64 {
	if n <= 1 {
		return 0
	}
	segments := float64(n - 1)
	i := common.Clamp(index, 0, segments)
	f := common.Clamp01(fraction)
	return common.Clamp01((i + f) / segments)
}

// FromNormalized splits normalized progress into a segment index and local
// fraction. It is the inverse of ToNormalized except at segment boundaries.
func FromNormalized(t float64, n int) (int, float64) {
	return Segment(t, n)
}

// Progress tracks a follower's position along its active path in both
// representations.
type Progress struct {
	Mode     ProgressMode
	T        float64
	Waypoint float64
	Fraction float64
}

// MoveToWaypoint selects waypoint-driven progress. Values are clamped when
// resolved, not here.
func (p *Progress) MoveToWaypoint(index, fraction float64) {
	p.Mode = ProgressWaypoint
	p.Waypoint = index
	p.Fraction = fraction
}

// SetNormalized selects normalized progress.
func (p *Progress) SetNormalized(t float64) {
	p.Mode = ProgressNormalized
	p.T = common.Clamp01(t)
}

// Reset returns both representations to the start of the path without
// changing the mode.
func (p *Progress) Reset() {
	p.T = 0
	p.Waypoint = 0
	p.Fraction = 0
}

// Resolve returns the normalized progress that drives position this tick for
// a path of n waypoints.
func (p Progress) Resolve(n int) float64 {
	if p.Mode == ProgressWaypoint {
		return ToNormalized(p.Waypoint, p.Fraction, n)
	}
	if n <= 1 {
		return 0
	}
	return common.Clamp01(p.T)
}

// Advance moves progress forward by speed normalized units per second. With
// wrap set, progress loops back to the start, otherwise it stops at 1. In
// waypoint mode the fraction advances and carries into the index.
func (p *Progress) Advance(dt, speed float64, wrap bool, n int) {
	if dt <= 0 || speed == 0 || n <= 1 {
		return
	}

	if p.Mode == ProgressWaypoint {
		segments := float64(n - 1)
		pos := common.Clamp(common.Clamp(p.Waypoint, 0, segments)+common.Clamp01(p.Fraction), 0, segments)
		pos += dt * speed * segments
		if wrap {
			pos = common.Wrap01(pos/segments) * segments
		} else {
			pos = common.Clamp(pos, 0, segments)
		}
		idx := math.Floor(pos)
		if idx >= segments {
			idx = segments - 1
		}
		p.Waypoint = idx
		p.Fraction = pos - idx
		return
	}

	next := p.T + dt*speed
	if wrap {
		p.T = common.Wrap01(next)
		return
	}
	p.T = common.Clamp01(next)
}

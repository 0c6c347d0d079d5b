package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApproachRate is the per-tick blend factor for exponential smoothing at the
// given speed. It never exceeds 1 so a long frame snaps instead of overshooting.
func ApproachRate(dt, speed float64) float64 {
	if dt <= 0 || speed <= 0 {
		return 0
	}
	return math.Min(1, dt*speed)
}

// Wrap01 maps v into [0,1), keeping 1 itself at 1.
func Wrap01(v float64) float64 {
	if v >= 0 && v <= 1 {
		return v
	}
	w := math.Mod(v, 1)
	if w < 0 {
		w += 1
	}
	return w
}

package geom

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Quat is a rotation quaternion. Real is w; Imag, Jmag and Kmag are x, y, z.
type Quat = quat.Number

func Identity() Quat {
	return Quat{Real: 1}
}

func FromAxisAngle(axis Vec, radians float64) Quat {
	a, ok := Normalize(axis)
	if !ok {
		return Identity()
	}
	s := math.Sin(radians / 2)
	return Quat{Real: math.Cos(radians / 2), Imag: a.X * s, Jmag: a.Y * s, Kmag: a.Z * s}
}

// FromEuler builds a rotation from pitch (X), yaw (Y) and roll (Z) in
// degrees, applied roll first, then pitch, then yaw.
func FromEuler(pitch, yaw, roll float64) Quat {
	qx := FromAxisAngle(Right, deg2rad(pitch))
	qy := FromAxisAngle(Up, deg2rad(yaw))
	qz := FromAxisAngle(Forward, deg2rad(roll))
	return quat.Mul(qy, quat.Mul(qx, qz))
}

func NormalizeQuat(q Quat) Quat {
	n := quat.Abs(q)
	if n < Epsilon || math.IsNaN(n) {
		return Identity()
	}
	return quat.Scale(1/n, q)
}

func dot4(a, b Quat) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}

// Rotate applies q to v.
func Rotate(q Quat, v Vec) Vec {
	p := Quat{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return Vec{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

// ForwardOf is the +Z axis rotated by q.
func ForwardOf(q Quat) Vec {
	return Rotate(q, Forward)
}

// Yaw is the heading of q's forward axis about +Y in radians.
func Yaw(q Quat) float64 {
	f := ForwardOf(q)
	return math.Atan2(f.X, f.Z)
}

// LookRotation returns the rotation whose +Z axis points along forward with
// +Y as close to up as possible. It reports false for a degenerate forward.
func LookRotation(forward, up Vec) (Quat, bool) {
	f, ok := Normalize(forward)
	if !ok {
		return Identity(), false
	}
	r, ok := Normalize(r3.Cross(up, f))
	if !ok {
		// forward is parallel to up; pick a reference that keeps right on +X
		alt := Vec{Z: -math.Copysign(1, f.Y)}
		r, ok = Normalize(r3.Cross(alt, f))
		if !ok {
			return Identity(), false
		}
	}
	u := r3.Cross(f, r)
	return fromBasis(r, u, f), true
}

func fromBasis(r, u, f Vec) Quat {
	m00, m01, m02 := r.X, u.X, f.X
	m10, m11, m12 := r.Y, u.Y, f.Y
	m20, m21, m22 := r.Z, u.Z, f.Z

	var q Quat
	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		q = Quat{Real: 0.25 / s, Imag: (m21 - m12) * s, Jmag: (m02 - m20) * s, Kmag: (m10 - m01) * s}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22)
		q = Quat{Real: (m21 - m12) / s, Imag: 0.25 * s, Jmag: (m01 + m10) / s, Kmag: (m02 + m20) / s}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22)
		q = Quat{Real: (m02 - m20) / s, Imag: (m01 + m10) / s, Jmag: 0.25 * s, Kmag: (m12 + m21) / s}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11)
		q = Quat{Real: (m10 - m01) / s, Imag: (m02 + m20) / s, Jmag: (m12 + m21) / s, Kmag: 0.25 * s}
	}
	return NormalizeQuat(q)
}

// Slerp interpolates along the shorter arc between a and b.
func Slerp(a, b Quat, t float64) Quat {
	a = NormalizeQuat(a)
	b = NormalizeQuat(b)
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}

	d := dot4(a, b)
	if d < 0 {
		b = quat.Scale(-1, b)
		d = -d
	}
	if d > 0.9995 {
		return NormalizeQuat(quat.Add(a, quat.Scale(t, quat.Sub(b, a))))
	}

	theta := math.Acos(d)
	sin := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sin
	wb := math.Sin(t*theta) / sin
	return quat.Add(quat.Scale(wa, a), quat.Scale(wb, b))
}

// Angle is the smallest rotation angle in radians taking a to b.
func Angle(a, b Quat) float64 {
	d := math.Abs(dot4(NormalizeQuat(a), NormalizeQuat(b)))
	if d > 1 {
		d = 1
	}
	return 2 * math.Acos(d)
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}

func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}

package common

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp01 clamps t to the [0, 1] range.
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// SmoothStep maps t in [0, 1] onto the cubic ease-in/ease-out curve
// 3t^2 - 2t^3. Inputs outside [0, 1] are clamped first, so the result has
// zero slope at both ends.
func SmoothStep(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// LerpVec3 linearly interpolates each component of a and b by t.
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.Vec3{
		Lerp(a[0], b[0], t),
		Lerp(a[1], b[1], t),
		Lerp(a[2], b[2], t),
	}
}

// Slerp spherically interpolates between two unit quaternions along the
// shortest arc. mgl64.QuatSlerp walks the long way around when the inputs'
// dot product is negative, so b is negated first (q and -q describe the
// same rotation).
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t)
}

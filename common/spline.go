package common

import (
	"github.com/go-gl/mathgl/mgl64"
)

// SamplePath evaluates a Catmull-Rom spline through the ordered control
// points at t in [0, 1]. The parameter is distributed uniformly across the
// segments (by point index, not arc length), the curve passes through every
// control point, and the first/last points are reproduced exactly at t=0 and
// t=1. Endpoint tangents come from duplicating the terminal points.
func SamplePath(points []mgl64.Vec3, t float64) mgl64.Vec3 {
	switch len(points) {
	case 0:
		return mgl64.Vec3{}
	case 1:
		return points[0]
	}

	t = Clamp01(t)
	segments := len(points) - 1
	s := t * float64(segments)
	i := int(s)
	if i >= segments {
		// t == 1 lands on the far end of the last segment.
		i = segments - 1
	}
	u := s - float64(i)

	p1 := points[i]
	p2 := points[i+1]
	p0 := p1
	if i > 0 {
		p0 = points[i-1]
	}
	p3 := p2
	if i+2 < len(points) {
		p3 = points[i+2]
	}

	return catmullRom(p0, p1, p2, p3, u)
}

// catmullRom evaluates one uniform Catmull-Rom segment between p1 and p2 at
// u in [0, 1].
func catmullRom(p0, p1, p2, p3 mgl64.Vec3, u float64) mgl64.Vec3 {
	u2 := u * u
	u3 := u2 * u

	var out mgl64.Vec3
	for c := 0; c < 3; c++ {
		a0, a1, a2, a3 := p0[c], p1[c], p2[c], p3[c]
		out[c] = 0.5 * ((2 * a1) +
			(-a0+a2)*u +
			(2*a0-5*a1+4*a2-a3)*u2 +
			(-a0+3*a1-3*a2+a3)*u3)
	}
	return out
}

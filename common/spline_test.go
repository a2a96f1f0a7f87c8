package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSamplePathEndpoints(t *testing.T) {
	cases := []struct {
		name   string
		points []mgl64.Vec3
	}{
		{"two_points", []mgl64.Vec3{{0, 0, 5}, {10, 4, 8}}},
		{"three_points", []mgl64.Vec3{{0, 0, 5}, {10, 4, 8}, {-3, 7, 2}}},
		{"five_points", []mgl64.Vec3{{0, 0, 1}, {1, 1, 2}, {2, 0, 3}, {3, -1, 4}, {4, 0, 5}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			first := SamplePath(c.points, 0)
			if !vecNear(first, c.points[0]) {
				t.Fatalf("SamplePath(t=0) = %v, want %v", first, c.points[0])
			}
			last := SamplePath(c.points, 1)
			if !vecNear(last, c.points[len(c.points)-1]) {
				t.Fatalf("SamplePath(t=1) = %v, want %v", last, c.points[len(c.points)-1])
			}
		})
	}
}

func TestSamplePathPassesThroughControlPoints(t *testing.T) {
	points := []mgl64.Vec3{{0, 0, 1}, {5, 5, 2}, {10, 0, 3}, {15, -5, 4}}
	for i, p := range points {
		tt := float64(i) / float64(len(points)-1)
		got := SamplePath(points, tt)
		if !vecNear(got, p) {
			t.Fatalf("SamplePath(%v) = %v, want control point %v", tt, got, p)
		}
	}
}

func TestSamplePathDegenerate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := SamplePath(nil, 0.5); got != (mgl64.Vec3{}) {
			t.Fatalf("SamplePath(nil) = %v, want zero", got)
		}
	})
	t.Run("single", func(t *testing.T) {
		p := mgl64.Vec3{3, 4, 5}
		for _, tt := range []float64{0, 0.5, 1} {
			if got := SamplePath([]mgl64.Vec3{p}, tt); got != p {
				t.Fatalf("SamplePath(single, %v) = %v, want %v", tt, got, p)
			}
		}
	})
	t.Run("out_of_range_parameter", func(t *testing.T) {
		points := []mgl64.Vec3{{0, 0, 0}, {1, 1, 1}}
		if got := SamplePath(points, -3); !vecNear(got, points[0]) {
			t.Fatalf("SamplePath(t<0) = %v, want %v", got, points[0])
		}
		if got := SamplePath(points, 42); !vecNear(got, points[1]) {
			t.Fatalf("SamplePath(t>1) = %v, want %v", got, points[1])
		}
	})
}

func TestSamplePathCollinearStaysOnLine(t *testing.T) {
	// A straight, evenly spaced run should never bow off the line.
	points := []mgl64.Vec3{{0, 0, 0}, {1, 2, 0}, {2, 4, 0}, {3, 6, 0}}
	for i := 0; i <= 20; i++ {
		tt := float64(i) / 20
		p := SamplePath(points, tt)
		if math.Abs(p[1]-2*p[0]) > 1e-9 {
			t.Fatalf("point %v at t=%v left the line y=2x", p, tt)
		}
	}
}

func vecNear(a, b mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

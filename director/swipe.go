package director

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/storyframe/stagecam/common"
	"github.com/storyframe/stagecam/obj"
)

// minSegment is the boundary-segment length below which the size projection
// treats the two markers as coincident and holds t at 0.
const minSegment = 1e-9

// swipeBounds is the boundary pair for interactive panning: the markers'
// X/Y positions span the legal rectangle, and the segment between them is
// the 1D axis the orthographic size blends along.
type swipeBounds struct {
	a obj.Snapshot
	b obj.Snapshot

	rect   cp.BB
	seg    cp.Vector
	segLen float64
}

func newSwipeBounds(a, b obj.View) *swipeBounds {
	sa := obj.SnapshotOf(a)
	sb := obj.SnapshotOf(b)
	seg := cp.Vector{X: sb.Pos[0] - sa.Pos[0], Y: sb.Pos[1] - sa.Pos[1]}
	return &swipeBounds{
		a: sa,
		b: sb,
		rect: cp.BB{
			L: math.Min(sa.Pos[0], sb.Pos[0]),
			B: math.Min(sa.Pos[1], sb.Pos[1]),
			R: math.Max(sa.Pos[0], sb.Pos[0]),
			T: math.Max(sa.Pos[1], sb.Pos[1]),
		},
		seg:    seg,
		segLen: seg.Length(),
	}
}

// clampBlend clamps a candidate position into the boundary rectangle and
// derives the orthographic size by projecting the clamped position onto the
// A→B segment. Coincident markers always yield marker A's size.
func (s *swipeBounds) clampBlend(candidate mgl64.Vec3) (mgl64.Vec3, float64) {
	clamped := cp.Vector{
		X: cp.Clamp(candidate[0], s.rect.L, s.rect.R),
		Y: cp.Clamp(candidate[1], s.rect.B, s.rect.T),
	}

	t := 0.0
	if s.segLen > minSegment {
		offset := clamped.Sub(cp.Vector{X: s.a.Pos[0], Y: s.a.Pos[1]})
		t = common.Clamp01(offset.Dot(s.seg.Normalize()) / s.segLen)
	}
	size := common.Lerp(s.a.Size, s.b.Size, t)
	return mgl64.Vec3{clamped.X, clamped.Y, 0}, size
}

// update applies one tick of pointer movement: screen pixels map through the
// viewport transform, scaled by the configured pan sensitivity, and the
// resulting candidate is clamped and size-blended before being written to
// the camera.
func (s *swipeBounds) update(cam *obj.Camera, cfg Config, dx, dy float64) {
	vx, vy := cam.ScreenToViewport(dx, dy)
	pos := cam.Position()
	candidate := mgl64.Vec3{
		pos[0] + vx*cfg.SwipeScaleX,
		pos[1] + vy*cfg.SwipeScaleY,
		0,
	}

	clamped, size := s.clampBlend(candidate)
	cam.SetPosition(clamped)
	cam.SetOrthoSize(size)
}

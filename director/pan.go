package director

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/storyframe/stagecam/common"
	"github.com/storyframe/stagecam/obj"
)

// panTask eases the camera from its state at start time to a fixed target.
// Position and size interpolate linearly, orientation by shortest-arc slerp,
// all under a shared smoothstep parameter.
type panTask struct {
	from obj.Snapshot
	to   obj.Snapshot

	duration float64
	timer    float64
	onArrive func()
}

func newPanTask(cam *obj.Camera, to obj.Snapshot, duration float64, onArrive func()) *panTask {
	return &panTask{
		from:     cam.Snapshot(),
		to:       to,
		duration: duration,
		onArrive: onArrive,
	}
}

// advance writes the interpolated state for this tick and reports arrival.
// On the arrival tick the exact target values are applied, never a t≈1
// approximation.
func (p *panTask) advance(dt float64, cam *obj.Camera) bool {
	p.timer += dt
	if p.timer >= p.duration {
		p.timer = p.duration
		cam.Apply(p.to)
		return true
	}

	s := common.SmoothStep(p.timer / p.duration)
	cam.SetPosition(common.LerpVec3(p.from.Pos, p.to.Pos, s))
	cam.SetOrientation(common.Slerp(p.from.Rot, p.to.Rot, s))
	cam.SetOrthoSize(common.Lerp(p.from.Size, p.to.Size, s))
	return false
}

// snapshotTarget packs explicit pan parameters into a Snapshot target.
func snapshotTarget(pos mgl64.Vec3, rot mgl64.Quat, size float64) obj.Snapshot {
	return obj.Snapshot{Pos: pos, Rot: rot, Size: size}
}

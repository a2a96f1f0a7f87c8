package director

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/storyframe/stagecam/common"
	"github.com/storyframe/stagecam/obj"
)

// pathTask sweeps the camera through a sequence of waypoints. Each control
// point packs (x, y, orthographic size); the camera's state at start time is
// the implicit first point. Orientation is left untouched.
type pathTask struct {
	points   []mgl64.Vec3
	duration float64
	timer    float64
	onArrive func()
}

func newPathTask(cam *obj.Camera, views []obj.View, duration float64, onArrive func()) *pathTask {
	points := make([]mgl64.Vec3, 0, len(views)+1)
	pos := cam.Position()
	points = append(points, mgl64.Vec3{pos[0], pos[1], cam.OrthoSize()})
	for _, v := range views {
		vp := v.Position()
		points = append(points, mgl64.Vec3{vp[0], vp[1], v.ViewSize()})
	}
	return &pathTask{points: points, duration: duration, onArrive: onArrive}
}

// advance samples the spline at the elapsed fraction and writes it to the
// camera. Returns true on the arrival tick, where the final control point is
// applied exactly.
func (p *pathTask) advance(dt float64, cam *obj.Camera) bool {
	p.timer += dt
	done := p.timer >= p.duration
	percent := 1.0
	if !done {
		percent = common.Clamp01(p.timer / p.duration)
	}

	sample := common.SamplePath(p.points, percent)
	if done {
		sample = p.points[len(p.points)-1]
	}
	cam.SetPosition(mgl64.Vec3{sample[0], sample[1], 0})
	cam.SetOrthoSize(sample[2])
	return done
}

// applyEnd writes the final control point, used for the zero-duration
// degenerate case.
func (p *pathTask) applyEnd(cam *obj.Camera) {
	end := p.points[len(p.points)-1]
	cam.SetPosition(mgl64.Vec3{end[0], end[1], 0})
	cam.SetOrthoSize(end[2])
}

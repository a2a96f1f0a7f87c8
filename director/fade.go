package director

import (
	"github.com/storyframe/stagecam/common"
)

// fadeTask drives the overlay alpha from one value to another over a
// duration. Completion is always reported from an Update tick, never from
// the call that created the task, so callers see one uniform asynchronous
// contract (this also covers the degenerate zero-duration and
// already-at-target cases).
type fadeTask struct {
	from     float64
	target   float64
	duration float64
	timer    float64
	done     func()
}

// advance moves the fade forward and returns the new alpha and whether the
// task finished this tick. The timer never advances for degenerate tasks.
func (f *fadeTask) advance(dt float64) (float64, bool) {
	if f.duration <= 0 || f.from == f.target {
		return f.target, true
	}
	f.timer += dt
	if f.timer >= f.duration {
		return f.target, true
	}
	t := common.Clamp01(f.timer / f.duration)
	return common.Lerp(f.from, f.target, t), false
}

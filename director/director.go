// Package director is the camera transition layer: it eases one logical
// orthographic viewpoint between framing targets, drives a full-screen fade
// overlay, and supports interactive boundary-clamped swipe panning. All
// engines advance cooperatively from a single per-tick Update call; at most
// one of them writes the camera on any tick.
package director

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/storyframe/stagecam/common"
	"github.com/storyframe/stagecam/obj"
)

// Mode identifies which pan-family engine currently drives the camera.
// Fading is tracked separately; it only writes the overlay alpha and can
// overlap any mode.
type Mode int

const (
	ModeIdle Mode = iota
	ModePanning
	ModePathPanning
	ModeSwipePanning
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePanning:
		return "panning"
	case ModePathPanning:
		return "path-panning"
	case ModeSwipePanning:
		return "swipe-panning"
	default:
		return "unknown"
	}
}

// Director owns the transition state machine. It is not safe for concurrent
// use; everything happens on the host's update loop.
type Director struct {
	cam   *obj.Camera
	views *obj.Store
	cfg   Config

	mode  Mode
	pan   *panTask
	path  *pathTask
	swipe *swipeBounds
	seq   *sequence

	alpha float64
	fade  *fadeTask

	overlay   *ebiten.Image
	indicator *ebiten.Image
}

// New creates a director driving cam. The camera's Z plane is pinned to the
// configured value for the director's lifetime.
func New(cam *obj.Camera, cfg Config) *Director {
	cfg = cfg.withDefaults()
	cam.SetZPin(cfg.ZPin)
	return &Director{
		cam:   cam,
		views: obj.NewStore(),
		cfg:   cfg,
		alpha: 1,
	}
}

// Camera returns the driven camera.
func (d *Director) Camera() *obj.Camera { return d.cam }

// Views returns the named-view store.
func (d *Director) Views() *obj.Store { return d.views }

// Alpha returns the current fade alpha: 1 is fully visible, 0 fully
// obscured.
func (d *Director) Alpha() float64 { return d.alpha }

// Mode returns the active pan-family mode.
func (d *Director) Mode() Mode { return d.mode }

// Update advances the active transitions by dt seconds. ptr supplies the
// tick's pointer delta for swipe panning and may be nil when no interactive
// input exists.
func (d *Director) Update(dt float64, ptr *obj.Pointer) {
	if f := d.fade; f != nil {
		alpha, done := f.advance(dt)
		d.alpha = alpha
		if done {
			d.fade = nil
			if f.done != nil {
				f.done()
			}
		}
	}

	switch d.mode {
	case ModePanning:
		if p := d.pan; p != nil && p.advance(dt, d.cam) {
			d.pan = nil
			d.mode = ModeIdle
			if p.onArrive != nil {
				p.onArrive()
			}
		}
	case ModePathPanning:
		if p := d.path; p != nil && p.advance(dt, d.cam) {
			d.path = nil
			d.mode = ModeIdle
			if p.onArrive != nil {
				p.onArrive()
			}
		}
	case ModeSwipePanning:
		if d.swipe != nil && ptr != nil {
			d.swipe.update(d.cam, d.cfg, ptr.DeltaX, ptr.DeltaY)
		}
	}
}

// Fade drives the overlay alpha to target over duration seconds. The
// completion callback always fires from a later Update tick, including the
// degenerate cases (zero duration, already at target), so callers get one
// uniform asynchronous contract. A direct fade supersedes both any previous
// fade and a running FadeToView sequence.
func (d *Director) Fade(target, duration float64, onComplete func()) {
	d.cancelSequence()
	d.startFade(target, duration, onComplete)
}

// CancelFade drops any in-flight fade without firing its callback. The
// alpha keeps its current value.
func (d *Director) CancelFade() {
	d.fade = nil
}

func (d *Director) startFade(target, duration float64, onComplete func()) {
	d.fade = &fadeTask{
		from:     d.alpha,
		target:   common.Clamp01(target),
		duration: duration,
		done:     onComplete,
	}
}

// PanTo eases the camera from its current state to the explicit target over
// duration seconds, cancelling any pan-family transition in flight. With a
// non-positive duration the target is applied and onArrive invoked before
// PanTo returns.
func (d *Director) PanTo(pos mgl64.Vec3, rot mgl64.Quat, size, duration float64, onArrive func()) {
	d.cancelPanFamily()
	d.startPan(snapshotTarget(pos, rot, size), duration, onArrive)
}

// PanToView is PanTo aimed at a view marker's framing.
func (d *Director) PanToView(v obj.View, duration float64, onArrive func()) {
	d.cancelPanFamily()
	d.startPan(obj.SnapshotOf(v), duration, onArrive)
}

// StoreView captures the camera's current viewpoint under name, replacing
// any previous snapshot with that name.
func (d *Director) StoreView(name string) {
	d.views.Set(name, d.cam.Snapshot())
}

// PanToStoredView pans to a previously stored viewpoint. An unknown name is
// not an error: the camera is left untouched, nothing is cancelled, and
// onArrive is invoked before returning.
func (d *Director) PanToStoredView(name string, duration float64, onArrive func()) {
	snap, ok := d.views.Get(name)
	if !ok {
		if onArrive != nil {
			onArrive()
		}
		return
	}
	d.cancelPanFamily()
	d.startPan(snap, duration, onArrive)
}

// PanToPath sweeps the camera through the given view markers over duration
// seconds, sampling a Catmull-Rom spline through (x, y, size) waypoints with
// the current camera state as the implicit first point. Orientation is not
// driven. An empty marker list completes immediately.
func (d *Director) PanToPath(views []obj.View, duration float64, onArrive func()) {
	d.cancelPanFamily()
	if len(views) == 0 {
		if onArrive != nil {
			onArrive()
		}
		return
	}

	task := newPathTask(d.cam, views, duration, onArrive)
	if duration <= 0 {
		task.applyEnd(d.cam)
		if onArrive != nil {
			onArrive()
		}
		return
	}
	d.path = task
	d.mode = ModePathPanning
}

// FadeToView runs the composite fade-out, snap-to-view, fade-in sequence:
// the overlay fades to black over half the duration, the camera snaps to
// the target while obscured, the overlay fades back, then onArrive fires.
func (d *Director) FadeToView(v obj.View, duration float64, onArrive func()) {
	d.cancelPanFamily()

	target := obj.SnapshotOf(v)
	half := duration / 2
	s := &sequence{d: d}
	s.steps = []step{
		func(next func()) { d.startFade(0, half, next) },
		func(next func()) {
			d.cam.Apply(target)
			next()
		},
		func(next func()) { d.startFade(1, half, next) },
		func(next func()) {
			if onArrive != nil {
				onArrive()
			}
			next()
		},
	}
	d.seq = s
	s.run()
}

// StartSwipePan eases the camera into the legal region spanned by the two
// boundary markers, then hands control to interactive swipe panning:
// onArrive fires once the entry pan lands and pointer deltas start moving
// the camera directly.
func (d *Director) StartSwipePan(a, b obj.View, duration float64, onArrive func()) {
	d.cancelPanFamily()

	bounds := newSwipeBounds(a, b)
	pos, size := bounds.clampBlend(d.cam.Position())
	entry := obj.Snapshot{Pos: pos, Rot: d.cam.Orientation(), Size: size}
	d.startPan(entry, duration, func() {
		d.swipe = bounds
		d.mode = ModeSwipePanning
		if onArrive != nil {
			onArrive()
		}
	})
}

// StopSwipePan leaves swipe-pan mode and clears the boundary pair. It also
// drops a still-easing entry pan. Idempotent.
func (d *Director) StopSwipePan() {
	d.cancelPanFamily()
}

// CenterOnRect immediately frames the given world-space rectangle,
// cancelling any pan-family transition in flight.
func (d *Director) CenterOnRect(x, y, w, h float64) {
	d.cancelPanFamily()
	d.cam.CenterOnRect(x, y, w, h)
}

func (d *Director) startPan(to obj.Snapshot, duration float64, onArrive func()) {
	if duration <= 0 {
		d.cam.Apply(to)
		d.mode = ModeIdle
		if onArrive != nil {
			onArrive()
		}
		return
	}
	d.pan = newPanTask(d.cam, to, duration, onArrive)
	d.mode = ModePanning
}

// cancelPanFamily halts every pan-family transition, including a running
// FadeToView sequence, without firing their callbacks. With LegacyStopAll
// set, an in-flight fade dies too.
func (d *Director) cancelPanFamily() {
	d.pan = nil
	d.path = nil
	d.swipe = nil
	d.mode = ModeIdle
	d.seq = nil
	if d.cfg.LegacyStopAll {
		d.fade = nil
	}
}

func (d *Director) cancelSequence() {
	d.seq = nil
}

// Draw renders the per-frame overlays: the swipe-mode indicator while swipe
// panning, and the fade overlay whenever the scene is not fully visible.
func (d *Director) Draw(screen *ebiten.Image) {
	if d.mode == ModeSwipePanning {
		d.drawIndicator(screen)
	}

	if d.alpha < 1 {
		if d.overlay == nil {
			d.overlay = ebiten.NewImage(1, 1)
			d.overlay.Fill(color.Black)
		}
		b := screen.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(b.Dx()), float64(b.Dy()))
		op.ColorScale.ScaleAlpha(float32(1 - d.alpha))
		screen.DrawImage(d.overlay, op)
	}
}

const indicatorSize = 12

func (d *Director) drawIndicator(screen *ebiten.Image) {
	if d.indicator == nil {
		d.indicator = ebiten.NewImage(indicatorSize, indicatorSize)
		d.indicator.Fill(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xb0})
	}
	b := screen.Bounds()
	x := d.cfg.IndicatorX*float64(b.Dx()) - indicatorSize/2
	y := d.cfg.IndicatorY*float64(b.Dy()) - indicatorSize/2
	x = clampRange(x, 0, float64(b.Dx()-indicatorSize))
	y = clampRange(y, 0, float64(b.Dy()-indicatorSize))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(d.indicator, op)
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

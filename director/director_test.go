package director

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/storyframe/stagecam/obj"
)

func newTestDirector() (*Director, *obj.Camera) {
	cam := obj.NewCamera(1280, 720, 5)
	d := New(cam, DefaultConfig())
	return d, cam
}

func TestPanZeroDurationIsSynchronous(t *testing.T) {
	d, cam := newTestDirector()

	fired := false
	target := mgl64.Vec3{10, -4, 0}
	d.PanTo(target, mgl64.QuatIdent(), 9, 0, func() { fired = true })

	if !fired {
		t.Fatalf("onArrive must fire before PanTo returns for duration 0")
	}
	if pos := cam.Position(); pos[0] != 10 || pos[1] != -4 {
		t.Fatalf("camera position = %v, want (10, -4)", pos)
	}
	if cam.OrthoSize() != 9 {
		t.Fatalf("ortho size = %v, want 9", cam.OrthoSize())
	}
	if d.Mode() != ModeIdle {
		t.Fatalf("mode = %v, want idle", d.Mode())
	}
}

func TestPanEndpointsExact(t *testing.T) {
	d, cam := newTestDirector()
	cam.SetPosition(mgl64.Vec3{1, 2, 0})
	cam.SetOrthoSize(5)
	start := cam.Snapshot()

	arrivals := 0
	target := mgl64.Vec3{21, -8, 0}
	d.PanTo(target, mgl64.QuatIdent(), 15, 2, func() { arrivals++ })

	// First tick with no elapsed time reproduces the start exactly.
	d.Update(0, nil)
	if cam.Position() != start.Pos || cam.OrthoSize() != start.Size {
		t.Fatalf("t=0 tick should hold the start state, got %v size %v", cam.Position(), cam.OrthoSize())
	}

	// Arrival tick applies the exact target, not a t≈1 approximation.
	d.Update(2.0001, nil)
	if pos := cam.Position(); pos[0] != 21 || pos[1] != -8 {
		t.Fatalf("arrival position = %v, want exactly (21, -8)", pos)
	}
	if cam.OrthoSize() != 15 {
		t.Fatalf("arrival size = %v, want exactly 15", cam.OrthoSize())
	}
	if arrivals != 1 {
		t.Fatalf("onArrive fired %d times, want 1", arrivals)
	}

	// Further ticks change nothing and never re-fire.
	d.Update(1, nil)
	if arrivals != 1 || cam.Position()[0] != 21 {
		t.Fatalf("camera moved or callback re-fired after arrival")
	}
}

func TestPanScenario(t *testing.T) {
	// Camera at origin with size 5, pan to (10, 0) size 10 over 2 seconds.
	d, cam := newTestDirector()

	arrivals := 0
	d.PanTo(mgl64.Vec3{10, 0, 0}, mgl64.QuatIdent(), 10, 2, func() { arrivals++ })

	d.Update(1, nil)
	x := cam.Position()[0]
	size := cam.OrthoSize()
	if x <= 0 || x >= 10 {
		t.Fatalf("midpoint X = %v, want strictly between 0 and 10", x)
	}
	if size <= 5 || size >= 10 {
		t.Fatalf("midpoint size = %v, want strictly between 5 and 10", size)
	}
	// Smoothstep at t=0.5 is exactly 0.5.
	if math.Abs(x-5) > 1e-9 {
		t.Fatalf("smoothstep midpoint X = %v, want 5", x)
	}
	if arrivals != 0 {
		t.Fatalf("arrived early")
	}

	d.Update(1.5, nil)
	if pos := cam.Position(); pos[0] != 10 || pos[1] != 0 {
		t.Fatalf("final position = %v, want (10, 0)", pos)
	}
	if cam.OrthoSize() != 10 {
		t.Fatalf("final size = %v, want 10", cam.OrthoSize())
	}
	if arrivals != 1 {
		t.Fatalf("onArrive fired %d times, want 1", arrivals)
	}
}

func TestPanInterpolatesOrientation(t *testing.T) {
	d, cam := newTestDirector()
	rot := mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})

	d.PanTo(mgl64.Vec3{}, rot, 5, 2, nil)
	d.Update(1, nil)
	half := cam.Roll()
	if half <= 0 || half >= math.Pi/2 {
		t.Fatalf("midpoint roll = %v, want strictly within (0, pi/2)", half)
	}
	d.Update(1, nil)
	if got := cam.Roll(); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Fatalf("final roll = %v, want pi/2", got)
	}
}

func TestFadeLinearAndExactFinish(t *testing.T) {
	d, _ := newTestDirector()

	completions := 0
	d.Fade(0, 2, func() { completions++ })

	d.Update(1, nil)
	if math.Abs(d.Alpha()-0.5) > 1e-9 {
		t.Fatalf("alpha after half the duration = %v, want 0.5", d.Alpha())
	}
	if completions != 0 {
		t.Fatalf("fade completed early")
	}

	d.Update(1.5, nil)
	if d.Alpha() != 0 {
		t.Fatalf("final alpha = %v, want exactly 0", d.Alpha())
	}
	if completions != 1 {
		t.Fatalf("onComplete fired %d times, want 1", completions)
	}
}

func TestFadeAlreadyAtTargetCompletesNextTick(t *testing.T) {
	d, _ := newTestDirector()

	completions := 0
	d.Fade(1, 5, func() { completions++ })
	if completions != 0 {
		t.Fatalf("fade callbacks must never fire synchronously")
	}

	d.Update(0, nil)
	if completions != 1 {
		t.Fatalf("same-target fade should complete on the next tick, got %d", completions)
	}
	if d.Alpha() != 1 {
		t.Fatalf("alpha = %v, want 1", d.Alpha())
	}
}

func TestFadeZeroDurationSnapsNextTick(t *testing.T) {
	d, _ := newTestDirector()

	completions := 0
	d.Fade(0.25, 0, func() { completions++ })
	if d.Alpha() != 1 {
		t.Fatalf("alpha must not change before the next tick")
	}

	d.Update(0, nil)
	if d.Alpha() != 0.25 {
		t.Fatalf("alpha = %v, want 0.25", d.Alpha())
	}
	if completions != 1 {
		t.Fatalf("onComplete fired %d times, want 1", completions)
	}
}

func TestFadeTargetClamped(t *testing.T) {
	d, _ := newTestDirector()
	d.Fade(3, 0, nil)
	d.Update(0, nil)
	if d.Alpha() != 1 {
		t.Fatalf("alpha = %v, want clamped to 1", d.Alpha())
	}
}

func TestStoreAndRecallExact(t *testing.T) {
	d, cam := newTestDirector()
	cam.SetPosition(mgl64.Vec3{7, 3, 0})
	cam.SetOrientation(mgl64.QuatRotate(0.4, mgl64.Vec3{0, 0, 1}))
	cam.SetOrthoSize(11)
	want := cam.Snapshot()

	d.StoreView("bookmark")

	// Intervening motion must not affect the stored snapshot.
	d.PanTo(mgl64.Vec3{-50, 20, 0}, mgl64.QuatIdent(), 2, 0, nil)

	fired := false
	d.PanToStoredView("bookmark", 0, func() { fired = true })
	if !fired {
		t.Fatalf("onArrive must fire synchronously for duration 0")
	}
	if cam.Position() != want.Pos || cam.Orientation() != want.Rot || cam.OrthoSize() != want.Size {
		t.Fatalf("recall mismatch: got %v/%v/%v", cam.Position(), cam.Orientation(), cam.OrthoSize())
	}
}

func TestPanToStoredViewMissingIsNoOp(t *testing.T) {
	d, cam := newTestDirector()
	cam.SetPosition(mgl64.Vec3{1, 1, 0})
	before := cam.Snapshot()

	fired := false
	d.PanToStoredView("nonexistent", 3, func() { fired = true })
	if !fired {
		t.Fatalf("missing view must still invoke the callback")
	}
	d.Update(1, nil)
	if cam.Position() != before.Pos || cam.OrthoSize() != before.Size {
		t.Fatalf("missing view must never mutate the camera")
	}
	if d.Mode() != ModeIdle {
		t.Fatalf("mode = %v, want idle", d.Mode())
	}
}

func TestPathEndpoints(t *testing.T) {
	d, cam := newTestDirector()
	cam.SetPosition(mgl64.Vec3{0, 0, 0})
	cam.SetOrthoSize(5)

	views := []obj.View{
		obj.Marker{Pos: mgl64.Vec3{10, 5, 0}, Rot: mgl64.QuatIdent(), Size: 8},
		obj.Marker{Pos: mgl64.Vec3{20, -5, 0}, Rot: mgl64.QuatIdent(), Size: 12},
	}

	arrivals := 0
	d.PanToPath(views, 2, func() { arrivals++ })
	if d.Mode() != ModePathPanning {
		t.Fatalf("mode = %v, want path-panning", d.Mode())
	}

	// percent = 0 reproduces the pre-transition state.
	d.Update(0, nil)
	if pos := cam.Position(); pos[0] != 0 || pos[1] != 0 {
		t.Fatalf("start of path moved the camera: %v", pos)
	}
	if cam.OrthoSize() != 5 {
		t.Fatalf("start of path changed the size: %v", cam.OrthoSize())
	}

	// percent = 1 lands exactly on the final marker.
	d.Update(3, nil)
	if pos := cam.Position(); pos[0] != 20 || pos[1] != -5 {
		t.Fatalf("end of path = %v, want (20, -5)", pos)
	}
	if cam.OrthoSize() != 12 {
		t.Fatalf("end size = %v, want 12", cam.OrthoSize())
	}
	if arrivals != 1 {
		t.Fatalf("onArrive fired %d times, want 1", arrivals)
	}
	if d.Mode() != ModeIdle {
		t.Fatalf("mode = %v, want idle after arrival", d.Mode())
	}
}

func TestPathZeroDurationSnapsToEnd(t *testing.T) {
	d, cam := newTestDirector()
	views := []obj.View{
		obj.Marker{Pos: mgl64.Vec3{4, 4, 0}, Size: 6},
		obj.Marker{Pos: mgl64.Vec3{9, 1, 0}, Size: 2},
	}

	fired := false
	d.PanToPath(views, 0, func() { fired = true })
	if !fired {
		t.Fatalf("onArrive must fire before return for duration 0")
	}
	if pos := cam.Position(); pos[0] != 9 || pos[1] != 1 {
		t.Fatalf("position = %v, want (9, 1)", pos)
	}
	if cam.OrthoSize() != 2 {
		t.Fatalf("size = %v, want 2", cam.OrthoSize())
	}
}

func TestPathLeavesOrientationAlone(t *testing.T) {
	d, cam := newTestDirector()
	rot := mgl64.QuatRotate(0.9, mgl64.Vec3{0, 0, 1})
	cam.SetOrientation(rot)

	d.PanToPath([]obj.View{obj.Marker{Pos: mgl64.Vec3{5, 5, 0}, Size: 4}}, 1, nil)
	d.Update(0.5, nil)
	if cam.Orientation() != rot {
		t.Fatalf("path panning must not drive orientation")
	}
}

func TestNewPanCancelsPrevious(t *testing.T) {
	d, _ := newTestDirector()

	firstArrived := false
	d.PanTo(mgl64.Vec3{100, 0, 0}, mgl64.QuatIdent(), 5, 10, func() { firstArrived = true })
	d.Update(1, nil)

	secondArrived := false
	d.PanTo(mgl64.Vec3{-100, 0, 0}, mgl64.QuatIdent(), 5, 1, func() { secondArrived = true })
	if d.Mode() != ModePanning {
		t.Fatalf("mode = %v, want panning", d.Mode())
	}

	// Run long enough to have finished both.
	for i := 0; i < 20; i++ {
		d.Update(1, nil)
	}
	if firstArrived {
		t.Fatalf("cancelled pan's callback must never fire")
	}
	if !secondArrived {
		t.Fatalf("replacement pan should have arrived")
	}
}

func TestPanCancelsPathAndVersa(t *testing.T) {
	d, _ := newTestDirector()
	views := []obj.View{obj.Marker{Pos: mgl64.Vec3{5, 5, 0}, Size: 4}}

	d.PanToPath(views, 10, nil)
	d.PanTo(mgl64.Vec3{1, 1, 0}, mgl64.QuatIdent(), 2, 5, nil)
	if d.Mode() != ModePanning {
		t.Fatalf("mode = %v, want panning after pan start", d.Mode())
	}

	d.PanToPath(views, 10, nil)
	if d.Mode() != ModePathPanning {
		t.Fatalf("mode = %v, want path-panning after path start", d.Mode())
	}
}

func TestFadeSurvivesPanByDefault(t *testing.T) {
	d, _ := newTestDirector()

	d.Fade(0, 2, nil)
	d.Update(0.5, nil)
	d.PanTo(mgl64.Vec3{5, 0, 0}, mgl64.QuatIdent(), 5, 1, nil)
	d.Update(0.5, nil)
	if math.Abs(d.Alpha()-0.5) > 1e-9 {
		t.Fatalf("fade should keep running across a pan start, alpha = %v", d.Alpha())
	}
}

func TestLegacyStopAllKillsFade(t *testing.T) {
	cam := obj.NewCamera(1280, 720, 5)
	cfg := DefaultConfig()
	cfg.LegacyStopAll = true
	d := New(cam, cfg)

	completions := 0
	d.Fade(0, 2, func() { completions++ })
	d.Update(0.5, nil)
	d.PanTo(mgl64.Vec3{5, 0, 0}, mgl64.QuatIdent(), 5, 1, nil)

	alpha := d.Alpha()
	d.Update(5, nil)
	if d.Alpha() != alpha {
		t.Fatalf("legacy coupling should freeze the fade, alpha moved %v -> %v", alpha, d.Alpha())
	}
	if completions != 0 {
		t.Fatalf("cancelled fade must not complete")
	}
}

func TestCancelFade(t *testing.T) {
	d, _ := newTestDirector()
	completions := 0
	d.Fade(0, 2, func() { completions++ })
	d.Update(0.5, nil)
	d.CancelFade()
	d.Update(5, nil)
	if completions != 0 {
		t.Fatalf("cancelled fade must not complete")
	}
	if math.Abs(d.Alpha()-0.75) > 1e-9 {
		t.Fatalf("alpha should hold its value at cancellation, got %v", d.Alpha())
	}
}

func TestFadeToViewSequence(t *testing.T) {
	d, cam := newTestDirector()
	target := obj.Marker{
		Pos:  mgl64.Vec3{40, -10, 0},
		Rot:  mgl64.QuatRotate(0.3, mgl64.Vec3{0, 0, 1}),
		Size: 7,
	}

	arrived := false
	d.FadeToView(target, 2, func() { arrived = true })

	// Fade-out leg: half the duration.
	d.Update(0.5, nil)
	if math.Abs(d.Alpha()-0.5) > 1e-9 {
		t.Fatalf("fade-out midpoint alpha = %v, want 0.5", d.Alpha())
	}
	if cam.Position()[0] != 0 {
		t.Fatalf("camera must not move during the fade-out leg")
	}

	// Completing the fade-out snaps the camera while obscured and starts
	// the fade-in.
	d.Update(0.5, nil)
	if d.Alpha() != 0 {
		t.Fatalf("alpha = %v, want 0 at the midpoint", d.Alpha())
	}
	if pos := cam.Position(); pos[0] != 40 || pos[1] != -10 {
		t.Fatalf("camera should snap at the midpoint, got %v", pos)
	}
	if cam.OrthoSize() != 7 {
		t.Fatalf("size should snap at the midpoint, got %v", cam.OrthoSize())
	}
	if arrived {
		t.Fatalf("arrival callback fired before the fade-in leg")
	}

	d.Update(1, nil)
	if d.Alpha() != 1 {
		t.Fatalf("final alpha = %v, want 1", d.Alpha())
	}
	if !arrived {
		t.Fatalf("arrival callback should fire after the fade-in completes")
	}
}

func TestFadeToViewCancelledByPan(t *testing.T) {
	d, _ := newTestDirector()
	target := obj.Marker{Pos: mgl64.Vec3{40, -10, 0}, Rot: mgl64.QuatIdent(), Size: 7}

	arrived := false
	d.FadeToView(target, 2, func() { arrived = true })
	d.Update(0.25, nil)

	d.PanTo(mgl64.Vec3{1, 1, 0}, mgl64.QuatIdent(), 3, 1, nil)
	for i := 0; i < 10; i++ {
		d.Update(1, nil)
	}
	if arrived {
		t.Fatalf("cancelled sequence must not deliver its arrival callback")
	}
}

func TestCenterOnRect(t *testing.T) {
	d, cam := newTestDirector()
	d.CenterOnRect(10, 20, 8, 36)
	if pos := cam.Position(); pos[0] != 14 || pos[1] != 38 {
		t.Fatalf("position = %v, want rect center (14, 38)", pos)
	}
	if cam.OrthoSize() != 18 {
		t.Fatalf("size = %v, want 18", cam.OrthoSize())
	}
}

func TestEmptyPathCompletesImmediately(t *testing.T) {
	d, cam := newTestDirector()
	before := cam.Snapshot()
	fired := false
	d.PanToPath(nil, 2, func() { fired = true })
	if !fired {
		t.Fatalf("empty path should complete synchronously")
	}
	if cam.Position() != before.Pos {
		t.Fatalf("empty path must not move the camera")
	}
}

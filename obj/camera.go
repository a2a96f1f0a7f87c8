package obj

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultZPin is the Z coordinate the camera is held at unless configured
// otherwise. The camera lives on a fixed plane in front of the 2D scene.
const DefaultZPin = -10.0

// Camera is the live orthographic viewpoint. Transition engines write its
// position, orientation and size each frame; the renderer reads them back
// through WorldTransform.
type Camera struct {
	pos       mgl64.Vec3
	rot       mgl64.Quat
	orthoSize float64

	screenW int
	screenH int
	zPin    float64
}

// NewCamera creates a camera with the given logical screen size and initial
// orthographic size (half the vertical visible extent).
func NewCamera(screenW, screenH int, orthoSize float64) *Camera {
	c := &Camera{
		rot:     mgl64.QuatIdent(),
		screenW: screenW,
		screenH: screenH,
		zPin:    DefaultZPin,
	}
	c.SetOrthoSize(orthoSize)
	c.SetPosition(mgl64.Vec3{})
	return c
}

// SetZPin changes the fixed Z plane and re-pins the current position to it.
func (c *Camera) SetZPin(z float64) {
	c.zPin = z
	c.pos[2] = z
}

// Position returns the camera's world position.
func (c *Camera) Position() mgl64.Vec3 {
	return c.pos
}

// SetPosition moves the camera. Only X and Y are taken from p; Z is always
// pinned to the configured plane.
func (c *Camera) SetPosition(p mgl64.Vec3) {
	p[2] = c.zPin
	c.pos = p
}

// Orientation returns the camera's world orientation.
func (c *Camera) Orientation() mgl64.Quat {
	return c.rot
}

// SetOrientation sets the camera's world orientation.
func (c *Camera) SetOrientation(q mgl64.Quat) {
	c.rot = q
}

// OrthoSize returns the orthographic size (half the vertical visible
// extent in world units).
func (c *Camera) OrthoSize() float64 {
	return c.orthoSize
}

// SetOrthoSize updates the orthographic size. Non-positive values are
// ignored.
func (c *Camera) SetOrthoSize(s float64) {
	if s <= 0 {
		return
	}
	c.orthoSize = s
}

// SetScreenSize updates the logical screen size used by the camera.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

// ScreenSize returns the logical screen size.
func (c *Camera) ScreenSize() (int, int) {
	return c.screenW, c.screenH
}

// ScreenToViewport converts a screen-pixel delta to a viewport-relative
// delta (fractions of the surface dimensions).
func (c *Camera) ScreenToViewport(dx, dy float64) (float64, float64) {
	if c.screenW == 0 || c.screenH == 0 {
		return 0, 0
	}
	return dx / float64(c.screenW), dy / float64(c.screenH)
}

// Zoom returns the world-to-pixel scale implied by the orthographic size.
func (c *Camera) Zoom() float64 {
	if c.orthoSize == 0 {
		return 1
	}
	return float64(c.screenH) / (2 * c.orthoSize)
}

// Roll returns the camera's rotation about the view axis in radians,
// extracted from the orientation quaternion.
func (c *Camera) Roll() float64 {
	return 2 * math.Atan2(c.rot.V[2], c.rot.W)
}

// Snapshot captures the current viewpoint as an immutable value.
func (c *Camera) Snapshot() Snapshot {
	return Snapshot{Pos: c.pos, Rot: c.rot, Size: c.orthoSize}
}

// Apply restores a previously captured viewpoint. Z is re-pinned.
func (c *Camera) Apply(s Snapshot) {
	c.SetPosition(s.Pos)
	c.SetOrientation(s.Rot)
	c.SetOrthoSize(s.Size)
}

// CenterOnRect positions and sizes the camera so the given world-space
// rectangle exactly fills the frame: the tighter of the two axes wins, so
// the whole extent is always visible.
func (c *Camera) CenterOnRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	aspect := float64(c.screenW) / float64(c.screenH)
	size := h / 2
	if byWidth := (w / 2) / aspect; byWidth > size {
		size = byWidth
	}
	c.SetOrthoSize(size)
	c.SetPosition(mgl64.Vec3{x + w/2, y + h/2, 0})
}

// WorldTransform returns the GeoM that maps world space to screen space for
// the current viewpoint: the camera position lands at the screen center,
// scaled by zoom and counter-rotated by the camera roll.
func (c *Camera) WorldTransform() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-c.pos[0], -c.pos[1])
	g.Rotate(-c.Roll())
	z := c.Zoom()
	g.Scale(z, z)
	g.Translate(float64(c.screenW)/2, float64(c.screenH)/2)
	return g
}

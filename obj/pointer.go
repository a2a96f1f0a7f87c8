package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer tracks the per-tick drag delta of the primary pointer in screen
// pixels. Touch input wins over the mouse: the first active touch's movement
// is used when present, otherwise the cursor movement while the left button
// is held.
type Pointer struct {
	// DeltaX/DeltaY are the pointer movement for this tick in screen
	// pixels. Zero when nothing is dragging.
	DeltaX float64
	DeltaY float64

	dragging bool
	prevX    int
	prevY    int

	touchIDs []ebiten.TouchID
}

// NewPointer creates a pointer tracker.
func NewPointer() *Pointer {
	return &Pointer{}
}

// Update polls input state. Call once per tick before the director update.
func (p *Pointer) Update() {
	p.DeltaX = 0
	p.DeltaY = 0

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		id := p.touchIDs[0]
		// The first tick of a touch has no previous position to diff
		// against.
		if inpututil.TouchPressDuration(id) > 1 {
			x, y := ebiten.TouchPosition(id)
			px, py := inpututil.TouchPositionInPreviousTick(id)
			p.DeltaX = float64(x - px)
			p.DeltaY = float64(y - py)
		}
		p.dragging = false
		return
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if p.dragging {
			p.DeltaX = float64(x - p.prevX)
			p.DeltaY = float64(y - p.prevY)
		}
		p.prevX = x
		p.prevY = y
		p.dragging = true
		return
	}

	p.dragging = false
}

// Delta returns the current tick's pointer movement in screen pixels.
func (p *Pointer) Delta() (float64, float64) {
	return p.DeltaX, p.DeltaY
}

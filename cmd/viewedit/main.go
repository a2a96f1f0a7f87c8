// viewedit is an interactive view-marker editor: drag to pan, scroll to
// zoom, press V to capture the current framing as a named view, and press E
// to export every captured view as views.yaml (written to disk and, when
// available, to the system clipboard).
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/storyframe/stagecam/obj"
	"github.com/storyframe/stagecam/prefabs"
)

const (
	screenW = 1280
	screenH = 720
)

type editor struct {
	cam     *obj.Camera
	pointer *obj.Pointer

	views   []prefabs.ViewSpec
	outPath string
	status  string

	clip bool
	tile *ebiten.Image
}

func newEditor(outPath string, clip bool) *editor {
	return &editor{
		cam:     obj.NewCamera(screenW, screenH, 24),
		pointer: obj.NewPointer(),
		outPath: outPath,
		status:  "drag: pan   wheel: zoom   V: capture view   E: export",
		clip:    clip,
	}
}

func (e *editor) Update() error {
	e.pointer.Update()

	// Drag pans the camera against the pointer, in world units.
	if dx, dy := e.pointer.Delta(); dx != 0 || dy != 0 {
		zoom := e.cam.Zoom()
		pos := e.cam.Position()
		pos[0] -= dx / zoom
		pos[1] -= dy / zoom
		e.cam.SetPosition(pos)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		e.cam.SetOrthoSize(e.cam.OrthoSize() * (1 - 0.1*wy))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		e.capture()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		e.export()
	}
	return nil
}

func (e *editor) capture() {
	pos := e.cam.Position()
	spec := prefabs.ViewSpec{
		Name: fmt.Sprintf("view_%d", len(e.views)+1),
		X:    pos[0],
		Y:    pos[1],
		Size: e.cam.OrthoSize(),
	}
	e.views = append(e.views, spec)
	e.status = fmt.Sprintf("captured %s at (%.1f, %.1f) size %.1f", spec.Name, spec.X, spec.Y, spec.Size)
}

func (e *editor) export() {
	if len(e.views) == 0 {
		e.status = "nothing captured yet"
		return
	}
	data, err := yaml.Marshal(prefabs.ViewsSpec{Views: e.views})
	if err != nil {
		e.status = fmt.Sprintf("marshal failed: %v", err)
		return
	}
	if err := os.WriteFile(e.outPath, data, 0o644); err != nil {
		e.status = fmt.Sprintf("write %s failed: %v", e.outPath, err)
		return
	}
	if e.clip {
		clipboard.Write(clipboard.FmtText, data)
		e.status = fmt.Sprintf("exported %d views to %s and clipboard", len(e.views), e.outPath)
		return
	}
	e.status = fmt.Sprintf("exported %d views to %s", len(e.views), e.outPath)
}

func (e *editor) Draw(screen *ebiten.Image) {
	e.drawGrid(screen)

	// Crosshair marking the current framing center.
	cx, cy := screenW/2, screenH/2
	for i := -8; i <= 8; i++ {
		screen.Set(cx+i, cy, color.White)
		screen.Set(cx, cy+i, color.White)
	}

	pos := e.cam.Position()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"(%.1f, %.1f) size %.1f   views: %d\n%s",
		pos[0], pos[1], e.cam.OrthoSize(), len(e.views), e.status))
}

func (e *editor) drawGrid(screen *ebiten.Image) {
	if e.tile == nil {
		e.tile = ebiten.NewImage(1, 1)
		e.tile.Fill(color.NRGBA{0x44, 0x44, 0x55, 0xff})
	}
	world := e.cam.WorldTransform()
	for gx := -10; gx <= 10; gx++ {
		for gy := -6; gy <= 6; gy++ {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(0.5, 0.5)
			op.GeoM.Translate(float64(gx*8), float64(gy*8))
			op.GeoM.Concat(world)
			screen.DrawImage(e.tile, op)
		}
	}
}

func (e *editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func main() {
	outPath := flag.String("o", "views.yaml", "output path for the exported views")
	flag.Parse()

	clip := true
	if err := clipboard.Init(); err != nil {
		log.Printf("viewedit: clipboard unavailable: %v", err)
		clip = false
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("stagecam viewedit")
	if err := ebiten.RunGame(newEditor(*outPath, clip)); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/storyframe/stagecam/director"
	"github.com/storyframe/stagecam/obj"
	"github.com/storyframe/stagecam/prefabs"
	"github.com/storyframe/stagecam/script"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

// prop is a colored world-space rectangle, just enough scene to make camera
// motion visible.
type prop struct {
	x, y, w, h float64
	col        color.NRGBA
}

type Game struct {
	cam     *obj.Camera
	dir     *director.Director
	pointer *obj.Pointer
	hud     *hud

	cut     *script.Cutscene
	watcher *prefabs.Watcher

	props []prop
	tile  *ebiten.Image

	swipeOn bool
}

func NewGame(playIntro, legacy, watch bool) (*Game, error) {
	spec, err := prefabs.LoadSpec[prefabs.DirectorSpec]("director.yaml")
	if err != nil {
		return nil, err
	}

	cam := obj.NewCamera(baseWidth, baseHeight, 24)
	cfg := director.Config{
		ZPin:          spec.ZPin,
		SwipeScaleX:   spec.SwipeScaleX,
		SwipeScaleY:   spec.SwipeScaleY,
		IndicatorX:    spec.IndicatorX,
		IndicatorY:    spec.IndicatorY,
		LegacyStopAll: spec.LegacyStopAll || legacy,
	}
	dir := director.New(cam, cfg)

	if err := prefabs.LoadViews(dir.Views()); err != nil {
		return nil, err
	}

	g := &Game{
		cam:     cam,
		dir:     dir,
		pointer: obj.NewPointer(),
		props:   stageProps(),
	}
	g.hud = newHUD(g)

	if watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if playIntro {
		cut, err := script.Load("intro.tengo")
		if err != nil {
			return nil, fmt.Errorf("game: intro cutscene: %w", err)
		}
		cut.Play(dir)
		g.cut = cut
	}

	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	g.drainWatcher()
	g.pointer.Update()
	g.handleKeys()
	g.hud.update()

	if g.cut != nil {
		g.cut.Update(dt)
		if g.cut.Done() {
			g.cut = nil
		}
	}
	g.dir.Update(dt, g.pointer)
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: reloading views after change to %s", name)
			if err := prefabs.LoadViews(g.dir.Views()); err != nil {
				log.Printf("game: reload failed: %v", err)
			}
		case err := <-g.watcher.Errors:
			log.Printf("game: watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) handleKeys() {
	bindings := map[ebiten.Key]string{
		ebiten.Key1: "overview",
		ebiten.Key2: "stage_left",
		ebiten.Key3: "stage_right",
		ebiten.Key4: "closeup",
	}
	for key, name := range bindings {
		if inpututil.IsKeyJustPressed(key) {
			g.dir.PanToStoredView(name, 1.5, nil)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.toggleFade()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.fadeToStored("closeup")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.panTour()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.toggleSwipe()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.dir.StoreView("custom")
		log.Printf("game: stored current viewpoint as %q", "custom")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.dir.PanToStoredView("custom", 1, nil)
	}
}

func (g *Game) toggleFade() {
	if g.dir.Alpha() > 0.5 {
		g.dir.Fade(0, 1, nil)
	} else {
		g.dir.Fade(1, 1, nil)
	}
}

func (g *Game) fadeToStored(name string) {
	snap, ok := g.dir.Views().Get(name)
	if !ok {
		return
	}
	g.dir.FadeToView(snap, 2, nil)
}

func (g *Game) panTour() {
	var tour []obj.View
	for _, name := range []string{"stage_left", "stage_right", "closeup"} {
		if snap, ok := g.dir.Views().Get(name); ok {
			tour = append(tour, snap)
		}
	}
	g.dir.PanToPath(tour, 5, nil)
}

func (g *Game) toggleSwipe() {
	if g.swipeOn {
		g.dir.StopSwipePan()
		g.swipeOn = false
		return
	}
	left, okL := g.dir.Views().Get("stage_left")
	right, okR := g.dir.Views().Get("stage_right")
	if !okL || !okR {
		return
	}
	g.dir.StartSwipePan(left, right, 1, func() { g.swipeOn = true })
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawScene(screen)
	g.dir.Draw(screen)
	g.hud.draw(screen)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"mode: %s  alpha: %.2f  size: %.1f  FPS: %.1f",
		g.dir.Mode(), g.dir.Alpha(), g.cam.OrthoSize(), ebiten.ActualFPS()))
}

func (g *Game) drawScene(screen *ebiten.Image) {
	if g.tile == nil {
		g.tile = ebiten.NewImage(1, 1)
		g.tile.Fill(color.White)
	}
	world := g.cam.WorldTransform()
	for _, p := range g.props {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(p.w, p.h)
		op.GeoM.Translate(p.x, p.y)
		op.GeoM.Concat(world)
		op.ColorScale.ScaleWithColor(p.col)
		screen.DrawImage(g.tile, op)
	}
}

// stageProps lays out a spread of rectangles covering the named views so
// every transition has something to frame.
func stageProps() []prop {
	props := []prop{
		{-40, -16, 80, 32, color.NRGBA{0x22, 0x44, 0x66, 0xff}},
		{-34, 2, 8, 8, color.NRGBA{0xcc, 0x55, 0x33, 0xff}},
		{26, 2, 8, 8, color.NRGBA{0x33, 0xcc, 0x55, 0xff}},
		{2, -4, 4, 4, color.NRGBA{0xee, 0xee, 0x44, 0xff}},
	}
	for i := -4; i < 5; i++ {
		props = append(props, prop{
			x:   float64(i*8) - 1,
			y:   -14,
			w:   2,
			h:   2,
			col: color.NRGBA{0x88, 0x88, 0x99, 0xff},
		})
	}
	return props
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

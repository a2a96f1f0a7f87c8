package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	intro := flag.Bool("intro", false, "play the intro cutscene on start")
	legacy := flag.Bool("legacy", false, "legacy cancellation: a pan start also stops an in-flight fade")
	watch := flag.Bool("watch", false, "hot-reload prefabs/views.yaml while running")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("stagecam")

	game, err := NewGame(*intro, *legacy, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

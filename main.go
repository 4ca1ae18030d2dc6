package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()
	log.Printf("Program started")

	g := newGame()
	if *recordDefaultPGO {
		stop, err := startDefaultPGORecording(defaultPGOPath)
		if err != nil {
			log.Fatalf("PGO recording failed: %v", err)
		}
		g.beginEmitterSweep(pgoRecordDuration, stop)
		log.Printf("Recording %s for %s", defaultPGOPath, pgoRecordDuration)
	}

	ebiten.SetWindowSize(screenW*windowScale, screenH*windowScale)
	ebiten.SetWindowTitle(windowTitle)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game loop failed: %v", err)
	}
}

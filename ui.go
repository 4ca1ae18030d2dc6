package main

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// drawSettingsPanel renders the Tab-toggled settings text: current
// emitter state, engine tunables, and the editing bindings.
func (g *Game) drawSettingsPanel(screen *ebiten.Image) {
	angleDeg := g.emitter.angle() * 180 / math.Pi
	msg := fmt.Sprintf(
		"Emitter: (%.0f, %.0f)  angle %.1f deg\n"+
			"Thickness: %.1f (-/+)\n"+
			"Bounce cap: %d ([/])\n"+
			"Collision: %v (C)\n"+
			"\n"+
			"Right click: node / connect selection\n"+
			"Left drag: move node   Left click wall: cycle kind\n"+
			"Middle click: delete\n"+
			"Arrows: move emitter   Q/E: rotate   Shift: aim at cursor\n"+
			"R: labyrinth   Tab: close",
		g.emitter.pos.X, g.emitter.pos.Y, angleDeg,
		g.emitter.thickness,
		g.opts.maxBounces,
		g.emitter.collision,
	)
	ebitenutil.DebugPrintAt(screen, msg, 8, 16)
}

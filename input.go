package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleInput processes one tick of keyboard and mouse editing.
func (g *Game) handleInput(dt float64) {
	cx, cy := ebiten.CursorPosition()
	g.cursor = v2(float64(cx), float64(cy))

	g.handleKeys(dt)
	g.handleMouse()
}

func (g *Game) handleKeys(dt float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showUI = !g.showUI
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.emitter.toggleCollision()
		log.Printf("Collision enabled: %v", g.emitter.collision)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerateLabyrinth(0)
	}

	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.emitter.rotate(-emitterTurnSpeed * dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		g.emitter.rotate(emitterTurnSpeed * dt)
	}

	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= emitterMoveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += emitterMoveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= emitterMoveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += emitterMoveSpeed
	}
	if dx != 0 && dy != 0 {
		dx *= 0.7071
		dy *= 0.7071
	}
	if dx != 0 || dy != 0 {
		g.emitter.moveBy(v2(dx*dt, dy*dt))
		g.emitter.moveTo(clampVec(g.emitter.pos))
	}

	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		g.emitter.lookAt(g.cursor)
	}

	if g.showUI {
		g.handleSettingsKeys()
	}
}

// handleSettingsKeys adjusts emitter and engine tunables while the
// settings panel is open.
func (g *Game) handleSettingsKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.emitter.setThickness(g.emitter.thickness - beamThicknessStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.emitter.setThickness(g.emitter.thickness + beamThicknessStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.opts.maxBounces = clampInt(g.opts.maxBounces-bounceCapAdjustStep, minConfiguredBounces, maxConfiguredBounces)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.opts.maxBounces = clampInt(g.opts.maxBounces+bounceCapAdjustStep, minConfiguredBounces, maxConfiguredBounces)
	}
}

// handleMouse implements the editing bindings: left drags nodes and
// cycles wall kinds, right creates nodes and walls through a two-click
// selection, middle deletes.
func (g *Game) handleMouse() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if id, ok := g.scene.nodeAt(g.cursor, nodeRadius*nodeHoverScale); ok {
			g.dragged = id
		} else if id, ok := g.scene.wallAt(g.cursor, wallHitTolerance); ok {
			g.scene.cycleWallKind(id)
			if kind, ok := g.scene.wallKindOf(id); ok {
				log.Printf("Wall %d is now %s", id, kind)
			}
		}
	}
	if g.dragged != 0 {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.scene.moveNode(g.dragged, g.cursor)
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			g.dragged = 0
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && g.dragged == 0 {
		g.handleRightClick()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) && g.dragged == 0 && g.selected == 0 {
		if id, ok := g.scene.nodeAt(g.cursor, nodeRadius*nodeHoverScale); ok {
			g.scene.removeNode(id)
		} else if id, ok := g.scene.wallAt(g.cursor, wallHitTolerance); ok {
			g.scene.removeWall(id)
		}
	}
}

// handleRightClick runs the two-click wall creation flow: pick a node to
// select it, pick a second node to connect, pick the same node to
// deselect, or pick empty space to place a node (connected to the
// selection when one exists).
func (g *Game) handleRightClick() {
	if id, ok := g.scene.nodeAt(g.cursor, nodeRadius*nodeHoverScale); ok {
		switch {
		case g.selected == id:
			g.selected = 0
		case g.selected != 0:
			g.connectNodes(g.selected, id)
			g.selected = 0
		default:
			g.selected = id
		}
		return
	}

	id := g.scene.addNode(g.cursor)
	log.Printf("Added node %d at (%.0f, %.0f)", id, g.cursor.X, g.cursor.Y)
	if g.selected != 0 {
		g.connectNodes(g.selected, id)
		g.selected = 0
	}
}

func (g *Game) connectNodes(a, b nodeID) {
	id, err := g.scene.addWall(a, b, kindMirror)
	switch {
	case errors.Is(err, errDuplicateWall):
		log.Printf("Connection between %d and %d already exists", a, b)
	case err != nil:
		log.Printf("Wall creation failed: %v", err)
	default:
		log.Printf("Wall %d created between nodes %d and %d", id, a, b)
	}
}

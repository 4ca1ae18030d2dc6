package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{0x28, 0x2A, 0x36, 0xFF}
	nodeColor       = color.RGBA{0xF8, 0xF8, 0xF2, 0xFF}
	nodeHoverColor  = color.RGBA{0x66, 0xD9, 0xFF, 0xFF}
	selectionColor  = color.RGBA{0xF8, 0xF8, 0xF2, 0xC0}
	hitMarkerColor  = color.RGBA{0x40, 0x6C, 0xFF, 0xFF}
	emitterColor    = color.RGBA{0xFF, 0x40, 0x40, 0xFF}

	mirrorColor      = color.RGBA{0xE0, 0xE0, 0xE8, 0xFF}
	absorbingColor   = color.RGBA{0x60, 0x60, 0x68, 0xFF}
	transparentColor = color.RGBA{0x78, 0xB0, 0xC8, 0x90}
	wallGlowColor    = color.RGBA{0x87, 0xCE, 0xFA, 0xFF}
)

// Draw renders the scene, the traced beam, the emitter glyph, and the
// optional overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawWalls(screen)
	g.drawSelectionLine(screen)
	g.drawBeam(screen)
	g.drawNodes(screen)
	g.drawEmitter(screen)

	if g.showUI {
		g.drawSettingsPanel(screen)
	}
	if *debugFlag {
		g.drawDebugOverlay(screen)
	}
}

func wallColor(kind wallKind) color.RGBA {
	switch kind {
	case kindAbsorbing:
		return absorbingColor
	case kindTransparent:
		return transparentColor
	default:
		return mirrorColor
	}
}

func (g *Game) drawWalls(screen *ebiten.Image) {
	for _, w := range g.scene.wallSegments() {
		clr := wallColor(w.kind)
		if glow := g.wallGlow[w.id]; glow > 0 {
			clr = blendRGBA(clr, wallGlowColor, glow)
		}
		vector.StrokeLine(screen,
			float32(w.a.X), float32(w.a.Y),
			float32(w.b.X), float32(w.b.Y),
			wallThickness, clr, true)
	}
}

// drawSelectionLine shows the pending wall from the selected node to the
// cursor during the two-click creation flow.
func (g *Game) drawSelectionLine(screen *ebiten.Image) {
	if g.selected == 0 {
		return
	}
	pos, ok := g.scene.nodePos(g.selected)
	if !ok {
		return
	}
	vector.StrokeLine(screen,
		float32(g.cursor.X), float32(g.cursor.Y),
		float32(pos.X), float32(pos.Y),
		wallThickness, selectionColor, true)
}

func (g *Game) drawBeam(screen *ebiten.Image) {
	thickness := float32(g.emitter.thickness)
	for _, seg := range g.beam {
		vector.StrokeLine(screen,
			float32(seg.from.X), float32(seg.from.Y),
			float32(seg.to.X), float32(seg.to.Y),
			thickness, rgba(seg.color, 0xFF), true)
	}
	if len(g.beam) > 0 {
		last := g.beam[len(g.beam)-1]
		if last.wall != 0 {
			vector.DrawFilledCircle(screen,
				float32(last.to.X), float32(last.to.Y),
				hitMarkerRadius, hitMarkerColor, true)
		}
	}
}

func (g *Game) drawNodes(screen *ebiten.Image) {
	for _, id := range g.scene.nodeIDs() {
		pos, ok := g.scene.nodePos(id)
		if !ok {
			continue
		}
		r, ok := g.nodeRadii[id]
		if !ok {
			r = nodeRadius
		}
		clr := nodeColor
		if id == g.hoverNode {
			clr = nodeHoverColor
		} else if id == g.selected {
			clr = blendRGBA(nodeColor, nodeHoverColor, 0.5)
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(r), clr, true)
	}
}

// drawEmitter renders the emitter body and its heading indicator.
func (g *Game) drawEmitter(screen *ebiten.Image) {
	pos := g.emitter.pos
	head := pos.Add(g.emitter.dir.Scale(emitterHeadingLength))
	vector.StrokeLine(screen,
		float32(pos.X), float32(pos.Y),
		float32(head.X), float32(head.Y),
		float32(g.emitter.thickness), emitterColor, true)
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), emitterGlyphRadius, emitterColor, true)
	if !g.emitter.collision {
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), emitterGlyphRadius+4, 1, nodeHoverColor, true)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	fps := ebiten.ActualFPS()
	tps := ebiten.ActualTPS()
	if tps < 0 {
		tps = 0
	}
	bounces := 0
	if len(g.beam) > 0 {
		bounces = g.beam[len(g.beam)-1].bounce
	}
	debugMsg := fmt.Sprintf("FPS: %.1f (%.1f TPS)\nSegments: %d (bounces %d)\nTrace: %.0f us\nNodes: %d  Walls: %d",
		fps, tps, len(g.beam), bounces,
		g.lastTraceTime.Seconds()*1e6,
		g.scene.nodeCount(), g.scene.wallCount())
	ebitenutil.DebugPrint(screen, debugMsg)
}

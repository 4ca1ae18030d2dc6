package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Game encapsulates the scene, emitter, traced beam, editing state, and
// the optional audio pipeline.
type Game struct {
	scene   *scene
	emitter *emitter
	opts    traceOptions

	beam          []beamSegment
	lastTraceTime time.Duration
	lastAbsorbed  wallID

	// editing state driven by mouse input
	selected  nodeID
	dragged   nodeID
	hoverNode nodeID
	hoverWall wallID
	cursor    vec2

	// hover animation state, keyed by id so scene mutation needs no
	// coordination with presentation
	nodeRadii map[nodeID]float64
	wallGlow  map[wallID]float64

	showUI  bool
	labRand *rand.Rand

	sweepActive   bool
	sweepDeadline time.Time
	sweepStop     func()

	audioCtx    *audio.Context
	audioStream *blipStream
	audioPlayer *audio.Player
}

// newGame constructs a fully initialized Game instance.
func newGame() *Game {
	g := &Game{
		scene:     newScene(),
		emitter:   newEmitter(v2(screenW/2, screenH/2), v2(1, 0)),
		opts:      defaultTraceOptions(),
		nodeRadii: make(map[nodeID]float64),
		wallGlow:  make(map[wallID]float64),
		labRand:   rand.New(rand.NewSource(time.Now().UnixNano() + 1)),
	}
	g.opts.maxBounces = clampInt(*maxBouncesFlag, minConfiguredBounces, maxConfiguredBounces)
	g.opts.escapeDistance = *escapeDistanceFlag
	g.emitter.collision = *collisionFlag

	g.seedCornerNodes()
	if *labyrinthFlag {
		g.regenerateLabyrinth(*labyrinthSeedFlag)
	}

	if *enableAudioFlag {
		ctx := audio.NewContext(audioSampleRate)
		g.audioCtx = ctx
		stream := newBlipStream()
		g.audioStream = stream
		if player, err := ctx.NewPlayer(stream); err != nil {
			log.Printf("Audio player creation failed: %v", err)
		} else {
			g.audioPlayer = player
			g.audioPlayer.Play()
		}
	}
	return g
}

// seedCornerNodes places the four canvas corner nodes the sandbox starts
// with. They carry no walls until the user connects them.
func (g *Game) seedCornerNodes() {
	g.scene.addNode(v2(0, 0))
	g.scene.addNode(v2(screenW, 0))
	g.scene.addNode(v2(0, screenH))
	g.scene.addNode(v2(screenW, screenH))
}

// regenerateLabyrinth replaces the whole scene with a fresh labyrinth.
func (g *Game) regenerateLabyrinth(seed int64) {
	if seed == 0 {
		seed = g.labRand.Int63()
	}
	g.scene.clear()
	g.resetEditingState()
	g.seedCornerNodes()
	walls := generateLabyrinth(g.scene, defaultLabyrinthConfig(seed))
	log.Printf("Labyrinth generated: %d walls (seed %d)", walls, seed)
}

func (g *Game) resetEditingState() {
	g.selected = 0
	g.dragged = 0
	g.hoverNode = 0
	g.hoverWall = 0
	g.nodeRadii = make(map[nodeID]float64)
	g.wallGlow = make(map[wallID]float64)
}

// Update handles input, advances animations, and retraces the beam.
func (g *Game) Update() error {
	dt := 1.0 / defaultTPS

	g.handleInput(dt)
	g.updateSweep(dt)
	g.updateHoverState()
	g.updateHoverAnimations(dt)

	start := time.Now()
	g.beam = propagate(g.scene.wallSegments(), g.emitter.pose(), g.opts)
	g.lastTraceTime = time.Since(start)

	g.updateAudio()
	return nil
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return screenW, screenH }

// updateHoverState resolves which node or wall sits under the cursor.
// Nodes win over walls, and dragging pins the hover to the dragged node.
func (g *Game) updateHoverState() {
	g.hoverNode = 0
	g.hoverWall = 0
	if g.dragged != 0 {
		g.hoverNode = g.dragged
		return
	}
	if id, ok := g.scene.nodeAt(g.cursor, nodeRadius*nodeHoverScale); ok {
		g.hoverNode = id
		return
	}
	if id, ok := g.scene.wallAt(g.cursor, wallHitTolerance); ok {
		g.hoverWall = id
	}
}

// updateHoverAnimations eases node radii and wall highlights toward their
// hover targets, and drops animation state for deleted geometry.
func (g *Game) updateHoverAnimations(dt float64) {
	t := dt / hoverLerpTime
	for _, id := range g.scene.nodeIDs() {
		target := nodeRadius
		if id == g.hoverNode {
			target = nodeRadius * nodeHoverScale
		}
		r, ok := g.nodeRadii[id]
		if !ok {
			r = nodeRadius
		}
		g.nodeRadii[id] = lerp(r, target, t)
	}
	for id := range g.nodeRadii {
		if _, ok := g.scene.nodePos(id); !ok {
			delete(g.nodeRadii, id)
		}
	}
	for id := range g.wallGlow {
		if _, ok := g.scene.wallKindOf(id); !ok {
			delete(g.wallGlow, id)
		}
	}
	if g.hoverWall != 0 {
		g.wallGlow[g.hoverWall] = lerp(g.wallGlow[g.hoverWall], 1, t)
	}
	for id, glow := range g.wallGlow {
		if id == g.hoverWall {
			continue
		}
		next := lerp(glow, 0, t)
		if next < 0.01 {
			delete(g.wallGlow, id)
		} else {
			g.wallGlow[id] = next
		}
	}
}

// updateAudio fires a blip when the beam newly terminates on an absorbing
// wall.
func (g *Game) updateAudio() {
	if g.audioStream == nil {
		return
	}
	var absorbed wallID
	if len(g.beam) > 0 {
		last := g.beam[len(g.beam)-1]
		if last.wall != 0 {
			if kind, ok := g.scene.wallKindOf(last.wall); ok && kind == kindAbsorbing {
				absorbed = last.wall
			}
		}
	}
	if absorbed != 0 && absorbed != g.lastAbsorbed {
		g.audioStream.Trigger()
	}
	g.lastAbsorbed = absorbed
}

// beginEmitterSweep rotates the emitter at a fixed rate until the
// deadline, then invokes stop (used to close PGO capture).
func (g *Game) beginEmitterSweep(d time.Duration, stop func()) {
	g.sweepActive = true
	g.sweepDeadline = time.Now().Add(d)
	g.sweepStop = stop
}

func (g *Game) updateSweep(dt float64) {
	if !g.sweepActive {
		return
	}
	if time.Now().After(g.sweepDeadline) {
		g.sweepActive = false
		if g.sweepStop != nil {
			g.sweepStop()
			g.sweepStop = nil
			log.Printf("PGO capture finished: %s", defaultPGOPath)
		}
		return
	}
	g.emitter.rotate(sweepTurnSpeed * dt)
}

// clampVec constrains p to the visible canvas.
func clampVec(p vec2) vec2 {
	return v2(clampF(p.X, 0, screenW), clampF(p.Y, 0, screenH))
}

func clampF(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

package main

import "time"

// Rendering and propagation configuration constants used throughout the
// application. These values define the canvas size, numeric tolerances,
// and editing/presentation behavior of the laser sandbox.
const (
	screenW, screenH = 960, 540
	windowScale      = 1
	windowTitle      = "RayCast"
	defaultTPS       = 60.0

	// hitEpsilon is the minimum ray parameter accepted as a hit, so a ray
	// leaving a surface cannot re-hit it at its own origin.
	hitEpsilon        = 1e-6
	parallelEpsilon   = 1e-9
	degenerateEpsilon = 1e-12
	// surfaceNudge advances the ray origin past a wall it reflected off
	// or passed through.
	surfaceNudge = 1e-3

	defaultMaxBounces     = 32
	defaultEscapeDistance = 10000.0
	maxTraceIterations    = 256
	minConfiguredBounces  = 0
	maxConfiguredBounces  = 512
	bounceCapAdjustStep   = 1

	defaultBeamThickness = 5.0
	minBeamThickness     = 1.0
	maxBeamThickness     = 20.0
	beamThicknessStep    = 0.5
	emitterGlyphRadius   = 10.0
	emitterHeadingLength = 22.0
	emitterMoveSpeed     = 180.0 // px/s
	emitterTurnSpeed     = 1.6   // rad/s
	sweepTurnSpeed       = 2.4   // rad/s, scripted PGO sweep

	nodeRadius       = 8.0
	nodeHoverScale   = 2.0
	hoverLerpTime    = 0.10 // seconds to settle hover animations
	wallThickness    = 5.0
	wallHitTolerance = wallThickness
	hitMarkerRadius  = 6.0

	beamBaseHue    = 0.0 // red
	beamHueStepDeg = 24.0
	beamSaturation = 0.9
	beamBaseValue  = 1.0
	beamValueDecay = 0.93
	beamMinValue   = 0.25

	labyrinthCellSize = 60.0
	labyrinthMargin   = 30.0

	audioSampleRate = 48000
	blipFrequency   = 660.0
	blipDuration    = 90 * time.Millisecond
	blipVolume      = 0.30
	pcm16MaxValue   = 32767

	pgoRecordDuration = 15 * time.Second
	defaultPGOPath    = "default.pgo"
)

package main

import "flag"

// Command-line flags that control optional rendering, propagation, and
// runtime behavior.
var (
	// debugFlag enables the FPS and propagation overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and propagation overlay")

	// labyrinthFlag populates the scene with a generated labyrinth of
	// mirror walls at startup.
	labyrinthFlag = flag.Bool("labyrinth", false, "generate a mirror labyrinth at startup")

	// labyrinthSeedFlag fixes the labyrinth layout (0 picks a random seed).
	labyrinthSeedFlag = flag.Int64("labyrinth-seed", 0, "seed for labyrinth generation (0 = random)")

	// maxBouncesFlag caps mirror reflections per frame.
	maxBouncesFlag = flag.Int("max-bounces", defaultMaxBounces, "maximum mirror reflections per frame")

	// escapeDistanceFlag sets the drawn length of rays that hit nothing.
	escapeDistanceFlag = flag.Float64("escape-distance", defaultEscapeDistance, "drawn length of rays that escape the scene")

	// collisionFlag sets the initial state of the collision toggle.
	collisionFlag = flag.Bool("collision", true, "start with beam/wall collision enabled")

	// enableAudioFlag toggles optional audio feedback on absorption hits.
	enableAudioFlag = flag.Bool("enable-audio", false, "enable audio feedback when the beam is absorbed")

	// recordDefaultPGO sweeps the emitter for 15s while capturing default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "sweep the emitter for 15s while capturing default.pgo")
)

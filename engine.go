package main

import (
	"log"

	"github.com/lucasb-eyer/go-colorful"
)

// beamSegment is one straight piece of the traced beam. wall is the wall
// the segment ended on, or zero when the segment escapes the scene.
type beamSegment struct {
	from   vec2
	to     vec2
	bounce int
	color  colorful.Color
	wall   wallID
}

// traceOptions bound and tune one propagation call.
type traceOptions struct {
	// maxBounces caps mirror reflections. The segment reaching the cap's
	// next mirror is still emitted; the beam then stops on that wall.
	maxBounces int
	// escapeDistance is the drawn length of a ray that hits nothing.
	escapeDistance float64
	// maxIterations caps total loop turns including transparent
	// pass-throughs, which do not count as bounces.
	maxIterations int
	// colorRamp maps a segment's bounce index to its color. Presentation
	// only; nil selects defaultColorRamp.
	colorRamp func(bounce int) colorful.Color
}

func defaultTraceOptions() traceOptions {
	return traceOptions{
		maxBounces:     defaultMaxBounces,
		escapeDistance: defaultEscapeDistance,
		maxIterations:  maxTraceIterations,
		colorRamp:      defaultColorRamp,
	}
}

// propagate traces the beam through the wall snapshot and returns the
// ordered segments to draw. It is a pure function of its inputs and is
// recomputed from scratch every frame.
func propagate(walls []wallSegment, pose emitterPose, opt traceOptions) []beamSegment {
	ramp := opt.colorRamp
	if ramp == nil {
		ramp = defaultColorRamp
	}
	dir := pose.dir.Normalize()
	if dir == (vec2{}) {
		log.Printf("propagate: zero emitter direction, skipping frame")
		return nil
	}

	if !pose.collision {
		return []beamSegment{{
			from:  pose.origin,
			to:    pose.origin.Add(dir.Scale(opt.escapeDistance)),
			color: ramp(0),
		}}
	}

	var (
		segments  []beamSegment
		origin    = pose.origin
		bounces   int
		lastWall  wallID
		degenLogs int
	)
	for iter := 0; iter < opt.maxIterations; iter++ {
		hit, ok := nearestHit(walls, origin, dir, lastWall, &degenLogs)
		if !ok {
			segments = append(segments, beamSegment{
				from:   origin,
				to:     origin.Add(dir.Scale(opt.escapeDistance)),
				bounce: bounces,
				color:  ramp(bounces),
			})
			return segments
		}

		segments = append(segments, beamSegment{
			from:   origin,
			to:     hit.point,
			bounce: bounces,
			color:  ramp(bounces),
			wall:   hit.wall.id,
		})

		switch hit.wall.kind {
		case kindTransparent:
			origin = hit.point.Add(dir.Scale(surfaceNudge))
			lastWall = hit.wall.id
		case kindMirror:
			if bounces >= opt.maxBounces {
				return segments
			}
			n, err := segmentNormal(hit.wall.a, hit.wall.b, dir)
			if err != nil {
				// nearestHit already filtered degenerate walls.
				return segments
			}
			dir = reflectDir(dir, n).Normalize()
			origin = hit.point.Add(dir.Scale(surfaceNudge))
			bounces++
			lastWall = hit.wall.id
		default:
			// Absorbing, and any unknown kind, ends the beam here.
			return segments
		}
	}
	return segments
}

type rayHit struct {
	t     float64
	point vec2
	wall  wallSegment
}

// nearestHit finds the closest wall crossing along the ray, excluding the
// wall the beam last interacted with. Degenerate walls are skipped and
// logged at most once per frame.
func nearestHit(walls []wallSegment, origin, dir vec2, exclude wallID, degenLogs *int) (rayHit, bool) {
	var (
		best  rayHit
		found bool
	)
	for _, w := range walls {
		if w.id == exclude {
			continue
		}
		if w.b.Sub(w.a).LengthSquared() < degenerateEpsilon {
			if *degenLogs == 0 {
				log.Printf("propagate: skipping degenerate wall %d", w.id)
			}
			*degenLogs++
			continue
		}
		t, p, ok := intersectRaySegment(origin, dir, w.a, w.b)
		if !ok {
			continue
		}
		if !found || t < best.t {
			best = rayHit{t: t, point: p, wall: w}
			found = true
		}
	}
	return best, found
}

// beamLength sums the lengths of all segments.
func beamLength(segments []beamSegment) float64 {
	var total float64
	for _, s := range segments {
		total += s.to.Sub(s.from).Length()
	}
	return total
}

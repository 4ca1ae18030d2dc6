package main

// emitter holds the laser pose and beam settings. The direction is
// renormalized on every mutation so it stays a unit vector.
type emitter struct {
	pos       vec2
	dir       vec2
	thickness float64
	collision bool
}

// emitterPose is the value snapshot handed to propagation each frame.
type emitterPose struct {
	origin    vec2
	dir       vec2
	collision bool
}

func newEmitter(pos, dir vec2) *emitter {
	e := &emitter{
		pos:       pos,
		thickness: defaultBeamThickness,
		collision: true,
	}
	e.setDir(dir)
	return e
}

func (e *emitter) pose() emitterPose {
	return emitterPose{origin: e.pos, dir: e.dir, collision: e.collision}
}

func (e *emitter) setDir(d vec2) {
	d = d.Normalize()
	if d == (vec2{}) {
		d = v2(1, 0)
	}
	e.dir = d
}

// setAngle points the emitter at the given heading in radians.
func (e *emitter) setAngle(rad float64) {
	e.setDir(fromAngle(rad))
}

// angle returns the current heading in radians.
func (e *emitter) angle() float64 {
	return e.dir.Angle()
}

// rotate turns the emitter by delta radians.
func (e *emitter) rotate(delta float64) {
	e.setAngle(e.angle() + delta)
}

// lookAt aims the emitter at a point. Aiming at its own position is a
// no-op since no direction exists.
func (e *emitter) lookAt(p vec2) {
	d := p.Sub(e.pos)
	if d.LengthSquared() == 0 {
		return
	}
	e.setDir(d)
}

func (e *emitter) moveTo(p vec2) {
	e.pos = p
}

func (e *emitter) moveBy(d vec2) {
	e.pos = e.pos.Add(d)
}

func (e *emitter) setThickness(t float64) {
	if t < minBeamThickness {
		t = minBeamThickness
	} else if t > maxBeamThickness {
		t = maxBeamThickness
	}
	e.thickness = t
}

func (e *emitter) toggleCollision() {
	e.collision = !e.collision
}

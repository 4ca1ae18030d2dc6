package main

import "testing"

func labTestConfig(seed int64) labyrinthConfig {
	return labyrinthConfig{
		cols:     8,
		rows:     6,
		cellSize: 50,
		origin:   v2(30, 30),
		seed:     seed,
		kind:     kindMirror,
	}
}

func TestGenerateLabyrinthPopulatesScene(t *testing.T) {
	s := newScene()
	added := generateLabyrinth(s, labTestConfig(42))

	if added == 0 {
		t.Fatal("no walls generated")
	}
	if s.wallCount() != added {
		t.Errorf("scene walls = %d, reported %d", s.wallCount(), added)
	}
	assertIntegrity(t, s)

	// All walls come out as the configured kind.
	for _, seg := range s.wallSegments() {
		if seg.kind != kindMirror {
			t.Errorf("wall %d kind = %v, want mirror", seg.id, seg.kind)
		}
		if seg.a == seg.b {
			t.Errorf("wall %d is degenerate", seg.id)
		}
	}
}

func TestGenerateLabyrinthDeterministicPerSeed(t *testing.T) {
	s1 := newScene()
	s2 := newScene()
	generateLabyrinth(s1, labTestConfig(7))
	generateLabyrinth(s2, labTestConfig(7))

	a := s1.wallSegments()
	b := s2.wallSegments()
	if len(a) != len(b) {
		t.Fatalf("wall counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].a != b[i].a || a[i].b != b[i].b {
			t.Errorf("wall %d differs: %v-%v vs %v-%v", i, a[i].a, a[i].b, b[i].a, b[i].b)
		}
	}
}

func TestGenerateLabyrinthAxisAlignedRuns(t *testing.T) {
	s := newScene()
	generateLabyrinth(s, labTestConfig(99))

	for _, seg := range s.wallSegments() {
		if seg.a.X != seg.b.X && seg.a.Y != seg.b.Y {
			t.Errorf("wall %d is not axis aligned: %v-%v", seg.id, seg.a, seg.b)
		}
	}
}

// Propagation inside a closed mirror labyrinth always hits the bounce cap
// or escapes through carved passages, never loops.
func TestPropagateThroughLabyrinthTerminates(t *testing.T) {
	s := newScene()
	generateLabyrinth(s, labTestConfig(3))

	opt := defaultTraceOptions()
	opt.maxBounces = 5
	pose := testPose(v2(55, 55), v2(1, 0.37))

	segs := propagate(s.wallSegments(), pose, opt)
	if len(segs) == 0 {
		t.Fatal("no segments produced")
	}
	if len(segs) > opt.maxIterations {
		t.Errorf("segments = %d exceeds iteration cap %d", len(segs), opt.maxIterations)
	}
	last := segs[len(segs)-1]
	if last.bounce > opt.maxBounces {
		t.Errorf("last bounce = %d exceeds cap %d", last.bounce, opt.maxBounces)
	}
}

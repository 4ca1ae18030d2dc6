package main

import (
	"errors"
	"testing"
)

func TestAddWallValidation(t *testing.T) {
	s := newScene()
	n1 := s.addNode(v2(0, 0))
	n2 := s.addNode(v2(10, 0))

	if _, err := s.addWall(n1, n1, kindMirror); !errors.Is(err, errInvalidEndpoint) {
		t.Errorf("self-loop: err = %v, want errInvalidEndpoint", err)
	}
	if _, err := s.addWall(n1, nodeID(999), kindMirror); !errors.Is(err, errInvalidEndpoint) {
		t.Errorf("unknown endpoint: err = %v, want errInvalidEndpoint", err)
	}
	if s.wallCount() != 0 {
		t.Fatalf("failed addWall mutated the scene: %d walls", s.wallCount())
	}

	if _, err := s.addWall(n1, n2, kindMirror); err != nil {
		t.Fatalf("valid addWall failed: %v", err)
	}
	if _, err := s.addWall(n1, n2, kindAbsorbing); !errors.Is(err, errDuplicateWall) {
		t.Errorf("duplicate: err = %v, want errDuplicateWall", err)
	}
	if _, err := s.addWall(n2, n1, kindAbsorbing); !errors.Is(err, errDuplicateWall) {
		t.Errorf("reversed duplicate: err = %v, want errDuplicateWall", err)
	}
	if s.wallCount() != 1 {
		t.Errorf("wall count = %d, want 1", s.wallCount())
	}
}

func TestRemoveNodeCascades(t *testing.T) {
	s := newScene()
	n1 := s.addNode(v2(0, 0))
	n2 := s.addNode(v2(10, 0))
	n3 := s.addNode(v2(0, 10))
	mustWall(t, s, n1, n2, kindMirror)
	mustWall(t, s, n1, n3, kindAbsorbing)
	keep := mustWall(t, s, n2, n3, kindTransparent)

	s.removeNode(n1)

	if s.nodeCount() != 2 {
		t.Errorf("node count = %d, want 2", s.nodeCount())
	}
	if s.wallCount() != 1 {
		t.Fatalf("wall count = %d, want 1", s.wallCount())
	}
	if _, ok := s.wallKindOf(keep); !ok {
		t.Errorf("wall %d between surviving nodes was deleted", keep)
	}
	assertIntegrity(t, s)
}

func TestRemoveNodePairLeavesNoWalls(t *testing.T) {
	s := newScene()
	n1 := s.addNode(v2(0, 0))
	n2 := s.addNode(v2(10, 0))
	mustWall(t, s, n1, n2, kindMirror)

	s.removeNode(n1)

	if s.wallCount() != 0 {
		t.Errorf("wall count = %d, want 0", s.wallCount())
	}
	if s.nodeCount() != 1 {
		t.Errorf("node count = %d, want 1", s.nodeCount())
	}
}

func TestRemoveWallKeepsNodes(t *testing.T) {
	s := newScene()
	n1 := s.addNode(v2(0, 0))
	n2 := s.addNode(v2(10, 0))
	w := mustWall(t, s, n1, n2, kindMirror)

	s.removeWall(w)

	if s.wallCount() != 0 {
		t.Errorf("wall count = %d, want 0", s.wallCount())
	}
	if s.nodeCount() != 2 {
		t.Errorf("node count = %d, want 2", s.nodeCount())
	}
	// The pair can be reconnected after the wall is gone.
	if _, err := s.addWall(n1, n2, kindMirror); err != nil {
		t.Errorf("reconnect failed: %v", err)
	}
}

func TestCycleWallKindRoundTrips(t *testing.T) {
	s := newScene()
	n1 := s.addNode(v2(0, 0))
	n2 := s.addNode(v2(10, 0))
	w := mustWall(t, s, n1, n2, kindMirror)

	want := []wallKind{kindAbsorbing, kindTransparent, kindMirror}
	for i, k := range want {
		s.cycleWallKind(w)
		got, _ := s.wallKindOf(w)
		if got != k {
			t.Fatalf("after %d cycles kind = %v, want %v", i+1, got, k)
		}
	}
}

func TestMoveNodeUpdatesWallSegments(t *testing.T) {
	s := newScene()
	n1 := s.addNode(v2(0, 0))
	n2 := s.addNode(v2(10, 0))
	mustWall(t, s, n1, n2, kindMirror)

	s.moveNode(n1, v2(-5, 7))

	segs := s.wallSegments()
	if len(segs) != 1 {
		t.Fatalf("segments = %d, want 1", len(segs))
	}
	if !vecsClose(segs[0].a, v2(-5, 7), tolerance) {
		t.Errorf("segment endpoint = %v, want (-5, 7)", segs[0].a)
	}
}

func TestHitTests(t *testing.T) {
	s := newScene()
	n1 := s.addNode(v2(100, 100))
	n2 := s.addNode(v2(200, 100))
	w := mustWall(t, s, n1, n2, kindMirror)

	if id, ok := s.nodeAt(v2(103, 98), nodeRadius); !ok || id != n1 {
		t.Errorf("nodeAt near n1 = (%d, %v), want (%d, true)", id, ok, n1)
	}
	if _, ok := s.nodeAt(v2(150, 140), nodeRadius); ok {
		t.Errorf("nodeAt far from nodes reported a hit")
	}
	if id, ok := s.wallAt(v2(150, 102), wallHitTolerance); !ok || id != w {
		t.Errorf("wallAt over wall = (%d, %v), want (%d, true)", id, ok, w)
	}
	if _, ok := s.wallAt(v2(150, 140), wallHitTolerance); ok {
		t.Errorf("wallAt far from wall reported a hit")
	}
}

func mustWall(t *testing.T, s *scene, a, b nodeID, kind wallKind) wallID {
	t.Helper()
	id, err := s.addWall(a, b, kind)
	if err != nil {
		t.Fatalf("addWall(%d, %d): %v", a, b, err)
	}
	return id
}

// assertIntegrity checks the referential invariant: every wall endpoint
// references a live node.
func assertIntegrity(t *testing.T, s *scene) {
	t.Helper()
	for id, w := range s.walls {
		if _, ok := s.nodes[w.a]; !ok {
			t.Errorf("wall %d references missing node %d", id, w.a)
		}
		if _, ok := s.nodes[w.b]; !ok {
			t.Errorf("wall %d references missing node %d", id, w.b)
		}
	}
}

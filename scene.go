package main

import (
	"errors"
	"sort"
)

var (
	// errInvalidEndpoint reports a wall referencing a missing node or the
	// same node twice.
	errInvalidEndpoint = errors.New("invalid wall endpoint")
	// errDuplicateWall reports a wall between an already connected pair.
	errDuplicateWall = errors.New("wall already exists")
)

// nodeID and wallID are opaque handles into the scene arenas. Zero is
// never allocated and means "no node" / "no wall".
type (
	nodeID uint64
	wallID uint64
)

type node struct {
	pos vec2
}

type wall struct {
	a, b nodeID
	kind wallKind
}

// wallSegment is the per-frame snapshot view of one wall, endpoints
// resolved to concrete points for the propagation engine.
type wallSegment struct {
	id   wallID
	a, b vec2
	kind wallKind
}

// scene owns all nodes and walls. Walls reference nodes by id only, so
// moving a node implicitly moves every wall attached to it, and deleting
// a node cascades to its incident walls through the incidence index.
type scene struct {
	nodes map[nodeID]*node
	walls map[wallID]*wall

	// incidence maps a node to the walls using it as an endpoint.
	incidence map[nodeID][]wallID

	nextNode nodeID
	nextWall wallID
}

func newScene() *scene {
	return &scene{
		nodes:     make(map[nodeID]*node),
		walls:     make(map[wallID]*wall),
		incidence: make(map[nodeID][]wallID),
	}
}

// addNode inserts a node at p and returns its id.
func (s *scene) addNode(p vec2) nodeID {
	s.nextNode++
	id := s.nextNode
	s.nodes[id] = &node{pos: p}
	return id
}

// addWall connects two existing, distinct nodes. No mutation happens on
// failure.
func (s *scene) addWall(a, b nodeID, kind wallKind) (wallID, error) {
	if a == b {
		return 0, errInvalidEndpoint
	}
	if _, ok := s.nodes[a]; !ok {
		return 0, errInvalidEndpoint
	}
	if _, ok := s.nodes[b]; !ok {
		return 0, errInvalidEndpoint
	}
	for _, wid := range s.incidence[a] {
		w := s.walls[wid]
		if (w.a == a && w.b == b) || (w.a == b && w.b == a) {
			return 0, errDuplicateWall
		}
	}
	s.nextWall++
	id := s.nextWall
	s.walls[id] = &wall{a: a, b: b, kind: kind}
	s.incidence[a] = append(s.incidence[a], id)
	s.incidence[b] = append(s.incidence[b], id)
	return id, nil
}

// moveNode repositions a node. Walls referencing it follow for free since
// they never copy coordinates.
func (s *scene) moveNode(id nodeID, p vec2) {
	if n, ok := s.nodes[id]; ok {
		n.pos = p
	}
}

// removeNode deletes a node and every wall incident to it.
func (s *scene) removeNode(id nodeID) {
	if _, ok := s.nodes[id]; !ok {
		return
	}
	for _, wid := range s.incidence[id] {
		w, ok := s.walls[wid]
		if !ok {
			continue
		}
		other := w.a
		if other == id {
			other = w.b
		}
		s.dropIncidence(other, wid)
		delete(s.walls, wid)
	}
	delete(s.incidence, id)
	delete(s.nodes, id)
}

// removeWall deletes a single wall, leaving its endpoint nodes in place.
func (s *scene) removeWall(id wallID) {
	w, ok := s.walls[id]
	if !ok {
		return
	}
	s.dropIncidence(w.a, id)
	s.dropIncidence(w.b, id)
	delete(s.walls, id)
}

func (s *scene) dropIncidence(n nodeID, w wallID) {
	list := s.incidence[n]
	for i, wid := range list {
		if wid == w {
			s.incidence[n] = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(s.incidence[n]) == 0 {
		delete(s.incidence, n)
	}
}

// cycleWallKind advances the wall's kind one step in the fixed cycle.
func (s *scene) cycleWallKind(id wallID) {
	if w, ok := s.walls[id]; ok {
		w.kind = w.kind.next()
	}
}

func (s *scene) wallKindOf(id wallID) (wallKind, bool) {
	w, ok := s.walls[id]
	if !ok {
		return 0, false
	}
	return w.kind, true
}

func (s *scene) nodePos(id nodeID) (vec2, bool) {
	n, ok := s.nodes[id]
	if !ok {
		return vec2{}, false
	}
	return n.pos, true
}

func (s *scene) nodeCount() int { return len(s.nodes) }
func (s *scene) wallCount() int { return len(s.walls) }

// clear removes every node and wall.
func (s *scene) clear() {
	s.nodes = make(map[nodeID]*node)
	s.walls = make(map[wallID]*wall)
	s.incidence = make(map[nodeID][]wallID)
}

// wallSegments returns the snapshot consumed by propagation, ordered by id
// so frame results are deterministic.
func (s *scene) wallSegments() []wallSegment {
	segs := make([]wallSegment, 0, len(s.walls))
	for id, w := range s.walls {
		segs = append(segs, wallSegment{
			id:   id,
			a:    s.nodes[w.a].pos,
			b:    s.nodes[w.b].pos,
			kind: w.kind,
		})
	}
	sort.Slice(segs, func(i, j int) bool { return segs[i].id < segs[j].id })
	return segs
}

// nodeIDs returns all node ids ordered for deterministic iteration.
func (s *scene) nodeIDs() []nodeID {
	ids := make([]nodeID, 0, len(s.nodes))
	for id := range s.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// nodeAt returns the topmost node whose marker contains p.
func (s *scene) nodeAt(p vec2, radius float64) (nodeID, bool) {
	var (
		best  nodeID
		found bool
	)
	for id, n := range s.nodes {
		if p.Sub(n.pos).LengthSquared() <= radius*radius {
			if !found || id > best {
				best = id
				found = true
			}
		}
	}
	return best, found
}

// wallAt returns the wall whose stroke lies under p within tolerance.
func (s *scene) wallAt(p vec2, tolerance float64) (wallID, bool) {
	var (
		best     wallID
		bestDist float64
		found    bool
	)
	for id, w := range s.walls {
		d := pointSegmentDistance(p, s.nodes[w.a].pos, s.nodes[w.b].pos)
		if d > tolerance {
			continue
		}
		if !found || d < bestDist {
			best = id
			bestDist = d
			found = true
		}
	}
	return best, found
}

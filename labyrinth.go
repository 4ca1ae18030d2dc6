package main

import (
	"log"
	"math/rand"
	"time"
)

// labyrinthConfig sizes and seeds a generated labyrinth.
type labyrinthConfig struct {
	cols, rows int
	cellSize   float64
	origin     vec2
	seed       int64
	kind       wallKind
}

// defaultLabyrinthConfig fills the canvas with cells of labyrinthCellSize,
// leaving a margin for the settings overlay.
func defaultLabyrinthConfig(seed int64) labyrinthConfig {
	cols := int((screenW - 2*labyrinthMargin) / labyrinthCellSize)
	rows := int((screenH - 2*labyrinthMargin) / labyrinthCellSize)
	if cols < 2 {
		cols = 2
	}
	if rows < 2 {
		rows = 2
	}
	return labyrinthConfig{
		cols:     cols,
		rows:     rows,
		cellSize: labyrinthCellSize,
		origin:   v2(labyrinthMargin, labyrinthMargin),
		seed:     seed,
		kind:     kindMirror,
	}
}

// generateLabyrinth carves a perfect labyrinth (every cell reachable,
// no cycles) with a recursive backtracker, merges the remaining closed
// cell sides into maximal straight runs, and inserts those runs into the
// scene as nodes and walls. Corner nodes are shared between runs so the
// inserted geometry follows the scene's reference model. Returns the
// number of walls added.
func generateLabyrinth(sc *scene, cfg labyrinthConfig) int {
	if cfg.cols < 1 || cfg.rows < 1 || cfg.cellSize <= 0 {
		return 0
	}
	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// horiz[y][x]: boundary above cell row y between corners x and x+1.
	// vert[y][x]: boundary left of cell column x between corners y and y+1.
	horiz := make([][]bool, cfg.rows+1)
	for y := range horiz {
		horiz[y] = make([]bool, cfg.cols)
		for x := range horiz[y] {
			horiz[y][x] = true
		}
	}
	vert := make([][]bool, cfg.rows)
	for y := range vert {
		vert[y] = make([]bool, cfg.cols+1)
		for x := range vert[y] {
			vert[y][x] = true
		}
	}

	carve(horiz, vert, cfg.cols, cfg.rows, rng)

	type corner struct{ x, y int }
	nodes := make(map[corner]nodeID)
	cornerNode := func(x, y int) nodeID {
		c := corner{x, y}
		if id, ok := nodes[c]; ok {
			return id
		}
		p := cfg.origin.Add(v2(float64(x)*cfg.cellSize, float64(y)*cfg.cellSize))
		id := sc.addNode(p)
		nodes[c] = id
		return id
	}

	added := 0
	addRun := func(x0, y0, x1, y1 int) {
		a := cornerNode(x0, y0)
		b := cornerNode(x1, y1)
		if _, err := sc.addWall(a, b, cfg.kind); err != nil {
			log.Printf("labyrinth: wall (%d,%d)-(%d,%d): %v", x0, y0, x1, y1, err)
			return
		}
		added++
	}

	// Merge consecutive closed boundaries into single wall runs, the same
	// reduction the per-cell representation needs before it can become
	// line geometry.
	for y := 0; y <= cfg.rows; y++ {
		start := -1
		for x := 0; x <= cfg.cols; x++ {
			closed := x < cfg.cols && horiz[y][x]
			if closed && start < 0 {
				start = x
			}
			if !closed && start >= 0 {
				addRun(start, y, x, y)
				start = -1
			}
		}
	}
	for x := 0; x <= cfg.cols; x++ {
		start := -1
		for y := 0; y <= cfg.rows; y++ {
			closed := y < cfg.rows && vert[y][x]
			if closed && start < 0 {
				start = y
			}
			if !closed && start >= 0 {
				addRun(x, start, x, y)
				start = -1
			}
		}
	}
	return added
}

// carve opens cell boundaries with an iterative recursive-backtracker
// walk, producing a uniform spanning tree over the cell grid.
func carve(horiz, vert [][]bool, cols, rows int, rng *rand.Rand) {
	type cell struct{ x, y int }
	visited := make([]bool, cols*rows)
	stack := []cell{{rng.Intn(cols), rng.Intn(rows)}}
	visited[stack[0].y*cols+stack[0].x] = true

	dirs := [4]cell{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		order := rng.Perm(4)
		moved := false
		for _, i := range order {
			next := cell{curr.x + dirs[i].x, curr.y + dirs[i].y}
			if next.x < 0 || next.x >= cols || next.y < 0 || next.y >= rows {
				continue
			}
			if visited[next.y*cols+next.x] {
				continue
			}
			switch {
			case next.y < curr.y:
				horiz[curr.y][curr.x] = false
			case next.y > curr.y:
				horiz[next.y][curr.x] = false
			case next.x < curr.x:
				vert[curr.y][curr.x] = false
			default:
				vert[curr.y][next.x] = false
			}
			visited[next.y*cols+next.x] = true
			stack = append(stack, next)
			moved = true
			break
		}
		if !moved {
			stack = stack[:len(stack)-1]
		}
	}
}

// Package search - shared mutable state embedded by all four variants.
package search

import (
	"time"

	"github.com/katalvlaran/mazerace/grid"
)

// tracker holds the state shape every variant shares: closed/discovered
// set, open-set membership, parent links, path, and metrics. Variants
// embed it and add their own frontier container.
type tracker struct {
	g           *grid.Grid
	start, goal grid.Coord

	visited    map[grid.Coord]bool
	inFrontier map[grid.Coord]bool
	// parent maps each discovered cell to the cell it was reached from;
	// start maps to itself (the reconstruction sentinel).
	parent map[grid.Coord]grid.Coord

	path      []grid.Coord
	explored  int
	startedAt time.Time
	runtimeMS float64
	done      bool
	found     bool
	name      Algo
}

// newTracker seeds the shared state: start in the frontier, parent
// sentinel set, clock running. Variants decide when visited is marked
// (push time for BFS/DFS, expansion time for Dijkstra/A*), so the
// visited map starts empty here.
func newTracker(g *grid.Grid, cfg Options, name Algo) tracker {
	return tracker{
		g:          g,
		start:      cfg.Start,
		goal:       cfg.Goal,
		visited:    make(map[grid.Coord]bool),
		inFrontier: map[grid.Coord]bool{cfg.Start: true},
		parent:     map[grid.Coord]grid.Coord{cfg.Start: cfg.Start},
		startedAt:  time.Now(),
		name:       name,
	}
}

// Done reports whether the search reached a terminal state.
func (t *tracker) Done() bool { return t.done }

// Path returns the reconstructed start→goal sequence, nil if not found.
func (t *tracker) Path() []grid.Coord { return t.path }

// Name returns the variant's display name.
func (t *tracker) Name() string { return string(t.name) }

// Visited reports membership in the variant's visited set. For BFS/DFS
// that is the discovered set (marked at push); for Dijkstra/A* the
// closed set (marked at expansion).
func (t *tracker) Visited(c grid.Coord) bool { return t.visited[c] }

// InFrontier reports open-set membership.
func (t *tracker) InFrontier(c grid.Coord) bool { return t.inFrontier[c] }

// Metrics returns the current measurement snapshot. Stable once done:
// further Step calls are no-ops and never touch these fields.
func (t *tracker) Metrics() Metrics {
	return Metrics{
		Explored:  t.explored,
		RuntimeMS: t.runtimeMS,
		PathLen:   len(t.path),
		Found:     t.found,
	}
}

// finish transitions to the terminal state exactly once, stamping the runtime.
func (t *tracker) finish(found bool) {
	if t.done {
		return
	}
	t.done = true
	t.found = found
	t.runtimeMS = float64(time.Since(t.startedAt).Microseconds()) / 1e3
}

// reconstruct backtracks parent links from the goal to the start and
// reverses, yielding the inclusive start→goal sequence.
func (t *tracker) reconstruct() []grid.Coord {
	path := []grid.Coord{}
	for cur := t.goal; ; {
		path = append(path, cur)
		prev := t.parent[cur]
		if prev == cur {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// reachGoal records the found path and finishes the run.
func (t *tracker) reachGoal() {
	t.path = t.reconstruct()
	t.finish(true)
}

// Package search defines the Algorithm contract, configuration options,
// and sentinel errors for the pathfinding variants.
package search

import (
	"errors"

	"github.com/katalvlaran/mazerace/grid"
)

// Sentinel errors returned by New.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to New.
	ErrNilGrid = errors.New("search: grid is nil")
	// ErrNotFinalized indicates the grid is still mutable; searches
	// require the immutable post-generation grid.
	ErrNotFinalized = errors.New("search: grid is not finalized")
	// ErrUnknownAlgo indicates an unrecognized algorithm selector.
	ErrUnknownAlgo = errors.New("search: unknown algorithm")
	// ErrBadEndpoint indicates a start or goal that is out of bounds or a wall.
	ErrBadEndpoint = errors.New("search: start and goal must be in-bounds passages")
)

// Algo selects one of the four search variants.
type Algo string

const (
	// AlgoBFS is breadth-first search.
	AlgoBFS Algo = "BFS"
	// AlgoDFS is depth-first search.
	AlgoDFS Algo = "DFS"
	// AlgoDijkstra is Dijkstra's algorithm with uniform edge cost 1.
	AlgoDijkstra Algo = "Dijkstra"
	// AlgoAStar is A* with the Manhattan heuristic.
	AlgoAStar Algo = "A*"
)

// Algos lists every variant in a fixed order, for drivers that race all four.
func Algos() []Algo {
	return []Algo{AlgoBFS, AlgoDFS, AlgoDijkstra, AlgoAStar}
}

// Metrics is the terminal measurement of one search run.
type Metrics struct {
	// Explored counts nodes popped from the frontier (not nodes pushed).
	Explored int
	// RuntimeMS is wall time from construction to the step on which the
	// search first became done. Zero while still running.
	RuntimeMS float64
	// PathLen is len(Path); 0 when no path was found.
	PathLen int
	// Found reports whether the goal was reached.
	Found bool
}

// Algorithm is a resumable search bound to an immutable grid.
// Mutated only by its own Step; becomes done exactly once, irreversibly.
type Algorithm interface {
	// Step performs exactly one node expansion (or one stale-entry
	// discard for the heap-based variants). Returns true while the
	// search is still running; calling Step after completion is a no-op
	// returning false.
	Step() bool

	// Done reports whether the frontier is exhausted or the goal has
	// been expanded.
	Done() bool

	// Path returns the start→goal cell sequence, inclusive, once the
	// goal has been expanded; nil if not (yet) found.
	Path() []grid.Coord

	// Metrics returns the current measurement snapshot.
	Metrics() Metrics

	// Visited reports closed/discovered-set membership for overlays.
	Visited(c grid.Coord) bool

	// InFrontier reports open-set membership for overlays.
	InFrontier(c grid.Coord) bool

	// Name returns the display name of the variant (same as its Algo).
	Name() string
}

// Options configures a search run. Start and Goal default to the grid's
// own endpoints.
type Options struct {
	Start, Goal grid.Coord
}

// Option configures Options.
type Option func(*Options)

// WithStart overrides the start cell.
func WithStart(c grid.Coord) Option {
	return func(o *Options) { o.Start = c }
}

// WithGoal overrides the goal cell.
func WithGoal(c grid.Coord) Option {
	return func(o *Options) { o.Goal = c }
}

// New constructs the search variant selected by algo over the finalized
// grid g. Validation order: nil grid, finalized, endpoints passable,
// known algo. The internal clock starts here; Metrics.RuntimeMS measures
// from this call to the step on which the search first completes.
func New(g *grid.Grid, algo Algo, opts ...Option) (Algorithm, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.Finalized() {
		return nil, ErrNotFinalized
	}

	cfg := Options{Start: g.Start(), Goal: g.Goal()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.IsPassage(cfg.Start.R, cfg.Start.C) || !g.IsPassage(cfg.Goal.R, cfg.Goal.C) {
		return nil, ErrBadEndpoint
	}

	switch algo {
	case AlgoBFS:
		return newBFS(g, cfg), nil
	case AlgoDFS:
		return newDFS(g, cfg), nil
	case AlgoDijkstra:
		return newDijkstra(g, cfg), nil
	case AlgoAStar:
		return newAStar(g, cfg), nil
	default:
		return nil, ErrUnknownAlgo
	}
}

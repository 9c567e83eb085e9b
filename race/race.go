// Package race drives interleaved searches and the post-race comparison.
package race

import (
	"errors"

	"github.com/katalvlaran/mazerace/grid"
	"github.com/katalvlaran/mazerace/search"
)

// Sentinel errors for race orchestration.
var (
	// ErrNoAlgorithms indicates NewRacer was called with an empty list.
	ErrNoAlgorithms = errors.New("race: at least one algorithm required")
	// ErrNilAlgorithm indicates a nil entry in the algorithm list.
	ErrNilAlgorithm = errors.New("race: nil algorithm")
	// ErrBadStepBudget indicates Run was called with a budget below 1.
	ErrBadStepBudget = errors.New("race: step budget must be at least 1")
	// ErrStepBudget indicates the budget ran out before every algorithm finished.
	ErrStepBudget = errors.New("race: step budget exhausted")
)

// Racer interleaves the Step calls of its algorithms, round-robin.
type Racer struct {
	algos []search.Algorithm
}

// NewRacer builds a Racer over the given algorithms.
// Returns ErrNoAlgorithms for an empty list, ErrNilAlgorithm for nil entries.
func NewRacer(algos ...search.Algorithm) (*Racer, error) {
	if len(algos) == 0 {
		return nil, ErrNoAlgorithms
	}
	for _, a := range algos {
		if a == nil {
			return nil, ErrNilAlgorithm
		}
	}

	return &Racer{algos: algos}, nil
}

// Algorithms returns the raced algorithms in racing order.
func (r *Racer) Algorithms() []search.Algorithm { return r.algos }

// Step performs one round-robin pass: one Step call on every algorithm
// that is not yet done. Returns true while at least one is still running.
func (r *Racer) Step() bool {
	running := false
	for _, a := range r.algos {
		if !a.Done() {
			a.Step()
			if !a.Done() {
				running = true
			}
		}
	}

	return running
}

// Done reports whether every algorithm has finished.
func (r *Racer) Done() bool {
	for _, a := range r.algos {
		if !a.Done() {
			return false
		}
	}

	return true
}

// Run drives the race to completion, at most maxSteps round-robin
// passes. Returns ErrBadStepBudget for maxSteps < 1 and ErrStepBudget if
// the budget runs out first. Every search over a finite grid terminates,
// so the budget is a guard against misuse, not a scheduling knob.
func (r *Racer) Run(maxSteps int) error {
	if maxSteps < 1 {
		return ErrBadStepBudget
	}
	for i := 0; i < maxSteps; i++ {
		if !r.Step() {
			return nil
		}
	}
	if r.Done() {
		return nil
	}

	return ErrStepBudget
}

// VerifyOptimality compares each algorithm's path length against a
// completed Dijkstra run in the same list, the ground truth on a
// uniform-cost grid. Returns a map from algorithm name to optimality.
// With no Dijkstra present, or Dijkstra having found no path, every
// entry is false. BFS and A* always verify optimal on a uniform-cost
// grid; DFS generally does not.
func VerifyOptimality(algos []search.Algorithm) map[string]bool {
	out := make(map[string]bool, len(algos))

	truth := 0
	for _, a := range algos {
		if a.Name() == string(search.AlgoDijkstra) && len(a.Path()) > 0 {
			truth = len(a.Path())
			break
		}
	}
	if truth == 0 {
		for _, a := range algos {
			out[a.Name()] = false
		}

		return out
	}

	for _, a := range algos {
		out[a.Name()] = len(a.Path()) == truth
	}

	return out
}

// IsValidPath reports whether path is a contiguous, wall-free sequence
// from g's start to its goal: non-empty, correct endpoints, consecutive
// cells 4-adjacent, every cell a passage.
func IsValidPath(g *grid.Grid, path []grid.Coord) bool {
	if len(path) == 0 {
		return false
	}
	if path[0] != g.Start() || path[len(path)-1] != g.Goal() {
		return false
	}
	for i, c := range path {
		if !g.IsPassage(c.R, c.C) {
			return false
		}
		if i == 0 {
			continue
		}
		prev := path[i-1]
		dr, dc := c.R-prev.R, c.C-prev.C
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		if dr+dc != 1 {
			return false
		}
	}

	return true
}

// Report is the per-algorithm outcome of a finished race.
type Report struct {
	Name      string
	Metrics   search.Metrics
	Optimal   bool
	ValidPath bool
}

// Report summarizes a finished race against g: metrics, optimality
// versus Dijkstra, and path validity per algorithm, in racing order.
func (r *Racer) Report(g *grid.Grid) []Report {
	optimal := VerifyOptimality(r.algos)
	out := make([]Report, 0, len(r.algos))
	for _, a := range r.algos {
		out = append(out, Report{
			Name:      a.Name(),
			Metrics:   a.Metrics(),
			Optimal:   optimal[a.Name()],
			ValidPath: IsValidPath(g, a.Path()),
		})
	}

	return out
}

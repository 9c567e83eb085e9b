// Package mazegen defines configuration options and sentinel errors for
// maze generation. It supports selecting between the Prim and Kruskal
// generators via Options.
package mazegen

import (
	"errors"

	"github.com/katalvlaran/mazerace/grid"
)

// Sentinel errors returned by generator construction.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to New.
	ErrNilGrid = errors.New("mazegen: grid is nil")
	// ErrFinalizedGrid indicates the grid is already finalized and cannot be carved.
	ErrFinalizedGrid = errors.New("mazegen: grid is finalized")
	// ErrUnknownMethod indicates an unrecognized generation method name.
	ErrUnknownMethod = errors.New("mazegen: unknown generation method")
	// ErrBadBatchSize indicates a Kruskal batch size below 1.
	ErrBadBatchSize = errors.New("mazegen: batch size must be at least 1")
)

// MethodPrim selects randomized Prim generation (grow from the start cell).
const MethodPrim = "prim"

// MethodKruskal selects randomized Kruskal generation (shuffled edges + union-find).
const MethodKruskal = "kruskal"

// DefaultBatchSize is the number of Kruskal edges processed per Step.
// A throughput/visual-smoothness tuning knob, not a correctness parameter.
const DefaultBatchSize = 8

// Generator is a resumable maze generator bound to one grid.Grid.
// Step performs one bounded unit of work and reports completion; once
// done, further Step calls are no-ops. The generator finalizes the grid
// when it completes.
type Generator interface {
	// Step advances generation by one unit of work.
	// Returns true once generation is complete.
	Step() bool

	// Done reports whether generation has completed.
	Done() bool
}

// Options configures which generator to build and its tunables.
//
// Fields:
//
//	Method    string — MethodPrim or MethodKruskal.
//	Seed      int64  — RNG seed; 0 selects a fixed default seed.
//	BatchSize int    — Kruskal edges per Step; ignored by Prim.
type Options struct {
	Method    string
	Seed      int64
	BatchSize int
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithMethod returns an Option that sets the generation Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithSeed returns an Option that sets the RNG seed.
// Seed 0 maps to a fixed default so defaults stay reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithBatchSize returns an Option that sets the Kruskal per-Step edge
// batch size. Values below 1 are rejected by New with ErrBadBatchSize.
func WithBatchSize(n int) Option {
	return func(o *Options) { o.BatchSize = n }
}

// DefaultOptions returns Options initialized for Kruskal by default:
//
//   - Method    = MethodKruskal
//   - Seed      = 0 (fixed default seed)
//   - BatchSize = DefaultBatchSize
func DefaultOptions() Options {
	return Options{
		Method:    MethodKruskal,
		Seed:      0,
		BatchSize: DefaultBatchSize,
	}
}

// New constructs the Generator selected by the options, bound to g.
// The grid must be fresh: non-nil and not finalized.
//
//   - Method == MethodPrim:    returns a Prim generator.
//   - Method == MethodKruskal: returns a Kruskal generator.
//   - otherwise:               ErrUnknownMethod.
//
// The returned generator owns its RNG exclusively; constructing two
// generators with the same seed yields identical mazes.
func New(g *grid.Grid, opts ...Option) (Generator, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Finalized() {
		return nil, ErrFinalizedGrid
	}

	switch cfg.Method {
	case MethodPrim:
		return newPrim(g, cfg), nil
	case MethodKruskal:
		if cfg.BatchSize < 1 {
			return nil, ErrBadBatchSize
		}
		return newKruskal(g, cfg)
	default:
		return nil, ErrUnknownMethod
	}
}

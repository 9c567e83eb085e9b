// Package grid defines core types and sentinel errors for the maze grid.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates rows or cols below the minimum of 1.
	ErrBadDimensions = errors.New("grid: rows and cols must be at least 1")
	// ErrFinalized indicates a mutation was attempted after Finalize.
	ErrFinalized = errors.New("grid: grid is finalized and read-only")
	// ErrBadCarve indicates carve endpoints that are not step-2 adjacent cell centers.
	ErrBadCarve = errors.New("grid: carve endpoints must be step-2 adjacent cell centers")
)

// Cell is the content of a single grid position.
type Cell uint8

const (
	// Wall blocks movement. All positions start as Wall.
	Wall Cell = iota
	// Passage permits movement.
	Passage
)

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Passage:
		return "passage"
	}

	return fmt.Sprintf("unknown Cell(%d)", uint8(c))
}

// Coord addresses one position in internal (wall-grid) coordinates.
// Cell centers sit at odd/odd positions; even positions are walls.
type Coord struct {
	R, C int
}

// Less reports lexicographic (row, col) order. It is the single
// tie-break ordering used for determinism throughout the module.
func (a Coord) Less(b Coord) bool {
	if a.R != b.R {
		return a.R < b.R
	}

	return a.C < b.C
}

// neighborSteps holds the four cardinal unit offsets in the fixed
// visitation order up, right, down, left. Every adjacency query in the
// module derives from this slice; reordering it changes which of several
// equally good mazes and paths a given seed produces.
var neighborSteps = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

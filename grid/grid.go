// Package grid provides the maze matrix shared by generators and searches.
package grid

import "sort"

// Grid owns the maze's cell/wall matrix, start/goal coordinates, and
// bounds/adjacency queries. It carries no algorithmic behavior beyond
// geometry: generators mutate it through CarvePassage/CarveCell, and
// after Finalize it is immutable and safe for any number of concurrent
// readers.
type Grid struct {
	rows, cols   int // logical cell dimensions
	irows, icols int // internal dimensions: 2*rows+1, 2*cols+1
	cells        [][]Cell
	start, goal  Coord
	finalized    bool
	dirty        map[Coord]struct{}
}

// New constructs a Grid of rows × cols logical cells, all walls.
// Internal storage is (2*rows+1) × (2*cols+1); the start cell is the
// top-left cell center (1,1) and the goal the bottom-right cell center
// (2*rows-1, 2*cols-1). Returns ErrBadDimensions if rows or cols < 1.
//
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrBadDimensions
	}
	irows, icols := 2*rows+1, 2*cols+1
	cells := make([][]Cell, irows)
	for r := 0; r < irows; r++ {
		cells[r] = make([]Cell, icols) // zero value is Wall
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		irows: irows,
		icols: icols,
		cells: cells,
		start: Coord{R: 1, C: 1},
		goal:  Coord{R: irows - 2, C: icols - 2},
		dirty: make(map[Coord]struct{}),
	}, nil
}

// Rows returns the logical row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the logical column count.
func (g *Grid) Cols() int { return g.cols }

// InternalRows returns the internal (wall-grid) row count, 2*rows+1.
func (g *Grid) InternalRows() int { return g.irows }

// InternalCols returns the internal (wall-grid) column count, 2*cols+1.
func (g *Grid) InternalCols() int { return g.icols }

// Start returns the start coordinate in internal coordinates.
func (g *Grid) Start() Coord { return g.start }

// Goal returns the goal coordinate in internal coordinates.
func (g *Grid) Goal() Coord { return g.goal }

// Finalized reports whether Finalize has been called.
func (g *Grid) Finalized() bool { return g.finalized }

// InBounds reports whether (r,c) lies within the internal matrix.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.irows && c >= 0 && c < g.icols
}

// IsPassage reports whether (r,c) is an in-bounds Passage.
// Out-of-bounds coordinates return false rather than an error, so the
// method doubles as a neighbor filter.
func (g *Grid) IsPassage(r, c int) bool {
	return g.InBounds(r, c) && g.cells[r][c] == Passage
}

// IsCellCenter reports whether (r,c) is a logical cell center:
// odd row, odd column, strictly inside the border walls.
func (g *Grid) IsCellCenter(r, c int) bool {
	return r >= 1 && r < g.irows-1 && c >= 1 && c < g.icols-1 && r%2 == 1 && c%2 == 1
}

// CellCoords returns every cell-center coordinate in row-major order.
func (g *Grid) CellCoords() []Coord {
	coords := make([]Coord, 0, g.rows*g.cols)
	for r := 1; r < g.irows; r += 2 {
		for c := 1; c < g.icols; c += 2 {
			coords = append(coords, Coord{R: r, C: c})
		}
	}

	return coords
}

// CellID maps a cell-center coordinate to its dense logical id,
// row-major over the rows × cols cell lattice. The inverse of the
// CellCoords ordering; used to key the union-find in Kruskal generation.
func (g *Grid) CellID(c Coord) int {
	return (c.R/2)*g.cols + c.C/2
}

// NeighborsAt returns the in-bounds coordinates at the 4 cardinal
// offsets scaled by step, in the fixed order up, right, down, left.
// step 1 yields pathfinding adjacency (cell↔wall), step 2 yields
// cell-to-cell generation adjacency. Step-2 results are additionally
// restricted to cell centers.
func (g *Grid) NeighborsAt(r, c, step int) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range neighborSteps {
		nr, nc := r+d[0]*step, c+d[1]*step
		if !g.InBounds(nr, nc) {
			continue
		}
		if step == 2 && !g.IsCellCenter(nr, nc) {
			continue
		}
		out = append(out, Coord{R: nr, C: nc})
	}

	return out
}

// PassableNeighbors returns the step-1 neighbors of (r,c) that are
// passages, in the fixed up, right, down, left order. This is the
// adjacency relation all search algorithms expand.
func (g *Grid) PassableNeighbors(r, c int) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range neighborSteps {
		nr, nc := r+d[0], c+d[1]
		if g.IsPassage(nr, nc) {
			out = append(out, Coord{R: nr, C: nc})
		}
	}

	return out
}

// CarveCell marks the single cell center c as Passage. Generators use it
// to seed the initial region (Prim) or pre-carve all cell centers
// (Kruskal). Idempotent. Returns ErrFinalized after Finalize and
// ErrBadCarve if c is not a cell center.
func (g *Grid) CarveCell(c Coord) error {
	if g.finalized {
		return ErrFinalized
	}
	if !g.IsCellCenter(c.R, c.C) {
		return ErrBadCarve
	}
	g.setPassage(c)

	return nil
}

// CarvePassage marks both cells and the wall at their midpoint as
// Passage. The endpoints must be step-2 adjacent cell centers; the wall
// between them is their midpoint. Idempotent (re-carving is a no-op).
// Returns ErrFinalized after Finalize, ErrBadCarve otherwise.
func (g *Grid) CarvePassage(a, b Coord) error {
	if g.finalized {
		return ErrFinalized
	}
	if !g.IsCellCenter(a.R, a.C) || !g.IsCellCenter(b.R, b.C) {
		return ErrBadCarve
	}
	dr, dc := b.R-a.R, b.C-a.C
	if !(dr == 0 && (dc == 2 || dc == -2)) && !(dc == 0 && (dr == 2 || dr == -2)) {
		return ErrBadCarve
	}
	g.setPassage(a)
	g.setPassage(b)
	g.setPassage(Coord{R: (a.R + b.R) / 2, C: (a.C + b.C) / 2})

	return nil
}

// Finalize forces start and goal to Passage and freezes the grid.
// After Finalize every mutator returns ErrFinalized and the grid is
// safe for concurrent readers.
func (g *Grid) Finalize() {
	if g.finalized {
		return
	}
	g.setPassage(g.start)
	g.setPassage(g.goal)
	g.finalized = true
}

// Changed drains and returns the set of cells mutated since the last
// call, sorted by (row, col). Intended for incremental redraw; calling
// it has no effect on the maze itself.
func (g *Grid) Changed() []Coord {
	out := make([]Coord, 0, len(g.dirty))
	for c := range g.dirty {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	g.dirty = make(map[Coord]struct{})

	return out
}

// setPassage writes a Passage and records the dirty cell.
// No-op when the cell is already a passage, keeping carves idempotent
// and the dirty set minimal.
func (g *Grid) setPassage(c Coord) {
	if g.cells[c.R][c.C] == Passage {
		return
	}
	g.cells[c.R][c.C] = Passage
	g.dirty[c] = struct{}{}
}

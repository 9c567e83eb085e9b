// Package mazegen provides the randomized Kruskal maze generator.
// It shuffles the full cell-adjacency edge list once, then carves each
// edge whose endpoints are still disconnected, a fixed batch per Step.
package mazegen

import (
	"github.com/katalvlaran/mazerace/dsu"
	"github.com/katalvlaran/mazerace/grid"
)

// cellEdge is an undirected edge between two step-2 adjacent cell centers.
// a precedes b in (row, col) order by construction.
type cellEdge struct {
	a, b grid.Coord
}

// kruskalGenerator carves a perfect maze by processing a shuffled edge
// list against a union-find over logical cells.
//
// State machine: {Processing, Done}. Invariants:
//
//   - An edge is carved iff its endpoints were in different union-find
//     sets at processing time, so no cycle is ever introduced.
//   - The cursor only advances; the set count only decreases. When the
//     cursor reaches the end of the edge list, the union-find holds
//     exactly one set spanning all logical cells.
type kruskalGenerator struct {
	g      *grid.Grid
	edges  []cellEdge
	cursor int
	uf     *dsu.UnionFind
	batch  int
	done   bool
}

// newKruskal pre-carves every cell center, builds the right+down edge
// list in row-major order, and shuffles it with the seeded RNG.
// Listing right and down only avoids duplicate undirected edges.
func newKruskal(g *grid.Grid, cfg Options) (*kruskalGenerator, error) {
	cells := g.CellCoords()
	for _, c := range cells {
		if err := g.CarveCell(c); err != nil {
			return nil, err
		}
	}

	// O(E) edge list, E = 2·rows·cols − rows − cols.
	edges := make([]cellEdge, 0, 2*len(cells))
	for _, c := range cells {
		for _, n := range g.NeighborsAt(c.R, c.C, 2) {
			if c.Less(n) { // keeps right and down only
				edges = append(edges, cellEdge{a: c, b: n})
			}
		}
	}

	rng := rngFromSeed(cfg.Seed)
	shuffleEdgesInPlace(edges, rng)

	uf, err := dsu.New(g.Rows() * g.Cols())
	if err != nil {
		return nil, err
	}

	return &kruskalGenerator{
		g:     g,
		edges: edges,
		uf:    uf,
		batch: cfg.BatchSize,
	}, nil
}

// Done reports whether generation has completed.
func (k *kruskalGenerator) Done() bool { return k.done }

// Step processes the next batch of unprocessed edges. For each edge
// (a, b): if a and b are in different sets, merge them and carve the
// passage between them; otherwise skip. Returns true on the call that
// advances the cursor to the end of the edge list, after finalizing the
// grid.
func (k *kruskalGenerator) Step() bool {
	if k.done {
		return true
	}

	end := k.cursor + k.batch
	if end > len(k.edges) {
		end = len(k.edges)
	}
	for ; k.cursor < end; k.cursor++ {
		e := k.edges[k.cursor]
		if k.uf.Union(k.g.CellID(e.a), k.g.CellID(e.b)) {
			_ = k.g.CarvePassage(e.a, e.b)
		}
	}

	if k.cursor >= len(k.edges) {
		k.g.Finalize()
		k.done = true

		return true
	}

	return false
}

// Components returns the number of disjoint cell sets remaining.
// After Done it is exactly 1 for every valid grid: the full-connectivity
// half of the perfect-maze invariant.
func (k *kruskalGenerator) Components() int { return k.uf.Count() }

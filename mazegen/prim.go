// Package mazegen provides the randomized Prim maze generator.
// It grows a carved region outward from the start cell, one frontier
// cell per Step, until the frontier is exhausted.
package mazegen

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/mazerace/grid"
)

// primGenerator carves a perfect maze by frontier growth.
//
// State machine: {Growing, Done}. Invariants:
//
//   - Every frontier cell is a wall cell center with at least one carved
//     step-2 neighbor; the frontier never contains a carved cell.
//   - Carving is monotone: cells only ever go Wall → Passage, so the
//     frontier drains to zero and generation terminates within one call per
//     cell plus the final done transition.
//
// Frontier selection policy: the frontier is sorted lexicographically by
// (row, col) and the pick is uniform over the whole sorted frontier.
// A bounded-window pick (uniform over the first few sorted entries) is a
// behavior-preserving alternative that only changes the visual
// branchiness a given seed produces; the whole-frontier policy is used
// here and is part of this module's seed-compatibility contract.
type primGenerator struct {
	g        *grid.Grid
	rng      *rand.Rand
	frontier map[grid.Coord]struct{}
	done     bool
}

// newPrim seeds the carved region with the start cell and its step-2
// neighbors as the initial frontier.
func newPrim(g *grid.Grid, cfg Options) *primGenerator {
	p := &primGenerator{
		g:        g,
		rng:      rngFromSeed(cfg.Seed),
		frontier: make(map[grid.Coord]struct{}),
	}
	start := g.Start()
	// Seed: carve the start cell; its neighbors form the first frontier.
	_ = g.CarveCell(start)
	for _, n := range g.NeighborsAt(start.R, start.C, 2) {
		p.frontier[n] = struct{}{}
	}

	return p
}

// Done reports whether generation has completed.
func (p *primGenerator) Done() bool { return p.done }

// Step attaches one frontier cell to the carved region.
// Returns true once the frontier is empty and the grid is finalized.
//
// Steps:
//  1. Empty frontier → finalize the grid, transition to Done.
//  2. Sort the frontier by (row, col); draw a uniform random index.
//  3. Remove the pick. Collect its carved step-2 neighbors, sorted.
//  4. No carved neighbor (transient) → re-add the pick's wall neighbors
//     and return without carving.
//  5. Otherwise carve toward one uniformly drawn carved neighbor (this
//     also carves the connecting wall cell).
//  6. Add the newly carved cell's step-2 wall neighbors to the frontier.
func (p *primGenerator) Step() bool {
	if p.done {
		return true
	}
	if len(p.frontier) == 0 {
		p.g.Finalize()
		p.done = true

		return true
	}

	current := p.takeRandomFrontier()

	// Carved step-2 neighbors of the pick, sorted for determinism.
	carved := make([]grid.Coord, 0, 4)
	for _, n := range p.g.NeighborsAt(current.R, current.C, 2) {
		if p.g.IsPassage(n.R, n.C) {
			carved = append(carved, n)
		}
	}
	sortCoords(carved)

	if len(carved) == 0 {
		// Transient: nothing to attach to yet. Re-add the pick's wall
		// neighbors so the region can reach it later.
		p.addWallNeighbors(current)

		return false
	}

	attach := carved[p.rng.Intn(len(carved))]
	_ = p.g.CarvePassage(current, attach)

	p.addWallNeighbors(current)

	return false
}

// takeRandomFrontier removes and returns a uniformly random frontier
// cell, drawn by index into the lexicographically sorted frontier.
func (p *primGenerator) takeRandomFrontier() grid.Coord {
	sorted := make([]grid.Coord, 0, len(p.frontier))
	for c := range p.frontier {
		sorted = append(sorted, c)
	}
	sortCoords(sorted)
	pick := sorted[p.rng.Intn(len(sorted))]
	delete(p.frontier, pick)

	return pick
}

// addWallNeighbors adds every still-walled step-2 neighbor of c to the
// frontier. Carved cells are filtered out, preserving the frontier
// invariant.
func (p *primGenerator) addWallNeighbors(c grid.Coord) {
	for _, n := range p.g.NeighborsAt(c.R, c.C, 2) {
		if !p.g.IsPassage(n.R, n.C) {
			p.frontier[n] = struct{}{}
		}
	}
}

// sortCoords orders coords lexicographically by (row, col) in place.
func sortCoords(coords []grid.Coord) {
	sort.Slice(coords, func(i, j int) bool { return coords[i].Less(coords[j]) })
}

// Package search - Dijkstra's algorithm over the finalized grid.
package search

import (
	"container/heap"

	"github.com/katalvlaran/mazerace/grid"
)

// dijkstraSearch expands cells in increasing distance from the start
// with uniform edge cost 1. The heap uses lazy deletion: a better path
// pushes a fresh entry, and stale entries are skipped on pop against the
// closed set. Visited (closed) is marked only on actual expansion.
//
// Distances live in a map; absence means "no known distance" — an
// explicit miss instead of a float infinity sentinel.
type dijkstraSearch struct {
	tracker
	pq   distPQ
	dist map[grid.Coord]int
}

func newDijkstra(g *grid.Grid, cfg Options) *dijkstraSearch {
	s := &dijkstraSearch{
		tracker: newTracker(g, cfg, AlgoDijkstra),
		pq:      distPQ{{cell: cfg.Start, dist: 0}},
		dist:    map[grid.Coord]int{cfg.Start: 0},
	}
	heap.Init(&s.pq)

	return s
}

// Step pops one heap entry. A stale entry (already-closed cell) is
// discarded as the step's bounded unit of work; otherwise the cell is
// expanded: goal check, then relaxation of its passable neighbors in the
// fixed up, right, down, left order.
func (s *dijkstraSearch) Step() bool {
	if s.done {
		return false
	}
	if s.pq.Len() == 0 {
		s.finish(false)

		return false
	}

	item := heap.Pop(&s.pq).(distItem)
	cur := item.cell
	if s.visited[cur] {
		// Stale heap entry left behind by lazy deletion.
		return true
	}

	s.visited[cur] = true
	delete(s.inFrontier, cur)
	s.explored++

	if cur == s.goal {
		s.reachGoal()

		return false
	}

	for _, n := range s.g.PassableNeighbors(cur.R, cur.C) {
		if s.visited[n] {
			continue
		}
		next := item.dist + 1
		if best, ok := s.dist[n]; ok && next >= best {
			continue
		}
		s.dist[n] = next
		s.parent[n] = cur
		s.inFrontier[n] = true
		heap.Push(&s.pq, distItem{cell: n, dist: next})
	}

	return true
}

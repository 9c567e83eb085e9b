// Package search - A* over the finalized grid.
package search

import (
	"container/heap"

	"github.com/katalvlaran/mazerace/grid"
)

// astarSearch is Dijkstra with the priority key f = g + h, where h is
// the Manhattan distance to the goal. On a uniform-cost 4-connected grid
// the heuristic is admissible and consistent, so A* keeps Dijkstra's
// optimality while expanding no more cells. That property must be
// preserved if the cost model ever changes.
type astarSearch struct {
	tracker
	pq     astarPQ
	gScore map[grid.Coord]int
}

func newAStar(g *grid.Grid, cfg Options) *astarSearch {
	s := &astarSearch{
		tracker: newTracker(g, cfg, AlgoAStar),
		gScore:  map[grid.Coord]int{cfg.Start: 0},
	}
	s.pq = astarPQ{{cell: cfg.Start, f: s.heuristic(cfg.Start), g: 0}}
	heap.Init(&s.pq)

	return s
}

// heuristic is the Manhattan distance |Δrow| + |Δcol| to the goal.
func (s *astarSearch) heuristic(c grid.Coord) int {
	dr, dc := c.R-s.goal.R, c.C-s.goal.C
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// Step mirrors the Dijkstra step with the f-keyed heap: one pop (stale
// entries discarded against the closed set), goal check, then neighbor
// relaxation on g-scores.
func (s *astarSearch) Step() bool {
	if s.done {
		return false
	}
	if s.pq.Len() == 0 {
		s.finish(false)

		return false
	}

	item := heap.Pop(&s.pq).(astarItem)
	cur := item.cell
	if s.visited[cur] {
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
		nextG := item.g + 1
		if best, ok := s.gScore[n]; ok && nextG >= best {
			continue
		}
		s.gScore[n] = nextG
		s.parent[n] = cur
		s.inFrontier[n] = true
		heap.Push(&s.pq, astarItem{cell: n, f: nextG + s.heuristic(n), g: nextG})
	}

	return true
}

// Package search - breadth-first search over the finalized grid.
package search

import "github.com/katalvlaran/mazerace/grid"

// bfsSearch explores in FIFO layer order. Visited is marked at enqueue
// time, which prevents duplicate enqueues and makes the explored count
// equal the layer-order expansion count; on the unweighted grid the
// first time the goal is dequeued its path is shortest.
type bfsSearch struct {
	tracker
	queue []grid.Coord
}

func newBFS(g *grid.Grid, cfg Options) *bfsSearch {
	s := &bfsSearch{
		tracker: newTracker(g, cfg, AlgoBFS),
		queue:   []grid.Coord{cfg.Start},
	}
	s.visited[cfg.Start] = true

	return s
}

// Step dequeues one cell, checks the goal, and enqueues its unvisited
// passable neighbors in the fixed up, right, down, left order.
func (s *bfsSearch) Step() bool {
	if s.done {
		return false
	}
	if len(s.queue) == 0 {
		// Frontier exhausted without reaching the goal: terminal, no path.
		s.finish(false)

		return false
	}

	cur := s.queue[0]
	s.queue = s.queue[1:]
	delete(s.inFrontier, cur)
	s.explored++

	if cur == s.goal {
		s.reachGoal()

		return false
	}

	for _, n := range s.g.PassableNeighbors(cur.R, cur.C) {
		if !s.visited[n] {
			s.visited[n] = true
			s.parent[n] = cur
			s.inFrontier[n] = true
			s.queue = append(s.queue, n)
		}
	}

	return true
}

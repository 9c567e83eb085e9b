// Package search - depth-first search over the finalized grid.
package search

import "github.com/katalvlaran/mazerace/grid"

// dfsSearch explores in LIFO order. To visit neighbors up-first, they
// are pushed in reverse (left, down, right, up) so the stack pops them
// in the fixed up, right, down, left order. Visited is marked at push
// time. Found paths are valid but not necessarily shortest.
type dfsSearch struct {
	tracker
	stack []grid.Coord
}

func newDFS(g *grid.Grid, cfg Options) *dfsSearch {
	s := &dfsSearch{
		tracker: newTracker(g, cfg, AlgoDFS),
		stack:   []grid.Coord{cfg.Start},
	}
	s.visited[cfg.Start] = true

	return s
}

// Step pops one cell, checks the goal, and pushes its unvisited passable
// neighbors in reverse order.
func (s *dfsSearch) Step() bool {
	if s.done {
		return false
	}
	if len(s.stack) == 0 {
		s.finish(false)

		return false
	}

	cur := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	delete(s.inFrontier, cur)
	s.explored++

	if cur == s.goal {
		s.reachGoal()

		return false
	}

	neighbors := s.g.PassableNeighbors(cur.R, cur.C)
	for i := len(neighbors) - 1; i >= 0; i-- {
		n := neighbors[i]
		if !s.visited[n] {
			s.visited[n] = true
			s.parent[n] = cur
			s.inFrontier[n] = true
			s.stack = append(s.stack, n)
		}
	}

	return true
}

// Package search - lazy-deletion priority queues for Dijkstra and A*.
//
// Neither heap supports decrease-key: improved distances push fresh
// entries, and stale ones are discarded on pop against the visited set.
// The extra O(E log E) pushes are accepted for the simpler heap.
package search

import "github.com/katalvlaran/mazerace/grid"

// distItem is a Dijkstra heap entry: a cell and its tentative distance
// at push time.
type distItem struct {
	cell grid.Coord
	dist int
}

// distPQ is a min-heap of distItem ordered by (dist, row, col).
// The coordinate components fix the tie-break: among equal distances the
// natural (row, col) order wins, which decides which of several
// equal-length paths is returned.
type distPQ []distItem

func (pq distPQ) Len() int { return len(pq) }

func (pq distPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].cell.Less(pq[j].cell)
}

func (pq distPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new distItem. Called by heap.Push.
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(distItem)) }

// Pop removes and returns the minimal entry. Called by heap.Pop.
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// astarItem is an A* heap entry: f = g + h at push time, plus g for
// tie-breaking.
type astarItem struct {
	cell grid.Coord
	f, g int
}

// astarPQ is a min-heap of astarItem ordered by (f, g, row, col),
// matching the Dijkstra tie-break contract with f in front.
type astarPQ []astarItem

func (pq astarPQ) Len() int { return len(pq) }

func (pq astarPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].g != pq[j].g {
		return pq[i].g < pq[j].g
	}

	return pq[i].cell.Less(pq[j].cell)
}

func (pq astarPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new astarItem. Called by heap.Push.
func (pq *astarPQ) Push(x interface{}) { *pq = append(*pq, x.(astarItem)) }

// Pop removes and returns the minimal entry. Called by heap.Pop.
func (pq *astarPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

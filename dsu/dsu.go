package dsu

import "errors"

// ErrBadSize indicates New was called with a negative element count.
var ErrBadSize = errors.New("dsu: size must be non-negative")

// UnionFind is a disjoint-set forest over ids 0..n-1.
// No operation ever disconnects: two ids are in the same set iff they
// were ever Union-ed, directly or transitively.
type UnionFind struct {
	parent []int
	rank   []int
	count  int
}

// New returns a UnionFind of n singleton sets. Returns ErrBadSize for n < 0.
//
// Complexity: O(n).
func New(n int) (*UnionFind, error) {
	if n < 0 {
		return nil, ErrBadSize
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &UnionFind{
		parent: parent,
		rank:   make([]int, n),
		count:  n,
	}, nil
}

// Len returns the total number of elements.
func (u *UnionFind) Len() int { return len(u.parent) }

// Count returns the number of disjoint sets remaining.
// It starts at n and decreases by one per successful Union.
func (u *UnionFind) Count() int { return u.count }

// Find returns the root of x's set, or -1 if x is out of range.
// Idempotent; compresses paths by the iterative grandparent hop, so
// repeated calls flatten the forest without deep recursion.
func (u *UnionFind) Find(x int) int {
	if x < 0 || x >= len(u.parent) {
		return -1
	}
	for u.parent[x] != x {
		// Path compression: make x point to its grandparent.
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

// Union merges the sets containing x and y by rank. Returns true iff
// they were in different sets (and performs the merge); false for
// already-connected or out-of-range ids.
func (u *UnionFind) Union(x, y int) bool {
	rx, ry := u.Find(x), u.Find(y)
	if rx < 0 || ry < 0 || rx == ry {
		return false
	}
	// Attach the smaller-rank tree under the larger-rank root.
	if u.rank[rx] < u.rank[ry] {
		rx, ry = ry, rx
	}
	u.parent[ry] = rx
	if u.rank[rx] == u.rank[ry] {
		u.rank[rx]++
	}
	u.count--

	return true
}

// Connected reports whether x and y are in the same set.
// Out-of-range ids are never connected.
func (u *UnionFind) Connected(x, y int) bool {
	rx, ry := u.Find(x), u.Find(y)

	return rx >= 0 && rx == ry
}

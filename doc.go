// Package mazerace races incremental pathfinding algorithms over
// procedurally generated mazes — deterministically, one step at a time.
//
// 🚀 What is mazerace?
//
//	A library of resumable maze state machines:
//		• grid     — wall/passage matrix with fixed-order adjacency
//		• dsu      — disjoint-set (union-find) with path compression
//		• mazegen  — steppable Prim and Kruskal perfect-maze generators
//		• search   — steppable BFS, DFS, Dijkstra and A* over one grid
//		• race     — round-robin driver + optimality scoring vs Dijkstra
//
// ✨ Why mazerace?
//
//   - Steppable by contract – every algorithm does one bounded unit of
//     work per Step, so drivers can pause, resume, single-step and
//     interleave fairly
//   - Deterministic – one seed, one maze, one result; fixed
//     up/right/down/left tie-breaking everywhere
//   - Isolated – N searches share one immutable grid and nothing else;
//     no locks, no goroutines, no global RNG
//
// Quick ASCII example (a 2×2 maze, '#' wall, 'S' start, 'G' goal):
//
//	#####
//	#S  #
//	### #
//	#  G#
//	#####
//
// Dive into cmd/mazerace for a runnable race, and each package's doc.go
// for contracts, complexity and error taxonomies.
//
//	go get github.com/katalvlaran/mazerace
package mazerace

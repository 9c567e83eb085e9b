// Package search implements four pathfinding algorithms over a finalized
// grid.Grid as resumable state machines: BFS, DFS, Dijkstra, and A*.
//
// What:
//
//   - Each Algorithm exposes Step, performing exactly one bounded unit of
//     work (pop one node, check goal, expand its passable neighbors in
//     the fixed up, right, down, left order), so a driver can interleave
//     several algorithms fairly, round-robin, frame by frame.
//   - Done, Path, and Metrics expose the terminal state; Visited and
//     InFrontier expose membership for overlay rendering. All are
//     observability-only.
//   - No algorithm uses randomness: results are fully determined by the
//     grid and the fixed neighbor order.
//
// Variant semantics:
//
//   - BFS:      FIFO queue, visited marked at enqueue time; shortest path
//     guaranteed on the unweighted grid.
//   - DFS:      LIFO stack, neighbors pushed in reverse (left, down,
//     right, up) so they pop up-first; valid but generally non-optimal
//     paths.
//   - Dijkstra: min-heap keyed (distance, row, col), uniform edge cost 1,
//     lazy deletion (stale entries skipped on pop, no decrease-key),
//     visited marked on expansion.
//   - A*:       Dijkstra with key (f, g, row, col), f = g + h,
//     h = Manhattan distance to the goal — admissible and consistent on
//     a uniform-cost 4-connected grid, so optimality is preserved.
//
// Tie-breaking contract: equal-priority heap entries resolve by natural
// (row, col) coordinate order (A* additionally prefers larger progress
// through the smaller f first via the g component of its key). This is
// fixed: it decides which of several equal-length paths is returned.
//
// Lazy deletion is deliberate: the heaps never decrease-key in place;
// improved distances push fresh entries and stale ones are discarded on
// pop. Cost is O(E log E) pushes instead of O(E) decrease-keys — accepted
// for the much simpler heap.
//
// Failure semantics: an unreachable goal is not an error. The search
// becomes Done with an empty Path and Metrics.PathLen == 0. Construction
// is the only error surface (nil or unfinalized grid, bad endpoints).
//
// Complexity over P passage cells: BFS/DFS O(P) pops; Dijkstra/A*
// O(P log P) with the heap. Memory O(P) per algorithm; state is fully
// isolated, so N algorithms race over one immutable grid with no
// synchronization.
package search

// Package mazegen generates perfect mazes into a grid.Grid incrementally,
// one bounded unit of work per Step call, via two randomized algorithms.
//
// What:
//
//   - Prim variant: grows the carved region from the start cell by
//     repeatedly attaching a random frontier cell to a carved neighbor.
//   - Kruskal variant: pre-carves every cell center, shuffles the full
//     cell-adjacency edge list, and carves each edge whose endpoints a
//     union-find reports as disconnected, a fixed-size batch per Step.
//   - Both run to a perfect maze: acyclic and fully connected, exactly
//     one simple path between any two passage cells.
//
// Why:
//
//   - Stepping lets a driver animate generation and interleave it with
//     other work; the generator reports completion from Step itself.
//   - Determinism is a correctness requirement, not a nicety: the same
//     seed, method, and grid dimensions reproduce bit-identical mazes,
//     because the downstream optimality scoring depends on reproducible
//     tie-breaking.
//
// Determinism contract:
//
//   - The seeded RNG is owned exclusively by the generator instance;
//     nothing else may draw from it.
//   - Every random pick draws an index into a lexicographically sorted
//     candidate list, so map iteration order never leaks into results.
//
// Complexity (rows × cols cells):
//
//   - Prim:    O(rows×cols · log(rows×cols)) total across all steps
//     (the sort of the frontier dominates each step).
//   - Kruskal: O(E) total edge processing after an O(E) shuffle,
//     E = 2·rows·cols − rows − cols.
//
// Errors:
//
//   - ErrNilGrid:       nil *grid.Grid.
//   - ErrFinalizedGrid: the grid was already finalized.
//   - ErrUnknownMethod: Method is neither MethodPrim nor MethodKruskal.
//   - ErrBadBatchSize:  Kruskal batch size below 1.
package mazegen

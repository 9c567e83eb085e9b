// Package grid models a maze as a matrix of walls and passages, enabling
// deterministic generation and pathfinding over it.
//
// What:
//
//   - Grid wraps a (2·rows+1) × (2·cols+1) matrix for rows × cols logical
//     cells: odd/odd positions are cell centers, even positions are the
//     walls between them.
//   - Fixed-order adjacency queries (up, right, down, left) at step 1
//     (pathfinding) or step 2 (cell-to-cell generation).
//   - Mutation is limited to carving passages before Finalize; afterwards
//     the grid is read-only and safe to share across searches.
//   - Changed cells are tracked in a dirty set, drainable via Changed for
//     incremental redraw.
//
// Why:
//
//   - Maze generators (mazegen) carve a perfect maze into the grid.
//   - Search algorithms (search) race over the finalized, immutable grid.
//
// Complexity:
//
//   - New:           O(W×H) time and memory.
//   - IsPassage, InBounds, NeighborsAt, CarvePassage: O(1).
//   - CellCoords:    O(rows×cols).
//   - Changed:       O(k log k) for k dirty cells (sorted for determinism).
//
// Errors:
//
//   - ErrBadDimensions: rows or cols below 1.
//   - ErrFinalized:     carve attempted after Finalize.
//   - ErrBadCarve:      carve endpoints are not step-2 adjacent cell centers.
//
// See: docs in mazegen and search for the producers and consumers.
package grid

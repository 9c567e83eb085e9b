// Package dsu implements an array-backed disjoint-set (union-find) over a
// contiguous integer id space, with iterative path compression and union
// by rank.
//
// What:
//
//   - New(n) creates n singleton sets with ids 0..n-1.
//   - Find(x) returns the canonical root of x's set, compressing paths.
//   - Union(x, y) merges two sets, reporting whether a merge happened.
//   - Count() tracks the number of remaining disjoint sets.
//
// Why:
//
//   - Kruskal maze generation carves an edge iff its endpoints are in
//     different sets; a finished perfect maze has Count() == 1.
//
// Complexity:
//
//   - Find/Union: O(α(n)) amortized, effectively O(1) after compression.
//   - Memory:     O(n).
//
// Errors:
//
//   - ErrBadSize: New called with a negative size.
//
// Ids outside [0, n) are not an error: Find returns -1 and Union returns
// false, so callers can use the results directly as filters.
package dsu

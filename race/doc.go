// Package race interleaves several search algorithms over one finalized
// grid and scores their results against Dijkstra as ground truth.
//
// What:
//
//   - Racer owns a set of search.Algorithm instances and advances them
//     round-robin, one Step per algorithm per tick.
//   - Run drives the race to completion under a step budget.
//   - VerifyOptimality compares every algorithm's path length against
//     the completed Dijkstra path.
//   - Report bundles name, metrics, optimality, and path validity per
//     algorithm.
//
// Scheduling model: single-threaded, cooperative, step-driven. No
// goroutines, no channels, nothing blocks: each algorithm's state is
// fully isolated (the only shared structure is the read-only grid), so
// the relative order of Step calls within a tick cannot change any
// individual result. Pausing is simply not calling Step; resetting is
// constructing fresh instances.
//
// Errors:
//
//   - ErrNoAlgorithms:  Racer constructed with no algorithms.
//   - ErrNilAlgorithm:  a nil entry in the algorithm list.
//   - ErrBadStepBudget: Run called with a budget below 1.
//   - ErrStepBudget:    the budget was exhausted before all finished.
package race

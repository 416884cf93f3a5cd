// Package maxtime computes the set of rides that maximizes total ride time
// within a dollar budget: the 0/1 knapsack problem over ride.Vector.
//
// It includes two independent solvers that must agree on the optimal time:
//
//   - Dynamic — classic pseudo-polynomial table DP.
//
//   - Complexity: O(n·B) for n rides and budget B
//
//   - Memory:     O(B + n·B/64) words (ChoiceBits) or O(n·B) (FullTable)
//
//   - Result order: decreasing original index (traceback from the last ride).
//
//   - Exhaustive — enumerates all 2ⁿ subsets as bitmasks.
//
//   - Complexity: O(n·2ⁿ)
//
//   - Requires n < 64; returns ErrTooManyRides otherwise.
//
//   - Result order: increasing original index.
//
//   - Ties keep the earliest bitmask.
//
// Solve dispatches between them from Options.
//
// An empty Solution with a nil error means "nothing fits". A non-nil error
// means the solver did not run. The two are never conflated.
//
// Use Exhaustive as a correctness oracle on small, pre-filtered inputs
// (see ride.Filter); use Dynamic for whole catalogs.
package maxtime

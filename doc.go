// Package ridetime plans a day at the park: given a catalog of rides, each
// with a ticket cost in dollars and a duration in minutes, it chooses the set
// of rides that keeps you busy the longest without going over budget.
//
// 🚀 What is inside?
//
//	• ride/     — the Item value type, Vector, Sum and Filter
//	• catalog/  — loader for caret-delimited ride databases (description^cost^time)
//	• maxtime/  — 0/1 knapsack solvers: Dynamic (DP) and Exhaustive (subset search)
//	• report/   — plain-text rendering of ride vectors and DP tables
//	• cmd/ridetime — the command line front end (solve, filter, compare, version)
//
// ✨ Highlights
//
//   - Dynamic runs in O(n·B) time; by default it keeps one row plus a
//     bitset of decisions, so large budgets stay cheap on memory.
//   - Exhaustive is exact for small inputs and serves as a cross-check.
//   - Both solvers return the same Solution shape, so results compare directly.
//
// Quick start:
//
//	rides, _ := catalog.Load("ride.csv")
//	rides = ride.Filter(rides, 1, math.Inf(1), len(rides))
//	sol, _ := maxtime.Dynamic(rides, 500, nil)
//	_ = report.PrintVector(os.Stdout, sol.Rides)
package ridetime

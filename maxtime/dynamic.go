package maxtime

import (
	"math"

	"github.com/katalvlaran/ridetime/ride"
)

// Dynamic computes the optimal set of rides with the 0/1 knapsack DP.
//
// Among the rides that fit within budget dollars, it chooses the selection
// whose total time is greatest.
//
// Algorithm Outline (FullTable):
//  1. Let n = len(rides), B = budget. Allocate an (n+1)x(B+1) table T.
//  2. T[0][b] = 0 for every b.
//  3. For i = 1..n, with c = cost of ride i and t = its time:
//     T[i][b] = T[i-1][b]                              if c > b
//     T[i][b] = max(T[i-1][b], T[i-1][b-c] + t)          otherwise
//  4. The optimum is T[n][B].
//  5. Traceback from (n, B): if T[i][b] == T[i-1][b] ride i was skipped,
//     otherwise it was taken and the walk continues at (i-1, b-c).
//
// ChoiceBits runs the same recurrence on a single row updated from high to
// low budgets and records bit (i, b) exactly when the "take" branch strictly
// wins, which is exactly when T[i][b] != T[i-1][b]. The traceback reads the
// bits instead of comparing rows, so both modes pick the same rides.
//
// The working budget is min(budget, total cost of rides). A larger budget
// admits every ride anyway, so the answer is unchanged; such budgets cost no
// extra memory, and the FullTable table is that many columns plus one wide.
//
// The returned Rides are in decreasing original index: the traceback meets
// the last ride first. Budget 0, or a budget below every cost, yields an
// empty Solution and a nil error.
//
// Errors:
//   - ErrNegativeBudget     — budget < 0.
//   - ErrNilRide            — rides contains nil.
//   - ErrUnknownMemoryMode  — opts.MemoryMode out of range.
//   - ErrTableNeedsFullMode — opts.ReturnTable without FullTable.
//   - ErrTableTooLarge      — the table for the capped budget exceeds 1 TiB.
//
// Complexity:
//
//	Time   = O(n·B)
//	Memory = O(B + n·B/64) words (ChoiceBits) or O(n·B) (FullTable)
//
// Example:
//
//	sol, err := Dynamic(rides, 500, nil)
func Dynamic(rides ride.Vector, budget int, opts *Options) (Solution, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return Solution{}, err
	}
	if budget < 0 {
		return Solution{}, ErrNegativeBudget
	}
	if err = validateRides(rides); err != nil {
		return Solution{}, err
	}

	budget = effectiveBudget(rides, budget)
	if budget > math.MaxInt-64 {
		return Solution{}, ErrTableTooLarge
	}

	if o.MemoryMode == FullTable {
		if err = checkCells(len(rides)+1, budget+1); err != nil {
			return Solution{}, err
		}
		return dynamicFull(rides, budget, o.ReturnTable), nil
	}

	// n rows of taken words plus the value row, which spans 64 words' worth of bits.
	if err = checkCells(len(rides)+64, (budget+64)>>6); err != nil {
		return Solution{}, err
	}
	return dynamicChoiceBits(rides, budget), nil
}

// dynamicFull fills the whole table in one flat allocation and walks it back.
func dynamicFull(rides ride.Vector, budget int, keepTable bool) Solution {
	n := len(rides)
	cols := budget + 1

	flat := make([]float64, (n+1)*cols)
	table := make([][]float64, n+1)
	for i := range table {
		table[i] = flat[i*cols : (i+1)*cols : (i+1)*cols]
	}

	// Fill DP
	for i := 1; i <= n; i++ {
		c, t := rides[i-1].Cost(), rides[i-1].Time()
		prev, curr := table[i-1], table[i]
		for b := 0; b < cols; b++ {
			skip := prev[b]
			if c > b {
				curr[b] = skip
				continue
			}
			if take := prev[b-c] + t; take > skip {
				curr[b] = take
			} else {
				curr[b] = skip
			}
		}
	}

	// Backtrack
	chosen := ride.Vector{}
	b := budget
	for i := n; i >= 1; i-- {
		if table[i][b] != table[i-1][b] {
			chosen = append(chosen, rides[i-1])
			b -= rides[i-1].Cost()
		}
	}

	sol := newSolution(chosen)
	if keepTable {
		sol.Table = table
	}

	return sol
}

// dynamicChoiceBits keeps one value row plus n rows of packed "taken" bits.
func dynamicChoiceBits(rides ride.Vector, budget int) Solution {
	n := len(rides)
	cols := budget + 1
	words := (cols + 63) >> 6

	row := make([]float64, cols)
	taken := make([]uint64, n*words)

	for i := 0; i < n; i++ {
		c, t := rides[i].Cost(), rides[i].Time()
		bits := taken[i*words : (i+1)*words]
		// High to low so row[b-c] still holds the previous ride's value.
		for b := budget; b >= c; b-- {
			if take := row[b-c] + t; take > row[b] {
				row[b] = take
				bits[b>>6] |= 1 << (uint(b) & 63)
			}
		}
	}

	chosen := ride.Vector{}
	b := budget
	for i := n - 1; i >= 0; i-- {
		if taken[i*words+(b>>6)]&(1<<(uint(b)&63)) != 0 {
			chosen = append(chosen, rides[i])
			b -= rides[i].Cost()
		}
	}

	return newSolution(chosen)
}

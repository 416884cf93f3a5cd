package maxtime

import (
	"math/bits"

	"github.com/katalvlaran/ridetime/ride"
)

// Exhaustive computes the optimal set of rides by enumerating every subset.
//
// Among all subsets of rides it returns the one whose dollar cost fits
// within budget and whose total time is greatest.
//
// Subsets are indexed by bitmasks from 0…(1<<n)-1; bit j set means ride j is
// in the candidate. Cost and time are accumulated over the set bits in
// increasing index order, so no slice is built per candidate. A candidate
// replaces the current best only when
//
//	cost <= budget && (best is empty || time > bestTime)
//
// so among equally good subsets the earliest mask wins. The best mask is
// materialized once, in increasing original index order.
//
// A negative (or NaN) budget admits no subset, not even the empty one, and
// yields an empty Solution.
//
// Errors:
//   - ErrTooManyRides — len(rides) >= MaxExhaustiveRides; nothing is enumerated.
//   - ErrNilRide      — rides contains nil.
//
// Complexity:  O(n · 2ⁿ) time, O(n) memory.
func Exhaustive(rides ride.Vector, budget float64) (Solution, error) {
	n := len(rides)
	if n >= MaxExhaustiveRides {
		return Solution{}, ErrTooManyRides
	}
	if err := validateRides(rides); err != nil {
		return Solution{}, err
	}

	var (
		bestMask uint64  // 0 doubles as "best is empty"
		bestTime float64 // total time of bestMask
		cost     int
		minutes  float64
		j        int
	)
	limit := uint64(1) << uint(n)
	for mask := uint64(0); mask < limit; mask++ {
		cost, minutes = 0, 0
		for j = 0; j < n; j++ {
			if mask&(1<<uint(j)) != 0 {
				cost += rides[j].Cost()
				minutes += rides[j].Time()
			}
		}

		if float64(cost) <= budget && (bestMask == 0 || minutes > bestTime) {
			bestMask = mask
			bestTime = minutes
		}
	}

	chosen := make(ride.Vector, 0, bits.OnesCount64(bestMask))
	for j = 0; j < n; j++ {
		if bestMask&(1<<uint(j)) != 0 {
			chosen = append(chosen, rides[j])
		}
	}

	return newSolution(chosen), nil
}

// Package maxtime - validation helpers shared by both solvers.
//
// Deterministic, side-effect free functions. No logging, no panics on user
// input - only sentinel errors from types.go.
package maxtime

import (
	"math"

	"github.com/katalvlaran/ridetime/ride"
)

// resolveOptions returns defaults for nil and validates the combination.
//
// Complexity: O(1).
func resolveOptions(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	switch o.MemoryMode {
	case ChoiceBits, FullTable:
		// ok
	default:
		return Options{}, ErrUnknownMemoryMode
	}
	if o.ReturnTable && o.MemoryMode != FullTable {
		return Options{}, ErrTableNeedsFullMode
	}
	switch o.Algo {
	case AlgoDynamic, AlgoExhaustive:
		// ok
	default:
		return Options{}, ErrUnknownAlgorithm
	}

	return o, nil
}

// validateRides rejects nil entries.
//
// Complexity: O(n).
func validateRides(rides ride.Vector) error {
	for _, it := range rides {
		if it == nil {
			return ErrNilRide
		}
	}

	return nil
}

// effectiveBudget caps budget at the total cost of rides. Any budget at or
// above that total admits every ride, so the optimum and traceback are the
// same. The sum saturates at math.MaxInt.
//
// Complexity: O(n).
func effectiveBudget(rides ride.Vector, budget int) int {
	total := 0
	for _, it := range rides {
		if c := it.Cost(); total > math.MaxInt-c {
			total = math.MaxInt
		} else {
			total += c
		}
		if total >= budget {
			return budget
		}
	}

	return total
}

// maxTableBytes caps the DP state Dynamic will try to allocate (1 TiB).
const maxTableBytes = 1 << 40

// checkCells reports whether rows*cols 8-byte cells stay under maxTableBytes.
//
// Complexity: O(1).
func checkCells(rows, cols int) error {
	if cols > 0 && rows > maxTableBytes/8/cols {
		return ErrTableTooLarge
	}

	return nil
}

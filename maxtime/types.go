// Package maxtime defines options, memory modes and results for the solvers.
package maxtime

import (
	"errors"

	"github.com/katalvlaran/ridetime/ride"
)

var (
	// ErrNegativeBudget indicates a budget below zero was passed to Dynamic.
	ErrNegativeBudget = errors.New("maxtime: budget must be non-negative")

	// ErrNilRide indicates the input vector holds a nil ride.
	ErrNilRide = errors.New("maxtime: ride vector contains a nil ride")

	// ErrTooManyRides indicates Exhaustive was given 64 or more rides.
	ErrTooManyRides = errors.New("maxtime: exhaustive search requires fewer than 64 rides")

	// ErrTableNeedsFullMode indicates ReturnTable was requested without FullTable.
	ErrTableNeedsFullMode = errors.New("maxtime: ReturnTable requires MemoryMode=FullTable")

	// ErrUnknownMemoryMode indicates an out-of-range MemoryMode.
	ErrUnknownMemoryMode = errors.New("maxtime: unknown memory mode")

	// ErrUnknownAlgorithm indicates an out-of-range Algorithm.
	ErrUnknownAlgorithm = errors.New("maxtime: unknown algorithm")

	// ErrTableTooLarge indicates the DP state for the capped budget is too
	// large to allocate.
	ErrTableTooLarge = errors.New("maxtime: dp table too large")
)

// MaxExhaustiveRides is the exclusive upper bound on Exhaustive input size.
const MaxExhaustiveRides = 64

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	// AlgoDynamic runs the O(n·B) table DP.
	AlgoDynamic Algorithm = iota

	// AlgoExhaustive runs the O(n·2ⁿ) bitmask enumeration.
	AlgoExhaustive
)

// String returns the lower-case algorithm name used by the CLI and config.
func (a Algorithm) String() string {
	switch a {
	case AlgoDynamic:
		return "dynamic"
	case AlgoExhaustive:
		return "exhaustive"
	default:
		return "unknown"
	}
}

// MemoryMode controls how Dynamic stores its DP state.
//
//   - ChoiceBits — one rolling row of best times plus one "taken" bit per
//     (ride, budget) cell. Enough for the traceback, not for inspecting the
//     table. Memory: O(B + n·B/64) words.
//
//   - FullTable — the entire (n+1)x(B+1) table of best times.
//     Required for ReturnTable. Memory: O(n·B).
//
// Both modes select exactly the same rides.
type MemoryMode int

const (
	// ChoiceBits keeps a rolling value row and a bit-packed choice table.
	ChoiceBits MemoryMode = iota

	// FullTable keeps every row of the DP table.
	FullTable
)

// String returns the lower-case mode name used by the CLI and config.
func (m MemoryMode) String() string {
	switch m {
	case ChoiceBits:
		return "bits"
	case FullTable:
		return "full"
	default:
		return "unknown"
	}
}

// Options configures Solve and Dynamic.
//
// Fields:
//   - Algo        — solver used by Solve (ignored by Dynamic).
//   - MemoryMode  — DP storage, see MemoryMode.
//   - ReturnTable — copy the DP table into Solution.Table.
//     Requires MemoryMode=FullTable.
//
// Example:
//
//	opts := maxtime.DefaultOptions()
//	opts.MemoryMode = maxtime.FullTable
//	opts.ReturnTable = true
//	sol, err := maxtime.Dynamic(rides, 14, &opts)
type Options struct {
	Algo        Algorithm
	MemoryMode  MemoryMode
	ReturnTable bool
}

// DefaultOptions returns Dynamic with ChoiceBits storage and no table.
func DefaultOptions() Options {
	return Options{
		Algo:        AlgoDynamic,
		MemoryMode:  ChoiceBits,
		ReturnTable: false,
	}
}

// Solution holds the outcome of a solver.
type Solution struct {
	// Rides is the chosen subset; never nil, empty when nothing fits.
	// Dynamic lists rides in decreasing original index, Exhaustive in increasing.
	Rides ride.Vector

	// TotalCost is the sum of ride costs in dollars (always <= budget).
	TotalCost int

	// TotalTime is the sum of ride times in minutes.
	TotalTime float64

	// Table is the (n+1)x(B+1) DP table when ReturnTable was set, else nil.
	Table [][]float64
}

// newSolution fills the totals for rides.
func newSolution(rides ride.Vector) Solution {
	cost, minutes := ride.Sum(rides)

	return Solution{Rides: rides, TotalCost: cost, TotalTime: minutes}
}

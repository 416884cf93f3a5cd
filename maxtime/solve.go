// Package maxtime - unified dispatcher for both solvers.
package maxtime

import "github.com/katalvlaran/ridetime/ride"

// Solve validates opts and routes to the chosen algorithm.
// A nil opts means DefaultOptions().
//
// The budget is an integer for both algorithms so that results are directly
// comparable; Exhaustive receives it converted to float64. ReturnTable and
// MemoryMode only affect Dynamic.
//
// Errors: ErrNegativeBudget, ErrUnknownAlgorithm and everything Dynamic or
// Exhaustive return.
func Solve(rides ride.Vector, budget int, opts *Options) (Solution, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return Solution{}, err
	}
	if budget < 0 {
		return Solution{}, ErrNegativeBudget
	}

	switch o.Algo {
	case AlgoExhaustive:
		return Exhaustive(rides, float64(budget))
	default:
		return Dynamic(rides, budget, &o)
	}
}

// ParseAlgorithm maps "dynamic" / "exhaustive" to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "dynamic", "dp", "":
		return AlgoDynamic, nil
	case "exhaustive", "brute":
		return AlgoExhaustive, nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}

// ParseMemoryMode maps "bits" / "full" to a MemoryMode.
func ParseMemoryMode(s string) (MemoryMode, error) {
	switch s {
	case "bits", "":
		return ChoiceBits, nil
	case "full":
		return FullTable, nil
	default:
		return 0, ErrUnknownMemoryMode
	}
}

// Package maxtime_test provides fixtures and deterministic generators shared
// across the *_test.go files in this package.
package maxtime_test

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/katalvlaran/ridetime/ride"
)

const (
	// seedDet is the base seed for generated instances.
	seedDet = int64(1)

	// randomInstances is the number of generated instances per property.
	randomInstances = 200

	// maxRandomRides keeps 2ⁿ enumeration fast on CI.
	maxRandomRides = 12
)

// rideDatabase is the full park database shared with package catalog.
var rideDatabase = filepath.Join("..", "catalog", "testdata", "ride.csv")

// trivialRides is the two-ride fixture: Ferris Wheel (10$, 20m), Speedway (4$, 5m).
func trivialRides() ride.Vector {
	return ride.Vector{
		ride.MustItem("test Ferris Wheel", 10, 20),
		ride.MustItem("test Speedway", 4, 5),
	}
}

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to seedDet.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = seedDet
	}

	return rand.New(rand.NewSource(seed))
}

// randomRides builds n rides with costs in [1,20] and integral times in
// [0,50]. Integral times keep every sum exact, so solvers can be compared
// with plain equality.
func randomRides(rng *rand.Rand, n int) ride.Vector {
	v := make(ride.Vector, n)
	for i := 0; i < n; i++ {
		v[i] = ride.MustItem(fmt.Sprintf("ride-%02d", i), 1+rng.Intn(20), float64(rng.Intn(51)))
	}

	return v
}

// indexOf maps each chosen ride back to its position in src.
func indexOf(src, chosen ride.Vector) []int {
	pos := make(map[*ride.Item]int, len(src))
	for i, it := range src {
		pos[it] = i
	}
	out := make([]int, len(chosen))
	for i, it := range chosen {
		out[i] = pos[it]
	}

	return out
}

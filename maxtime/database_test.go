package maxtime_test

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ridetime/catalog"
	"github.com/katalvlaran/ridetime/maxtime"
	"github.com/katalvlaran/ridetime/ride"
)

// loadFiltered returns every database ride with a time in [1, 2500].
func loadFiltered(t *testing.T) ride.Vector {
	t.Helper()
	if _, err := os.Stat(rideDatabase); err != nil {
		t.Skipf("%s not available", rideDatabase)
	}
	all, err := catalog.Load(rideDatabase)
	require.NoError(t, err)

	return ride.Filter(all, 1, 2500, len(all))
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }

// TestDynamic_RideDatabase checks the known optima at budgets 500 and 5000.
func TestDynamic_RideDatabase(t *testing.T) {
	filtered := loadFiltered(t)

	small, err := maxtime.Dynamic(filtered, 500, nil)
	require.NoError(t, err)
	large, err := maxtime.Dynamic(filtered, 5000, nil)
	require.NoError(t, err)

	require.NotEmpty(t, small.Rides)
	require.NotEmpty(t, large.Rides)
	require.Equal(t, 500, small.TotalCost)
	require.InDelta(t, 9564.92, round2(small.TotalTime), 1e-9)
	require.Equal(t, 5000, large.TotalCost)
	require.InDelta(t, 82766.45, round2(large.TotalTime), 1e-9)
}

// TestExhaustive_RideDatabase checks the optimum for the first n = 1..20
// rides of the [1, 2000] window at budget 2000, and that Dynamic agrees.
func TestExhaustive_RideDatabase(t *testing.T) {
	filtered := loadFiltered(t)
	optimal := []float64{
		500, 1033.05, 1500, 2100, 2400,
		2900, 3400, 4200, 4300, 4600,
		5000, 5400, 5800, 6100, 6500,
		7000, 7500, 8100, 8600, 8700,
	}
	round100 := func(x float64) float64 { return math.Round(x/100) * 100 }

	for i, want := range optimal {
		n := i + 1
		small := ride.Filter(filtered, 1, 2000, n)

		ex, err := maxtime.Exhaustive(small, 2000)
		require.NoError(t, err)
		require.Equalf(t, round100(want), round100(ex.TotalTime), "exhaustive search n = %d", n)

		dp, err := maxtime.Dynamic(small, 2000, nil)
		require.NoError(t, err)
		require.InDeltaf(t, ex.TotalTime, dp.TotalTime, 1e-6, "exhaustive and dynamic, n = %d", n)
	}
}

package cli

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ridetime/internal/logger"
	"github.com/katalvlaran/ridetime/maxtime"
)

// compareTolerance bounds the allowed float drift between the two solvers' totals.
const compareTolerance = 1e-6

var errSolversDisagree = errors.New("dynamic and exhaustive totals differ")

func compareCmd(g *globalFlags) *cobra.Command {
	var in inputFlags
	var budget int

	c := &cobra.Command{
		Use:   "compare",
		Short: "Run both solvers on the same rides and check they reach the same total",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, g, &in)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("budget") {
				cfg.Budget = budget
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			stop := startLogging(cmd, cfg)
			defer stop()
			log := logger.L()

			rides, err := loadRides(cfg, log)
			if err != nil {
				return err
			}

			opts := maxtime.Options{Algo: maxtime.AlgoDynamic, MemoryMode: cfg.MemoryMode}
			dyn, err := maxtime.Dynamic(rides, cfg.Budget, &opts)
			if err != nil {
				return err
			}
			exh, err := maxtime.Exhaustive(rides, float64(cfg.Budget))
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}

			diff := math.Abs(dyn.TotalTime - exh.TotalTime)
			log.Info("compare.done",
				"budget", cfg.Budget,
				"rides", len(rides),
				"dynamic_time", dyn.TotalTime,
				"exhaustive_time", exh.TotalTime,
				"diff", diff,
			)

			out := cmd.OutOrStdout()
			th := newTheme(out)
			fmt.Fprintln(out, th.Title.Render(fmt.Sprintf("compare: %d rides, budget %d dollars", len(rides), cfg.Budget)))
			fmt.Fprintf(out, "dynamic:    %d rides, cost %d, time %g\n", len(dyn.Rides), dyn.TotalCost, dyn.TotalTime)
			fmt.Fprintf(out, "exhaustive: %d rides, cost %d, time %g\n", len(exh.Rides), exh.TotalCost, exh.TotalTime)

			if diff > compareTolerance {
				fmt.Fprintln(out, th.Alert.Render("solvers disagree"))
				return fmt.Errorf("%w: %g vs %g", errSolversDisagree, dyn.TotalTime, exh.TotalTime)
			}
			fmt.Fprintln(out, th.Faint.Render("solvers agree"))
			return nil
		},
	}

	in.register(c)
	c.Flags().IntVarP(&budget, "budget", "b", 0, "dollars available")
	return c
}

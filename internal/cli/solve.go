package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ridetime/internal/logger"
	"github.com/katalvlaran/ridetime/maxtime"
	"github.com/katalvlaran/ridetime/report"
)

var errTableNeedsDynamic = errors.New("--table is only available with --algo dynamic")

func solveCmd(g *globalFlags) *cobra.Command {
	var in inputFlags
	var budget int
	var algo string
	var memory string
	var table bool

	c := &cobra.Command{
		Use:   "solve",
		Short: "Pick the rides with the most total minutes within a dollar budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, g, &in)
			if err != nil {
				return err
			}
			fl := cmd.Flags()
			if fl.Changed("budget") {
				cfg.Budget = budget
			}
			if fl.Changed("algo") {
				if cfg.Algorithm, err = maxtime.ParseAlgorithm(algo); err != nil {
					return fmt.Errorf("--algo %q: %w", algo, err)
				}
			}
			if fl.Changed("memory") {
				if cfg.MemoryMode, err = maxtime.ParseMemoryMode(memory); err != nil {
					return fmt.Errorf("--memory %q: %w", memory, err)
				}
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

			opts := maxtime.Options{Algo: cfg.Algorithm, MemoryMode: cfg.MemoryMode}
			if table {
				if opts.Algo != maxtime.AlgoDynamic {
					return errTableNeedsDynamic
				}
				opts.MemoryMode = maxtime.FullTable
				opts.ReturnTable = true
			}

			sol, err := maxtime.Solve(rides, cfg.Budget, &opts)
			if err != nil {
				return err
			}
			log.Info("solve.done",
				"algo", opts.Algo.String(),
				"budget", cfg.Budget,
				"rides_in", len(rides),
				"rides_out", len(sol.Rides),
				"total_cost", sol.TotalCost,
				"total_time", sol.TotalTime,
			)

			out := cmd.OutOrStdout()
			th := newTheme(out)
			fmt.Fprintln(out, th.Title.Render(fmt.Sprintf("%s solution, budget %d dollars", opts.Algo, cfg.Budget)))
			if err := report.PrintVector(out, sol.Rides); err != nil {
				return err
			}
			if table {
				return report.PrintTable(out, sol.Table)
			}
			return nil
		},
	}

	in.register(c)
	c.Flags().IntVarP(&budget, "budget", "b", 0, "dollars available")
	c.Flags().StringVar(&algo, "algo", "dynamic", "solver: dynamic|exhaustive")
	c.Flags().StringVar(&memory, "memory", "bits", "dynamic solver memory: bits|full")
	c.Flags().BoolVar(&table, "table", false, "print the DP table (dynamic only, small inputs)")
	return c
}

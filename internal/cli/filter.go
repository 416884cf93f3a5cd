package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ridetime/internal/logger"
	"github.com/katalvlaran/ridetime/report"
)

func filterCmd(g *globalFlags) *cobra.Command {
	var in inputFlags

	c := &cobra.Command{
		Use:   "filter",
		Short: "Print the rides that pass the time window and size cap",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, g, &in)
			if err != nil {
				return err
			}

			stop := startLogging(cmd, cfg)
			defer stop()

			rides, err := loadRides(cfg, logger.L())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			th := newTheme(out)
			fmt.Fprintln(out, th.Title.Render(fmt.Sprintf("%d rides", len(rides))))
			return report.PrintVector(out, rides)
		},
	}

	in.register(c)
	return c
}

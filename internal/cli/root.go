package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the ridetime command tree and exits with status 1 on error.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "ridetime",
		Short:        "Pick the rides that fill your day within a budget",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "YAML run configuration (flags override it)")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&g.logFile, "log-file", "", "write JSON logs to this file instead of stderr")

	cmd.AddCommand(
		solveCmd(g),
		filterCmd(g),
		compareCmd(g),
		versionCmd(),
	)
	return cmd
}

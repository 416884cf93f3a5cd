package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ridetime/catalog"
	"github.com/katalvlaran/ridetime/internal/config"
	"github.com/katalvlaran/ridetime/internal/logger"
	"github.com/katalvlaran/ridetime/ride"
)

var errNoDatabase = errors.New("no ride database given (use --db or database: in --config)")

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	debug      bool
	logFile    string
}

// inputFlags select and filter the ride database.
type inputFlags struct {
	db      string
	minTime float64
	maxTime float64
	limit   int
}

func (in *inputFlags) register(c *cobra.Command) {
	def := config.Default()
	c.Flags().StringVarP(&in.db, "db", "d", "", "ride database (description^cost^time)")
	c.Flags().Float64Var(&in.minTime, "min-time", def.Filter.MinTime, "keep rides with at least this many minutes")
	c.Flags().Float64Var(&in.maxTime, "max-time", def.Filter.MaxTime, "keep rides with at most this many minutes")
	c.Flags().IntVar(&in.limit, "limit", 0, "keep at most this many rides (0: no cap)")
}

// resolveConfig layers defaults, the --config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, g *globalFlags, in *inputFlags) (config.Config, error) {
	cfg := config.Default()
	if g.configPath != "" {
		var err error
		if cfg, err = config.Load(g.configPath); err != nil {
			return config.Config{}, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("debug") {
		cfg.Debug = g.debug
	}
	if fl.Changed("log-file") {
		cfg.LogFile = g.logFile
	}
	if in != nil {
		if fl.Changed("db") {
			cfg.Database = in.db
		}
		if fl.Changed("min-time") {
			cfg.Filter.MinTime = in.minTime
		}
		if fl.Changed("max-time") {
			cfg.Filter.MaxTime = in.maxTime
		}
		if fl.Changed("limit") {
			cfg.Filter.Limit = in.limit
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// startLogging installs the process logger for one command run.
func startLogging(cmd *cobra.Command, cfg config.Config) func() {
	lc := logger.Config{Path: cfg.LogFile, Debug: cfg.Debug}
	if cfg.LogFile == "" {
		lc.Writer = cmd.ErrOrStderr()
	}
	cleanup, err := logger.Setup(lc)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", err)
		return func() {}
	}
	if cfg.LogFile != "" && logger.IsReady() == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "logging to %s\n", logger.Path())
	}
	return func() { _ = cleanup() }
}

// loadRides loads cfg.Database and applies cfg.Filter.
func loadRides(cfg config.Config, log *slog.Logger) (ride.Vector, error) {
	if cfg.Database == "" {
		return nil, errNoDatabase
	}

	all, err := catalog.Load(cfg.Database, catalog.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.Info("catalog.loaded", "path", cfg.Database, "rides", len(all))

	limit := cfg.Filter.Limit
	if limit == 0 {
		limit = len(all)
	}
	picked := ride.Filter(all, cfg.Filter.MinTime, cfg.Filter.MaxTime, limit)
	log.Info("catalog.filtered",
		"min_time", cfg.Filter.MinTime,
		"max_time", cfg.Filter.MaxTime,
		"limit", limit,
		"rides", len(picked),
	)
	return picked, nil
}

package config

import (
	"errors"
	"strings"

	"github.com/katalvlaran/ridetime/maxtime"
)

func mapConfig(path string, yc yamlConfig) (Config, error) {
	cfg := Default()
	cfg.Database = strings.TrimSpace(yc.Database)
	cfg.Debug = yc.Debug
	cfg.LogFile = strings.TrimSpace(yc.LogFile)

	if yc.Budget != nil {
		cfg.Budget = *yc.Budget
	}

	algo, err := maxtime.ParseAlgorithm(strings.ToLower(strings.TrimSpace(yc.Algorithm)))
	if err != nil {
		return Config{}, invalidField(path, "algorithm", "want dynamic or exhaustive, got "+yc.Algorithm)
	}
	cfg.Algorithm = algo

	mode, err := maxtime.ParseMemoryMode(strings.ToLower(strings.TrimSpace(yc.MemoryMode)))
	if err != nil {
		return Config{}, invalidField(path, "memory", "want bits or full, got "+yc.MemoryMode)
	}
	cfg.MemoryMode = mode

	if f := yc.Filter; f != nil {
		if f.MinTime != nil {
			cfg.Filter.MinTime = *f.MinTime
		}
		if f.MaxTime != nil {
			cfg.Filter.MaxTime = *f.MaxTime
		}
		if f.Limit != nil {
			cfg.Filter.Limit = *f.Limit
		}
	}

	if err := cfg.Validate(); err != nil {
		var ce *Error
		if errors.As(err, &ce) {
			ce.Path = path
		}
		return Config{}, err
	}

	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ridetime/maxtime"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound = errors.New("config: not found")
	ErrInvalid  = errors.New("config: invalid")
)

// Error wraps an underlying error with operation context.
type Error struct {
	Op    string
	Path  string // optional: config file path
	Field string // optional: offending field
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := e.Op
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Field != "" {
		base += fmt.Sprintf(" field=%s", e.Field)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Filter mirrors ride.Filter arguments. Limit 0 means "no cap".
type Filter struct {
	MinTime float64
	MaxTime float64
	Limit   int
}

// Config is a validated run configuration.
type Config struct {
	Database   string
	Budget     int
	Algorithm  maxtime.Algorithm
	MemoryMode maxtime.MemoryMode
	Filter     Filter
	Debug      bool
	LogFile    string
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Algorithm:  maxtime.AlgoDynamic,
		MemoryMode: maxtime.ChoiceBits,
		Filter:     Filter{MinTime: 1, MaxTime: math.Inf(1)},
	}
}

// Load reads and validates a YAML config file. Unset keys keep Default values.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &Error{Op: "config.load", Path: path, Err: fmt.Errorf("%w: %w", ErrNotFound, err)}
	}

	var dto yamlConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Config{}, &Error{Op: "config.load", Path: path, Err: fmt.Errorf("%w: %w", ErrInvalid, err)}
	}

	return mapConfig(path, dto)
}

// Validate checks cross-field constraints of cfg.
func (c Config) Validate() error {
	switch {
	case c.Budget < 0:
		return invalidField("", "budget", "must be non-negative")
	case c.Filter.Limit < 0:
		return invalidField("", "filter.limit", "must be non-negative")
	case math.IsNaN(c.Filter.MinTime) || math.IsNaN(c.Filter.MaxTime):
		return invalidField("", "filter", "bounds must be numbers")
	case c.Filter.MinTime > c.Filter.MaxTime:
		return invalidField("", "filter", "min_time must not exceed max_time")
	}
	return nil
}

func invalidField(path, field, msg string) error {
	return &Error{Op: "config.validate", Path: path, Field: field, Err: fmt.Errorf("%w: %s", ErrInvalid, msg)}
}

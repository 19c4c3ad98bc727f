package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Validate checks value ranges and enumerations, reporting every problem at
// once rather than the first.
func Validate(cfg *Config) error {
	var errs []string

	c := cfg.Colony
	if c.EmployedBees < 1 {
		errs = append(errs, fmt.Sprintf("colony.employed_bees must be ≥ 1 (got %d)", c.EmployedBees))
	}
	if c.OnlookerBees < 0 {
		errs = append(errs, fmt.Sprintf("colony.onlooker_bees must be ≥ 0 (got %d)", c.OnlookerBees))
	}
	if c.ScoutThreshold < 1 {
		errs = append(errs, fmt.Sprintf("colony.scout_threshold must be ≥ 1 (got %d)", c.ScoutThreshold))
	}
	if c.PaletteSize < 1 {
		errs = append(errs, fmt.Sprintf("colony.palette_size must be ≥ 1 (got %d)", c.PaletteSize))
	}
	if c.MaxIterations < 0 {
		errs = append(errs, fmt.Sprintf("colony.max_iterations must be ≥ 0 (got %d)", c.MaxIterations))
	}
	if c.TimeLimit < 0 {
		errs = append(errs, fmt.Sprintf("colony.time_limit must be ≥ 0 (got %s)", c.TimeLimit))
	}

	if cfg.Trials.Count < 1 {
		errs = append(errs, fmt.Sprintf("trials.count must be ≥ 1 (got %d)", cfg.Trials.Count))
	}
	if cfg.Trials.Parallelism < 0 {
		errs = append(errs, fmt.Sprintf("trials.parallelism must be ≥ 0 (got %d)", cfg.Trials.Parallelism))
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", cfg.Log.Level))
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format %q is not text or json", cfg.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(errs, "\n  - "))
	}
	return nil
}

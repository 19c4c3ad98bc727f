package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/beecolor/abc"
	"github.com/katalvlaran/beecolor/trials"
)

// Config is the YAML file accepted by `beecolor --config`.
//
//	colony:
//	  employed_bees: 2
//	  onlooker_bees: 28
//	  scout_threshold: 5
//	  palette_size: 10000
//	  max_iterations: 0
//	  time_limit: 30s
//	  seed: 42
//	trials:
//	  count: 8
//	  parallelism: 4
//	  base_seed: 7
//	log:
//	  level: info
//	  format: text
//	  verbose: false
//	output:
//	  json: false
//	  metrics_file: ""
type Config struct {
	Colony ColonyConfig `yaml:"colony"`
	Trials TrialsConfig `yaml:"trials"`
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
}

// ColonyConfig mirrors abc.Options.
type ColonyConfig struct {
	EmployedBees   int           `yaml:"employed_bees"`
	OnlookerBees   int           `yaml:"onlooker_bees"`
	ScoutThreshold int           `yaml:"scout_threshold"`
	PaletteSize    int           `yaml:"palette_size"`
	MaxIterations  int           `yaml:"max_iterations"`
	TimeLimit      time.Duration `yaml:"time_limit"`
	Seed           int64         `yaml:"seed"`
}

// TrialsConfig mirrors trials.Options.
type TrialsConfig struct {
	Count       int   `yaml:"count"`
	Parallelism int   `yaml:"parallelism"`
	BaseSeed    int64 `yaml:"base_seed"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level   string `yaml:"level"`  // debug | info | warn | error
	Format  string `yaml:"format"` // text | json
	Verbose bool   `yaml:"verbose"`
}

// OutputConfig controls what the CLI writes besides the summary line.
type OutputConfig struct {
	JSON        bool   `yaml:"json"`
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Colony: ColonyConfig{
			EmployedBees:   abc.DefaultEmployedBees,
			OnlookerBees:   abc.DefaultOnlookerBees,
			ScoutThreshold: abc.DefaultScoutThreshold,
			PaletteSize:    abc.DefaultPaletteSize,
		},
		Trials: TrialsConfig{Count: 1, Parallelism: 0},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// ColonyOptions converts the colony section into abc options.
func (c Config) ColonyOptions() []abc.Option {
	return []abc.Option{
		abc.WithEmployedBees(c.Colony.EmployedBees),
		abc.WithOnlookerBees(c.Colony.OnlookerBees),
		abc.WithScoutThreshold(c.Colony.ScoutThreshold),
		abc.WithPaletteSize(c.Colony.PaletteSize),
		abc.WithMaxIterations(c.Colony.MaxIterations),
		abc.WithTimeLimit(c.Colony.TimeLimit),
		abc.WithSeed(c.Colony.Seed),
		abc.WithVerbose(c.Log.Verbose),
	}
}

// TrialOptions converts the trials section; the colony seed doubles as the
// base seed when base_seed is unset.
func (c Config) TrialOptions(logger *slog.Logger) trials.Options {
	base := c.Trials.BaseSeed
	if base == 0 {
		base = c.Colony.Seed
	}
	return trials.Options{
		Trials:      c.Trials.Count,
		Parallelism: c.Trials.Parallelism,
		BaseSeed:    base,
		Logger:      logger,
	}
}

// SlogLevel maps Log.Level onto slog; unknown names fall back to Info
// (Validate rejects them first).
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

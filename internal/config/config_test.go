package config_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beecolor/abc"
	"github.com/katalvlaran/beecolor/builder"
	"github.com/katalvlaran/beecolor/internal/config"
)

func TestParse_DefaultsSurviveOmittedKeys(t *testing.T) {
	cfg, err := config.Parse([]byte("colony:\n  seed: 9\n"))
	require.NoError(t, err)

	want := config.Default()
	want.Colony.Seed = 9
	assert.Equal(t, want, cfg)

	empty, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), empty)
}

func TestParse_ExplicitValues(t *testing.T) {
	src := `
colony:
  employed_bees: 3
  onlooker_bees: 0
  scout_threshold: 7
  palette_size: 50
  max_iterations: 100
  time_limit: 1500ms
trials:
  count: 4
  parallelism: 2
log:
  level: debug
  format: json
  verbose: true
output:
  json: true
  metrics_file: out.prom
`
	cfg, err := config.Parse([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Colony.EmployedBees)
	assert.Equal(t, 0, cfg.Colony.OnlookerBees, "explicit zero must not be replaced by the default")
	assert.Equal(t, 1500*time.Millisecond, cfg.Colony.TimeLimit)
	assert.Equal(t, 4, cfg.Trials.Count)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.True(t, cfg.Output.JSON)
	assert.Equal(t, "out.prom", cfg.Output.MetricsFile)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key": "colony:\n  employed: 2\n",
		"bad yaml":    "colony: [",
		"bad type":    "colony:\n  employed_bees: many\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(src))
			assert.Error(t, err)
		})
	}

	_, err := config.Parse([]byte("colony:\n  employed_bees: 0\n  palette_size: -1\nlog:\n  format: xml\n"))
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "colony.employed_bees")
	assert.Contains(t, err.Error(), "colony.palette_size")
	assert.Contains(t, err.Error(), "log.format")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beecolor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trials:\n  count: 3\n  base_seed: 5\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	to := cfg.TrialOptions(nil)
	assert.Equal(t, 3, to.Trials)
	assert.Equal(t, int64(5), to.BaseSeed)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestTrialOptions_SeedFallback(t *testing.T) {
	cfg := config.Default()
	cfg.Colony.Seed = 77
	assert.Equal(t, int64(77), cfg.TrialOptions(nil).BaseSeed)
}

// TestColonyOptions_Drive checks that the converted options reach abc.
func TestColonyOptions_Drive(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(10))
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Colony.EmployedBees = 1
	cfg.Colony.OnlookerBees = 0
	cfg.Colony.MaxIterations = 1

	res, err := abc.Solve(context.Background(), g, cfg.ColonyOptions()...)
	assert.ErrorIs(t, err, abc.ErrNotConverged)
	assert.Equal(t, 1, res.Iterations)
}

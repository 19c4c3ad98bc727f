package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beecolor/abc"
	"github.com/katalvlaran/beecolor/internal/config"
)

// execute runs the CLI with args and returns stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "beecolor dev\n", out)
}

func TestColor_GeneratedText(t *testing.T) {
	out, err := execute(t, "color", "--generate", "complete:4", "--seed", "3")
	require.NoError(t, err)
	assert.Equal(t, "Chromatic Number: 4\n", out)
}

func TestColor_MatrixMarketJSON(t *testing.T) {
	mtx := writeFile(t, "square.mtx", `%%MatrixMarket matrix coordinate pattern symmetric
4 4 4
2 1
3 2
4 3
4 1
`)
	out, err := execute(t, "color", "--mtx", mtx, "--employed", "2", "--onlookers", "4", "--json")
	require.NoError(t, err)

	var got summary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, mtx, got.Source)
	assert.Equal(t, 4, got.Vertices)
	assert.Equal(t, 4, got.Edges)
	assert.Len(t, got.Colors, 4)
	assert.LessOrEqual(t, got.ChromaticNumber, 3)
	assert.Len(t, got.RunID, 36)
}

func TestColor_Trials(t *testing.T) {
	out, err := execute(t, "color", "--generate", "cycle:9", "--trials", "4", "--parallel", "2",
		"--scout-threshold", "1000", "--json")
	require.NoError(t, err)

	var got summary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 4, got.Trials)
	assert.Zero(t, got.Failures)
	assert.GreaterOrEqual(t, got.BestTrial, 0)
	assert.Equal(t, 3, got.ChromaticNumber)
}

func TestColor_InputErrors(t *testing.T) {
	_, err := execute(t, "color")
	assert.ErrorIs(t, err, errNoInput)

	_, err = execute(t, "color", "--mtx", "a.mtx", "--generate", "cycle:3")
	assert.ErrorIs(t, err, errNoInput)

	_, err = execute(t, "color", "--generate", "torus:3")
	assert.Error(t, err)

	_, err = execute(t, "color", "--generate", "cycle:4", "--employed", "0")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

// TestColor_ConfigAndFlagPrecedence loads a config that cannot converge in one
// iteration, then lifts the budget from the command line.
func TestColor_ConfigAndFlagPrecedence(t *testing.T) {
	cfg := writeFile(t, "beecolor.yaml", `colony:
  employed_bees: 1
  onlooker_bees: 0
  max_iterations: 1
log:
  level: error
`)
	_, err := execute(t, "--config", cfg, "color", "--generate", "path:10")
	assert.ErrorIs(t, err, abc.ErrNotConverged)

	out, err := execute(t, "--config", cfg, "color", "--generate", "path:10", "--max-iterations", "0")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Chromatic Number: "), out)
}

func TestColor_MetricsOut(t *testing.T) {
	prom := filepath.Join(t.TempDir(), "beecolor.prom")
	_, err := execute(t, "color", "--generate", "grid:3x3", "--metrics-out", prom)
	require.NoError(t, err)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `beecolor_runs_total{status="ok"} 1`)
	assert.Contains(t, string(data), "beecolor_iterations_total")
}

// lockedBuffer is a bytes.Buffer safe for the watch goroutine and the test.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// TestRunColor_WatchReloadsLogger rewrites the config while watching and
// expects the new log format and level to take effect.
func TestRunColor_WatchReloadsLogger(t *testing.T) {
	path := writeFile(t, "beecolor.yaml", "log:\n  level: error\n  format: text\n")
	resolve := func() (config.Config, error) {
		cfg, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		return cfg, config.Validate(&cfg)
	}
	cfg, err := resolve()
	require.NoError(t, err)

	var out, errOut lockedBuffer
	cf := &colorFlags{generate: "cycle:4", watch: true}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runColor(ctx, &out, &errOut, cfg, cf, path, resolve) }()

	require.Eventually(t, func() bool { return strings.Contains(out.String(), "Chromatic Number") },
		3*time.Second, 10*time.Millisecond)
	// give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, errOut.String(), "error level hides info records")

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: info\n  format: json\n"), 0o600))
	assert.Eventually(t, func() bool { return strings.Contains(errOut.String(), `"msg":"config reloaded"`) },
		3*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("runColor did not return after cancel")
	}
}

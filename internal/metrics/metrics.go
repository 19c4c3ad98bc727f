// Package metrics records colony runs as Prometheus metrics.
//
// A Recorder owns a private registry so that tests and repeated CLI runs do
// not collide on the global one; the CLI dumps it in text exposition format
// with WriteTextfile (node_exporter textfile collector layout).
package metrics

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/beecolor/abc"
)

// Run status label values.
const (
	StatusOK           = "ok"
	StatusNotConverged = "not_converged"
	StatusOverflow     = "palette_overflow"
	StatusCancelled    = "cancelled"
	StatusError        = "error"
)

// Recorder is safe for concurrent use; its hooks may be shared by parallel trials.
type Recorder struct {
	reg *prometheus.Registry

	Iterations      prometheus.Counter
	Scouts          prometheus.Counter
	Runs            *prometheus.CounterVec
	ChromaticNumber prometheus.Gauge
	Duration        prometheus.Histogram
}

// NewRecorder registers the beecolor metrics on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		Iterations: f.NewCounter(prometheus.CounterOpts{
			Name: "beecolor_iterations_total",
			Help: "Total number of colony iterations across all runs.",
		}),
		Scouts: f.NewCounter(prometheus.CounterOpts{
			Name: "beecolor_scout_activations_total",
			Help: "Total number of scout bee activations across all runs.",
		}),
		Runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "beecolor_runs_total",
			Help: "Total number of colony runs, labelled by outcome.",
		}, []string{"status"}),
		ChromaticNumber: f.NewGauge(prometheus.GaugeOpts{
			Name: "beecolor_chromatic_number",
			Help: "Distinct colors used by the most recent successful run.",
		}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "beecolor_run_duration_seconds",
			Help:    "Wall-clock duration of a colony run.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
	}
}

// Registry exposes the private registry, e.g. for promhttp or testutil.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Hooks returns abc options that count iterations and scout activations.
func (r *Recorder) Hooks() []abc.Option {
	return []abc.Option{
		abc.WithOnIteration(func(abc.IterationStats) { r.Iterations.Inc() }),
		abc.WithOnScout(func(string, abc.Color) { r.Scouts.Inc() }),
	}
}

// Observe records the outcome of one finished run.
func (r *Recorder) Observe(res abc.Result, err error) {
	r.Runs.WithLabelValues(Status(err)).Inc()
	r.Duration.Observe(res.Elapsed.Seconds())
	if err == nil {
		r.ChromaticNumber.Set(float64(res.ChromaticNumber))
	}
}

// Status maps a run error onto the status label.
func Status(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, abc.ErrNotConverged):
		return StatusNotConverged
	case errors.Is(err, abc.ErrPaletteOverflow):
		return StatusOverflow
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return StatusCancelled
	default:
		return StatusError
	}
}

// WriteTextfile writes every metric to path in text exposition format,
// atomically (temp file + rename).
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}

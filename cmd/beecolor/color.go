package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/beecolor/abc"
	"github.com/katalvlaran/beecolor/builder"
	"github.com/katalvlaran/beecolor/core"
	"github.com/katalvlaran/beecolor/internal/config"
	"github.com/katalvlaran/beecolor/internal/metrics"
	"github.com/katalvlaran/beecolor/internal/watch"
	"github.com/katalvlaran/beecolor/matrix"
	"github.com/katalvlaran/beecolor/trials"
)

var errNoInput = errors.New("exactly one of --mtx or --generate is required")

// colorFlags hold the raw flag values; only flags the user set override the
// configuration file.
type colorFlags struct {
	mtx        string
	generate   string
	employed   int
	onlookers  int
	threshold  int
	palette    int
	maxIter    int
	timeLimit  time.Duration
	seed       int64
	trials     int
	parallel   int
	jsonOut    bool
	metricsOut string
	verbose    bool
	watch      bool
}

func newColorCmd(rf *rootFlags) *cobra.Command {
	cf := &colorFlags{}
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Color a graph loaded from a Matrix Market file or generated on the fly",
		Example: `  beecolor color --mtx johnson8-2-4.mtx
  beecolor color --generate grid:10x10 --trials 8 --json
  beecolor color --generate random:200,0.05 --seed 7 --metrics-out run.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (cf.mtx == "") == (cf.generate == "") {
				return errNoInput
			}
			resolve := func() (config.Config, error) {
				cfg, err := rf.loadConfig()
				if err != nil {
					return config.Config{}, err
				}
				cf.apply(cmd, &cfg)
				if err = config.Validate(&cfg); err != nil {
					return config.Config{}, err
				}
				return cfg, nil
			}
			cfg, err := resolve()
			if err != nil {
				return err
			}
			return runColor(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, cf, rf.configPath, resolve)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cf.mtx, "mtx", "", "Matrix Market (.mtx) file with the adjacency matrix")
	f.StringVar(&cf.generate, "generate", "", "generated graph, e.g. cycle:9, complete:5, bipartite:3,4, grid:4x4, random:100,0.1")
	f.IntVar(&cf.employed, "employed", abc.DefaultEmployedBees, "employed bees per iteration")
	f.IntVar(&cf.onlookers, "onlookers", abc.DefaultOnlookerBees, "onlooker bees per iteration")
	f.IntVar(&cf.threshold, "scout-threshold", abc.DefaultScoutThreshold, "visits before a scout recolors a vertex")
	f.IntVar(&cf.palette, "palette", abc.DefaultPaletteSize, "maximum number of colors")
	f.IntVar(&cf.maxIter, "max-iterations", 0, "iteration budget (0 = unlimited)")
	f.DurationVar(&cf.timeLimit, "time-limit", 0, "wall-clock budget per run (0 = unlimited)")
	f.Int64Var(&cf.seed, "seed", 0, "random seed (0 = fixed default)")
	f.IntVar(&cf.trials, "trials", 1, "independent seeded runs; the best is reported")
	f.IntVar(&cf.parallel, "parallel", 0, "concurrent trials (0 = GOMAXPROCS)")
	f.BoolVar(&cf.jsonOut, "json", false, "print the result as JSON")
	f.StringVar(&cf.metricsOut, "metrics-out", "", "write Prometheus metrics to this file")
	f.BoolVarP(&cf.verbose, "verbose", "v", false, "log every iteration")
	f.BoolVar(&cf.watch, "watch", false, "recolor whenever the input or config file changes")

	return cmd
}

// apply overlays the flags the user set explicitly.
func (cf *colorFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	set := func(name string, fn func()) {
		if f.Changed(name) {
			fn()
		}
	}
	set("employed", func() { cfg.Colony.EmployedBees = cf.employed })
	set("onlookers", func() { cfg.Colony.OnlookerBees = cf.onlookers })
	set("scout-threshold", func() { cfg.Colony.ScoutThreshold = cf.threshold })
	set("palette", func() { cfg.Colony.PaletteSize = cf.palette })
	set("max-iterations", func() { cfg.Colony.MaxIterations = cf.maxIter })
	set("time-limit", func() { cfg.Colony.TimeLimit = cf.timeLimit })
	set("seed", func() { cfg.Colony.Seed = cf.seed })
	set("trials", func() { cfg.Trials.Count = cf.trials })
	set("parallel", func() { cfg.Trials.Parallelism = cf.parallel })
	set("json", func() { cfg.Output.JSON = cf.jsonOut })
	set("metrics-out", func() { cfg.Output.MetricsFile = cf.metricsOut })
	set("verbose", func() { cfg.Log.Verbose = cf.verbose })
}

// runColor colors once, then again on every input change when --watch is set.
// A change to the config file re-resolves the configuration through resolve,
// so command-line flags keep overriding the file, and rebuilds the logger
// from the new log section.
func runColor(ctx context.Context, out, errOut io.Writer, cfg config.Config, cf *colorFlags,
	configPath string, resolve func() (config.Config, error)) error {
	log := newLogger(errOut, cfg.Log)
	once := func() error {
		g, source, err := loadGraph(cf, cfg.Colony.Seed)
		if err != nil {
			return err
		}
		return colorGraph(ctx, out, log, cfg, g, source)
	}

	err := once()
	if !cf.watch {
		return err
	}
	if err != nil {
		log.Error("coloring failed", "err", err)
	}

	var paths []string
	if cf.mtx != "" {
		paths = append(paths, cf.mtx)
	}
	if configPath != "" {
		paths = append(paths, configPath)
	}
	if len(paths) == 0 {
		return errors.New("--watch needs --mtx or --config")
	}
	log.Info("watching for changes", "paths", paths)

	return watch.Files(ctx, paths, watch.DefaultDebounce, func(changed string) {
		log.Info("input changed", "path", changed)
		if configPath != "" && sameFile(changed, configPath) {
			next, err := resolve()
			if err != nil {
				log.Error("reload config", "err", err)
				return
			}
			cfg = next
			log = newLogger(errOut, cfg.Log)
			log.Info("config reloaded", "path", changed, "level", cfg.Log.Level, "format", cfg.Log.Format)
		}
		if err := once(); err != nil {
			log.Error("coloring failed", "err", err)
		}
	})
}

// loadGraph reads --mtx or builds --generate.
func loadGraph(cf *colorFlags, seed int64) (*core.Graph, string, error) {
	if cf.mtx != "" {
		sp, err := matrix.LoadMarketFile(cf.mtx)
		if err != nil {
			return nil, "", err
		}
		g, err := sp.ToGraph()
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", cf.mtx, err)
		}
		return g, cf.mtx, nil
	}

	con, err := builder.Parse(cf.generate)
	if err != nil {
		return nil, "", err
	}
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, con)
	if err != nil {
		return nil, "", err
	}
	return g, cf.generate, nil
}

// summary is the --json document.
type summary struct {
	RunID            string               `json:"run_id"`
	Source           string               `json:"source"`
	Vertices         int                  `json:"vertices"`
	Edges            int                  `json:"edges"`
	ChromaticNumber  int                  `json:"chromatic_number"`
	ColorsIntroduced int                  `json:"colors_introduced"`
	Iterations       int                  `json:"iterations"`
	Scouts           int                  `json:"scouts"`
	ElapsedMS        float64              `json:"elapsed_ms"`
	Trials           int                  `json:"trials"`
	Failures         int                  `json:"failures"`
	BestTrial        int                  `json:"best_trial"`
	Colors           map[string]abc.Color `json:"colors"`
}

// colorGraph runs one coloring (or a batch of trials) and prints the outcome.
func colorGraph(ctx context.Context, out io.Writer, log *slog.Logger, cfg config.Config, g *core.Graph, source string) error {
	rec := metrics.NewRecorder()
	opts := append(cfg.ColonyOptions(), abc.WithLogger(log))
	opts = append(opts, rec.Hooks()...)

	sum := summary{
		Source:   source,
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
		Trials:   cfg.Trials.Count,
	}
	log.Info("graph loaded", "source", source, "vertices", sum.Vertices, "edges", sum.Edges)

	var (
		res    abc.Result
		runErr error
	)
	if cfg.Trials.Count > 1 {
		rep, err := trials.Run(ctx, g, cfg.TrialOptions(log), opts...)
		for _, tr := range rep.Trials {
			rec.Observe(tr.Result, tr.Err)
		}
		res, runErr = rep.Best, err
		sum.RunID, sum.Failures, sum.BestTrial = rep.RunID, rep.Failures, rep.BestIndex
	} else {
		res, runErr = abc.Solve(ctx, g, opts...)
		rec.Observe(res, runErr)
		sum.RunID = uuid.New().String()
	}

	if cfg.Output.MetricsFile != "" {
		if err := rec.WriteTextfile(cfg.Output.MetricsFile); err != nil {
			log.Error("metrics not written", "err", err)
		}
	}
	if runErr != nil {
		return runErr
	}
	if err := abc.Verify(g, res.Colors); err != nil {
		return err
	}

	sum.ChromaticNumber = res.ChromaticNumber
	sum.ColorsIntroduced = res.ColorsIntroduced
	sum.Iterations = res.Iterations
	sum.Scouts = res.Scouts
	sum.ElapsedMS = float64(res.Elapsed.Microseconds()) / 1000
	sum.Colors = res.Colors
	log.Info("coloring finished", "run_id", sum.RunID, "chromatic_number", sum.ChromaticNumber,
		"iterations", sum.Iterations, "scouts", sum.Scouts)

	if cfg.Output.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	}
	_, err := fmt.Fprintln(out, "Chromatic Number:", sum.ChromaticNumber)
	return err
}

// sameFile compares two paths after making them absolute.
func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

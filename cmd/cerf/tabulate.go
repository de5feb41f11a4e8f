// Copyright 2025 go-faddeeva Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-faddeeva/contrib/batch"
	"github.com/ajroetker/go-faddeeva/contrib/workerpool"
)

const (
	defaultAxisPoints = 101
	shutdownTimeout   = 5 * time.Second
)

// Axis is an evenly spaced range of N points from Min to Max inclusive.
type Axis struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
	N   int     `yaml:"n"`
}

// Points returns the axis sample points.
func (a Axis) Points() []float64 {
	if a.N == 1 {
		return []float64{a.Min}
	}
	pts := make([]float64, a.N)
	step := (a.Max - a.Min) / float64(a.N-1)
	for i := range pts {
		pts[i] = a.Min + float64(i)*step
	}
	pts[a.N-1] = a.Max
	return pts
}

func (a Axis) validate(name string) error {
	if a.N < 1 {
		return fmt.Errorf("%s.n must be at least 1, got %d", name, a.N)
	}
	if a.N > 1 && !(a.Min < a.Max) {
		return fmt.Errorf("%s: min (%v) must be below max (%v)", name, a.Min, a.Max)
	}
	return nil
}

// TabulateConfig describes a grid evaluation. It can be read from YAML;
// command-line flags override file values.
type TabulateConfig struct {
	Function    string `yaml:"function"`
	Real        bool   `yaml:"real"`
	Re          Axis   `yaml:"re"`
	Im          Axis   `yaml:"im"`
	BatchSize   int    `yaml:"batch_size"`
	Output      string `yaml:"output"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// DefaultTabulateConfig returns the configuration used when neither a file
// nor flags say otherwise.
func DefaultTabulateConfig() *TabulateConfig {
	return &TabulateConfig{
		Function:  defaultFunction,
		Re:        Axis{Min: -5, Max: 5, N: defaultAxisPoints},
		Im:        Axis{Min: 0, Max: 0, N: 1},
		BatchSize: batch.DefaultBatchSize,
	}
}

// Validate checks the configuration for values the grid cannot use.
func (c *TabulateConfig) Validate() error {
	if _, err := batch.Lookup(c.Function); err != nil {
		return err
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("batch_size must be positive, got %d", c.BatchSize)
	}
	if err := c.Re.validate("re"); err != nil {
		return err
	}
	if c.Real {
		return nil
	}
	return c.Im.validate("im")
}

// loadTabulateConfig reads a YAML file on top of the defaults. Unknown keys
// are rejected.
func loadTabulateConfig(path string) (*TabulateConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	defer f.Close()

	config := DefaultTabulateConfig()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return config, nil
}

type tabulateFlags struct {
	config string
	cfg    TabulateConfig
}

func newTabulateCmd(opts *rootOptions) *cobra.Command {
	flags := &tabulateFlags{cfg: *DefaultTabulateConfig()}

	cmd := &cobra.Command{
		Use:   "tabulate",
		Short: "Evaluate a function over a grid and write a TSV table",
		Long: `Evaluate a function over an evenly spaced grid of the complex plane, or of
the real line with --real, and write one tab-separated row per point.

Rows hold "re im Re(f) Im(f)" for complex grids and "x f(x)" for real ones.
The grid can be described in a YAML file:

  function: erfcx
  re: {min: -5, max: 5, n: 201}
  im: {min: 0, max: 3, n: 31}
  output: erfcx.tsv

Flags given on the command line override values from the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runTabulate(ctx, config, opts, cmd.OutOrStdout())
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&flags.config, "config", "c", "", "Path to configuration file (YAML)")
	addFunctionFlags(fs, &flags.cfg.Function, &flags.cfg.Real)
	fs.Float64Var(&flags.cfg.Re.Min, "re-min", flags.cfg.Re.Min, "Lowest real part (or x with --real)")
	fs.Float64Var(&flags.cfg.Re.Max, "re-max", flags.cfg.Re.Max, "Highest real part")
	fs.IntVar(&flags.cfg.Re.N, "re-n", flags.cfg.Re.N, "Number of real-part samples")
	fs.Float64Var(&flags.cfg.Im.Min, "im-min", flags.cfg.Im.Min, "Lowest imaginary part")
	fs.Float64Var(&flags.cfg.Im.Max, "im-max", flags.cfg.Im.Max, "Highest imaginary part")
	fs.IntVar(&flags.cfg.Im.N, "im-n", flags.cfg.Im.N, "Number of imaginary-part samples")
	fs.IntVar(&flags.cfg.BatchSize, "batch-size", flags.cfg.BatchSize, "Points per work item")
	fs.StringVarP(&flags.cfg.Output, "output", "o", "", "Output file (default stdout)")
	fs.StringVar(&flags.cfg.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while running")
	return cmd
}

// resolve merges defaults, the config file and explicitly set flags, in
// increasing order of precedence.
func (t *tabulateFlags) resolve(cmd *cobra.Command) (*TabulateConfig, error) {
	config := DefaultTabulateConfig()
	if t.config != "" {
		var err error
		if config, err = loadTabulateConfig(t.config); err != nil {
			return nil, err
		}
	}

	fs := cmd.Flags()
	overrides := []struct {
		flag  string
		apply func()
	}{
		{"func", func() { config.Function = t.cfg.Function }},
		{"real", func() { config.Real = t.cfg.Real }},
		{"re-min", func() { config.Re.Min = t.cfg.Re.Min }},
		{"re-max", func() { config.Re.Max = t.cfg.Re.Max }},
		{"re-n", func() { config.Re.N = t.cfg.Re.N }},
		{"im-min", func() { config.Im.Min = t.cfg.Im.Min }},
		{"im-max", func() { config.Im.Max = t.cfg.Im.Max }},
		{"im-n", func() { config.Im.N = t.cfg.Im.N }},
		{"batch-size", func() { config.BatchSize = t.cfg.BatchSize }},
		{"output", func() { config.Output = t.cfg.Output }},
		{"metrics-addr", func() { config.MetricsAddr = t.cfg.MetricsAddr }},
	}
	for _, o := range overrides {
		if fs.Changed(o.flag) {
			o.apply()
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tabulate configuration: %w", err)
	}
	return config, nil
}

func runTabulate(ctx context.Context, config *TabulateConfig, opts *rootOptions, stdout io.Writer) error {
	logger := opts.logger.WithFields(log.Fields{
		"function": config.Function,
		"run_id":   uuid.NewString(),
	})

	f, err := batch.Lookup(config.Function)
	if err != nil {
		return err
	}

	metrics := batch.NewMetrics()
	if config.MetricsAddr != "" {
		shutdown, err := serveMetrics(config.MetricsAddr, metrics, logger)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	tp, flush, err := setupTracing(ctx, opts.otlpEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := flush(context.Background()); err != nil {
			logger.WithError(err).Warn("trace flush")
		}
	}()

	pool := workerpool.New(opts.workers)
	defer pool.Close()
	eval := batch.NewEvaluator(pool,
		batch.WithMetrics(metrics),
		batch.WithLogger(logger),
		batch.WithTracerProvider(tp),
		batch.WithBatchSize(config.BatchSize),
	)

	out := stdout
	if config.Output != "" {
		file, err := os.Create(config.Output)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer file.Close()
		out = file
	}
	w := bufio.NewWriter(out)

	begin := time.Now()
	xs := config.Re.Points()
	var points int
	if config.Real {
		points = len(xs)
		ys := make([]float64, len(xs))
		if err := eval.TransformReal(ctx, f, xs, ys); err != nil {
			return err
		}
		fmt.Fprintf(w, "# x\t%s(x)\n", f.Name)
		for i, x := range xs {
			fmt.Fprintf(w, "%s\t%s\n", formatFloat(x), formatFloat(ys[i]))
		}
	} else {
		ims := config.Im.Points()
		points = len(xs) * len(ims)
		in := make([]complex128, 0, points)
		for _, y := range ims {
			for _, x := range xs {
				in = append(in, complex(x, y))
			}
		}
		res := make([]complex128, len(in))
		if err := eval.Transform(ctx, f, in, res); err != nil {
			return err
		}
		fmt.Fprintf(w, "# re\tim\tre_%[1]s\tim_%[1]s\n", f.Name)
		for i, z := range in {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				formatFloat(real(z)), formatFloat(imag(z)),
				formatFloat(real(res[i])), formatFloat(imag(res[i])))
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.WithFields(log.Fields{
		"points":  points,
		"elapsed": time.Since(begin),
		"workers": pool.NumWorkers(),
	}).Info("tabulated grid")
	return nil
}

// serveMetrics starts an HTTP server exposing metrics at /metrics. The
// returned function shuts it down.
func serveMetrics(addr string, metrics *batch.Metrics, logger log.FieldLogger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{
		Handler:           otelhttp.NewHandler(mux, "cerf.metrics"),
		ReadHeaderTimeout: shutdownTimeout,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("metrics server failed")
		}
	}()
	logger.WithField("addr", ln.Addr().String()).Info("serving metrics")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.WithError(err).Warn("metrics server shutdown")
		}
	}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

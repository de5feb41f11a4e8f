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

package batch

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ajroetker/go-faddeeva/contrib/workerpool"
	"github.com/ajroetker/go-faddeeva/faddeeva"
)

// DefaultBatchSize is the number of elements a worker takes at a time.
const DefaultBatchSize = 256

const tracerName = "github.com/ajroetker/go-faddeeva/contrib/batch"

// Evaluator runs transforms over a worker pool, recording metrics, spans
// and debug logs for each call.
type Evaluator struct {
	pool      *workerpool.Pool
	metrics   *Metrics
	logger    log.FieldLogger
	tracer    trace.Tracer
	batchSize int
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithMetrics makes the evaluator record into m.
func WithMetrics(m *Metrics) Option {
	return func(e *Evaluator) { e.metrics = m }
}

// WithLogger sets the logger for per-transform debug output.
func WithLogger(l log.FieldLogger) Option {
	return func(e *Evaluator) { e.logger = l }
}

// WithTracerProvider sets where transform spans go. The default is the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Evaluator) { e.tracer = tp.Tracer(tracerName) }
}

// WithBatchSize sets the work-stealing granularity. Values <= 0 select
// DefaultBatchSize.
func WithBatchSize(n int) Option {
	return func(e *Evaluator) {
		if n <= 0 {
			n = DefaultBatchSize
		}
		e.batchSize = n
	}
}

// NewEvaluator returns an evaluator running on pool. A nil pool evaluates on
// the calling goroutine. The pool is not closed by the evaluator.
func NewEvaluator(pool *workerpool.Pool, opts ...Option) *Evaluator {
	discard := log.New()
	discard.SetOutput(io.Discard)

	e := &Evaluator{
		pool:      pool,
		logger:    discard,
		tracer:    otel.Tracer(tracerName),
		batchSize: DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// parallel runs fn over [0, n) in batches, stopping early if ctx is done.
func (e *Evaluator) parallel(ctx context.Context, n int, fn func(start, end int)) error {
	if e.pool != nil {
		return e.pool.ParallelForContext(ctx, n, e.batchSize, fn)
	}
	for start := 0; start < n; start += e.batchSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(start, min(start+e.batchSize, n))
	}
	return nil
}

// Transform stores f.Complex(input[i]) in output[i] for every element of
// input. If ctx is canceled part of output may be left unwritten.
func (e *Evaluator) Transform(ctx context.Context, f Func, input, output []complex128) (err error) {
	ctx, span := e.startSpan(ctx, "batch.Transform", f.Name, len(input))
	defer func() { endSpan(span, err) }()

	if len(output) < len(input) {
		return fmt.Errorf("%s: %w: %d < %d", f.Name, ErrLengthMismatch, len(output), len(input))
	}

	tally := e.metrics != nil && f.WArg != nil
	var (
		mu     sync.Mutex
		counts [faddeeva.NumRegions]int
	)

	begin := time.Now()
	err = e.parallel(ctx, len(input), func(start, end int) {
		for i := start; i < end; i++ {
			output[i] = f.Complex(input[i])
		}
		if !tally {
			return
		}
		var local [faddeeva.NumRegions]int
		for i := start; i < end; i++ {
			local[faddeeva.Classify(f.WArg(input[i]))]++
		}
		mu.Lock()
		for r, n := range local {
			counts[r] += n
		}
		mu.Unlock()
	})
	if err != nil {
		return fmt.Errorf("%s transform: %w", f.Name, err)
	}

	e.finish(f.Name, len(input), time.Since(begin))
	if tally {
		e.metrics.RecordRegions(&counts)
	}
	return nil
}

// TransformReal stores f.Real(input[i]) in output[i] for every element of
// input.
func (e *Evaluator) TransformReal(ctx context.Context, f Func, input, output []float64) (err error) {
	ctx, span := e.startSpan(ctx, "batch.TransformReal", f.Name, len(input))
	defer func() { endSpan(span, err) }()

	if len(output) < len(input) {
		return fmt.Errorf("%s: %w: %d < %d", f.Name, ErrLengthMismatch, len(output), len(input))
	}

	begin := time.Now()
	err = e.parallel(ctx, len(input), func(start, end int) {
		for i := start; i < end; i++ {
			output[i] = f.Real(input[i])
		}
	})
	if err != nil {
		return fmt.Errorf("%s real transform: %w", f.Name, err)
	}

	e.finish(f.Name, len(input), time.Since(begin))
	return nil
}

func (e *Evaluator) finish(name string, n int, elapsed time.Duration) {
	if e.metrics != nil {
		e.metrics.RecordBatch(name, n, elapsed)
	}
	e.logger.WithFields(log.Fields{
		"function": name,
		"n":        n,
		"elapsed":  elapsed,
	}).Debug("batch evaluated")
}

func (e *Evaluator) startSpan(ctx context.Context, name, function string, n int) (context.Context, trace.Span) {
	return e.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("faddeeva.function", function),
		attribute.Int("faddeeva.points", n),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

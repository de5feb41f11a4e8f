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
	stdmath "math"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/ajroetker/go-faddeeva/contrib/workerpool"
	"github.com/ajroetker/go-faddeeva/faddeeva"
)

func TestEvaluatorTransform(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	in := sampleInput(1000)
	for _, name := range Names() {
		f, err := Lookup(name)
		require.NoError(t, err)

		for _, e := range []*Evaluator{
			NewEvaluator(pool, WithBatchSize(7)),
			NewEvaluator(nil),
		} {
			out := make([]complex128, len(in))
			require.NoError(t, e.Transform(context.Background(), f, in, out))
			for i, z := range in {
				require.Equal(t, f.Complex(z), out[i], "%s(%v)", name, z)
			}
		}
	}
}

func TestEvaluatorTransformReal(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	in := make([]float64, 500)
	for i := range in {
		in[i] = float64(i)/10 - 25
	}
	e := NewEvaluator(pool, WithBatchSize(16))
	for _, name := range Names() {
		f, err := Lookup(name)
		require.NoError(t, err)
		out := make([]float64, len(in))
		require.NoError(t, e.TransformReal(context.Background(), f, in, out))
		for i, x := range in {
			require.Equal(t, f.Real(x), out[i], "%s(%v)", name, x)
		}
	}
}

func TestEvaluatorLengthMismatch(t *testing.T) {
	e := NewEvaluator(nil)
	f, err := Lookup("erf")
	require.NoError(t, err)

	err = e.Transform(context.Background(), f, make([]complex128, 5), make([]complex128, 4))
	require.ErrorIs(t, err, ErrLengthMismatch)
	assert.True(t, strings.HasPrefix(err.Error(), "erf:"))

	err = e.TransformReal(context.Background(), f, make([]float64, 5), nil)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestEvaluatorCanceled(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewMetrics()
	f, err := Lookup("w")
	require.NoError(t, err)
	in := sampleInput(100)
	for _, e := range []*Evaluator{
		NewEvaluator(pool, WithMetrics(m)),
		NewEvaluator(nil, WithMetrics(m)),
	} {
		err := e.Transform(ctx, f, in, make([]complex128, len(in)))
		require.ErrorIs(t, err, context.Canceled)
	}
	// Nothing is recorded for an aborted transform.
	assert.Equal(t, 0, testutil.CollectAndCount(m.evaluations))
}

func TestEvaluatorMetrics(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	m := NewMetrics()
	e := NewEvaluator(pool, WithMetrics(m), WithBatchSize(10))

	in := []complex128{
		0.01 + 0.02i, // series
		3 + 2i,       // rational
		1e-5 + 1i,    // rational-imag-axis
		12 + 1e-12i,  // rational-real-tail
		100 + 1i,     // continued-fraction
		2,            // real-axis
		2i,           // imag-axis
		complex(stdmath.Inf(1), 1),
	}
	var want [faddeeva.NumRegions]int
	for _, z := range in {
		want[faddeeva.Classify(z)]++
	}
	for r, n := range want {
		require.Equal(t, 1, n, faddeeva.Region(r).String())
	}

	w, err := Lookup("w")
	require.NoError(t, err)
	require.NoError(t, e.Transform(context.Background(), w, in, make([]complex128, len(in))))

	for r := range faddeeva.NumRegions {
		name := faddeeva.Region(r).String()
		assert.Equal(t, 1.0, testutil.ToFloat64(m.regions.WithLabelValues(name)), name)
	}
	assert.Equal(t, float64(len(in)), testutil.ToFloat64(m.evaluations.WithLabelValues("w")))

	// erf has no region mapping, so only the evaluation count moves.
	erf, err := Lookup("erf")
	require.NoError(t, err)
	require.NoError(t, e.TransformReal(context.Background(), erf, []float64{1, 2, 3}, make([]float64, 3)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.evaluations.WithLabelValues("erf")))
	assert.Equal(t, faddeeva.NumRegions, testutil.CollectAndCount(m.regions))
	assert.Equal(t, 2, testutil.CollectAndCount(m.batchDuration))
}

// erfcx(z) = w(iz), so its tallies follow the rotated argument.
func TestEvaluatorErfcxRegions(t *testing.T) {
	m := NewMetrics()
	e := NewEvaluator(nil, WithMetrics(m))
	f, err := Lookup("erfcx")
	require.NoError(t, err)

	// iz is on the imaginary axis for real z.
	in := []complex128{1, 2, 3}
	require.NoError(t, e.Transform(context.Background(), f, in, make([]complex128, len(in))))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.regions.WithLabelValues(faddeeva.RegionImagAxis.String())))
	assert.Equal(t, 1, testutil.CollectAndCount(m.regions))
}

func TestEvaluatorLogging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	e := NewEvaluator(nil, WithLogger(logger))
	f, err := Lookup("dawson")
	require.NoError(t, err)
	require.NoError(t, e.Transform(context.Background(), f, sampleInput(20), make([]complex128, 20)))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, log.DebugLevel, entry.Level)
	assert.Equal(t, "dawson", entry.Data["function"])
	assert.Equal(t, 20, entry.Data["n"])
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics()
	m.RecordBatch("w", 12, 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `faddeeva_evaluations_total{function="w"} 12`)
	assert.Contains(t, body, "faddeeva_batch_duration_seconds_bucket")
	assert.NotNil(t, m.Registry())
}

func TestEvaluatorTracing(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer func() { require.NoError(t, tp.Shutdown(context.Background())) }()

	e := NewEvaluator(nil, WithTracerProvider(tp))
	f, err := Lookup("erfi")
	require.NoError(t, err)
	require.NoError(t, e.Transform(context.Background(), f, sampleInput(30), make([]complex128, 30)))
	require.Error(t, e.TransformReal(context.Background(), f, make([]float64, 2), nil))

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "batch.Transform", spans[0].Name())
	attrs := attribute.NewSet(spans[0].Attributes()...)
	fn, ok := attrs.Value("faddeeva.function")
	require.True(t, ok)
	assert.Equal(t, "erfi", fn.AsString())
	n, ok := attrs.Value("faddeeva.points")
	require.True(t, ok)
	assert.Equal(t, int64(30), n.AsInt64())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)

	assert.Equal(t, "batch.TransformReal", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Contains(t, spans[1].Status().Description, "output shorter than input")
}

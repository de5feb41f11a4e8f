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
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ajroetker/go-faddeeva/faddeeva"
)

// Metrics holds the Prometheus collectors for batch evaluation. Each
// instance owns its registry, so several evaluators can coexist in a process
// or a test binary.
type Metrics struct {
	evaluations   *prometheus.CounterVec
	regions       *prometheus.CounterVec
	batchDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewMetrics creates and registers the batch metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "faddeeva_evaluations_total",
				Help: "Total number of function evaluations by function",
			},
			[]string{"function"},
		),

		regions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "faddeeva_region_total",
				Help: "Total number of Faddeeva evaluations by algorithm region",
			},
			[]string{"region"},
		),

		batchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "faddeeva_batch_duration_seconds",
				Help:    "Wall time of one batch transform in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 12),
			},
			[]string{"function"},
		),

		registry: registry,
	}

	registry.MustRegister(
		m.evaluations,
		m.regions,
		m.batchDuration,
	)

	return m
}

// RecordBatch records one finished transform of n elements.
func (m *Metrics) RecordBatch(function string, n int, duration time.Duration) {
	m.evaluations.WithLabelValues(function).Add(float64(n))
	m.batchDuration.WithLabelValues(function).Observe(duration.Seconds())
}

// RecordRegions adds per-region evaluation counts, indexed by
// faddeeva.Region.
func (m *Metrics) RecordRegions(counts *[faddeeva.NumRegions]int) {
	for r, n := range counts {
		if n > 0 {
			m.regions.WithLabelValues(faddeeva.Region(r).String()).Add(float64(n))
		}
	}
}

// Handler returns an HTTP handler serving the metrics in the Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

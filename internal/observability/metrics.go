// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package observability holds the Prometheus metrics of the server and the
// handler exposing them.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "taxconf"

// fallbackRoute labels requests that matched no explicit route. Static asset
// paths land here; labelling them by path would make the series unbounded.
const fallbackRoute = "fallback"

// Metrics collects the Prometheus metrics of the application in a private
// registry. All methods are safe to call on a nil *Metrics, which turns them
// into no-ops.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	configReads     *prometheus.CounterVec
	configWrites    *prometheus.CounterVec
	assetLookups    *prometheus.CounterVec
}

// NewMetrics initialises the registry together with the Go runtime and
// process collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Number of HTTP requests by route, method and status code.",
	}, []string{"route", "method", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
	reads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "config_reads_total",
		Help:      "Configuration reads by outcome (ok, absent, corrupt, unreadable).",
	}, []string{"outcome"})
	writes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "config_writes_total",
		Help:      "Configuration writes by outcome (ok, invalid, failed).",
	}, []string{"outcome"})
	assets := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "asset_lookups_total",
		Help:      "Static asset lookups by outcome (ok, not_found, error).",
	}, []string{"outcome"})

	registry.MustRegister(
		requests, duration, reads, writes, assets,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:   requests,
		requestDuration: duration,
		configReads:     reads,
		configWrites:    writes,
		assetLookups:    assets,
	}
}

// Handler returns the [http.Handler] serving the exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Gatherer exposes the registry for inspection.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	if m == nil {
		return prometheus.NewRegistry()
	}
	return m.registry
}

// Middleware records request count and duration for every HTTP request.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(&recorder, r)

		route := routePattern(r)
		m.requestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(recorder.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// ObserveConfigRead counts a configuration read with the given outcome.
func (m *Metrics) ObserveConfigRead(outcome string) {
	if m == nil {
		return
	}
	m.configReads.WithLabelValues(outcome).Inc()
}

// ObserveConfigWrite counts a configuration write with the given outcome.
func (m *Metrics) ObserveConfigWrite(outcome string) {
	if m == nil {
		return
	}
	m.configWrites.WithLabelValues(outcome).Inc()
}

// ObserveAssetLookup counts a static asset lookup with the given outcome.
func (m *Metrics) ObserveAssetLookup(outcome string) {
	if m == nil {
		return
	}
	m.assetLookups.WithLabelValues(outcome).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Unwrap exposes the underlying writer to [http.ResponseController].
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return fallbackRoute
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics exposes Prometheus collectors for inbound HTTP traffic
// and outbound backend calls.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a registry and the collectors registered on it.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	apiCalls     *prometheus.CounterVec
	apiDuration  *prometheus.HistogramVec
	adminWrites  *prometheus.CounterVec
}

// New creates collectors on a fresh registry, including the Go runtime
// and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sonchiraiya_http_requests_total",
			Help: "HTTP requests served, by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sonchiraiya_http_request_duration_seconds",
			Help:    "Time to serve an HTTP request.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		apiCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sonchiraiya_backend_requests_total",
			Help: "Calls made to the content backend, by resource, method and status (0 = no response).",
		}, []string{"resource", "method", "status"}),
		apiDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sonchiraiya_backend_request_duration_seconds",
			Help:    "Latency of content backend calls.",
			Buckets: prometheus.DefBuckets,
		}, []string{"resource", "method"}),
		adminWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sonchiraiya_admin_writes_total",
			Help: "Admin create/update/delete attempts by resource, action and outcome.",
		}, []string{"resource", "action", "outcome"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests, m.httpDuration,
		m.apiCalls, m.apiDuration,
		m.adminWrites,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveAPI records one backend call. Its signature matches api.Observer.
func (m *Metrics) ObserveAPI(method, resource string, status int, elapsed time.Duration) {
	m.apiCalls.WithLabelValues(resource, method, strconv.Itoa(status)).Inc()
	m.apiDuration.WithLabelValues(resource, method).Observe(elapsed.Seconds())
}

// AdminWrite records the outcome of an admin mutation.
func (m *Metrics) AdminWrite(resource, action string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "failed"
	}
	m.adminWrites.WithLabelValues(resource, action, outcome).Inc()
}

// statusRecorder captures the response status for labelling.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// Middleware counts requests by chi route pattern so path parameters do
// not explode label cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		m.httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
		m.httpDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

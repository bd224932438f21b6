package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/alpstech-academy-api/internal/models"
)

// Auth event outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// MetricsService encapsulates Prometheus instrumentation and provides lightweight snapshots for API consumption.
type MetricsService struct {
	registry         *prometheus.Registry
	handler          http.Handler
	requestDuration  *prometheus.HistogramVec
	requestTotal     *prometheus.CounterVec
	authEvents       *prometheus.CounterVec
	enrollments      prometheus.Counter
	storageFallbacks prometheus.Counter
	activeSession    prometheus.Gauge

	requestCount         uint64
	requestDurationTotal uint64
	enrollmentCount      uint64
	fallbackCount        uint64
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	authEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "academy_auth_events_total",
		Help: "Login, signup and logout attempts by outcome",
	}, []string{"event", "outcome"})

	enrollments := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "academy_enrollments_total",
		Help: "Courses added to a student's enrollment set",
	})

	storageFallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "academy_storage_fallbacks_total",
		Help: "Times durable storage was abandoned for in-memory operation",
	})

	activeSession := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "academy_session_active",
		Help: "1 while a session is authenticated",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, authEvents, enrollments, storageFallbacks, activeSession, goroutines)

	return &MetricsService{
		registry:         registry,
		handler:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:  requestDuration,
		requestTotal:     requestTotal,
		authEvents:       authEvents,
		enrollments:      enrollments,
		storageFallbacks: storageFallbacks,
		activeSession:    activeSession,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Registry exposes the underlying registry.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTPRequest records request metrics and aggregates simple stats for snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// RecordAuthEvent counts a session transition attempt.
func (m *MetricsService) RecordAuthEvent(event, outcome string) {
	if m == nil {
		return
	}
	m.authEvents.WithLabelValues(event, outcome).Inc()
}

// SetSessionActive mirrors the session state into a gauge.
func (m *MetricsService) SetSessionActive(active bool) {
	if m == nil {
		return
	}
	if active {
		m.activeSession.Set(1)
		return
	}
	m.activeSession.Set(0)
}

// RecordEnrollment counts a new enrollment.
func (m *MetricsService) RecordEnrollment() {
	if m == nil {
		return
	}
	m.enrollments.Inc()
	atomic.AddUint64(&m.enrollmentCount, 1)
}

// RecordStorageFallback counts a switch to in-memory storage.
func (m *MetricsService) RecordStorageFallback(error) {
	if m == nil {
		return
	}
	m.storageFallbacks.Inc()
	atomic.AddUint64(&m.fallbackCount, 1)
}

// Snapshot returns aggregated metrics suitable for the health endpoint.
func (m *MetricsService) Snapshot() models.SystemMetrics {
	if m == nil {
		return models.SystemMetrics{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	return models.SystemMetrics{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		Enrollments:              atomic.LoadUint64(&m.enrollmentCount),
		StorageFallbacks:         atomic.LoadUint64(&m.fallbackCount),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}

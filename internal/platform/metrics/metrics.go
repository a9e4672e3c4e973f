// Package metrics exposes Prometheus collectors for review, session and upload activity
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

// Result labels shared by the recorders
const (
	ResultOK        = "ok"
	ResultConflict  = "conflict"
	ResultForbidden = "forbidden"
	ResultInvalid   = "invalid"
	ResultError     = "error"
	ResultEmpty     = "empty"
)

// Metrics holds the collectors; a nil *Metrics records nothing
type Metrics struct {
	registry *prometheus.Registry

	transitionsTotal *prometheus.CounterVec
	claimsTotal      *prometheus.CounterVec
	sessionsActive   prometheus.Gauge
	sessionsTotal    *prometheus.CounterVec
	uploadsTotal     *prometheus.CounterVec
	uploadedRecords  prometheus.Counter
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec

	collectors []prometheus.Collector
}

// New creates the collectors and registers them on registry.
// A nil registry gets a fresh one with Go and process collectors
func New(registry *prometheus.Registry) (*Metrics, error) {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	m := &Metrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) initMetrics() {
	m.transitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptcorrector_review_transitions_total",
			Help: "Review status transitions by action and result",
		},
		[]string{"action", "result"},
	)
	m.claimsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptcorrector_review_claims_total",
			Help: "Attempts to claim the next pending record",
		},
		[]string{"result"},
	)
	m.sessionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "promptcorrector_sessions_active",
		Help: "Review sessions currently held in memory",
	})
	m.sessionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptcorrector_sessions_total",
			Help: "Review sessions by lifecycle event",
		},
		[]string{"event"}, // started, released, expired
	)
	m.uploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptcorrector_uploads_total",
			Help: "Prompt batch uploads by mode and result",
		},
		[]string{"mode", "result"}, // mode: preview, commit
	)
	m.uploadedRecords = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "promptcorrector_uploaded_records_total",
		Help: "Records written by committed uploads",
	})
	m.httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptcorrector_http_requests_total",
			Help: "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)
	m.httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "promptcorrector_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
		},
		[]string{"method", "route"},
	)

	m.collectors = []prometheus.Collector{
		m.transitionsTotal,
		m.claimsTotal,
		m.sessionsActive,
		m.sessionsTotal,
		m.uploadsTotal,
		m.uploadedRecords,
		m.httpRequests,
		m.httpDuration,
	}
}

// Describe implements prometheus.Collector
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	for _, c := range m.collectors {
		c.Describe(ch)
	}
}

// Collect implements prometheus.Collector
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	for _, c := range m.collectors {
		c.Collect(ch)
	}
}

// Registry returns the registry the collectors live on
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.HTTPErrorOnError,
	})
}

// RecordTransition counts a submit or undo attempt
func (m *Metrics) RecordTransition(action, result string) {
	if m == nil {
		return
	}
	m.transitionsTotal.WithLabelValues(action, result).Inc()
}

// RecordClaim counts a load_next claim attempt
func (m *Metrics) RecordClaim(result string) {
	if m == nil {
		return
	}
	m.claimsTotal.WithLabelValues(result).Inc()
}

// SessionStarted counts a new session
func (m *Metrics) SessionStarted() {
	if m == nil {
		return
	}
	m.sessionsActive.Inc()
	m.sessionsTotal.WithLabelValues("started").Inc()
}

// SessionEnded counts a released or expired session
func (m *Metrics) SessionEnded(event string) {
	if m == nil {
		return
	}
	m.sessionsActive.Dec()
	m.sessionsTotal.WithLabelValues(event).Inc()
}

// RecordUpload counts an upload and the records it wrote
func (m *Metrics) RecordUpload(mode, result string, written int) {
	if m == nil {
		return
	}
	m.uploadsTotal.WithLabelValues(mode, result).Inc()
	if written > 0 {
		m.uploadedRecords.Add(float64(written))
	}
}

// Middleware records request counts and latency labelled by chi route pattern
func (m *Metrics) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(sw, r)

			route := "unmatched"
			if rc := chi.RouteContext(r.Context()); rc != nil {
				if p := rc.RoutePattern(); p != "" {
					route = p
				}
			}
			m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
			m.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (s *statusWriter) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

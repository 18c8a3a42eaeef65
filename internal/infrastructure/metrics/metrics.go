// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"gestao_cortinas/internal/domain/entities"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	registry *prometheus.Registry

	transitionsTotal        *prometheus.CounterVec
	notificationsTotal      *prometheus.CounterVec
	notificationErrorsTotal *prometheus.CounterVec
	publishErrorsTotal      *prometheus.CounterVec
	httpRequestsTotal       *prometheus.CounterVec
	httpRequestDuration     *prometheus.HistogramVec
}

// New creates the collectors and registers them on registry.
func New(registry *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{registry: registry}

	m.transitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ambiente_transitions_total",
			Help: "Status transitions requested on ambientes",
		},
		[]string{"from", "to", "result"}, // result: accepted, rejected
	)
	m.notificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_created_total",
			Help: "Notifications persisted by the dispatcher",
		},
		[]string{"tipo"},
	)
	m.notificationErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_errors_total",
			Help: "Notifications that failed to persist",
		},
		[]string{"tipo"},
	)
	m.publishErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_publish_errors_total",
			Help: "Failures delivering notifications to realtime or push channels",
		},
		[]string{"channel"},
	)
	m.httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)
	m.httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Time taken for HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	for _, c := range []prometheus.Collector{
		m.transitionsTotal,
		m.notificationsTotal,
		m.notificationErrorsTotal,
		m.publishErrorsTotal,
		m.httpRequestsTotal,
		m.httpRequestDuration,
	} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is New for wiring code and tests that use a fresh registry.
func MustNew() *Metrics {
	m, err := New(prometheus.NewRegistry())
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) TransitionObserved(from, to entities.AmbienteStatus, accepted bool) {
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	m.transitionsTotal.WithLabelValues(string(from), string(to), result).Inc()
}

func (m *Metrics) NotificationCreated(tipo entities.NotificationType) {
	m.notificationsTotal.WithLabelValues(string(tipo)).Inc()
}

func (m *Metrics) NotificationFailed(tipo entities.NotificationType) {
	m.notificationErrorsTotal.WithLabelValues(string(tipo)).Inc()
}

func (m *Metrics) PublishFailed(channel string) {
	m.publishErrorsTotal.WithLabelValues(channel).Inc()
}

// ObserveHTTPRequest records one served request. path is the route template, not the raw URL.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

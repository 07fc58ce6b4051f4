// Package metrics содержит Prometheus-коллекторы сервиса
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса: HTTP, база данных и доменные счётчики
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration     *prometheus.HistogramVec
	DBQueryErrors       *prometheus.CounterVec
	DBOpenConnections   prometheus.Gauge
	DBInUseConnections  prometheus.Gauge
	DBIdleConnections   prometheus.Gauge
	DBWaitCount         prometheus.Gauge
	DBWaitDurationTotal prometheus.Gauge

	ConflictsDetected *prometheus.CounterVec
	LeaveTransitions  *prometheus.CounterVec
	BookingsCompleted prometheus.Counter
}

// New регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry регистрирует метрики в переданном реестре
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation"}),
		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),
		DBWaitDurationTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_duration_seconds_total",
			Help:        "Total time blocked waiting for a new connection",
			ConstLabels: constLabels,
		}),

		ConflictsDetected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "allocation_conflicts_detected_total",
			Help:        "Conflict checks that found at least one overlapping booking",
			ConstLabels: constLabels,
		}, []string{"resource_kind"}),
		LeaveTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "leave_request_transitions_total",
			Help:        "Leave request status transitions",
			ConstLabels: constLabels,
		}, []string{"from", "to"}),
		BookingsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_auto_completed_total",
			Help:        "Bookings moved to completed by the passed-bookings sweep",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.DBWaitDurationTotal,
		m.ConflictsDetected,
		m.LeaveTransitions,
		m.BookingsCompleted,
	)

	return m
}

// IncConflict учитывает найденный конфликт. Безопасен для nil.
func (m *Metrics) IncConflict(resourceKind string) {
	if m == nil {
		return
	}
	m.ConflictsDetected.WithLabelValues(resourceKind).Inc()
}

// IncLeaveTransition учитывает переход заявки на отпуск. Безопасен для nil.
func (m *Metrics) IncLeaveTransition(from, to string) {
	if m == nil {
		return
	}
	m.LeaveTransitions.WithLabelValues(from, to).Inc()
}

// AddBookingsCompleted учитывает автоматически завершённые бронирования. Безопасен для nil.
func (m *Metrics) AddBookingsCompleted(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.BookingsCompleted.Add(float64(n))
}

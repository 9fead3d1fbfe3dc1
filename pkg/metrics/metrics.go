package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса.
// Все методы безопасно вызывать на nil (метрики выключены в конфиге).
type Metrics struct {
	HTTPRequestsTotal          *prometheus.CounterVec
	HTTPRequestDuration        *prometheus.HistogramVec
	IntegrationRequestsTotal   *prometheus.CounterVec
	IntegrationRequestDuration *prometheus.HistogramVec
	BookingActionsTotal        *prometheus.CounterVec
	SessionRefetchesTotal      *prometheus.CounterVec
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer регистрирует метрики в переданном реестре (удобно для тестов)
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests served",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		IntegrationRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "integration_requests_total",
			Help:        "Total number of outbound requests to remote services",
			ConstLabels: constLabels,
		}, []string{"target", "operation", "result"}),
		IntegrationRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "integration_request_duration_seconds",
			Help:        "Outbound request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"target", "operation"}),
		BookingActionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_actions_total",
			Help:        "Booking and cancellation attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"action", "result"}),
		SessionRefetchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "session_refetches_total",
			Help:        "Session collection reloads by outcome",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.IntegrationRequestsTotal,
		m.IntegrationRequestDuration,
		m.BookingActionsTotal,
		m.SessionRefetchesTotal,
	)

	return m
}

// ObserveHTTP учитывает входящий HTTP запрос
func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveIntegration учитывает исходящий запрос к удаленному сервису
func (m *Metrics) ObserveIntegration(target, operation, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.IntegrationRequestsTotal.WithLabelValues(target, operation, result).Inc()
	m.IntegrationRequestDuration.WithLabelValues(target, operation).Observe(d.Seconds())
}

// IncBookingAction учитывает попытку бронирования/отмены
func (m *Metrics) IncBookingAction(action, result string) {
	if m == nil {
		return
	}
	m.BookingActionsTotal.WithLabelValues(action, result).Inc()
}

// IncRefetch учитывает перезагрузку списка сеансов
func (m *Metrics) IncRefetch(result string) {
	if m == nil {
		return
	}
	m.SessionRefetchesTotal.WithLabelValues(result).Inc()
}

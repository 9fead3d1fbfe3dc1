package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry(), "pool-client")

	m.IncBookingAction("book", "success")
	m.IncBookingAction("book", "success")
	m.IncRefetch("failure")
	m.ObserveIntegration("schedule", "fetch_sessions", "ok", 15*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingActionsTotal.WithLabelValues("book", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SessionRefetchesTotal.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.IntegrationRequestsTotal.WithLabelValues("schedule", "fetch_sessions", "ok")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/", "200", time.Second)
		m.ObserveIntegration("auth", "login", "ok", time.Second)
		m.IncBookingAction("cancel", "rejected")
		m.IncRefetch("success")
	})
}

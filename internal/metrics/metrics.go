package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Failure reasons used as the "reason" label.
const (
	ReasonMalformedJSON = "malformed_json"
	ReasonIncomplete    = "incomplete"
	ReasonEmpty         = "empty"
	ReasonReadError     = "read_error"
	ReasonWriteError    = "write_error"
)

// Metrics holds the server counters. A nil *Metrics records nothing.
type Metrics struct {
	accepted prometheus.Counter
	written  prometheus.Counter
	inFlight prometheus.Gauge
	failures *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		accepted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "echo_connections_accepted_total",
				Help: "Connections accepted by the echo listener",
			},
		),
		written: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "echo_responses_written_total",
				Help: "Echo responses fully written",
			},
		),
		inFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "echo_connections_in_flight",
				Help: "Connections currently being handled",
			},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "echo_request_failures_total",
				Help: "Connections that ended without a response, by reason",
			},
			[]string{"reason"},
		),
	}

	reg.MustRegister(m.accepted, m.written, m.inFlight, m.failures)
	return m
}

func (m *Metrics) ConnectionOpened() {
	if m == nil {
		return
	}
	m.accepted.Inc()
	m.inFlight.Inc()
}

func (m *Metrics) ConnectionClosed() {
	if m == nil {
		return
	}
	m.inFlight.Dec()
}

func (m *Metrics) ResponseWritten() {
	if m == nil {
		return
	}
	m.written.Inc()
}

func (m *Metrics) Failed(reason string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(reason).Inc()
}

package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the protocol-level metrics: codec activity,
// security outcomes, and transport traffic.
type Metrics struct {
	// Codec metrics
	EncodesTotal *prometheus.CounterVec
	DecodesTotal *prometheus.CounterVec
	CodecErrors  *prometheus.CounterVec

	// Security metrics
	SignaturesCreated  prometheus.Counter
	SignatureFailures  prometheus.Counter
	ReplayRejections   *prometheus.CounterVec
	ValidationFailures prometheus.Counter

	// Transport metrics
	ServerRequests  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ClientRequests  *prometheus.CounterVec
	ClientRetries   prometheus.Counter

	// NATS metrics
	NATSConnected  prometheus.Gauge
	NATSReconnects prometheus.Counter
}

// NewMetrics creates a Metrics instance with all protocol metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		EncodesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pulse",
				Subsystem: "codec",
				Name:      "encodes_total",
				Help:      "Total number of messages encoded, by wire format",
			},
			[]string{"format"},
		),

		DecodesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pulse",
				Subsystem: "codec",
				Name:      "decodes_total",
				Help:      "Total number of messages decoded, by wire format",
			},
			[]string{"format"},
		),

		CodecErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pulse",
				Subsystem: "codec",
				Name:      "errors_total",
				Help:      "Total number of codec failures, by operation and format",
			},
			[]string{"operation", "format"},
		),

		SignaturesCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "pulse",
				Subsystem: "security",
				Name:      "signatures_created_total",
				Help:      "Total number of messages signed",
			},
		),

		SignatureFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "pulse",
				Subsystem: "security",
				Name:      "signature_failures_total",
				Help:      "Total number of signature verification failures",
			},
		),

		ReplayRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pulse",
				Subsystem: "security",
				Name:      "replay_rejections_total",
				Help:      "Total number of messages rejected by replay protection, by reason",
			},
			[]string{"reason"},
		),

		ValidationFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "pulse",
				Subsystem: "message",
				Name:      "validation_failures_total",
				Help:      "Total number of messages failing validation",
			},
		),

		ServerRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pulse",
				Subsystem: "server",
				Name:      "requests_total",
				Help:      "Total number of requests handled, by action and status",
			},
			[]string{"action", "status"},
		),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "pulse",
				Subsystem: "server",
				Name:      "request_duration_seconds",
				Help:      "Request handling duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"action"},
		),

		ClientRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pulse",
				Subsystem: "client",
				Name:      "requests_total",
				Help:      "Total number of client requests, by status",
			},
			[]string{"status"},
		),

		ClientRetries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "pulse",
				Subsystem: "client",
				Name:      "retries_total",
				Help:      "Total number of client request retries",
			},
		),

		NATSConnected: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "pulse",
				Subsystem: "nats",
				Name:      "connected",
				Help:      "NATS connection status (0=disconnected, 1=connected)",
			},
		),

		NATSReconnects: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "pulse",
				Subsystem: "nats",
				Name:      "reconnects_total",
				Help:      "Total number of NATS reconnections",
			},
		),
	}
}

// collectors returns every core metric for bulk registration.
func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.EncodesTotal,
		m.DecodesTotal,
		m.CodecErrors,
		m.SignaturesCreated,
		m.SignatureFailures,
		m.ReplayRejections,
		m.ValidationFailures,
		m.ServerRequests,
		m.RequestDuration,
		m.ClientRequests,
		m.ClientRetries,
		m.NATSConnected,
		m.NATSReconnects,
	}
}

package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/tabs/pkg/tabs"
)

// Error kinds used as the "kind" label of event_errors_total.
const (
	errKindInvalidFrame   = "invalid_frame"
	errKindInvalidEvent   = "invalid_event"
	errKindUnknownElement = "unknown_element"
	errKindQueueFull      = "queue_full"
	errKindPanic          = "panic"
	errKindWrite          = "write"
)

// Metrics holds the server's Prometheus collectors.
type Metrics struct {
	eventsTotal      *prometheus.CounterVec
	eventDuration    *prometheus.HistogramVec
	eventErrors      *prometheus.CounterVec
	activationsTotal *prometheus.CounterVec
	patchesSent      prometheus.Counter
	activeSessions   prometheus.Gauge
	sessionsTotal    prometheus.Counter
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Total number of client events processed",
		}, []string{"type"}),

		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "event_duration_seconds",
			Help:      "Event processing duration in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"type"}),

		eventErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_errors_total",
			Help:      "Total number of rejected or failed client messages",
		}, []string{"kind"}),

		activationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activations_total",
			Help:      "Total number of tab activations",
		}, []string{"source", "action"}),

		patchesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "patches_sent_total",
			Help:      "Total number of patches sent to clients",
		}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Number of open WebSocket sessions",
		}),

		sessionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Total number of sessions opened",
		}),
	}
}

func (m *Metrics) recordEvent(eventType string, d time.Duration) {
	m.eventsTotal.WithLabelValues(eventType).Inc()
	m.eventDuration.WithLabelValues(eventType).Observe(d.Seconds())
}

func (m *Metrics) recordError(kind string) {
	m.eventErrors.WithLabelValues(kind).Inc()
}

func (m *Metrics) recordActivation(c tabs.Change) {
	m.activationsTotal.WithLabelValues(c.Source.String(), c.Action.String()).Inc()
}

func (m *Metrics) recordPatches(n int) {
	m.patchesSent.Add(float64(n))
}

func (m *Metrics) sessionOpened() {
	m.sessionsTotal.Inc()
	m.activeSessions.Inc()
}

func (m *Metrics) sessionClosed() {
	m.activeSessions.Dec()
}

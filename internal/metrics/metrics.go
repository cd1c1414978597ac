package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeCanceled = "canceled"
)

// Metrics tracks ledger actions processed by the operator.
type Metrics struct {
	ActionsProcessed *prometheus.CounterVec
	ActionDuration   *prometheus.HistogramVec
	QueueDepth       prometheus.Gauge
}

// New creates the ledger metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ActionsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_actions_processed_total",
			Help: "Total number of ledger actions processed, by action and outcome",
		}, []string{"action", "outcome"}),
		ActionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ledger_action_duration_seconds",
			Help:    "Time spent performing a ledger action",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"action"}),
		QueueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_operator_queue_depth",
			Help: "Number of actions waiting in the operator queue",
		}),
	}
}

// ObserveAction records one processed action.
// Call with time.Now() taken before the action started.
func (m *Metrics) ObserveAction(action, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.ActionsProcessed.WithLabelValues(action, outcome).Inc()
	m.ActionDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())
}

func (m *Metrics) SetQueueDepth(n int) {
	if m == nil {
		return
	}
	m.QueueDepth.Set(float64(n))
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the transfer module.
// Tracks execution outcomes, risk distribution, and pipeline duration.
type Metrics struct {
	TransfersExecuted *prometheus.CounterVec
	TransfersFailed   *prometheus.CounterVec
	RiskScore         prometheus.Histogram
	ExecuteDuration   prometheus.Histogram
}

// New creates a new Metrics instance with all transfer module metrics registered.
func New() *Metrics {
	return &Metrics{
		TransfersExecuted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "provenia_transfers_executed_total",
			Help: "Total number of successfully executed transfers",
		}, []string{"category"}),
		TransfersFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "provenia_transfers_failed_total",
			Help: "Total number of failed transfers by failing stage",
		}, []string{"stage"}),
		RiskScore: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "provenia_transfer_risk_score",
			Help:    "Distribution of computed transfer risk scores",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}),
		ExecuteDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "provenia_transfer_execute_duration_seconds",
			Help:    "Duration of full transfer pipeline executions",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// IncrementExecuted records a successful transfer for a category.
func (m *Metrics) IncrementExecuted(category string) {
	m.TransfersExecuted.WithLabelValues(category).Inc()
}

// IncrementFailed records a failed transfer labeled by the stage that failed.
func (m *Metrics) IncrementFailed(stage string) {
	m.TransfersFailed.WithLabelValues(stage).Inc()
}

// ObserveRiskScore records a computed risk score.
func (m *Metrics) ObserveRiskScore(score int) {
	m.RiskScore.Observe(float64(score))
}

// ObserveExecute records the duration of a pipeline execution.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveExecute(start time.Time) {
	m.ExecuteDuration.Observe(time.Since(start).Seconds())
}

package booking

import (
	"garagat/models"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsNotifier counts wizard events for Prometheus.
type MetricsNotifier struct {
	advances  *prometheus.CounterVec
	failures  *prometheus.CounterVec
	completed prometheus.Counter
}

// NewMetricsNotifier registers the wizard counters with reg.
func NewMetricsNotifier(reg prometheus.Registerer) (*MetricsNotifier, error) {
	m := &MetricsNotifier{
		advances: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "garagat",
			Subsystem: "wizard",
			Name:      "advances_total",
			Help:      "Successful wizard advances by source and target step.",
		}, []string{"from", "to"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "garagat",
			Subsystem: "wizard",
			Name:      "validation_failures_total",
			Help:      "Rejected wizard advances by step.",
		}, []string{"step"}),
		completed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "garagat",
			Subsystem: "wizard",
			Name:      "completed_total",
			Help:      "Wizards that produced a booking request.",
		}),
	}
	for _, c := range []prometheus.Collector{m.advances, m.failures, m.completed} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *MetricsNotifier) StepAdvanced(from, to models.WizardStep) {
	m.advances.WithLabelValues(from.String(), to.String()).Inc()
}

func (m *MetricsNotifier) ValidationFailed(step models.WizardStep) {
	m.failures.WithLabelValues(step.String()).Inc()
}

func (m *MetricsNotifier) Completed(models.BookingRequest) {
	m.completed.Inc()
}

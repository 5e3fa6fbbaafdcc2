// Package observability exposes the service's prometheus metrics. Counters
// are registered once on the default registry and served on /metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type Metrics struct {
	subscriptionTransitions *prometheus.CounterVec
	charges                 *prometheus.CounterVec
}

func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the counters on reg. Tests pass a fresh registry so
// every service under test gets its own counters.
func NewWith(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		subscriptionTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "subhub",
			Name:      "subscription_transitions_total",
			Help:      "Subscription lifecycle transitions by resulting status.",
		}, []string{"status"}),
		charges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "subhub",
			Name:      "charges_total",
			Help:      "Charge attempts by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(m.subscriptionTransitions, m.charges)
	return m
}

func (m *Metrics) SubscriptionTransition(status string) {
	m.subscriptionTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) ChargeCompleted() {
	m.charges.WithLabelValues("completed").Inc()
}

func (m *Metrics) ChargeFailed() {
	m.charges.WithLabelValues("failed").Inc()
}

var Module = fx.Module("observability",
	fx.Provide(New),
)

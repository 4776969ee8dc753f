package filter

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/haukened/backlist/internal/backlist/domain"
)

const (
	namespace = "backlist"
	subsystem = "filter"
)

type metrics struct {
	decisions   *prometheus.CounterVec
	listEntries *prometheus.GaugeVec
}

// newMetrics registers the filter collectors on reg. A nil reg gets a private
// registry so several services can coexist, as in tests.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &metrics{
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "decisions_total",
			Help:      "Backlink submissions evaluated, by disposition and the rule that fired.",
		}, []string{"disposition", "rule"}),
		listEntries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "list_entries",
			Help:      "Entries in each list as of the last evaluation.",
		}, []string{"list"}),
	}
	for _, c := range []prometheus.Collector{m.decisions, m.listEntries} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *metrics) observeDecision(d domain.Disposition, rule string) {
	m.decisions.WithLabelValues(d.String(), rule).Inc()
}

func (m *metrics) observeList(name domain.ListName, n int) {
	m.listEntries.WithLabelValues(string(name)).Set(float64(n))
}

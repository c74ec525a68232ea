package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder counts mutation outcomes. A nil Recorder records nothing.
type Recorder struct {
	mutations *prometheus.CounterVec
	bulkItems *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crm",
			Name:      "mutations_total",
			Help:      "GraphQL mutations by name and outcome.",
		}, []string{"mutation", "outcome"}),
		bulkItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crm",
			Name:      "bulk_customer_items_total",
			Help:      "Bulk customer items by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(r.mutations, r.bulkItems)
	return r
}

// Mutation records one mutation; outcome is "ok" or an error code.
func (r *Recorder) Mutation(name, outcome string) {
	if r == nil {
		return
	}
	r.mutations.WithLabelValues(name, outcome).Inc()
}

func (r *Recorder) BulkItems(created, failed int) {
	if r == nil {
		return
	}
	r.bulkItems.WithLabelValues("created").Add(float64(created))
	r.bulkItems.WithLabelValues("failed").Add(float64(failed))
}

// Handler exposes the gatherer in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the counters the warehouse service reports.
type Collector struct {
	ItemsDeposited prometheus.Counter
	ItemsReserved  prometheus.Counter
	ItemsForwarded *prometheus.CounterVec
	FaultsInjected prometheus.Counter
	Shortages      prometheus.Counter
	BatchDuration  *prometheus.HistogramVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		ItemsDeposited: factory.NewCounter(prometheus.CounterOpts{
			Name: "warehouse_items_deposited_total",
			Help: "Items accepted into the local stock ledger.",
		}),
		ItemsReserved: factory.NewCounter(prometheus.CounterOpts{
			Name: "warehouse_items_reserved_total",
			Help: "Item quantities fulfilled from the local stock ledger.",
		}),
		ItemsForwarded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "warehouse_items_forwarded_total",
			Help: "Items forwarded to a peer node, by operation.",
		}, []string{"operation"}),
		FaultsInjected: factory.NewCounter(prometheus.CounterOpts{
			Name: "warehouse_faults_injected_total",
			Help: "Items rejected by synthetic failure injection.",
		}),
		Shortages: factory.NewCounter(prometheus.CounterOpts{
			Name: "warehouse_shortages_total",
			Help: "Reserve entries fulfilled below the requested quantity.",
		}),
		BatchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "warehouse_batch_duration_seconds",
			Help:    "End-to-end duration of one batch request, by operation.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

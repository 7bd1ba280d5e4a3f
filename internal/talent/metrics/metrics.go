package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ListingRequests     prometheus.Counter
	ListingDurationMs   prometheus.Histogram
	StatusChangesTotal  *prometheus.CounterVec
	TalentsDeletedTotal prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		ListingRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "promohub_talent_listing_requests_total",
			Help: "Total number of admin talent listing requests",
		}),
		ListingDurationMs: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "promohub_talent_listing_duration_ms",
			Help:    "Latency of talent listing queries in milliseconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250},
		}),
		StatusChangesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "promohub_talent_status_changes_total",
			Help: "Total number of talent status changes by new status",
		}, []string{"status"}),
		TalentsDeletedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "promohub_talents_deleted_total",
			Help: "Total number of talent profiles deleted",
		}),
	}
}

func (m *Metrics) ObserveListing(durationMs float64) {
	m.ListingRequests.Inc()
	m.ListingDurationMs.Observe(durationMs)
}

func (m *Metrics) IncrementStatusChange(status string) {
	m.StatusChangesTotal.WithLabelValues(status).Inc()
}

func (m *Metrics) IncrementDeleted() {
	m.TalentsDeletedTotal.Inc()
}

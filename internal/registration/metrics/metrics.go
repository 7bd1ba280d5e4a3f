package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SessionsStarted      prometheus.Counter
	StepSubmissionsTotal *prometheus.CounterVec
	DraftsSaved          prometheus.Counter
	SubmissionsTotal     *prometheus.CounterVec
	SubmitDurationMs     prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		SessionsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "promohub_registration_sessions_started_total",
			Help: "Total number of registration wizard sessions started",
		}),
		StepSubmissionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "promohub_registration_step_submissions_total",
			Help: "Total number of wizard step submissions by step and outcome",
		}, []string{"step", "outcome"}),
		DraftsSaved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "promohub_registration_drafts_saved_total",
			Help: "Total number of saved wizard drafts",
		}),
		SubmissionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "promohub_registration_submissions_total",
			Help: "Total number of registration finalize attempts by outcome",
		}, []string{"outcome"}),
		SubmitDurationMs: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "promohub_registration_submit_duration_ms",
			Help:    "Latency of registration finalize in milliseconds",
			Buckets: []float64{1, 2.5, 5, 10, 25, 50, 100, 250, 500},
		}),
	}
}

func (m *Metrics) IncrementSessionStarted() {
	m.SessionsStarted.Inc()
}

func (m *Metrics) IncrementStepSubmission(step, outcome string) {
	m.StepSubmissionsTotal.WithLabelValues(step, outcome).Inc()
}

func (m *Metrics) IncrementDraftSaved() {
	m.DraftsSaved.Inc()
}

func (m *Metrics) ObserveSubmission(outcome string, durationMs float64) {
	m.SubmissionsTotal.WithLabelValues(outcome).Inc()
	m.SubmitDurationMs.Observe(durationMs)
}

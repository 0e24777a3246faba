package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SubmissionMetrics records order submission channel attempts and final outcomes.
type SubmissionMetrics struct {
	duration *prometheus.HistogramVec
	attempts *prometheus.CounterVec
	outcomes *prometheus.CounterVec
}

// NewSubmissionMetrics registers the submission metrics on the provided registerer.
func NewSubmissionMetrics(reg prometheus.Registerer) *SubmissionMetrics {
	if reg == nil {
		return &SubmissionMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "order_channel_duration_seconds",
		Help:    "Duration of order submission channel attempts in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"channel"})
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_channel_attempts_total",
		Help: "Order submission channel attempts by result.",
	}, []string{"channel", "result"})
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_submission_outcomes_total",
		Help: "Final order submission outcomes.",
	}, []string{"outcome"})
	reg.MustRegister(duration, attempts, outcomes)
	return &SubmissionMetrics{
		duration: duration,
		attempts: attempts,
		outcomes: outcomes,
	}
}

// ObserveAttempt records one channel attempt and its duration.
func (s *SubmissionMetrics) ObserveAttempt(channel string, ok bool, duration time.Duration) {
	if s == nil || s.attempts == nil {
		return
	}
	result := "failure"
	if ok {
		result = "success"
	}
	channel = normalizeLabel(channel)
	s.attempts.WithLabelValues(channel, result).Inc()
	s.duration.WithLabelValues(channel).Observe(duration.Seconds())
}

// IncOutcome increments the outcome counter.
func (s *SubmissionMetrics) IncOutcome(outcome string) {
	if s == nil || s.outcomes == nil {
		return
	}
	s.outcomes.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

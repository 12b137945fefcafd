package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scanCandidatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockscope",
		Subsystem: "scanner",
		Name:      "candidates_total",
		Help:      "Count of candidates evaluated against the filter set.",
	}, []string{"shape", "result"})
	scansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockscope",
		Subsystem: "scanner",
		Name:      "scans_total",
		Help:      "Count of completed scan runs.",
	}, []string{"shape", "status"})
	scanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockscope",
		Subsystem: "scanner",
		Name:      "scan_duration_seconds",
		Help:      "Duration of scan runs.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	}, []string{"shape", "status"})
)

// Scanner tracks metrics for scan runs over one source shape.
type Scanner struct {
	shape string
}

// NewScanner constructs a metrics collector for scan runs.
func NewScanner(shape string) *Scanner {
	if shape == "" {
		shape = "unknown"
	}
	return &Scanner{shape: shape}
}

// ObserveCandidate records one evaluated candidate.
func (m Scanner) ObserveCandidate(matched bool) {
	result := "rejected"
	if matched {
		result = "matched"
	}
	scanCandidatesTotal.WithLabelValues(m.shape, result).Inc()
}

// ObserveScan records one finished scan run and its duration.
func (m Scanner) ObserveScan(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	scansTotal.WithLabelValues(m.shape, status).Inc()
	scanDuration.WithLabelValues(m.shape, status).Observe(time.Since(started).Seconds())
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	restRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockscope",
		Subsystem: "rest_client",
		Name:      "operations_total",
		Help:      "Count of node REST operations.",
	}, []string{"operation", "chain", "status"})
	restRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockscope",
		Subsystem: "rest_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node REST operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "chain", "status"})
)

// RESTClient tracks metrics for REST calls to the node.
type RESTClient struct {
	chain string
}

// NewRESTClient constructs a metrics collector for REST calls.
func NewRESTClient(chain string) *RESTClient {
	if chain == "" {
		chain = "unknown"
	}
	return &RESTClient{chain: chain}
}

// Observe records a single REST call outcome and duration.
func (m RESTClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	restRequestsTotal.WithLabelValues(operation, m.chain, status).Inc()
	restRequestDuration.WithLabelValues(operation, m.chain, status).Observe(time.Since(started).Seconds())
}

package collector

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess     = "success"
	outcomeMissing     = "missing"
	outcomeHTTPError   = "http_error"
	outcomeAPIError    = "api_error"
	outcomeDecodeError = "decode_error"
	outcomeTransport   = "transport_error"
)

// Metrics tracks upstream history lookups.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration prometheus.Histogram
}

// NewMetrics creates fetch metrics registered on reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fxanalyzer_fetch_requests_total",
			Help: "History lookups by outcome",
		}, []string{"outcome"}),
		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fxanalyzer_fetch_request_duration_seconds",
			Help:    "Round-trip time of history lookups",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) count(outcome string) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observe(d time.Duration) {
	if m == nil {
		return
	}
	m.Duration.Observe(d.Seconds())
}

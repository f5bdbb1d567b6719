package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/sysdisco/internal/usecase/discovery"
)

// Compile-time check: Discovery implements discovery.Observer.
var _ discovery.Observer = (*Discovery)(nil)

// Discovery records discovery outcomes, keyword counts and recommendation counts.
type Discovery struct {
	requests        *prometheus.CounterVec
	duration        prometheus.Histogram
	keywords        prometheus.Histogram
	recommendations prometheus.Histogram
}

// NewDiscovery creates discovery metrics and registers them on reg.
// A nil reg leaves them unregistered.
func NewDiscovery(reg prometheus.Registerer) (*Discovery, error) {
	d := &Discovery{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "discovery_requests_total",
				Help:      "Total number of discovery calls by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "discovery_duration_seconds",
			Help:      "Discovery call duration in seconds, storage lookups included",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		keywords: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "discovery_keywords",
			Help:      "Number of keywords extracted per successful discovery",
			Buckets:   []float64{0, 1, 3, 5, 8, 10, 12, 15},
		}),
		recommendations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "discovery_recommendations",
			Help:      "Number of systems recommended per successful discovery",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 10},
		}),
	}
	if reg == nil {
		return d, nil
	}
	for _, c := range []prometheus.Collector{d.requests, d.duration, d.keywords, d.recommendations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// MustNewDiscovery is like NewDiscovery but panics on registration errors.
func MustNewDiscovery(reg prometheus.Registerer) *Discovery {
	d, err := NewDiscovery(reg)
	if err != nil {
		panic(err)
	}
	return d
}

// ObserveDiscovery implements discovery.Observer.
func (d *Discovery) ObserveDiscovery(outcome discovery.Outcome, keywords, recommendations int, took time.Duration) {
	d.requests.WithLabelValues(string(outcome)).Inc()
	d.duration.Observe(took.Seconds())
	if outcome != discovery.OutcomeOK {
		return
	}
	d.keywords.Observe(float64(keywords))
	d.recommendations.Observe(float64(recommendations))
}

package sysdisco

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/sysdisco/internal/usecase/discovery"
)

// sdkMetrics holds prometheus metrics registered for the SDK.
type sdkMetrics struct {
	operations      *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	keywords        prometheus.Histogram
	recommendations prometheus.Histogram
}

func newSDKMetrics(reg prometheus.Registerer) (*sdkMetrics, error) {
	m := &sdkMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sysdisco",
			Subsystem: "sdk",
			Name:      "operations_total",
			Help:      "Total SDK operations by type and status.",
		}, []string{"operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sysdisco",
			Subsystem: "sdk",
			Name:      "operation_duration_seconds",
			Help:      "SDK operation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		keywords: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sysdisco",
			Subsystem: "sdk",
			Name:      "discovery_keywords",
			Help:      "Keywords extracted per successful discovery.",
			Buckets:   []float64{0, 1, 3, 5, 8, 10, 12, 15},
		}),
		recommendations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sysdisco",
			Subsystem: "sdk",
			Name:      "discovery_recommendations",
			Help:      "Systems recommended per successful discovery.",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 10},
		}),
	}
	if err := registerOrReuse(reg, &m.operations); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.duration); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.keywords); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.recommendations); err != nil {
		return nil, err
	}
	return m, nil
}

// registerOrReuse registers a collector or reuses an existing one.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("sysdisco: metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("sysdisco: register metric: %w", err)
	}
	return nil
}

// Compile-time check: observer feeds discovery result sizes into SDK metrics.
var _ discovery.Observer = (*observer)(nil)

// observer provides logging and metrics for SDK operations.
type observer struct {
	logger  *slog.Logger
	metrics *sdkMetrics
}

func newObserver(logger *slog.Logger, reg prometheus.Registerer) (*observer, error) {
	var m *sdkMetrics
	if reg != nil {
		var err error
		m, err = newSDKMetrics(reg)
		if err != nil {
			return nil, err
		}
	}
	return &observer{logger: logger, metrics: m}, nil
}

func (o *observer) observe(
	op string, start time.Time, err error,
) {
	if o == nil {
		return
	}
	dur := time.Since(start)

	if o.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		o.metrics.operations.WithLabelValues(op, status).Inc()
		o.metrics.duration.WithLabelValues(op).Observe(
			dur.Seconds(),
		)
	}

	if o.logger != nil {
		if err != nil {
			o.logger.Warn("operation failed",
				"op", op,
				"duration", dur,
				"error", err,
			)
		} else {
			o.logger.Debug("operation completed",
				"op", op,
				"duration", dur,
			)
		}
	}
}

// ObserveDiscovery implements discovery.Observer.
func (o *observer) ObserveDiscovery(outcome discovery.Outcome, keywords, recommendations int, _ time.Duration) {
	if o == nil || o.metrics == nil || outcome != discovery.OutcomeOK {
		return
	}
	o.metrics.keywords.Observe(float64(keywords))
	o.metrics.recommendations.Observe(float64(recommendations))
}

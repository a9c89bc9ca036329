package transport

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pdns_api_requests_total",
				Help: "Number of requests sent to the DNS server API, by method and status code.",
			},
			[]string{"method", "code"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pdns_api_request_duration_seconds",
				Help:    "Round trip time of requests sent to the DNS server API.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}

	m.requests = register(reg, m.requests)
	m.duration = register(reg, m.duration)

	return m
}

// register reuses an already registered collector so several executors can share
// one registerer.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
	}

	return c
}

func (m *metrics) observe(method, code string, start time.Time) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(method, code).Inc()
	m.duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

// Package metrics implements ports.Metrics with a private Prometheus registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.eeva.app/hub/internal/core/domain"
	"go.eeva.app/hub/internal/core/ports"
)

const namespace = "eeva"

var _ ports.Metrics = (*Prometheus)(nil)

// Prometheus records revalidation and request metrics.
type Prometheus struct {
	registry      *prometheus.Registry
	revalidations *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	requests      *prometheus.CounterVec
}

// New creates a Prometheus recorder with Go runtime collectors registered.
func New() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		revalidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "revalidations_total",
			Help:      "Revalidation runs by cache key and outcome.",
		}, []string{"key", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "revalidation_duration_seconds",
			Help:      "Time from fetch start to commit or discard.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"key"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Served HTTP requests by route and status code.",
		}, []string{"route", "status"}),
	}

	p.registry.MustRegister(
		p.revalidations,
		p.duration,
		p.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

// ObserveRevalidation implements ports.Metrics.
func (p *Prometheus) ObserveRevalidation(key domain.CacheKey, outcome domain.Outcome, elapsed time.Duration) {
	p.revalidations.WithLabelValues(key.String(), string(outcome)).Inc()
	p.duration.WithLabelValues(key.String()).Observe(elapsed.Seconds())
}

// ObserveRequest implements ports.Metrics.
func (p *Prometheus) ObserveRequest(route string, status int) {
	p.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Registry exposes the underlying registry.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

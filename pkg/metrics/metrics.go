// Package metrics expõe os contadores do serviço em um registry próprio do Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeFallback = "fallback"
	OutcomeSkipped  = "skipped"
)

type Collector struct {
	registry *prometheus.Registry

	requestsTotal        *prometheus.CounterVec
	requestDuration      *prometheus.HistogramVec
	sourceFetchTotal     *prometheus.CounterVec
	insightsGenerated    *prometheus.CounterVec
	snapshotRefreshTotal *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total de requisições HTTP atendidas",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duração das requisições HTTP",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		sourceFetchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "source_fetch_total",
				Help: "Buscas de dados financeiros por fonte e resultado",
			},
			[]string{"source", "outcome"},
		),
		insightsGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insights_generated_total",
				Help: "Insights retornados por categoria",
			},
			[]string{"category", "placeholder"},
		),
		snapshotRefreshTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "snapshot_refresh_total",
				Help: "Execuções da atualização do snapshot por resultado",
			},
			[]string{"outcome"},
		),
	}

	c.registry.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.sourceFetchTotal,
		c.insightsGenerated,
		c.snapshotRefreshTotal,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return c
}

// Handler expõe o registry no formato de texto do Prometheus
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) ObserveRequest(method, path string, status int, duration time.Duration) {
	if c == nil {
		return
	}
	c.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (c *Collector) SourceFetch(source, outcome string) {
	if c == nil {
		return
	}
	c.sourceFetchTotal.WithLabelValues(source, outcome).Inc()
}

func (c *Collector) InsightGenerated(category string, placeholder bool) {
	if c == nil {
		return
	}
	c.insightsGenerated.WithLabelValues(category, strconv.FormatBool(placeholder)).Inc()
}

func (c *Collector) SnapshotRefresh(outcome string) {
	if c == nil {
		return
	}
	c.snapshotRefreshTotal.WithLabelValues(outcome).Inc()
}

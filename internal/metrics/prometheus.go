package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus mirrors recorded metrics as scrapeable series. Business labels
// are dropped because they carry high-cardinality values such as codes.
type Prometheus struct {
	registry      *prometheus.Registry
	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
	businessTotal *prometheus.CounterVec
	poolConns     *prometheus.GaugeVec
	cacheRequests *prometheus.GaugeVec
	cacheHitRatio prometheus.Gauge
	shares        *prometheus.GaugeVec
}

func NewPrometheus() *Prometheus {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Prometheus{
		registry: registry,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "chaosshare_http_requests_total",
			Help: "HTTP requests by route and status",
		}, []string{"method", "path", "status"}),
		httpLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "chaosshare_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.ExponentialBucketsRange(.001, 10, 15),
		}, []string{"method", "path"}),
		businessTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "chaosshare_events_total",
			Help: "Share lifecycle events",
		}, []string{"event"}),
		poolConns: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "chaosshare_db_pool_connections",
			Help: "Database pool connections by state",
		}, []string{"state"}),
		cacheRequests: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "chaosshare_cache_requests",
			Help: "Share cache lookups since start by result",
		}, []string{"result"}),
		cacheHitRatio: factory.NewGauge(prometheus.GaugeOpts{
			Name: "chaosshare_cache_hit_ratio",
			Help: "Share cache hit ratio",
		}),
		shares: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "chaosshare_shares",
			Help: "Stored shares by state",
		}, []string{"state"}),
	}
}

func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

func (p *Prometheus) observeHTTP(m HTTPMetric) {
	p.httpRequests.WithLabelValues(m.Method, m.Path, strconv.Itoa(m.StatusCode)).Inc()
	p.httpLatency.WithLabelValues(m.Method, m.Path).Observe(m.DurationMs / 1000)
}

func (p *Prometheus) observeBusiness(m BusinessMetric) {
	if m.Value < 0 {
		return
	}
	p.businessTotal.WithLabelValues(m.MetricName).Add(m.Value)
}

func (p *Prometheus) observeInfra(m InfraMetric) {
	p.poolConns.WithLabelValues("acquired").Set(float64(m.PoolAcquired))
	p.poolConns.WithLabelValues("idle").Set(float64(m.PoolIdle))
	p.poolConns.WithLabelValues("total").Set(float64(m.PoolTotal))
	p.poolConns.WithLabelValues("max").Set(float64(m.PoolMax))
	p.cacheRequests.WithLabelValues("hit").Set(float64(m.CacheHits))
	p.cacheRequests.WithLabelValues("miss").Set(float64(m.CacheMisses))
	p.cacheHitRatio.Set(m.CacheHitRatio)
	p.shares.WithLabelValues("total").Set(float64(m.SharesTotal))
	p.shares.WithLabelValues("expired").Set(float64(m.SharesExpired))
}

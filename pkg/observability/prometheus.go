package observability

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusHooks implements every hook interface by updating Prometheus
// collectors registered on its own registry.
type PrometheusHooks struct {
	registry *prometheus.Registry

	layoutsTotal     *prometheus.CounterVec
	layoutDuration   prometheus.Histogram
	layoutPlacements prometheus.Histogram
	omittedTotal     prometheus.Counter
	inflight         prometheus.Gauge

	cacheTotal    *prometheus.CounterVec
	cacheSetBytes prometheus.Counter

	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

// NewPrometheusHooks creates the collectors and registers them on reg.
func NewPrometheusHooks(reg *prometheus.Registry) *PrometheusHooks {
	h := &PrometheusHooks{
		registry: reg,
		layoutsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "layoutc_layouts_total",
				Help: "Total number of layout passes by outcome",
			},
			[]string{"outcome"},
		),
		layoutDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "layoutc_layout_duration_seconds",
			Help:    "Duration of layout passes in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		layoutPlacements: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "layoutc_layout_placements",
			Help:    "Number of rectangles resolved per layout pass",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		omittedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "layoutc_children_omitted_total",
			Help: "Total number of children left out after a failed submission",
		}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "layoutc_layouts_inflight",
			Help: "Number of layout passes currently running",
		}),
		cacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "layoutc_cache_operations_total",
				Help: "Total number of cache operations by key type and result",
			},
			[]string{"key_type", "result"},
		),
		cacheSetBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "layoutc_cache_set_bytes_total",
			Help: "Total number of bytes written to the cache",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "layoutc_http_requests_total",
				Help: "Total number of HTTP requests by route and status code",
			},
			[]string{"method", "route", "code"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "layoutc_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	reg.MustRegister(
		h.layoutsTotal,
		h.layoutDuration,
		h.layoutPlacements,
		h.omittedTotal,
		h.inflight,
		h.cacheTotal,
		h.cacheSetBytes,
		h.httpRequestsTotal,
		h.httpDuration,
	)
	return h
}

// Handler serves the registry in the Prometheus exposition format.
func (h *PrometheusHooks) Handler() http.Handler {
	return promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{Registry: h.registry})
}

func (h *PrometheusHooks) OnLayoutStart(ctx context.Context, elements int) {
	h.inflight.Inc()
}

func (h *PrometheusHooks) OnLayoutComplete(ctx context.Context, placements, omitted int, duration time.Duration, err error) {
	h.inflight.Dec()
	if err != nil {
		h.layoutsTotal.WithLabelValues("error").Inc()
		return
	}
	h.layoutsTotal.WithLabelValues("ok").Inc()
	h.layoutDuration.Observe(duration.Seconds())
	h.layoutPlacements.Observe(float64(placements))
}

func (h *PrometheusHooks) OnChildOmitted(ctx context.Context, parent, child string) {
	h.omittedTotal.Inc()
}

func (h *PrometheusHooks) OnCacheHit(ctx context.Context, keyType string) {
	h.cacheTotal.WithLabelValues(keyType, "hit").Inc()
}

func (h *PrometheusHooks) OnCacheMiss(ctx context.Context, keyType string) {
	h.cacheTotal.WithLabelValues(keyType, "miss").Inc()
}

func (h *PrometheusHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	h.cacheTotal.WithLabelValues(keyType, "set").Inc()
	h.cacheSetBytes.Add(float64(size))
}

func (h *PrometheusHooks) OnRequest(ctx context.Context, method, route string) {}

func (h *PrometheusHooks) OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration) {
	h.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	h.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

var (
	_ LayoutHooks = (*PrometheusHooks)(nil)
	_ CacheHooks  = (*PrometheusHooks)(nil)
	_ HTTPHooks   = (*PrometheusHooks)(nil)
)

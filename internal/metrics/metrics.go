package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics agrupa las metricas Prometheus del servicio y del scraper.
type Metrics struct {
	FetchAttemptsTotal       *prometheus.CounterVec
	ScrapeRunsTotal          *prometheus.CounterVec
	PageDuration             prometheus.Histogram
	ClassificationsTotal     *prometheus.CounterVec
	HTTPRequestsTotal        *prometheus.CounterVec
	RateLimitRejectionsTotal prometheus.Counter
}

// Default registra las metricas una sola vez en el registry global.
func Default() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			FetchAttemptsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "scrape_fetch_attempts_total",
					Help: "Total number of page fetch attempts by outcome",
				},
				[]string{"outcome"}, // "ok", "retry", "error"
			),
			ScrapeRunsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "scrape_runs_total",
					Help: "Total number of scrape runs by final status",
				},
				[]string{"status"},
			),
			PageDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "scrape_page_duration_seconds",
					Help:    "Time spent fetching and extracting a single page, retries included",
					Buckets: prometheus.DefBuckets,
				},
			),
			ClassificationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "relation_classifications_total",
					Help: "Total number of intertype relation classifications by label",
				},
				[]string{"label"},
			),
			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "http_requests_total",
					Help: "Total number of HTTP requests by method, route and status",
				},
				[]string{"method", "route", "status"},
			),
			RateLimitRejectionsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "http_rate_limit_rejections_total",
					Help: "Total number of requests rejected by the rate limiter",
				},
			),
		}
	})
	return globalMetrics
}

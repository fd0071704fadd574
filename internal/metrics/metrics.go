package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the service
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	RegistrationsTotal  prometheus.Counter
	PromotionsTotal     prometheus.Counter
	CheckinsTotal       prometheus.Counter
	StreakResetsTotal   prometheus.Counter
	CardsRenderedTotal  prometheus.CounterVec
	CardRenderDuration  prometheus.Histogram
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "secretariat_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "secretariat_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "secretariat_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "secretariat_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "secretariat_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Business Metrics
		RegistrationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "secretariat_registrations_total",
				Help: "Total volunteer registrations submitted",
			},
		),
		PromotionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "secretariat_promotions_total",
				Help: "Total registrations promoted to members",
			},
		),
		CheckinsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "secretariat_checkins_total",
				Help: "Total successful daily check-ins",
			},
		),
		StreakResetsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "secretariat_streak_resets_total",
				Help: "Total check-ins that reset a streak back to 1",
			},
		),
		CardsRenderedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "secretariat_cards_rendered_total",
				Help: "Total membership cards rendered by export format",
			},
			[]string{"format"},
		),
		CardRenderDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "secretariat_card_render_duration_seconds",
				Help:    "Card rasterization time in seconds",
				Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
		),
	}
}

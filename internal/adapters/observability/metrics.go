package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "kennedia", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kennedia", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "kennedia", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	CatalogLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "kennedia", Name: "catalog_lookups_total", Help: "Lookups by id."},
		[]string{"entity", "result"}, // result: found|not_found
	)
	CatalogRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "kennedia", Name: "catalog_refreshes_total", Help: "Catalog reload attempts."},
		[]string{"result"}, // result: swapped|unchanged|error
	)
	NewsletterSignups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "kennedia", Name: "newsletter_signups_total", Help: "Newsletter form posts."},
		[]string{"result"}, // result: ok|invalid
	)
)

// Serve exposes reg on its own listener. Empty addr disables it.
func Serve(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, CacheEvents, CatalogLookups, CatalogRefreshes, NewsletterSignups)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveLookup(entity string, found bool) {
	result := "found"
	if !found {
		result = "not_found"
	}
	CatalogLookups.WithLabelValues(entity, result).Inc()
}

func ObserveRefresh(result string) { CatalogRefreshes.WithLabelValues(result).Inc() }

func ObserveSignup(result string) { NewsletterSignups.WithLabelValues(result).Inc() }

package observability

import (
	"time"

	"github.com/finhealthai/finhealth-web-go/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds all Prometheus metrics for the web client.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	requestDuration  *prometheus.HistogramVec
	externalErrors   *prometheus.CounterVec
	submissionsTotal *prometheus.CounterVec
	cacheHits        *prometheus.CounterVec
	cacheMisses      *prometheus.CounterVec
	languageSwitches *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finhealth_request_duration_seconds",
				Help:    "Duration of requests by operation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		externalErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finhealth_external_errors_total",
				Help: "Total errors from the analysis engine.",
			},
			[]string{"service"},
		),
		submissionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finhealth_submissions_total",
				Help: "Total analysis submissions by entry mode and outcome.",
			},
			[]string{"mode", "status"},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finhealth_cache_hits_total",
				Help: "Total cache hits.",
			},
			[]string{"cache"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finhealth_cache_misses_total",
				Help: "Total cache misses.",
			},
			[]string{"cache"},
		),
		languageSwitches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finhealth_language_switches_total",
				Help: "Total display language changes by target language.",
			},
			[]string{"language"},
		),
	}
}

// RecordRequestDuration records the duration of an operation.
func (m *Metrics) RecordRequestDuration(operation string, d time.Duration) {
	m.requestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrExternalError increments the external error counter.
func (m *Metrics) IncrExternalError(service string) {
	m.externalErrors.WithLabelValues(service).Inc()
}

// IncrSubmission increments the submission counter. Mode is "manual" or
// "upload"; status is "success", "rejected", or "error".
func (m *Metrics) IncrSubmission(mode, status string) {
	m.submissionsTotal.WithLabelValues(mode, status).Inc()
}

// IncrCacheHit increments the cache hit counter.
func (m *Metrics) IncrCacheHit(cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

// IncrCacheMiss increments the cache miss counter.
func (m *Metrics) IncrCacheMiss(cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

// IncrLanguageSwitch increments the language switch counter.
func (m *Metrics) IncrLanguageSwitch(lang string) {
	m.languageSwitches.WithLabelValues(lang).Inc()
}

// GetSessionSnapshot returns a snapshot of session-related counters suitable
// for the GET /v1/metrics/summary endpoint.
func (m *Metrics) GetSessionSnapshot() *domain.SessionMetrics {
	// Prometheus counters expose cumulative values.
	var total, failed float64
	for _, mode := range []string{"manual", "upload"} {
		for _, status := range []string{"success", "rejected", "error"} {
			v := getCounterValue(m.submissionsTotal, mode, status)
			total += v
			if status != "success" {
				failed += v
			}
		}
	}

	cacheHits := getCounterValue(m.cacheHits, "report")
	cacheMisses := getCounterValue(m.cacheMisses, "report")

	var switches float64
	for _, lang := range domain.Languages {
		switches += getCounterValue(m.languageSwitches, string(lang))
	}

	errorRate := float64(0)
	cacheHitRate := float64(0)
	if total > 0 {
		errorRate = failed / total
	}
	if cacheHits+cacheMisses > 0 {
		cacheHitRate = cacheHits / (cacheHits + cacheMisses)
	}

	return &domain.SessionMetrics{
		TotalSubmissions:  int64(total),
		FailedSubmissions: int64(failed),
		ErrorRate:         errorRate,
		ReportCacheHits:   int64(cacheHits),
		ReportCacheMisses: int64(cacheMisses),
		CacheHitRate:      cacheHitRate,
		LanguageSwitches:  int64(switches),
		Period:            "all_time",
	}
}

// getCounterValue extracts the current float64 value from a CounterVec for the
// given labels.
func getCounterValue(cv *prometheus.CounterVec, labels ...string) float64 {
	counter := cv.WithLabelValues(labels...)
	m := &dto.Metric{}
	if err := counter.(prometheus.Metric).Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}

package handler

import (
	"net/http"

	"github.com/finhealthai/finhealth-web-go/internal/infra/observability"
	"github.com/finhealthai/finhealth-web-go/internal/port"
	"github.com/finhealthai/finhealth-web-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// NewRouter creates the HTTP router with all routes and middleware. The
// pinger may be nil, in which case /healthz skips the engine probe.
func NewRouter(svc *service.Analysis, pinger port.Pinger, metrics *observability.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler(pinger))
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- Pages ---
	r.Get("/", indexHandler(svc, logger))
	r.Post("/profile", profileHandler(svc, logger))
	r.Post("/profile/skip", skipProfileHandler(svc, logger))
	r.Post("/analyze", analyzeHandler(svc, logger))
	r.Post("/upload", uploadHandler(svc, logger))
	r.Get("/report", reportHandler(svc, logger))
	r.Post("/language", languageHandler(svc, logger))
	r.Post("/reset", resetHandler(svc, logger))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {
		r.Get("/session", sessionHandler(svc, logger))
		r.Get("/view", viewHandler(svc, logger))
		r.Get("/metrics/summary", metricsSummaryHandler(svc, logger))
	})

	return r
}

// healthzHandler reports liveness and, best effort, whether the analysis
// engine is reachable. An unreachable engine does not fail the check; the
// process itself is healthy.
func healthzHandler(pinger port.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"status": "ok"}
		if pinger != nil {
			if err := pinger.Ping(r.Context()); err != nil {
				payload["engine"] = "unreachable"
			} else {
				payload["engine"] = "ok"
			}
		}
		writeJSON(w, http.StatusOK, payload)
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

package handler

import (
	"net/http"

	"github.com/finhealthai/finhealth-web-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// GET /v1/session — compact session state
// ============================================================

func sessionHandler(svc *service.Analysis, _ *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Snapshot())
	}
}

// ============================================================
// GET /v1/view — full dashboard projection
// ============================================================

func viewHandler(svc *service.Analysis, _ *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// A nil view serializes to null: no result means nothing to show,
		// not an error.
		writeJSON(w, http.StatusOK, svc.View())
	}
}

// ============================================================
// GET /v1/metrics/summary — counters snapshot
// ============================================================

func metricsSummaryHandler(svc *service.Analysis, _ *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.MetricsSummary())
	}
}

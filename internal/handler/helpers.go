package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finhealthai/finhealth-web-go/internal/domain"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// errorStatus maps domain errors to HTTP status codes.
func errorStatus(err error) int {
	var validation *domain.ErrValidation
	var unsupported *domain.ErrUnsupportedLanguage
	var conflict *domain.ErrStageConflict
	var busy *domain.ErrBusy
	var rejected *domain.ErrAnalysisRejected
	var circuitOpen *domain.ErrCircuitOpen
	var external *domain.ErrExternalService

	switch {
	case errors.As(err, &validation), errors.As(err, &unsupported):
		return http.StatusBadRequest
	case errors.As(err, &conflict), errors.As(err, &busy):
		return http.StatusConflict
	case errors.As(err, &rejected):
		return http.StatusUnprocessableEntity
	case errors.As(err, &circuitOpen):
		return http.StatusServiceUnavailable
	case errors.As(err, &external):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage is the user-facing text for a failure. Engine rejections show
// their detail verbatim; transport-level failures collapse to the generic
// connection message rather than leaking internals.
func errorMessage(err error) string {
	var circuitOpen *domain.ErrCircuitOpen
	var external *domain.ErrExternalService

	switch {
	case errors.As(err, &circuitOpen), errors.As(err, &external):
		return domain.GenericAnalysisFailure
	default:
		return err.Error()
	}
}

// handleServiceError maps domain errors to JSON HTTP responses.
func handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	status := errorStatus(err)

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("request failed", zap.Error(err))
	case status == http.StatusConflict:
		logger.Warn("stage conflict", zap.Error(err))
	default:
		logger.Debug("request rejected", zap.String("error", err.Error()))
	}

	writeError(w, status, errorMessage(err))
}

package domain

import "fmt"

// Error types for consistent error handling across the web layer.

// ErrValidation indicates a validation error (bad input).
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}

// ErrExternalService indicates a transport-level failure calling the
// analysis engine.
type ErrExternalService struct {
	Service string
	Err     error
}

func (e *ErrExternalService) Error() string {
	return fmt.Sprintf("external service error [%s]: %v", e.Service, e.Err)
}

func (e *ErrExternalService) Unwrap() error {
	return e.Err
}

// GenericAnalysisFailure is shown when the engine returns no error detail.
const GenericAnalysisFailure = "Failed to connect to analysis engine."

// ErrAnalysisRejected indicates the analysis engine refused the submission.
// Detail is the engine's structured error message, shown to the user
// verbatim; when absent, a fixed generic message is used instead.
type ErrAnalysisRejected struct {
	Status int
	Detail string
}

func (e *ErrAnalysisRejected) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return GenericAnalysisFailure
}

// ErrStageConflict indicates a workflow transition fired from the wrong
// stage (e.g. a duplicate submit racing a completed one).
type ErrStageConflict struct {
	Transition string
	Stage      Stage
}

func (e *ErrStageConflict) Error() string {
	return fmt.Sprintf("transition %s not allowed from stage %s", e.Transition, e.Stage)
}

// ErrUnsupportedLanguage indicates a language switch to an unknown code.
type ErrUnsupportedLanguage struct {
	Code string
}

func (e *ErrUnsupportedLanguage) Error() string {
	return fmt.Sprintf("unsupported language: %s", e.Code)
}

// ErrCircuitOpen indicates the circuit breaker is open.
type ErrCircuitOpen struct {
	Service string
}

func (e *ErrCircuitOpen) Error() string {
	return fmt.Sprintf("circuit breaker open for service: %s", e.Service)
}

// ErrBusy indicates a submission is already in flight.
type ErrBusy struct{}

func (e *ErrBusy) Error() string {
	return "a submission is already being processed"
}

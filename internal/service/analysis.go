package service

import (
	"context"
	"time"

	"github.com/finhealthai/finhealth-web-go/internal/domain"
	"github.com/finhealthai/finhealth-web-go/internal/forms"
	"github.com/finhealthai/finhealth-web-go/internal/infra/observability"
	"github.com/finhealthai/finhealth-web-go/internal/infra/resilience"
	"github.com/finhealthai/finhealth-web-go/internal/port"
	"github.com/finhealthai/finhealth-web-go/internal/projector"
	"github.com/finhealthai/finhealth-web-go/internal/render"
	"github.com/finhealthai/finhealth-web-go/internal/workflow"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("service/analysis")

// Analysis orchestrates the workflow controller, the analysis engine client,
// and the renderer. Exactly one submission may be in flight at a time; a
// second one gets a busy error instead of queueing behind the first.
type Analysis struct {
	controller *workflow.Controller
	analyzer   port.Analyzer
	uploader   port.Uploader
	renderer   *render.Renderer
	bulkhead   *resilience.Bulkhead
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewAnalysis creates the analysis service with all dependencies injected.
func NewAnalysis(
	controller *workflow.Controller,
	analyzer port.Analyzer,
	uploader port.Uploader,
	renderer *render.Renderer,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Analysis {
	return &Analysis{
		controller: controller,
		analyzer:   analyzer,
		uploader:   uploader,
		renderer:   renderer,
		bulkhead:   resilience.NewBulkhead(1),
		metrics:    metrics,
		logger:     logger,
	}
}

// SubmitProfile validates and stores the business profile.
func (s *Analysis) SubmitProfile(profile *domain.BusinessProfile) error {
	return s.controller.SubmitProfile(profile)
}

// SkipProfile stores the default profile.
func (s *Analysis) SkipProfile() error {
	return s.controller.SkipProfile()
}

// Analyze normalizes the manual-entry fields, submits them to the engine,
// and advances the session to results. On success the report cache is warmed
// for every language.
func (s *Analysis) Analyze(ctx context.Context, raw map[string]string) error {
	ctx, span := tracer.Start(ctx, "Analysis.Analyze")
	defer span.End()

	return s.submit(ctx, "manual", func(ctx context.Context, profile *domain.BusinessProfile, lang domain.Language) (*domain.AnalysisResult, error) {
		values, err := forms.Normalize(raw)
		if err != nil {
			return nil, err
		}
		return s.analyzer.Analyze(ctx, &domain.AnalysisSubmission{
			BusinessProfile:    profile,
			FinancialStatement: forms.Statement(values),
			Language:           lang,
		})
	})
}

// Upload forwards a statement document to the engine and advances the
// session to results.
func (s *Analysis) Upload(ctx context.Context, fileName string, content []byte) error {
	ctx, span := tracer.Start(ctx, "Analysis.Upload")
	defer span.End()
	span.SetAttributes(attribute.String("file.name", fileName))

	return s.submit(ctx, "upload", func(ctx context.Context, profile *domain.BusinessProfile, lang domain.Language) (*domain.AnalysisResult, error) {
		return s.uploader.Upload(ctx, &domain.UploadRequest{
			FileName: fileName,
			Content:  content,
			Profile:  profile,
			Language: lang,
		})
	})
}

// submit runs one engine call under the bulkhead and the stage guards.
func (s *Analysis) submit(ctx context.Context, mode string, call func(context.Context, *domain.BusinessProfile, domain.Language) (*domain.AnalysisResult, error)) error {
	if !s.bulkhead.TryAcquire() {
		return &domain.ErrBusy{}
	}
	defer s.bulkhead.Release()

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration(mode, time.Since(start))
	}()

	session := s.controller.Snapshot()
	if session.Stage != domain.StageFinancial {
		return &domain.ErrStageConflict{Transition: "submit", Stage: session.Stage}
	}

	result, err := call(ctx, session.Profile, session.Language)
	if err != nil {
		status := submissionStatus(err)
		s.metrics.IncrSubmission(mode, status)
		if status == "error" {
			s.metrics.IncrExternalError("analysis")
		}
		s.logger.Error("submission failed",
			zap.String("mode", mode),
			zap.Error(err),
		)
		return err
	}

	if err := s.controller.CompleteAnalysis(result); err != nil {
		// A concurrent submission won the race; this result is dropped.
		s.metrics.IncrSubmission(mode, "error")
		return err
	}
	s.metrics.IncrSubmission(mode, "success")

	s.renderer.WarmReports(ctx, result, session.Profile)
	return nil
}

// Report renders the print report for the current result in the active
// language.
func (s *Analysis) Report(ctx context.Context) (string, error) {
	_, span := tracer.Start(ctx, "Analysis.Report")
	defer span.End()

	session := s.controller.Snapshot()
	if session.Result == nil {
		return "", &domain.ErrStageConflict{Transition: "report", Stage: session.Stage}
	}
	return s.renderer.ReportHTML(session.Result, session.Profile, session.Language)
}

// SetLanguage switches the display language.
func (s *Analysis) SetLanguage(code string) error {
	if err := s.controller.SetLanguage(domain.Language(code)); err != nil {
		return err
	}
	s.metrics.IncrLanguageSwitch(code)
	return nil
}

// Reset clears the session and the report cache.
func (s *Analysis) Reset() {
	s.controller.Reset()
	s.renderer.PurgeReports()
}

// Snapshot returns the compact session view.
func (s *Analysis) Snapshot() *domain.SessionSnapshot {
	session := s.controller.Snapshot()
	snap := &domain.SessionSnapshot{
		Stage:    session.Stage,
		Profile:  session.Profile,
		Language: session.Language,
	}
	if session.Result != nil {
		snap.HasResult = true
		snap.ResultID = session.Result.ID
	}
	return snap
}

// View projects the current result for the active language; nil when the
// session has no result.
func (s *Analysis) View() *projector.View {
	session := s.controller.Snapshot()
	return projector.Project(session.Result, session.Profile, session.Language)
}

// Page assembles the data for the current stage page.
func (s *Analysis) Page() *render.Page {
	snap := s.Snapshot()
	page := &render.Page{
		Language: snap.Language,
		Snapshot: snap,
	}
	if snap.Stage == domain.StageFinancial {
		page.Fields = domain.StatementFields
		page.Values = forms.DisplayValues(forms.DefaultStatement())
	}
	if snap.Stage == domain.StageResults {
		page.View = s.View()
	}
	return page
}

// Renderer exposes the renderer for the HTTP layer.
func (s *Analysis) Renderer() *render.Renderer {
	return s.renderer
}

// MetricsSummary returns the counters snapshot.
func (s *Analysis) MetricsSummary() *domain.SessionMetrics {
	return s.metrics.GetSessionSnapshot()
}

// submissionStatus classifies a failed engine call for metrics.
func submissionStatus(err error) string {
	switch err.(type) {
	case *domain.ErrAnalysisRejected, *domain.ErrValidation:
		return "rejected"
	default:
		return "error"
	}
}

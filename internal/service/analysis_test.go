package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/finhealthai/finhealth-web-go/internal/domain"
	"github.com/finhealthai/finhealth-web-go/internal/infra/cache"
	"github.com/finhealthai/finhealth-web-go/internal/infra/observability"
	"github.com/finhealthai/finhealth-web-go/internal/render"
	"github.com/finhealthai/finhealth-web-go/internal/service"
	"github.com/finhealthai/finhealth-web-go/internal/workflow"

	"go.uber.org/zap"
)

// --- Mocks ---

type mockAnalyzer struct {
	result *domain.AnalysisResult
	err    error
	fn     func(context.Context, *domain.AnalysisSubmission) (*domain.AnalysisResult, error)
	got    *domain.AnalysisSubmission
}

func (m *mockAnalyzer) Analyze(ctx context.Context, sub *domain.AnalysisSubmission) (*domain.AnalysisResult, error) {
	m.got = sub
	if m.fn != nil {
		return m.fn(ctx, sub)
	}
	return m.result, m.err
}

type mockUploader struct {
	result *domain.AnalysisResult
	err    error
	got    *domain.UploadRequest
}

func (m *mockUploader) Upload(_ context.Context, up *domain.UploadRequest) (*domain.AnalysisResult, error) {
	m.got = up
	return m.result, m.err
}

func sampleResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		ID:                    "res-service-test",
		HealthScore:           85,
		CreditworthinessScore: 70,
		RiskLevel:             domain.RiskLow,
		Insights:              []string{"Healthy margins."},
		Recommendations:       []string{"Build a cash reserve."},
		Metrics: domain.MetricCategories{
			Order:      []string{"liquidity"},
			FieldOrder: map[string][]string{"liquidity": {"current_ratio"}},
			Values:     map[string]map[string]any{"liquidity": {"current_ratio": 2.0}},
		},
		ReceivedAt: time.Now(),
	}
}

func newService(t *testing.T, analyzer *mockAnalyzer, uploader *mockUploader) *service.Analysis {
	t.Helper()

	renderer, err := render.New(cache.New[string](time.Minute), zap.NewNop(), nil, nil)
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}
	controller := workflow.New(domain.LangEnglish, zap.NewNop())
	return service.NewAnalysis(controller, analyzer, uploader, renderer, observability.NewMetrics(), zap.NewNop())
}

func rawStatement() map[string]string {
	return map[string]string{"revenue": "1000000", "net_income": "200000"}
}

// --- Tests ---

func TestAnalyze_FullFlow(t *testing.T) {
	analyzer := &mockAnalyzer{result: sampleResult()}
	svc := newService(t, analyzer, &mockUploader{})

	profile := &domain.BusinessProfile{
		Name:         "Acme Co",
		BusinessType: domain.PrivateLimited,
		Industry:     domain.Retail,
		Size:         domain.SizeSmall,
	}
	if err := svc.SubmitProfile(profile); err != nil {
		t.Fatalf("SubmitProfile failed: %v", err)
	}

	if err := svc.Analyze(context.Background(), rawStatement()); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if analyzer.got.BusinessProfile.Name != "Acme Co" {
		t.Errorf("profile not forwarded: %+v", analyzer.got.BusinessProfile)
	}
	if analyzer.got.FinancialStatement.Revenue != 1000000 {
		t.Errorf("revenue = %v", analyzer.got.FinancialStatement.Revenue)
	}
	if analyzer.got.Language != domain.LangEnglish {
		t.Errorf("language = %s", analyzer.got.Language)
	}

	snap := svc.Snapshot()
	if snap.Stage != domain.StageResults {
		t.Errorf("stage = %s, want results", snap.Stage)
	}
	if !snap.HasResult || snap.ResultID != "res-service-test" {
		t.Errorf("snapshot = %+v", snap)
	}

	summary := svc.MetricsSummary()
	if summary.TotalSubmissions != 1 || summary.FailedSubmissions != 0 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestAnalyze_WrongStage(t *testing.T) {
	svc := newService(t, &mockAnalyzer{result: sampleResult()}, &mockUploader{})

	err := svc.Analyze(context.Background(), rawStatement())

	var conflict *domain.ErrStageConflict
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ErrStageConflict from profile stage, got %v", err)
	}
}

func TestAnalyze_EngineErrorKeepsStage(t *testing.T) {
	analyzer := &mockAnalyzer{err: &domain.ErrAnalysisRejected{Status: 422, Detail: "bad input"}}
	svc := newService(t, analyzer, &mockUploader{})

	if err := svc.SkipProfile(); err != nil {
		t.Fatal(err)
	}
	err := svc.Analyze(context.Background(), rawStatement())

	var rejected *domain.ErrAnalysisRejected
	if !errors.As(err, &rejected) {
		t.Fatalf("expected ErrAnalysisRejected, got %v", err)
	}
	if snap := svc.Snapshot(); snap.Stage != domain.StageFinancial {
		t.Errorf("stage = %s, want financial after failed submission", snap.Stage)
	}
	if summary := svc.MetricsSummary(); summary.FailedSubmissions != 1 {
		t.Errorf("failed submissions = %d, want 1", summary.FailedSubmissions)
	}
}

func TestAnalyze_InvalidFieldRejectedBeforeEngineCall(t *testing.T) {
	analyzer := &mockAnalyzer{result: sampleResult()}
	svc := newService(t, analyzer, &mockUploader{})

	if err := svc.SkipProfile(); err != nil {
		t.Fatal(err)
	}
	err := svc.Analyze(context.Background(), map[string]string{"revenue": "abc"})

	var validation *domain.ErrValidation
	if !errors.As(err, &validation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if analyzer.got != nil {
		t.Error("engine was called despite invalid input")
	}
}

func TestAnalyze_BusyWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	analyzer := &mockAnalyzer{
		fn: func(context.Context, *domain.AnalysisSubmission) (*domain.AnalysisResult, error) {
			close(started)
			<-release
			return sampleResult(), nil
		},
	}
	svc := newService(t, analyzer, &mockUploader{})

	if err := svc.SkipProfile(); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		done <- svc.Analyze(context.Background(), rawStatement())
	}()
	<-started

	err := svc.Analyze(context.Background(), rawStatement())
	var busy *domain.ErrBusy
	if !errors.As(err, &busy) {
		t.Errorf("expected ErrBusy for concurrent submission, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first submission failed: %v", err)
	}
}

func TestUpload_FullFlow(t *testing.T) {
	uploader := &mockUploader{result: sampleResult()}
	svc := newService(t, &mockAnalyzer{}, uploader)

	if err := svc.SkipProfile(); err != nil {
		t.Fatal(err)
	}
	if err := svc.Upload(context.Background(), "statements.csv", []byte("Revenue\n100\n")); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if uploader.got.FileName != "statements.csv" {
		t.Errorf("file name = %q", uploader.got.FileName)
	}
	if uploader.got.Profile == nil || uploader.got.Profile.Name != "My Business" {
		t.Errorf("default profile not forwarded: %+v", uploader.got.Profile)
	}
	if snap := svc.Snapshot(); snap.Stage != domain.StageResults {
		t.Errorf("stage = %s", snap.Stage)
	}
}

func TestReport_FollowsActiveLanguage(t *testing.T) {
	svc := newService(t, &mockAnalyzer{result: sampleResult()}, &mockUploader{})

	if err := svc.SkipProfile(); err != nil {
		t.Fatal(err)
	}
	if err := svc.Analyze(context.Background(), rawStatement()); err != nil {
		t.Fatal(err)
	}

	english, err := svc.Report(context.Background())
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if !strings.Contains(english, "Financial Health Score") {
		t.Error("English report missing English heading")
	}

	if err := svc.SetLanguage("ta"); err != nil {
		t.Fatal(err)
	}
	tamil, err := svc.Report(context.Background())
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if !strings.Contains(tamil, "மேலோட்டம்") {
		t.Error("Tamil report not localized")
	}
	if !strings.Contains(tamil, "Comprehensive Financial Analysis") {
		t.Error("Tamil report missing English header line")
	}
}

func TestReport_NoResult(t *testing.T) {
	svc := newService(t, &mockAnalyzer{}, &mockUploader{})

	_, err := svc.Report(context.Background())
	var conflict *domain.ErrStageConflict
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ErrStageConflict without a result, got %v", err)
	}
}

func TestSetLanguage_Unknown(t *testing.T) {
	svc := newService(t, &mockAnalyzer{}, &mockUploader{})

	err := svc.SetLanguage("fr")
	var unsupported *domain.ErrUnsupportedLanguage
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
	if svc.Snapshot().Language != domain.LangEnglish {
		t.Error("language changed despite rejection")
	}
}

func TestReset_ClearsSessionAndView(t *testing.T) {
	svc := newService(t, &mockAnalyzer{result: sampleResult()}, &mockUploader{})

	if err := svc.SkipProfile(); err != nil {
		t.Fatal(err)
	}
	if err := svc.Analyze(context.Background(), rawStatement()); err != nil {
		t.Fatal(err)
	}

	svc.Reset()

	snap := svc.Snapshot()
	if snap.Stage != domain.StageProfile || snap.HasResult || snap.Profile != nil {
		t.Errorf("snapshot after reset = %+v", snap)
	}
	if svc.View() != nil {
		t.Error("view should be nil after reset")
	}
	if _, err := svc.Report(context.Background()); err == nil {
		t.Error("report should fail after reset")
	}
}

func TestPage_PerStage(t *testing.T) {
	svc := newService(t, &mockAnalyzer{result: sampleResult()}, &mockUploader{})

	if page := svc.Page(); page.Snapshot.Stage != domain.StageProfile || page.View != nil {
		t.Errorf("profile page = %+v", page)
	}

	if err := svc.SkipProfile(); err != nil {
		t.Fatal(err)
	}
	page := svc.Page()
	if page.Snapshot.Stage != domain.StageFinancial {
		t.Errorf("stage = %s", page.Snapshot.Stage)
	}
	if len(page.Fields) != 11 || page.Values["revenue"] != "1000000" {
		t.Errorf("financial page fields = %v values = %v", page.Fields, page.Values)
	}

	if err := svc.Analyze(context.Background(), rawStatement()); err != nil {
		t.Fatal(err)
	}
	page = svc.Page()
	if page.View == nil || page.View.Overview.HealthScore != 85 {
		t.Errorf("results page view = %+v", page.View)
	}
}

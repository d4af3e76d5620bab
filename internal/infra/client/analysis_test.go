package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finhealthai/finhealth-web-go/internal/domain"
	"github.com/finhealthai/finhealth-web-go/internal/infra/client"
	"github.com/finhealthai/finhealth-web-go/internal/infra/resilience"
)

var validEngineResponse = map[string]any{
	"health_score":           75,
	"creditworthiness_score": 68,
	"risk_level":             "Moderate",
	"insights":               []string{"Liquidity is adequate."},
	"recommendations":        []string{"Reduce operating expenses."},
	"metrics": map[string]any{
		"liquidity": map[string]any{"current_ratio": 1.8},
	},
}

func testConfig() resilience.Config {
	return resilience.Config{MaxRetries: 2, InitialBackoff: time.Millisecond, MaxConcurrency: 5}
}

func submission() *domain.AnalysisSubmission {
	return &domain.AnalysisSubmission{
		BusinessProfile:    domain.DefaultProfile(),
		FinancialStatement: &domain.FinancialStatement{Revenue: 1000000, NetIncome: 200000},
		Language:           domain.LangEnglish,
	}
}

func newClient(baseURL string, cfg resilience.Config) *client.AnalysisClient {
	cb := resilience.NewCircuitBreaker("analysis-test")
	httpClient := &http.Client{Timeout: 5 * time.Second}
	return client.NewAnalysisClient(httpClient, baseURL, cb, cfg)
}

func TestAnalyze_Success(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody domain.AnalysisSubmission

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(validEngineResponse)
	}))
	defer server.Close()

	c := newClient(server.URL, testConfig())
	result, err := c.Analyze(context.Background(), submission())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if gotPath != "/analyze" {
		t.Errorf("path = %s, want /analyze", gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %s", gotContentType)
	}
	if gotBody.BusinessProfile == nil || gotBody.BusinessProfile.Name != "My Business" {
		t.Errorf("submission profile not forwarded: %+v", gotBody.BusinessProfile)
	}

	if result.HealthScore != 75 {
		t.Errorf("health score = %d, want 75", result.HealthScore)
	}
	if result.RiskLevel != domain.RiskModerate {
		t.Errorf("risk level = %s", result.RiskLevel)
	}
	if result.ID == "" {
		t.Error("expected a locally assigned result ID")
	}
	if result.ReceivedAt.IsZero() {
		t.Error("expected ReceivedAt to be set")
	}
}

func TestAnalyze_RejectionWithDetail(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Revenue must be positive"})
	}))
	defer server.Close()

	c := newClient(server.URL, testConfig())
	_, err := c.Analyze(context.Background(), submission())

	var rejected *domain.ErrAnalysisRejected
	if !errors.As(err, &rejected) {
		t.Fatalf("expected ErrAnalysisRejected, got %v", err)
	}
	if rejected.Status != http.StatusUnprocessableEntity {
		t.Errorf("status = %d", rejected.Status)
	}
	if rejected.Error() != "Revenue must be positive" {
		t.Errorf("message = %q, want engine detail verbatim", rejected.Error())
	}
	if requests != 1 {
		t.Errorf("4xx rejection was retried: %d requests", requests)
	}
}

func TestAnalyze_RejectionWithoutDetailUsesGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": {"loc": ["body", "revenue"]}}`))
	}))
	defer server.Close()

	c := newClient(server.URL, testConfig())
	_, err := c.Analyze(context.Background(), submission())

	var rejected *domain.ErrAnalysisRejected
	if !errors.As(err, &rejected) {
		t.Fatalf("expected ErrAnalysisRejected, got %v", err)
	}
	if rejected.Error() != domain.GenericAnalysisFailure {
		t.Errorf("message = %q, want generic fallback", rejected.Error())
	}
}

func TestAnalyze_ServerErrorRetriesAndKeepsDetail(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail": "engine overloaded"}`))
	}))
	defer server.Close()

	cfg := testConfig()
	c := newClient(server.URL, cfg)
	_, err := c.Analyze(context.Background(), submission())

	var rejected *domain.ErrAnalysisRejected
	if !errors.As(err, &rejected) {
		t.Fatalf("expected ErrAnalysisRejected, got %v", err)
	}
	if rejected.Error() != "engine overloaded" {
		t.Errorf("message = %q", rejected.Error())
	}
	if want := cfg.MaxRetries + 1; requests != want {
		t.Errorf("requests = %d, want %d", requests, want)
	}
}

func TestAnalyze_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := newClient(server.URL, resilience.Config{MaxRetries: 0, InitialBackoff: time.Millisecond})
	_, err := c.Analyze(context.Background(), submission())

	var external *domain.ErrExternalService
	if !errors.As(err, &external) {
		t.Fatalf("expected ErrExternalService, got %v", err)
	}
	if external.Service != "analysis" {
		t.Errorf("service = %s", external.Service)
	}
}

func TestAnalyze_MalformedResponseRejected(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		// Missing required metrics and scores.
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"risk_level": "Low"}`))
	}))
	defer server.Close()

	c := newClient(server.URL, testConfig())
	_, err := c.Analyze(context.Background(), submission())

	var external *domain.ErrExternalService
	if !errors.As(err, &external) {
		t.Fatalf("expected ErrExternalService, got %v", err)
	}
	if requests != 1 {
		t.Errorf("malformed response was retried: %d requests", requests)
	}
}

func TestAnalyze_CircuitOpens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := newClient(server.URL, resilience.Config{MaxRetries: 0, InitialBackoff: time.Millisecond})

	// Default breaker trips after 5 requests at >=60% failure.
	var err error
	for i := 0; i < 10; i++ {
		_, err = c.Analyze(context.Background(), submission())
	}

	var open *domain.ErrCircuitOpen
	if !errors.As(err, &open) {
		t.Fatalf("expected ErrCircuitOpen after repeated failures, got %v", err)
	}
}

func TestUpload_Success(t *testing.T) {
	var gotQuery map[string]string
	var gotFileName string
	var gotContent []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"business_name": q.Get("business_name"),
			"business_type": q.Get("business_type"),
			"industry":      q.Get("industry"),
			"language":      q.Get("language"),
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("failed to read form file: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotFileName = header.Filename
		buf := make([]byte, header.Size)
		file.Read(buf)
		gotContent = buf

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(validEngineResponse)
	}))
	defer server.Close()

	c := newClient(server.URL, testConfig())
	result, err := c.Upload(context.Background(), &domain.UploadRequest{
		FileName: "statements.csv",
		Content:  []byte("Revenue,COGS\n1000000,600000\n"),
		Profile: &domain.BusinessProfile{
			Name:         "Acme Traders",
			BusinessType: domain.PrivateLimited,
			Industry:     domain.Retail,
			Size:         domain.SizeSmall,
		},
		Language: domain.LangHindi,
	})
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if gotQuery["business_name"] != "Acme Traders" {
		t.Errorf("business_name = %q", gotQuery["business_name"])
	}
	if gotQuery["business_type"] != "private_limited" {
		t.Errorf("business_type = %q", gotQuery["business_type"])
	}
	if gotQuery["industry"] != "retail" {
		t.Errorf("industry = %q", gotQuery["industry"])
	}
	if gotQuery["language"] != "hi" {
		t.Errorf("language = %q", gotQuery["language"])
	}
	if gotFileName != "statements.csv" {
		t.Errorf("file name = %q", gotFileName)
	}
	if string(gotContent) != "Revenue,COGS\n1000000,600000\n" {
		t.Errorf("file content = %q", gotContent)
	}
	if result.ID == "" {
		t.Error("expected a locally assigned result ID")
	}
}

func TestUpload_RejectionWithDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnsupportedMediaType)
		w.Write([]byte(`{"detail": "Unsupported file format. Please upload CSV or XLSX."}`))
	}))
	defer server.Close()

	c := newClient(server.URL, testConfig())
	_, err := c.Upload(context.Background(), &domain.UploadRequest{
		FileName: "notes.txt",
		Content:  []byte("hello"),
		Language: domain.LangEnglish,
	})

	var rejected *domain.ErrAnalysisRejected
	if !errors.As(err, &rejected) {
		t.Fatalf("expected ErrAnalysisRejected, got %v", err)
	}
	if rejected.Error() != "Unsupported file format. Please upload CSV or XLSX." {
		t.Errorf("message = %q", rejected.Error())
	}
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			t.Errorf("path = %s, want /", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := newClient(server.URL, testConfig())
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestPing_EngineDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := newClient(server.URL, testConfig())
	if err := c.Ping(context.Background()); err == nil {
		t.Error("expected an error for an unreachable engine")
	}
}

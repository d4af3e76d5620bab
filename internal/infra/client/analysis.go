// Package client implements the HTTP client for the analysis engine.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/finhealthai/finhealth-web-go/internal/domain"
	"github.com/finhealthai/finhealth-web-go/internal/infra/resilience"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"github.com/xeipuuv/gojsonschema"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("client")

// resultSchema is the minimal shape an analysis response must satisfy
// before it is accepted. Optional sections (benchmark, tax, forecast,
// products) are deliberately not required.
var resultSchema = map[string]any{
	"type": "object",
	"required": []any{
		"health_score",
		"creditworthiness_score",
		"risk_level",
		"insights",
		"recommendations",
		"metrics",
	},
	"properties": map[string]any{
		"health_score":           map[string]any{"type": "number"},
		"creditworthiness_score": map[string]any{"type": "number"},
		"risk_level":             map[string]any{"type": "string"},
		"insights":               map[string]any{"type": "array"},
		"recommendations":        map[string]any{"type": "array"},
		"metrics":                map[string]any{"type": "object"},
	},
}

// AnalysisClient calls the analysis engine (Python/FastAPI).
type AnalysisClient struct {
	httpClient *http.Client
	baseURL    string
	cb         *gobreaker.CircuitBreaker
	cfg        resilience.Config
}

// NewAnalysisClient creates a new AnalysisClient.
func NewAnalysisClient(httpClient *http.Client, baseURL string, cb *gobreaker.CircuitBreaker, cfg resilience.Config) *AnalysisClient {
	return &AnalysisClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		cb:         cb,
		cfg:        cfg,
	}
}

// Analyze submits a statement for analysis with retry, circuit breaker, and
// tracing. Engine rejections (4xx) are returned as ErrAnalysisRejected and
// are neither retried nor counted against the breaker; 5xx responses are
// retried, keeping the engine's last error detail.
func (c *AnalysisClient) Analyze(ctx context.Context, sub *domain.AnalysisSubmission) (*domain.AnalysisResult, error) {
	ctx, span := tracer.Start(ctx, "AnalysisClient.Analyze")
	defer span.End()
	span.SetAttributes(
		attribute.String("business.type", string(sub.BusinessProfile.BusinessType)),
		attribute.String("language", string(sub.Language)),
	)

	body, err := json.Marshal(sub)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "analysis", Err: err}
	}

	return c.post(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/analyze", c.baseURL), bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
}

// Upload forwards a raw statement document to the engine. Profile context
// and language travel as query parameters; the file bytes are sent as-is.
func (c *AnalysisClient) Upload(ctx context.Context, up *domain.UploadRequest) (*domain.AnalysisResult, error) {
	ctx, span := tracer.Start(ctx, "AnalysisClient.Upload")
	defer span.End()
	span.SetAttributes(
		attribute.String("file.name", up.FileName),
		attribute.String("language", string(up.Language)),
	)

	params := url.Values{}
	params.Set("language", string(up.Language))
	if p := up.Profile; p != nil {
		params.Set("business_name", p.Name)
		params.Set("business_type", string(p.BusinessType))
		params.Set("industry", string(p.Industry))
	}
	uploadURL := fmt.Sprintf("%s/upload?%s", c.baseURL, params.Encode())

	var form bytes.Buffer
	writer := multipart.NewWriter(&form)
	part, err := writer.CreateFormFile("file", up.FileName)
	if err != nil {
		return nil, &domain.ErrExternalService{Service: "analysis", Err: err}
	}
	if _, err := part.Write(up.Content); err != nil {
		return nil, &domain.ErrExternalService{Service: "analysis", Err: err}
	}
	if err := writer.Close(); err != nil {
		return nil, &domain.ErrExternalService{Service: "analysis", Err: err}
	}
	formBytes := form.Bytes()

	return c.post(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(formBytes))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", writer.FormDataContentType())
		return req, nil
	})
}

// Ping probes the engine's root endpoint. It bypasses the breaker and retry
// loop; health checks are best effort and must not consume failure budget.
func (c *AnalysisClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("analysis engine returned status %d", resp.StatusCode)
	}
	return nil
}

// post runs one engine call through the breaker and retry loop and decodes
// the validated response.
func (c *AnalysisClient) post(ctx context.Context, newRequest func(context.Context) (*http.Request, error)) (*domain.AnalysisResult, error) {
	var analysis domain.AnalysisResult
	var rejected *domain.ErrAnalysisRejected
	var malformed error

	_, err := c.cb.Execute(func() (any, error) {
		innerErr := resilience.RetryWithBackoff(ctx, c.cfg, func() error {
			rejected = nil
			malformed = nil

			req, err := newRequest(ctx)
			if err != nil {
				return err
			}

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}

			if resp.StatusCode != http.StatusOK {
				rejected = &domain.ErrAnalysisRejected{
					Status: resp.StatusCode,
					Detail: errorDetail(body),
				}
				if resp.StatusCode >= http.StatusInternalServerError {
					return fmt.Errorf("analysis engine returned status %d", resp.StatusCode)
				}
				return nil
			}

			if err := validateResult(body); err != nil {
				malformed = err
				return nil
			}

			return json.Unmarshal(body, &analysis)
		})
		if innerErr != nil {
			return nil, innerErr
		}
		if rejected != nil || malformed != nil {
			// Not a downstream fault; keep the breaker closed.
			return nil, nil
		}
		return &analysis, nil
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &domain.ErrCircuitOpen{Service: "analysis"}
		}
		if rejected != nil {
			return nil, rejected
		}
		return nil, &domain.ErrExternalService{Service: "analysis", Err: err}
	}
	if rejected != nil {
		return nil, rejected
	}
	if malformed != nil {
		return nil, &domain.ErrExternalService{Service: "analysis", Err: malformed}
	}

	analysis.ID = uuid.New().String()
	analysis.ReceivedAt = time.Now().UTC()
	return &analysis, nil
}

// errorDetail extracts the engine's structured error message. Anything that
// does not decode to a string detail yields "", and the caller falls back to
// the generic failure message.
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Detail
}

func validateResult(body []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(resultSchema)
	documentLoader := gojsonschema.NewBytesLoader(body)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("analysis response failed validation: %v", errs)
	}

	return nil
}

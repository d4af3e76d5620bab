// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the domain/service
// layer from concrete implementations.
package port

import (
	"context"

	"github.com/finhealthai/finhealth-web-go/internal/domain"
)

// Analyzer submits a structured statement to the analysis engine.
type Analyzer interface {
	Analyze(ctx context.Context, sub *domain.AnalysisSubmission) (*domain.AnalysisResult, error)
}

// Uploader forwards a raw statement document to the analysis engine.
type Uploader interface {
	Upload(ctx context.Context, up *domain.UploadRequest) (*domain.AnalysisResult, error)
}

// Pinger probes the analysis engine's health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
	Purge()
}

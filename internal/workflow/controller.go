// Package workflow owns the single process-wide session and the linear
// profile → financial → results state machine. All reads and writes go
// through the Controller; there is no other session state anywhere.
package workflow

import (
	"sync"

	"github.com/finhealthai/finhealth-web-go/internal/domain"

	"go.uber.org/zap"
)

// Controller holds the session behind a mutex. The logical UI is a linear
// single-user flow, but HTTP handlers run concurrently, so transitions stay
// discrete atomic updates. Guards make duplicate rapid firing (double-submit)
// harmless rather than relying on the disabled-control convention alone.
type Controller struct {
	mu      sync.Mutex
	session domain.Session
	logger  *zap.Logger
}

// New creates a controller at the profile stage with the given default
// language.
func New(lang domain.Language, logger *zap.Logger) *Controller {
	if !lang.Valid() {
		lang = domain.LangEnglish
	}
	return &Controller{
		session: domain.Session{
			Stage:    domain.StageProfile,
			Language: lang,
		},
		logger: logger,
	}
}

// SubmitProfile stores the profile verbatim and advances to the financial
// stage. Only legal from the profile stage.
func (c *Controller) SubmitProfile(profile *domain.BusinessProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.Stage != domain.StageProfile {
		return &domain.ErrStageConflict{Transition: "submitProfile", Stage: c.session.Stage}
	}

	c.session.Profile = profile
	c.session.Stage = domain.StageFinancial

	c.logger.Info("profile submitted",
		zap.String("business_name", profile.Name),
		zap.String("industry", string(profile.Industry)),
	)
	return nil
}

// SkipProfile stores the fixed default profile and advances to the financial
// stage.
func (c *Controller) SkipProfile() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.Stage != domain.StageProfile {
		return &domain.ErrStageConflict{Transition: "skipProfile", Stage: c.session.Stage}
	}

	c.session.Profile = domain.DefaultProfile()
	c.session.Stage = domain.StageFinancial

	c.logger.Info("profile skipped, default stored")
	return nil
}

// CompleteAnalysis stores the result and advances to the results stage.
// Only legal from the financial stage, which also guarantees the profile is
// already populated — results is never reachable without both.
func (c *Controller) CompleteAnalysis(result *domain.AnalysisResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.Stage != domain.StageFinancial {
		return &domain.ErrStageConflict{Transition: "completeAnalysis", Stage: c.session.Stage}
	}

	c.session.Result = result
	c.session.Stage = domain.StageResults

	c.logger.Info("analysis completed",
		zap.String("result_id", result.ID),
		zap.Int("health_score", result.HealthScore),
		zap.String("risk_level", string(result.RiskLevel)),
	)
	return nil
}

// Reset returns to the profile stage from any state, clearing profile and
// result. Always legal.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session.Stage = domain.StageProfile
	c.session.Profile = nil
	c.session.Result = nil

	c.logger.Info("session reset")
}

// SetLanguage switches the process-wide display language. It never touches
// the stored profile or result; only resolver output changes.
func (c *Controller) SetLanguage(lang domain.Language) error {
	if !lang.Valid() {
		return &domain.ErrUnsupportedLanguage{Code: string(lang)}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Language = lang
	return nil
}

// Language returns the active display language.
func (c *Controller) Language() domain.Language {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Language
}

// Snapshot returns a copy of the session. The profile and result pointers
// are shared, but both are immutable once stored.
func (c *Controller) Snapshot() domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Result returns the current analysis result, or nil outside the results
// stage. Callers must treat nil as "render nothing", not as an error: it is
// reachable transiently around reset.
func (c *Controller) Result() *domain.AnalysisResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Result
}

// Profile returns the current business profile, or nil at the profile stage.
func (c *Controller) Profile() *domain.BusinessProfile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Profile
}

package workflow_test

import (
	"errors"
	"testing"

	"github.com/finhealthai/finhealth-web-go/internal/domain"
	"github.com/finhealthai/finhealth-web-go/internal/workflow"

	"go.uber.org/zap"
)

func newController() *workflow.Controller {
	return workflow.New(domain.LangEnglish, zap.NewNop())
}

func validProfile() *domain.BusinessProfile {
	return &domain.BusinessProfile{
		Name:         "Acme Co",
		BusinessType: domain.PrivateLimited,
		Industry:     domain.Retail,
		Size:         domain.SizeSmall,
	}
}

func validResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		ID:          "res-1",
		HealthScore: 75,
		RiskLevel:   domain.RiskModerate,
	}
}

func TestSubmitProfile_AdvancesAndRetainsProfile(t *testing.T) {
	c := newController()

	if err := c.SubmitProfile(validProfile()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	s := c.Snapshot()
	if s.Stage != domain.StageFinancial {
		t.Errorf("stage = %s, want financial", s.Stage)
	}
	if s.Profile == nil || s.Profile.Name != "Acme Co" {
		t.Errorf("profile not retained verbatim: %+v", s.Profile)
	}
	if s.Profile.Industry != domain.Retail {
		t.Errorf("industry = %s, want retail", s.Profile.Industry)
	}
}

func TestSubmitProfile_RejectsInvalidProfile(t *testing.T) {
	c := newController()

	err := c.SubmitProfile(&domain.BusinessProfile{
		Name:         "Bad Type Co",
		BusinessType: "cooperative",
		Industry:     domain.Services,
		Size:         domain.SizeMedium,
	})
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	if s := c.Snapshot(); s.Stage != domain.StageProfile {
		t.Errorf("stage advanced despite invalid profile: %s", s.Stage)
	}
}

func TestSkipProfile_StoresDefault(t *testing.T) {
	c := newController()

	if err := c.SkipProfile(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	s := c.Snapshot()
	if s.Stage != domain.StageFinancial {
		t.Errorf("stage = %s, want financial", s.Stage)
	}
	want := domain.BusinessProfile{
		Name:         "My Business",
		BusinessType: domain.PrivateLimited,
		Industry:     domain.Services,
		Size:         domain.SizeMedium,
	}
	if s.Profile == nil || *s.Profile != want {
		t.Errorf("default profile = %+v, want %+v", s.Profile, want)
	}
}

func TestCompleteAnalysis_OnlyFromFinancial(t *testing.T) {
	c := newController()

	err := c.CompleteAnalysis(validResult())
	var conflict *domain.ErrStageConflict
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ErrStageConflict from profile stage, got %v", err)
	}

	if err := c.SkipProfile(); err != nil {
		t.Fatal(err)
	}
	if err := c.CompleteAnalysis(validResult()); err != nil {
		t.Fatalf("expected no error from financial stage, got %v", err)
	}

	s := c.Snapshot()
	if s.Stage != domain.StageResults {
		t.Errorf("stage = %s, want results", s.Stage)
	}
	if s.Result == nil {
		t.Error("result not stored")
	}
}

func TestCompleteAnalysis_DoubleSubmitIsConflict(t *testing.T) {
	c := newController()
	if err := c.SkipProfile(); err != nil {
		t.Fatal(err)
	}
	if err := c.CompleteAnalysis(validResult()); err != nil {
		t.Fatal(err)
	}

	err := c.CompleteAnalysis(validResult())
	var conflict *domain.ErrStageConflict
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ErrStageConflict on duplicate completion, got %v", err)
	}
}

func TestReset_ClearsEverything(t *testing.T) {
	c := newController()
	if err := c.SubmitProfile(validProfile()); err != nil {
		t.Fatal(err)
	}
	if err := c.CompleteAnalysis(validResult()); err != nil {
		t.Fatal(err)
	}

	c.Reset()

	s := c.Snapshot()
	if s.Stage != domain.StageProfile {
		t.Errorf("stage = %s, want profile", s.Stage)
	}
	if s.Profile != nil || s.Result != nil {
		t.Errorf("profile/result not cleared: %+v %+v", s.Profile, s.Result)
	}
}

// Session invariants must hold for every reachable state: results implies a
// result and a profile; financial implies a profile.
func TestSessionInvariants(t *testing.T) {
	c := newController()

	check := func(label string) {
		s := c.Snapshot()
		if s.Result != nil && s.Stage != domain.StageResults {
			t.Errorf("%s: result present outside results stage", label)
		}
		if (s.Stage == domain.StageFinancial || s.Stage == domain.StageResults) && s.Profile == nil {
			t.Errorf("%s: stage %s without profile", label, s.Stage)
		}
	}

	check("initial")
	_ = c.SubmitProfile(validProfile())
	check("after submit")
	_ = c.CompleteAnalysis(validResult())
	check("after complete")
	c.Reset()
	check("after reset")
	_ = c.SkipProfile()
	check("after skip")
}

func TestSetLanguage(t *testing.T) {
	c := newController()

	if err := c.SetLanguage(domain.LangTamil); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := c.Language(); got != domain.LangTamil {
		t.Errorf("language = %s, want ta", got)
	}

	err := c.SetLanguage(domain.Language("fr"))
	var unsupported *domain.ErrUnsupportedLanguage
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected ErrUnsupportedLanguage, got %v", err)
	}
	if got := c.Language(); got != domain.LangTamil {
		t.Errorf("language changed on rejected switch: %s", got)
	}
}

func TestSetLanguage_DoesNotTouchStoredData(t *testing.T) {
	c := newController()
	_ = c.SubmitProfile(validProfile())
	result := validResult()
	_ = c.CompleteAnalysis(result)

	if err := c.SetLanguage(domain.LangHindi); err != nil {
		t.Fatal(err)
	}

	s := c.Snapshot()
	if s.Profile.Name != "Acme Co" {
		t.Error("profile mutated by language switch")
	}
	if s.Result != result {
		t.Error("result replaced by language switch")
	}
}

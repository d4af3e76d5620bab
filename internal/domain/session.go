package domain

// Language is one of the supported display languages.
type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
	LangTamil   Language = "ta"
)

// Languages lists the supported languages in display order.
var Languages = []Language{LangEnglish, LangHindi, LangTamil}

// Valid reports whether the language is supported.
func (l Language) Valid() bool {
	switch l {
	case LangEnglish, LangHindi, LangTamil:
		return true
	}
	return false
}

// Stage is the workflow position of the session.
type Stage string

const (
	StageProfile   Stage = "profile"
	StageFinancial Stage = "financial"
	StageResults   Stage = "results"
)

// Session is the single process-wide UI state.
//
// Invariants, maintained by the workflow controller:
//   - Result != nil only when Stage == StageResults.
//   - Profile != nil for StageFinancial and StageResults.
type Session struct {
	Stage    Stage            `json:"stage"`
	Profile  *BusinessProfile `json:"profile,omitempty"`
	Result   *AnalysisResult  `json:"result,omitempty"`
	Language Language         `json:"language"`
}

// SessionSnapshot is the compact session view served to the front-end shell.
// The full result payload is omitted; only its presence is reported.
type SessionSnapshot struct {
	Stage     Stage            `json:"stage"`
	Profile   *BusinessProfile `json:"profile,omitempty"`
	HasResult bool             `json:"has_result"`
	ResultID  string           `json:"result_id,omitempty"`
	Language  Language         `json:"language"`
}

// SessionMetrics is the counters snapshot served by GET /v1/metrics/summary.
type SessionMetrics struct {
	TotalSubmissions  int64   `json:"total_submissions"`
	FailedSubmissions int64   `json:"failed_submissions"`
	ErrorRate         float64 `json:"error_rate"`
	ReportCacheHits   int64   `json:"report_cache_hits"`
	ReportCacheMisses int64   `json:"report_cache_misses"`
	CacheHitRate      float64 `json:"cache_hit_rate"`
	LanguageSwitches  int64   `json:"language_switches"`
	Period            string  `json:"period"`
}

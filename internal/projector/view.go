package projector

import (
	"github.com/finhealthai/finhealth-web-go/internal/domain"
	"github.com/finhealthai/finhealth-web-go/internal/i18n"
)

// Overview carries the score-card data for the first tab and the report
// header.
type Overview struct {
	HealthScore           int     `json:"health_score"`
	HealthTier            Tier    `json:"health_tier"`
	CreditworthinessScore int     `json:"creditworthiness_score"`
	CreditTier            Tier    `json:"credit_tier"`
	RiskLevel             string  `json:"risk_level"`
	RiskTier              Tier    `json:"risk_tier"`
	RiskLabel             string  `json:"risk_label"`
	OverallPerformance    string  `json:"overall_performance,omitempty"`
	PercentileRank        float64 `json:"percentile_rank,omitempty"`
	HasBenchmark          bool    `json:"has_benchmark"`
}

// TaxView flattens the optional tax section for display.
type TaxView struct {
	ComplianceStatus      string   `json:"compliance_status"`
	Compliant             bool     `json:"compliant"`
	FilingFrequency       string   `json:"filing_frequency"`
	ApplicableRate        float64  `json:"applicable_rate"`
	TaxableIncome         float64  `json:"taxable_income"`
	IncomeTaxRate         string   `json:"income_tax_rate"`
	EstimatedTaxLiability float64  `json:"estimated_tax_liability"`
	OptimizationTips      []string `json:"optimization_tips"`
}

// View is the complete projection of one analysis result for one language.
// The dashboard and the print report render from the same View instance;
// any value shown in one view is byte-identical in the other.
type View struct {
	ResultID string                   `json:"result_id"`
	Language domain.Language          `json:"language"`
	Profile  *domain.BusinessProfile  `json:"profile,omitempty"`

	// GeneratedAt is the analysis date formatted for the report header.
	// Always English; the printed copy doubles as a shareable document.
	GeneratedAt string `json:"generated_at,omitempty"`

	Tabs     []TabInfo `json:"tabs"`
	Overview Overview  `json:"overview"`

	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`

	KeyMetrics     []KeyMetric     `json:"key_metrics"`
	CategoryTables []CategoryTable `json:"category_tables"`

	CashFlow           []CashFlowRow `json:"cash_flow,omitempty"`
	WorkingCapitalRecs []string      `json:"working_capital_recs,omitempty"`

	RadarSeries    []RadarPoint   `json:"radar_series,omitempty"`
	BenchmarkTable []BenchmarkRow `json:"benchmark_table,omitempty"`

	Products []domain.ProductRecommendation `json:"products,omitempty"`

	Tax *TaxView `json:"tax,omitempty"`
}

// Project derives the full View. A nil result projects to nil: the results
// view is transiently reachable without a result and must render nothing
// rather than fail.
func Project(result *domain.AnalysisResult, profile *domain.BusinessProfile, lang domain.Language) *View {
	if result == nil {
		return nil
	}

	view := &View{
		ResultID: result.ID,
		Language: lang,
		Profile:  profile,

		GeneratedAt: generatedAt(result),

		Tabs: Tabs(result, lang),
		Overview: Overview{
			HealthScore:           result.HealthScore,
			HealthTier:            ScoreTier(result.HealthScore),
			CreditworthinessScore: result.CreditworthinessScore,
			CreditTier:            ScoreTier(result.CreditworthinessScore),
			RiskLevel:             string(result.RiskLevel),
			RiskTier:              RiskTier(result.RiskLevel),
			RiskLabel:             i18n.Resolve(lang, "dashboard.risk"),
		},

		Insights:        result.Insights,
		Recommendations: result.Recommendations,

		KeyMetrics:     KeyMetrics(result, lang),
		CategoryTables: CategoryTables(result, lang),

		CashFlow:    CashFlowSeries(result),
		RadarSeries: RadarSeries(result, lang),

		BenchmarkTable: BenchmarkTable(result, lang),
		Products:       ProductCards(result),
	}

	if bc := result.BenchmarkComparison; bc != nil {
		view.Overview.OverallPerformance = bc.OverallPerformance
		view.Overview.PercentileRank = bc.PercentileRank
		view.Overview.HasBenchmark = true
	}

	if fc := result.CashFlowForecast; fc != nil {
		view.WorkingCapitalRecs = fc.WorkingCapitalRecommendations
	}

	if tc := result.TaxCompliance; tc != nil {
		view.Tax = &TaxView{
			ComplianceStatus:      tc.GSTStatus.ComplianceStatus,
			Compliant:             tc.GSTStatus.ComplianceStatus == "Compliant",
			FilingFrequency:       tc.GSTStatus.FilingFrequency,
			ApplicableRate:        tc.GSTStatus.ApplicableRate,
			TaxableIncome:         tc.IncomeTaxEstimate.TaxableIncome,
			IncomeTaxRate:         tc.IncomeTaxEstimate.ApplicableRate,
			EstimatedTaxLiability: tc.IncomeTaxEstimate.EstimatedTaxLiability,
			OptimizationTips:      tc.TaxOptimizationTips,
		}
	}

	return view
}

func generatedAt(result *domain.AnalysisResult) string {
	if result.ReceivedAt.IsZero() {
		return ""
	}
	return result.ReceivedAt.Format("January 2, 2006")
}

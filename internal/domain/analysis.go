package domain

import "time"

// RiskLevel is the engine's overall risk classification.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// AnalysisResult is the payload returned by the analysis engine. It is held
// for the duration of the results stage and discarded on workflow reset.
// The ID is assigned locally on receipt (the engine returns no identifier);
// it keys the rendered-report cache.
type AnalysisResult struct {
	ID                    string `json:"id,omitempty"`
	HealthScore           int    `json:"health_score"`
	CreditworthinessScore int    `json:"creditworthiness_score"`

	RiskLevel       RiskLevel `json:"risk_level"`
	Insights        []string  `json:"insights"`
	Recommendations []string  `json:"recommendations"`

	// Metrics maps category name -> metric name -> value. Values are
	// usually numeric but the engine may emit strings (e.g. "N/A"), so
	// they stay untyped until the projector formats them.
	Metrics MetricCategories `json:"metrics"`

	BenchmarkComparison    *BenchmarkComparison    `json:"benchmark_comparison,omitempty"`
	ProductRecommendations []ProductRecommendation `json:"product_recommendations,omitempty"`
	TaxCompliance          *TaxCompliance          `json:"tax_compliance,omitempty"`
	CashFlowForecast       *CashFlowForecast       `json:"cash_flow_forecast,omitempty"`

	ReceivedAt time.Time `json:"received_at,omitempty"`
}

// MetricCategories preserves the engine's category iteration order, which is
// significant for rendering. Entries are decoded from the JSON object in
// document order; FieldOrder records each category's metric order the same
// way.
type MetricCategories struct {
	Order      []string
	FieldOrder map[string][]string
	Values     map[string]map[string]any
}

// BenchmarkComparison positions the business against its industry.
type BenchmarkComparison struct {
	PercentileRank     float64                  `json:"percentile_rank"`
	OverallPerformance string                   `json:"overall_performance"`
	MetricsComparison  OrderedMetricsComparison `json:"metrics_comparison"`
}

// MetricComparison is one metric's value against the industry.
type MetricComparison struct {
	Value           any     `json:"value"`
	IndustryAverage any     `json:"industry_average"`
	Percentile      float64 `json:"percentile"`
}

// OrderedMetricsComparison preserves the engine's metric iteration order.
type OrderedMetricsComparison struct {
	Order  []string
	Values map[string]MetricComparison
}

// ProductRecommendation is a financial product suggested by the engine.
// Eligibility is decided by the engine; the client only displays it.
type ProductRecommendation struct {
	Name         string `json:"name"`
	Provider     string `json:"provider"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	InterestRate string `json:"interest_rate"`
	Tenure       string `json:"tenure"`
	Eligible     bool   `json:"eligible"`
	Reason       string `json:"reason"`
}

// TaxCompliance groups the engine's GST and income-tax assessments.
type TaxCompliance struct {
	GSTStatus           GSTStatus         `json:"gst_status"`
	IncomeTaxEstimate   IncomeTaxEstimate `json:"income_tax_estimate"`
	TaxOptimizationTips []string          `json:"tax_optimization_tips"`
}

// GSTStatus is the engine's GST compliance assessment.
type GSTStatus struct {
	ComplianceStatus string  `json:"compliance_status"`
	FilingFrequency  string  `json:"filing_frequency"`
	ApplicableRate   float64 `json:"applicable_rate"`
}

// IncomeTaxEstimate is the engine's income-tax estimate.
type IncomeTaxEstimate struct {
	TaxableIncome         float64 `json:"taxable_income"`
	ApplicableRate        string  `json:"applicable_rate"`
	EstimatedTaxLiability float64 `json:"estimated_tax_liability"`
}

// CashFlowForecast is the engine's monthly projection series.
type CashFlowForecast struct {
	MonthlyProjections            []MonthlyProjection `json:"monthly_projections"`
	WorkingCapitalRecommendations []string            `json:"working_capital_recommendations"`
}

// MonthlyProjection is one forecast row. Numeric fields are pointers so a
// missing value can be told apart from zero; display treats both as 0.
type MonthlyProjection struct {
	Month       string   `json:"month"`
	Revenue     *float64 `json:"revenue"`
	NetIncome   *float64 `json:"net_income"`
	NetCashFlow *float64 `json:"net_cash_flow"`
}

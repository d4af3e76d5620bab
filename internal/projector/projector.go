// Package projector derives every rendering-ready structure from one
// analysis result. The interactive dashboard and the print report both
// consume the same View, so the two can never disagree on a number: parity
// is a property of the construction, not a convention.
//
// Every function here is a pure projection. Nothing performs I/O or touches
// session state.
package projector

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/finhealthai/finhealth-web-go/internal/domain"
	"github.com/finhealthai/finhealth-web-go/internal/i18n"
)

// Tier is the three-step palette shared by scores and risk levels.
type Tier string

const (
	TierGood     Tier = "good"
	TierWarning  Tier = "warning"
	TierCritical Tier = "critical"
)

// ScoreTier buckets a 0-100 score: >=80 good, >=50 warning, else critical.
func ScoreTier(score int) Tier {
	switch {
	case score >= 80:
		return TierGood
	case score >= 50:
		return TierWarning
	default:
		return TierCritical
	}
}

// RiskTier maps the engine's risk level onto the same palette.
func RiskTier(level domain.RiskLevel) Tier {
	switch level {
	case domain.RiskLow:
		return TierGood
	case domain.RiskModerate:
		return TierWarning
	default:
		return TierCritical
	}
}

// KeyMetric is one bar in the fixed key-metrics chart: the measured value
// against a fixed benchmark constant.
type KeyMetric struct {
	Key       string  `json:"key"`
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Benchmark float64 `json:"benchmark"`
}

// keyMetricDefs fixes the series order; it drives bar-chart rendering order
// and must not change.
var keyMetricDefs = []struct {
	labelKey  string
	category  string
	metric    string
	benchmark float64
}{
	{"currentRatio", "liquidity", "current_ratio", 1.5},
	{"profitMargin", "profitability", "net_profit_margin", 10},
	{"roe", "profitability", "return_on_equity", 15},
	{"assetTurnover", "efficiency", "asset_turnover", 1.5},
}

// KeyMetrics builds the fixed ordered four-triple series. A metric the
// engine did not report plots as 0.
func KeyMetrics(result *domain.AnalysisResult, lang domain.Language) []KeyMetric {
	out := make([]KeyMetric, 0, len(keyMetricDefs))
	for _, def := range keyMetricDefs {
		var value float64
		if cat, ok := result.Metrics.Values[def.category]; ok {
			if n, ok := asFloat(cat[def.metric]); ok {
				value = n
			}
		}
		out = append(out, KeyMetric{
			Key:       def.metric,
			Label:     i18n.Resolve(lang, "dashboard."+def.labelKey),
			Value:     value,
			Benchmark: def.benchmark,
		})
	}
	return out
}

// MetricRow is one formatted (metric, value) pair in a category table.
type MetricRow struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// CategoryTable is all metrics of one category, in payload order.
type CategoryTable struct {
	Key   string      `json:"key"`
	Title string      `json:"title"`
	Rows  []MetricRow `json:"rows"`
}

// CategoryTables lists every metric category in payload order. Numeric
// values are rounded to two decimals; anything else displays verbatim.
// Names use a translation when one exists for the active language and the
// mechanical underscores-to-spaces upper-case form otherwise.
func CategoryTables(result *domain.AnalysisResult, lang domain.Language) []CategoryTable {
	tables := make([]CategoryTable, 0, len(result.Metrics.Order))
	for _, category := range result.Metrics.Order {
		values, ok := result.Metrics.Values[category]
		if !ok {
			continue
		}

		table := CategoryTable{
			Key:   category,
			Title: labelFor(lang, category),
			Rows:  make([]MetricRow, 0, len(values)),
		}

		for _, metric := range result.Metrics.FieldOrder[category] {
			value, ok := values[metric]
			if !ok {
				continue
			}
			table.Rows = append(table.Rows, MetricRow{
				Key:   metric,
				Label: labelFor(lang, metric),
				Value: FormatValue(value),
			})
		}
		tables = append(tables, table)
	}
	return tables
}

// RadarPoint is one axis of the benchmark radar: the business's percentile
// for one metric on a fixed 0-100 scale.
type RadarPoint struct {
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	FullMark float64 `json:"full_mark"`
}

// RadarSeries derives one point per benchmark comparison metric, in payload
// order. An absent benchmark section yields an empty series.
func RadarSeries(result *domain.AnalysisResult, lang domain.Language) []RadarPoint {
	bc := result.BenchmarkComparison
	if bc == nil {
		return nil
	}

	points := make([]RadarPoint, 0, len(bc.MetricsComparison.Order))
	for _, key := range bc.MetricsComparison.Order {
		entry, ok := bc.MetricsComparison.Values[key]
		if !ok {
			continue
		}
		points = append(points, RadarPoint{
			Label:    labelFor(lang, key),
			Value:    entry.Percentile,
			FullMark: 100,
		})
	}
	return points
}

// BenchmarkRow is one row of the benchmark comparison table.
type BenchmarkRow struct {
	Label           string  `json:"label"`
	Value           string  `json:"value"`
	IndustryAverage string  `json:"industry_average"`
	Percentile      float64 `json:"percentile"`
}

// BenchmarkTable lists the comparison rows in payload order. Non-numeric
// values and averages display as "N/A".
func BenchmarkTable(result *domain.AnalysisResult, lang domain.Language) []BenchmarkRow {
	bc := result.BenchmarkComparison
	if bc == nil {
		return nil
	}

	rows := make([]BenchmarkRow, 0, len(bc.MetricsComparison.Order))
	for _, key := range bc.MetricsComparison.Order {
		entry, ok := bc.MetricsComparison.Values[key]
		if !ok {
			continue
		}
		rows = append(rows, BenchmarkRow{
			Label:           labelFor(lang, key),
			Value:           formatNumericOrNA(entry.Value),
			IndustryAverage: formatNumericOrNA(entry.IndustryAverage),
			Percentile:      entry.Percentile,
		})
	}
	return rows
}

// CashFlowRow is one month of the forecast with missing values pinned to 0.
type CashFlowRow struct {
	Month       string  `json:"month"`
	Revenue     float64 `json:"revenue"`
	NetIncome   float64 `json:"net_income"`
	NetCashFlow float64 `json:"net_cash_flow"`
}

// CashFlowSeries passes monthly projections through in payload order. The
// three plotted lines share one time axis keyed by month; a missing numeric
// field renders as 0, never as a gap.
func CashFlowSeries(result *domain.AnalysisResult) []CashFlowRow {
	fc := result.CashFlowForecast
	if fc == nil {
		return nil
	}

	rows := make([]CashFlowRow, 0, len(fc.MonthlyProjections))
	for _, p := range fc.MonthlyProjections {
		rows = append(rows, CashFlowRow{
			Month:       p.Month,
			Revenue:     deref(p.Revenue),
			NetIncome:   deref(p.NetIncome),
			NetCashFlow: deref(p.NetCashFlow),
		})
	}
	return rows
}

// maxProductCards caps the products tab. This is a display truncation, not
// a filter: eligibility is decided by the engine and carried through as-is.
const maxProductCards = 4

// ProductCards returns at most the first four product recommendations.
func ProductCards(result *domain.AnalysisResult) []domain.ProductRecommendation {
	products := result.ProductRecommendations
	if len(products) > maxProductCards {
		products = products[:maxProductCards]
	}
	return products
}

// Tab identifies one of the six result tabs. The set is closed; the
// dashboard and the print report iterate the same list, which is what makes
// view parity mechanically checkable.
type Tab string

const (
	TabOverview  Tab = "overview"
	TabMetrics   Tab = "metrics"
	TabForecast  Tab = "forecast"
	TabBenchmark Tab = "benchmark"
	TabProducts  Tab = "products"
	TabTax       Tab = "tax"
)

// TabInfo is one tab with its resolved label and content availability.
type TabInfo struct {
	Tab     Tab    `json:"tab"`
	Label   string `json:"label"`
	Present bool   `json:"present"`
}

var tabLabelKeys = map[Tab]string{
	TabOverview:  "dashboard.overview",
	TabMetrics:   "dashboard.detailedMetrics",
	TabForecast:  "dashboard.cashFlow",
	TabBenchmark: "dashboard.benchmarking",
	TabProducts:  "dashboard.recommendations",
	TabTax:       "dashboard.taxCompliance",
}

// AllTabs is the fixed display order.
var AllTabs = []Tab{TabOverview, TabMetrics, TabForecast, TabBenchmark, TabProducts, TabTax}

// Tabs lists the six variants in order. A tab whose optional section is
// absent stays in the list with Present=false and renders as "no data";
// the other tabs are unaffected.
func Tabs(result *domain.AnalysisResult, lang domain.Language) []TabInfo {
	out := make([]TabInfo, 0, len(AllTabs))
	for _, tab := range AllTabs {
		present := true
		switch tab {
		case TabForecast:
			present = result.CashFlowForecast != nil
		case TabBenchmark:
			present = result.BenchmarkComparison != nil
		case TabProducts:
			present = len(result.ProductRecommendations) > 0
		case TabTax:
			present = result.TaxCompliance != nil
		}
		out = append(out, TabInfo{
			Tab:     tab,
			Label:   i18n.Resolve(lang, tabLabelKeys[tab]),
			Present: present,
		})
	}
	return out
}

// labelFor resolves dashboard.<key> when a translation exists, otherwise
// mechanically formats the key (underscores to spaces, upper case).
func labelFor(lang domain.Language, key string) string {
	path := "dashboard." + key
	if resolved := i18n.Resolve(lang, path); resolved != path {
		return resolved
	}
	return strings.ToUpper(strings.ReplaceAll(key, "_", " "))
}

// FormatValue renders a metric value: numbers to two decimals, anything
// else verbatim.
func FormatValue(v any) string {
	if n, ok := asFloat(v); ok {
		return fmt.Sprintf("%.2f", n)
	}
	return fmt.Sprintf("%v", v)
}

func formatNumericOrNA(v any) string {
	if n, ok := asFloat(v); ok {
		return fmt.Sprintf("%.2f", n)
	}
	return "N/A"
}

// asFloat coerces the numeric shapes a decoded JSON payload can carry.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}


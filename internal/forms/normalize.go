// Package forms converts raw user-entered financial fields into the complete
// numeric record submitted for analysis. Uploaded documents bypass this
// package entirely; the analysis engine parses those itself.
package forms

import (
	"math"
	"strconv"
	"strings"

	"github.com/finhealthai/finhealth-web-go/internal/domain"
)

// DefaultStatement returns the initial values the manual-entry form ships
// with. Every canonical field is present, so the normalizer never has to
// invent a missing one.
func DefaultStatement() map[string]float64 {
	return map[string]float64{
		"revenue":             1000000,
		"cogs":                600000,
		"operating_expenses":  200000,
		"net_income":          200000,
		"total_assets":        800000,
		"current_assets":      400000,
		"total_liabilities":   300000,
		"current_liabilities": 150000,
		"inventory":           100000,
		"receivables":         150000,
		"payables":            80000,
	}
}

// DisplayValues formats a numeric record back into form input values, for
// re-rendering the form pre-filled.
func DisplayValues(values map[string]float64) map[string]string {
	out := make(map[string]string, len(values))
	for field, n := range values {
		out[field] = strconv.FormatFloat(n, 'f', -1, 64)
	}
	return out
}

// Normalize converts raw form values into finite numbers. The empty string
// maps to exactly 0; anything else is parsed as a floating-point number.
// The output key set is identical to the input key set.
//
// A value that does not parse to a finite number is a validation error: the
// invariant that every submitted field is finite has to hold before an
// AnalysisSubmission is constructed, so a bad value surfaces here instead of
// leaking NaN into the payload.
func Normalize(raw map[string]string) (map[string]float64, error) {
	out := make(map[string]float64, len(raw))
	for field, value := range raw {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			out[field] = 0
			continue
		}

		n, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, &domain.ErrValidation{Field: field, Message: "not a number"}
		}
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, &domain.ErrValidation{Field: field, Message: "not a finite number"}
		}
		out[field] = n
	}
	return out, nil
}

// Statement maps the normalized record onto the canonical statement struct.
// Fields absent from the record stay zero; the form always submits all
// eleven, so in practice this is a straight copy.
func Statement(values map[string]float64) *domain.FinancialStatement {
	return &domain.FinancialStatement{
		Revenue:            values["revenue"],
		COGS:               values["cogs"],
		OperatingExpenses:  values["operating_expenses"],
		NetIncome:          values["net_income"],
		TotalAssets:        values["total_assets"],
		CurrentAssets:      values["current_assets"],
		TotalLiabilities:   values["total_liabilities"],
		CurrentLiabilities: values["current_liabilities"],
		Inventory:          values["inventory"],
		Receivables:        values["receivables"],
		Payables:           values["payables"],
	}
}

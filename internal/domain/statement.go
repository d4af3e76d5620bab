package domain

// StatementFields is the canonical ordered list of financial statement field
// names. The manual-entry form always submits exactly this key set; the order
// drives form rendering.
var StatementFields = []string{
	"revenue",
	"cogs",
	"operating_expenses",
	"net_income",
	"total_assets",
	"current_assets",
	"total_liabilities",
	"current_liabilities",
	"inventory",
	"receivables",
	"payables",
}

// FinancialStatement is the flat numeric record submitted for analysis.
// Every field is a finite number; net_income is the only field that may be
// negative.
type FinancialStatement struct {
	Revenue            float64 `json:"revenue"`
	COGS               float64 `json:"cogs"`
	OperatingExpenses  float64 `json:"operating_expenses"`
	NetIncome          float64 `json:"net_income"`
	TotalAssets        float64 `json:"total_assets"`
	CurrentAssets      float64 `json:"current_assets"`
	TotalLiabilities   float64 `json:"total_liabilities"`
	CurrentLiabilities float64 `json:"current_liabilities"`
	Inventory          float64 `json:"inventory"`
	Receivables        float64 `json:"receivables"`
	Payables           float64 `json:"payables"`
}

// AnalysisSubmission is the payload sent verbatim to the analysis engine.
type AnalysisSubmission struct {
	BusinessProfile    *BusinessProfile    `json:"business_profile"`
	FinancialStatement *FinancialStatement `json:"financial_statement"`
	Language           Language            `json:"language"`
}

// UploadRequest carries a raw statement document to the analysis engine.
// The file bytes are forwarded as-is; parsing is the engine's job.
type UploadRequest struct {
	FileName string
	Content  []byte
	Profile  *BusinessProfile
	Language Language
}

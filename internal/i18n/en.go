package i18n

var english = Dict{
	"appName": "FinHealth AI",

	"languages": Dict{
		"en": "English",
		"hi": "हिंदी",
		"ta": "தமிழ்",
	},

	"mainHeading":              "SME Financial Intelligence Platform",
	"mainSubheading":           "AI-powered financial health assessment with industry benchmarking, cash flow forecasting, and personalized recommendations",
	"financialDataHeading":     "Financial Data Entry",
	"financialDataSubheading":  "Enter your financial data or upload documents for analysis",
	"comprehensiveAnalysisHeading": "Comprehensive Financial Analysis",
	"startNewAnalysis":         "← Start New Analysis",

	"businessProfile": Dict{
		"title":                   "Business Profile",
		"subtitle":                "Help us understand your business for personalized insights",
		"businessName":            "Business Name",
		"businessNamePlaceholder": "Enter your business name",
		"businessType":            "Business Type",
		"industry":                "Industry Sector",
		"businessSize":            "Business Size",
		"yearsInOperation":        "Years in Operation",
		"yearsPlaceholder":        "e.g., 5",
		"location":                "Location",
		"locationPlaceholder":     "City, State",
		"skipButton":              "Skip for Now",
		"continueButton":          "Continue",
		"required":                "*",

		"businessTypes": Dict{
			"sole_proprietorship": "Sole Proprietorship",
			"partnership":         "Partnership",
			"private_limited":     "Private Limited",
			"public_limited":      "Public Limited",
			"llp":                 "LLP",
		},

		"industries": Dict{
			"manufacturing": "Manufacturing",
			"retail":        "Retail",
			"agriculture":   "Agriculture",
			"services":      "Services",
			"logistics":     "Logistics",
			"ecommerce":     "E-commerce",
			"technology":    "Technology",
			"healthcare":    "Healthcare",
			"hospitality":   "Hospitality",
			"construction":  "Construction",
		},

		"sizes": Dict{
			"Small":  "Small",
			"Medium": "Medium",
			"Large":  "Large",
		},
	},

	"financialForm": Dict{
		"manualEntry":     "Manual Entry",
		"uploadDocuments": "Upload Documents",

		"revenue":            "Revenue",
		"cogs":               "Cost of Goods Sold (COGS)",
		"operatingExpenses":  "Operating Expenses",
		"netIncome":          "Net Income",
		"totalAssets":        "Total Assets",
		"currentAssets":      "Current Assets",
		"totalLiabilities":   "Total Liabilities",
		"currentLiabilities": "Current Liabilities",
		"inventory":          "Inventory",
		"receivables":        "Accounts Receivable",
		"payables":           "Accounts Payable",

		"netIncomeNote":   "*Negative values indicate a loss",
		"analyzeButton":   "Run AI Analysis",
		"analyzingButton": "Analyzing...",

		"uploadTitle":    "Upload Financial Statements",
		"uploadSubtitle": "Supports .CSV or .XLSX files with financial headers (e.g. Revenue, COGS, Net Income)",
		"selectDocument": "Select Document",
		"processingFile": "Processing File...",
		"templateHeader": "Template / Expected Headers:",
		"templateText":   "Revenue, COGS, Operating Expenses, Net Income, Total Assets, Current Assets, Total Liabilities, Inventory...",
	},

	"dashboard": Dict{
		"overview":        "Overview",
		"detailedMetrics": "Detailed Metrics",
		"cashFlow":        "Cash Flow",
		"benchmarking":    "Benchmarking",
		"recommendations": "Recommendations",
		"taxCompliance":   "Tax & Compliance",

		"financialHealthScore":     "Financial Health Score",
		"creditworthinessScore":    "Creditworthiness Score",
		"risk":                     "Risk",
		"keyFinancialMetrics":      "Key Financial Metrics",
		"aiInsights":               "AI Insights",
		"strategicRecommendations": "Strategic Recommendations",

		"currentRatio":  "Current Ratio",
		"profitMargin":  "Profit Margin",
		"roe":           "ROE",
		"assetTurnover": "Asset Turnover",

		"cashFlowProjection": "12-Month Cash Flow Projection",
		"workingCapitalRecs": "Working Capital Recommendations",

		"industryPerformance": "Industry Performance Comparison",
		"percentile":          "Percentile",
		"yourBusiness":        "Your Business",

		"eligible":     "Eligible",
		"interestRate": "Interest Rate",
		"tenure":       "Tenure",

		"gstCompliance":       "GST Compliance",
		"incomeTaxEstimate":   "Income Tax Estimate",
		"filingFrequency":     "Filing Frequency",
		"applicableRate":      "Applicable Rate",
		"taxableIncome":       "Taxable Income",
		"taxRate":             "Tax Rate",
		"estimatedTax":        "Estimated Tax",
		"taxOptimizationTips": "Tax Optimization Tips",
		"compliant":           "Compliant",

		"exportReport": "Export Comprehensive Report",
	},

	"footer": Dict{
		"copyright": "© 2026 FinHealth AI • Powered by Advanced Analytics",
		"security":  "Secure • Encrypted • Compliant with Financial Regulations",
	},
}

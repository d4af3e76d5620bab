package i18n

var tamil = Dict{
	"appName": "FinHealth AI",

	"languages": Dict{
		"en": "English",
		"hi": "हिंदी",
		"ta": "தமிழ்",
	},

	"mainHeading":              "நிதி நுண்ணறிவு தளம்",
	"mainSubheading":           "தொழில் தரநிலைப்படுத்தல், பணப்புழக்க முன்னறிவிப்பு மற்றும் தனிப்பயனாக்கப்பட்ட பரிந்துரைகளுடன் AI-இயக்கப்படும் நிதி சுகாதார மதிப்பீடு",
	"financialDataHeading":     "நிதித் தரவு உள்ளீடு",
	"financialDataSubheading":  "பகுப்பாய்வுக்காக உங்கள் நிதித் தரவை உள்ளிடவும் அல்லது ஆவணங்களைப் பதிவேற்றவும்",
	"comprehensiveAnalysisHeading": "விரிவான நிதி பகுப்பாய்வு",
	"startNewAnalysis":         "← புதிய பகுப்பாய்வைத் தொடங்கவும்",

	"businessProfile": Dict{
		"title":                   "வணிக சுயவிவரம்",
		"subtitle":                "தனிப்பயனாக்கப்பட்ட நுண்ணறிவுகளுக்காக உங்கள் வணிகத்தைப் புரிந்துகொள்ள எங்களுக்கு உதவவும்",
		"businessName":            "வணிகப் பெயர்",
		"businessNamePlaceholder": "உங்கள் வணிகப் பெயரை உள்ளிடவும்",
		"businessType":            "வணிக வகை",
		"industry":                "தொழில் துறை",
		"businessSize":            "வணிக அளவு",
		"yearsInOperation":        "செயல்பாட்டில் உள்ள ஆண்டுகள்",
		"yearsPlaceholder":        "எ.கா., 5",
		"location":                "இடம்",
		"locationPlaceholder":     "நகரம், மாநிலம்",
		"skipButton":              "இப்போதைக்குத் தவிர்க்கவும்",
		"continueButton":          "தொடரவும்",
		"required":                "*",

		"businessTypes": Dict{
			"sole_proprietorship": "தனி உரிமையாளர்",
			"partnership":         "கூட்டாண்மை",
			"private_limited":     "தனியார் வரையறுக்கப்பட்ட",
			"public_limited":      "பொது வரையறுக்கப்பட்ட",
			"llp":                 "LLP",
		},

		"industries": Dict{
			"manufacturing": "உற்பத்தி",
			"retail":        "சில்லறை",
			"agriculture":   "விவசாயம்",
			"services":      "சேவைகள்",
			"logistics":     "தளவாடம்",
			"ecommerce":     "மின்-வணிகம்",
			"technology":    "தொழில்நுட்பம்",
			"healthcare":    "சுகாதாரம்",
			"hospitality":   "விருந்தோம்பல்",
			"construction":  "கட்டுமானம்",
		},

		"sizes": Dict{
			"Small":  "சிறிய",
			"Medium": "நடுத்தர",
			"Large":  "பெரிய",
		},
	},

	"financialForm": Dict{
		"manualEntry":     "கைமுறை உள்ளீடு",
		"uploadDocuments": "ஆவணங்களைப் பதிவேற்றவும்",

		"revenue":            "வருவாய்",
		"cogs":               "விற்பனையான பொருட்களின் விலை (COGS)",
		"operatingExpenses":  "செயல்பாட்டு செலவுகள்",
		"netIncome":          "நிகர வருமானம்",
		"totalAssets":        "மொத்த சொத்துக்கள்",
		"currentAssets":      "தற்போதைய சொத்துக்கள்",
		"totalLiabilities":   "மொத்த பொறுப்புகள்",
		"currentLiabilities": "தற்போதைய பொறுப்புகள்",
		"inventory":          "சரக்கு",
		"receivables":        "பெறத்தக்க கணக்குகள்",
		"payables":           "செலுத்த வேண்டிய கணக்குகள்",

		"netIncomeNote":   "*எதிர்மறை மதிப்புகள் இழப்பைக் குறிக்கின்றன",
		"analyzeButton":   "AI பகுப்பாய்வை இயக்கவும்",
		"analyzingButton": "பகுப்பாய்வு செய்யப்படுகிறது...",

		"uploadTitle":    "நிதி அறிக்கைகளைப் பதிவேற்றவும்",
		"uploadSubtitle": "நிதி தலைப்புகளுடன் .CSV அல்லது .XLSX கோப்புகளை ஆதரிக்கிறது (எ.கா. வருவாய், COGS, நிகர வருமானம்)",
		"selectDocument": "ஆவணத்தைத் தேர்ந்தெடுக்கவும்",
		"processingFile": "கோப்பு செயலாக்கப்படுகிறது...",
		"templateHeader": "வார்ப்புரு / எதிர்பார்க்கப்படும் தலைப்புகள்:",
		"templateText":   "வருவாய், COGS, செயல்பாட்டு செலவுகள், நிகர வருமானம், மொத்த சொத்துக்கள், தற்போதைய சொத்துக்கள், மொத்த பொறுப்புகள், சரக்கு...",
	},

	"dashboard": Dict{
		"overview":        "மேலோட்டம்",
		"detailedMetrics": "விரிவான அளவீடுகள்",
		"cashFlow":        "பணப்புழக்கம்",
		"benchmarking":    "தரநிலைப்படுத்தல்",
		"recommendations": "பரிந்துரைகள்",
		"taxCompliance":   "வரி மற்றும் இணக்கம்",

		"financialHealthScore":     "நிதி சுகாதார மதிப்பெண்",
		"creditworthinessScore":    "கடன் தகுதி மதிப்பெண்",
		"risk":                     "ஆபத்து",
		"keyFinancialMetrics":      "முக்கிய நிதி அளவீடுகள்",
		"aiInsights":               "AI நுண்ணறிவுகள்",
		"strategicRecommendations": "மூலோபாய பரிந்துரைகள்",

		"currentRatio":  "தற்போதைய விகிதம்",
		"profitMargin":  "லாப வரம்பு",
		"roe":           "ROE",
		"assetTurnover": "சொத்து விற்றுமுதல்",

		"cashFlowProjection": "12-மாத பணப்புழக்க கணிப்பு",
		"workingCapitalRecs": "செயல்படும் மூலதன பரிந்துரைகள்",

		"industryPerformance": "தொழில் செயல்திறன் ஒப்பீடு",
		"percentile":          "சதவீதம்",
		"yourBusiness":        "உங்கள் தொழில்",

		"eligible":     "தகுதியுள்ள",
		"interestRate": "வட்டி விகிதம்",
		"tenure":       "காலம்",

		"gstCompliance":       "GST இணக்கம்",
		"incomeTaxEstimate":   "வருமான வரி மதிப்பீடு",
		"filingFrequency":     "தாக்கல் அதிர்வெண்",
		"applicableRate":      "பொருந்தும் விகிதம்",
		"taxableIncome":       "வரி விதிக்கக்கூடிய வருமானம்",
		"taxRate":             "வரி விகிதம்",
		"estimatedTax":        "மதிப்பிடப்பட்ட வரி",
		"taxOptimizationTips": "வரி மேம்படுத்தல் குறிப்புகள்",
		"compliant":           "இணக்கமான",

		"exportReport": "விரிவான அறிக்கையை ஏற்றுமதி செய்யவும்",
	},

	"footer": Dict{
		"copyright": "© 2026 FinHealth AI • மேம்பட்ட பகுப்பாய்வு மூலம் இயக்கப்படுகிறது",
		"security":  "பாதுகாப்பான • குறியாக்கம் செய்யப்பட்ட • நிதி விதிமுறைகளுக்கு இணங்குகிறது",
	},
}

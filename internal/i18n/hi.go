package i18n

var hindi = Dict{
	"appName": "फिनहेल्थ AI",

	"languages": Dict{
		"en": "English",
		"hi": "हिंदी",
		"ta": "தமிழ்",
	},

	"mainHeading":              "एसएमई वित्तीय बुद्धिमत्ता मंच",
	"mainSubheading":           "उद्योग बेंचमार्किंग, नकदी प्रवाह पूर्वानुमान और व्यक्तिगत सिफारिशों के साथ AI-संचालित वित्तीय स्वास्थ्य मूल्यांकन",
	"financialDataHeading":     "वित्तीय डेटा प्रविष्टि",
	"financialDataSubheading":  "विश्लेषण के लिए अपना वित्तीय डेटा दर्ज करें या दस्तावेज़ अपलोड करें",
	"comprehensiveAnalysisHeading": "व्यापक वित्तीय विश्लेषण",
	"startNewAnalysis":         "← नया विश्लेषण शुरू करें",

	"businessProfile": Dict{
		"title":                   "व्यवसाय प्रोफ़ाइल",
		"subtitle":                "व्यक्तिगत अंतर्दृष्टि के लिए अपने व्यवसाय को समझने में हमारी सहायता करें",
		"businessName":            "व्यवसाय का नाम",
		"businessNamePlaceholder": "अपने व्यवसाय का नाम दर्ज करें",
		"businessType":            "व्यवसाय का प्रकार",
		"industry":                "उद्योग क्षेत्र",
		"businessSize":            "व्यवसाय का आकार",
		"yearsInOperation":        "संचालन में वर्ष",
		"yearsPlaceholder":        "उदा., 5",
		"location":                "स्थान",
		"locationPlaceholder":     "शहर, राज्य",
		"skipButton":              "अभी के लिए छोड़ें",
		"continueButton":          "जारी रखें",
		"required":                "*",

		"businessTypes": Dict{
			"sole_proprietorship": "एकल स्वामित्व",
			"partnership":         "साझेदारी",
			"private_limited":     "प्राइवेट लिमिटेड",
			"public_limited":      "पब्लिक लिमिटेड",
			"llp":                 "एलएलपी",
		},

		"industries": Dict{
			"manufacturing": "विनिर्माण",
			"retail":        "खुदरा",
			"agriculture":   "कृषि",
			"services":      "सेवाएं",
			"logistics":     "रसद",
			"ecommerce":     "ई-कॉमर्स",
			"technology":    "प्रौद्योगिकी",
			"healthcare":    "स्वास्थ्य सेवा",
			"hospitality":   "आतिथ्य",
			"construction":  "निर्माण",
		},

		"sizes": Dict{
			"Small":  "छोटा",
			"Medium": "मध्यम",
			"Large":  "बड़ा",
		},
	},

	"financialForm": Dict{
		"manualEntry":     "मैनुअल प्रविष्टि",
		"uploadDocuments": "दस्तावेज़ अपलोड करें",

		"revenue":            "राजस्व",
		"cogs":               "बेचे गए माल की लागत (COGS)",
		"operatingExpenses":  "परिचालन व्यय",
		"netIncome":          "शुद्ध आय",
		"totalAssets":        "कुल संपत्ति",
		"currentAssets":      "वर्तमान संपत्ति",
		"totalLiabilities":   "कुल देनदारियां",
		"currentLiabilities": "वर्तमान देनदारियां",
		"inventory":          "इन्वेंटरी",
		"receivables":        "प्राप्य खाते",
		"payables":           "देय खाते",

		"netIncomeNote":   "*नकारात्मक मान हानि को दर्शाते हैं",
		"analyzeButton":   "AI विश्लेषण चलाएं",
		"analyzingButton": "विश्लेषण हो रहा है...",

		"uploadTitle":    "वित्तीय विवरण अपलोड करें",
		"uploadSubtitle": "वित्तीय हेडर के साथ .CSV या .XLSX फ़ाइलों का समर्थन करता है (जैसे राजस्व, COGS, शुद्ध आय)",
		"selectDocument": "दस्तावेज़ चुनें",
		"processingFile": "फ़ाइल प्रोसेस हो रही है...",
		"templateHeader": "टेम्पलेट / अपेक्षित हेडर:",
		"templateText":   "राजस्व, COGS, परिचालन व्यय, शुद्ध आय, कुल संपत्ति, वर्तमान संपत्ति, कुल देनदारियां, इन्वेंटरी...",
	},

	"dashboard": Dict{
		"overview":        "अवलोकन",
		"detailedMetrics": "विस्तृत मेट्रिक्स",
		"cashFlow":        "नकदी प्रवाह",
		"benchmarking":    "बेंचमार्किंग",
		"recommendations": "सिफारिशें",
		"taxCompliance":   "कर और अनुपालन",

		"financialHealthScore":     "वित्तीय स्वास्थ्य स्कोर",
		"creditworthinessScore":    "साख स्कोर",
		"risk":                     "जोखिम",
		"keyFinancialMetrics":      "प्रमुख वित्तीय मेट्रिक्स",
		"aiInsights":               "AI अंतर्दृष्टि",
		"strategicRecommendations": "रणनीतिक सिफारिशें",

		"currentRatio":  "वर्तमान अनुपात",
		"profitMargin":  "लाभ मार्जिन",
		"roe":           "ROE",
		"assetTurnover": "संपत्ति कारोबार",

		"cashFlowProjection": "12-महीने का नकदी प्रवाह अनुमान",
		"workingCapitalRecs": "कार्यशील पूंजी सिफारिशें",

		"industryPerformance": "उद्योग प्रदर्शन तुलना",
		"percentile":          "प्रतिशतक",
		"yourBusiness":        "आपका व्यवसाय",

		"eligible":     "पात्र",
		"interestRate": "ब्याज दर",
		"tenure":       "अवधि",

		"gstCompliance":       "GST अनुपालन",
		"incomeTaxEstimate":   "आयकर अनुमान",
		"filingFrequency":     "फाइलिंग आवृत्ति",
		"applicableRate":      "लागू दर",
		"taxableIncome":       "कर योग्य आय",
		"taxRate":             "कर दर",
		"estimatedTax":        "अनुमानित कर",
		"taxOptimizationTips": "कर अनुकूलन सुझाव",
		"compliant":           "अनुपालक",

		"exportReport": "व्यापक रिपोर्ट निर्यात करें",
	},

	"footer": Dict{
		"copyright": "© 2026 फिनहेल्थ AI • उन्नत विश्लेषण द्वारा संचालित",
		"security":  "सुरक्षित • एन्क्रिप्टेड • वित्तीय नियमों के अनुरूप",
	},
}

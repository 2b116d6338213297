package provider

// ModelType represents a standard data model type.
// Each ModelType maps to a specific data structure in pkg/models/.
type ModelType string

// --- Equity / Price ---
const (
	ModelEquityHistorical ModelType = "EquityHistorical"
	ModelEquityIntraday   ModelType = "EquityIntraday"
	ModelEquityQuote      ModelType = "EquityQuote"
	ModelEquityInfo       ModelType = "EquityInfo"
	ModelEquitySearch     ModelType = "EquitySearch"
)

// --- Equity / Fundamentals ---
const (
	ModelBalanceSheet        ModelType = "BalanceSheet"
	ModelIncomeStatement     ModelType = "IncomeStatement"
	ModelCashFlowStatement   ModelType = "CashFlowStatement"
	ModelFinancialRatios     ModelType = "FinancialRatios"
	ModelKeyMetrics          ModelType = "KeyMetrics"
	ModelRevenueTrend        ModelType = "RevenueTrend"
	ModelHistoricalDividends ModelType = "HistoricalDividends"
)

// --- Equity / Ownership & Shorts ---
const (
	ModelEquityShortInterest    ModelType = "EquityShortInterest"
	ModelInstitutionalOwnership ModelType = "InstitutionalOwnership"
)

// --- News ---
const (
	ModelCompanyNews ModelType = "CompanyNews"
	ModelWorldNews   ModelType = "WorldNews"
)

// --- Economy / FRED ---
const (
	ModelFredSearch              ModelType = "FredSearch"
	ModelFredSeries              ModelType = "FredSeries"
	ModelFredReleaseObservations ModelType = "FredReleaseObservations"
)

// --- Regulators / SEC ---
const (
	ModelCompanyFilings ModelType = "CompanyFilings"
	ModelCikMap         ModelType = "CikMap"
	ModelRssLitigation  ModelType = "RssLitigation"
)

// AllModels returns all defined model types. Useful for iteration and validation.
func AllModels() []ModelType {
	return []ModelType{
		// Equity / Price
		ModelEquityHistorical, ModelEquityIntraday, ModelEquityQuote,
		ModelEquityInfo, ModelEquitySearch,
		// Equity / Fundamentals
		ModelBalanceSheet, ModelIncomeStatement, ModelCashFlowStatement,
		ModelFinancialRatios, ModelKeyMetrics, ModelRevenueTrend,
		ModelHistoricalDividends,
		// Equity / Ownership & Shorts
		ModelEquityShortInterest, ModelInstitutionalOwnership,
		// News
		ModelCompanyNews, ModelWorldNews,
		// Economy / FRED
		ModelFredSearch, ModelFredSeries, ModelFredReleaseObservations,
		// Regulators / SEC
		ModelCompanyFilings, ModelCikMap, ModelRssLitigation,
	}
}

// ModelCategory maps model types to their category for grouping.
func ModelCategory(m ModelType) string {
	switch m {
	case ModelEquityHistorical, ModelEquityIntraday, ModelEquityQuote,
		ModelEquityInfo, ModelEquitySearch:
		return "Equity / Price"
	case ModelBalanceSheet, ModelIncomeStatement, ModelCashFlowStatement,
		ModelFinancialRatios, ModelKeyMetrics, ModelRevenueTrend,
		ModelHistoricalDividends:
		return "Equity / Fundamentals"
	case ModelEquityShortInterest, ModelInstitutionalOwnership:
		return "Equity / Ownership"
	case ModelCompanyNews, ModelWorldNews:
		return "News"
	case ModelFredSearch, ModelFredSeries, ModelFredReleaseObservations:
		return "Economy / FRED"
	case ModelCompanyFilings, ModelCikMap, ModelRssLitigation:
		return "Regulators / SEC"
	default:
		return "Other"
	}
}

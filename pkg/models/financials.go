package models

// BalanceSheet represents a single reporting period's balance sheet.
type BalanceSheet struct {
	Period              string  `json:"period"`      // e.g., "2024-09-28"
	PeriodType          string  `json:"period_type"` // "annual" or "quarterly"
	TotalAssets         float64 `json:"total_assets"`
	CurrentAssets       float64 `json:"current_assets"`
	CashEquivalents     float64 `json:"cash_equivalents"`
	Inventory           float64 `json:"inventory"`
	Receivables         float64 `json:"receivables"`
	FixedAssets         float64 `json:"fixed_assets"`
	TotalLiabilities    float64 `json:"total_liabilities"`
	CurrentLiabilities  float64 `json:"current_liabilities"`
	LongTermDebt        float64 `json:"long_term_debt"`
	ShortTermDebt       float64 `json:"short_term_debt"`
	TotalDebt           float64 `json:"total_debt"`
	TotalEquity         float64 `json:"total_equity"`
	RetainedEarnings    float64 `json:"retained_earnings"`
}

// IncomeStatement represents a single reporting period's income statement.
type IncomeStatement struct {
	Period          string  `json:"period"`
	PeriodType      string  `json:"period_type"`
	Revenue         float64 `json:"revenue"`
	TotalExpenses   float64 `json:"total_expenses"`
	GrossProfit     float64 `json:"gross_profit"`
	OperatingIncome float64 `json:"operating_income"`
	EBIT            float64 `json:"ebit"`
	InterestExpense float64 `json:"interest_expense"`
	PretaxIncome    float64 `json:"pretax_income"`
	TaxExpense      float64 `json:"tax_expense"`
	NetIncome       float64 `json:"net_income"`
	EPS             float64 `json:"eps"`
	OperatingMargin float64 `json:"operating_margin_pct,omitempty"`
	NetMargin       float64 `json:"net_margin_pct,omitempty"`
}

// CashFlow represents a single reporting period's cash flow statement.
type CashFlow struct {
	Period            string  `json:"period"`
	PeriodType        string  `json:"period_type"`
	OperatingCashFlow float64 `json:"operating_cash_flow"`
	InvestingCashFlow float64 `json:"investing_cash_flow"`
	FinancingCashFlow float64 `json:"financing_cash_flow"`
	NetCashFlow       float64 `json:"net_cash_flow"`
	CapEx             float64 `json:"capex"`
	DividendsPaid     float64 `json:"dividends_paid"`
	FreeCashFlow      float64 `json:"free_cash_flow"`
}

// FinancialStatements bundles all three statements for a symbol.
type FinancialStatements struct {
	Symbol        string            `json:"symbol"`
	BalanceSheets []BalanceSheet    `json:"balance_sheets,omitempty"`
	Income        []IncomeStatement `json:"income_statements,omitempty"`
	CashFlows     []CashFlow        `json:"cash_flows,omitempty"`
}

// FinancialRatios contains valuation and solvency ratios for a stock.
type FinancialRatios struct {
	Symbol        string  `json:"symbol"`
	PE            float64 `json:"pe"`
	ForwardPE     float64 `json:"forward_pe,omitempty"`
	PB            float64 `json:"pb"`
	PriceToSales  float64 `json:"price_to_sales,omitempty"`
	PEGRatio      float64 `json:"peg_ratio"`
	EVEBITDA      float64 `json:"ev_ebitda"`
	EPS           float64 `json:"eps"`
	BookValue     float64 `json:"book_value"`
	Beta          float64 `json:"beta,omitempty"`
	DebtEquity    float64 `json:"debt_equity"`
	CurrentRatio  float64 `json:"current_ratio"`
	DividendYield float64 `json:"dividend_yield"`
	MarketCap     float64 `json:"market_cap,omitempty"`
}

// KeyMetrics contains profitability and growth metrics for a stock.
type KeyMetrics struct {
	Symbol          string  `json:"symbol"`
	Revenue         float64 `json:"revenue"`
	RevenueGrowth   float64 `json:"revenue_growth_pct"`
	GrossMargin     float64 `json:"gross_margin_pct"`
	OperatingMargin float64 `json:"operating_margin_pct"`
	ProfitMargin    float64 `json:"profit_margin_pct"`
	ROA             float64 `json:"return_on_assets_pct"`
	ROE             float64 `json:"return_on_equity_pct"`
	TotalCash       float64 `json:"total_cash"`
	TotalDebt       float64 `json:"total_debt"`
	FreeCashFlow    float64 `json:"free_cash_flow"`
	EarningsGrowth  float64 `json:"earnings_growth_pct,omitempty"`
}

// RevenueTrendPoint is one period in a revenue/earnings trend series.
type RevenueTrendPoint struct {
	Period   string  `json:"period"` // e.g., "2024" or "3Q2024"
	Revenue  float64 `json:"revenue"`
	Earnings float64 `json:"earnings"`
}

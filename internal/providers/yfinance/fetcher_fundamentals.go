package yfinance

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/finscope/finscope/internal/provider"
	"github.com/finscope/finscope/pkg/models"
	"github.com/finscope/finscope/pkg/utils"
)

// fetchQuoteSummary retrieves the given quoteSummary modules for a symbol.
func fetchQuoteSummary(ctx context.Context, symbol, modules string) (*yfQuoteSummaryResult, error) {
	u := fmt.Sprintf("%s/%s?modules=%s", yfSummaryURL, url.PathEscape(symbol), modules)

	var resp yfQuoteSummaryResponse
	if err := fetchJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("yfinance quoteSummary %s: %w", symbol, err)
	}
	if resp.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yfinance API error: %s", resp.QuoteSummary.Error.Description)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("no quoteSummary data for %s", symbol)
	}
	return &resp.QuoteSummary.Result[0], nil
}

// --- BalanceSheet fetcher ---

type balanceSheetFetcher struct {
	provider.BaseFetcher
}

func newBalanceSheetFetcher() *balanceSheetFetcher {
	return &balanceSheetFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelBalanceSheet,
			"Balance sheet data from Yahoo Finance",
			[]string{provider.ParamSymbol},
			[]string{provider.ParamPeriod},
			1*time.Hour, 5, time.Second,
		),
	}
}

func (f *balanceSheetFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	symbol := utils.NormalizeSymbol(params[provider.ParamSymbol])

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	period := params[provider.ParamPeriod]
	modules := "balanceSheetHistory"
	if period == "quarterly" {
		modules = "balanceSheetHistoryQuarterly"
	}

	r, err := fetchQuoteSummary(ctx, symbol, modules)
	if err != nil {
		return nil, err
	}

	var stmts *yfStatementContainer
	periodType := "annual"
	if period == "quarterly" {
		stmts = r.BalanceSheetHistoryQuarterly
		periodType = "quarterly"
	} else {
		stmts = r.BalanceSheetHistory
	}

	sheets := parseBalanceSheets(stmts, periodType)
	f.CacheSetTTL(cacheKey, sheets, 1*time.Hour)
	return newResult(sheets), nil
}

func parseBalanceSheets(container *yfStatementContainer, periodType string) []models.BalanceSheet {
	raw := container.statements()
	if len(raw) == 0 {
		return nil
	}
	sheets := make([]models.BalanceSheet, 0, len(raw))
	for _, stmt := range raw {
		bs := models.BalanceSheet{
			Period:     extractDate(stmt),
			PeriodType: periodType,
		}
		bs.TotalAssets = valRaw(stmt, "totalAssets")
		bs.CurrentAssets = valRaw(stmt, "totalCurrentAssets")
		bs.CashEquivalents = valRaw(stmt, "cash")
		bs.Inventory = valRaw(stmt, "inventory")
		bs.Receivables = valRaw(stmt, "netReceivables")
		bs.FixedAssets = valRaw(stmt, "propertyPlantEquipment")
		bs.TotalLiabilities = valRaw(stmt, "totalLiab")
		bs.CurrentLiabilities = valRaw(stmt, "totalCurrentLiabilities")
		bs.LongTermDebt = valRaw(stmt, "longTermDebt")
		bs.ShortTermDebt = valRaw(stmt, "shortLongTermDebt")
		bs.TotalDebt = bs.LongTermDebt + bs.ShortTermDebt
		bs.TotalEquity = valRaw(stmt, "totalStockholderEquity")
		bs.RetainedEarnings = valRaw(stmt, "retainedEarnings")
		sheets = append(sheets, bs)
	}
	return sheets
}

// --- IncomeStatement fetcher ---

type incomeStatementFetcher struct {
	provider.BaseFetcher
}

func newIncomeStatementFetcher() *incomeStatementFetcher {
	return &incomeStatementFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelIncomeStatement,
			"Income statement data from Yahoo Finance",
			[]string{provider.ParamSymbol},
			[]string{provider.ParamPeriod},
			1*time.Hour, 5, time.Second,
		),
	}
}

func (f *incomeStatementFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	symbol := utils.NormalizeSymbol(params[provider.ParamSymbol])

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	period := params[provider.ParamPeriod]
	modules := "incomeStatementHistory"
	if period == "quarterly" {
		modules = "incomeStatementHistoryQuarterly"
	}

	r, err := fetchQuoteSummary(ctx, symbol, modules)
	if err != nil {
		return nil, err
	}

	var stmts *yfStatementContainer
	periodType := "annual"
	if period == "quarterly" {
		stmts = r.IncomeStatementHistoryQuarterly
		periodType = "quarterly"
	} else {
		stmts = r.IncomeStatementHistory
	}

	income := parseIncomeStatements(stmts, periodType)
	f.CacheSetTTL(cacheKey, income, 1*time.Hour)
	return newResult(income), nil
}

func parseIncomeStatements(container *yfStatementContainer, periodType string) []models.IncomeStatement {
	raw := container.statements()
	if len(raw) == 0 {
		return nil
	}
	stmts := make([]models.IncomeStatement, 0, len(raw))
	for _, stmt := range raw {
		is := models.IncomeStatement{
			Period:     extractDate(stmt),
			PeriodType: periodType,
		}
		is.Revenue = valRaw(stmt, "totalRevenue")
		is.TotalExpenses = valRaw(stmt, "totalOperatingExpenses")
		is.GrossProfit = valRaw(stmt, "grossProfit")
		is.OperatingIncome = valRaw(stmt, "operatingIncome")
		is.EBIT = valRaw(stmt, "ebit")
		is.InterestExpense = valRaw(stmt, "interestExpense")
		is.PretaxIncome = valRaw(stmt, "incomeBeforeTax")
		is.TaxExpense = valRaw(stmt, "incomeTaxExpense")
		is.NetIncome = valRaw(stmt, "netIncome")
		is.EPS = valRaw(stmt, "dilutedEPS")
		if is.Revenue > 0 {
			is.OperatingMargin = (is.OperatingIncome / is.Revenue) * 100
			is.NetMargin = (is.NetIncome / is.Revenue) * 100
		}
		stmts = append(stmts, is)
	}
	return stmts
}

// --- CashFlowStatement fetcher ---

type cashFlowStatementFetcher struct {
	provider.BaseFetcher
}

func newCashFlowStatementFetcher() *cashFlowStatementFetcher {
	return &cashFlowStatementFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelCashFlowStatement,
			"Cash flow statement data from Yahoo Finance",
			[]string{provider.ParamSymbol},
			[]string{provider.ParamPeriod},
			1*time.Hour, 5, time.Second,
		),
	}
}

func (f *cashFlowStatementFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	symbol := utils.NormalizeSymbol(params[provider.ParamSymbol])

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	period := params[provider.ParamPeriod]
	modules := "cashflowStatementHistory"
	if period == "quarterly" {
		modules = "cashflowStatementHistoryQuarterly"
	}

	r, err := fetchQuoteSummary(ctx, symbol, modules)
	if err != nil {
		return nil, err
	}

	var stmts *yfStatementContainer
	periodType := "annual"
	if period == "quarterly" {
		stmts = r.CashflowStatementHistoryQuarterly
		periodType = "quarterly"
	} else {
		stmts = r.CashflowStatementHistory
	}

	cfs := parseCashFlowStatements(stmts, periodType)
	f.CacheSetTTL(cacheKey, cfs, 1*time.Hour)
	return newResult(cfs), nil
}

func parseCashFlowStatements(container *yfStatementContainer, periodType string) []models.CashFlow {
	raw := container.statements()
	if len(raw) == 0 {
		return nil
	}
	cfs := make([]models.CashFlow, 0, len(raw))
	for _, stmt := range raw {
		cf := models.CashFlow{
			Period:     extractDate(stmt),
			PeriodType: periodType,
		}
		cf.OperatingCashFlow = valRaw(stmt, "totalCashFromOperatingActivities")
		cf.InvestingCashFlow = valRaw(stmt, "totalCashflowsFromInvestingActivities")
		cf.FinancingCashFlow = valRaw(stmt, "totalCashFromFinancingActivities")
		cf.NetCashFlow = valRaw(stmt, "changeInCash")
		cf.CapEx = valRaw(stmt, "capitalExpenditures")
		cf.DividendsPaid = valRaw(stmt, "dividendsPaid")
		cf.FreeCashFlow = cf.OperatingCashFlow + cf.CapEx // capex is negative
		cfs = append(cfs, cf)
	}
	return cfs
}

// --- FinancialRatios fetcher ---

type financialRatiosFetcher struct {
	provider.BaseFetcher
}

func newFinancialRatiosFetcher() *financialRatiosFetcher {
	return &financialRatiosFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelFinancialRatios,
			"Valuation and solvency ratios from Yahoo Finance",
			[]string{provider.ParamSymbol},
			nil,
			1*time.Hour, 5, time.Second,
		),
	}
}

func (f *financialRatiosFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	symbol := utils.NormalizeSymbol(params[provider.ParamSymbol])

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	r, err := fetchQuoteSummary(ctx, symbol, "defaultKeyStatistics,financialData,summaryDetail")
	if err != nil {
		return nil, err
	}

	ratios := &models.FinancialRatios{Symbol: symbol}
	if ks := r.DefaultKeyStatistics; ks != nil {
		ratios.PB = ks.PriceToBook.Raw
		ratios.BookValue = ks.BookValue.Raw
		ratios.PEGRatio = ks.PegRatio.Raw
		ratios.EPS = ks.TrailingEps.Raw
		ratios.EVEBITDA = ks.EnterpriseToEbitda.Raw
		ratios.ForwardPE = ks.ForwardPE.Raw
		ratios.Beta = ks.Beta.Raw
	}
	if fd := r.FinancialData; fd != nil {
		ratios.DebtEquity = fd.DebtToEquity.Raw
		ratios.CurrentRatio = fd.CurrentRatio.Raw
	}
	if sd := r.SummaryDetail; sd != nil {
		ratios.PE = sd.TrailingPE.Raw
		ratios.PriceToSales = sd.PriceToSalesTrailing12Months.Raw
		ratios.DividendYield = sd.DividendYield.Raw
		ratios.MarketCap = sd.MarketCap.Raw
		if ratios.Beta == 0 {
			ratios.Beta = sd.Beta.Raw
		}
	}

	f.CacheSetTTL(cacheKey, ratios, 1*time.Hour)
	return newResult(ratios), nil
}

// --- KeyMetrics fetcher ---

type keyMetricsFetcher struct {
	provider.BaseFetcher
}

func newKeyMetricsFetcher() *keyMetricsFetcher {
	return &keyMetricsFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelKeyMetrics,
			"Profitability and growth metrics from Yahoo Finance",
			[]string{provider.ParamSymbol},
			nil,
			1*time.Hour, 5, time.Second,
		),
	}
}

func (f *keyMetricsFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	symbol := utils.NormalizeSymbol(params[provider.ParamSymbol])

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	r, err := fetchQuoteSummary(ctx, symbol, "financialData")
	if err != nil {
		return nil, err
	}

	metrics := &models.KeyMetrics{Symbol: symbol}
	if fd := r.FinancialData; fd != nil {
		metrics.Revenue = fd.TotalRevenue.Raw
		metrics.RevenueGrowth = fd.RevenueGrowth.Raw
		metrics.GrossMargin = fd.GrossMargins.Raw
		metrics.OperatingMargin = fd.OperatingMargins.Raw
		metrics.ProfitMargin = fd.ProfitMargins.Raw
		metrics.ROA = fd.ReturnOnAssets.Raw
		metrics.ROE = fd.ReturnOnEquity.Raw
		metrics.TotalCash = fd.TotalCash.Raw
		metrics.TotalDebt = fd.TotalDebt.Raw
		metrics.FreeCashFlow = fd.FreeCashflow.Raw
		metrics.EarningsGrowth = fd.EarningsGrowth.Raw
	}

	f.CacheSetTTL(cacheKey, metrics, 1*time.Hour)
	return newResult(metrics), nil
}

// --- RevenueTrend fetcher ---

type revenueTrendFetcher struct {
	provider.BaseFetcher
}

func newRevenueTrendFetcher() *revenueTrendFetcher {
	return &revenueTrendFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelRevenueTrend,
			"Yearly and quarterly revenue/earnings trend from Yahoo Finance",
			[]string{provider.ParamSymbol},
			[]string{provider.ParamPeriod},
			1*time.Hour, 5, time.Second,
		),
	}
}

func (f *revenueTrendFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	symbol := utils.NormalizeSymbol(params[provider.ParamSymbol])

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	r, err := fetchQuoteSummary(ctx, symbol, "earnings")
	if err != nil {
		return nil, err
	}
	if r.Earnings == nil {
		return nil, fmt.Errorf("no earnings data for %s", symbol)
	}

	source := r.Earnings.FinancialsChart.Yearly
	if params[provider.ParamPeriod] == "quarterly" {
		source = r.Earnings.FinancialsChart.Quarterly
	}

	points := make([]models.RevenueTrendPoint, 0, len(source))
	for _, p := range source {
		points = append(points, models.RevenueTrendPoint{
			Period:   string(p.Date),
			Revenue:  p.Revenue.Raw,
			Earnings: p.Earnings.Raw,
		})
	}

	f.CacheSetTTL(cacheKey, points, 1*time.Hour)
	return newResult(points), nil
}

// --- HistoricalDividends fetcher ---

type historicalDividendsFetcher struct {
	provider.BaseFetcher
}

func newHistoricalDividendsFetcher() *historicalDividendsFetcher {
	return &historicalDividendsFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelHistoricalDividends,
			"Historical dividend payments from Yahoo Finance",
			[]string{provider.ParamSymbol},
			[]string{provider.ParamStartDate, provider.ParamEndDate, provider.ParamPeriod},
			1*time.Hour, 5, time.Second,
		),
	}
}

func (f *historicalDividendsFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	symbol := utils.NormalizeSymbol(params[provider.ParamSymbol])

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	period := params[provider.ParamPeriod]
	if period == "" {
		period = "5y"
	}
	startDate, endDate, err := utils.DateRange(
		params[provider.ParamStartDate],
		params[provider.ParamEndDate],
		period,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf(
		"%s/%s?period1=%d&period2=%d&interval=1d&events=div",
		yfChartURL, url.PathEscape(symbol), startDate.Unix(), endDate.Unix(),
	)

	var resp yfChartResponse
	if err := fetchJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("yfinance dividends %s: %w", symbol, err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("yfinance error: %s", resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("no dividend data for %s", symbol)
	}

	divs := make([]models.DividendRecord, 0)
	if events := resp.Chart.Result[0].Events; events != nil {
		for _, d := range events.Dividends {
			divs = append(divs, models.DividendRecord{
				Symbol: symbol,
				ExDate: time.Unix(d.Date, 0),
				Amount: d.Amount,
			})
		}
	}
	sortDividends(divs)

	f.CacheSetTTL(cacheKey, divs, 1*time.Hour)
	return newResult(divs), nil
}

// sortDividends orders records oldest first. Yahoo returns the events as an
// unordered map keyed by epoch.
func sortDividends(divs []models.DividendRecord) {
	for i := 0; i < len(divs); i++ {
		for j := i + 1; j < len(divs); j++ {
			if divs[j].ExDate.Before(divs[i].ExDate) {
				divs[i], divs[j] = divs[j], divs[i]
			}
		}
	}
}

// --- Shared financial statement helpers ---

// extractDate tries to extract a date string from a YF statement map.
func extractDate(stmt map[string]yfFinVal) string {
	if v, ok := stmt["endDate"]; ok {
		if v.Fmt != "" {
			return v.Fmt
		}
		if v.Raw > 0 {
			return time.Unix(int64(v.Raw), 0).Format("2006-01-02")
		}
	}
	return ""
}

// valRaw extracts the raw numeric value for a key from a YF statement map.
func valRaw(stmt map[string]yfFinVal, key string) float64 {
	if v, ok := stmt[key]; ok {
		return v.Raw
	}
	return 0
}

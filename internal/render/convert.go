package render

import (
	"fmt"

	"github.com/finscope/finscope/pkg/models"
)

// Converters from typed model slices to printable tables. Each fetch result
// passes through exactly one of these before display or CSV export.

// OHLCVTable builds a price history table.
func OHLCVTable(title string, bars []models.OHLCV) *Table {
	t := &Table{
		Title:   title,
		Columns: []string{"Date", "Open", "High", "Low", "Close", "Volume"},
	}
	for _, b := range bars {
		t.Rows = append(t.Rows, []string{
			fmtDate(b.Timestamp),
			fmtFloat2(b.Open),
			fmtFloat2(b.High),
			fmtFloat2(b.Low),
			fmtFloat2(b.Close),
			fmtInt(b.Volume),
		})
	}
	return t
}

// IntradayTable builds an intraday bar table with time-of-day stamps.
func IntradayTable(title string, bars []models.OHLCV) *Table {
	t := &Table{
		Title:   title,
		Columns: []string{"Time", "Open", "High", "Low", "Close", "Volume"},
	}
	for _, b := range bars {
		t.Rows = append(t.Rows, []string{
			fmtDateTime(b.Timestamp),
			fmtFloat2(b.Open),
			fmtFloat2(b.High),
			fmtFloat2(b.Low),
			fmtFloat2(b.Close),
			fmtInt(b.Volume),
		})
	}
	return t
}

// QuoteTable builds a field/value table for a single quote.
func QuoteTable(q *models.Quote) *Table {
	t := &Table{Columns: []string{"Field", "Value"}}
	if q == nil {
		return t
	}
	t.Title = fmt.Sprintf("Quote: %s", q.Symbol)
	rows := [][]string{
		{"Symbol", q.Symbol},
		{"Name", q.Name},
		{"Price", fmtFloat2(q.LastPrice)},
		{"Change", fmtFloat2(q.Change)},
		{"Change %", fmtFloat2(q.ChangePct) + "%"},
		{"Open", fmtFloat2(q.Open)},
		{"High", fmtFloat2(q.High)},
		{"Low", fmtFloat2(q.Low)},
		{"Prev Close", fmtFloat2(q.PrevClose)},
		{"Volume", fmtInt(q.Volume)},
		{"52w High", fmtFloat2(q.WeekHigh52)},
		{"52w Low", fmtFloat2(q.WeekLow52)},
		{"Market Cap", fmtFloat(q.MarketCap)},
	}
	if q.PE != 0 {
		rows = append(rows, []string{"P/E", fmtFloat2(q.PE)})
	}
	if q.EPS != 0 {
		rows = append(rows, []string{"EPS", fmtFloat2(q.EPS)})
	}
	t.Rows = rows
	return t
}

// ProfileTable builds a field/value company profile table.
func ProfileTable(p *models.StockProfile) *Table {
	t := &Table{Columns: []string{"Field", "Value"}}
	if p == nil {
		return t
	}
	t.Title = fmt.Sprintf("Company Profile: %s", p.Symbol)
	t.Rows = append(t.Rows,
		[]string{"Name", p.Name},
		[]string{"Exchange", p.Exchange},
		[]string{"Sector", p.Sector},
		[]string{"Industry", p.Industry},
		[]string{"Country", p.Country},
		[]string{"Website", p.Website},
	)
	if p.Employees > 0 {
		t.Rows = append(t.Rows, []string{"Employees", fmtInt(p.Employees)})
	}
	if p.MarketCap > 0 {
		t.Rows = append(t.Rows, []string{"Market Cap", fmtFloat(p.MarketCap)})
	}
	if p.Summary != "" {
		t.Rows = append(t.Rows, []string{"Summary", truncate(p.Summary, 200)})
	}
	return t
}

// SearchTable builds a symbol search result table.
func SearchTable(title string, results []models.EquitySearchResult) *Table {
	t := &Table{
		Title:   title,
		Columns: []string{"Symbol", "Name", "Exchange", "Type"},
	}
	for _, r := range results {
		t.Rows = append(t.Rows, []string{r.Symbol, r.Name, r.Exchange, r.Type})
	}
	return t
}

// BalanceSheetTable builds a table with one row per reporting period.
func BalanceSheetTable(symbol string, sheets []models.BalanceSheet) *Table {
	t := &Table{
		Title:   fmt.Sprintf("Balance Sheet: %s", symbol),
		Columns: []string{"Period", "Total Assets", "Total Liabilities", "Total Equity", "Cash", "Total Debt"},
	}
	for _, s := range sheets {
		t.Rows = append(t.Rows, []string{
			s.Period,
			fmtFloat(s.TotalAssets),
			fmtFloat(s.TotalLiabilities),
			fmtFloat(s.TotalEquity),
			fmtFloat(s.CashEquivalents),
			fmtFloat(s.TotalDebt),
		})
	}
	return t
}

// IncomeStatementTable builds a table with one row per reporting period.
func IncomeStatementTable(symbol string, stmts []models.IncomeStatement) *Table {
	t := &Table{
		Title:   fmt.Sprintf("Income Statement: %s", symbol),
		Columns: []string{"Period", "Revenue", "Gross Profit", "Operating Income", "Net Income", "EPS"},
	}
	for _, s := range stmts {
		t.Rows = append(t.Rows, []string{
			s.Period,
			fmtFloat(s.Revenue),
			fmtFloat(s.GrossProfit),
			fmtFloat(s.OperatingIncome),
			fmtFloat(s.NetIncome),
			fmtFloat2(s.EPS),
		})
	}
	return t
}

// CashFlowTable builds a table with one row per reporting period.
func CashFlowTable(symbol string, flows []models.CashFlow) *Table {
	t := &Table{
		Title:   fmt.Sprintf("Cash Flow: %s", symbol),
		Columns: []string{"Period", "Operating CF", "Investing CF", "Financing CF", "CapEx", "Free CF"},
	}
	for _, f := range flows {
		t.Rows = append(t.Rows, []string{
			f.Period,
			fmtFloat(f.OperatingCashFlow),
			fmtFloat(f.InvestingCashFlow),
			fmtFloat(f.FinancingCashFlow),
			fmtFloat(f.CapEx),
			fmtFloat(f.FreeCashFlow),
		})
	}
	return t
}

// RatiosTable builds a field/value table of financial ratios.
func RatiosTable(r *models.FinancialRatios) *Table {
	t := &Table{Columns: []string{"Ratio", "Value"}}
	if r == nil {
		return t
	}
	t.Title = fmt.Sprintf("Financial Ratios: %s", r.Symbol)
	t.Rows = [][]string{
		{"P/E", fmtFloat2(r.PE)},
		{"Forward P/E", fmtFloat2(r.ForwardPE)},
		{"P/B", fmtFloat2(r.PB)},
		{"Price/Sales", fmtFloat2(r.PriceToSales)},
		{"PEG", fmtFloat2(r.PEGRatio)},
		{"EV/EBITDA", fmtFloat2(r.EVEBITDA)},
		{"EPS", fmtFloat2(r.EPS)},
		{"Book Value", fmtFloat2(r.BookValue)},
		{"Beta", fmtFloat2(r.Beta)},
		{"Debt/Equity", fmtFloat2(r.DebtEquity)},
		{"Current Ratio", fmtFloat2(r.CurrentRatio)},
		{"Dividend Yield", fmtPct(r.DividendYield)},
	}
	return t
}

// MetricsTable builds a field/value table of key metrics.
func MetricsTable(m *models.KeyMetrics) *Table {
	t := &Table{Columns: []string{"Metric", "Value"}}
	if m == nil {
		return t
	}
	t.Title = fmt.Sprintf("Key Metrics: %s", m.Symbol)
	t.Rows = [][]string{
		{"Revenue", fmtFloat(m.Revenue)},
		{"Revenue Growth", fmtPct(m.RevenueGrowth)},
		{"Gross Margin", fmtPct(m.GrossMargin)},
		{"Operating Margin", fmtPct(m.OperatingMargin)},
		{"Profit Margin", fmtPct(m.ProfitMargin)},
		{"ROA", fmtPct(m.ROA)},
		{"ROE", fmtPct(m.ROE)},
		{"Total Cash", fmtFloat(m.TotalCash)},
		{"Total Debt", fmtFloat(m.TotalDebt)},
		{"Free Cash Flow", fmtFloat(m.FreeCashFlow)},
	}
	return t
}

// TrendTable builds a revenue/earnings trend table.
func TrendTable(symbol string, points []models.RevenueTrendPoint) *Table {
	t := &Table{
		Title:   fmt.Sprintf("Revenue Trend: %s", symbol),
		Columns: []string{"Period", "Revenue", "Earnings"},
	}
	for _, p := range points {
		t.Rows = append(t.Rows, []string{p.Period, fmtFloat(p.Revenue), fmtFloat(p.Earnings)})
	}
	return t
}

// DividendTable builds a historical dividend table.
func DividendTable(symbol string, divs []models.DividendRecord) *Table {
	t := &Table{
		Title:   fmt.Sprintf("Dividends: %s", symbol),
		Columns: []string{"Ex-Date", "Amount"},
	}
	for _, d := range divs {
		t.Rows = append(t.Rows, []string{fmtDate(d.ExDate), fmtFloat(d.Amount)})
	}
	return t
}

// ShortInterestTable builds a field/value table of short interest stats.
func ShortInterestTable(si *models.ShortInterest) *Table {
	t := &Table{Columns: []string{"Field", "Value"}}
	if si == nil {
		return t
	}
	t.Title = fmt.Sprintf("Short Interest: %s", si.Symbol)
	t.Rows = [][]string{
		{"Shares Outstanding", fmtInt(si.SharesOutstanding)},
		{"Float Shares", fmtInt(si.FloatShares)},
		{"Shares Short", fmtInt(si.SharesShort)},
		{"Shares Short (prior)", fmtInt(si.SharesShortPrior)},
		{"Short Ratio", fmtFloat2(si.ShortRatio)},
		{"Short % of Float", fmtPct(si.ShortPercentFloat)},
	}
	return t
}

// HoldersTable builds an institutional holders table.
func HoldersTable(symbol string, holders []models.InstitutionalHolder) *Table {
	t := &Table{
		Title:   fmt.Sprintf("Institutional Holders: %s", symbol),
		Columns: []string{"Organization", "Report Date", "% Held", "Shares", "Value"},
	}
	for _, h := range holders {
		t.Rows = append(t.Rows, []string{
			h.Organization,
			fmtDate(h.ReportDate),
			fmtPct(h.PctHeld),
			fmtInt(h.Shares),
			fmtFloat(h.Value),
		})
	}
	return t
}

// NewsTable builds an article table. Summaries are truncated to keep rows
// readable in a terminal.
func NewsTable(title string, articles []models.NewsArticle) *Table {
	t := &Table{
		Title:   title,
		Columns: []string{"Published", "Source", "Title", "URL"},
	}
	for _, a := range articles {
		t.Rows = append(t.Rows, []string{
			fmtDateTime(a.PublishedAt),
			a.Source,
			truncate(a.Title, 80),
			a.URL,
		})
	}
	return t
}

// FilingsTable builds an SEC filing table.
func FilingsTable(symbol string, filings []models.CompanyFiling) *Table {
	t := &Table{
		Title:   fmt.Sprintf("SEC Filings: %s", symbol),
		Columns: []string{"Date", "Form", "Accession No", "URL"},
	}
	for _, f := range filings {
		t.Rows = append(t.Rows, []string{
			fmtDate(f.Date),
			f.FormType,
			f.AccessionNo,
			f.FilingURL,
		})
	}
	return t
}

// CikMapTable builds a ticker-to-CIK mapping table.
func CikMapTable(mappings []models.CIKMapping) *Table {
	t := &Table{
		Title:   "SEC CIK Mapping",
		Columns: []string{"Symbol", "CIK", "Company"},
	}
	for _, m := range mappings {
		t.Rows = append(t.Rows, []string{
			m.Symbol,
			m.CIK,
			m.Name,
		})
	}
	return t
}

// LitigationTable builds an SEC litigation release table.
func LitigationTable(releases []models.LitigationRelease) *Table {
	t := &Table{
		Title:   "SEC Litigation Releases",
		Columns: []string{"Published", "Title", "URL"},
	}
	for _, r := range releases {
		t.Rows = append(t.Rows, []string{
			fmtDate(r.Published),
			truncate(r.Title, 80),
			r.URL,
		})
	}
	return t
}

// FredSearchTable builds a FRED series search result table.
func FredSearchTable(query string, results []models.FREDSearchResult) *Table {
	t := &Table{
		Title:   fmt.Sprintf("FRED Search: %s", query),
		Columns: []string{"Series ID", "Title", "Frequency", "Units", "Popularity"},
	}
	for _, r := range results {
		t.Rows = append(t.Rows, []string{
			r.SeriesID,
			truncate(r.Title, 60),
			r.Frequency,
			truncate(r.Units, 30),
			fmt.Sprintf("%d", r.Popularity),
		})
	}
	return t
}

// FredSeriesTable builds a FRED observation table for one series.
func FredSeriesTable(seriesID string, data []models.FREDSeriesData) *Table {
	t := &Table{
		Title:   fmt.Sprintf("FRED Series: %s", seriesID),
		Columns: []string{"Date", "Value"},
	}
	for _, d := range data {
		t.Rows = append(t.Rows, []string{fmtDate(d.Date), fmtFloat(d.Value)})
	}
	return t
}

// FredReleaseTable builds a table for one page of release observations.
func FredReleaseTable(page *models.FREDReleasePage) *Table {
	t := &Table{Columns: []string{"Series ID", "Date", "Value"}}
	if page == nil {
		return t
	}
	t.Title = fmt.Sprintf("FRED Release %d Observations", page.ReleaseID)
	for _, o := range page.Observations {
		t.Rows = append(t.Rows, []string{o.SeriesID, fmtDate(o.Date), fmtFloat(o.Value)})
	}
	return t
}

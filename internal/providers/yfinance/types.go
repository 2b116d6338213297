package yfinance

import (
	"bytes"
	"encoding/json"
)

// --- Yahoo Finance API response types ---

// yfQuoteResponse wraps the v7 quote API response.
type yfQuoteResponse struct {
	QuoteResponse struct {
		Result []yfQuoteResult `json:"result"`
		Error  *yfError        `json:"error"`
	} `json:"quoteResponse"`
}

type yfQuoteResult struct {
	Symbol                      string  `json:"symbol"`
	ShortName                   string  `json:"shortName"`
	LongName                    string  `json:"longName"`
	QuoteType                   string  `json:"quoteType"`
	Exchange                    string  `json:"exchange"`
	FullExchangeName            string  `json:"fullExchangeName"`
	Currency                    string  `json:"currency"`
	RegularMarketPrice          float64 `json:"regularMarketPrice"`
	RegularMarketChange         float64 `json:"regularMarketChange"`
	RegularMarketChangePercent  float64 `json:"regularMarketChangePercent"`
	RegularMarketOpen           float64 `json:"regularMarketOpen"`
	RegularMarketDayHigh        float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow         float64 `json:"regularMarketDayLow"`
	RegularMarketPreviousClose  float64 `json:"regularMarketPreviousClose"`
	RegularMarketVolume         int64   `json:"regularMarketVolume"`
	AverageDailyVolume3Month    int64   `json:"averageDailyVolume3Month"`
	MarketCap                   float64 `json:"marketCap"`
	FiftyTwoWeekHigh            float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow             float64 `json:"fiftyTwoWeekLow"`
	TrailingPE                  float64 `json:"trailingPE"`
	ForwardPE                   float64 `json:"forwardPE"`
	PriceToBook                 float64 `json:"priceToBook"`
	DividendYield               float64 `json:"dividendYield"`
	TrailingAnnualDividendYield float64 `json:"trailingAnnualDividendYield"`
	EpsTrailingTwelveMonths     float64 `json:"epsTrailingTwelveMonths"`
	BookValue                   float64 `json:"bookValue"`
	SharesOutstanding           float64 `json:"sharesOutstanding"`
	Beta                        float64 `json:"beta"`
	RegularMarketTime           int64   `json:"regularMarketTime"`
}

// yfChartResponse wraps the v8 chart API response.
type yfChartResponse struct {
	Chart struct {
		Result []yfChartResult `json:"result"`
		Error  *yfError        `json:"error"`
	} `json:"chart"`
}

type yfChartResult struct {
	Meta       yfChartMeta    `json:"meta"`
	Timestamp  []int64        `json:"timestamp"`
	Events     *yfChartEvents `json:"events"`
	Indicators yfIndicators   `json:"indicators"`
}

type yfChartMeta struct {
	Symbol             string  `json:"symbol"`
	Currency           string  `json:"currency"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
	InstrumentType     string  `json:"instrumentType"`
	ExchangeName       string  `json:"exchangeName"`
}

type yfIndicators struct {
	Quote    []yfOHLCV    `json:"quote"`
	AdjClose []yfAdjClose `json:"adjclose"`
}

type yfOHLCV struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

type yfAdjClose struct {
	AdjClose []*float64 `json:"adjclose"`
}

// yfChartEvents carries dividend and split events on a chart response
// when requested via events=div.
type yfChartEvents struct {
	Dividends map[string]yfDividendEvent `json:"dividends"`
}

type yfDividendEvent struct {
	Amount float64 `json:"amount"`
	Date   int64   `json:"date"`
}

// yfQuoteSummaryResponse wraps the v10 quoteSummary API response.
type yfQuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []yfQuoteSummaryResult `json:"result"`
		Error  *yfError               `json:"error"`
	} `json:"quoteSummary"`
}

type yfQuoteSummaryResult struct {
	// Financials modules
	IncomeStatementHistory            *yfStatementContainer `json:"incomeStatementHistory"`
	IncomeStatementHistoryQuarterly   *yfStatementContainer `json:"incomeStatementHistoryQuarterly"`
	BalanceSheetHistory               *yfStatementContainer `json:"balanceSheetHistory"`
	BalanceSheetHistoryQuarterly      *yfStatementContainer `json:"balanceSheetHistoryQuarterly"`
	CashflowStatementHistory          *yfStatementContainer `json:"cashflowStatementHistory"`
	CashflowStatementHistoryQuarterly *yfStatementContainer `json:"cashflowStatementHistoryQuarterly"`

	// Profile module
	AssetProfile *yfAssetProfile `json:"assetProfile"`

	// Key stats module
	DefaultKeyStatistics *yfDefaultKeyStatistics `json:"defaultKeyStatistics"`

	// Summary detail
	SummaryDetail *yfSummaryDetail `json:"summaryDetail"`

	// Financial data module
	FinancialData *yfFinancialData `json:"financialData"`

	// Earnings module (revenue/earnings trend chart)
	Earnings *yfEarnings `json:"earnings"`

	// Institutional ownership module
	InstitutionOwnership *yfInstitutionOwnership `json:"institutionOwnership"`
}

// yfStatementContainer holds the statement list for one quoteSummary
// financials module. Yahoo uses a different inner key per statement type,
// so all three are declared and statements() picks the populated one.
type yfStatementContainer struct {
	IncomeStatements   []map[string]yfFinVal `json:"incomeStatementHistory,omitempty"`
	BalanceSheets      []map[string]yfFinVal `json:"balanceSheetStatements,omitempty"`
	CashflowStatements []map[string]yfFinVal `json:"cashflowStatements,omitempty"`
}

func (c *yfStatementContainer) statements() []map[string]yfFinVal {
	if c == nil {
		return nil
	}
	if len(c.IncomeStatements) > 0 {
		return c.IncomeStatements
	}
	if len(c.BalanceSheets) > 0 {
		return c.BalanceSheets
	}
	return c.CashflowStatements
}

// yfFinVal is Yahoo's {raw, fmt} wrapper around a numeric field. Some fields
// (maxAge, dates in the earnings chart) come back as bare numbers, so
// unmarshalling accepts either form.
type yfFinVal struct {
	Raw float64 `json:"raw"`
	Fmt string  `json:"fmt"`
}

func (v *yfFinVal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte("{}")) {
		return nil
	}
	if data[0] == '{' {
		type alias yfFinVal
		var a alias
		if err := json.Unmarshal(data, &a); err != nil {
			return err
		}
		*v = yfFinVal(a)
		return nil
	}
	return json.Unmarshal(data, &v.Raw)
}

type yfAssetProfile struct {
	Industry            string `json:"industry"`
	Sector              string `json:"sector"`
	FullTimeEmployees   int64  `json:"fullTimeEmployees"`
	LongBusinessSummary string `json:"longBusinessSummary"`
	City                string `json:"city"`
	State               string `json:"state"`
	Country             string `json:"country"`
	Website             string `json:"website"`
}

type yfDefaultKeyStatistics struct {
	EnterpriseValue       yfFinVal `json:"enterpriseValue"`
	ForwardPE             yfFinVal `json:"forwardPE"`
	ProfitMargins         yfFinVal `json:"profitMargins"`
	FloatShares           yfFinVal `json:"floatShares"`
	SharesOutstanding     yfFinVal `json:"sharesOutstanding"`
	SharesShort           yfFinVal `json:"sharesShort"`
	SharesShortPriorMonth yfFinVal `json:"sharesShortPriorMonth"`
	ShortRatio            yfFinVal `json:"shortRatio"`
	ShortPercentOfFloat   yfFinVal `json:"shortPercentOfFloat"`
	Beta                  yfFinVal `json:"beta"`
	BookValue             yfFinVal `json:"bookValue"`
	PriceToBook           yfFinVal `json:"priceToBook"`
	EnterpriseToEbitda    yfFinVal `json:"enterpriseToEbitda"`
	PegRatio              yfFinVal `json:"pegRatio"`
	TrailingEps           yfFinVal `json:"trailingEps"`
	ForwardEps            yfFinVal `json:"forwardEps"`
}

type yfSummaryDetail struct {
	PreviousClose                yfFinVal `json:"previousClose"`
	Open                         yfFinVal `json:"open"`
	DayLow                       yfFinVal `json:"dayLow"`
	DayHigh                      yfFinVal `json:"dayHigh"`
	Volume                       yfFinVal `json:"volume"`
	AverageVolume                yfFinVal `json:"averageVolume"`
	MarketCap                    yfFinVal `json:"marketCap"`
	FiftyTwoWeekLow              yfFinVal `json:"fiftyTwoWeekLow"`
	FiftyTwoWeekHigh             yfFinVal `json:"fiftyTwoWeekHigh"`
	DividendYield                yfFinVal `json:"dividendYield"`
	PayoutRatio                  yfFinVal `json:"payoutRatio"`
	Beta                         yfFinVal `json:"beta"`
	TrailingPE                   yfFinVal `json:"trailingPE"`
	ForwardPE                    yfFinVal `json:"forwardPE"`
	PriceToSalesTrailing12Months yfFinVal `json:"priceToSalesTrailing12Months"`
}

type yfFinancialData struct {
	CurrentPrice      yfFinVal `json:"currentPrice"`
	TotalRevenue      yfFinVal `json:"totalRevenue"`
	RevenueGrowth     yfFinVal `json:"revenueGrowth"`
	GrossMargins      yfFinVal `json:"grossMargins"`
	OperatingMargins  yfFinVal `json:"operatingMargins"`
	ProfitMargins     yfFinVal `json:"profitMargins"`
	ReturnOnAssets    yfFinVal `json:"returnOnAssets"`
	ReturnOnEquity    yfFinVal `json:"returnOnEquity"`
	TotalCash         yfFinVal `json:"totalCash"`
	TotalDebt         yfFinVal `json:"totalDebt"`
	DebtToEquity      yfFinVal `json:"debtToEquity"`
	CurrentRatio      yfFinVal `json:"currentRatio"`
	FreeCashflow      yfFinVal `json:"freeCashflow"`
	OperatingCashflow yfFinVal `json:"operatingCashflow"`
	EarningsGrowth    yfFinVal `json:"earningsGrowth"`
}

// yfEarnings wraps the earnings module's revenue/earnings trend chart.
type yfEarnings struct {
	FinancialsChart struct {
		Yearly    []yfTrendPoint `json:"yearly"`
		Quarterly []yfTrendPoint `json:"quarterly"`
	} `json:"financialsChart"`
}

type yfTrendPoint struct {
	Date     yfFlexString `json:"date"` // year number or "3Q2024"
	Revenue  yfFinVal     `json:"revenue"`
	Earnings yfFinVal     `json:"earnings"`
}

// yfFlexString accepts either a JSON string or a bare number.
type yfFlexString string

func (s *yfFlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = yfFlexString(v)
		return nil
	}
	*s = yfFlexString(data)
	return nil
}

// yfInstitutionOwnership wraps the institutionOwnership module.
type yfInstitutionOwnership struct {
	OwnershipList []yfOwnershipEntry `json:"ownershipList"`
}

type yfOwnershipEntry struct {
	ReportDate   yfFinVal `json:"reportDate"` // unix epoch in Raw, date in Fmt
	Organization string   `json:"organization"`
	PctHeld      yfFinVal `json:"pctHeld"`
	Position     yfFinVal `json:"position"`
	Value        yfFinVal `json:"value"`
}

// yfSearchResponse wraps the v1 search API response.
type yfSearchResponse struct {
	Quotes []yfSearchQuote `json:"quotes"`
	News   []yfSearchNews  `json:"news"`
}

type yfSearchQuote struct {
	Exchange       string `json:"exchange"`
	ShortName      string `json:"shortname"`
	LongName       string `json:"longname"`
	QuoteType      string `json:"quoteType"`
	Symbol         string `json:"symbol"`
	Sector         string `json:"sector"`
	Industry       string `json:"industry"`
	IsYahooFinance bool   `json:"isYahooFinance"`
}

type yfSearchNews struct {
	Title              string `json:"title"`
	Publisher          string `json:"publisher"`
	Link               string `json:"link"`
	UUID               string `json:"uuid"`
	ProviderPublishTime int64 `json:"providerPublishTime"`
}

type yfError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

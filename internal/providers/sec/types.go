package sec

import (
	"encoding/json"
	"time"
)

// --- EDGAR Submissions (data.sec.gov/submissions) ---

// edgarSubmissionsResponse is the company submissions endpoint payload.
// Filing attributes arrive as parallel arrays indexed by filing.
type edgarSubmissionsResponse struct {
	CIK            string       `json:"cik"`
	EntityType     string       `json:"entityType"`
	SIC            string       `json:"sic"`
	SICDescription string       `json:"sicDescription"`
	Name           string       `json:"name"`
	Tickers        []string     `json:"tickers"`
	Exchanges      []string     `json:"exchanges"`
	FiscalYearEnd  string       `json:"fiscalYearEnd"`
	Filings        edgarFilings `json:"filings"`
}

type edgarFilings struct {
	Recent edgarFilingSet `json:"recent"`
}

type edgarFilingSet struct {
	AccessionNumber []string `json:"accessionNumber"`
	FilingDate      []string `json:"filingDate"`
	ReportDate      []string `json:"reportDate"`
	Form            []string `json:"form"`
	PrimaryDocument []string `json:"primaryDocument"`
	Description     []string `json:"primaryDocDescription"`
}

// --- CIK / Ticker mapping ---

// edgarTickerEntry is a row from company_tickers.json; cik_str is a bare
// number there despite the name.
type edgarTickerEntry struct {
	CIK    json.Number `json:"cik_str"`
	Ticker string      `json:"ticker"`
	Title  string      `json:"title"`
}

// parseSECDate parses the date formats EDGAR uses, returning the zero time
// on failure.
func parseSECDate(s string) time.Time {
	for _, layout := range []string{
		"2006-01-02",
		"2006-01-02T15:04:05.000Z",
		time.RFC3339,
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

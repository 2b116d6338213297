package fred

import (
	"strings"
	"time"
)

// --- Series search ---

type fredSearchResponse struct {
	Count   int          `json:"count"`
	Offset  int          `json:"offset"`
	Limit   int          `json:"limit"`
	Seriess []fredSeries `json:"seriess"`
}

type fredSeries struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	ObservationStart   string `json:"observation_start"`
	ObservationEnd     string `json:"observation_end"`
	Frequency          string `json:"frequency"`
	FrequencyShort     string `json:"frequency_short"`
	Units              string `json:"units"`
	UnitsShort         string `json:"units_short"`
	SeasonalAdjustment string `json:"seasonal_adjustment"`
	LastUpdated        string `json:"last_updated"`
	Popularity         int    `json:"popularity"`
	Notes              string `json:"notes"`
}

// --- Observations ---

type fredObservationsResponse struct {
	Count        int               `json:"count"`
	Offset       int               `json:"offset"`
	Limit        int               `json:"limit"`
	Observations []fredObservation `json:"observations"`
}

// fredObservation carries both fields as strings; FRED reports missing
// values as ".".
type fredObservation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

// --- Release series listing ---

type fredReleaseSeriesResponse struct {
	Count   int          `json:"count"`
	Offset  int          `json:"offset"`
	Limit   int          `json:"limit"`
	Seriess []fredSeries `json:"seriess"`
}

// fredSeriesAliases maps friendly names to FRED series IDs so callers can
// ask for "gdp" or "unemployment" without knowing the ID. Unknown names
// pass through unchanged.
var fredSeriesAliases = map[string]string{
	"GDP":          "GDP",      // Gross Domestic Product
	"REAL_GDP":     "GDPC1",    // Real Gross Domestic Product
	"UNEMPLOYMENT": "UNRATE",   // Unemployment Rate
	"PAYROLLS":     "PAYEMS",   // Total Nonfarm Payrolls
	"CPI":          "CPIAUCSL", // Consumer Price Index, All Urban Consumers
	"INFLATION":    "CPIAUCSL",
	"CORE_CPI":     "CPILFESL", // CPI less food and energy
	"PCE":          "PCE",      // Personal Consumption Expenditures
	"FED_FUNDS":    "FEDFUNDS", // Federal Funds Effective Rate
	"SOFR":         "SOFR",     // Secured Overnight Financing Rate
	"TREASURY_2Y":  "DGS2",
	"TREASURY_5Y":  "DGS5",
	"TREASURY_10Y": "DGS10",
	"TREASURY_30Y": "DGS30",
	"MORTGAGE_30Y": "MORTGAGE30US",
	"RETAIL_SALES": "RSAFS",
	"HOUSING":      "HOUST", // Housing Starts
	"SENTIMENT":    "UMCSENT",
	"INDPRO":       "INDPRO", // Industrial Production Index
	"M2":           "M2SL",
	"VIX":          "VIXCLS",
}

// resolveSeriesID maps a friendly alias (any case) to its FRED series ID.
func resolveSeriesID(name string) string {
	if id, ok := fredSeriesAliases[strings.ToUpper(name)]; ok {
		return id
	}
	return strings.ToUpper(name)
}

// parseFredDate parses a FRED YYYY-MM-DD date, returning the zero time on
// failure.
func parseFredDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Package models defines the core data structures used throughout finscope.
package models

import "time"

// OHLCV represents a single candlestick bar of price data.
type OHLCV struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume"`
	AdjClose  float64   `json:"adj_close,omitempty"`
}

// Quote represents a real-time stock quote.
type Quote struct {
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	Currency      string    `json:"currency,omitempty"`
	Exchange      string    `json:"exchange,omitempty"`
	LastPrice     float64   `json:"last_price"`
	Change        float64   `json:"change"`
	ChangePct     float64   `json:"change_pct"`
	Open          float64   `json:"open"`
	High          float64   `json:"high"`
	Low           float64   `json:"low"`
	PrevClose     float64   `json:"prev_close"`
	Volume        int64     `json:"volume"`
	AvgVolume     int64     `json:"avg_volume,omitempty"`
	WeekHigh52    float64   `json:"week_high_52"`
	WeekLow52     float64   `json:"week_low_52"`
	MarketCap     float64   `json:"market_cap"`
	PE            float64   `json:"pe,omitempty"`
	EPS           float64   `json:"eps,omitempty"`
	DividendYield float64   `json:"dividend_yield,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// StockProfile holds company profile and summary information.
type StockProfile struct {
	Symbol      string    `json:"symbol"`
	Name        string    `json:"name"`
	Exchange    string    `json:"exchange,omitempty"`
	Sector      string    `json:"sector,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	Country     string    `json:"country,omitempty"`
	Website     string    `json:"website,omitempty"`
	Employees   int64     `json:"employees,omitempty"`
	Summary     string    `json:"summary,omitempty"`
	MarketCap   float64   `json:"market_cap,omitempty"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// EquitySearchResult represents one hit from a symbol search.
type EquitySearchResult struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange,omitempty"`
	Type     string `json:"type,omitempty"` // "EQUITY", "ETF", "INDEX"
	Sector   string `json:"sector,omitempty"`
	Industry string `json:"industry,omitempty"`
}

// ShortInterest represents short interest statistics for a stock.
type ShortInterest struct {
	Symbol             string  `json:"symbol"`
	SharesOutstanding  int64   `json:"shares_outstanding"`
	FloatShares        int64   `json:"float_shares"`
	SharesShort        int64   `json:"shares_short"`
	SharesShortPrior   int64   `json:"shares_short_prior_month,omitempty"`
	ShortRatio         float64 `json:"short_ratio"`           // days to cover
	ShortPercentFloat  float64 `json:"short_percent_of_float"` // percentage
}

// InstitutionalHolder represents one institutional position in a stock.
type InstitutionalHolder struct {
	Symbol       string    `json:"symbol"`
	Organization string    `json:"organization"`
	ReportDate   time.Time `json:"report_date"`
	PctHeld      float64   `json:"pct_held"` // percentage of shares outstanding
	Shares       int64     `json:"shares"`
	Value        float64   `json:"value"` // position value in USD
}

// DividendRecord represents a single historical dividend payment.
type DividendRecord struct {
	Symbol string    `json:"symbol"`
	ExDate time.Time `json:"ex_date"`
	Amount float64   `json:"amount"`
}

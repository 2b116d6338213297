package models

import "time"

// --- FRED (Federal Reserve Economic Data) ---

// FREDSearchResult represents a FRED series search result.
type FREDSearchResult struct {
	SeriesID           string    `json:"series_id"`
	Title              string    `json:"title"`
	ObservationStart   time.Time `json:"observation_start,omitempty"`
	ObservationEnd     time.Time `json:"observation_end,omitempty"`
	Frequency          string    `json:"frequency,omitempty"`
	Units              string    `json:"units,omitempty"`
	SeasonalAdjustment string    `json:"seasonal_adjustment,omitempty"`
	Popularity         int       `json:"popularity,omitempty"`
}

// FREDSeriesData represents a FRED time series data point.
type FREDSeriesData struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// FREDObservation is one observation drawn from a FRED release,
// tagged with the series it belongs to.
type FREDObservation struct {
	SeriesID string    `json:"series_id"`
	Title    string    `json:"title,omitempty"`
	Date     time.Time `json:"date"`
	Value    float64   `json:"value"`
}

// FREDReleasePage is one page of observations from a FRED release.
// NextCursor is an opaque "SERIES_ID,DATE" token; pass it back unchanged
// to resume where this page left off. Empty means no more data.
type FREDReleasePage struct {
	ReleaseID    int               `json:"release_id"`
	Observations []FREDObservation `json:"observations"`
	NextCursor   string            `json:"next_cursor,omitempty"`
}

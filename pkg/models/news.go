package models

import "time"

// NewsArticle represents a single news article from any source.
type NewsArticle struct {
	Symbol      string    `json:"symbol,omitempty"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	Summary     string    `json:"summary,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// CompanyFiling represents an SEC filing.
type CompanyFiling struct {
	Date        time.Time `json:"date"`
	Symbol      string    `json:"symbol,omitempty"`
	CIK         string    `json:"cik"`
	CompanyName string    `json:"company_name"`
	FormType    string    `json:"form_type"` // "10-K", "10-Q", "8-K", "S-1", etc.
	AccessionNo string    `json:"accession_no"`
	FilingURL   string    `json:"filing_url,omitempty"`
	Description string    `json:"description,omitempty"`
}

// CIKMapping represents a mapping from ticker symbol to SEC CIK number.
type CIKMapping struct {
	CIK    string `json:"cik"`
	Symbol string `json:"symbol,omitempty"`
	Name   string `json:"name"`
}

// LitigationRelease represents an SEC litigation release announcement.
type LitigationRelease struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	Published   time.Time `json:"published"`
}

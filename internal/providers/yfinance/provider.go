// Package yfinance implements the Yahoo Finance data provider.
// It wraps Yahoo Finance's public APIs (v7 quote, v8 chart, v10 quoteSummary,
// v1 search) into the standard provider/fetcher framework.
//
// Yahoo Finance is a free, no-API-key provider that covers equities,
// ETFs, and indices worldwide.
package yfinance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/finscope/finscope/internal/infra"
	"github.com/finscope/finscope/internal/provider"
)

const providerName = "yfinance"

const (
	yfQuery        = "https://query1.finance.yahoo.com"
	yfChartURL     = yfQuery + "/v8/finance/chart"
	yfQuoteURL     = yfQuery + "/v7/finance/quote"
	yfSummaryURL   = yfQuery + "/v10/finance/quoteSummary"
	yfSearchURL    = yfQuery + "/v1/finance/search"
	yfFeedURL      = "https://feeds.finance.yahoo.com/rss/2.0/headline"
	yfWorldFeedURL = "https://finance.yahoo.com/news/rssindex"
)

// Provider implements provider.Provider for Yahoo Finance.
type Provider struct {
	provider.BaseProvider
}

// New creates a new YFinance provider and registers all fetchers.
func New() *Provider {
	p := &Provider{
		BaseProvider: provider.NewBaseProvider(
			providerName,
			"Yahoo Finance - free global financial data",
			"https://finance.yahoo.com",
			nil, // no credentials required
		),
	}

	// --- Equity / Price ---
	p.RegisterFetcher(newEquityHistoricalFetcher())
	p.RegisterFetcher(newEquityIntradayFetcher())
	p.RegisterFetcher(newEquityQuoteFetcher())
	p.RegisterFetcher(newEquityInfoFetcher())
	p.RegisterFetcher(newEquitySearchFetcher())

	// --- Equity / Fundamentals ---
	p.RegisterFetcher(newBalanceSheetFetcher())
	p.RegisterFetcher(newIncomeStatementFetcher())
	p.RegisterFetcher(newCashFlowStatementFetcher())
	p.RegisterFetcher(newFinancialRatiosFetcher())
	p.RegisterFetcher(newKeyMetricsFetcher())
	p.RegisterFetcher(newRevenueTrendFetcher())
	p.RegisterFetcher(newHistoricalDividendsFetcher())

	// --- Equity / Ownership & Shorts ---
	p.RegisterFetcher(newShortInterestFetcher())
	p.RegisterFetcher(newInstitutionalOwnershipFetcher())

	// --- News ---
	p.RegisterFetcher(newCompanyNewsFetcher())
	p.RegisterFetcher(newWorldNewsFetcher())

	return p
}

// Ping checks connectivity to Yahoo Finance.
func (p *Provider) Ping(ctx context.Context) error {
	url := fmt.Sprintf("%s?symbols=AAPL", yfQuoteURL)
	body, _, err := infra.DoGet(ctx, url, jsonHeaders())
	if err != nil {
		return fmt.Errorf("yfinance ping: %w", err)
	}
	body.Close()
	return nil
}

// --- Shared helpers ---

func jsonHeaders() map[string]string {
	return map[string]string{"Accept": "application/json"}
}

// fetchJSON performs a GET request and decodes the response into dest.
func fetchJSON(ctx context.Context, url string, dest any) error {
	body, _, err := infra.DoGet(ctx, url, jsonHeaders())
	if err != nil {
		return err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	return nil
}

// newResult creates a FetchResult with the current timestamp.
func newResult(data any) *provider.FetchResult {
	return &provider.FetchResult{
		Data:      data,
		FetchedAt: time.Now(),
	}
}

// newCachedResult creates a FetchResult marked as cached.
func newCachedResult(data any) *provider.FetchResult {
	return &provider.FetchResult{
		Data:      data,
		FetchedAt: time.Now(),
		Cached:    true,
	}
}

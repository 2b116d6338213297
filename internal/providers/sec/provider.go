// Package sec implements the SEC EDGAR data provider.
// SEC EDGAR provides free access to company filings, CIK mappings, and
// litigation releases via REST APIs and RSS feeds.
//
// No API key required. Must include a User-Agent header per SEC policy.
// Docs: https://www.sec.gov/edgar/sec-api-documentation
// Rate limit: 10 requests/second per user-agent.
package sec

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/finscope/finscope/internal/infra"
	"github.com/finscope/finscope/internal/provider"
)

const (
	providerName = "sec"

	edgarSubmissions = "https://data.sec.gov/submissions"
	edgarTickersURL  = "https://www.sec.gov/files/company_tickers.json"
	edgarArchivesURL = "https://www.sec.gov/Archives/edgar/data"
	litigationFeed   = "https://www.sec.gov/rss/litigation/litreleases.xml"

	credUserAgent = "user_agent"

	// SEC requires a User-Agent identifying the requester.
	defaultUserAgent = "finscope/1.0 (github.com/finscope/finscope)"
)

// Provider implements provider.Provider for SEC EDGAR.
type Provider struct {
	provider.BaseProvider
	userAgent string
}

// New creates a new SEC provider and registers all fetchers.
func New() *Provider {
	p := &Provider{
		BaseProvider: provider.NewBaseProvider(
			providerName,
			"SEC EDGAR - US securities filings and regulatory data",
			"https://www.sec.gov/edgar",
			[]provider.ProviderCredential{
				{
					Name:        credUserAgent,
					Description: "User-Agent for EDGAR requests (company name + contact email)",
					Required:    false,
					EnvVar:      "SEC_USER_AGENT",
				},
			},
		),
		userAgent: defaultUserAgent,
	}

	p.RegisterFetcher(newCompanyFilingsFetcher(p))
	p.RegisterFetcher(newCikMapFetcher(p))
	p.RegisterFetcher(newRssLitigationFetcher(p))

	return p
}

// Init stores the optional custom User-Agent.
func (p *Provider) Init(credentials map[string]string) error {
	if err := p.BaseProvider.Init(credentials); err != nil {
		return err
	}
	if ua := credentials[credUserAgent]; ua != "" {
		p.userAgent = ua
	}
	return nil
}

// Ping checks connectivity to SEC EDGAR.
func (p *Provider) Ping(ctx context.Context) error {
	url := edgarSubmissions + "/CIK0000320193.json" // Apple
	body, _, err := infra.DoGet(ctx, url, p.headers())
	if err != nil {
		return fmt.Errorf("sec ping: %w", err)
	}
	body.Close()
	return nil
}

// --- Shared helpers ---

func (p *Provider) headers() map[string]string {
	return map[string]string{
		"User-Agent": p.userAgent,
		"Accept":     "application/json",
	}
}

// fetchJSON performs a GET request to the SEC API and decodes JSON.
func (p *Provider) fetchJSON(ctx context.Context, url string, dest any) error {
	body, _, err := infra.DoGet(ctx, url, p.headers())
	if err != nil {
		return err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read SEC response: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse SEC JSON: %w", err)
	}
	return nil
}

// padCIK pads a CIK number to 10 digits with leading zeros.
func padCIK(cik string) string {
	for len(cik) < 10 {
		cik = "0" + cik
	}
	return cik
}

func newResult(data any) *provider.FetchResult {
	return &provider.FetchResult{
		Data:      data,
		FetchedAt: time.Now(),
	}
}

func newCachedResult(data any) *provider.FetchResult {
	return &provider.FetchResult{
		Data:      data,
		FetchedAt: time.Now(),
		Cached:    true,
	}
}

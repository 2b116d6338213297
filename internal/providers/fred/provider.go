// Package fred implements the FRED (Federal Reserve Economic Data) provider.
// FRED serves hundreds of thousands of economic time series (GDP, unemployment,
// CPI, interest rates) through a free REST API.
//
// Requires a free API key from https://fred.stlouisfed.org/docs/api/api_key.html
// Rate limit: 120 requests/minute.
// Docs: https://fred.stlouisfed.org/docs/api/fred/
package fred

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
	providerName = "fred"
	baseURL      = "https://api.stlouisfed.org/fred"
	credAPIKey   = "api_key"

	// injectedKeyParam is the internal param name the Fetcher wrapper uses to
	// hand the API key to individual fetchers. Never supplied by callers.
	injectedKeyParam = "_fred_api_key"
)

// Provider implements provider.Provider for FRED.
type Provider struct {
	provider.BaseProvider
	apiKey string
}

// New creates a new FRED provider and registers all fetchers.
func New() *Provider {
	p := &Provider{
		BaseProvider: provider.NewBaseProvider(
			providerName,
			"Federal Reserve Economic Data - macroeconomic time series",
			"https://fred.stlouisfed.org",
			[]provider.ProviderCredential{
				{
					Name:        credAPIKey,
					Description: "FRED API key from fred.stlouisfed.org",
					Required:    true,
					EnvVar:      "FRED_API_KEY",
				},
			},
		),
	}

	p.RegisterFetcher(newFredSearchFetcher())
	p.RegisterFetcher(newFredSeriesFetcher())
	p.RegisterFetcher(newFredReleaseObservationsFetcher())

	return p
}

// Init stores the API key.
func (p *Provider) Init(credentials map[string]string) error {
	if err := p.BaseProvider.Init(credentials); err != nil {
		return err
	}
	p.apiKey = credentials[credAPIKey]
	return nil
}

// Ping checks connectivity to the FRED API.
func (p *Provider) Ping(ctx context.Context) error {
	body, _, err := infra.DoGet(ctx, fredURL("series?series_id=GDP", p.apiKey), jsonHeaders())
	if err != nil {
		return fmt.Errorf("fred ping: %w", err)
	}
	body.Close()
	return nil
}

// APIKey returns the stored API key.
func (p *Provider) APIKey() string {
	return p.apiKey
}

// Fetcher overrides BaseProvider.Fetcher to return a wrapper that
// auto-injects the FRED API key into query params before delegating.
func (p *Provider) Fetcher(model provider.ModelType) provider.Fetcher {
	inner := p.BaseProvider.Fetcher(model)
	if inner == nil {
		return nil
	}
	return &apiKeyInjector{inner: inner, apiKey: &p.apiKey}
}

// apiKeyInjector wraps a Fetcher and injects the FRED API key.
type apiKeyInjector struct {
	inner  provider.Fetcher
	apiKey *string
}

func (w *apiKeyInjector) ModelType() provider.ModelType { return w.inner.ModelType() }
func (w *apiKeyInjector) Description() string           { return w.inner.Description() }
func (w *apiKeyInjector) RequiredParams() []string      { return w.inner.RequiredParams() }
func (w *apiKeyInjector) OptionalParams() []string      { return w.inner.OptionalParams() }

func (w *apiKeyInjector) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	enriched := make(provider.QueryParams, len(params)+1)
	for k, v := range params {
		enriched[k] = v
	}
	enriched[injectedKeyParam] = *w.apiKey
	return w.inner.Fetch(ctx, enriched)
}

// --- Shared helpers ---

func jsonHeaders() map[string]string {
	return map[string]string{"Accept": "application/json"}
}

// fredURL builds a full FRED API URL with api_key and file_type=json appended.
func fredURL(endpoint, apiKey string) string {
	sep := "?"
	for _, c := range endpoint {
		if c == '?' {
			sep = "&"
			break
		}
	}
	return baseURL + "/" + endpoint + sep + "api_key=" + apiKey + "&file_type=json"
}

// fetchFredJSON performs a GET request to the FRED API and decodes JSON.
func fetchFredJSON(ctx context.Context, endpoint, apiKey string, dest any) error {
	body, _, err := infra.DoGet(ctx, fredURL(endpoint, apiKey), jsonHeaders())
	if err != nil {
		return err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read FRED response: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parse FRED JSON: %w", err)
	}
	return nil
}

// fetchObservations fetches raw observations for a series, honoring the
// optional date-range params.
func fetchObservations(ctx context.Context, seriesID, apiKey string, params provider.QueryParams) ([]fredObservation, error) {
	endpoint := "series/observations?series_id=" + seriesID
	if sd := params[provider.ParamStartDate]; sd != "" {
		endpoint += "&observation_start=" + sd
	}
	if ed := params[provider.ParamEndDate]; ed != "" {
		endpoint += "&observation_end=" + ed
	}

	var resp fredObservationsResponse
	if err := fetchFredJSON(ctx, endpoint, apiKey, &resp); err != nil {
		return nil, err
	}
	return resp.Observations, nil
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

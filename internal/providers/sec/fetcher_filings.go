package sec

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/finscope/finscope/internal/provider"
	"github.com/finscope/finscope/pkg/models"
)

// ---- CompanyFilings fetcher ----
// Lists a company's recent filings from the EDGAR submissions API.

type companyFilingsFetcher struct {
	provider.BaseFetcher
	p *Provider
}

func newCompanyFilingsFetcher(p *Provider) *companyFilingsFetcher {
	return &companyFilingsFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelCompanyFilings,
			"Get recent SEC filings for a ticker or CIK",
			[]string{provider.ParamSymbol},
			[]string{provider.ParamFormType, provider.ParamLimit},
			10*time.Minute, 8, time.Second,
		),
		p: p,
	}
}

func (f *companyFilingsFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	symbol := params[provider.ParamSymbol]
	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	cik, err := f.p.resolveSymbolToCIK(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("sec filings resolve CIK for %s: %w", symbol, err)
	}

	u := fmt.Sprintf("%s/CIK%s.json", edgarSubmissions, padCIK(cik))
	var resp edgarSubmissionsResponse
	if err := f.p.fetchJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("sec filings submissions: %w", err)
	}

	limit := 100
	if lim := params[provider.ParamLimit]; lim != "" {
		if n, err := strconv.Atoi(lim); err == nil && n > 0 {
			limit = n
		}
	}
	formType := strings.ToUpper(params[provider.ParamFormType])

	filings := collectFilings(&resp, symbol, formType, limit)
	f.CacheSet(cacheKey, filings)
	return newResult(filings), nil
}

// collectFilings walks the parallel filing arrays, applying the optional
// form-type filter and limit.
func collectFilings(resp *edgarSubmissionsResponse, symbol, formType string, limit int) []models.CompanyFiling {
	recent := resp.Filings.Recent
	var filings []models.CompanyFiling
	for i := range recent.AccessionNumber {
		if len(filings) == limit {
			break
		}
		form := ""
		if i < len(recent.Form) {
			form = recent.Form[i]
		}
		if formType != "" && !strings.EqualFold(form, formType) {
			continue
		}

		accNo := recent.AccessionNumber[i]
		filingURL := ""
		if i < len(recent.PrimaryDocument) && recent.PrimaryDocument[i] != "" {
			filingURL = fmt.Sprintf("%s/%s/%s/%s",
				edgarArchivesURL, resp.CIK,
				strings.ReplaceAll(accNo, "-", ""), recent.PrimaryDocument[i])
		}
		date := ""
		if i < len(recent.FilingDate) {
			date = recent.FilingDate[i]
		}
		desc := ""
		if i < len(recent.Description) {
			desc = recent.Description[i]
		}

		filings = append(filings, models.CompanyFiling{
			Date:        parseSECDate(date),
			Symbol:      symbol,
			CIK:         resp.CIK,
			CompanyName: resp.Name,
			FormType:    form,
			AccessionNo: accNo,
			FilingURL:   filingURL,
			Description: desc,
		})
	}
	return filings
}

// ---- CikMap fetcher ----
// Resolves ticker symbols to CIK numbers via the SEC ticker mapping file.

type cikMapFetcher struct {
	provider.BaseFetcher
	p *Provider
}

func newCikMapFetcher(p *Provider) *cikMapFetcher {
	return &cikMapFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelCikMap,
			"Map ticker symbols to SEC CIK numbers",
			nil,
			[]string{provider.ParamSymbol, provider.ParamLimit},
			time.Hour, 8, time.Second,
		),
		p: p,
	}
}

func (f *cikMapFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	entries, err := f.p.tickerEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("sec cik map: %w", err)
	}

	symbol := strings.ToUpper(strings.TrimSpace(params[provider.ParamSymbol]))
	var mappings []models.CIKMapping
	for _, e := range entries {
		if symbol != "" && !strings.EqualFold(e.Ticker, symbol) {
			continue
		}
		mappings = append(mappings, models.CIKMapping{
			CIK:    padCIK(e.CIK.String()),
			Symbol: e.Ticker,
			Name:   e.Title,
		})
	}
	sort.Slice(mappings, func(i, j int) bool { return mappings[i].Symbol < mappings[j].Symbol })

	if lim := params[provider.ParamLimit]; lim != "" {
		if n, err := strconv.Atoi(lim); err == nil && n > 0 && n < len(mappings) {
			mappings = mappings[:n]
		}
	}

	f.CacheSet(cacheKey, mappings)
	return newResult(mappings), nil
}

// ---- RssLitigation fetcher ----
// Parses the SEC litigation releases RSS feed.

type rssLitigationFetcher struct {
	provider.BaseFetcher
	p       *Provider
	parser  *gofeed.Parser
	feedURL string
}

func newRssLitigationFetcher(p *Provider) *rssLitigationFetcher {
	return &rssLitigationFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelRssLitigation,
			"SEC litigation releases from the official RSS feed",
			nil,
			[]string{provider.ParamLimit},
			10*time.Minute, 8, time.Second,
		),
		p:       p,
		parser:  gofeed.NewParser(),
		feedURL: litigationFeed,
	}
}

func (f *rssLitigationFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	// Init may replace the provider's User-Agent after this fetcher is
	// built, so pick it up on every request.
	f.parser.UserAgent = f.p.userAgent
	feed, err := f.parser.ParseURLWithContext(f.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("sec litigation feed: %w", err)
	}

	limit := 25
	if lim := params[provider.ParamLimit]; lim != "" {
		if n, err := strconv.Atoi(lim); err == nil && n > 0 {
			limit = n
		}
	}

	var releases []models.LitigationRelease
	for _, item := range feed.Items {
		if len(releases) == limit {
			break
		}
		published := time.Time{}
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		}
		releases = append(releases, models.LitigationRelease{
			Title:       item.Title,
			URL:         item.Link,
			Description: strings.TrimSpace(item.Description),
			Published:   published,
		})
	}

	f.CacheSet(cacheKey, releases)
	return newResult(releases), nil
}

// --- Ticker mapping cache ---

var (
	tickerMu        sync.Mutex
	tickerCache     []edgarTickerEntry
	tickerFetchedAt time.Time
)

const tickerTTL = 24 * time.Hour

// tickerEntries returns the SEC ticker mapping, fetching it at most once
// per day. The file covers every registered ticker and changes rarely.
func (p *Provider) tickerEntries(ctx context.Context) ([]edgarTickerEntry, error) {
	tickerMu.Lock()
	defer tickerMu.Unlock()

	if tickerCache != nil && time.Since(tickerFetchedAt) < tickerTTL {
		return tickerCache, nil
	}

	var raw map[string]edgarTickerEntry
	if err := p.fetchJSON(ctx, edgarTickersURL, &raw); err != nil {
		return nil, fmt.Errorf("fetch company tickers: %w", err)
	}

	entries := make([]edgarTickerEntry, 0, len(raw))
	for _, e := range raw {
		entries = append(entries, e)
	}
	tickerCache = entries
	tickerFetchedAt = time.Now()
	return entries, nil
}

// resolveSymbolToCIK resolves a ticker symbol to its CIK number. A value
// that is already numeric is treated as a CIK.
func (p *Provider) resolveSymbolToCIK(ctx context.Context, symbol string) (string, error) {
	sym := strings.ToUpper(strings.TrimSpace(symbol))
	if isNumeric(sym) {
		return sym, nil
	}

	entries, err := p.tickerEntries(ctx)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if strings.EqualFold(e.Ticker, sym) {
			return e.CIK.String(), nil
		}
	}
	return "", fmt.Errorf("CIK not found for symbol %s", symbol)
}

func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

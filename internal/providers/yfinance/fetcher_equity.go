package yfinance

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/finscope/finscope/internal/provider"
	"github.com/finscope/finscope/pkg/models"
	"github.com/finscope/finscope/pkg/utils"
)

// --- EquityHistorical fetcher ---

type equityHistoricalFetcher struct {
	provider.BaseFetcher
}

func newEquityHistoricalFetcher() *equityHistoricalFetcher {
	return &equityHistoricalFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelEquityHistorical,
			"Historical OHLCV price data from Yahoo Finance",
			[]string{provider.ParamSymbol},
			[]string{provider.ParamStartDate, provider.ParamEndDate, provider.ParamPeriod, provider.ParamInterval},
			15*time.Minute, 5, time.Second,
		),
	}
}

func (f *equityHistoricalFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	symbol := utils.NormalizeSymbol(params[provider.ParamSymbol])

	startDate, endDate, err := utils.DateRange(
		params[provider.ParamStartDate],
		params[provider.ParamEndDate],
		params[provider.ParamPeriod],
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	interval := params[provider.ParamInterval]
	if interval == "" {
		interval = "1d"
	}

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}

	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf(
		"%s/%s?period1=%d&period2=%d&interval=%s",
		yfChartURL, url.PathEscape(symbol), startDate.Unix(), endDate.Unix(), interval,
	)

	var resp yfChartResponse
	if err := fetchJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("yfinance chart %s: %w", symbol, err)
	}

	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("yfinance chart error: %s", resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("no data for %s", symbol)
	}

	candles := parseCandles(resp.Chart.Result[0])
	f.CacheSetTTL(cacheKey, candles, 15*time.Minute)
	return newResult(candles), nil
}

// --- EquityIntraday fetcher ---

type equityIntradayFetcher struct {
	provider.BaseFetcher
}

func newEquityIntradayFetcher() *equityIntradayFetcher {
	return &equityIntradayFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelEquityIntraday,
			"Intraday price bars for the current trading day from Yahoo Finance",
			[]string{provider.ParamSymbol},
			[]string{provider.ParamInterval},
			1*time.Minute, 5, time.Second,
		),
	}
}

func (f *equityIntradayFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	symbol := utils.NormalizeSymbol(params[provider.ParamSymbol])

	interval := params[provider.ParamInterval]
	if interval == "" {
		interval = "5m"
	}

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/%s?range=1d&interval=%s", yfChartURL, url.PathEscape(symbol), interval)

	var resp yfChartResponse
	if err := fetchJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("yfinance intraday %s: %w", symbol, err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("yfinance chart error: %s", resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("no intraday data for %s", symbol)
	}

	bars := parseCandles(resp.Chart.Result[0])
	f.CacheSetTTL(cacheKey, bars, 1*time.Minute)
	return newResult(bars), nil
}

// --- EquityQuote fetcher ---

type equityQuoteFetcher struct {
	provider.BaseFetcher
}

func newEquityQuoteFetcher() *equityQuoteFetcher {
	return &equityQuoteFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelEquityQuote,
			"Real-time stock quote from Yahoo Finance",
			[]string{provider.ParamSymbol},
			nil,
			5*time.Minute, 5, time.Second,
		),
	}
}

func (f *equityQuoteFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	symbol := utils.NormalizeSymbol(params[provider.ParamSymbol])

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}

	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s?symbols=%s", yfQuoteURL, url.QueryEscape(symbol))

	var resp yfQuoteResponse
	if err := fetchJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("yfinance quote %s: %w", symbol, err)
	}

	if resp.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("yfinance API error: %s", resp.QuoteResponse.Error.Description)
	}
	if len(resp.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("no quote for %s", symbol)
	}

	r := resp.QuoteResponse.Result[0]
	quote := &models.Quote{
		Symbol:        r.Symbol,
		Name:          utils.Coalesce(r.LongName, r.ShortName),
		Currency:      r.Currency,
		Exchange:      utils.Coalesce(r.FullExchangeName, r.Exchange),
		LastPrice:     r.RegularMarketPrice,
		Change:        r.RegularMarketChange,
		ChangePct:     r.RegularMarketChangePercent,
		Open:          r.RegularMarketOpen,
		High:          r.RegularMarketDayHigh,
		Low:           r.RegularMarketDayLow,
		PrevClose:     r.RegularMarketPreviousClose,
		Volume:        r.RegularMarketVolume,
		AvgVolume:     r.AverageDailyVolume3Month,
		WeekHigh52:    r.FiftyTwoWeekHigh,
		WeekLow52:     r.FiftyTwoWeekLow,
		MarketCap:     r.MarketCap,
		PE:            r.TrailingPE,
		EPS:           r.EpsTrailingTwelveMonths,
		DividendYield: r.DividendYield,
		Timestamp:     time.Unix(r.RegularMarketTime, 0),
	}

	f.CacheSet(cacheKey, quote)
	return newResult(quote), nil
}

// --- EquityInfo fetcher ---

type equityInfoFetcher struct {
	provider.BaseFetcher
}

func newEquityInfoFetcher() *equityInfoFetcher {
	return &equityInfoFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelEquityInfo,
			"Company profile and summary info from Yahoo Finance",
			[]string{provider.ParamSymbol},
			nil,
			1*time.Hour, 5, time.Second,
		),
	}
}

func (f *equityInfoFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	symbol := utils.NormalizeSymbol(params[provider.ParamSymbol])

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}

	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/%s?modules=assetProfile,summaryDetail", yfSummaryURL, url.PathEscape(symbol))

	var resp yfQuoteSummaryResponse
	if err := fetchJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("yfinance info %s: %w", symbol, err)
	}

	if resp.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yfinance API error: %s", resp.QuoteSummary.Error.Description)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("no info for %s", symbol)
	}

	r := resp.QuoteSummary.Result[0]
	info := &models.StockProfile{
		Symbol:    symbol,
		Name:      symbol,
		FetchedAt: time.Now(),
	}
	if ap := r.AssetProfile; ap != nil {
		info.Sector = ap.Sector
		info.Industry = ap.Industry
		info.Country = ap.Country
		info.Website = ap.Website
		info.Employees = ap.FullTimeEmployees
		info.Summary = ap.LongBusinessSummary
	}
	if sd := r.SummaryDetail; sd != nil {
		info.MarketCap = sd.MarketCap.Raw
	}

	f.CacheSetTTL(cacheKey, info, 1*time.Hour)
	return newResult(info), nil
}

// --- EquitySearch fetcher ---

type equitySearchFetcher struct {
	provider.BaseFetcher
}

func newEquitySearchFetcher() *equitySearchFetcher {
	return &equitySearchFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelEquitySearch,
			"Search for equities by name or symbol on Yahoo Finance",
			[]string{provider.ParamQuery},
			[]string{provider.ParamLimit},
			5*time.Minute, 5, time.Second,
		),
	}
}

func (f *equitySearchFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	query := params[provider.ParamQuery]

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}

	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s?q=%s&quotesCount=20&newsCount=0", yfSearchURL, url.QueryEscape(query))

	var resp yfSearchResponse
	if err := fetchJSON(ctx, u, &resp); err != nil {
		return nil, fmt.Errorf("yfinance search %q: %w", query, err)
	}

	results := make([]models.EquitySearchResult, 0, len(resp.Quotes))
	for _, q := range resp.Quotes {
		if !q.IsYahooFinance {
			continue
		}
		results = append(results, models.EquitySearchResult{
			Symbol:   q.Symbol,
			Name:     utils.Coalesce(q.LongName, q.ShortName),
			Exchange: q.Exchange,
			Type:     q.QuoteType,
			Sector:   q.Sector,
			Industry: q.Industry,
		})
	}

	f.CacheSet(cacheKey, results)
	return newResult(results), nil
}

// --- Helpers ---

// parseCandles converts YF chart data to OHLCV slices.
func parseCandles(result yfChartResult) []models.OHLCV {
	if len(result.Indicators.Quote) == 0 {
		return nil
	}

	q := result.Indicators.Quote[0]
	var adjCloses []*float64
	if len(result.Indicators.AdjClose) > 0 {
		adjCloses = result.Indicators.AdjClose[0].AdjClose
	}

	candles := make([]models.OHLCV, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		c := models.OHLCV{
			Timestamp: time.Unix(ts, 0),
		}
		if i < len(q.Open) && q.Open[i] != nil {
			c.Open = *q.Open[i]
		}
		if i < len(q.High) && q.High[i] != nil {
			c.High = *q.High[i]
		}
		if i < len(q.Low) && q.Low[i] != nil {
			c.Low = *q.Low[i]
		}
		if i < len(q.Close) && q.Close[i] != nil {
			c.Close = *q.Close[i]
		}
		if i < len(q.Volume) && q.Volume[i] != nil {
			c.Volume = *q.Volume[i]
		}
		if i < len(adjCloses) && adjCloses[i] != nil {
			c.AdjClose = *adjCloses[i]
		}
		candles = append(candles, c)
	}
	return candles
}

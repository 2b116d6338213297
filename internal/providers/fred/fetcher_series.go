package fred

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/finscope/finscope/internal/provider"
	"github.com/finscope/finscope/pkg/models"
)

// ---- FredSearch fetcher ----

type fredSearchFetcher struct {
	provider.BaseFetcher
}

func newFredSearchFetcher() *fredSearchFetcher {
	return &fredSearchFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelFredSearch,
			"Search FRED for economic data series",
			[]string{provider.ParamQuery},
			[]string{provider.ParamLimit},
			10*time.Minute, 10, time.Second,
		),
	}
}

func (f *fredSearchFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	apiKey := params[injectedKeyParam]

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	endpoint := "series/search?search_text=" + url.QueryEscape(params[provider.ParamQuery])
	if lim := params[provider.ParamLimit]; lim != "" {
		endpoint += "&limit=" + lim
	} else {
		endpoint += "&limit=25"
	}

	var resp fredSearchResponse
	if err := fetchFredJSON(ctx, endpoint, apiKey, &resp); err != nil {
		return nil, fmt.Errorf("fred search: %w", err)
	}

	var results []models.FREDSearchResult
	for _, s := range resp.Seriess {
		results = append(results, models.FREDSearchResult{
			SeriesID:           s.ID,
			Title:              s.Title,
			ObservationStart:   parseFredDate(s.ObservationStart),
			ObservationEnd:     parseFredDate(s.ObservationEnd),
			Frequency:          s.Frequency,
			Units:              s.Units,
			SeasonalAdjustment: s.SeasonalAdjustment,
			Popularity:         s.Popularity,
		})
	}

	f.CacheSet(cacheKey, results)
	return newResult(results), nil
}

// ---- FredSeries fetcher ----

type fredSeriesFetcher struct {
	provider.BaseFetcher
}

func newFredSeriesFetcher() *fredSeriesFetcher {
	return &fredSeriesFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelFredSeries,
			"Get FRED time series observations by series ID or alias",
			[]string{provider.ParamSeriesID},
			[]string{provider.ParamStartDate, provider.ParamEndDate},
			10*time.Minute, 10, time.Second,
		),
	}
}

func (f *fredSeriesFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	apiKey := params[injectedKeyParam]
	seriesID := resolveSeriesID(params[provider.ParamSeriesID])

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	obs, err := fetchObservations(ctx, seriesID, apiKey, params)
	if err != nil {
		return nil, fmt.Errorf("fred series %s: %w", seriesID, err)
	}

	data := convertObservations(obs)
	f.CacheSet(cacheKey, data)
	return newResult(data), nil
}

// convertObservations parses raw observations, dropping the "." placeholders
// FRED uses for missing values.
func convertObservations(obs []fredObservation) []models.FREDSeriesData {
	var data []models.FREDSeriesData
	for _, o := range obs {
		if o.Value == "." {
			continue
		}
		v, err := strconv.ParseFloat(o.Value, 64)
		if err != nil {
			continue
		}
		data = append(data, models.FREDSeriesData{
			Date:  parseFredDate(o.Date),
			Value: v,
		})
	}
	return data
}

// ---- FredReleaseObservations fetcher ----

const (
	defaultPageSize    = 100
	releaseSeriesLimit = 1000
)

type fredReleaseObservationsFetcher struct {
	provider.BaseFetcher
}

func newFredReleaseObservationsFetcher() *fredReleaseObservationsFetcher {
	return &fredReleaseObservationsFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelFredReleaseObservations,
			"Page through observations of every series in a FRED release",
			[]string{provider.ParamReleaseID},
			[]string{provider.ParamCursor, provider.ParamLimit, provider.ParamStartDate, provider.ParamEndDate},
			10*time.Minute, 10, time.Second,
		),
	}
}

// Fetch walks the series of a release in series-ID order and emits their
// observations until the page is full. The cursor is "SERIES_ID,DATE": the
// last observation already delivered. Resuming skips everything up to and
// including that point.
func (f *fredReleaseObservationsFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	apiKey := params[injectedKeyParam]
	releaseID, err := strconv.Atoi(params[provider.ParamReleaseID])
	if err != nil {
		return nil, fmt.Errorf("fred release: invalid release_id %q", params[provider.ParamReleaseID])
	}

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}

	pageSize := defaultPageSize
	if lim := params[provider.ParamLimit]; lim != "" {
		if n, err := strconv.Atoi(lim); err == nil && n > 0 {
			pageSize = n
		}
	}

	cursorSeries, cursorDate, err := parseCursor(params[provider.ParamCursor])
	if err != nil {
		return nil, fmt.Errorf("fred release: %w", err)
	}

	series, err := f.releaseSeries(ctx, releaseID, apiKey)
	if err != nil {
		return nil, fmt.Errorf("fred release %d: %w", releaseID, err)
	}

	page, err := buildReleasePage(releaseID, series, pageSize, cursorSeries, cursorDate,
		func(s fredSeries) ([]fredObservation, error) {
			if err := f.RateLimit(ctx); err != nil {
				return nil, err
			}
			return fetchObservations(ctx, s.ID, apiKey, params)
		})
	if err != nil {
		return nil, fmt.Errorf("fred release %d: %w", releaseID, err)
	}

	f.CacheSet(cacheKey, page)
	return newResult(page), nil
}

// buildReleasePage walks series in ID order, pulling each one's observations
// through source, and fills a page of at most pageSize observations past the
// cursor position. NextCursor is set only when a further valid observation
// exists beyond the page, so an exactly-full final page ends pagination.
func buildReleasePage(releaseID int, series []fredSeries, pageSize int, cursorSeries, cursorDate string, source func(fredSeries) ([]fredObservation, error)) (*models.FREDReleasePage, error) {
	page := &models.FREDReleasePage{ReleaseID: releaseID}
	for _, s := range series {
		if cursorSeries != "" && s.ID < cursorSeries {
			continue
		}
		obs, err := source(s)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", s.ID, err)
		}
		for _, o := range obs {
			if s.ID == cursorSeries && o.Date <= cursorDate {
				continue
			}
			if o.Value == "." {
				continue
			}
			v, err := strconv.ParseFloat(o.Value, 64)
			if err != nil {
				continue
			}
			if len(page.Observations) == pageSize {
				page.NextCursor = lastCursor(page)
				return page, nil
			}
			page.Observations = append(page.Observations, models.FREDObservation{
				SeriesID: s.ID,
				Title:    s.Title,
				Date:     parseFredDate(o.Date),
				Value:    v,
			})
		}
	}
	return page, nil
}

// releaseSeries lists the series belonging to a release, sorted by series ID.
// The listing is cached separately since it is shared by every page.
func (f *fredReleaseObservationsFetcher) releaseSeries(ctx context.Context, releaseID int, apiKey string) ([]fredSeries, error) {
	key := fmt.Sprintf("fred:release-series:%d", releaseID)
	if cached, ok := f.CacheGet(key); ok {
		if series, ok := cached.([]fredSeries); ok {
			return series, nil
		}
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("release/series?release_id=%d&limit=%d", releaseID, releaseSeriesLimit)
	var resp fredReleaseSeriesResponse
	if err := fetchFredJSON(ctx, endpoint, apiKey, &resp); err != nil {
		return nil, err
	}

	series := resp.Seriess
	sort.Slice(series, func(i, j int) bool { return series[i].ID < series[j].ID })
	f.CacheSet(key, series)
	return series, nil
}

// parseCursor splits a "SERIES_ID,DATE" cursor token.
func parseCursor(cursor string) (seriesID, date string, err error) {
	if cursor == "" {
		return "", "", nil
	}
	seriesID, date, ok := strings.Cut(cursor, ",")
	if !ok || seriesID == "" || date == "" {
		return "", "", fmt.Errorf("invalid cursor %q (want \"SERIES_ID,DATE\")", cursor)
	}
	return seriesID, date, nil
}

// lastCursor builds the resume token from the last observation on the page.
func lastCursor(page *models.FREDReleasePage) string {
	last := page.Observations[len(page.Observations)-1]
	return last.SeriesID + "," + last.Date.Format("2006-01-02")
}

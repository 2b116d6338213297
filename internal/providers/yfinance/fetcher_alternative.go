package yfinance

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/finscope/finscope/internal/provider"
	"github.com/finscope/finscope/pkg/models"
	"github.com/finscope/finscope/pkg/utils"
)

// --- EquityShortInterest fetcher ---

type shortInterestFetcher struct {
	provider.BaseFetcher
}

func newShortInterestFetcher() *shortInterestFetcher {
	return &shortInterestFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelEquityShortInterest,
			"Short interest statistics (float, days to cover) from Yahoo Finance",
			[]string{provider.ParamSymbol},
			nil,
			1*time.Hour, 5, time.Second,
		),
	}
}

func (f *shortInterestFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	symbol := utils.NormalizeSymbol(params[provider.ParamSymbol])

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	r, err := fetchQuoteSummary(ctx, symbol, "defaultKeyStatistics")
	if err != nil {
		return nil, err
	}

	si := &models.ShortInterest{Symbol: symbol}
	if ks := r.DefaultKeyStatistics; ks != nil {
		si.SharesOutstanding = int64(ks.SharesOutstanding.Raw)
		si.FloatShares = int64(ks.FloatShares.Raw)
		si.SharesShort = int64(ks.SharesShort.Raw)
		si.SharesShortPrior = int64(ks.SharesShortPriorMonth.Raw)
		si.ShortRatio = ks.ShortRatio.Raw
		si.ShortPercentFloat = ks.ShortPercentOfFloat.Raw
	}

	f.CacheSetTTL(cacheKey, si, 1*time.Hour)
	return newResult(si), nil
}

// --- InstitutionalOwnership fetcher ---

type institutionalOwnershipFetcher struct {
	provider.BaseFetcher
}

func newInstitutionalOwnershipFetcher() *institutionalOwnershipFetcher {
	return &institutionalOwnershipFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelInstitutionalOwnership,
			"Top institutional holders from Yahoo Finance",
			[]string{provider.ParamSymbol},
			[]string{provider.ParamLimit},
			1*time.Hour, 5, time.Second,
		),
	}
}

func (f *institutionalOwnershipFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	symbol := utils.NormalizeSymbol(params[provider.ParamSymbol])

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	r, err := fetchQuoteSummary(ctx, symbol, "institutionOwnership")
	if err != nil {
		return nil, err
	}

	var holders []models.InstitutionalHolder
	if io := r.InstitutionOwnership; io != nil {
		holders = make([]models.InstitutionalHolder, 0, len(io.OwnershipList))
		for _, e := range io.OwnershipList {
			holders = append(holders, models.InstitutionalHolder{
				Symbol:       symbol,
				Organization: e.Organization,
				ReportDate:   time.Unix(int64(e.ReportDate.Raw), 0),
				PctHeld:      e.PctHeld.Raw,
				Shares:       int64(e.Position.Raw),
				Value:        e.Value.Raw,
			})
		}
	}

	// Largest positions first.
	sort.Slice(holders, func(i, j int) bool {
		return holders[i].Shares > holders[j].Shares
	})

	if s := params[provider.ParamLimit]; s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit > 0 && limit < len(holders) {
			holders = holders[:limit]
		}
	}

	f.CacheSetTTL(cacheKey, holders, 1*time.Hour)
	return newResult(holders), nil
}

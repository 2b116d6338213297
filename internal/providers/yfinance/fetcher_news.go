package yfinance

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/finscope/finscope/internal/provider"
	"github.com/finscope/finscope/pkg/models"
	"github.com/finscope/finscope/pkg/utils"
)

// worldNewsFeed is one configured market news RSS source.
type worldNewsFeed struct {
	Name string
	URL  string
}

// defaultWorldFeeds lists the market news RSS feeds polled for world news.
var defaultWorldFeeds = []worldNewsFeed{
	{Name: "Yahoo Finance", URL: yfWorldFeedURL},
	{Name: "CNBC Markets", URL: "https://www.cnbc.com/id/20910258/device/rss/rss.html"},
	{Name: "MarketWatch", URL: "https://feeds.content.dowjones.io/public/rss/mw_topstories"},
}

// --- CompanyNews fetcher ---

type companyNewsFetcher struct {
	provider.BaseFetcher
	parser *gofeed.Parser
}

func newCompanyNewsFetcher() *companyNewsFetcher {
	return &companyNewsFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelCompanyNews,
			"Company-specific news from the Yahoo Finance headline feed",
			[]string{provider.ParamSymbol},
			[]string{provider.ParamLimit},
			10*time.Minute, 2, time.Second,
		),
		parser: gofeed.NewParser(),
	}
}

func (f *companyNewsFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	symbol := utils.NormalizeSymbol(params[provider.ParamSymbol])

	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	feedURL := fmt.Sprintf("%s?s=%s&region=US&lang=en-US", yfFeedURL, url.QueryEscape(symbol))
	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("yfinance news feed %s: %w", symbol, err)
	}

	articles := make([]models.NewsArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		a := models.NewsArticle{
			Symbol:  symbol,
			Title:   item.Title,
			URL:     item.Link,
			Source:  "Yahoo Finance",
			Summary: cleanHTML(item.Description),
		}
		if item.PublishedParsed != nil {
			a.PublishedAt = *item.PublishedParsed
		}
		articles = append(articles, a)
	}

	articles = limitArticles(articles, params[provider.ParamLimit])
	f.CacheSetTTL(cacheKey, articles, 10*time.Minute)
	return newResult(articles), nil
}

// --- WorldNews fetcher ---

type worldNewsFetcher struct {
	provider.BaseFetcher
	feeds  []worldNewsFeed
	parser *gofeed.Parser
}

func newWorldNewsFetcher() *worldNewsFetcher {
	return &worldNewsFetcher{
		BaseFetcher: provider.NewBaseFetcherWithOpts(
			provider.ModelWorldNews,
			"General market news aggregated from multiple RSS feeds",
			nil,
			[]string{provider.ParamLimit},
			10*time.Minute, 2, time.Second,
		),
		feeds:  defaultWorldFeeds,
		parser: gofeed.NewParser(),
	}
}

func (f *worldNewsFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	cacheKey := provider.CacheKey(f.ModelType(), params)
	if cached, ok := f.CacheGet(cacheKey); ok {
		return newCachedResult(cached), nil
	}
	if err := f.RateLimit(ctx); err != nil {
		return nil, err
	}

	var (
		mu       sync.Mutex
		articles []models.NewsArticle
	)
	g, gctx := errgroup.WithContext(ctx)

	for _, src := range f.feeds {
		src := src
		g.Go(func() error {
			feed, err := f.parser.ParseURLWithContext(src.URL, gctx)
			if err != nil {
				return nil // non-fatal: skip failed sources
			}
			batch := make([]models.NewsArticle, 0, len(feed.Items))
			for _, item := range feed.Items {
				a := models.NewsArticle{
					Title:   item.Title,
					URL:     item.Link,
					Source:  src.Name,
					Summary: cleanHTML(item.Description),
				}
				if item.PublishedParsed != nil {
					a.PublishedAt = *item.PublishedParsed
				}
				batch = append(batch, a)
			}
			mu.Lock()
			articles = append(articles, batch...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Newest first across all sources.
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})

	articles = limitArticles(articles, params[provider.ParamLimit])
	f.CacheSetTTL(cacheKey, articles, 10*time.Minute)
	return newResult(articles), nil
}

// --- Helpers ---

// cleanHTML strips HTML tags from a string using goquery.
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}

// limitArticles truncates articles to the numeric limit param, if set.
func limitArticles(articles []models.NewsArticle, limitStr string) []models.NewsArticle {
	if limitStr == "" {
		return articles
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit >= len(articles) {
		return articles
	}
	return articles[:limit]
}

package fred

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/finscope/finscope/internal/provider"
	"github.com/finscope/finscope/pkg/models"
)

func TestProviderInfo(t *testing.T) {
	p := New()
	info := p.Info()
	if info.Name != "fred" {
		t.Errorf("expected name fred, got %s", info.Name)
	}
	if info.Website == "" {
		t.Error("expected non-empty website")
	}
	if len(info.Credentials) != 1 {
		t.Fatalf("expected 1 credential, got %d", len(info.Credentials))
	}
	if info.Credentials[0].Name != "api_key" {
		t.Errorf("expected credential name api_key, got %s", info.Credentials[0].Name)
	}
	if !info.Credentials[0].Required {
		t.Error("api_key should be required")
	}
}

func TestProviderSupportedModels(t *testing.T) {
	p := New()
	supported := p.SupportedModels()

	expected := []provider.ModelType{
		provider.ModelFredSearch,
		provider.ModelFredSeries,
		provider.ModelFredReleaseObservations,
	}
	if len(supported) != len(expected) {
		t.Fatalf("expected %d models, got %d", len(expected), len(supported))
	}
	for _, want := range expected {
		found := false
		for _, got := range supported {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("model %s not supported", want)
		}
	}
}

func TestInitRequiresAPIKey(t *testing.T) {
	p := New()
	if err := p.Init(map[string]string{}); err == nil {
		t.Error("expected error when api_key missing")
	}
	if err := p.Init(map[string]string{"api_key": "test-key"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if p.APIKey() != "test-key" {
		t.Errorf("expected stored key test-key, got %s", p.APIKey())
	}
}

type captureFetcher struct {
	provider.BaseFetcher
	gotParams provider.QueryParams
}

func (c *captureFetcher) Fetch(ctx context.Context, params provider.QueryParams) (*provider.FetchResult, error) {
	c.gotParams = params
	return newResult(nil), nil
}

func TestFetcherInjectsAPIKey(t *testing.T) {
	p := New()
	if err := p.Init(map[string]string{"api_key": "secret"}); err != nil {
		t.Fatalf("init: %v", err)
	}

	inner := &captureFetcher{
		BaseFetcher: provider.NewBaseFetcher(provider.ModelFredSeries, "capture", nil, nil),
	}
	wrapped := &apiKeyInjector{inner: inner, apiKey: &p.apiKey}

	params := provider.QueryParams{provider.ParamSeriesID: "GDP"}
	if _, err := wrapped.Fetch(context.Background(), params); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if inner.gotParams[injectedKeyParam] != "secret" {
		t.Errorf("api key not injected, got %q", inner.gotParams[injectedKeyParam])
	}
	if _, ok := params[injectedKeyParam]; ok {
		t.Error("caller params must not be mutated")
	}
}

func TestFredURL(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
	}{
		{"series?series_id=GDP", baseURL + "/series?series_id=GDP&api_key=k&file_type=json"},
		{"releases", baseURL + "/releases?api_key=k&file_type=json"},
	}
	for _, tt := range tests {
		if got := fredURL(tt.endpoint, "k"); got != tt.want {
			t.Errorf("fredURL(%q) = %q, want %q", tt.endpoint, got, tt.want)
		}
	}
}

func TestResolveSeriesID(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"gdp", "GDP"},
		{"unemployment", "UNRATE"},
		{"inflation", "CPIAUCSL"},
		{"treasury_10y", "DGS10"},
		{"DGS10", "DGS10"},
		{"sp500", "SP500"}, // unknown names pass through uppercased
	}
	for _, tt := range tests {
		if got := resolveSeriesID(tt.name); got != tt.want {
			t.Errorf("resolveSeriesID(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestConvertObservationsSkipsMissing(t *testing.T) {
	obs := []fredObservation{
		{Date: "2024-01-01", Value: "27000.5"},
		{Date: "2024-04-01", Value: "."},
		{Date: "2024-07-01", Value: "27400.1"},
	}
	data := convertObservations(obs)
	if len(data) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(data))
	}
	if data[0].Value != 27000.5 {
		t.Errorf("expected 27000.5, got %f", data[0].Value)
	}
	if !data[1].Date.Equal(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date %v", data[1].Date)
	}
}

func TestParseObservationsResponse(t *testing.T) {
	raw := `{
		"count": 3,
		"observations": [
			{"date": "2024-01-01", "value": "3.7"},
			{"date": "2024-02-01", "value": "."},
			{"date": "2024-03-01", "value": "3.8"}
		]
	}`
	var resp fredObservationsResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != 3 || len(resp.Observations) != 3 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Observations[1].Value != "." {
		t.Errorf("expected placeholder value, got %q", resp.Observations[1].Value)
	}
}

func TestParseSearchResponse(t *testing.T) {
	raw := `{
		"count": 1,
		"seriess": [{
			"id": "UNRATE",
			"title": "Unemployment Rate",
			"observation_start": "1948-01-01",
			"observation_end": "2024-06-01",
			"frequency": "Monthly",
			"units": "Percent",
			"seasonal_adjustment": "Seasonally Adjusted",
			"popularity": 94
		}]
	}`
	var resp fredSearchResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Seriess) != 1 {
		t.Fatalf("expected 1 series, got %d", len(resp.Seriess))
	}
	s := resp.Seriess[0]
	if s.ID != "UNRATE" || s.Popularity != 94 {
		t.Errorf("unexpected series: %+v", s)
	}
	if parseFredDate(s.ObservationStart).Year() != 1948 {
		t.Errorf("bad observation_start parse: %v", parseFredDate(s.ObservationStart))
	}
}

func TestParseCursor(t *testing.T) {
	tests := []struct {
		cursor     string
		wantSeries string
		wantDate   string
		wantErr    bool
	}{
		{"", "", "", false},
		{"UNRATE,2024-03-01", "UNRATE", "2024-03-01", false},
		{"UNRATE", "", "", true},
		{",2024-03-01", "", "", true},
		{"UNRATE,", "", "", true},
	}
	for _, tt := range tests {
		series, date, err := parseCursor(tt.cursor)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseCursor(%q): expected error", tt.cursor)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseCursor(%q): %v", tt.cursor, err)
			continue
		}
		if series != tt.wantSeries || date != tt.wantDate {
			t.Errorf("parseCursor(%q) = %q, %q", tt.cursor, series, date)
		}
	}
}

func TestLastCursor(t *testing.T) {
	page := &models.FREDReleasePage{
		ReleaseID: 53,
		Observations: []models.FREDObservation{
			{SeriesID: "GDP", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Value: 27000},
			{SeriesID: "GDPC1", Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), Value: 22000},
		},
	}
	if got := lastCursor(page); got != "GDPC1,2024-04-01" {
		t.Errorf("lastCursor = %q", got)
	}
}

func TestParseFredDate(t *testing.T) {
	if d := parseFredDate("2024-06-15"); d.IsZero() {
		t.Error("expected valid date")
	}
	if d := parseFredDate("not-a-date"); !d.IsZero() {
		t.Errorf("expected zero time, got %v", d)
	}
}

// releaseFixture builds an observation source over a fixed in-memory release.
func releaseFixture() ([]fredSeries, func(fredSeries) ([]fredObservation, error)) {
	series := []fredSeries{
		{ID: "GDPC1", Title: "Real Gross Domestic Product"},
		{ID: "UNRATE", Title: "Unemployment Rate"},
	}
	obs := map[string][]fredObservation{
		"GDPC1": {
			{Date: "2024-01-01", Value: "22112.3"},
			{Date: "2024-04-01", Value: "22225.0"},
			{Date: "2024-07-01", Value: "."},
			{Date: "2024-10-01", Value: "22380.4"},
		},
		"UNRATE": {
			{Date: "2024-01-01", Value: "3.7"},
			{Date: "2024-02-01", Value: "3.9"},
		},
	}
	return series, func(s fredSeries) ([]fredObservation, error) {
		return obs[s.ID], nil
	}
}

func TestBuildReleasePageFillsAndPaginates(t *testing.T) {
	series, source := releaseFixture()

	page, err := buildReleasePage(53, series, 3, "", "", source)
	if err != nil {
		t.Fatalf("build page: %v", err)
	}
	if len(page.Observations) != 3 {
		t.Fatalf("expected 3 observations, got %d", len(page.Observations))
	}
	if page.NextCursor != "GDPC1,2024-10-01" {
		t.Errorf("next cursor = %q", page.NextCursor)
	}
	// Missing-value observations never count against the page.
	for _, o := range page.Observations {
		if o.SeriesID == "GDPC1" && o.Date.Month() == time.July {
			t.Error("missing observation emitted")
		}
	}
}

func TestBuildReleasePageResumeNoRepeatNoSkip(t *testing.T) {
	series, source := releaseFixture()

	var all []models.FREDObservation
	cursor := ""
	for pages := 0; ; pages++ {
		if pages > 10 {
			t.Fatal("pagination did not terminate")
		}
		cs, cd, err := parseCursor(cursor)
		if err != nil {
			t.Fatalf("parse cursor %q: %v", cursor, err)
		}
		page, err := buildReleasePage(53, series, 2, cs, cd, source)
		if err != nil {
			t.Fatalf("build page: %v", err)
		}
		all = append(all, page.Observations...)
		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	want := []struct {
		series string
		date   string
	}{
		{"GDPC1", "2024-01-01"},
		{"GDPC1", "2024-04-01"},
		{"GDPC1", "2024-10-01"},
		{"UNRATE", "2024-01-01"},
		{"UNRATE", "2024-02-01"},
	}
	if len(all) != len(want) {
		t.Fatalf("expected %d observations across pages, got %d", len(want), len(all))
	}
	for i, w := range want {
		if all[i].SeriesID != w.series || all[i].Date.Format("2006-01-02") != w.date {
			t.Errorf("observation %d = %s %s, want %s %s",
				i, all[i].SeriesID, all[i].Date.Format("2006-01-02"), w.series, w.date)
		}
	}
}

func TestBuildReleasePageExactFillEndsPagination(t *testing.T) {
	series, source := releaseFixture()

	// Five valid observations and a page size of five: the page is full
	// but nothing remains, so no cursor is handed out.
	page, err := buildReleasePage(53, series, 5, "", "", source)
	if err != nil {
		t.Fatalf("build page: %v", err)
	}
	if len(page.Observations) != 5 {
		t.Fatalf("expected 5 observations, got %d", len(page.Observations))
	}
	if page.NextCursor != "" {
		t.Errorf("expected no next cursor, got %q", page.NextCursor)
	}
}

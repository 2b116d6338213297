package sec

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finscope/finscope/internal/provider"
	"github.com/finscope/finscope/pkg/models"
)

func TestProviderInfo(t *testing.T) {
	p := New()
	info := p.Info()
	if info.Name != "sec" {
		t.Errorf("expected name sec, got %s", info.Name)
	}
	if info.Website == "" {
		t.Error("expected non-empty website")
	}
	if len(info.Credentials) != 1 {
		t.Fatalf("expected 1 credential, got %d", len(info.Credentials))
	}
	if info.Credentials[0].Required {
		t.Error("user_agent must be optional")
	}
}

func TestProviderSupportedModels(t *testing.T) {
	p := New()
	supported := p.SupportedModels()

	expected := []provider.ModelType{
		provider.ModelCompanyFilings,
		provider.ModelCikMap,
		provider.ModelRssLitigation,
	}
	if len(supported) != len(expected) {
		t.Fatalf("expected %d models, got %d", len(expected), len(supported))
	}
	for _, want := range expected {
		if p.Fetcher(want) == nil {
			t.Errorf("no fetcher for %s", want)
		}
	}
}

func TestInitUserAgent(t *testing.T) {
	p := New()
	if err := p.Init(nil); err != nil {
		t.Fatalf("init: %v", err)
	}
	if p.userAgent != defaultUserAgent {
		t.Errorf("expected default user agent, got %q", p.userAgent)
	}

	p2 := New()
	if err := p2.Init(map[string]string{"user_agent": "acme research admin@acme.example"}); err != nil {
		t.Fatalf("init: %v", err)
	}
	if p2.userAgent != "acme research admin@acme.example" {
		t.Errorf("custom user agent not stored, got %q", p2.userAgent)
	}
	if p2.headers()["User-Agent"] != p2.userAgent {
		t.Error("headers must carry the configured user agent")
	}
}

func TestLitigationFeedCarriesConfiguredUserAgent(t *testing.T) {
	const ua = "acme research admin@acme.example"

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Litigation Releases</title>
<item>
  <title>SEC v. Example Corp</title>
  <link>https://www.sec.gov/litigation/litreleases/lr26000.htm</link>
  <description>Fraud charges.</description>
  <pubDate>Mon, 04 Aug 2025 12:00:00 GMT</pubDate>
</item>
</channel></rss>`)
	}))
	defer srv.Close()

	p := New()
	if err := p.Init(map[string]string{"user_agent": ua}); err != nil {
		t.Fatalf("init: %v", err)
	}

	f, ok := p.Fetcher(provider.ModelRssLitigation).(*rssLitigationFetcher)
	if !ok {
		t.Fatal("litigation fetcher not registered")
	}
	f.feedURL = srv.URL

	res, err := f.Fetch(context.Background(), provider.QueryParams{})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if gotUA != ua {
		t.Errorf("feed request user agent = %q, want %q", gotUA, ua)
	}
	releases, ok := res.Data.([]models.LitigationRelease)
	if !ok {
		t.Fatalf("unexpected data type %T", res.Data)
	}
	if len(releases) != 1 || releases[0].Title != "SEC v. Example Corp" {
		t.Errorf("unexpected releases: %+v", releases)
	}
}

func TestPadCIK(t *testing.T) {
	tests := []struct{ in, want string }{
		{"320193", "0000320193"},
		{"1318605", "0001318605"},
		{"0000320193", "0000320193"},
	}
	for _, tt := range tests {
		if got := padCIK(tt.in); got != tt.want {
			t.Errorf("padCIK(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseSECDate(t *testing.T) {
	if d := parseSECDate("2024-05-03"); d.Year() != 2024 || d.Month() != 5 {
		t.Errorf("unexpected date %v", d)
	}
	if d := parseSECDate("garbage"); !d.IsZero() {
		t.Errorf("expected zero time, got %v", d)
	}
}

func TestTickerEntryDecoding(t *testing.T) {
	raw := `{"0":{"cik_str":320193,"ticker":"AAPL","title":"Apple Inc."},
		"1":{"cik_str":789019,"ticker":"MSFT","title":"MICROSOFT CORP"}}`
	var entries map[string]edgarTickerEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries["0"].CIK.String() != "320193" {
		t.Errorf("expected cik 320193, got %s", entries["0"].CIK.String())
	}
	if padCIK(entries["0"].CIK.String()) != "0000320193" {
		t.Errorf("bad padded cik %s", padCIK(entries["0"].CIK.String()))
	}
}

func submissionsFixture() *edgarSubmissionsResponse {
	raw := `{
		"cik": "320193",
		"name": "Apple Inc.",
		"tickers": ["AAPL"],
		"filings": {
			"recent": {
				"accessionNumber": ["0000320193-24-000081", "0000320193-24-000069", "0000320193-24-000052"],
				"filingDate": ["2024-08-02", "2024-05-03", "2024-02-02"],
				"reportDate": ["2024-06-29", "2024-03-30", "2023-12-30"],
				"form": ["10-Q", "10-Q", "8-K"],
				"primaryDocument": ["aapl-20240629.htm", "aapl-20240330.htm", "aapl-8k.htm"],
				"primaryDocDescription": ["10-Q", "10-Q", "8-K"]
			}
		}
	}`
	var resp edgarSubmissionsResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		panic(err)
	}
	return &resp
}

func TestCollectFilings(t *testing.T) {
	resp := submissionsFixture()

	filings := collectFilings(resp, "AAPL", "", 100)
	if len(filings) != 3 {
		t.Fatalf("expected 3 filings, got %d", len(filings))
	}
	first := filings[0]
	if first.FormType != "10-Q" || first.CompanyName != "Apple Inc." {
		t.Errorf("unexpected filing: %+v", first)
	}
	wantURL := "https://www.sec.gov/Archives/edgar/data/320193/000032019324000081/aapl-20240629.htm"
	if first.FilingURL != wantURL {
		t.Errorf("filing URL = %q, want %q", first.FilingURL, wantURL)
	}
	if first.Date.Year() != 2024 {
		t.Errorf("bad filing date %v", first.Date)
	}
}

func TestCollectFilingsFormFilter(t *testing.T) {
	resp := submissionsFixture()

	filings := collectFilings(resp, "AAPL", "8-K", 100)
	if len(filings) != 1 {
		t.Fatalf("expected 1 filing, got %d", len(filings))
	}
	if filings[0].FormType != "8-K" {
		t.Errorf("expected 8-K, got %s", filings[0].FormType)
	}
}

func TestCollectFilingsLimit(t *testing.T) {
	resp := submissionsFixture()

	filings := collectFilings(resp, "AAPL", "", 2)
	if len(filings) != 2 {
		t.Fatalf("expected 2 filings, got %d", len(filings))
	}
}

func TestIsNumeric(t *testing.T) {
	if !isNumeric("320193") {
		t.Error("320193 should be numeric")
	}
	if isNumeric("AAPL") || isNumeric("") {
		t.Error("non-numeric accepted")
	}
}

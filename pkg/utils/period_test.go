package utils

import (
	"testing"
	"time"
)

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"aapl", "AAPL"},
		{"  msft ", "MSFT"},
		{"^gspc", "^GSPC"},
		{"ry.to", "RY.TO"},
	}
	for _, tt := range tests {
		if got := NormalizeSymbol(tt.in); got != tt.want {
			t.Errorf("NormalizeSymbol(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		period string
		want   time.Time
	}{
		{"5d", time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)},
		{"2wk", time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)},
		{"3mo", time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)},
		{"1y", time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)},
		{"ytd", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := PeriodStart(tt.period, now)
		if err != nil {
			t.Errorf("PeriodStart(%q): %v", tt.period, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("PeriodStart(%q) = %v, want %v", tt.period, got, tt.want)
		}
	}
}

func TestPeriodStartInvalid(t *testing.T) {
	now := time.Now()
	for _, period := range []string{"", "y", "12", "1x", "-5d", "abc"} {
		if _, err := PeriodStart(period, now); err == nil {
			t.Errorf("PeriodStart(%q): expected error", period)
		}
	}
}

func TestDateRangeExplicit(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	start, end, err := DateRange("2024-01-01", "2024-03-01", "", now)
	if err != nil {
		t.Fatalf("DateRange: %v", err)
	}
	if start.Format(DateLayout) != "2024-01-01" {
		t.Errorf("start = %v", start)
	}
	if end.Format(DateLayout) != "2024-03-01" {
		t.Errorf("end = %v", end)
	}
}

func TestDateRangePeriodFallback(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	start, end, err := DateRange("", "", "6mo", now)
	if err != nil {
		t.Fatalf("DateRange: %v", err)
	}
	if !end.Equal(now) {
		t.Errorf("end = %v, want %v", end, now)
	}
	if start.Format(DateLayout) != "2023-12-15" {
		t.Errorf("start = %v", start)
	}
}

func TestDateRangeStartAfterEnd(t *testing.T) {
	now := time.Now()
	if _, _, err := DateRange("2024-05-01", "2024-01-01", "", now); err == nil {
		t.Error("expected error for start after end")
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "  ", "Apple Inc.", "AAPL"); got != "Apple Inc." {
		t.Errorf("Coalesce = %q", got)
	}
	if got := Coalesce("", "  "); got != "" {
		t.Errorf("Coalesce(empty) = %q", got)
	}
}

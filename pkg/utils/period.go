package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the date format accepted on the command line and sent to APIs.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// PeriodStart resolves a period string like "5d", "3mo", "1y", "ytd" or "max"
// to a start time relative to now.
func PeriodStart(period string, now time.Time) (time.Time, error) {
	p := strings.ToLower(strings.TrimSpace(period))
	switch p {
	case "ytd":
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), nil
	case "max":
		// Yahoo accepts arbitrarily early period1 values.
		return time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), nil
	}

	// Split into numeric count and unit suffix.
	i := 0
	for i < len(p) && p[i] >= '0' && p[i] <= '9' {
		i++
	}
	if i == 0 || i == len(p) {
		return time.Time{}, fmt.Errorf("invalid period %q", period)
	}
	n, err := strconv.Atoi(p[:i])
	if err != nil || n <= 0 {
		return time.Time{}, fmt.Errorf("invalid period %q", period)
	}

	switch p[i:] {
	case "d":
		return now.AddDate(0, 0, -n), nil
	case "w", "wk":
		return now.AddDate(0, 0, -7*n), nil
	case "mo":
		return now.AddDate(0, -n, 0), nil
	case "y":
		return now.AddDate(-n, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("invalid period %q (want d, wk, mo or y suffix)", period)
	}
}

// DateRange resolves explicit start/end date strings with a period fallback.
// When start is empty, the period (default "1y") determines the start; when
// end is empty, it defaults to now.
func DateRange(start, end, period string, now time.Time) (time.Time, time.Time, error) {
	endT := now
	if end != "" {
		t, err := ParseDate(end)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		endT = t
	}

	if start != "" {
		startT, err := ParseDate(start)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if startT.After(endT) {
			return time.Time{}, time.Time{}, fmt.Errorf("start date %s after end date %s", start, end)
		}
		return startT, endT, nil
	}

	if period == "" {
		period = "1y"
	}
	startT, err := PeriodStart(period, endT)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return startT, endT, nil
}

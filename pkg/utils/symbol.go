// Package utils provides small shared helpers: symbol normalization,
// period-string parsing, and date handling.
package utils

import "strings"

// NormalizeSymbol trims whitespace and uppercases a ticker symbol.
// Index symbols (leading "^") and exchange-qualified symbols
// (e.g., "RY.TO") pass through unchanged apart from casing.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Coalesce returns the first string that is non-empty after trimming.
func Coalesce(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

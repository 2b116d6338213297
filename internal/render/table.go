// Package render turns fetched data models into printable tables and CSV files.
package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

// Table is a column-oriented view of fetched data, ready for display or export.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// Print writes the table to w with a title banner and row count footer.
// Empty tables print "No data available." instead.
func (t *Table) Print(w io.Writer) {
	if t.Title != "" {
		banner := strings.Repeat("=", 60)
		fmt.Fprintln(w, banner)
		fmt.Fprintln(w, t.Title)
		fmt.Fprintln(w, banner)
	}

	if t.Empty() {
		fmt.Fprintln(w, "No data available.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Columns, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nRows: %d\n", len(t.Rows))
}

// WriteCSV writes the table as CSV (header row plus data rows) to w.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the table to a CSV file at path, creating or truncating it.
func (t *Table) SaveCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := t.WriteCSV(f); err != nil {
		return err
	}
	return f.Close()
}

// --- cell formatting helpers ---

func fmtFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fmtFloat2 formats with two decimal places, the usual display for prices.
func fmtFloat2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func fmtInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func fmtDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

// fmtPct renders a fraction as a percentage with two decimals.
func fmtPct(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 2, 64) + "%"
}

// truncate shortens s to max runes, appending "..." when cut.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// Package report shapes report datasets into tables and exports them as
// CSV. Column headers derive from the snake_case row keys, rendered as the
// dashboard did: underscores to spaces, upper-cased.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Report types accepted by the reports endpoint.
const (
	TypeAllSites    = "ALL SITES DATA REPORTS"
	TypeLeasePeriod = "Lease Period Report"
)

// columnOrder fixes the column sequence for the all-sites dataset. Keys
// the server adds beyond these are appended alphabetically.
var columnOrder = []string{
	"site_id", "store_name", "region", "div", "manager", "asst_manager",
	"executive", "doo", "sqft", "agreement_date", "rent_position_date",
	"rent_effective_date", "lease_period", "rent_free_period_days",
	"rent_effective_amount", "present_rent", "hike_percentage", "hike_year",
	"rent_deposit", "owner_name1", "gst_number", "pan_number",
	"tds_percentage", "mature", "status", "remarks",
}

// Table is a rendered report: header labels plus stringified rows.
type Table struct {
	Keys    []string
	Headers []string
	Rows    [][]string
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool { return len(t.Rows) == 0 }

// Build shapes raw report rows into a table with a stable column order.
func Build(rows []map[string]any) *Table {
	keys := columns(rows)
	t := &Table{Keys: keys, Headers: make([]string, len(keys))}
	for i, k := range keys {
		t.Headers[i] = HeaderLabel(k)
	}
	for _, row := range rows {
		out := make([]string, len(keys))
		for i, k := range keys {
			out[i] = cell(row[k])
		}
		t.Rows = append(t.Rows, out)
	}
	return t
}

// Filter returns a copy of the table keeping only rows where any cell
// contains term, case-insensitively. An empty term keeps everything.
func (t *Table) Filter(term string) *Table {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return t
	}
	out := &Table{Keys: t.Keys, Headers: t.Headers}
	for _, row := range t.Rows {
		for _, c := range row {
			if strings.Contains(strings.ToLower(c), term) {
				out.Rows = append(out.Rows, row)
				break
			}
		}
	}
	return out
}

// WriteCSV exports the table, headers first.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// HeaderLabel converts a snake_case row key to its display header.
func HeaderLabel(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "_", " "))
}

// columns picks the column order: known columns first in their fixed
// sequence, then any unexpected keys alphabetically.
func columns(rows []map[string]any) []string {
	seen := map[string]bool{}
	for _, row := range rows {
		for k := range row {
			seen[k] = true
		}
	}

	var keys []string
	for _, k := range columnOrder {
		if seen[k] {
			keys = append(keys, k)
			delete(seen, k)
		}
	}
	var extra []string
	for k := range seen {
		extra = append(extra, k)
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

func cell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", t), "0"), ".")
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Package xlsx validates bulk-upload workbooks locally before they are
// sent to the server, so the obvious rejections (wrong extension, no SITE
// column, nothing to import) surface without a network round trip.
package xlsx

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Summary describes a workbook that passed preflight.
type Summary struct {
	Sheet   string
	Columns []string
	Rows    int
}

// CheckName rejects filenames the upload endpoint will not accept.
func CheckName(name string) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xls":
		return nil
	}
	return fmt.Errorf("invalid file format: %s (want .xlsx or .xls)", filepath.Base(name))
}

// Check opens the workbook and verifies the first sheet has a SITE header
// column and at least one data row.
func Check(r io.Reader) (*Summary, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	header := rows[0]
	hasSite := false
	for _, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), "SITE") {
			hasSite = true
			break
		}
	}
	if !hasSite {
		return nil, fmt.Errorf("sheet %q has no SITE column; found headers: %s",
			sheet, strings.Join(header, ", "))
	}

	data := 0
	for _, row := range rows[1:] {
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				data++
				break
			}
		}
	}
	if data == 0 {
		return nil, fmt.Errorf("sheet %q has headers but no data rows", sheet)
	}

	return &Summary{Sheet: sheet, Columns: header, Rows: data}, nil
}

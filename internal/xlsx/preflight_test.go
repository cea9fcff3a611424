package xlsx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestCheckName(t *testing.T) {
	for _, name := range []string{"sites.xlsx", "SITES.XLSX", "legacy.xls", "/tmp/a/sites.xlsx"} {
		if err := CheckName(name); err != nil {
			t.Errorf("CheckName(%q) = %v", name, err)
		}
	}
	for _, name := range []string{"sites.csv", "sites.txt", "sites"} {
		if err := CheckName(name); err == nil {
			t.Errorf("CheckName(%q) accepted a bad extension", name)
		}
	}
}

func TestCheck(t *testing.T) {
	r := workbook(t, [][]any{
		{"SITE", "STORE NAME", "REGION"},
		{"SITE001", "CITY CENTRE", "WEST"},
		{"SITE002", "LAKESIDE", "EAST"},
	})

	sum, err := Check(r)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if sum.Rows != 2 {
		t.Errorf("Rows = %d, want 2", sum.Rows)
	}
	if len(sum.Columns) != 3 || sum.Columns[0] != "SITE" {
		t.Errorf("Columns = %v", sum.Columns)
	}
}

func TestCheckHeaderCaseInsensitive(t *testing.T) {
	r := workbook(t, [][]any{
		{"site", "store name"},
		{"SITE001", "CITY CENTRE"},
	})
	if _, err := Check(r); err != nil {
		t.Errorf("Check with lowercase header: %v", err)
	}
}

func TestCheckMissingSiteColumn(t *testing.T) {
	r := workbook(t, [][]any{
		{"STORE NAME", "REGION"},
		{"CITY CENTRE", "WEST"},
	})
	_, err := Check(r)
	if err == nil || !strings.Contains(err.Error(), "SITE") {
		t.Errorf("err = %v, want missing SITE column", err)
	}
}

func TestCheckNoDataRows(t *testing.T) {
	r := workbook(t, [][]any{{"SITE", "STORE NAME"}})
	if _, err := Check(r); err == nil {
		t.Error("Check accepted a header-only workbook")
	}
}

func TestCheckNotAWorkbook(t *testing.T) {
	if _, err := Check(strings.NewReader("this is not a zip")); err == nil {
		t.Error("Check accepted junk bytes")
	}
}

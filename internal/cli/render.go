package cli

import (
	"fmt"
	"strings"

	"sitedesk/internal/format"
	"sitedesk/internal/model"
	"sitedesk/internal/report"
)

const maxColumnWidth = 32

// Detail sections mirror the dashboard's card layout.
var detailSections = []struct {
	Title  string
	Fields []string
}{
	{"Basic Information", []string{
		"site_id", "store_name", "region", "div", "status",
		"manager", "asst_manager", "executive",
	}},
	{"Lease Information", []string{
		"doo", "sqft", "agreement_date", "rent_position_date",
		"rent_effective_date", "agreement_valid_upto", "current_date",
		"lease_period", "rent_free_period_days", "rent_effective_amount",
		"present_rent", "hike_percentage", "hike_year", "rent_deposit",
	}},
	{"Owner Information", []string{
		"owner_name1", "owner_name2", "owner_name3", "owner_name4",
		"owner_name5", "owner_name6", "owner_mobile", "gst_number",
		"pan_number", "tds_percentage",
	}},
	{"Additional Information", []string{
		"current_date1", "validity_date", "mature", "remarks",
	}},
}

func renderSite(site *model.Site) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s — %s\n", site.SiteID, format.Text(site.StoreName))
	fmt.Fprintf(&b, "  %s / %s\n", format.Text(site.Region), format.Text(site.Division))

	for _, section := range detailSections {
		fmt.Fprintf(&b, "\n%s\n", section.Title)
		for _, name := range section.Fields {
			f := model.FieldByName(name)
			if f == nil {
				continue
			}
			fmt.Fprintf(&b, "  %-22s %s\n", f.Label+":", format.Value(f.Kind, f.Get(site)))
		}
	}
	return b.String()
}

// renderTable lays a report out in aligned columns for the terminal. CSV
// stays an explicit export; the screen gets the padded form.
func renderTable(t *report.Table) string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, c := range row {
			if i < len(widths) && len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
	}
	total := 0
	for i := range widths {
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
		total += widths[i] + 2
	}

	var b strings.Builder
	for i, h := range t.Headers {
		fmt.Fprintf(&b, "%-*s  ", widths[i], clip(h, widths[i]))
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", total))
	b.WriteString("\n")
	for _, row := range t.Rows {
		for i, c := range row {
			if i >= len(widths) {
				break
			}
			fmt.Fprintf(&b, "%-*s  ", widths[i], clip(c, widths[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sitedesk/internal/format"
	"sitedesk/internal/model"
	"sitedesk/internal/report"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// sections group the record fields the way the detail card presents them.
var sections = []struct {
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

func (m Model) View() string {
	var body string
	switch m.state {
	case stateSearch:
		body = m.viewSearch()
	case stateLoading:
		body = fmt.Sprintf("\n  %s Searching...\n", m.spin.View())
	case stateDetail:
		body = m.viewDetail("")
	case stateConfirmEdit:
		body = m.viewDetail("Edit this record? (y/n)")
	case stateEditing:
		body = m.viewEditing()
	case stateSaving:
		body = fmt.Sprintf("\n  %s Saving...\n", m.spin.View())
	case stateReportForm:
		body = m.viewReportForm()
	case stateReportLoading:
		body = fmt.Sprintf("\n  %s Running report...\n", m.spin.View())
	case stateReport:
		body = m.viewReport()
	}
	return body + m.statusLine()
}

func (m Model) statusLine() string {
	switch {
	case m.errText != "":
		return "\n" + errorStyle.Render("  "+m.errText) + "\n"
	case m.message != "":
		return "\n" + messageStyle.Render("  "+m.message) + "\n"
	}
	return "\n"
}

func (m Model) viewSearch() string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("sitedesk") + "\n\n")
	b.WriteString("  Search site: " + m.searchInput.View() + "\n\n")
	b.WriteString(helpStyle.Render("  enter search · ctrl+r reports · esc quit") + "\n")
	return b.String()
}

func (m Model) viewDetail(prompt string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s  %s\n",
		titleStyle.Render(m.site.SiteID),
		format.Text(m.site.StoreName))

	for _, s := range sections {
		b.WriteString("\n  " + sectionStyle.Render(s.Title) + "\n")
		for _, name := range s.Fields {
			f := model.FieldByName(name)
			if f == nil {
				continue
			}
			fmt.Fprintf(&b, "  %s %s\n",
				labelStyle.Render(fmt.Sprintf("%-22s", f.Label+":")),
				format.Value(f.Kind, f.Get(m.site)))
		}
	}

	b.WriteString("\n")
	if prompt != "" {
		b.WriteString("  " + cursorStyle.Render(prompt) + "\n")
	} else {
		b.WriteString(helpStyle.Render("  e edit · r report · esc new search · q quit") + "\n")
	}
	return b.String()
}

func (m Model) viewEditing() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s  %s\n\n",
		titleStyle.Render("Editing "+m.editSess.SiteID()),
		labelStyle.Render("(draft)"))

	lo, hi := m.editWindow()
	if lo > 0 {
		b.WriteString(helpStyle.Render("  ...") + "\n")
	}
	for i := lo; i < hi; i++ {
		name := editFields[i]
		f := model.FieldByName(name)
		if f == nil {
			continue
		}
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		value := m.editSess.Value(name)
		if i == m.cursor && m.typing {
			fmt.Fprintf(&b, "  %s%s %s\n", marker,
				labelStyle.Render(fmt.Sprintf("%-22s", f.Label+":")),
				m.fieldInput.View())
			continue
		}
		fmt.Fprintf(&b, "  %s%s %s\n", marker,
			labelStyle.Render(fmt.Sprintf("%-22s", f.Label+":")),
			value)
	}
	if hi < len(editFields) {
		b.WriteString(helpStyle.Render("  ...") + "\n")
	}

	b.WriteString("\n")
	if m.typing {
		b.WriteString(helpStyle.Render("  enter apply · esc discard") + "\n")
	} else {
		b.WriteString(helpStyle.Render("  ↑/↓ select · enter edit · s save · esc cancel") + "\n")
	}
	return b.String()
}

// editWindow keeps the cursor visible when the field list outgrows the
// terminal.
func (m Model) editWindow() (int, int) {
	visible := m.height - 8
	if visible < 5 {
		visible = 5
	}
	if visible >= len(editFields) {
		return 0, len(editFields)
	}
	lo := m.cursor - visible/2
	if lo < 0 {
		lo = 0
	}
	hi := lo + visible
	if hi > len(editFields) {
		hi = len(editFields)
		lo = hi - visible
	}
	return lo, hi
}

func (m Model) viewReportForm() string {
	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render("Reports") + "\n\n")
	fmt.Fprintf(&b, "  %s %s\n\n",
		labelStyle.Render(fmt.Sprintf("%-14s", "Type:")),
		m.reportType)
	labels := []string{"From:", "To:", "Lease years:"}
	for i, in := range m.reportInputs {
		fmt.Fprintf(&b, "  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-14s", labels[i])),
			in.View())
	}
	if m.reportType == report.TypeLeasePeriod {
		b.WriteString("\n" + helpStyle.Render("  lease period reports need all three values") + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("  enter run · ctrl+t switch type · tab next field · esc back") + "\n")
	return b.String()
}

func (m Model) viewReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s  %s\n\n",
		titleStyle.Render(m.reportType),
		labelStyle.Render(fmt.Sprintf("%d rows", len(m.reportTable.Rows()))))
	if m.reportData.Empty() {
		b.WriteString("  No data for the selected range.\n")
	} else {
		b.WriteString(m.reportTable.View() + "\n")
	}
	if m.filtering {
		b.WriteString("\n  Filter: " + m.filterInput.View() + "\n")
	} else {
		b.WriteString("\n" + helpStyle.Render("  / filter · e export csv · esc form · q quit") + "\n")
	}
	return b.String()
}

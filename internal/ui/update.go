package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"sitedesk/internal/api"
	"sitedesk/internal/editor"
	"sitedesk/internal/report"
)

// Err reports the failure that ended the session, if any. The caller uses
// it to distinguish an expired login from a normal quit.
func (m Model) Err() error { return m.err }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.reportData != nil {
			m.reportTable.SetHeight(m.tableHeight())
		}
		return m, nil

	case sessionExpiredMsg:
		m.err = api.ErrUnauthorized
		return m, tea.Quit

	case errorMsg:
		m.errText = msg.err.Error()
		switch m.state {
		case stateLoading:
			m.state = stateSearch
			m.searchInput.Focus()
		case stateSaving:
			m.state = stateEditing
		case stateReportLoading:
			m.state = stateReportForm
		}
		return m, nil

	case siteLoadedMsg:
		m.site = &msg.site
		m.state = stateDetail
		m.errText = ""
		return m, nil

	case siteSavedMsg:
		m.site = &msg.site
		if m.editSess != nil {
			m.editSess.Done()
			m.editSess = nil
		}
		m.state = stateDetail
		m.errText = ""
		m.message = msg.message
		return m, clearMessageAfter(3 * time.Second)

	case reportLoadedMsg:
		m.reportData = msg.table
		m.reportTable = m.buildTable(msg.table)
		m.state = stateReport
		m.errText = ""
		return m, nil

	case csvWrittenMsg:
		m.message = "Wrote " + msg.path
		return m, clearMessageAfter(3 * time.Second)

	case clearMessageMsg:
		m.message = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Everything else feeds the spinner while a request is in flight.
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.state {
	case stateSearch:
		return m.updateSearch(msg)
	case stateDetail:
		return m.updateDetail(msg)
	case stateConfirmEdit:
		return m.updateConfirmEdit(msg)
	case stateEditing:
		return m.updateEditing(msg)
	case stateReportForm:
		return m.updateReportForm(msg)
	case stateReport:
		return m.updateReport(msg)
	}
	// Loading and saving states ignore keys until the request resolves.
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "ctrl+r":
		return m.openReportForm(), nil
	case "enter":
		term := strings.TrimSpace(m.searchInput.Value())
		if term == "" {
			return m, nil
		}
		m.state = stateLoading
		m.errText = ""
		return m, tea.Batch(m.spin.Tick, m.searchSite(term))
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "e":
		m.state = stateConfirmEdit
		return m, nil
	case "r":
		return m.openReportForm(), nil
	case "esc", "backspace":
		m.site = nil
		m.state = stateSearch
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, nil
	}
	return m, nil
}

func (m Model) updateConfirmEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		sess, err := editor.Begin(*m.site)
		if err != nil {
			m.errText = err.Error()
			m.state = stateDetail
			return m, nil
		}
		m.editSess = sess
		m.cursor = 0
		m.typing = false
		m.state = stateEditing
		return m, nil
	case "n", "N", "esc":
		m.state = stateDetail
		return m, nil
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.typing {
		switch msg.String() {
		case "enter":
			name := editFields[m.cursor]
			if err := m.editSess.Set(name, strings.TrimSpace(m.fieldInput.Value())); err != nil {
				m.errText = err.Error()
			} else {
				m.editSess.Recalculate()
				m.errText = ""
			}
			m.typing = false
			m.fieldInput.Blur()
			return m, nil
		case "esc":
			m.typing = false
			m.fieldInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.fieldInput, cmd = m.fieldInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(editFields)-1 {
			m.cursor++
		}
	case "enter":
		m.typing = true
		m.fieldInput.SetValue(m.editSess.Value(editFields[m.cursor]))
		m.fieldInput.CursorEnd()
		m.fieldInput.Focus()
		return m, nil
	case "ctrl+s", "s":
		m.state = stateSaving
		m.errText = ""
		return m, tea.Batch(m.spin.Tick, m.saveSite())
	case "esc":
		// Cancel restores the server's copy, not the pre-edit snapshot.
		siteID := m.editSess.SiteID()
		m.editSess.Cancel()
		m.editSess = nil
		m.state = stateLoading
		m.errText = ""
		return m, tea.Batch(m.spin.Tick, m.reloadSite(siteID))
	}
	return m, nil
}

func (m Model) updateReportForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeReportForm(), nil
	case "ctrl+t":
		if m.reportType == report.TypeAllSites {
			m.reportType = report.TypeLeasePeriod
		} else {
			m.reportType = report.TypeAllSites
		}
		return m, nil
	case "tab", "down":
		return m.focusReportInput(m.reportFocus + 1), nil
	case "shift+tab", "up":
		return m.focusReportInput(m.reportFocus - 1), nil
	case "enter":
		m.state = stateReportLoading
		m.errText = ""
		return m, tea.Batch(m.spin.Tick, m.runReport())
	}
	var cmd tea.Cmd
	m.reportInputs[m.reportFocus], cmd = m.reportInputs[m.reportFocus].Update(msg)
	return m, cmd
}

func (m Model) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "enter":
			m.filtering = false
			m.filterInput.Blur()
			m.reportTable = m.buildTable(m.reportData.Filter(m.filterInput.Value()))
			return m, nil
		case "esc":
			m.filtering = false
			m.filterInput.Blur()
			m.filterInput.SetValue("")
			m.reportTable = m.buildTable(m.reportData)
			return m, nil
		}
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.state = stateReportForm
		return m, nil
	case "/":
		m.filtering = true
		m.filterInput.SetValue("")
		m.filterInput.Focus()
		return m, nil
	case "e":
		return m, m.exportCSV()
	}
	var cmd tea.Cmd
	m.reportTable, cmd = m.reportTable.Update(msg)
	return m, cmd
}

func (m Model) openReportForm() Model {
	m.state = stateReportForm
	m.errText = ""
	return m.focusReportInput(reportFrom)
}

func (m Model) closeReportForm() Model {
	if m.site != nil {
		m.state = stateDetail
	} else {
		m.state = stateSearch
		m.searchInput.Focus()
	}
	return m
}

func (m Model) focusReportInput(i int) Model {
	if i < 0 {
		i = len(m.reportInputs) - 1
	}
	if i >= len(m.reportInputs) {
		i = 0
	}
	m.reportFocus = i
	for j := range m.reportInputs {
		if j == i {
			m.reportInputs[j].Focus()
		} else {
			m.reportInputs[j].Blur()
		}
	}
	return m
}

func (m Model) tableHeight() int {
	h := m.height - 8
	if h < 5 {
		h = 5
	}
	return h
}

func (m Model) buildTable(t *report.Table) table.Model {
	cols := make([]table.Column, len(t.Headers))
	for i, h := range t.Headers {
		w := len(h) + 2
		if w < 12 {
			w = 12
		}
		cols[i] = table.Column{Title: h, Width: w}
	}
	rows := make([]table.Row, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = table.Row(r)
	}
	return table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)
}

// Package ui implements the interactive dashboard: search for a site,
// review its record, edit fields in place, and run reports, all against
// the same API client the CLI commands use.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sitedesk/internal/api"
	"sitedesk/internal/dateutil"
	"sitedesk/internal/editor"
	"sitedesk/internal/model"
	"sitedesk/internal/report"
)

type state int

const (
	stateSearch state = iota
	stateLoading
	stateDetail
	stateConfirmEdit
	stateEditing
	stateSaving
	stateReportForm
	stateReportLoading
	stateReport
)

const apiTimeout = 30 * time.Second

// Indexes into the report form inputs.
const (
	reportFrom = iota
	reportTo
	reportLease
)

// Model holds all dashboard state.
type Model struct {
	client *api.Client

	state  state
	width  int
	height int

	searchInput textinput.Model
	spin        spinner.Model

	site       *model.Site
	editSess   *editor.Session
	cursor     int
	typing     bool
	fieldInput textinput.Model

	reportType   string
	reportInputs []textinput.Model
	reportFocus  int
	reportData   *report.Table
	reportTable  table.Model
	filterInput  textinput.Model
	filtering    bool

	message string
	errText string
	err     error
}

// editFields lists the field names the editor exposes, in display order.
// The site id is the record key and stays read-only.
var editFields = func() []string {
	var names []string
	for i := range model.Fields {
		if model.Fields[i].Name == "site_id" {
			continue
		}
		names = append(names, model.Fields[i].Name)
	}
	return names
}()

// NewModel builds the dashboard in its initial search state.
func NewModel(client *api.Client) Model {
	search := textinput.New()
	search.Placeholder = "site id"
	search.CharLimit = 32
	search.Width = 32
	search.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	field := textinput.New()
	field.CharLimit = 120
	field.Width = 40

	filter := textinput.New()
	filter.Placeholder = "filter"
	filter.CharLimit = 64
	filter.Width = 32

	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 16
		inputs[i].Width = 16
	}
	inputs[reportFrom].Placeholder = dateutil.DisplayLayout
	inputs[reportTo].Placeholder = dateutil.DisplayLayout
	inputs[reportLease].Placeholder = "lease years"

	return Model{
		client:       client,
		state:        stateSearch,
		searchInput:  search,
		spin:         sp,
		fieldInput:   field,
		filterInput:  filter,
		reportType:   report.TypeAllSites,
		reportInputs: inputs,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

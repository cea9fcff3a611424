package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sitedesk/internal/api"
	"sitedesk/internal/dateutil"
	"sitedesk/internal/model"
	"sitedesk/internal/report"
)

// Message types
type siteLoadedMsg struct {
	site model.Site
}

type siteSavedMsg struct {
	site    model.Site
	message string
}

type reportLoadedMsg struct {
	table *report.Table
}

type csvWrittenMsg struct {
	path string
}

type sessionExpiredMsg struct{}

type errorMsg struct {
	err error
}

type clearMessageMsg struct{}

// searchSite returns a command that resolves a search term to one record.
func (m Model) searchSite(term string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		site, err := m.client.SearchSite(ctx, term)
		if err != nil {
			return toMsg(err)
		}
		return siteLoadedMsg{site: site}
	}
}

// saveSite returns a command that pushes the edit draft to the server and
// reloads the record, so the view always shows the server's copy.
func (m Model) saveSite() tea.Cmd {
	sess := m.editSess
	return func() tea.Msg {
		if sess == nil {
			return errorMsg{err: fmt.Errorf("no site being edited")}
		}

		payload, err := sess.Payload()
		if err != nil {
			return errorMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		if err := m.client.UpdateSite(ctx, sess.SiteID(), payload); err != nil {
			return toMsg(err)
		}

		site, err := m.client.Site(ctx, sess.SiteID())
		if err != nil {
			return toMsg(fmt.Errorf("saved %s but failed to reload it: %w", sess.SiteID(), err))
		}

		return siteSavedMsg{
			site:    site,
			message: fmt.Sprintf("Saved %s", sess.SiteID()),
		}
	}
}

// reloadSite returns a command that discards local state and re-fetches.
func (m Model) reloadSite(siteID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		site, err := m.client.Site(ctx, siteID)
		if err != nil {
			return toMsg(err)
		}
		return siteLoadedMsg{site: site}
	}
}

// runReport returns a command that fetches report rows for the form values.
func (m Model) runReport() tea.Cmd {
	query := api.ReportQuery{
		Type:        m.reportType,
		LeasePeriod: m.reportInputs[reportLease].Value(),
	}
	from := m.reportInputs[reportFrom].Value()
	to := m.reportInputs[reportTo].Value()

	return func() tea.Msg {
		var err error
		if from != "" {
			if query.FromDate, err = dateutil.Wire(from); err != nil {
				return errorMsg{err: fmt.Errorf("from date: %w", err)}
			}
		}
		if to != "" {
			if query.ToDate, err = dateutil.Wire(to); err != nil {
				return errorMsg{err: fmt.Errorf("to date: %w", err)}
			}
		}
		if query.Type == report.TypeLeasePeriod {
			if query.FromDate == "" || query.ToDate == "" || query.LeasePeriod == "" {
				return errorMsg{err: fmt.Errorf("lease period reports need from, to and lease years")}
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		rows, err := m.client.Report(ctx, query)
		if err != nil {
			return toMsg(err)
		}
		return reportLoadedMsg{table: report.Build(rows)}
	}
}

// exportCSV returns a command that writes the current report to disk.
func (m Model) exportCSV() tea.Cmd {
	data := m.reportData
	return func() tea.Msg {
		if data == nil || data.Empty() {
			return errorMsg{err: fmt.Errorf("nothing to export")}
		}
		path := fmt.Sprintf("sitedesk-report-%s.csv", time.Now().Format("20060102-150405"))
		f, err := os.Create(path)
		if err != nil {
			return errorMsg{err: fmt.Errorf("failed to create %s: %w", path, err)}
		}
		defer f.Close()
		if err := data.WriteCSV(f); err != nil {
			return errorMsg{err: fmt.Errorf("failed to write %s: %w", path, err)}
		}
		return csvWrittenMsg{path: path}
	}
}

// clearMessageAfter returns a command that clears the message after a delay.
func clearMessageAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearMessageMsg{}
	})
}

// toMsg maps an API failure to the message the update loop expects. An
// expired session always ends the program; everything else stays inline.
func toMsg(err error) tea.Msg {
	if errors.Is(err, api.ErrUnauthorized) {
		return sessionExpiredMsg{}
	}
	return errorMsg{err: err}
}

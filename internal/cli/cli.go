package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"sitedesk/internal/api"
	"sitedesk/internal/config"
	"sitedesk/internal/logging"
	"sitedesk/internal/session"
	"sitedesk/internal/ui"
)

// Run executes the CLI with the given config and arguments.
func Run(cfg *config.Config, args []string) error {
	remaining, err := ParseGlobalFlags(args)
	if err != nil {
		return err
	}

	// Reload config if --config flag was provided
	if globalFlags.Config != "" {
		newCfg, err := config.Load(globalFlags.Config)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = newCfg
	}

	// Override the API base URL if --api flag was provided
	if globalFlags.API != "" {
		cfg.APIURL = globalFlags.API
	}

	// Also check SITEDESK_API env var
	if envURL := os.Getenv("SITEDESK_API"); envURL != "" && globalFlags.API == "" {
		cfg.APIURL = envURL
	}

	logger := logging.New(cfg.LogFile, globalFlags.Debug)
	defer logger.Sync()

	// If no arguments, launch the TUI dashboard
	if len(remaining) == 0 {
		sess, err := session.Load(cfg.SessionFile)
		if err != nil {
			if errors.Is(err, session.ErrNotLoggedIn) {
				return fmt.Errorf("not logged in: run 'sitedesk login' first")
			}
			return err
		}
		client := api.New(cfg.APIURL, sess, timeout(cfg), logger)
		m := ui.NewModel(client)
		p := tea.NewProgram(m, tea.WithAltScreen())
		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		if fm, ok := final.(ui.Model); ok && fm.Err() != nil {
			return checkAuth(cfg, fm.Err())
		}
		return nil
	}

	// Create root command
	root := &Command{
		Name:  "sitedesk",
		Usage: "sitedesk <command> [options]",
		Description: `Terminal client for the lease site records service.

Commands:
  login      Authenticate and store a session
  logout     Clear the stored session
  search     Search for sites by id fragment
  show       Show one site record
  new        Create a site record
  set        Edit fields of a site record
  upload     Bulk-import sites from a spreadsheet
  report     Generate a report, optionally exported to CSV

Global Options:
  --config PATH  Use specific config file
  --api URL      Override the API base URL
  --json         Output in JSON format
  --quiet, -q    Minimal output
  --debug        Verbose logging to the log file`,
	}

	root.Subcommands = append(root.Subcommands,
		loginCommand(cfg, logger),
		logoutCommand(cfg),
		searchCommand(cfg, logger),
		showCommand(cfg, logger),
		newCommand(cfg, logger),
		setCommand(cfg, logger),
		uploadCommand(cfg, logger),
		reportCommand(cfg, logger),
	)

	return root.Execute(remaining)
}

func timeout(cfg *config.Config) time.Duration {
	return time.Duration(cfg.TimeoutSeconds) * time.Second
}

// authedClient loads the stored session and builds a client with it.
func authedClient(cfg *config.Config, logger *zap.Logger) (*api.Client, error) {
	sess, err := session.Load(cfg.SessionFile)
	if err != nil {
		if errors.Is(err, session.ErrNotLoggedIn) {
			return nil, fmt.Errorf("not logged in: run 'sitedesk login' first")
		}
		return nil, err
	}
	return api.New(cfg.APIURL, sess, timeout(cfg), logger), nil
}

// checkAuth translates an expired-session failure into a forced logout, the
// client-side half of the 401 contract.
func checkAuth(cfg *config.Config, err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		_ = session.Clear(cfg.SessionFile)
		return fmt.Errorf("your session has expired, please log in again")
	}
	return err
}

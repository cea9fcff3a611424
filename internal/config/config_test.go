package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
api_url = "https://sites.example.com"
timeout_seconds = 10
log_file = "/tmp/sitedesk-test.log"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "https://sites.example.com" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d", cfg.TimeoutSeconds)
	}
	if cfg.LogFile != "/tmp/sitedesk-test.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "http://localhost:5000" {
		t.Errorf("APIURL = %q, want default", cfg.APIURL)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", cfg.TimeoutSeconds)
	}
	if !strings.HasSuffix(cfg.LogFile, filepath.Join(".config", "sitedesk", "sitedesk.log")) {
		t.Errorf("LogFile = %q, want default under ~/.config", cfg.LogFile)
	}
}

func TestLoadTildeExpansion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
log_file = "~/logs/sitedesk.log"
session_file = "~/state/session.json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	home, _ := os.UserHomeDir()
	if cfg.LogFile != filepath.Join(home, "logs", "sitedesk.log") {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if cfg.SessionFile != filepath.Join(home, "state", "session.json") {
		t.Errorf("SessionFile = %q", cfg.SessionFile)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load accepted a missing explicit path")
	}
}

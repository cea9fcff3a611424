package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the client's settings. Everything has a workable default so
// a fresh install can log in against a local server without writing a
// config file first.
type Config struct {
	APIURL         string `toml:"api_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	LogFile        string `toml:"log_file"`
	SessionFile    string `toml:"session_file"`
}

const defaultAPIURL = "http://localhost:5000"

func Load(configPath string) (*Config, error) {
	config := &Config{}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	// If explicit config path provided, use it
	if configPath != "" {
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, err
		}
		applyDefaults(config, homeDir)
		return config, nil
	}

	path := filepath.Join(homeDir, ".config", "sitedesk", "config.toml")
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, config); err != nil {
			return nil, err
		}
	}

	applyDefaults(config, homeDir)
	return config, nil
}

func applyDefaults(config *Config, homeDir string) {
	if config.APIURL == "" {
		config.APIURL = defaultAPIURL
	}
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = 30
	}
	if config.LogFile == "" {
		config.LogFile = filepath.Join(homeDir, ".config", "sitedesk", "sitedesk.log")
	}
	expandTilde(&config.LogFile, homeDir)
	expandTilde(&config.SessionFile, homeDir)
}

func expandTilde(path *string, homeDir string) {
	if len(*path) > 0 && (*path)[0] == '~' {
		*path = filepath.Join(homeDir, (*path)[1:])
	}
}

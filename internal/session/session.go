// Package session persists the authenticated state between invocations:
// the bearer token and the user object the login endpoint returned. It is
// the explicit replacement for the browser build's ambient localStorage
// slots; everything that calls the API receives a Session rather than
// reading shared state.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotLoggedIn is returned when no stored session exists.
var ErrNotLoggedIn = errors.New("not logged in")

// User is the server's description of the authenticated operator.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}

// Session holds one login's credentials. There is no client-side expiry;
// the server's 401 is the only invalidation signal.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// DefaultPath returns the session file location alongside the config file.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sitedesk", "session.json"), nil
}

// Load reads a stored session. path may be empty to use the default
// location.
func Load(path string) (*Session, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("reading session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing session: %w", err)
	}
	if s.Token == "" {
		return nil, ErrNotLoggedIn
	}
	return &s, nil
}

// Save writes the session to path, creating the directory if needed. The
// file is user-only: it holds a bearer token.
func Save(path string, s *Session) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// Clear removes the stored session. Missing files are not an error; forced
// logout after a 401 must always succeed.
func Clear(path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

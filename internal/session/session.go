// ABOUTME: Persisted admin session token in the XDG config directory
// ABOUTME: Written only at login/logout; read at request-construction time

package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Store holds the persisted bearer token for the admin session. It is the
// only cross-workflow shared mutable state: mutated at login and logout,
// read by every privileged request.
type Store struct {
	configDir string
	token     string
	loaded    bool
}

type tokenData struct {
	AccessToken string `json:"access_token"`
}

// New creates a Store rooted at the given config directory.
func New(configDir string) *Store {
	return &Store{configDir: configDir}
}

// DefaultConfigDir returns the default config directory following XDG spec.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "orincore-admin")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "orincore-admin")
}

func (s *Store) tokenFile() string {
	return filepath.Join(s.configDir, "token.json")
}

// Load reads the persisted token from disk. A missing or unreadable file
// yields an empty token, never an error: absence just means logged out.
func (s *Store) Load() string {
	s.loaded = true
	s.token = ""

	data, err := os.ReadFile(s.tokenFile())
	if err != nil {
		return ""
	}
	var stored tokenData
	if err := json.Unmarshal(data, &stored); err != nil {
		return ""
	}
	s.token = stored.AccessToken
	return s.token
}

// Token implements api.TokenSource, loading lazily on first use.
func (s *Store) Token() string {
	if !s.loaded {
		s.Load()
	}
	return s.token
}

// Present reports whether a token exists. No validation call is made; a
// stale token is only discovered on the first failing request.
func (s *Store) Present() bool {
	return s.Token() != ""
}

// Save persists the token, creating the config directory if needed.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(tokenData{AccessToken: token}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.tokenFile(), data, 0600); err != nil {
		return err
	}
	s.token = token
	s.loaded = true
	return nil
}

// Clear removes the persisted token. Used only at explicit logout.
func (s *Store) Clear() error {
	s.token = ""
	s.loaded = true
	err := os.Remove(s.tokenFile())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

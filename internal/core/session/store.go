package session

import (
	"os"
	"path/filepath"
	"strings"
)

const tokenFileName = "token"

// Store persists the bearer token for the current login. The token file is
// the only client-side state the app ever writes besides its config; its
// presence alone decides whether the user counts as authenticated. No shape
// or expiry checks happen here - a stale token is the server's to reject.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the standard config directory (~/.config/tripdeck).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tripdeck"), nil
}

func (s *Store) path() string {
	return filepath.Join(s.dir, tokenFileName)
}

// Set persists a credential, replacing any previous one.
func (s *Store) Set(token string) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return err
	}
	return os.WriteFile(s.path(), []byte(token), 0600)
}

// Get returns the stored credential and whether one is present.
func (s *Store) Get() (string, bool) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}
	return token, true
}

// Present reports whether a credential is stored.
func (s *Store) Present() bool {
	_, ok := s.Get()
	return ok
}

// Clear removes the stored credential. Clearing an empty store is not an
// error.
func (s *Store) Clear() error {
	err := os.Remove(s.path())
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	defaultAppDir   = "colisexpress"
	sessionFileName = "session.json"
	sessionFileMode = 0o600
)

// sessionDocument is the on-disk layout: both keys live in a single document
// so a torn write cannot leave a token without a user.
type sessionDocument struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// FileStore persists the session as a JSON file under the user's
// configuration directory.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore rooted at the user config directory
// (for example ~/.config/colisexpress/session.json on Linux).
func NewFileStore() (*FileStore, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("session: resolve config dir: %w", err)
	}
	return &FileStore{path: filepath.Join(base, defaultAppDir, sessionFileName)}, nil
}

// NewFileStoreAt creates a FileStore at an explicit path. Intended for tests
// and for callers that manage their own configuration layout.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the location of the session file.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Save(token string, user User) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: create config dir: %w", err)
	}

	data, err := json.Marshal(sessionDocument{Token: token, User: &user})
	if err != nil {
		return fmt.Errorf("session: encode session: %w", err)
	}

	// Write-then-rename so a crash mid-write never corrupts the live file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, sessionFileMode); err != nil {
		return fmt.Errorf("session: write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("session: replace session: %w", err)
	}
	return nil
}

func (s *FileStore) Load() (string, User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", User{}, ErrNoSession
		}
		return "", User{}, fmt.Errorf("session: read session: %w", err)
	}

	var doc sessionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		_ = s.Clear()
		return "", User{}, ErrNoSession
	}
	if doc.Token == "" || doc.User == nil {
		_ = s.Clear()
		return "", User{}, ErrNoSession
	}
	return doc.Token, *doc.User, nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: clear session: %w", err)
	}
	return nil
}

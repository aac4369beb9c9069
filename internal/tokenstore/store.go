// Package tokenstore persists the single bearer token across restarts.
package tokenstore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const tokenFile = "jwt_token"

// Store is the single-key credential store contract.
type Store interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// FileStore keeps the token in one file under dir. A missing file is not an
// error; Load reports it as an empty token.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

func (s *FileStore) path() string {
	return filepath.Join(s.dir, tokenFile)
}

func (s *FileStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path(), []byte(token), 0o600)
}

func (s *FileStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

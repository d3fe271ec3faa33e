package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"ci-request-api/internal/auth"
)

// StoredSession is the persisted credential blob.
type StoredSession struct {
	Token     string        `json:"token"`
	User      auth.UserInfo `json:"user"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

type Store interface {
	Load() (*StoredSession, error)
	Save(s *StoredSession) error
	Clear() error
}

// FileStore keeps the session as a JSON file, surviving restarts of
// the client process.
type FileStore struct {
	Path string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{Path: filepath.Join(dir, "session.json")}
}

var _ Store = (*FileStore)(nil)

// Load returns nil without error when no session has been saved yet.
func (f *FileStore) Load() (*StoredSession, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s StoredSession
	if err := json.Unmarshal(data, &s); err != nil {
		// A corrupt file is treated as no session
		_ = os.Remove(f.Path)
		return nil, nil
	}
	return &s, nil
}

func (f *FileStore) Save(s *StoredSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.Path, data, 0o600)
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

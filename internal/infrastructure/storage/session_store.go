package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase/interfaces"
)

// SessionStore persists the active identity in its own durable slot,
// separate from the entity state. Read once per request, written on login,
// cleared on logout.
//
// Supported env vars:
//   - PORTAL_SESSION_FILE (optional; full path, overrides the data dir)
type SessionStore struct {
	path string
}

var _ interfaces.ISessionRepository = (*SessionStore)(nil)

func NewSessionStore() *SessionStore {
	path := os.Getenv("PORTAL_SESSION_FILE")
	if path == "" {
		path = filepath.Join(getenvDefault("PORTAL_DATA_DIR", "data"), "session.json")
	}
	return &SessionStore{path: path}
}

func NewSessionStoreAt(path string) *SessionStore {
	return &SessionStore{path: path}
}

func (s *SessionStore) Get(ctx context.Context) (*entities.User, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session slot: %w", err)
	}
	var u entities.User
	if err := json.Unmarshal(raw, &u); err != nil {
		// A corrupt session slot means no active identity, not a crash.
		return nil, nil
	}
	if u.Role == "" {
		return nil, nil
	}
	return &u, nil
}

func (s *SessionStore) Save(ctx context.Context, u entities.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode session slot: %w", err)
	}
	return writeSlot(s.path, raw)
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session slot: %w", err)
	}
	return nil
}

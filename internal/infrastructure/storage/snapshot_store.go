package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"assistencia_os/internal/domain/entities"
)

// Snapshot is the persisted state layout: one JSON object with the four
// entity collections, rewritten wholesale on every collection change.
type Snapshot struct {
	Clients  []entities.Client            `json:"clients"`
	Devices  []entities.Device            `json:"devices"`
	Services []entities.ServiceDefinition `json:"services"`
	Orders   []entities.ServiceOrder      `json:"orders"`
}

// SnapshotStore reads and writes the durable state slot.
//
// Supported env vars (local-friendly):
//   - PORTAL_DATA_DIR (default: data)
//   - PORTAL_STATE_FILE (optional; full path, overrides the data dir)
//
// Load failures are never fatal to the portal: the caller falls back to the
// seed dataset. Save rewrites the whole slot via a temp file + rename so a
// crashed write cannot leave a half-written state behind.
type SnapshotStore struct {
	path string
}

func NewSnapshotStore() *SnapshotStore {
	path := os.Getenv("PORTAL_STATE_FILE")
	if path == "" {
		path = filepath.Join(getenvDefault("PORTAL_DATA_DIR", "data"), "state.json")
	}
	return &SnapshotStore{path: path}
}

// NewSnapshotStoreAt is used by tests to point the slot at a scratch file.
func NewSnapshotStoreAt(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

func (s *SnapshotStore) Path() string { return s.path }

func (s *SnapshotStore) Load() (Snapshot, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read state slot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode state slot: %w", err)
	}
	return snap, nil
}

func (s *SnapshotStore) Save(snap Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state slot: %w", err)
	}
	return writeSlot(s.path, raw)
}

func writeSlot(path string, raw []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write state slot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace state slot: %w", err)
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

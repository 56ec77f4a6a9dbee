package repository

import (
	"log"
	"sync"

	"assistencia_os/internal/infrastructure/storage"
)

// PortalStore is the single in-memory source of truth for the four entity
// collections. The per-entity repositories in this package all operate on one
// shared PortalStore.
//
// Persistence model:
//   - the snapshot slot is loaded once at construction; a missing or corrupt
//     slot falls back to the seed dataset and is never fatal;
//   - after every mutation the whole state is mirrored back to the slot as a
//     fire-and-forget side effect. A failed save is logged and never rolls
//     back or blocks the in-memory change.
type PortalStore struct {
	mu sync.RWMutex

	state storage.Snapshot

	snap *storage.SnapshotStore // nil disables mirroring (tests)
}

func NewPortalStore(snap *storage.SnapshotStore) *PortalStore {
	state := storage.Seed()
	if snap != nil {
		loaded, err := snap.Load()
		if err != nil {
			log.Printf("[store][persistence] state slot unavailable, using seed data: %v", err)
		} else {
			state = loaded
		}
	}
	return &PortalStore{state: state, snap: snap}
}

// mutate runs fn under the write lock and mirrors the resulting state to the
// snapshot slot.
func (s *PortalStore) mutate(fn func(state *storage.Snapshot)) {
	s.mu.Lock()
	fn(&s.state)
	copied := s.copyLocked()
	s.mu.Unlock()

	if s.snap == nil {
		return
	}
	if err := s.snap.Save(copied); err != nil {
		log.Printf("[store][persistence] failed to mirror state slot: %v", err)
	}
}

func (s *PortalStore) copyLocked() storage.Snapshot {
	out := storage.Snapshot{}
	out.Clients = append(out.Clients, s.state.Clients...)
	out.Devices = append(out.Devices, s.state.Devices...)
	out.Services = append(out.Services, s.state.Services...)
	out.Orders = append(out.Orders, s.state.Orders...)
	return out
}

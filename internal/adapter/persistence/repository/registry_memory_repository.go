package repository

import (
	"context"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/infrastructure/storage"
	"assistencia_os/internal/usecase/interfaces"
)

// ClientMemoryRepository persists Client records in the PortalStore.

type ClientMemoryRepository struct {
	store *PortalStore
}

var _ interfaces.IClientRepository = (*ClientMemoryRepository)(nil)

func NewClientMemoryRepository(store *PortalStore) *ClientMemoryRepository {
	return &ClientMemoryRepository{store: store}
}

func (r *ClientMemoryRepository) List(ctx context.Context) ([]entities.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]entities.Client(nil), r.store.state.Clients...), nil
}

func (r *ClientMemoryRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, c := range r.store.state.Clients {
		if c.ID == id {
			return c, nil
		}
	}
	return entities.Client{}, nil
}

func (r *ClientMemoryRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	r.store.mutate(func(state *storage.Snapshot) {
		state.Clients = append(state.Clients, c)
	})
	return c, nil
}

// DeviceMemoryRepository persists Device records in the PortalStore.

type DeviceMemoryRepository struct {
	store *PortalStore
}

var _ interfaces.IDeviceRepository = (*DeviceMemoryRepository)(nil)

func NewDeviceMemoryRepository(store *PortalStore) *DeviceMemoryRepository {
	return &DeviceMemoryRepository{store: store}
}

func (r *DeviceMemoryRepository) List(ctx context.Context) ([]entities.Device, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]entities.Device(nil), r.store.state.Devices...), nil
}

func (r *DeviceMemoryRepository) GetByID(ctx context.Context, id string) (entities.Device, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, d := range r.store.state.Devices {
		if d.ID == id {
			return d, nil
		}
	}
	return entities.Device{}, nil
}

func (r *DeviceMemoryRepository) Create(ctx context.Context, d entities.Device) (entities.Device, error) {
	r.store.mutate(func(state *storage.Snapshot) {
		state.Devices = append(state.Devices, d)
	})
	return d, nil
}

package repository

import (
	"context"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/infrastructure/storage"
	"assistencia_os/internal/usecase/interfaces"
)

// ServiceMemoryRepository persists the service catalog in the PortalStore.
//
// Delete removes only the definition; orders that already reference the id
// keep their dangling reference on purpose (historical display resolves it to
// a fallback label in the catalog usecase).

type ServiceMemoryRepository struct {
	store *PortalStore
}

var _ interfaces.IServiceRepository = (*ServiceMemoryRepository)(nil)

func NewServiceMemoryRepository(store *PortalStore) *ServiceMemoryRepository {
	return &ServiceMemoryRepository{store: store}
}

func (r *ServiceMemoryRepository) List(ctx context.Context) ([]entities.ServiceDefinition, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]entities.ServiceDefinition(nil), r.store.state.Services...), nil
}

func (r *ServiceMemoryRepository) GetByID(ctx context.Context, id string) (entities.ServiceDefinition, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, s := range r.store.state.Services {
		if s.ID == id {
			return s, nil
		}
	}
	return entities.ServiceDefinition{}, nil
}

func (r *ServiceMemoryRepository) Create(ctx context.Context, s entities.ServiceDefinition) (entities.ServiceDefinition, error) {
	r.store.mutate(func(state *storage.Snapshot) {
		state.Services = append(state.Services, s)
	})
	return s, nil
}

func (r *ServiceMemoryRepository) Update(ctx context.Context, s entities.ServiceDefinition) (entities.ServiceDefinition, error) {
	updated := entities.ServiceDefinition{}
	r.store.mutate(func(state *storage.Snapshot) {
		for i := range state.Services {
			if state.Services[i].ID == s.ID {
				state.Services[i].Nome = s.Nome
				state.Services[i].ValorBase = s.ValorBase
				updated = state.Services[i]
				return
			}
		}
	})
	return updated, nil
}

func (r *ServiceMemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	removed := false
	r.store.mutate(func(state *storage.Snapshot) {
		for i := range state.Services {
			if state.Services[i].ID == id {
				state.Services = append(state.Services[:i], state.Services[i+1:]...)
				removed = true
				return
			}
		}
	})
	return removed, nil
}

package repository

import (
	"context"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/infrastructure/storage"
	"assistencia_os/internal/usecase/interfaces"
)

// StoreStaticRepository serves the static store metadata. Stores are a
// scoping key only; the portal never mutates them.

type StoreStaticRepository struct {
	stores []entities.Store
}

var _ interfaces.IStoreRepository = (*StoreStaticRepository)(nil)

func NewStoreStaticRepository() *StoreStaticRepository {
	return &StoreStaticRepository{stores: storage.SeedStores()}
}

func (r *StoreStaticRepository) List(ctx context.Context) ([]entities.Store, error) {
	return append([]entities.Store(nil), r.stores...), nil
}

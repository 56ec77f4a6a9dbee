package interfaces

import (
	"context"

	"assistencia_os/internal/domain/entities"
)

// IStoreRepository lists the organizational scopes. Stores are static
// metadata in the current portal; there is no mutation surface.

type IStoreRepository interface {
	List(ctx context.Context) ([]entities.Store, error)
}

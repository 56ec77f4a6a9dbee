package interfaces

import (
	"context"

	"assistencia_os/internal/domain/entities"
)

// IClientRepository abstracts the in-memory entity store for clients.

type IClientRepository interface {
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
}

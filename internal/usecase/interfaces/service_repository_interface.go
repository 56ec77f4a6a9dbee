package interfaces

import (
	"context"

	"assistencia_os/internal/domain/entities"
)

// IServiceRepository abstracts the in-memory entity store for the service
// catalog.
//
// Delete on an unknown id reports false. Deleting a definition never touches
// orders referencing it; historical orders keep the dangling id.

type IServiceRepository interface {
	List(ctx context.Context) ([]entities.ServiceDefinition, error)
	GetByID(ctx context.Context, id string) (entities.ServiceDefinition, error)
	Create(ctx context.Context, s entities.ServiceDefinition) (entities.ServiceDefinition, error)
	Update(ctx context.Context, s entities.ServiceDefinition) (entities.ServiceDefinition, error)
	Delete(ctx context.Context, id string) (bool, error)
}

package interfaces

import (
	"context"

	"assistencia_os/internal/domain/entities"
)

// IOrderRepository abstracts the in-memory entity store for service orders.
//
// Lookup misses return a zero-value order with a nil error; callers decide
// whether a miss is an error. Update replaces the stored order wholesale and
// returns the stored value, or a zero order when the id is unknown.

type IOrderRepository interface {
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
}

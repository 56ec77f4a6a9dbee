package repository

import (
	"context"
	"fmt"
	"strconv"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase/interfaces"

	"assistencia_os/internal/infrastructure/storage"
)

// OrderMemoryRepository persists ServiceOrder aggregates in the PortalStore.
//
// Numbering:
//   - Create assigns the sequential display number when the incoming order
//     carries none: max existing numeric value + 1, zero-padded to 4 digits,
//     monotonic across every store. The computation happens under the store
//     write lock so two creations can never draw the same number.

type OrderMemoryRepository struct {
	store *PortalStore
}

var _ interfaces.IOrderRepository = (*OrderMemoryRepository)(nil)

func NewOrderMemoryRepository(store *PortalStore) *OrderMemoryRepository {
	return &OrderMemoryRepository{store: store}
}

func (r *OrderMemoryRepository) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]entities.ServiceOrder, 0, len(r.store.state.Orders))
	for _, o := range r.store.state.Orders {
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func (r *OrderMemoryRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, o := range r.store.state.Orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return entities.ServiceOrder{}, nil
}

func (r *OrderMemoryRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	created := entities.ServiceOrder{}
	r.store.mutate(func(state *storage.Snapshot) {
		if o.Numero == "" {
			o.Numero = nextNumero(state.Orders)
		}
		state.Orders = append(state.Orders, cloneOrder(o))
		created = o
	})
	return created, nil
}

func (r *OrderMemoryRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	updated := entities.ServiceOrder{}
	r.store.mutate(func(state *storage.Snapshot) {
		for i := range state.Orders {
			if state.Orders[i].ID == o.ID {
				state.Orders[i] = cloneOrder(o)
				updated = o
				return
			}
		}
	})
	return updated, nil
}

func nextNumero(orders []entities.ServiceOrder) string {
	max := 0
	for _, o := range orders {
		if n, err := strconv.Atoi(o.Numero); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%04d", max+1)
}

func cloneOrder(o entities.ServiceOrder) entities.ServiceOrder {
	out := o
	out.Itens = append([]entities.ServiceOrderItem(nil), o.Itens...)
	out.Logs = append([]entities.ServiceOrderLog(nil), o.Logs...)
	return out
}

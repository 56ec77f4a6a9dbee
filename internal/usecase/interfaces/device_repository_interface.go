package interfaces

import (
	"context"

	"assistencia_os/internal/domain/entities"
)

// IDeviceRepository abstracts the in-memory entity store for devices.

type IDeviceRepository interface {
	List(ctx context.Context) ([]entities.Device, error)
	GetByID(ctx context.Context, id string) (entities.Device, error)
	Create(ctx context.Context, d entities.Device) (entities.Device, error)
}

package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound    = errors.New("service not found")
	ErrMissingServiceNome = errors.New("missing service name")
	ErrInvalidValorBase   = errors.New("invalid base value")
)

// ServiceFallbackLabel is shown when an order references a deleted catalog
// entry. Deleting a service never cascades into historical orders.
const ServiceFallbackLabel = "—"

type ServiceInput struct {
	Nome      string
	ValorBase float64
}

// ICatalogUseCase manages the billable service catalog.

type ICatalogUseCase interface {
	ListServices(ctx context.Context, actor *entities.User) ([]entities.ServiceDefinition, error)
	CreateService(ctx context.Context, actor *entities.User, in ServiceInput) (entities.ServiceDefinition, error)
	UpdateService(ctx context.Context, id string, in ServiceInput) (entities.ServiceDefinition, error)
	DeleteService(ctx context.Context, id string) error
	ServiceLabel(ctx context.Context, id string) string
}

type CatalogUseCase struct {
	repo interfaces.IServiceRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IServiceRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) ListServices(ctx context.Context, actor *entities.User) ([]entities.ServiceDefinition, error) {
	services, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ScopeServices(actor, services), nil
}

func (u *CatalogUseCase) CreateService(ctx context.Context, actor *entities.User, in ServiceInput) (entities.ServiceDefinition, error) {
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		return entities.ServiceDefinition{}, ErrMissingServiceNome
	}
	if in.ValorBase < 0 {
		return entities.ServiceDefinition{}, ErrInvalidValorBase
	}

	s := entities.ServiceDefinition{
		ID:        uuid.NewString(),
		Nome:      nome,
		ValorBase: in.ValorBase,
		LojaID:    actorLojaID(actor),
	}
	return u.repo.Create(ctx, s)
}

func (u *CatalogUseCase) UpdateService(ctx context.Context, id string, in ServiceInput) (entities.ServiceDefinition, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceDefinition{}, ErrServiceNotFound
	}
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		return entities.ServiceDefinition{}, ErrMissingServiceNome
	}
	if in.ValorBase < 0 {
		return entities.ServiceDefinition{}, ErrInvalidValorBase
	}

	updated, err := u.repo.Update(ctx, entities.ServiceDefinition{ID: id, Nome: nome, ValorBase: in.ValorBase})
	if err != nil {
		return entities.ServiceDefinition{}, err
	}
	if updated.ID == "" {
		return entities.ServiceDefinition{}, ErrServiceNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) DeleteService(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrServiceNotFound
	}
	removed, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrServiceNotFound
	}
	log.Printf("[catalog][usecase] deleted service id=%s (historical orders keep the reference)", id)
	return nil
}

// ServiceLabel resolves a service reference for display. Unknown ids resolve
// to the fallback label instead of failing the lookup.
func (u *CatalogUseCase) ServiceLabel(ctx context.Context, id string) string {
	s, err := u.repo.GetByID(ctx, id)
	if err != nil || s.ID == "" {
		return ServiceFallbackLabel
	}
	return s.Nome
}

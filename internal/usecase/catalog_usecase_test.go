package usecase

import (
	"context"
	"errors"
	"testing"

	"assistencia_os/internal/domain/entities"
	mock_interfaces "assistencia_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_CreateService(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.CreateService(context.Background(), nil, ServiceInput{Nome: "   ", ValorBase: 10})
		if !errors.Is(err, ErrMissingServiceNome) {
			t.Fatalf("expected ErrMissingServiceNome, got %v", err)
		}
	})

	t.Run("negative base value", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.CreateService(context.Background(), nil, ServiceInput{Nome: "Troca de tela", ValorBase: -1})
		if !errors.Is(err, ErrInvalidValorBase) {
			t.Fatalf("expected ErrInvalidValorBase, got %v", err)
		}
	})

	t.Run("success binds actor store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceDefinition{})).DoAndReturn(
			func(_ context.Context, s entities.ServiceDefinition) (entities.ServiceDefinition, error) {
				if s.ID == "" || s.Nome != "Troca de tela" || s.ValorBase != 250 || s.LojaID != "loja-2" {
					t.Fatalf("unexpected service: %+v", s)
				}
				return s, nil
			},
		)

		actor := &entities.User{ID: "adm-loja-2", Role: entities.RoleAdm, LojaID: "loja-2"}
		if _, err := uc.CreateService(context.Background(), actor, ServiceInput{Nome: " Troca de tela ", ValorBase: 250}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCatalogUseCase_UpdateService(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.ServiceDefinition{}, nil)

		_, err := uc.UpdateService(context.Background(), "ghost", ServiceInput{Nome: "Limpeza", ValorBase: 80})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().Update(gomock.Any(), entities.ServiceDefinition{ID: "s1", Nome: "Limpeza", ValorBase: 80}).
			Return(entities.ServiceDefinition{ID: "s1", Nome: "Limpeza", ValorBase: 80, LojaID: "loja-1"}, nil)

		got, err := uc.UpdateService(context.Background(), " s1 ", ServiceInput{Nome: " Limpeza ", ValorBase: 80})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.LojaID != "loja-1" {
			t.Fatalf("expected stored store kept, got %+v", got)
		}
	})
}

func TestCatalogUseCase_DeleteService(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "ghost").Return(false, nil)

		if err := uc.DeleteService(context.Background(), "ghost"); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "s1").Return(true, nil)

		if err := uc.DeleteService(context.Background(), "s1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCatalogUseCase_ServiceLabel(t *testing.T) {
	t.Run("known service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "s1").Return(entities.ServiceDefinition{ID: "s1", Nome: "Troca de tela"}, nil)

		if got := uc.ServiceLabel(context.Background(), "s1"); got != "Troca de tela" {
			t.Fatalf("expected service name, got %q", got)
		}
	})

	t.Run("dangling reference resolves to fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "deleted").Return(entities.ServiceDefinition{}, nil)

		if got := uc.ServiceLabel(context.Background(), "deleted"); got != ServiceFallbackLabel {
			t.Fatalf("expected fallback label, got %q", got)
		}
	})
}

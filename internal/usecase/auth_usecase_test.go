package usecase

import (
	"context"
	"errors"
	"testing"

	"assistencia_os/internal/domain/entities"
	mock_interfaces "assistencia_os/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("success persists session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewAuthUseCase(sessions)

		sessions.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).Return(nil)

		user, err := uc.Login(context.Background(), "adm@loja1.com", "123456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != "adm-loja-1" || user.Role != entities.RoleAdm || user.LojaID != "loja-1" {
			t.Fatalf("unexpected user: %+v", user)
		}
	})

	t.Run("email is case-insensitive and trimmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewAuthUseCase(sessions)

		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		user, err := uc.Login(context.Background(), "  ADM@Loja1.COM  ", "123456")
		if err != nil || user.ID != "adm-loja-1" {
			t.Fatalf("expected adm-loja-1, got %+v (%v)", user, err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := NewAuthUseCase(nil)
		_, err := uc.Login(context.Background(), "adm@loja1.com", "errada")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		uc := NewAuthUseCase(nil)
		_, err := uc.Login(context.Background(), "ninguem@loja1.com", "123456")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("broken session slot does not block login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewAuthUseCase(sessions)

		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		user, err := uc.Login(context.Background(), "gerente@sistema.com", "123456")
		if err != nil || user.ID != "geral" {
			t.Fatalf("expected login to succeed, got %+v (%v)", user, err)
		}
	})
}

func TestAuthUseCase_LoginAs(t *testing.T) {
	t.Run("picks first identity with role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewAuthUseCase(sessions)

		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		user, err := uc.LoginAs(context.Background(), entities.RoleTecnico)
		if err != nil || user.ID != "tec-loja-1" {
			t.Fatalf("expected tec-loja-1, got %+v (%v)", user, err)
		}
	})

	t.Run("gerente shortcut", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewAuthUseCase(sessions)

		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		user, err := uc.LoginAs(context.Background(), entities.RoleGerente)
		if err != nil || user.ID != "geral" || user.LojaID != "" {
			t.Fatalf("expected storeless gerente, got %+v (%v)", user, err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		uc := NewAuthUseCase(nil)
		_, err := uc.LoginAs(context.Background(), "faxineiro")
		if !errors.Is(err, ErrUnknownRole) {
			t.Fatalf("expected ErrUnknownRole, got %v", err)
		}
	})
}

func TestAuthUseCase_Logout(t *testing.T) {
	t.Run("clears session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewAuthUseCase(sessions)

		sessions.EXPECT().Clear(gomock.Any()).Return(nil)

		if err := uc.Logout(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("clear failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionRepository(ctrl)
		uc := NewAuthUseCase(sessions)

		sessions.EXPECT().Clear(gomock.Any()).Return(errors.New("disk full"))

		if err := uc.Logout(context.Background()); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	})
}

func TestAuthUseCase_Current(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sessions := mock_interfaces.NewMockISessionRepository(ctrl)
	uc := NewAuthUseCase(sessions)

	sessions.EXPECT().Get(gomock.Any()).Return(nil, nil)

	user, err := uc.Current(context.Background())
	if err != nil || user != nil {
		t.Fatalf("expected no session, got %+v (%v)", user, err)
	}
}

package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase/interfaces"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnknownRole        = errors.New("unknown role")
)

type mockUser struct {
	entities.User
	Senha string
}

// Static credential list. Plaintext comparison is a stated limitation of the
// mock login; a real deployment swaps this for a credential-verification
// collaborator without touching the rest of the portal.
var mockUsers = []mockUser{
	{User: entities.User{ID: "adm-loja-1", Nome: "Administrador Loja 1", Email: "adm@loja1.com", Role: entities.RoleAdm, LojaID: "loja-1"}, Senha: "123456"},
	{User: entities.User{ID: "tec-loja-1", Nome: "Técnico Loja 1", Email: "tecnico@loja1.com", Role: entities.RoleTecnico, LojaID: "loja-1"}, Senha: "123456"},
	{User: entities.User{ID: "cli-loja-1", Nome: "Cliente Loja 1", Email: "cliente@loja1.com", Role: entities.RoleCliente, LojaID: "loja-1", ClientID: "c1"}, Senha: "123456"},
	{User: entities.User{ID: "adm-loja-2", Nome: "Administrador Loja 2", Email: "adm@loja2.com", Role: entities.RoleAdm, LojaID: "loja-2"}, Senha: "123456"},
	{User: entities.User{ID: "tec-loja-2", Nome: "Técnico Loja 2", Email: "tecnico@loja2.com", Role: entities.RoleTecnico, LojaID: "loja-2"}, Senha: "123456"},
	{User: entities.User{ID: "geral", Nome: "Gerente Geral", Email: "gerente@sistema.com", Role: entities.RoleGerente}, Senha: "123456"},
}

// IAuthUseCase resolves and maintains the active session identity.
//
// A credential mismatch is a recoverable, user-facing condition, not a fault.
// A broken session slot never blocks the in-memory login; the failure is
// logged and the session simply won't survive a restart.

type IAuthUseCase interface {
	Login(ctx context.Context, email, senha string) (entities.User, error)
	LoginAs(ctx context.Context, role entities.UserRole) (entities.User, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*entities.User, error)
}

type AuthUseCase struct {
	sessions interfaces.ISessionRepository
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(sessions interfaces.ISessionRepository) *AuthUseCase {
	return &AuthUseCase{sessions: sessions}
}

func (u *AuthUseCase) Login(ctx context.Context, email, senha string) (entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	for _, mu := range mockUsers {
		if strings.ToLower(mu.Email) != email {
			continue
		}
		if mu.Senha != senha {
			break
		}
		u.persistSession(ctx, mu.User)
		return mu.User, nil
	}
	return entities.User{}, ErrInvalidCredentials
}

// LoginAs is the quick per-role login shortcut used for internal testing.
func (u *AuthUseCase) LoginAs(ctx context.Context, role entities.UserRole) (entities.User, error) {
	if !role.Valid() {
		return entities.User{}, ErrUnknownRole
	}
	for _, mu := range mockUsers {
		if mu.Role == role {
			u.persistSession(ctx, mu.User)
			return mu.User, nil
		}
	}
	return entities.User{}, ErrUnknownRole
}

func (u *AuthUseCase) Logout(ctx context.Context) error {
	if err := u.sessions.Clear(ctx); err != nil {
		log.Printf("[auth][usecase] failed to clear session slot: %v", err)
	}
	return nil
}

func (u *AuthUseCase) Current(ctx context.Context) (*entities.User, error) {
	return u.sessions.Get(ctx)
}

func (u *AuthUseCase) persistSession(ctx context.Context, user entities.User) {
	if err := u.sessions.Save(ctx, user); err != nil {
		log.Printf("[auth][usecase] failed to persist session slot: %v", err)
	}
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingClientNome     = errors.New("missing client name")
	ErrMissingClientTelefone = errors.New("missing client phone")
	ErrMissingDeviceClient   = errors.New("missing device client")
	ErrMissingDeviceTipo     = errors.New("missing device type")
	ErrMissingDeviceMarca    = errors.New("missing device brand")
	ErrMissingDeviceModelo   = errors.New("missing device model")
)

type ClientInput struct {
	Nome               string
	TelefonePrincipal  string
	TelefoneSecundario string
	Email              string
	CpfCnpj            string
}

type DeviceInput struct {
	ClientID  string
	Tipo      string
	Marca     string
	Modelo    string
	Cor       string
	ImeiSerie string
}

// IRegistryUseCase owns client and device intake. Both collections are
// append-only in the current portal scope: created at intake, never deleted.

type IRegistryUseCase interface {
	ListClients(ctx context.Context, actor *entities.User) ([]entities.Client, error)
	CreateClient(ctx context.Context, actor *entities.User, in ClientInput) (entities.Client, error)
	ListDevices(ctx context.Context, actor *entities.User) ([]entities.Device, error)
	CreateDevice(ctx context.Context, actor *entities.User, in DeviceInput) (entities.Device, error)
	ListStores(ctx context.Context) ([]entities.Store, error)
}

type RegistryUseCase struct {
	clients interfaces.IClientRepository
	devices interfaces.IDeviceRepository
	stores  interfaces.IStoreRepository
}

var _ IRegistryUseCase = (*RegistryUseCase)(nil)

func NewRegistryUseCase(clients interfaces.IClientRepository, devices interfaces.IDeviceRepository, stores interfaces.IStoreRepository) *RegistryUseCase {
	return &RegistryUseCase{clients: clients, devices: devices, stores: stores}
}

func (u *RegistryUseCase) ListClients(ctx context.Context, actor *entities.User) ([]entities.Client, error) {
	clients, err := u.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	return ScopeClients(actor, clients), nil
}

func (u *RegistryUseCase) CreateClient(ctx context.Context, actor *entities.User, in ClientInput) (entities.Client, error) {
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		return entities.Client{}, ErrMissingClientNome
	}
	telefone := strings.TrimSpace(in.TelefonePrincipal)
	if telefone == "" {
		return entities.Client{}, ErrMissingClientTelefone
	}

	c := entities.Client{
		ID:                 uuid.NewString(),
		Nome:               nome,
		TelefonePrincipal:  telefone,
		TelefoneSecundario: strings.TrimSpace(in.TelefoneSecundario),
		Email:              strings.TrimSpace(in.Email),
		CpfCnpj:            strings.TrimSpace(in.CpfCnpj),
		LojaID:             actorLojaID(actor),
	}
	return u.clients.Create(ctx, c)
}

func (u *RegistryUseCase) ListDevices(ctx context.Context, actor *entities.User) ([]entities.Device, error) {
	devices, err := u.devices.List(ctx)
	if err != nil {
		return nil, err
	}
	return ScopeDevices(actor, devices), nil
}

func (u *RegistryUseCase) CreateDevice(ctx context.Context, actor *entities.User, in DeviceInput) (entities.Device, error) {
	if strings.TrimSpace(in.ClientID) == "" {
		return entities.Device{}, ErrMissingDeviceClient
	}
	if strings.TrimSpace(in.Tipo) == "" {
		return entities.Device{}, ErrMissingDeviceTipo
	}
	if strings.TrimSpace(in.Marca) == "" {
		return entities.Device{}, ErrMissingDeviceMarca
	}
	if strings.TrimSpace(in.Modelo) == "" {
		return entities.Device{}, ErrMissingDeviceModelo
	}

	d := entities.Device{
		ID:        uuid.NewString(),
		ClientID:  strings.TrimSpace(in.ClientID),
		Tipo:      strings.TrimSpace(in.Tipo),
		Marca:     strings.TrimSpace(in.Marca),
		Modelo:    strings.TrimSpace(in.Modelo),
		Cor:       strings.TrimSpace(in.Cor),
		ImeiSerie: strings.TrimSpace(in.ImeiSerie),
		LojaID:    actorLojaID(actor),
	}
	return u.devices.Create(ctx, d)
}

func (u *RegistryUseCase) ListStores(ctx context.Context) ([]entities.Store, error) {
	return u.stores.List(ctx)
}

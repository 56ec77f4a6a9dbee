package usecase

import (
	"testing"

	"assistencia_os/internal/domain/entities"
)

func TestScopeClients(t *testing.T) {
	clients := []entities.Client{
		{ID: "c1", LojaID: "loja-1"},
		{ID: "c2", LojaID: "loja-1"},
		{ID: "c3", LojaID: "loja-2"},
	}

	t.Run("gerente sees all", func(t *testing.T) {
		actor := &entities.User{ID: "geral", Role: entities.RoleGerente}
		if got := ScopeClients(actor, clients); len(got) != 3 {
			t.Fatalf("expected 3, got %d", len(got))
		}
	})

	t.Run("store identity sees own store", func(t *testing.T) {
		actor := &entities.User{ID: "adm-loja-2", Role: entities.RoleAdm, LojaID: "loja-2"}
		got := ScopeClients(actor, clients)
		if len(got) != 1 || got[0].ID != "c3" {
			t.Fatalf("expected only c3, got %+v", got)
		}
	})

	t.Run("nil actor passes through", func(t *testing.T) {
		if got := ScopeClients(nil, clients); len(got) != 3 {
			t.Fatalf("expected 3, got %d", len(got))
		}
	})

	t.Run("storeless non-gerente passes through", func(t *testing.T) {
		actor := &entities.User{ID: "x", Role: entities.RoleAdm}
		if got := ScopeClients(actor, clients); len(got) != 3 {
			t.Fatalf("expected 3, got %d", len(got))
		}
	})
}

func TestScopeDevices(t *testing.T) {
	devices := []entities.Device{
		{ID: "d1", LojaID: "loja-1"},
		{ID: "d2", LojaID: "loja-2"},
	}
	actor := &entities.User{ID: "tec-loja-1", Role: entities.RoleTecnico, LojaID: "loja-1"}
	got := ScopeDevices(actor, devices)
	if len(got) != 1 || got[0].ID != "d1" {
		t.Fatalf("expected only d1, got %+v", got)
	}
}

func TestScopeServices(t *testing.T) {
	services := []entities.ServiceDefinition{
		{ID: "s1", LojaID: "loja-1"},
		{ID: "s2", LojaID: "loja-2"},
	}
	actor := &entities.User{ID: "adm-loja-1", Role: entities.RoleAdm, LojaID: "loja-1"}
	got := ScopeServices(actor, services)
	if len(got) != 1 || got[0].ID != "s1" {
		t.Fatalf("expected only s1, got %+v", got)
	}
}

func TestOrderVisible(t *testing.T) {
	order := entities.ServiceOrder{ID: "os-1", LojaID: "loja-1", ClientID: "c1", TecnicoID: "tec-loja-1"}

	cases := []struct {
		name  string
		actor *entities.User
		want  bool
	}{
		{"nil actor", nil, true},
		{"gerente", &entities.User{ID: "geral", Role: entities.RoleGerente}, true},
		{"same-store adm", &entities.User{ID: "adm-loja-1", Role: entities.RoleAdm, LojaID: "loja-1"}, true},
		{"other-store adm", &entities.User{ID: "adm-loja-2", Role: entities.RoleAdm, LojaID: "loja-2"}, false},
		{"owning client", &entities.User{ID: "cli", Role: entities.RoleCliente, LojaID: "loja-1", ClientID: "c1"}, true},
		{"other client", &entities.User{ID: "cli", Role: entities.RoleCliente, LojaID: "loja-1", ClientID: "c2"}, false},
		{"assigned technician", &entities.User{ID: "tec-loja-1", Role: entities.RoleTecnico, LojaID: "loja-1"}, true},
		{"other technician", &entities.User{ID: "tec-outro", Role: entities.RoleTecnico, LojaID: "loja-1"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := OrderVisible(c.actor, order); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestScopeOrdersDoesNotMutateInput(t *testing.T) {
	orders := []entities.ServiceOrder{
		{ID: "os-1", LojaID: "loja-1"},
		{ID: "os-2", LojaID: "loja-2"},
	}
	actor := &entities.User{ID: "adm-loja-1", Role: entities.RoleAdm, LojaID: "loja-1"}
	_ = ScopeOrders(actor, orders)
	if orders[0].ID != "os-1" || orders[1].ID != "os-2" {
		t.Fatalf("input slice mutated: %+v", orders)
	}
}

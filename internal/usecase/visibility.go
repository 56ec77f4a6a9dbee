package usecase

import "assistencia_os/internal/domain/entities"

// Visibility rules: pure functions from (full collection, identity) to the
// scoped view. Nothing here mutates; every call returns a fresh slice.
//
// Priority order:
//  1. the cross-store gerente sees everything, unscoped;
//  2. an identity bound to a store sees only that store's records;
//  3. orders are further narrowed by role (cliente sees own orders, tecnico
//     sees assigned orders, store adm stops at store scope).
//
// An identity with no bound store that is not a gerente passes through
// unfiltered. That defensive fallback is deliberate, kept from the observed
// behavior; do not "fix" it into an empty view.

func ScopeClients(actor *entities.User, clients []entities.Client) []entities.Client {
	if passThrough(actor) {
		return append([]entities.Client(nil), clients...)
	}
	out := make([]entities.Client, 0, len(clients))
	for _, c := range clients {
		if c.LojaID == actor.LojaID {
			out = append(out, c)
		}
	}
	return out
}

func ScopeDevices(actor *entities.User, devices []entities.Device) []entities.Device {
	if passThrough(actor) {
		return append([]entities.Device(nil), devices...)
	}
	out := make([]entities.Device, 0, len(devices))
	for _, d := range devices {
		if d.LojaID == actor.LojaID {
			out = append(out, d)
		}
	}
	return out
}

func ScopeServices(actor *entities.User, services []entities.ServiceDefinition) []entities.ServiceDefinition {
	if passThrough(actor) {
		return append([]entities.ServiceDefinition(nil), services...)
	}
	out := make([]entities.ServiceDefinition, 0, len(services))
	for _, s := range services {
		if s.LojaID == actor.LojaID {
			out = append(out, s)
		}
	}
	return out
}

func ScopeOrders(actor *entities.User, orders []entities.ServiceOrder) []entities.ServiceOrder {
	out := make([]entities.ServiceOrder, 0, len(orders))
	for _, o := range orders {
		if OrderVisible(actor, o) {
			out = append(out, o)
		}
	}
	return out
}

// OrderVisible applies the order-specific narrowing for one record.
func OrderVisible(actor *entities.User, o entities.ServiceOrder) bool {
	if actor == nil || actor.Gerente() {
		return true
	}
	if actor.LojaID != "" && o.LojaID != actor.LojaID {
		return false
	}
	switch actor.Role {
	case entities.RoleCliente:
		if actor.ClientID != "" && o.ClientID != actor.ClientID {
			return false
		}
	case entities.RoleTecnico:
		if o.TecnicoID != actor.ID {
			return false
		}
	}
	return true
}

func passThrough(actor *entities.User) bool {
	return actor == nil || actor.Gerente() || actor.LojaID == ""
}

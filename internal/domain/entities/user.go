package entities

// UserRole is the identity role vocabulary other collaborators (routing,
// layout) depend on. Exactly four roles exist.
type UserRole string

const (
	RoleCliente UserRole = "cliente"
	RoleTecnico UserRole = "tecnico"
	RoleAdm     UserRole = "adm"
	RoleGerente UserRole = "gerente"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleCliente, RoleTecnico, RoleAdm, RoleGerente:
		return true
	}
	return false
}

// User is the resolved session identity consumed by the visibility rules.
//
// LojaID is empty for the cross-store gerente, who sees every store.
// ClientID links a cliente identity to its Client record so the order list
// can be narrowed to that client's own orders.
type User struct {
	ID       string   `json:"id"`
	Nome     string   `json:"nome"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
	LojaID   string   `json:"lojaId,omitempty"`
	ClientID string   `json:"clientId,omitempty"`
}

// Gerente reports whether the identity has cross-store visibility.
func (u *User) Gerente() bool {
	return u != nil && u.Role == RoleGerente
}

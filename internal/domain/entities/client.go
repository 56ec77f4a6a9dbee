package entities

// Client is a person or organization that owns devices and commissions
// service orders. Clients are created at intake and never deleted.
type Client struct {
	ID                 string `json:"id"`
	Nome               string `json:"nome"`
	TelefonePrincipal  string `json:"telefonePrincipal"`
	TelefoneSecundario string `json:"telefoneSecundario,omitempty"`
	Email              string `json:"email,omitempty"`
	CpfCnpj            string `json:"cpfCnpj,omitempty"`
	LojaID             string `json:"lojaId"`
}

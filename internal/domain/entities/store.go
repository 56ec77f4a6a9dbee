package entities

// Store is the organizational scope (one physical shop). Used only as a
// scoping key by the visibility rules; never mutated by the portal.
type Store struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone,omitempty"`
	Endereco string `json:"endereco,omitempty"`
}

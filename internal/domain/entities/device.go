package entities

// Device is a physical item belonging to exactly one client. Orders reference
// devices but never own them.
type Device struct {
	ID        string `json:"id"`
	ClientID  string `json:"clientId"`
	Tipo      string `json:"tipo"`
	Marca     string `json:"marca"`
	Modelo    string `json:"modelo"`
	Cor       string `json:"cor,omitempty"`
	ImeiSerie string `json:"imeiSerie,omitempty"`
	LojaID    string `json:"lojaId"`
}

// Descricao renders the "Tipo Marca Modelo" display string used on listing
// screens and the CSV export.
func (d Device) Descricao() string {
	out := ""
	for _, part := range []string{d.Tipo, d.Marca, d.Modelo} {
		if part == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += part
	}
	return out
}

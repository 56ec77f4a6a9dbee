package request

// ServiceRequest is used for both creation and update of catalog entries;
// only name and base value are editable.
type ServiceRequest struct {
	Nome      string  `json:"nome" binding:"required"`
	ValorBase float64 `json:"valorBase"`
}

type ClientRequest struct {
	Nome               string `json:"nome" binding:"required"`
	TelefonePrincipal  string `json:"telefonePrincipal" binding:"required"`
	TelefoneSecundario string `json:"telefoneSecundario"`
	Email              string `json:"email"`
	CpfCnpj            string `json:"cpfCnpj"`
}

type DeviceRequest struct {
	ClientID  string `json:"clientId" binding:"required"`
	Tipo      string `json:"tipo" binding:"required"`
	Marca     string `json:"marca" binding:"required"`
	Modelo    string `json:"modelo" binding:"required"`
	Cor       string `json:"cor"`
	ImeiSerie string `json:"imeiSerie"`
}

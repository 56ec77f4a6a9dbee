package response

import "assistencia_os/internal/domain/entities"

type UserResponse struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	LojaID   string `json:"lojaId,omitempty"`
	ClientID string `json:"clientId,omitempty"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Nome:     u.Nome,
		Email:    u.Email,
		Role:     string(u.Role),
		LojaID:   u.LojaID,
		ClientID: u.ClientID,
	}
}

type ClientResponse struct {
	ID                 string `json:"id"`
	Nome               string `json:"nome"`
	TelefonePrincipal  string `json:"telefonePrincipal"`
	TelefoneSecundario string `json:"telefoneSecundario,omitempty"`
	Email              string `json:"email,omitempty"`
	CpfCnpj            string `json:"cpfCnpj,omitempty"`
	LojaID             string `json:"lojaId"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse(c)
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}

type DeviceResponse struct {
	ID        string `json:"id"`
	ClientID  string `json:"clientId"`
	Tipo      string `json:"tipo"`
	Marca     string `json:"marca"`
	Modelo    string `json:"modelo"`
	Cor       string `json:"cor,omitempty"`
	ImeiSerie string `json:"imeiSerie,omitempty"`
	LojaID    string `json:"lojaId"`
	Descricao string `json:"descricao"`
}

func FromDevice(d entities.Device) DeviceResponse {
	return DeviceResponse{
		ID:        d.ID,
		ClientID:  d.ClientID,
		Tipo:      d.Tipo,
		Marca:     d.Marca,
		Modelo:    d.Modelo,
		Cor:       d.Cor,
		ImeiSerie: d.ImeiSerie,
		LojaID:    d.LojaID,
		Descricao: d.Descricao(),
	}
}

func FromDevices(devices []entities.Device) []DeviceResponse {
	out := make([]DeviceResponse, 0, len(devices))
	for _, d := range devices {
		out = append(out, FromDevice(d))
	}
	return out
}

type ServiceResponse struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	ValorBase float64 `json:"valorBase"`
	LojaID    string  `json:"lojaId"`
}

func FromService(s entities.ServiceDefinition) ServiceResponse {
	return ServiceResponse(s)
}

func FromServices(services []entities.ServiceDefinition) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}

type StoreResponse struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone,omitempty"`
	Endereco string `json:"endereco,omitempty"`
}

func FromStores(stores []entities.Store) []StoreResponse {
	out := make([]StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, StoreResponse(s))
	}
	return out
}

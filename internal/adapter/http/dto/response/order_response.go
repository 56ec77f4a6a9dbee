package response

import (
	"time"

	"assistencia_os/internal/domain/entities"
)

type OrderItemResponse struct {
	ID        string  `json:"id"`
	ServiceID string  `json:"serviceId"`
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
}

type OrderLogResponse struct {
	ID        string    `json:"id"`
	DataHora  time.Time `json:"dataHora"`
	UsuarioID string    `json:"usuarioId"`
	Acao      string    `json:"acao"`
	Descricao string    `json:"descricao"`
}

// OrderResponse mirrors the aggregate plus the display labels the listing
// screens need, so the front-end never re-implements the label tables.
type OrderResponse struct {
	ID     string `json:"id"`
	Numero string `json:"numero"`

	ClientID  string `json:"clientId"`
	DeviceID  string `json:"deviceId"`
	TecnicoID string `json:"tecnicoId"`
	LojaID    string `json:"lojaId"`

	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
	Prioridade  string `json:"prioridade,omitempty"`

	DataAbertura  time.Time  `json:"dataAbertura"`
	DataPrevisao  *time.Time `json:"dataPrevisao,omitempty"`
	DataConclusao *time.Time `json:"dataConclusao,omitempty"`

	DefeitoRelatado     string `json:"defeitoRelatadoCliente"`
	LaudoTecnico        string `json:"laudoTecnico,omitempty"`
	ObservacoesInternas string `json:"observacoesInternas,omitempty"`

	Itens      []OrderItemResponse `json:"itens"`
	Subtotal   float64             `json:"subtotal"`
	TotalFinal float64             `json:"totalFinal"`

	StatusPagamento      string     `json:"statusPagamento"`
	StatusPagamentoLabel string     `json:"statusPagamentoLabel"`
	FormaPagamento       string     `json:"formaPagamento,omitempty"`
	ValorPago            float64    `json:"valorPago"`
	DataPagamento        *time.Time `json:"dataPagamento,omitempty"`

	Logs []OrderLogResponse `json:"logs"`
}

func FromServiceOrder(o entities.ServiceOrder) OrderResponse {
	payStatus := o.StatusPagamento
	if payStatus == "" {
		payStatus = entities.PaymentStatusNaoInformado
	}

	itens := make([]OrderItemResponse, 0, len(o.Itens))
	for _, it := range o.Itens {
		itens = append(itens, OrderItemResponse(it))
	}

	return OrderResponse{
		ID:                   o.ID,
		Numero:               o.Numero,
		ClientID:             o.ClientID,
		DeviceID:             o.DeviceID,
		TecnicoID:            o.TecnicoID,
		LojaID:               o.LojaID,
		Status:               string(o.Status),
		StatusLabel:          o.Status.Label(),
		Prioridade:           string(o.Prioridade),
		DataAbertura:         o.DataAbertura,
		DataPrevisao:         o.DataPrevisao,
		DataConclusao:        o.DataConclusao,
		DefeitoRelatado:      o.DefeitoRelatado,
		LaudoTecnico:         o.LaudoTecnico,
		ObservacoesInternas:  o.ObservacoesInternas,
		Itens:                itens,
		Subtotal:             o.Subtotal,
		TotalFinal:           o.TotalFinal,
		StatusPagamento:      string(payStatus),
		StatusPagamentoLabel: payStatus.Label(),
		FormaPagamento:       o.FormaPagamento,
		ValorPago:            o.ValorPago,
		DataPagamento:        o.DataPagamento,
		Logs:                 FromServiceOrderLogs(o.Logs),
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}

func FromServiceOrderLogs(logs []entities.ServiceOrderLog) []OrderLogResponse {
	out := make([]OrderLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, OrderLogResponse(l))
	}
	return out
}

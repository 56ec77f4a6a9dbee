package entities

import "time"

// Priority of a service order. Optional; most orders are "normal".
type Priority string

const (
	PriorityNormal  Priority = "normal"
	PriorityUrgente Priority = "urgente"
)

// ServiceOrderItem is one billable line of an order.
type ServiceOrderItem struct {
	ID        string  `json:"id"`
	ServiceID string  `json:"serviceId"`
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
}

// ServiceOrder is the central aggregate of the portal: one repair ticket from
// intake to delivery.
//
// Storage model (state snapshot slot):
//   - persisted verbatim inside the "orders" array of the JSON state slot,
//     field names matching the shapes the front-end stores locally.
//
// Monetary representation:
//   - Subtotal is the sum of item values; TotalFinal defaults to Subtotal and
//     is adjusted by Desconto/Acrescimo when present.
//   - ValorPago is kept inside [0, TotalFinal] by the payment reconciliation
//     in the orders usecase; it is never written directly by handlers.
type ServiceOrder struct {
	ID     string `json:"id"`
	Numero string `json:"numero"`

	ClientID  string `json:"clientId"`
	DeviceID  string `json:"deviceId"`
	TecnicoID string `json:"tecnicoId"`
	LojaID    string `json:"lojaId"`

	Status     OrderStatus `json:"status"`
	Prioridade Priority    `json:"prioridade,omitempty"`

	DataAbertura  time.Time  `json:"dataAbertura"`
	DataPrevisao  *time.Time `json:"dataPrevisao,omitempty"`
	DataConclusao *time.Time `json:"dataConclusao,omitempty"`

	DefeitoRelatado     string `json:"defeitoRelatadoCliente"`
	LaudoTecnico        string `json:"laudoTecnico,omitempty"`
	ObservacoesInternas string `json:"observacoesInternas,omitempty"`

	Itens      []ServiceOrderItem `json:"itens"`
	Subtotal   float64            `json:"subtotal"`
	Desconto   float64            `json:"desconto,omitempty"`
	Acrescimo  float64            `json:"acrescimo,omitempty"`
	TotalFinal float64            `json:"totalFinal"`

	StatusPagamento PaymentStatus `json:"statusPagamento,omitempty"`
	FormaPagamento  string        `json:"formaPagamento,omitempty"`
	ValorPago       float64       `json:"valorPago,omitempty"`
	DataPagamento   *time.Time    `json:"dataPagamento,omitempty"`

	Logs []ServiceOrderLog `json:"logs,omitempty"`
}

// Total returns the effective amount owed for the order.
func (o ServiceOrder) Total() float64 {
	if o.TotalFinal > 0 {
		return o.TotalFinal
	}
	return o.Subtotal
}

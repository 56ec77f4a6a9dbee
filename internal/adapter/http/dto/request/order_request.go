package request

import "strings"

// CreateOrderRequest is the intake payload for a new service order. The
// field names match the shapes the front-end forms post.
type CreateOrderRequest struct {
	ClientID        string  `json:"clientId" binding:"required"`
	DeviceID        string  `json:"deviceId" binding:"required"`
	ServiceID       string  `json:"serviceId" binding:"required"`
	Valor           float64 `json:"valor"`
	DefeitoRelatado string  `json:"defeitoRelatadoCliente" binding:"required"`
	Observacoes     string  `json:"observacoes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateLaudoRequest carries the technician report verbatim; an empty laudo
// is a valid update (it clears the field).
type UpdateLaudoRequest struct {
	LaudoTecnico string `json:"laudoTecnico"`
}

// UpdatePaymentRequest distinguishes "field absent" from "explicit zero" via
// pointers; the reconciliation rules treat the two differently.
type UpdatePaymentRequest struct {
	StatusPagamento string   `json:"statusPagamento" binding:"required"`
	FormaPagamento  *string  `json:"formaPagamento"`
	ValorPago       *float64 `json:"valorPago"`
}

func (r UpdateStatusRequest) ResolveStatus() string {
	return strings.TrimSpace(r.Status)
}

func (r UpdatePaymentRequest) ResolveStatus() string {
	return strings.TrimSpace(r.StatusPagamento)
}

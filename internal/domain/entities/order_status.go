package entities

// OrderStatus represents the workflow stage of a service order (OS).
//
// Domain notes:
//   - The portal keeps the historical permissive behavior: any status can be
//     set from any other. The transition table below lists every edge
//     explicitly so the permissiveness is documented intent, not a missing
//     guard. AllowedTransitions is consulted only to distinguish "known
//     status" from garbage input.

type OrderStatus string

const (
	OrderStatusAberta               OrderStatus = "aberta"
	OrderStatusDiagnostico          OrderStatus = "diagnostico"
	OrderStatusAguardandoAprovacao  OrderStatus = "aguardando_aprovacao"
	OrderStatusAguardandoPeca       OrderStatus = "aguardando_peca"
	OrderStatusEmAndamento          OrderStatus = "em_andamento"
	OrderStatusFinalizada           OrderStatus = "finalizada"
	OrderStatusEntregue             OrderStatus = "entregue"
	OrderStatusCancelada            OrderStatus = "cancelada"
)

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusAberta:              "Aberta",
	OrderStatusDiagnostico:         "Em diagnóstico",
	OrderStatusAguardandoAprovacao: "Aguardando aprovação",
	OrderStatusAguardandoPeca:      "Aguardando peça",
	OrderStatusEmAndamento:         "Em andamento",
	OrderStatusFinalizada:          "Finalizada",
	OrderStatusEntregue:            "Entregue",
	OrderStatusCancelada:           "Cancelada",
}

// AllOrderStatuses lists every known status in workflow order.
var AllOrderStatuses = []OrderStatus{
	OrderStatusAberta,
	OrderStatusDiagnostico,
	OrderStatusAguardandoAprovacao,
	OrderStatusAguardandoPeca,
	OrderStatusEmAndamento,
	OrderStatusFinalizada,
	OrderStatusEntregue,
	OrderStatusCancelada,
}

// AllowedTransitions maps each status to the statuses reachable from it.
// Every edge is allowed today (see domain notes above).
var AllowedTransitions = func() map[OrderStatus][]OrderStatus {
	m := make(map[OrderStatus][]OrderStatus, len(AllOrderStatuses))
	for _, from := range AllOrderStatuses {
		for _, to := range AllOrderStatuses {
			if from != to {
				m[from] = append(m[from], to)
			}
		}
	}
	return m
}()

func (s OrderStatus) Valid() bool {
	_, ok := orderStatusLabels[s]
	return ok
}

// Terminal reports whether the status closes the order workflow.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusFinalizada, OrderStatusEntregue, OrderStatusCancelada:
		return true
	}
	return false
}

// Label returns the human-readable label used by listing screens and the CSV
// export.
func (s OrderStatus) Label() string {
	if l, ok := orderStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

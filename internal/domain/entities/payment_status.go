package entities

// PaymentStatus represents the payment situation of a service order.
//
// "cortesia" means the order is settled without any financial payment; the
// reconciliation in the orders usecase forces the paid value to zero for it.

type PaymentStatus string

const (
	PaymentStatusNaoInformado PaymentStatus = "nao_informado"
	PaymentStatusPendente     PaymentStatus = "pendente"
	PaymentStatusPagoParcial  PaymentStatus = "pago_parcial"
	PaymentStatusPago         PaymentStatus = "pago"
	PaymentStatusCortesia     PaymentStatus = "cortesia"
)

var paymentStatusLabels = map[PaymentStatus]string{
	PaymentStatusNaoInformado: "Não informado",
	PaymentStatusPendente:     "Pendente",
	PaymentStatusPagoParcial:  "Pago parcial",
	PaymentStatusPago:         "Pago",
	PaymentStatusCortesia:     "Cortesia",
}

func (s PaymentStatus) Valid() bool {
	_, ok := paymentStatusLabels[s]
	return ok
}

func (s PaymentStatus) Label() string {
	if l, ok := paymentStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

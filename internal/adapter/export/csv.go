// Package export renders the currently visible order list as the
// spreadsheet-friendly CSV download offered on the orders screens.
package export

import (
	"strconv"
	"strings"
	"time"

	"assistencia_os/internal/domain/entities"
)

// Fixed column set of the export. Order matters; spreadsheet templates on the
// store side depend on it.
var csvHeader = []string{
	"NumeroOS",
	"StatusOS",
	"StatusPagamento",
	"ClienteNome",
	"ClienteTelefone",
	"Equipamento",
	"ValorTotal",
	"ValorPago",
	"DataAbertura",
	"DataConclusao",
	"DataPagamento",
}

// OrdersCSV renders the given (already visibility-filtered) orders as a
// semicolon-delimited, UTF-8-BOM-prefixed CSV. Every field is quoted with
// doubled inner quotes; decimals use a comma separator and dates are
// dd/mm/yyyy. Unresolvable client/device references become empty fields.
func OrdersCSV(orders []entities.ServiceOrder, clients []entities.Client, devices []entities.Device) []byte {
	clientByID := make(map[string]entities.Client, len(clients))
	for _, c := range clients {
		clientByID[c.ID] = c
	}
	deviceByID := make(map[string]entities.Device, len(devices))
	for _, d := range devices {
		deviceByID[d.ID] = d
	}

	var b strings.Builder
	b.WriteString("\ufeff")
	writeRow(&b, csvHeader)

	for _, o := range orders {
		cliente := clientByID[o.ClientID]
		device := deviceByID[o.DeviceID]

		payStatus := o.StatusPagamento
		if payStatus == "" {
			payStatus = entities.PaymentStatusNaoInformado
		}

		writeRow(&b, []string{
			o.Numero,
			o.Status.Label(),
			payStatus.Label(),
			cliente.Nome,
			cliente.TelefonePrincipal,
			device.Descricao(),
			decimalComma(o.Total()),
			decimalComma(o.ValorPago),
			formatDate(&o.DataAbertura),
			formatDate(o.DataConclusao),
			formatDate(o.DataPagamento),
		})
	}

	return []byte(strings.TrimSuffix(b.String(), "\n"))
}

func writeRow(b *strings.Builder, cols []string) {
	for i, c := range cols {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(c, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// decimalComma keeps the shortest decimal representation, with a comma as
// the fractional separator (380 stays "380", 380.5 becomes "380,5").
func decimalComma(v float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(v, 'f', -1, 64), ".", ",")
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

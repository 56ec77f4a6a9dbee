package entities

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// Audit action vocabulary. Only the orders usecase writes log entries.
const (
	LogAcaoOSCriada            = "OS_CRIADA"
	LogAcaoStatusAlterado      = "STATUS_ALTERADO"
	LogAcaoLaudoAtualizado     = "LAUDO_ATUALIZADO"
	LogAcaoPagamentoAtualizado = "PAGAMENTO_ATUALIZADO"
)

// SystemUserID is recorded on audit entries when no identity is active.
const SystemUserID = "sistema"

// ServiceOrderLog is one immutable audit entry of a service order. Entries
// are append-only: never edited, reordered or removed.
type ServiceOrderLog struct {
	ID        string    `json:"id"`
	DataHora  time.Time `json:"dataHora"`
	UsuarioID string    `json:"usuarioId"`
	Acao      string    `json:"acao"`
	Descricao string    `json:"descricao"`
}

// NewServiceOrderLog builds an audit entry stamped with the current time.
// The id is time-based with a random suffix; uniqueness only matters for
// list rendering, it is not security-sensitive.
func NewServiceOrderLog(usuarioID, acao, descricao string) ServiceOrderLog {
	if usuarioID == "" {
		usuarioID = SystemUserID
	}
	now := time.Now().UTC()
	suffix := strconv.FormatUint(rand.Uint64()%(36*36*36*36*36*36), 36)
	return ServiceOrderLog{
		ID:        fmt.Sprintf("log-%d-%s", now.UnixMilli(), suffix),
		DataHora:  now,
		UsuarioID: usuarioID,
		Acao:      acao,
		Descricao: descricao,
	}
}

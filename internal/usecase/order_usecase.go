package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/infrastructure/storage"
	"assistencia_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrMissingClient        = errors.New("missing client")
	ErrMissingDevice        = errors.New("missing device")
	ErrMissingService       = errors.New("missing service")
	ErrMissingDefeito       = errors.New("missing reported defect")
	ErrInvalidOrderValor    = errors.New("invalid order value")
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

type CreateOrderInput struct {
	ClientID        string
	DeviceID        string
	ServiceID       string
	Valor           float64
	DefeitoRelatado string
	Observacoes     string
}

type UpdatePaymentInput struct {
	Status         entities.PaymentStatus
	FormaPagamento *string
	ValorPago      *float64
}

// IOrderUseCase is the service-order lifecycle engine: status transitions,
// payment reconciliation and audit-log emission for every mutation.
//
// Read operations apply the visibility rules for the acting identity, so a
// handler never sees an order outside the actor's scope.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, actor *entities.User, in CreateOrderInput) (entities.ServiceOrder, error)
	UpdateStatus(ctx context.Context, actor *entities.User, orderID string, status entities.OrderStatus) (entities.ServiceOrder, error)
	UpdateLaudo(ctx context.Context, actor *entities.User, orderID, laudo string) (entities.ServiceOrder, error)
	UpdatePayment(ctx context.Context, actor *entities.User, orderID string, in UpdatePaymentInput) (entities.ServiceOrder, error)
	List(ctx context.Context, actor *entities.User) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, actor *entities.User, id string) (entities.ServiceOrder, error)
	Logs(ctx context.Context, actor *entities.User, id string) ([]entities.ServiceOrderLog, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, actor *entities.User, in CreateOrderInput) (entities.ServiceOrder, error) {
	if strings.TrimSpace(in.ClientID) == "" {
		return entities.ServiceOrder{}, ErrMissingClient
	}
	if strings.TrimSpace(in.DeviceID) == "" {
		return entities.ServiceOrder{}, ErrMissingDevice
	}
	if strings.TrimSpace(in.ServiceID) == "" {
		return entities.ServiceOrder{}, ErrMissingService
	}
	if strings.TrimSpace(in.DefeitoRelatado) == "" {
		return entities.ServiceOrder{}, ErrMissingDefeito
	}
	if in.Valor < 0 {
		return entities.ServiceOrder{}, ErrInvalidOrderValor
	}

	lojaID := actorLojaID(actor)
	now := time.Now().UTC()

	o := entities.ServiceOrder{
		ID:                  uuid.NewString(),
		ClientID:            strings.TrimSpace(in.ClientID),
		DeviceID:            strings.TrimSpace(in.DeviceID),
		TecnicoID:           assignTecnico(actor, lojaID),
		LojaID:              lojaID,
		Status:              entities.OrderStatusAberta,
		DataAbertura:        now,
		DefeitoRelatado:     strings.TrimSpace(in.DefeitoRelatado),
		ObservacoesInternas: strings.TrimSpace(in.Observacoes),
		Itens: []entities.ServiceOrderItem{
			{
				ID:        uuid.NewString(),
				ServiceID: strings.TrimSpace(in.ServiceID),
				Descricao: "Serviço principal",
				Valor:     in.Valor,
			},
		},
		Subtotal:        in.Valor,
		TotalFinal:      in.Valor,
		StatusPagamento: entities.PaymentStatusNaoInformado,
		Logs: []entities.ServiceOrderLog{
			entities.NewServiceOrderLog(actorID(actor), entities.LogAcaoOSCriada, "Ordem de serviço criada."),
		},
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	log.Printf("[orders][usecase] created order id=%s numero=%s loja=%s", created.ID, created.Numero, created.LojaID)
	return created, nil
}

// UpdateStatus sets the workflow status. The transition table is permissive
// (every edge allowed, see entities.AllowedTransitions); the terminal
// statuses stamp DataConclusao exactly once.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, actor *entities.User, orderID string, status entities.OrderStatus) (entities.ServiceOrder, error) {
	if !status.Valid() {
		return entities.ServiceOrder{}, ErrInvalidOrderStatus
	}

	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	o.Status = status
	if status.Terminal() && o.DataConclusao == nil {
		now := time.Now().UTC()
		o.DataConclusao = &now
	}
	o.Logs = append(o.Logs, entities.NewServiceOrderLog(
		actorID(actor),
		entities.LogAcaoStatusAlterado,
		fmt.Sprintf("Status alterado para %q.", string(status)),
	))

	return u.saveOrder(ctx, o)
}

// UpdateLaudo stores the technician report verbatim. No content validation.
func (u *OrderUseCase) UpdateLaudo(ctx context.Context, actor *entities.User, orderID, laudo string) (entities.ServiceOrder, error) {
	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	o.LaudoTecnico = laudo
	o.Logs = append(o.Logs, entities.NewServiceOrderLog(
		actorID(actor),
		entities.LogAcaoLaudoAtualizado,
		"Laudo técnico atualizado.",
	))

	return u.saveOrder(ctx, o)
}

// UpdatePayment normalizes the payment fields. This is a reconciliation
// routine, not a setter: the resulting status/paid value can override the
// caller's literal input. Steps, in order:
//
//  1. start from the stored paid value unless an explicit one is supplied;
//  2. "pendente"/"nao_informado" without an explicit value reset it to zero;
//  3. "pago" with a zero value and a positive total assumes full payment;
//  4. "cortesia" forces the paid value to zero regardless of input;
//  5. outside cortesia, with a positive total, the status is reconciled
//     against the numbers: value >= total settles as "pago" (clamped to the
//     total); a partial value corrects pendente/nao_informado/pago to
//     "pago_parcial"; a zero value corrects "pago_parcial" back to
//     "pendente";
//  6. the payment date is stamped once for pago/pago_parcial/cortesia and
//     cleared for pendente/nao_informado;
//  7. one audit entry records the resulting status and formatted value.
func (u *OrderUseCase) UpdatePayment(ctx context.Context, actor *entities.User, orderID string, in UpdatePaymentInput) (entities.ServiceOrder, error) {
	if !in.Status.Valid() {
		return entities.ServiceOrder{}, ErrInvalidPaymentStatus
	}

	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	total := o.TotalFinal
	incoming := in.Status

	paid := o.ValorPago
	explicit := in.ValorPago != nil
	if explicit {
		paid = *in.ValorPago
	}
	if paid < 0 {
		paid = 0
	}
	if !explicit && (incoming == entities.PaymentStatusPendente || incoming == entities.PaymentStatusNaoInformado) {
		paid = 0
	}
	if incoming == entities.PaymentStatusPago && paid == 0 && total > 0 {
		paid = total
	}
	if incoming == entities.PaymentStatusCortesia {
		paid = 0
	}

	final := incoming
	if incoming != entities.PaymentStatusCortesia && total > 0 {
		switch {
		case paid >= total:
			final = entities.PaymentStatusPago
			paid = total
		case paid > 0:
			if incoming == entities.PaymentStatusPendente ||
				incoming == entities.PaymentStatusNaoInformado ||
				incoming == entities.PaymentStatusPago {
				final = entities.PaymentStatusPagoParcial
			}
		default:
			if incoming == entities.PaymentStatusPagoParcial {
				final = entities.PaymentStatusPendente
			}
		}
	}

	o.StatusPagamento = final
	o.ValorPago = paid
	if in.FormaPagamento != nil {
		o.FormaPagamento = strings.TrimSpace(*in.FormaPagamento)
	}

	switch final {
	case entities.PaymentStatusPago, entities.PaymentStatusPagoParcial, entities.PaymentStatusCortesia:
		if o.DataPagamento == nil {
			now := time.Now().UTC()
			o.DataPagamento = &now
		}
	case entities.PaymentStatusPendente, entities.PaymentStatusNaoInformado:
		o.DataPagamento = nil
	}

	o.Logs = append(o.Logs, entities.NewServiceOrderLog(
		actorID(actor),
		entities.LogAcaoPagamentoAtualizado,
		fmt.Sprintf("Pagamento marcado como %q (valor pago R$ %s).", string(final), FormatValor(paid)),
	))

	if final != incoming {
		log.Printf("[orders][usecase] payment status reconciled order=%s requested=%s resolved=%s valor_pago=%s",
			o.ID, incoming, final, FormatValor(paid))
	}

	return u.saveOrder(ctx, o)
}

func (u *OrderUseCase) List(ctx context.Context, actor *entities.User) ([]entities.ServiceOrder, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ScopeOrders(actor, orders), nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, actor *entities.User, id string) (entities.ServiceOrder, error) {
	o, err := u.loadOrder(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if !OrderVisible(actor, o) {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) Logs(ctx context.Context, actor *entities.User, id string) ([]entities.ServiceOrderLog, error) {
	o, err := u.GetByID(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return o.Logs, nil
}

// loadOrder resolves an order or fails with ErrOrderNotFound. The historical
// behavior silently ignored unknown ids on update; reporting the miss was an
// explicit decision here.
func (u *OrderUseCase) loadOrder(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) saveOrder(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	updated, err := u.repo.Update(ctx, o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if updated.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return updated, nil
}

func actorID(actor *entities.User) string {
	if actor == nil {
		return entities.SystemUserID
	}
	return actor.ID
}

func actorLojaID(actor *entities.User) string {
	if actor == nil || actor.LojaID == "" {
		return storage.SeedLoja1
	}
	return actor.LojaID
}

// assignTecnico keeps a technician creating an order as its assignee and
// falls back to the store's default technician otherwise.
func assignTecnico(actor *entities.User, lojaID string) string {
	if actor != nil && actor.Role == entities.RoleTecnico {
		return actor.ID
	}
	return "tec-" + lojaID
}

// FormatValor renders a monetary value with a comma decimal separator, two
// fractional digits, as shown on audit entries.
func FormatValor(v float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(v, 'f', 2, 64), ".", ",")
}

package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	request "assistencia_os/internal/adapter/http/dto/request"
	response "assistencia_os/internal/adapter/http/dto/response"
	"assistencia_os/internal/adapter/export"
	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase"
	"assistencia_os/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// OrderHandler handles HTTP requests for service orders. Every read goes
// through the visibility rules for the session identity; the CSV export
// consumes the same scoped views the list screens render.

type OrderHandler struct {
	orders   usecase.IOrderUseCase
	registry usecase.IRegistryUseCase
}

func NewOrderHandler(orders usecase.IOrderUseCase, registry usecase.IRegistryUseCase) *OrderHandler {
	return &OrderHandler{orders: orders, registry: registry}
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context(), currentUser(c))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	o, err := h.orders.GetByID(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func (h *OrderHandler) Logs(c *gin.Context) {
	logs, err := h.orders.Logs(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrderLogs(logs))
}

func (h *OrderHandler) Create(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	created, err := h.orders.CreateOrder(c.Request.Context(), currentUser(c), usecase.CreateOrderInput{
		ClientID:        payload.ClientID,
		DeviceID:        payload.DeviceID,
		ServiceID:       payload.ServiceID,
		Valor:           payload.Valor,
		DefeitoRelatado: payload.DefeitoRelatado,
		Observacoes:     payload.Observacoes,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[orders][handler] created numero=%s", created.Numero)

	c.JSON(http.StatusCreated, response.FromServiceOrder(created))
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.orders.UpdateStatus(c.Request.Context(), currentUser(c), c.Param("id"), entities.OrderStatus(payload.ResolveStatus()))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func (h *OrderHandler) UpdateLaudo(c *gin.Context) {
	var payload request.UpdateLaudoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.orders.UpdateLaudo(c.Request.Context(), currentUser(c), c.Param("id"), payload.LaudoTecnico)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

func (h *OrderHandler) UpdatePayment(c *gin.Context) {
	var payload request.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.orders.UpdatePayment(c.Request.Context(), currentUser(c), c.Param("id"), usecase.UpdatePaymentInput{
		Status:         entities.PaymentStatus(payload.ResolveStatus()),
		FormaPagamento: payload.FormaPagamento,
		ValorPago:      payload.ValorPago,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

// ExportCSV downloads the scoped order list as a CSV attachment.
func (h *OrderHandler) ExportCSV(c *gin.Context) {
	actor := currentUser(c)
	ctx := c.Request.Context()

	orders, err := h.orders.List(ctx, actor)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	clients, err := h.registry.ListClients(ctx, actor)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	devices, err := h.registry.ListDevices(ctx, actor)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filename := fmt.Sprintf("ordens-servico-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", export.OrdersCSV(orders, clients, devices))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingClient):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Selecione um cliente", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingDevice):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Selecione um equipamento", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingService):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Selecione um serviço", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingDefeito):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Descreva o defeito relatado", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderValor):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Valor do serviço inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderStatus), errors.Is(err, usecase.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"net/http"

	request "assistencia_os/internal/adapter/http/dto/request"
	response "assistencia_os/internal/adapter/http/dto/response"
	"assistencia_os/internal/usecase"
	"assistencia_os/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRegistryPayload = pkg.NewDomainErrorSimple("INVALID_REGISTRY_INPUT", "Invalid payload", http.StatusBadRequest)

// RegistryHandler handles client/device intake and the store listing.

type RegistryHandler struct {
	registry usecase.IRegistryUseCase
}

func NewRegistryHandler(registry usecase.IRegistryUseCase) *RegistryHandler {
	return &RegistryHandler{registry: registry}
}

func (h *RegistryHandler) ListClients(c *gin.Context) {
	clients, err := h.registry.ListClients(c.Request.Context(), currentUser(c))
	if err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

func (h *RegistryHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistryPayload.HTTPStatus, errInvalidRegistryPayload.ToHTTPError())
		return
	}

	created, err := h.registry.CreateClient(c.Request.Context(), currentUser(c), usecase.ClientInput{
		Nome:               payload.Nome,
		TelefonePrincipal:  payload.TelefonePrincipal,
		TelefoneSecundario: payload.TelefoneSecundario,
		Email:              payload.Email,
		CpfCnpj:            payload.CpfCnpj,
	})
	if err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(created))
}

func (h *RegistryHandler) ListDevices(c *gin.Context) {
	devices, err := h.registry.ListDevices(c.Request.Context(), currentUser(c))
	if err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDevices(devices))
}

func (h *RegistryHandler) CreateDevice(c *gin.Context) {
	var payload request.DeviceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistryPayload.HTTPStatus, errInvalidRegistryPayload.ToHTTPError())
		return
	}

	created, err := h.registry.CreateDevice(c.Request.Context(), currentUser(c), usecase.DeviceInput{
		ClientID:  payload.ClientID,
		Tipo:      payload.Tipo,
		Marca:     payload.Marca,
		Modelo:    payload.Modelo,
		Cor:       payload.Cor,
		ImeiSerie: payload.ImeiSerie,
	})
	if err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromDevice(created))
}

func (h *RegistryHandler) ListStores(c *gin.Context) {
	stores, err := h.registry.ListStores(c.Request.Context())
	if err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStores(stores))
}

func mapRegistryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingClientNome):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Informe o nome do cliente", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingClientTelefone):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Informe o telefone principal", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingDeviceClient),
		errors.Is(err, usecase.ErrMissingDeviceTipo),
		errors.Is(err, usecase.ErrMissingDeviceMarca),
		errors.Is(err, usecase.ErrMissingDeviceModelo):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Dados do equipamento incompletos", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

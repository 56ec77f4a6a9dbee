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

var errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)

// CatalogHandler handles the service catalog CRUD.

type CatalogHandler struct {
	catalog usecase.ICatalogUseCase
}

func NewCatalogHandler(catalog usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) List(c *gin.Context) {
	services, err := h.catalog.ListServices(c.Request.Context(), currentUser(c))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	created, err := h.catalog.CreateService(c.Request.Context(), currentUser(c), usecase.ServiceInput{
		Nome:      payload.Nome,
		ValorBase: payload.ValorBase,
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromService(created))
}

func (h *CatalogHandler) Update(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	updated, err := h.catalog.UpdateService(c.Request.Context(), c.Param("id"), usecase.ServiceInput{
		Nome:      payload.Nome,
		ValorBase: payload.ValorBase,
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(updated))
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.catalog.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingServiceNome):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Informe o nome do serviço", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidValorBase):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Valor base inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

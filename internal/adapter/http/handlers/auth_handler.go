package handlers

import (
	"errors"
	"log"
	"net/http"

	request "assistencia_os/internal/adapter/http/dto/request"
	response "assistencia_os/internal/adapter/http/dto/response"
	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase"
	"assistencia_os/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid login payload", http.StatusBadRequest)

// AuthHandler handles the mock session endpoints. Credentials are compared
// against the static user list; a mismatch is a 401, never a server fault.

type AuthHandler struct {
	auth usecase.IAuthUseCase
}

func NewAuthHandler(auth usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, err := h.auth.Login(c.Request.Context(), payload.Email, payload.Senha)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[auth][handler] login user=%s role=%s", user.ID, user.Role)

	c.JSON(http.StatusOK, response.FromUser(user))
}

// LoginAs is the role shortcut for internal testing.
func (h *AuthHandler) LoginAs(c *gin.Context) {
	var payload request.LoginAsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, err := h.auth.LoginAs(c.Request.Context(), entities.UserRole(payload.Role))
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context()); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		appErr := pkg.NewDomainErrorSimple("NO_SESSION", "No active session", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(*user))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "E-mail ou senha inválidos", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUnknownRole):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"assistencia_os/internal/adapter/http/handlers/mocks"
	"assistencia_os/internal/domain/entities"
	"assistencia_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRegistryHandler_CreateClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistryUseCase(ctrl)
		h := NewRegistryHandler(uc)

		r := gin.New()
		r.POST("/v1/clients", h.CreateClient)

		// binding:"required" rejects the payload before the usecase runs.
		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(`{"nome":"Maria"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistryUseCase(ctrl)
		h := NewRegistryHandler(uc)

		r := gin.New()
		r.POST("/v1/clients", h.CreateClient)

		uc.EXPECT().CreateClient(gomock.Any(), gomock.Any(), usecase.ClientInput{Nome: "Maria Souza", TelefonePrincipal: "11 99999-0000"}).
			Return(entities.Client{ID: "c-novo", Nome: "Maria Souza", TelefonePrincipal: "11 99999-0000", LojaID: "loja-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(`{"nome":"Maria Souza","telefonePrincipal":"11 99999-0000"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "c-novo") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestRegistryHandler_CreateDevice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRegistryUseCase(ctrl)
	h := NewRegistryHandler(uc)

	r := gin.New()
	r.POST("/v1/devices", h.CreateDevice)

	uc.EXPECT().CreateDevice(gomock.Any(), gomock.Any(), usecase.DeviceInput{ClientID: "c1", Tipo: "Celular", Marca: "Samsung", Modelo: "A54"}).
		Return(entities.Device{ID: "d-novo", ClientID: "c1", Tipo: "Celular", Marca: "Samsung", Modelo: "A54", LojaID: "loja-1"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/devices", bytes.NewBufferString(`{"clientId":"c1","tipo":"Celular","marca":"Samsung","modelo":"A54"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Celular Samsung A54") {
		t.Fatalf("expected device description, got %s", w.Body.String())
	}
}

func TestRegistryHandler_Lists(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("clients", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistryUseCase(ctrl)
		h := NewRegistryHandler(uc)

		r := gin.New()
		r.GET("/v1/clients", h.ListClients)

		uc.EXPECT().ListClients(gomock.Any(), gomock.Any()).Return([]entities.Client{{ID: "c1", Nome: "João Silva"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRegistryUseCase(ctrl)
		h := NewRegistryHandler(uc)

		r := gin.New()
		r.GET("/v1/stores", h.ListStores)

		uc.EXPECT().ListStores(gomock.Any()).Return([]entities.Store{{ID: "loja-1", Nome: "Assistência Centro"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/stores", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "loja-1") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

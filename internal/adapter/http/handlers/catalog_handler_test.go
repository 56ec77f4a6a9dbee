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

func TestCatalogHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative base value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.Create)

		uc.EXPECT().CreateService(gomock.Any(), gomock.Any(), usecase.ServiceInput{Nome: "Limpeza", ValorBase: -5}).
			Return(entities.ServiceDefinition{}, usecase.ErrInvalidValorBase)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"nome":"Limpeza","valorBase":-5}`))
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
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.Create)

		uc.EXPECT().CreateService(gomock.Any(), gomock.Any(), usecase.ServiceInput{Nome: "Troca de bateria", ValorBase: 200}).
			Return(entities.ServiceDefinition{ID: "s-novo", Nome: "Troca de bateria", ValorBase: 200, LojaID: "loja-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"nome":"Troca de bateria","valorBase":200}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "s-novo") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.PUT("/v1/services/:id", h.Update)

	uc.EXPECT().UpdateService(gomock.Any(), "s1", usecase.ServiceInput{Nome: "Limpeza geral", ValorBase: 130}).
		Return(entities.ServiceDefinition{ID: "s1", Nome: "Limpeza geral", ValorBase: 130}, nil)

	req := httptest.NewRequest(http.MethodPut, "/v1/services/s1", bytes.NewBufferString(`{"nome":"Limpeza geral","valorBase":130}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCatalogHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.DELETE("/v1/services/:id", h.Delete)

		uc.EXPECT().DeleteService(gomock.Any(), "ghost").Return(usecase.ErrServiceNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/services/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "SERVICE_NOT_FOUND") {
			t.Fatalf("expected SERVICE_NOT_FOUND code, got %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.DELETE("/v1/services/:id", h.Delete)

		uc.EXPECT().DeleteService(gomock.Any(), "s1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/services/s1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

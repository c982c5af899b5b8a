package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cobranca_facil/internal/adapter/http/handlers/mocks"
	"cobranca_facil/internal/domain/entities"
	"cobranca_facil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPayerHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayerUseCase(ctrl)
		h := NewPayerHandler(uc)

		r := gin.New()
		r.POST("/v1/payers", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/payers", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayerUseCase(ctrl)
		h := NewPayerHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "12345678901", "Maria", "").
			Return(entities.Payer{}, usecase.ErrPayerAlreadyExists)

		r := gin.New()
		r.POST("/v1/payers", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/payers",
			bytes.NewBufferString(`{"cpf_cnpj":"12345678901","name":"Maria"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayerUseCase(ctrl)
		h := NewPayerHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "12345678901", "Maria", "11999990000").
			Return(entities.Payer{CPFCNPJ: "12345678901", Name: "Maria", Phone: "11999990000"}, nil)

		r := gin.New()
		r.POST("/v1/payers", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/payers",
			bytes.NewBufferString(`{"cpf_cnpj":"12345678901","name":"Maria","phone":"11999990000"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if body["cpf_cnpj"] != "12345678901" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestPayerHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayerUseCase(ctrl)
		h := NewPayerHandler(uc)

		uc.EXPECT().GetByCPFCNPJ(gomock.Any(), "12345678901").
			Return(entities.Payer{}, usecase.ErrPayerNotFound)

		r := gin.New()
		r.GET("/v1/payers/:cpf_cnpj", h.Get)

		req := httptest.NewRequest(http.MethodGet, "/v1/payers/12345678901", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayerUseCase(ctrl)
		h := NewPayerHandler(uc)

		uc.EXPECT().GetByCPFCNPJ(gomock.Any(), "12345678901").
			Return(entities.Payer{}, errors.New("db down"))

		r := gin.New()
		r.GET("/v1/payers/:cpf_cnpj", h.Get)

		req := httptest.NewRequest(http.MethodGet, "/v1/payers/12345678901", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

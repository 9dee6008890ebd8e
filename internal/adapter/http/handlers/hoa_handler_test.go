package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"vindicia_gateway/internal/adapter/http/handlers/mocks"
	"vindicia_gateway/internal/domain/entities"
	"vindicia_gateway/internal/usecase"
	"vindicia_gateway/internal/usecase/requests"
)

func hoaRouter(h *HOAHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/hoa/authorize", h.InitiateAuthorize)
	r.POST("/v1/hoa/purchase", h.InitiatePurchase)
	r.POST("/v1/hoa/paymentmethods", h.InitiatePaymentMethod)
	r.POST("/v1/hoa/subscriptions", h.InitiateSubscription)
	r.POST("/v1/hoa/:session/complete", h.Complete)
	return r
}

func TestHOAHandler_InitiatePurchase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing redirect urls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGatewayUseCase(ctrl)
		r := hoaRouter(NewHOAHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/hoa/purchase",
			bytes.NewBufferString(`{"transaction":{"amount":"25.00","currency":"USD"}}`))
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
		uc := mocks.NewMockIGatewayUseCase(ctrl)
		r := hoaRouter(NewHOAHandler(uc))

		uc.EXPECT().InitiateHOA(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, hoa *requests.HOA) (entities.HOASession, error) {
				if hoa.Method != requests.HOAMethodPurchase {
					t.Errorf("unexpected method %q", hoa.Method)
				}
				if hoa.ReturnURL != "https://shop.example/return" {
					t.Errorf("unexpected return url %q", hoa.ReturnURL)
				}
				if hoa.IP == nil || *hoa.IP != "203.0.113.7" {
					t.Errorf("ip did not pass through: %v", hoa.IP)
				}
				return entities.HOASession{
					Reference: "ws-1",
					Method:    hoa.Method,
					Status:    entities.HOASessionStatusPending,
				}, nil
			})

		body := `{
			"return_url": "https://shop.example/return",
			"error_url": "https://shop.example/error",
			"ip": "203.0.113.7",
			"transaction": {"amount":"25.00","currency":"USD","payment_method_id":"pm-1"}
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/hoa/purchase", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["reference"] != "ws-1" || resp["status"] != "pending" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

func TestHOAHandler_InitiatePaymentMethod(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIGatewayUseCase(ctrl)
	r := hoaRouter(NewHOAHandler(uc))

	uc.EXPECT().InitiateHOA(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, hoa *requests.HOA) (entities.HOASession, error) {
			direct, ok := hoa.Direct.(*requests.CreatePaymentMethod)
			if !ok {
				t.Fatalf("unexpected direct request %T", hoa.Direct)
			}
			if !direct.Hosted {
				t.Error("hosted flag not set")
			}
			if !direct.ValidateCard {
				t.Error("validate flag not passed through")
			}
			return entities.HOASession{Reference: "ws-2", Method: hoa.Method}, nil
		})

	body := `{
		"return_url": "https://shop.example/return",
		"error_url": "https://shop.example/error",
		"validate": true,
		"payment_method": {"id":"pm-1","customer_id":"cust-1"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/hoa/paymentmethods", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHOAHandler_Complete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown session maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGatewayUseCase(ctrl)
		r := hoaRouter(NewHOAHandler(uc))

		uc.EXPECT().CompleteHOA(gomock.Any(), "ws-missing").Return(nil, usecase.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/hoa/ws-missing/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGatewayUseCase(ctrl)
		r := hoaRouter(NewHOAHandler(uc))

		uc.EXPECT().CompleteHOA(gomock.Any(), "ws-1").Return(&usecase.HOAResult{
			Session: entities.HOASession{
				Reference: "ws-1",
				Method:    requests.HOAMethodPurchase,
				Status:    entities.HOASessionStatusCompleted,
			},
			Transaction: &entities.Transaction{ID: "txn-1"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/hoa/ws-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		session := resp["session"].(map[string]any)
		if session["status"] != "completed" {
			t.Fatalf("unexpected session: %v", session)
		}
		tx := resp["transaction"].(map[string]any)
		if tx["id"] != "txn-1" {
			t.Fatalf("unexpected transaction: %v", tx)
		}
		if _, ok := resp["payment_method"]; ok {
			t.Fatalf("payment_method should be omitted: %v", resp)
		}
	})
}

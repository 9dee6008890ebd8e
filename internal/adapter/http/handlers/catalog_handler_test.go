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
)

func catalogRouter(h *CatalogHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/plans", h.CreatePlan)
	r.GET("/v1/plans/:id", h.GetPlan)
	r.POST("/v1/products", h.CreateProduct)
	r.GET("/v1/products/:id", h.GetProduct)
	r.POST("/v1/subscriptions", h.CreateSubscription)
	r.GET("/v1/subscriptions/:id", h.GetSubscription)
	r.DELETE("/v1/subscriptions/:id", h.CancelSubscription)
	return r
}

func TestCatalogHandler_CreatePlan(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIGatewayUseCase(ctrl)
	r := catalogRouter(NewCatalogHandler(uc))

	uc.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, p *entities.Plan) (*entities.Plan, error) {
			if p.Interval == nil || *p.Interval != "Month" {
				t.Errorf("unexpected plan: %+v", p)
			}
			if p.Prices == nil || p.Prices.Count() != 1 {
				t.Errorf("prices not bound: %+v", p.Prices)
			}
			p.Reference = "vid-1"
			return p, nil
		})

	body := `{"id":"plan-1","interval":"Month","interval_count":1,"prices":{"USD":"9.99"}}`
	req := httptest.NewRequest(http.MethodPost, "/v1/plans", bytes.NewBufferString(body))
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
	if resp["id"] != "plan-1" || resp["interval"] != "Month" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestCatalogHandler_GetPlan(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIGatewayUseCase(ctrl)
	r := catalogRouter(NewCatalogHandler(uc))

	interval := "Month"
	uc.EXPECT().FetchPlan(gomock.Any(), "plan-1", "vid-1").
		Return(&entities.Plan{ID: "plan-1", Reference: "vid-1", Interval: &interval}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/plans/plan-1?reference=vid-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["reference"] != "vid-1" || resp["interval"] != "Month" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestCatalogHandler_GetProductNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIGatewayUseCase(ctrl)
	r := catalogRouter(NewCatalogHandler(uc))

	uc.EXPECT().FetchProduct(gomock.Any(), "prod-1", "").
		Return(nil, usecase.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/products/prod-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCatalogHandler_CreateSubscription(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad start_time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIGatewayUseCase(ctrl)
		r := catalogRouter(NewCatalogHandler(uc))

		body := `{"id":"sub-1","customer_id":"cust-1","product_id":"prod-1","plan_id":"plan-1","start_time":"tomorrow"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions", bytes.NewBufferString(body))
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
		r := catalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, s *entities.Subscription) (*entities.Subscription, error) {
				if s.ProductID != "prod-1" || s.PlanID != "plan-1" {
					t.Errorf("unexpected subscription: %+v", s)
				}
				s.Status = entities.SubscriptionStatus("Active")
				return s, nil
			})

		body := `{"id":"sub-1","customer_id":"cust-1","product_id":"prod-1","plan_id":"plan-1","currency":"USD"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/subscriptions", bytes.NewBufferString(body))
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
		if resp["status"] != "Active" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

func TestCatalogHandler_CancelSubscription(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIGatewayUseCase(ctrl)
	r := catalogRouter(NewCatalogHandler(uc))

	uc.EXPECT().CancelSubscription(gomock.Any(), "sub-1", "", true).
		Return(&entities.Subscription{ID: "sub-1", Status: entities.SubscriptionStatus("Cancelled")}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/subscriptions/sub-1?disentitle=true", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	t.Run("not found", func(t *testing.T) {
		uc.EXPECT().CancelSubscription(gomock.Any(), "sub-missing", "", false).Return(nil, usecase.ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/subscriptions/sub-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

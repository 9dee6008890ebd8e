package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"vindicia_gateway/internal/adapter/http/dto/request"
	"vindicia_gateway/internal/adapter/http/dto/response"
	"vindicia_gateway/internal/usecase"
	"vindicia_gateway/pkg"
)

// CatalogHandler handles HTTP requests for plans, products and
// subscriptions.

type CatalogHandler struct {
	usecase usecase.IGatewayUseCase
}

func NewCatalogHandler(uc usecase.IGatewayUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) CreatePlan(c *gin.Context) {
	var req request.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[catalog][handler] create-plan invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	plan, err := req.ToEntity()
	if err != nil {
		log.Printf("[catalog][handler] create-plan invalid entity err=%v", err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.CreatePlan(c.Request.Context(), plan)
	if err != nil {
		log.Printf("[catalog][handler] create-plan failed err=%v", err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[catalog][handler] create-plan success plan_id=%s", result.ID)

	c.JSON(http.StatusOK, response.FromPlan(result))
}

func (h *CatalogHandler) GetPlan(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[catalog][handler] get-plan start plan_id=%s", id)

	result, err := h.usecase.FetchPlan(c.Request.Context(), id, c.Query("reference"))
	if err != nil {
		log.Printf("[catalog][handler] get-plan failed plan_id=%s err=%v", id, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlan(result))
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[catalog][handler] create-product invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	product, err := req.ToEntity()
	if err != nil {
		log.Printf("[catalog][handler] create-product invalid entity err=%v", err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.CreateProduct(c.Request.Context(), product)
	if err != nil {
		log.Printf("[catalog][handler] create-product failed err=%v", err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[catalog][handler] create-product success product_id=%s", result.ID)

	c.JSON(http.StatusOK, response.FromProduct(result))
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[catalog][handler] get-product start product_id=%s", id)

	result, err := h.usecase.FetchProduct(c.Request.Context(), id, c.Query("reference"))
	if err != nil {
		log.Printf("[catalog][handler] get-product failed product_id=%s err=%v", id, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(result))
}

func (h *CatalogHandler) CreateSubscription(c *gin.Context) {
	var req request.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[catalog][handler] create-subscription invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	sub, err := req.ToEntity()
	if err != nil {
		log.Printf("[catalog][handler] create-subscription invalid entity err=%v", err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.CreateSubscription(c.Request.Context(), sub)
	if err != nil {
		log.Printf("[catalog][handler] create-subscription failed err=%v", err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[catalog][handler] create-subscription success subscription_id=%s", result.ID)

	c.JSON(http.StatusOK, response.FromSubscription(result))
}

func (h *CatalogHandler) GetSubscription(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[catalog][handler] get-subscription start subscription_id=%s", id)

	result, err := h.usecase.FetchSubscription(c.Request.Context(), id, c.Query("reference"))
	if err != nil {
		log.Printf("[catalog][handler] get-subscription failed subscription_id=%s err=%v", id, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubscription(result))
}

func (h *CatalogHandler) CancelSubscription(c *gin.Context) {
	id := c.Param("id")
	disentitle := c.Query("disentitle") == "true"
	log.Printf("[catalog][handler] cancel-subscription start subscription_id=%s disentitle=%t", id, disentitle)

	result, err := h.usecase.CancelSubscription(c.Request.Context(), id, c.Query("reference"), disentitle)
	if err != nil {
		log.Printf("[catalog][handler] cancel-subscription failed subscription_id=%s err=%v", id, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[catalog][handler] cancel-subscription success subscription_id=%s status=%s", result.ID, result.Status)

	c.JSON(http.StatusOK, response.FromSubscription(result))
}

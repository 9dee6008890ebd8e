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

// CustomerHandler handles HTTP requests for customers and stored payment
// methods.

type CustomerHandler struct {
	usecase usecase.IGatewayUseCase
}

func NewCustomerHandler(uc usecase.IGatewayUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req request.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[customer][handler] create invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	customer, err := req.ToEntity()
	if err != nil {
		log.Printf("[customer][handler] create invalid entity err=%v", err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.CreateCustomer(c.Request.Context(), customer)
	if err != nil {
		log.Printf("[customer][handler] create failed err=%v", err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[customer][handler] create success customer_id=%s", result.ID)

	c.JSON(http.StatusOK, response.FromCustomer(result))
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[customer][handler] get start customer_id=%s", id)

	result, err := h.usecase.FetchCustomer(c.Request.Context(), id, c.Query("reference"))
	if err != nil {
		log.Printf("[customer][handler] get failed customer_id=%s err=%v", id, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(result))
}

func (h *CustomerHandler) CreatePaymentMethod(c *gin.Context) {
	var req request.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[paymentmethod][handler] create invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	pm, err := req.ToEntity()
	if err != nil {
		log.Printf("[paymentmethod][handler] create invalid entity err=%v", err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	validateCard := c.Query("validate") == "true"
	result, err := h.usecase.CreatePaymentMethod(c.Request.Context(), pm, validateCard)
	if err != nil {
		log.Printf("[paymentmethod][handler] create failed err=%v", err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[paymentmethod][handler] create success payment_method_id=%s", result.ID)

	c.JSON(http.StatusOK, response.FromPaymentMethod(result))
}

func (h *CustomerHandler) GetPaymentMethod(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[paymentmethod][handler] get start payment_method_id=%s", id)

	result, err := h.usecase.FetchPaymentMethod(c.Request.Context(), id, c.Query("reference"))
	if err != nil {
		log.Printf("[paymentmethod][handler] get failed payment_method_id=%s err=%v", id, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentMethod(result))
}

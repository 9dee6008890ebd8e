package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"vindicia_gateway/internal/adapter/http/dto/request"
	"vindicia_gateway/internal/adapter/http/dto/response"
	"vindicia_gateway/internal/domain/entities"
	"vindicia_gateway/internal/usecase"
	"vindicia_gateway/internal/usecase/requests"
	"vindicia_gateway/pkg"
)

// HOAHandler handles hosted-order flows: the processor collects the card on
// its own form, so these routes only describe the operation and the redirect
// URLs.

type HOAHandler struct {
	usecase usecase.IGatewayUseCase
}

func NewHOAHandler(uc usecase.IGatewayUseCase) *HOAHandler {
	return &HOAHandler{usecase: uc}
}

func (h *HOAHandler) InitiateAuthorize(c *gin.Context) {
	h.initiateTransaction(c, "authorize")
}

func (h *HOAHandler) InitiatePurchase(c *gin.Context) {
	h.initiateTransaction(c, "purchase")
}

func (h *HOAHandler) initiateTransaction(c *gin.Context, op string) {
	var req request.HOAAuthorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[hoa][handler] %s invalid payload err=%v", op, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	t, err := req.Transaction.ToEntity()
	if err != nil {
		log.Printf("[hoa][handler] %s invalid entity err=%v", op, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var hoa *requests.HOA
	if op == "purchase" {
		hoa = requests.NewHOAPurchase(requests.NewPurchase(t), req.ReturnURL, req.ErrorURL)
	} else {
		hoa = requests.NewHOAAuthorize(requests.NewAuthorize(t), req.ReturnURL, req.ErrorURL)
	}
	if req.IP != "" {
		hoa.IP = entities.Ptr(req.IP)
	}
	h.initiate(c, op, hoa)
}

func (h *HOAHandler) InitiatePaymentMethod(c *gin.Context) {
	var req request.HOAPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[hoa][handler] paymentmethod invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	pm, err := req.PaymentMethod.ToEntity()
	if err != nil {
		log.Printf("[hoa][handler] paymentmethod invalid entity err=%v", err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	direct := &requests.CreatePaymentMethod{PaymentMethod: pm, ValidateCard: req.Validate, Hosted: true}
	hoa := requests.NewHOACreatePaymentMethod(direct, req.ReturnURL, req.ErrorURL)
	if req.IP != "" {
		hoa.IP = entities.Ptr(req.IP)
	}
	h.initiate(c, "paymentmethod", hoa)
}

func (h *HOAHandler) InitiateSubscription(c *gin.Context) {
	var req request.HOASubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[hoa][handler] subscription invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	sub, err := req.Subscription.ToEntity()
	if err != nil {
		log.Printf("[hoa][handler] subscription invalid entity err=%v", err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	hoa := requests.NewHOACreateSubscription(&requests.CreateSubscription{Subscription: sub}, req.ReturnURL, req.ErrorURL)
	if req.IP != "" {
		hoa.IP = entities.Ptr(req.IP)
	}
	h.initiate(c, "subscription", hoa)
}

func (h *HOAHandler) initiate(c *gin.Context, op string, hoa *requests.HOA) {
	session, err := h.usecase.InitiateHOA(c.Request.Context(), hoa)
	if err != nil {
		log.Printf("[hoa][handler] %s initiate failed err=%v", op, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[hoa][handler] %s initiate success session=%s", op, session.Reference)

	c.JSON(http.StatusOK, response.FromHOASession(session))
}

func (h *HOAHandler) Complete(c *gin.Context) {
	sessionReference := c.Param("session")
	log.Printf("[hoa][handler] complete start session=%s", sessionReference)

	result, err := h.usecase.CompleteHOA(c.Request.Context(), sessionReference)
	if err != nil {
		log.Printf("[hoa][handler] complete failed session=%s err=%v", sessionReference, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[hoa][handler] complete success session=%s method=%s", sessionReference, result.Session.Method)

	c.JSON(http.StatusOK, response.FromHOAResult(result))
}

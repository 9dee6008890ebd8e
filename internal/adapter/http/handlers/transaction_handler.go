package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"vindicia_gateway/internal/adapter/http/dto/request"
	"vindicia_gateway/internal/adapter/http/dto/response"
	"vindicia_gateway/internal/domain/entities"
	"vindicia_gateway/internal/usecase"
	"vindicia_gateway/pkg"
)

// TransactionHandler handles HTTP requests for one-time payments.

type TransactionHandler struct {
	usecase usecase.IGatewayUseCase
}

func NewTransactionHandler(uc usecase.IGatewayUseCase) *TransactionHandler {
	return &TransactionHandler{usecase: uc}
}

func (h *TransactionHandler) Authorize(c *gin.Context) {
	h.runPayment(c, "authorize", h.usecase.Authorize)
}

func (h *TransactionHandler) Purchase(c *gin.Context) {
	h.runPayment(c, "purchase", h.usecase.Purchase)
}

func (h *TransactionHandler) runPayment(c *gin.Context, op string, run func(ctx context.Context, t *entities.Transaction) (*entities.Transaction, error)) {
	var req request.AuthorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[transaction][handler] %s invalid payload err=%v", op, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	t, err := req.ToEntity()
	if err != nil {
		log.Printf("[transaction][handler] %s invalid entity err=%v", op, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := run(c.Request.Context(), t)
	if err != nil {
		log.Printf("[transaction][handler] %s failed err=%v", op, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[transaction][handler] %s success transaction_id=%s", op, result.ID)

	c.JSON(http.StatusOK, response.FromTransaction(result))
}

func (h *TransactionHandler) Capture(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[transaction][handler] capture start transaction_id=%s", id)

	result, err := h.usecase.Capture(c.Request.Context(), id, c.Query("reference"))
	if err != nil {
		log.Printf("[transaction][handler] capture failed transaction_id=%s err=%v", id, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[transaction][handler] capture success transaction_id=%s", result.ID)

	c.JSON(http.StatusOK, response.FromTransaction(result))
}

func (h *TransactionHandler) Void(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[transaction][handler] void start transaction_id=%s", id)

	result, err := h.usecase.Void(c.Request.Context(), id, c.Query("reference"))
	if err != nil {
		log.Printf("[transaction][handler] void failed transaction_id=%s err=%v", id, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[transaction][handler] void success transaction_id=%s", result.ID)

	c.JSON(http.StatusOK, response.FromTransaction(result))
}

func (h *TransactionHandler) Refund(c *gin.Context) {
	id := c.Param("id")
	var req request.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[transaction][handler] refund invalid payload transaction_id=%s err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	rf, err := req.ToEntity(id)
	if err != nil {
		log.Printf("[transaction][handler] refund invalid entity transaction_id=%s err=%v", id, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Refund(c.Request.Context(), rf)
	if err != nil {
		log.Printf("[transaction][handler] refund failed transaction_id=%s err=%v", id, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[transaction][handler] refund success transaction_id=%s status=%s", id, result.Status)

	c.JSON(http.StatusOK, response.FromRefund(result))
}

func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[transaction][handler] get start transaction_id=%s", id)

	result, err := h.usecase.FetchTransaction(c.Request.Context(), id, c.Query("reference"))
	if err != nil {
		log.Printf("[transaction][handler] get failed transaction_id=%s err=%v", id, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(result))
}

// ListRecordsByCustomerID returns the audit records for a customer.
func (h *TransactionHandler) ListRecordsByCustomerID(c *gin.Context) {
	customerID := c.Param("id")
	log.Printf("[transaction][handler] list-records start customer_id=%s", customerID)

	records, err := h.usecase.ListTransactionRecords(c.Request.Context(), customerID)
	if err != nil {
		log.Printf("[transaction][handler] list-records failed customer_id=%s err=%v", customerID, err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.TransactionRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, response.FromTransactionRecord(rec))
	}
	c.JSON(http.StatusOK, out)
}

package response

import (
	"time"

	"vindicia_gateway/internal/domain/entities"
	"vindicia_gateway/internal/usecase"
)

type HOASessionResponse struct {
	Reference string    `json:"reference"`
	Method    string    `json:"method"`
	ReturnURL string    `json:"return_url"`
	ErrorURL  string    `json:"error_url"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromHOASession(s entities.HOASession) HOASessionResponse {
	return HOASessionResponse{
		Reference: s.Reference,
		Method:    s.Method,
		ReturnURL: s.ReturnURL,
		ErrorURL:  s.ErrorURL,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
	}
}

// HOAResultResponse mirrors HOAResult: the session plus whichever object the
// wrapped method produced.
type HOAResultResponse struct {
	Session HOASessionResponse `json:"session"`

	Transaction   *TransactionResponse   `json:"transaction,omitempty"`
	PaymentMethod *PaymentMethodResponse `json:"payment_method,omitempty"`
	Subscription  *SubscriptionResponse  `json:"subscription,omitempty"`
}

func FromHOAResult(res *usecase.HOAResult) HOAResultResponse {
	resp := HOAResultResponse{Session: FromHOASession(res.Session)}
	if res.Transaction != nil {
		t := FromTransaction(res.Transaction)
		resp.Transaction = &t
	}
	if res.PaymentMethod != nil {
		pm := FromPaymentMethod(res.PaymentMethod)
		resp.PaymentMethod = &pm
	}
	if res.Subscription != nil {
		s := FromSubscription(res.Subscription)
		resp.Subscription = &s
	}
	return resp
}

package response

import (
	"time"

	"vindicia_gateway/internal/domain/entities"
)

type TransactionStatusResponse struct {
	Status    string     `json:"status"`
	AuthCode  string     `json:"auth_code,omitempty"`
	AVSCode   string     `json:"avs_code,omitempty"`
	CVNCode   string     `json:"cvn_code,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type TransactionResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference,omitempty"`

	CustomerID        string `json:"customer_id,omitempty"`
	CustomerReference string `json:"customer_reference,omitempty"`

	PaymentMethodID        string `json:"payment_method_id,omitempty"`
	PaymentMethodReference string `json:"payment_method_reference,omitempty"`

	Amount    string     `json:"amount,omitempty"`
	Currency  string     `json:"currency,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`

	Status    *TransactionStatusResponse  `json:"status,omitempty"`
	StatusLog []TransactionStatusResponse `json:"status_log,omitempty"`

	Refunds     []RefundResponse     `json:"refunds,omitempty"`
	Chargebacks []ChargebackResponse `json:"chargebacks,omitempty"`
}

func FromTransaction(t *entities.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:                     t.ID,
		Reference:              t.Reference,
		CustomerID:             t.CustomerID,
		CustomerReference:      t.CustomerReference,
		PaymentMethodID:        t.PaymentMethodID,
		PaymentMethodReference: t.PaymentMethodReference,
		Timestamp:              t.Timestamp,
	}
	if t.Amount != nil {
		resp.Amount = t.Amount.String()
	}
	if t.Currency != nil {
		resp.Currency = *t.Currency
	}
	if t.Status != nil {
		s := fromTransactionStatus(*t.Status)
		resp.Status = &s
	}
	for _, s := range t.StatusLog {
		resp.StatusLog = append(resp.StatusLog, fromTransactionStatus(s))
	}
	for _, rf := range t.Refunds {
		resp.Refunds = append(resp.Refunds, FromRefund(rf))
	}
	for _, cb := range t.Chargebacks {
		resp.Chargebacks = append(resp.Chargebacks, FromChargeback(cb))
	}
	return resp
}

func fromTransactionStatus(s entities.TransactionStatus) TransactionStatusResponse {
	resp := TransactionStatusResponse{Status: s.Status, Timestamp: s.Timestamp}
	if s.AuthCode != nil {
		resp.AuthCode = *s.AuthCode
	}
	if s.AVSCode != nil {
		resp.AVSCode = *s.AVSCode
	}
	if s.CVNCode != nil {
		resp.CVNCode = *s.CVNCode
	}
	return resp
}

type RefundResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference,omitempty"`

	TransactionID        string `json:"transaction_id,omitempty"`
	TransactionReference string `json:"transaction_reference,omitempty"`

	Amount   string `json:"amount,omitempty"`
	Currency string `json:"currency,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Status   string `json:"status,omitempty"`

	Timestamp *time.Time `json:"timestamp,omitempty"`
}

func FromRefund(rf *entities.Refund) RefundResponse {
	resp := RefundResponse{
		ID:                   rf.ID,
		Reference:            rf.Reference,
		TransactionID:        rf.TransactionID,
		TransactionReference: rf.TransactionReference,
		Status:               rf.Status,
		Timestamp:            rf.Timestamp,
	}
	if rf.Amount != nil {
		resp.Amount = rf.Amount.String()
	}
	if rf.Currency != nil {
		resp.Currency = *rf.Currency
	}
	if rf.Reason != nil {
		resp.Reason = *rf.Reason
	}
	return resp
}

type ChargebackResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference,omitempty"`

	TransactionID        string `json:"transaction_id,omitempty"`
	TransactionReference string `json:"transaction_reference,omitempty"`

	Amount     string `json:"amount,omitempty"`
	Currency   string `json:"currency,omitempty"`
	Status     string `json:"status,omitempty"`
	ReasonCode string `json:"reason_code,omitempty"`
	CaseNumber string `json:"case_number,omitempty"`

	Timestamp *time.Time `json:"timestamp,omitempty"`
}

func FromChargeback(cb *entities.Chargeback) ChargebackResponse {
	resp := ChargebackResponse{
		ID:                   cb.ID,
		Reference:            cb.Reference,
		TransactionID:        cb.TransactionID,
		TransactionReference: cb.TransactionReference,
		Status:               cb.Status,
		Timestamp:            cb.Timestamp,
	}
	if cb.Amount != nil {
		resp.Amount = cb.Amount.String()
	}
	if cb.Currency != nil {
		resp.Currency = *cb.Currency
	}
	if cb.ReasonCode != nil {
		resp.ReasonCode = *cb.ReasonCode
	}
	if cb.CaseNumber != nil {
		resp.CaseNumber = *cb.CaseNumber
	}
	return resp
}

type TransactionRecordResponse struct {
	ID         string    `json:"id"`
	Reference  string    `json:"reference,omitempty"`
	CustomerID string    `json:"customer_id,omitempty"`
	Action     string    `json:"action"`
	Amount     string    `json:"amount,omitempty"`
	Currency   string    `json:"currency,omitempty"`
	Status     string    `json:"status,omitempty"`
	Date       time.Time `json:"date"`
}

func FromTransactionRecord(rec entities.TransactionRecord) TransactionRecordResponse {
	return TransactionRecordResponse{
		ID:         rec.ID,
		Reference:  rec.Reference,
		CustomerID: rec.CustomerID,
		Action:     rec.Action,
		Amount:     rec.Amount,
		Currency:   rec.Currency,
		Status:     rec.Status,
		Date:       rec.Date,
	}
}

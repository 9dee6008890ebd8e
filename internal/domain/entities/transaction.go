package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is one entry in a transaction's status log. The
// processor appends one per lifecycle step (authorized, captured, cancelled,
// refunded), carrying the card network outcome codes when the step touched
// the network.
type TransactionStatus struct {
	Status    string
	AuthCode  *string
	AVSCode   *string
	CVNCode   *string
	Timestamp *time.Time
}

// Transaction is a single payment against a customer's payment method. ID is
// the merchant-assigned id (wire merchantTransactionId), Reference the
// processor VID.
type Transaction struct {
	ID        string
	Reference string

	CustomerID        string
	CustomerReference string
	Customer          *Customer

	PaymentMethodID        string
	PaymentMethodReference string
	PaymentMethod          *PaymentMethod

	Amount   *decimal.Decimal
	Currency *string

	IP        *string
	Timestamp *time.Time

	Items      *ItemBag
	NameValues []NameValue

	// Status is the most recent status log entry, StatusLog the full history
	// as returned by the processor.
	Status    *TransactionStatus
	StatusLog []TransactionStatus

	Refunds     []*Refund
	Chargebacks []*Chargeback
}

func TransactionFromRecord(r Record) (*Transaction, error) {
	t := &Transaction{}
	var err error
	if t.ID, err = stringOrEmpty(r, "id"); err != nil {
		return nil, err
	}
	if t.Reference, err = stringOrEmpty(r, "reference"); err != nil {
		return nil, err
	}
	if t.CustomerID, err = stringOrEmpty(r, "customerId"); err != nil {
		return nil, err
	}
	if t.CustomerReference, err = stringOrEmpty(r, "customerReference"); err != nil {
		return nil, err
	}
	if t.PaymentMethodID, err = stringOrEmpty(r, "paymentMethodId"); err != nil {
		return nil, err
	}
	if t.PaymentMethodReference, err = stringOrEmpty(r, "paymentMethodReference"); err != nil {
		return nil, err
	}
	if t.Amount, err = recordDecimal(r, "amount"); err != nil {
		return nil, err
	}
	if t.Currency, err = recordString(r, "currency"); err != nil {
		return nil, err
	}
	if t.IP, err = recordString(r, "ip"); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Transaction) Parameters() Record {
	r := Record{}
	if t.ID != "" {
		r["id"] = t.ID
	}
	if t.Reference != "" {
		r["reference"] = t.Reference
	}
	if t.CustomerID != "" {
		r["customerId"] = t.CustomerID
	}
	if t.CustomerReference != "" {
		r["customerReference"] = t.CustomerReference
	}
	if t.PaymentMethodID != "" {
		r["paymentMethodId"] = t.PaymentMethodID
	}
	if t.PaymentMethodReference != "" {
		r["paymentMethodReference"] = t.PaymentMethodReference
	}
	if t.Amount != nil {
		r["amount"] = t.Amount.String()
	}
	setIfPresent(r, "currency", t.Currency)
	setIfPresent(r, "ip", t.IP)
	return r
}

package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Refund reverses part or all of a captured transaction. Without an explicit
// amount or item list the processor refunds the remaining balance.
type Refund struct {
	ID        string
	Reference string

	TransactionID        string
	TransactionReference string
	Transaction          *Transaction

	Amount   *decimal.Decimal
	Currency *string
	Reason   *string

	Items *RefundItemBag

	Status    string
	Timestamp *time.Time
}

func RefundFromRecord(r Record) (*Refund, error) {
	rf := &Refund{}
	var err error
	if rf.ID, err = stringOrEmpty(r, "id"); err != nil {
		return nil, err
	}
	if rf.Reference, err = stringOrEmpty(r, "reference"); err != nil {
		return nil, err
	}
	if rf.TransactionID, err = stringOrEmpty(r, "transactionId"); err != nil {
		return nil, err
	}
	if rf.TransactionReference, err = stringOrEmpty(r, "transactionReference"); err != nil {
		return nil, err
	}
	if rf.Amount, err = recordDecimal(r, "amount"); err != nil {
		return nil, err
	}
	if rf.Currency, err = recordString(r, "currency"); err != nil {
		return nil, err
	}
	if rf.Reason, err = recordString(r, "reason"); err != nil {
		return nil, err
	}
	if rf.Status, err = stringOrEmpty(r, "status"); err != nil {
		return nil, err
	}
	return rf, nil
}

func (rf *Refund) Parameters() Record {
	r := Record{}
	if rf.ID != "" {
		r["id"] = rf.ID
	}
	if rf.Reference != "" {
		r["reference"] = rf.Reference
	}
	if rf.TransactionID != "" {
		r["transactionId"] = rf.TransactionID
	}
	if rf.TransactionReference != "" {
		r["transactionReference"] = rf.TransactionReference
	}
	if rf.Amount != nil {
		r["amount"] = rf.Amount.String()
	}
	setIfPresent(r, "currency", rf.Currency)
	setIfPresent(r, "reason", rf.Reason)
	if rf.Status != "" {
		r["status"] = rf.Status
	}
	return r
}

// Chargeback is a dispute raised against a transaction by the card holder's
// bank. Chargebacks are read-only from the integration's point of view.
type Chargeback struct {
	ID        string
	Reference string

	TransactionID        string
	TransactionReference string

	Amount     *decimal.Decimal
	Currency   *string
	Status     string
	ReasonCode *string
	CaseNumber *string
	Timestamp  *time.Time
}

func ChargebackFromRecord(r Record) (*Chargeback, error) {
	cb := &Chargeback{}
	var err error
	if cb.ID, err = stringOrEmpty(r, "id"); err != nil {
		return nil, err
	}
	if cb.Reference, err = stringOrEmpty(r, "reference"); err != nil {
		return nil, err
	}
	if cb.TransactionID, err = stringOrEmpty(r, "transactionId"); err != nil {
		return nil, err
	}
	if cb.TransactionReference, err = stringOrEmpty(r, "transactionReference"); err != nil {
		return nil, err
	}
	if cb.Amount, err = recordDecimal(r, "amount"); err != nil {
		return nil, err
	}
	if cb.Currency, err = recordString(r, "currency"); err != nil {
		return nil, err
	}
	if cb.Status, err = stringOrEmpty(r, "status"); err != nil {
		return nil, err
	}
	if cb.ReasonCode, err = recordString(r, "reasonCode"); err != nil {
		return nil, err
	}
	if cb.CaseNumber, err = recordString(r, "caseNumber"); err != nil {
		return nil, err
	}
	return cb, nil
}

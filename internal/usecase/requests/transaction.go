package requests

import (
	"fmt"

	"vindicia_gateway/internal/domain/entities"
	"vindicia_gateway/internal/mapping"
)

// Authorize places a hold on the payment method for the transaction amount.
// The customer and payment method are embedded in full when the caller
// attached the entities, and shrink to their id/reference pair otherwise.
type Authorize struct {
	Transaction *entities.Transaction
}

func NewAuthorize(t *entities.Transaction) *Authorize {
	return &Authorize{Transaction: t}
}

func (r *Authorize) Object() string { return ObjectTransaction }
func (r *Authorize) Action() string { return "auth" }

func (r *Authorize) Validate() error {
	t := r.Transaction
	if t == nil {
		return fmt.Errorf("%w: authorize requires a transaction", mapping.ErrInvalidRequest)
	}
	if t.Amount == nil {
		return fmt.Errorf("%w: authorize requires an amount", mapping.ErrInvalidRequest)
	}
	if t.Currency == nil {
		return fmt.Errorf("%w: authorize requires a currency", mapping.ErrInvalidRequest)
	}
	if t.PaymentMethod == nil && t.PaymentMethodID == "" && t.PaymentMethodReference == "" {
		return fmt.Errorf("%w: authorize requires a payment method", mapping.ErrInvalidRequest)
	}
	return nil
}

func (r *Authorize) Build() (entities.Record, error) {
	payload, err := mapping.BuildTransaction(r.Transaction, mapping.BuildOptions{
		Customer:      mapping.EmbedFull,
		PaymentMethod: mapping.EmbedFull,
	})
	if err != nil {
		return nil, err
	}
	return entities.Record{"transaction": payload}, nil
}

// Purchase authorizes and captures in one step.
type Purchase struct {
	Authorize
}

func NewPurchase(t *entities.Transaction) *Purchase {
	return &Purchase{Authorize{Transaction: t}}
}

func (r *Purchase) Action() string { return "authCapture" }

// Capture settles a previously authorized transaction, addressed by its
// id/reference pair.
type Capture struct {
	TransactionID        string
	TransactionReference string
}

func (r *Capture) Object() string { return ObjectTransaction }
func (r *Capture) Action() string { return "capture" }

func (r *Capture) Validate() error {
	if r.TransactionID == "" && r.TransactionReference == "" {
		return fmt.Errorf("%w: capture requires a transaction id or reference", mapping.ErrInvalidRequest)
	}
	return nil
}

func (r *Capture) Build() (entities.Record, error) {
	return entities.Record{"transactions": []any{transactionRef(r.TransactionID, r.TransactionReference)}}, nil
}

// Void cancels an authorization that was never captured.
type Void struct {
	TransactionID        string
	TransactionReference string
}

func (r *Void) Object() string { return ObjectTransaction }
func (r *Void) Action() string { return "cancel" }

func (r *Void) Validate() error {
	if r.TransactionID == "" && r.TransactionReference == "" {
		return fmt.Errorf("%w: void requires a transaction id or reference", mapping.ErrInvalidRequest)
	}
	return nil
}

func (r *Void) Build() (entities.Record, error) {
	return entities.Record{"transactions": []any{transactionRef(r.TransactionID, r.TransactionReference)}}, nil
}

// FetchTransaction looks a transaction up by merchant id or by VID.
type FetchTransaction struct {
	TransactionID        string
	TransactionReference string
}

func (r *FetchTransaction) Object() string { return ObjectTransaction }

func (r *FetchTransaction) Action() string {
	if r.TransactionID != "" {
		return "fetchByMerchantTransactionId"
	}
	return "fetchByVid"
}

func (r *FetchTransaction) Validate() error {
	if r.TransactionID == "" && r.TransactionReference == "" {
		return fmt.Errorf("%w: fetch requires a transaction id or reference", mapping.ErrInvalidRequest)
	}
	return nil
}

func (r *FetchTransaction) Build() (entities.Record, error) {
	if r.TransactionID != "" {
		return entities.Record{"merchantTransactionId": r.TransactionID}, nil
	}
	return entities.Record{"vid": r.TransactionReference}, nil
}

// RefundTransaction refunds part or all of a settled transaction.
type RefundTransaction struct {
	Refund *entities.Refund
}

func NewRefund(rf *entities.Refund) *RefundTransaction {
	return &RefundTransaction{Refund: rf}
}

func (r *RefundTransaction) Object() string { return ObjectRefund }
func (r *RefundTransaction) Action() string { return "perform" }

func (r *RefundTransaction) Validate() error {
	rf := r.Refund
	if rf == nil {
		return fmt.Errorf("%w: refund requires a refund", mapping.ErrInvalidRequest)
	}
	if rf.TransactionID == "" && rf.TransactionReference == "" && rf.Transaction == nil {
		return fmt.Errorf("%w: refund requires a transaction id or reference", mapping.ErrInvalidRequest)
	}
	if rf.Amount == nil && (rf.Items == nil || rf.Items.Count() == 0) {
		return fmt.Errorf("%w: refund requires an amount or refund items", mapping.ErrInvalidRequest)
	}
	if rf.Items != nil {
		if err := rf.Items.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (r *RefundTransaction) Build() (entities.Record, error) {
	payload, err := mapping.BuildRefund(r.Refund)
	if err != nil {
		return nil, err
	}
	return entities.Record{"refunds": []any{payload}}, nil
}

func transactionRef(id, reference string) entities.Record {
	ref := entities.Record{}
	if id != "" {
		ref["merchantTransactionId"] = id
	}
	if reference != "" {
		ref["VID"] = reference
	}
	return ref
}

package request

import (
	"fmt"

	"github.com/shopspring/decimal"

	"vindicia_gateway/internal/domain/entities"
	"vindicia_gateway/internal/mapping"
)

type ItemRequest struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
	SKU         string `json:"sku"`
	Description string `json:"description"`
}

func (r ItemRequest) toEntity() (entities.Item, error) {
	it := entities.Item{}
	if r.Name != "" {
		it.Name = entities.Ptr(r.Name)
	}
	if r.Price != "" {
		price, err := decimal.NewFromString(r.Price)
		if err != nil {
			return entities.Item{}, fmt.Errorf("%w: item price %q is not a number", mapping.ErrInvalidRequest, r.Price)
		}
		it.Price = entities.Ptr(price)
	}
	if r.Quantity != 0 {
		it.Quantity = entities.Ptr(r.Quantity)
	}
	if r.SKU != "" {
		it.SKU = entities.Ptr(r.SKU)
	}
	if r.Description != "" {
		it.Description = entities.Ptr(r.Description)
	}
	return it, nil
}

// AuthorizeRequest is the payload for both authorize and purchase routes; the
// route decides whether capture happens in the same call.
type AuthorizeRequest struct {
	TransactionID string `json:"transaction_id"`

	Amount   string `json:"amount" binding:"required"`
	Currency string `json:"currency" binding:"required"`

	CustomerID        string `json:"customer_id"`
	CustomerReference string `json:"customer_reference"`

	PaymentMethodID        string                `json:"payment_method_id"`
	PaymentMethodReference string                `json:"payment_method_reference"`
	PaymentMethod          *PaymentMethodRequest `json:"payment_method,omitempty"`

	IP    string        `json:"ip"`
	Items []ItemRequest `json:"items,omitempty"`

	Attributes map[string]string `json:"attributes,omitempty"`
}

func (r *AuthorizeRequest) ToEntity() (*entities.Transaction, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: amount %q is not a number", mapping.ErrInvalidRequest, r.Amount)
	}
	t := &entities.Transaction{
		ID:                     r.TransactionID,
		CustomerID:             r.CustomerID,
		CustomerReference:      r.CustomerReference,
		PaymentMethodID:        r.PaymentMethodID,
		PaymentMethodReference: r.PaymentMethodReference,
		Amount:                 entities.Ptr(amount),
		Currency:               entities.Ptr(r.Currency),
	}
	if r.IP != "" {
		t.IP = entities.Ptr(r.IP)
	}
	if r.PaymentMethod != nil {
		pm, err := r.PaymentMethod.ToEntity()
		if err != nil {
			return nil, err
		}
		t.PaymentMethod = pm
	}
	if len(r.Items) > 0 {
		bag := entities.NewItemBag()
		for _, item := range r.Items {
			it, err := item.toEntity()
			if err != nil {
				return nil, err
			}
			bag.Add(it)
		}
		t.Items = bag
	}
	if len(r.Attributes) > 0 {
		bag, err := attributeBag(r.Attributes)
		if err != nil {
			return nil, err
		}
		for _, attr := range bag.All() {
			t.NameValues = append(t.NameValues, entities.NameValue{Name: attr.Name, Value: attr.Value})
		}
	}
	return t, nil
}

type RefundItemRequest struct {
	Amount                     string `json:"amount"`
	TaxOnly                    bool   `json:"tax_only"`
	SKU                        string `json:"sku"`
	TransactionItemIndexNumber *int   `json:"transaction_item_index_number,omitempty"`
}

type RefundRequest struct {
	RefundID string `json:"refund_id"`
	Amount   string `json:"amount"`
	Reason   string `json:"reason"`

	Items []RefundItemRequest `json:"items,omitempty"`
}

func (r *RefundRequest) ToEntity(transactionID string) (*entities.Refund, error) {
	rf := &entities.Refund{
		ID:            r.RefundID,
		TransactionID: transactionID,
	}
	if r.Amount != "" {
		amount, err := decimal.NewFromString(r.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: amount %q is not a number", mapping.ErrInvalidRequest, r.Amount)
		}
		rf.Amount = entities.Ptr(amount)
	}
	if r.Reason != "" {
		rf.Reason = entities.Ptr(r.Reason)
	}
	if len(r.Items) > 0 {
		bag := entities.NewRefundItemBag()
		for _, item := range r.Items {
			it := entities.RefundItem{TaxOnly: item.TaxOnly, TransactionItemIndexNumber: item.TransactionItemIndexNumber}
			if item.Amount != "" {
				amount, err := decimal.NewFromString(item.Amount)
				if err != nil {
					return nil, fmt.Errorf("%w: refund item amount %q is not a number", mapping.ErrInvalidRequest, item.Amount)
				}
				it.Amount = entities.Ptr(amount)
			}
			if item.SKU != "" {
				it.SKU = entities.Ptr(item.SKU)
			}
			bag.Add(it)
		}
		rf.Items = bag
	}
	return rf, nil
}

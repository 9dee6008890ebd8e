package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RefundItem narrows a refund to specific transaction line items. An item is
// addressed either by sku or by its index in the original transaction, and
// carries either an amount or the taxOnly flag.
type RefundItem struct {
	Amount                     *decimal.Decimal
	TaxOnly                    bool
	SKU                        *string
	TransactionItemIndexNumber *int
}

func RefundItemFromRecord(r Record) (RefundItem, error) {
	var (
		it  RefundItem
		err error
	)
	if it.Amount, err = recordDecimal(r, "amount"); err != nil {
		return RefundItem{}, err
	}
	taxOnly, err := recordBool(r, "taxOnly")
	if err != nil {
		return RefundItem{}, err
	}
	if taxOnly != nil {
		it.TaxOnly = *taxOnly
	}
	if it.SKU, err = recordString(r, "sku"); err != nil {
		return RefundItem{}, err
	}
	if it.TransactionItemIndexNumber, err = recordInt(r, "transactionItemIndexNumber"); err != nil {
		return RefundItem{}, err
	}
	return it, nil
}

// Validate enforces the two rules a refund item must satisfy: an amount
// unless the refund is tax only, and at least one of sku or transaction item
// index to address the original line.
func (it RefundItem) Validate() error {
	if it.Amount == nil && !it.TaxOnly {
		return fmt.Errorf("%w: refund item requires an amount unless taxOnly is set", ErrInvalidItem)
	}
	if it.SKU == nil && it.TransactionItemIndexNumber == nil {
		return fmt.Errorf("%w: refund item requires a sku or a transactionItemIndexNumber", ErrInvalidItem)
	}
	return nil
}

func (it RefundItem) Parameters() Record {
	r := Record{}
	if it.Amount != nil {
		r["amount"] = it.Amount.String()
	}
	if it.TaxOnly {
		r["taxOnly"] = true
	}
	setIfPresent(r, "sku", it.SKU)
	setIfPresent(r, "transactionItemIndexNumber", it.TransactionItemIndexNumber)
	return r
}

type RefundItemBag struct {
	Bag[RefundItem]
}

func NewRefundItemBag(items ...RefundItem) *RefundItemBag {
	b := &RefundItemBag{}
	b.Replace(items)
	return b
}

func RefundItemBagFromRecords(records []Record) (*RefundItemBag, error) {
	b := &RefundItemBag{}
	for _, r := range records {
		if err := b.AddRecord(r); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *RefundItemBag) AddRecord(r Record) error {
	it, err := RefundItemFromRecord(r)
	if err != nil {
		return err
	}
	b.Add(it)
	return nil
}

func (b *RefundItemBag) Validate() error {
	for _, it := range b.All() {
		if err := it.Validate(); err != nil {
			return err
		}
	}
	return nil
}

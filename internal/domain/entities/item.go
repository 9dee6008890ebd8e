package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Item is one transaction line item. Fields are pointers so an unset field
// stays distinguishable from an explicit zero; Validate enforces the required
// set before the item is serialized.
type Item struct {
	Name              *string
	Price             *decimal.Decimal
	Quantity          *int
	SKU               *string
	Description       *string
	TaxClassification *string
}

func ItemFromRecord(r Record) (Item, error) {
	var (
		it  Item
		err error
	)
	if it.Name, err = recordString(r, "name"); err != nil {
		return Item{}, err
	}
	if it.Price, err = recordDecimal(r, "price"); err != nil {
		return Item{}, err
	}
	if it.Quantity, err = recordInt(r, "quantity"); err != nil {
		return Item{}, err
	}
	if it.SKU, err = recordString(r, "sku"); err != nil {
		return Item{}, err
	}
	if it.Description, err = recordString(r, "description"); err != nil {
		return Item{}, err
	}
	if it.TaxClassification, err = recordString(r, "taxClassification"); err != nil {
		return Item{}, err
	}
	return it, nil
}

// Validate checks the four required fields. Each missing field fails on its
// own so callers can tell exactly which one was omitted.
func (it Item) Validate() error {
	if it.Name == nil {
		return fmt.Errorf("%w: item is missing name", ErrInvalidItem)
	}
	if it.Price == nil {
		return fmt.Errorf("%w: item %q is missing price", ErrInvalidItem, *it.Name)
	}
	if it.Quantity == nil {
		return fmt.Errorf("%w: item %q is missing quantity", ErrInvalidItem, *it.Name)
	}
	if it.SKU == nil {
		return fmt.Errorf("%w: item %q is missing sku", ErrInvalidItem, *it.Name)
	}
	return nil
}

func (it Item) Parameters() Record {
	r := Record{}
	setIfPresent(r, "name", it.Name)
	if it.Price != nil {
		r["price"] = it.Price.String()
	}
	setIfPresent(r, "quantity", it.Quantity)
	setIfPresent(r, "sku", it.SKU)
	setIfPresent(r, "description", it.Description)
	setIfPresent(r, "taxClassification", it.TaxClassification)
	return r
}

type ItemBag struct {
	Bag[Item]
}

func NewItemBag(items ...Item) *ItemBag {
	b := &ItemBag{}
	b.Replace(items)
	return b
}

func ItemBagFromRecords(records []Record) (*ItemBag, error) {
	b := &ItemBag{}
	for _, r := range records {
		if err := b.AddRecord(r); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *ItemBag) AddRecord(r Record) error {
	it, err := ItemFromRecord(r)
	if err != nil {
		return err
	}
	b.Add(it)
	return nil
}

// Validate validates every item in insertion order, failing on the first
// violation.
func (b *ItemBag) Validate() error {
	for _, it := range b.All() {
		if err := it.Validate(); err != nil {
			return err
		}
	}
	return nil
}

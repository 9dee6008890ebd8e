package entities

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Price is one currency/amount pair inside a product or plan price list.
type Price struct {
	Currency string
	Amount   decimal.Decimal
}

func PriceFromRecord(r Record) (Price, error) {
	currency, err := stringOrEmpty(r, "currency")
	if err != nil {
		return Price{}, err
	}
	if currency == "" {
		return Price{}, fmt.Errorf("%w: price requires a currency", ErrInvalidArgument)
	}
	amount, err := recordDecimal(r, "amount")
	if err != nil {
		return Price{}, err
	}
	if amount == nil {
		return Price{}, fmt.Errorf("%w: price %q requires an amount", ErrInvalidArgument, currency)
	}
	return Price{Currency: currency, Amount: *amount}, nil
}

func (p Price) Parameters() Record {
	return Record{"currency": p.Currency, "amount": p.Amount.String()}
}

type PriceBag struct {
	Bag[Price]
}

func NewPriceBag(items ...Price) *PriceBag {
	b := &PriceBag{}
	b.Replace(items)
	return b
}

// Flatten is the inverse of PriceBagFromMap, amounts rendered as decimal
// strings.
func (b *PriceBag) Flatten() map[string]any {
	if b == nil || b.Count() == 0 {
		return nil
	}
	out := make(map[string]any, b.Count())
	for _, p := range b.All() {
		out[p.Currency] = p.Amount.String()
	}
	return out
}

func PriceBagFromRecords(records []Record) (*PriceBag, error) {
	b := &PriceBag{}
	for _, r := range records {
		if err := b.AddRecord(r); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// PriceBagFromMap expands the flattened currency->amount shorthand, keys
// sorted for deterministic order.
func PriceBagFromMap(values map[string]any) (*PriceBag, error) {
	currencies := make([]string, 0, len(values))
	for currency := range values {
		currencies = append(currencies, currency)
	}
	sort.Strings(currencies)

	b := &PriceBag{}
	for _, currency := range currencies {
		if err := b.AddRecord(Record{"currency": currency, "amount": values[currency]}); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *PriceBag) AddRecord(r Record) error {
	p, err := PriceFromRecord(r)
	if err != nil {
		return err
	}
	b.Add(p)
	return nil
}

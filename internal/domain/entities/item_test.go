package entities

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItem() Item {
	price := decimal.RequireFromString("9.99")
	return Item{
		Name:     Ptr("widget"),
		Price:    Ptr(price),
		Quantity: Ptr(2),
		SKU:      Ptr("SKU-1"),
	}
}

func TestItemValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validItem().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*Item)
		missing string
	}{
		{name: "missing name", mutate: func(it *Item) { it.Name = nil }, missing: "name"},
		{name: "missing price", mutate: func(it *Item) { it.Price = nil }, missing: "price"},
		{name: "missing quantity", mutate: func(it *Item) { it.Quantity = nil }, missing: "quantity"},
		{name: "missing sku", mutate: func(it *Item) { it.SKU = nil }, missing: "sku"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			it := validItem()
			tc.mutate(&it)
			err := it.Validate()
			require.ErrorIs(t, err, ErrInvalidItem)
			assert.True(t, strings.Contains(err.Error(), tc.missing), "error %q should name %q", err, tc.missing)
		})
	}

	t.Run("description and tax classification optional", func(t *testing.T) {
		it := validItem()
		it.Description = nil
		it.TaxClassification = nil
		assert.NoError(t, it.Validate())
	})
}

func TestItemBagValidateStopsAtFirstInvalid(t *testing.T) {
	b := NewItemBag(validItem())
	bad := validItem()
	bad.SKU = nil
	b.Add(bad)

	err := b.Validate()
	require.ErrorIs(t, err, ErrInvalidItem)
	assert.Contains(t, err.Error(), "sku")
}

func TestRefundItemValidate(t *testing.T) {
	amount := decimal.RequireFromString("5.00")

	tests := []struct {
		name    string
		item    RefundItem
		wantErr string
	}{
		{
			name: "amount with sku",
			item: RefundItem{Amount: Ptr(amount), SKU: Ptr("SKU-1")},
		},
		{
			name: "amount with index",
			item: RefundItem{Amount: Ptr(amount), TransactionItemIndexNumber: Ptr(0)},
		},
		{
			name: "tax only with sku",
			item: RefundItem{TaxOnly: true, SKU: Ptr("SKU-1")},
		},
		{
			name:    "no amount and not tax only",
			item:    RefundItem{SKU: Ptr("SKU-1")},
			wantErr: "amount",
		},
		{
			name:    "no sku and no index",
			item:    RefundItem{Amount: Ptr(amount)},
			wantErr: "sku",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.item.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidItem)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestItemFromRecordRoundTrip(t *testing.T) {
	it, err := ItemFromRecord(Record{
		"name":     "widget",
		"price":    "9.99",
		"quantity": 2,
		"sku":      "SKU-1",
	})
	require.NoError(t, err)
	require.NoError(t, it.Validate())

	params := it.Parameters()
	assert.Equal(t, "widget", params["name"])
	assert.Equal(t, "9.99", params["price"])
	assert.Equal(t, 2, params["quantity"])
	assert.Equal(t, "SKU-1", params["sku"])
}

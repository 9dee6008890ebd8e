package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRecordRoundTrip(t *testing.T) {
	amount := decimal.RequireFromString("25.5")
	tx := &Transaction{
		ID:                     "txn-1",
		Reference:              "vid-1",
		CustomerID:             "cust-1",
		CustomerReference:      "vid-c1",
		PaymentMethodID:        "pm-1",
		PaymentMethodReference: "vid-p1",
		Amount:                 Ptr(amount),
		Currency:               Ptr("GBP"),
		IP:                     Ptr("203.0.113.10"),
	}

	back, err := TransactionFromRecord(tx.Parameters())
	require.NoError(t, err)
	assert.Equal(t, tx, back)
}

func TestTransactionFromRecordRejectsBadAmount(t *testing.T) {
	_, err := TransactionFromRecord(Record{"id": "txn-1", "amount": "lots"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

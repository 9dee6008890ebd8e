package mapping

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vindicia_gateway/internal/domain/entities"
)

func TestBuildTransactionIdentityPreference(t *testing.T) {
	amount := decimal.RequireFromString("25.00")

	t.Run("explicit scalars win over embedded entity", func(t *testing.T) {
		tx := &entities.Transaction{
			ID:         "txn-explicit",
			CustomerID: "cust-explicit",
			Customer:   &entities.Customer{ID: "cust-embedded", Reference: "vid-embedded"},
			Amount:     entities.Ptr(amount),
			Currency:   entities.Ptr("USD"),
		}
		r, err := BuildTransaction(tx, BuildOptions{Customer: EmbedRef})
		require.NoError(t, err)

		assert.Equal(t, "txn-explicit", r["merchantTransactionId"])
		account := r["account"].(entities.Record)
		assert.Equal(t, "cust-explicit", account["merchantAccountId"])
		// Reference half was left blank, so the embedded entity fills it.
		assert.Equal(t, "vid-embedded", account["VID"])
	})

	t.Run("embedded identity used when scalars absent", func(t *testing.T) {
		tx := &entities.Transaction{
			ID:       "txn-1",
			Customer: &entities.Customer{ID: "cust-embedded"},
			Amount:   entities.Ptr(amount),
		}
		r, err := BuildTransaction(tx, BuildOptions{Customer: EmbedRef})
		require.NoError(t, err)
		account := r["account"].(entities.Record)
		assert.Equal(t, "cust-embedded", account["merchantAccountId"])
	})

	t.Run("full embed keeps explicit identity", func(t *testing.T) {
		tx := &entities.Transaction{
			ID:         "txn-1",
			CustomerID: "cust-explicit",
			Customer: &entities.Customer{
				ID:   "cust-embedded",
				Name: entities.Ptr("Jan Tester"),
			},
			Amount: entities.Ptr(amount),
		}
		r, err := BuildTransaction(tx, BuildOptions{Customer: EmbedFull})
		require.NoError(t, err)
		account := r["account"].(entities.Record)
		assert.Equal(t, "cust-explicit", account["merchantAccountId"])
		assert.Equal(t, "Jan Tester", account["name"])
	})
}

func TestBuildPaymentMethodVariants(t *testing.T) {
	t.Run("credit card", func(t *testing.T) {
		pm := &entities.PaymentMethod{
			ID: "pm-1",
			CreditCard: &entities.CreditCard{
				Number:      "4111111111111111",
				ExpiryMonth: entities.Ptr(7),
				ExpiryYear:  entities.Ptr(2027),
				CVV:         entities.Ptr("123"),
			},
		}
		r, err := BuildPaymentMethod(pm, BuildOptions{})
		require.NoError(t, err)

		assert.Equal(t, "CreditCard", r["type"])
		card := r["creditCard"].(entities.Record)
		assert.Equal(t, "4111111111111111", card["account"])
		assert.Equal(t, "202707", card["expirationDate"])
		assert.Equal(t, "123", card["cvn"])
	})

	t.Run("no variant fails", func(t *testing.T) {
		_, err := BuildPaymentMethod(&entities.PaymentMethod{ID: "pm-1"}, BuildOptions{})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("two variants fail", func(t *testing.T) {
		pm := &entities.PaymentMethod{
			CreditCard: &entities.CreditCard{Number: "4111111111111111"},
			PayPal:     &entities.PayPal{Email: entities.Ptr("b@example.com")},
		}
		_, err := BuildPaymentMethod(pm, BuildOptions{})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("expiry month without year fails", func(t *testing.T) {
		pm := &entities.PaymentMethod{
			CreditCard: &entities.CreditCard{Number: "4111111111111111", ExpiryMonth: entities.Ptr(7)},
		}
		_, err := BuildPaymentMethod(pm, BuildOptions{})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("expiry month out of range fails", func(t *testing.T) {
		pm := &entities.PaymentMethod{
			CreditCard: &entities.CreditCard{
				Number:      "4111111111111111",
				ExpiryMonth: entities.Ptr(13),
				ExpiryYear:  entities.Ptr(2027),
			},
		}
		_, err := BuildPaymentMethod(pm, BuildOptions{})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestCreditCardRoundTrip(t *testing.T) {
	pm := &entities.PaymentMethod{
		ID:        "pm-1",
		Reference: "vid-7",
		CreditCard: &entities.CreditCard{
			Number:      "4111111111111111",
			ExpiryMonth: entities.Ptr(7),
			ExpiryYear:  entities.Ptr(2027),
		},
	}
	built, err := BuildPaymentMethod(pm, BuildOptions{})
	require.NoError(t, err)

	parsed, err := ParsePaymentMethod(built)
	require.NoError(t, err)

	assert.Equal(t, "pm-1", parsed.ID)
	assert.Equal(t, "vid-7", parsed.Reference)
	require.NotNil(t, parsed.CreditCard)
	assert.Equal(t, "4111111111111111", parsed.CreditCard.Number)
	require.NotNil(t, parsed.CreditCard.ExpiryMonth)
	assert.Equal(t, 7, *parsed.CreditCard.ExpiryMonth)
	require.NotNil(t, parsed.CreditCard.ExpiryYear)
	assert.Equal(t, 2027, *parsed.CreditCard.ExpiryYear)

	variant, err := parsed.ActiveVariant()
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentVariantCreditCard, variant)
}

func TestParsePaymentMethodDiscriminators(t *testing.T) {
	t.Run("paypal by presence", func(t *testing.T) {
		pm, err := ParsePaymentMethod(entities.Record{
			"merchantPaymentMethodId": "pm-pp",
			"paypal": map[string]any{
				"paypalEmail":              "buyer@example.com",
				"paypalBillingAgreementId": "BA-1",
			},
		})
		require.NoError(t, err)
		require.NotNil(t, pm.PayPal)
		assert.Equal(t, "buyer@example.com", *pm.PayPal.Email)
		assert.Equal(t, "BA-1", *pm.PayPal.Token)
	})

	t.Run("ecp by presence", func(t *testing.T) {
		pm, err := ParsePaymentMethod(entities.Record{
			"ecp": map[string]any{
				"account":       "12345",
				"routingNumber": "021000021",
			},
		})
		require.NoError(t, err)
		require.NotNil(t, pm.ECP)
	})

	t.Run("multiple discriminators rejected", func(t *testing.T) {
		_, err := ParsePaymentMethod(entities.Record{
			"creditCard": map[string]any{"account": "4111111111111111"},
			"paypal":     map[string]any{"paypalEmail": "b@example.com"},
		})
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("bad expiry rejected", func(t *testing.T) {
		_, err := ParsePaymentMethod(entities.Record{
			"creditCard": map[string]any{"expirationDate": "27-07"},
		})
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestParseTransactionStatusLog(t *testing.T) {
	r := entities.Record{
		"merchantTransactionId": "txn-1",
		"VID":                   "vid-1",
		"amount":                "25.00",
		"currency":              "USD",
		// Newest first, as reported.
		"statusLog": []any{
			map[string]any{
				"status":    "Captured",
				"timestamp": "2026-08-30T12:05:00Z",
			},
			map[string]any{
				"status":    "Authorized",
				"timestamp": "2026-08-30T12:00:00Z",
				"creditCardStatus": map[string]any{
					"authCode": "A1",
					"avsCode":  "Y",
				},
			},
		},
	}
	tx, err := ParseTransaction(r)
	require.NoError(t, err)

	assert.Equal(t, "txn-1", tx.ID)
	assert.Equal(t, "vid-1", tx.Reference)
	require.NotNil(t, tx.Amount)
	assert.Equal(t, "25", tx.Amount.String())

	require.Len(t, tx.StatusLog, 2)
	require.NotNil(t, tx.Status)
	assert.Equal(t, "Captured", tx.Status.Status)
	require.NotNil(t, tx.StatusLog[1].AuthCode)
	assert.Equal(t, "A1", *tx.StatusLog[1].AuthCode)
}

func TestParseTransactionChargebacks(t *testing.T) {
	r := entities.Record{
		"merchantTransactionId": "txn-1",
		"chargebacks": []any{
			map[string]any{
				"merchantChargebackId": "cb-1",
				"VID":                  "vid-cb1",
				"amount":               "12.34",
				"currency":             "USD",
				"status":               "Open",
				"reasonCode":           "4853",
				"caseNumber":           "case-77",
				"timestamp":            "2026-08-30T12:00:00Z",
			},
			// A dispute the processor has not yet priced.
			map[string]any{
				"merchantChargebackId": "cb-2",
				"status":               "New",
			},
		},
	}
	tx, err := ParseTransaction(r)
	require.NoError(t, err)

	require.Len(t, tx.Chargebacks, 2)
	cb := tx.Chargebacks[0]
	assert.Equal(t, "cb-1", cb.ID)
	assert.Equal(t, "vid-cb1", cb.Reference)
	require.NotNil(t, cb.Amount)
	assert.Equal(t, "12.34", cb.Amount.String())
	assert.Equal(t, "Open", cb.Status)
	require.NotNil(t, cb.ReasonCode)
	assert.Equal(t, "4853", *cb.ReasonCode)
	require.NotNil(t, cb.CaseNumber)
	assert.Equal(t, "case-77", *cb.CaseNumber)
	require.NotNil(t, cb.Timestamp)

	assert.Nil(t, tx.Chargebacks[1].Amount)
	assert.Equal(t, "New", tx.Chargebacks[1].Status)
}

func TestParseChargebackMalformed(t *testing.T) {
	_, err := ParseChargeback(entities.Record{
		"merchantChargebackId": "cb-1",
		"amount":               "disputed",
	})
	assert.ErrorIs(t, err, ErrMalformedResponse)

	// A bare chargeback object must also be accepted on the transaction.
	tx, err := ParseTransaction(entities.Record{
		"merchantTransactionId": "txn-1",
		"chargebacks":           map[string]any{"merchantChargebackId": "cb-1", "status": "Open"},
	})
	require.NoError(t, err)
	require.Len(t, tx.Chargebacks, 1)
	assert.Equal(t, "cb-1", tx.Chargebacks[0].ID)
}

func TestParseTransactionSingleStatusPromoted(t *testing.T) {
	// A single repeating element decodes as a bare object; the parser must
	// treat it as a one-element log.
	r := entities.Record{
		"merchantTransactionId": "txn-1",
		"statusLog": map[string]any{
			"status": "Authorized",
		},
	}
	tx, err := ParseTransaction(r)
	require.NoError(t, err)
	require.Len(t, tx.StatusLog, 1)
	assert.Equal(t, "Authorized", tx.StatusLog[0].Status)
}

func TestParseTransactionMalformed(t *testing.T) {
	t.Run("status missing", func(t *testing.T) {
		_, err := ParseTransaction(entities.Record{
			"statusLog": []any{map[string]any{"timestamp": "2026-08-30T12:00:00Z"}},
		})
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("amount not a decimal", func(t *testing.T) {
		_, err := ParseTransaction(entities.Record{"amount": "not-a-number"})
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("scalar in repeating group", func(t *testing.T) {
		_, err := ParseTransaction(entities.Record{"statusLog": []any{"bare"}})
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestBuildRefundValidatesItems(t *testing.T) {
	amount := decimal.RequireFromString("5.00")

	t.Run("valid items serialize", func(t *testing.T) {
		rf := &entities.Refund{
			TransactionID: "txn-1",
			Amount:        entities.Ptr(amount),
			Items: entities.NewRefundItemBag(entities.RefundItem{
				Amount: entities.Ptr(amount),
				SKU:    entities.Ptr("SKU-1"),
			}),
		}
		r, err := BuildRefund(rf)
		require.NoError(t, err)
		assert.Equal(t, "txn-1", r["merchantTransactionId"])
		items := r["refundItems"].([]any)
		require.Len(t, items, 1)
	})

	t.Run("invalid item fails the build", func(t *testing.T) {
		rf := &entities.Refund{
			TransactionID: "txn-1",
			Items: entities.NewRefundItemBag(entities.RefundItem{
				SKU: entities.Ptr("SKU-1"),
			}),
		}
		_, err := BuildRefund(rf)
		assert.ErrorIs(t, err, entities.ErrInvalidItem)
	})
}

func TestBuildHostedPaymentMethod(t *testing.T) {
	pm := &entities.PaymentMethod{ID: "pm-1", CustomerID: "cust-1"}
	r, err := BuildHostedPaymentMethod(pm, BuildOptions{Customer: EmbedRef})
	require.NoError(t, err)

	assert.Equal(t, "CreditCard", r["type"])
	assert.Equal(t, "pm-1", r["merchantPaymentMethodId"])
	account := r["account"].(entities.Record)
	assert.Equal(t, "cust-1", account["merchantAccountId"])
	// No variant sub-object travels; the hosted form supplies the card.
	assert.NotContains(t, r, "creditCard")
}

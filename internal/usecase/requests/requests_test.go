package requests

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vindicia_gateway/internal/domain/entities"
	"vindicia_gateway/internal/mapping"
)

func authorizableTransaction() *entities.Transaction {
	amount := decimal.RequireFromString("25.00")
	return &entities.Transaction{
		ID:              "txn-1",
		CustomerID:      "cust-1",
		PaymentMethodID: "pm-1",
		Amount:          entities.Ptr(amount),
		Currency:        entities.Ptr("USD"),
	}
}

func TestAuthorizeRequest(t *testing.T) {
	r := NewAuthorize(authorizableTransaction())
	assert.Equal(t, ObjectTransaction, r.Object())
	assert.Equal(t, "auth", r.Action())
	require.NoError(t, r.Validate())

	payload, err := r.Build()
	require.NoError(t, err)
	tx := payload["transaction"].(entities.Record)
	assert.Equal(t, "txn-1", tx["merchantTransactionId"])
	assert.Equal(t, "25", tx["amount"])
}

func TestAuthorizeValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entities.Transaction)
	}{
		{"missing amount", func(tx *entities.Transaction) { tx.Amount = nil }},
		{"missing currency", func(tx *entities.Transaction) { tx.Currency = nil }},
		{"missing payment method", func(tx *entities.Transaction) {
			tx.PaymentMethodID = ""
			tx.PaymentMethodReference = ""
			tx.PaymentMethod = nil
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx := authorizableTransaction()
			tc.mutate(tx)
			assert.ErrorIs(t, NewAuthorize(tx).Validate(), mapping.ErrInvalidRequest)
		})
	}

	t.Run("nil transaction", func(t *testing.T) {
		assert.ErrorIs(t, NewAuthorize(nil).Validate(), mapping.ErrInvalidRequest)
	})
}

func TestPurchaseIsAuthCapture(t *testing.T) {
	r := NewPurchase(authorizableTransaction())
	assert.Equal(t, "authCapture", r.Action())
	assert.Equal(t, ObjectTransaction, r.Object())
	assert.NoError(t, r.Validate())
}

func TestCaptureAndVoidPayloads(t *testing.T) {
	capture := &Capture{TransactionID: "txn-1"}
	assert.Equal(t, "capture", capture.Action())
	payload, err := capture.Build()
	require.NoError(t, err)
	list := payload["transactions"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, entities.Record{"merchantTransactionId": "txn-1"}, list[0])

	void := &Void{TransactionReference: "vid-1"}
	assert.Equal(t, "cancel", void.Action())
	payload, err = void.Build()
	require.NoError(t, err)
	list = payload["transactions"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, entities.Record{"VID": "vid-1"}, list[0])

	assert.ErrorIs(t, (&Capture{}).Validate(), mapping.ErrInvalidRequest)
	assert.ErrorIs(t, (&Void{}).Validate(), mapping.ErrInvalidRequest)
}

func TestFetchActionSelection(t *testing.T) {
	byID := &FetchTransaction{TransactionID: "txn-1"}
	assert.Equal(t, "fetchByMerchantTransactionId", byID.Action())
	payload, err := byID.Build()
	require.NoError(t, err)
	assert.Equal(t, "txn-1", payload["merchantTransactionId"])

	byVID := &FetchTransaction{TransactionReference: "vid-1"}
	assert.Equal(t, "fetchByVid", byVID.Action())
	payload, err = byVID.Build()
	require.NoError(t, err)
	assert.Equal(t, "vid-1", payload["vid"])

	// The merchant id wins when both halves are set.
	both := &FetchTransaction{TransactionID: "txn-1", TransactionReference: "vid-1"}
	assert.Equal(t, "fetchByMerchantTransactionId", both.Action())

	assert.ErrorIs(t, (&FetchTransaction{}).Validate(), mapping.ErrInvalidRequest)

	assert.Equal(t, "fetchByMerchantAccountId", (&FetchCustomer{CustomerID: "c"}).Action())
	assert.Equal(t, "fetchByVid", (&FetchCustomer{CustomerReference: "v"}).Action())
	assert.Equal(t, "fetchByMerchantPaymentMethodId", (&FetchPaymentMethod{PaymentMethodID: "p"}).Action())
	assert.Equal(t, "fetchByMerchantBillingPlanId", (&FetchPlan{PlanID: "p"}).Action())
	assert.Equal(t, "fetchByMerchantProductId", (&FetchProduct{ProductID: "p"}).Action())
	assert.Equal(t, "fetchByVid", (&FetchProduct{ProductReference: "v"}).Action())
}

func TestRefundRequest(t *testing.T) {
	amount := decimal.RequireFromString("5.00")

	t.Run("amount refund", func(t *testing.T) {
		r := NewRefund(&entities.Refund{TransactionID: "txn-1", Amount: entities.Ptr(amount)})
		assert.Equal(t, ObjectRefund, r.Object())
		assert.Equal(t, "perform", r.Action())
		require.NoError(t, r.Validate())

		payload, err := r.Build()
		require.NoError(t, err)
		list := payload["refunds"].([]any)
		require.Len(t, list, 1)
		refund := list[0].(entities.Record)
		assert.Equal(t, "txn-1", refund["merchantTransactionId"])
		assert.Equal(t, "5", refund["amount"])
	})

	t.Run("neither amount nor items", func(t *testing.T) {
		r := NewRefund(&entities.Refund{TransactionID: "txn-1"})
		assert.ErrorIs(t, r.Validate(), mapping.ErrInvalidRequest)
	})

	t.Run("invalid item surfaces its own error", func(t *testing.T) {
		r := NewRefund(&entities.Refund{
			TransactionID: "txn-1",
			Items:         entities.NewRefundItemBag(entities.RefundItem{SKU: entities.Ptr("SKU-1")}),
		})
		assert.ErrorIs(t, r.Validate(), entities.ErrInvalidItem)
	})
}

func TestCreateCustomerRequest(t *testing.T) {
	r := &CreateCustomer{Customer: &entities.Customer{ID: "cust-1", Name: entities.Ptr("Jan Tester")}}
	assert.Equal(t, ObjectAccount, r.Object())
	assert.Equal(t, "update", r.Action())
	require.NoError(t, r.Validate())

	payload, err := r.Build()
	require.NoError(t, err)
	account := payload["account"].(entities.Record)
	assert.Equal(t, "cust-1", account["merchantAccountId"])
	assert.Equal(t, "Jan Tester", account["name"])

	assert.ErrorIs(t, (&CreateCustomer{Customer: &entities.Customer{}}).Validate(), mapping.ErrInvalidRequest)
}

func TestCreatePaymentMethodRequest(t *testing.T) {
	card := &entities.PaymentMethod{
		ID:         "pm-1",
		CustomerID: "cust-1",
		CreditCard: &entities.CreditCard{
			Number:      "4111111111111111",
			ExpiryMonth: entities.Ptr(7),
			ExpiryYear:  entities.Ptr(2027),
		},
	}

	t.Run("direct", func(t *testing.T) {
		r := &CreatePaymentMethod{PaymentMethod: card, ValidateCard: true}
		require.NoError(t, r.Validate())

		payload, err := r.Build()
		require.NoError(t, err)
		assert.Equal(t, true, payload["validate"])
		pm := payload["paymentMethod"].(entities.Record)
		assert.Equal(t, "CreditCard", pm["type"])
		assert.Contains(t, pm, "creditCard")
	})

	t.Run("direct requires a variant", func(t *testing.T) {
		r := &CreatePaymentMethod{PaymentMethod: &entities.PaymentMethod{ID: "pm-1"}}
		assert.ErrorIs(t, r.Validate(), mapping.ErrInvalidRequest)
	})

	t.Run("hosted skips the variant check", func(t *testing.T) {
		r := &CreatePaymentMethod{PaymentMethod: &entities.PaymentMethod{ID: "pm-1", CustomerID: "cust-1"}, Hosted: true}
		require.NoError(t, r.Validate())

		payload, err := r.Build()
		require.NoError(t, err)
		pm := payload["paymentMethod"].(entities.Record)
		assert.Equal(t, "CreditCard", pm["type"])
		assert.NotContains(t, pm, "creditCard")
	})

	t.Run("hosted still needs an identity", func(t *testing.T) {
		r := &CreatePaymentMethod{PaymentMethod: &entities.PaymentMethod{}, Hosted: true}
		assert.ErrorIs(t, r.Validate(), mapping.ErrInvalidRequest)
	})
}

func TestHOADelegation(t *testing.T) {
	direct := NewAuthorize(authorizableTransaction())
	hoa := NewHOAAuthorize(direct, "https://shop.example/return", "https://shop.example/error")
	hoa.IP = entities.Ptr("203.0.113.7")

	assert.Equal(t, ObjectWebSession, hoa.Object())
	assert.Equal(t, "initialize", hoa.Action())
	require.NoError(t, hoa.Validate())

	payload, err := hoa.Build()
	require.NoError(t, err)
	session := payload["session"].(entities.Record)
	assert.Equal(t, HOAMethodAuthorize, session["method"])
	assert.Equal(t, "https://shop.example/return", session["returnUrl"])
	assert.Equal(t, "https://shop.example/error", session["errorUrl"])
	assert.Equal(t, "203.0.113.7", session["ipAddress"])

	// The wrapped payload is the direct request's build, verbatim.
	directPayload, err := direct.Build()
	require.NoError(t, err)
	assert.Equal(t, directPayload, session["methodParams"])
}

func TestHOAValidation(t *testing.T) {
	direct := NewAuthorize(authorizableTransaction())

	t.Run("missing return url", func(t *testing.T) {
		hoa := NewHOAAuthorize(direct, "", "https://shop.example/error")
		assert.ErrorIs(t, hoa.Validate(), mapping.ErrInvalidRequest)
	})

	t.Run("missing error url", func(t *testing.T) {
		hoa := NewHOAAuthorize(direct, "https://shop.example/return", "")
		assert.ErrorIs(t, hoa.Validate(), mapping.ErrInvalidRequest)
	})

	t.Run("missing direct request", func(t *testing.T) {
		hoa := &HOA{Method: HOAMethodAuthorize, ReturnURL: "r", ErrorURL: "e"}
		assert.ErrorIs(t, hoa.Validate(), mapping.ErrInvalidRequest)
	})

	t.Run("direct validation still runs", func(t *testing.T) {
		broken := authorizableTransaction()
		broken.Amount = nil
		hoa := NewHOAAuthorize(NewAuthorize(broken), "https://shop.example/return", "https://shop.example/error")
		assert.ErrorIs(t, hoa.Validate(), mapping.ErrInvalidRequest)
	})
}

func TestHOAMethodNames(t *testing.T) {
	purchase := NewHOAPurchase(NewPurchase(authorizableTransaction()), "r", "e")
	assert.Equal(t, HOAMethodPurchase, purchase.Method)

	pm := NewHOACreatePaymentMethod(&CreatePaymentMethod{
		PaymentMethod: &entities.PaymentMethod{ID: "pm-1"},
		Hosted:        true,
	}, "r", "e")
	assert.Equal(t, HOAMethodCreatePaymentMethod, pm.Method)

	sub := NewHOACreateSubscription(&CreateSubscription{}, "r", "e")
	assert.Equal(t, HOAMethodCreateSubscription, sub.Method)
}

func TestCompleteHOARequest(t *testing.T) {
	r := &CompleteHOA{SessionReference: "ws-1"}
	assert.Equal(t, ObjectWebSession, r.Object())
	assert.Equal(t, "finalize", r.Action())
	require.NoError(t, r.Validate())

	payload, err := r.Build()
	require.NoError(t, err)
	assert.Equal(t, entities.Record{"session": entities.Record{"VID": "ws-1"}}, payload)

	assert.ErrorIs(t, (&CompleteHOA{}).Validate(), mapping.ErrInvalidRequest)
}

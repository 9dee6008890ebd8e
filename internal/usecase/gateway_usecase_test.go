package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"vindicia_gateway/internal/domain/entities"
	"vindicia_gateway/internal/infrastructure/soap"
	"vindicia_gateway/internal/mapping"
	mock_interfaces "vindicia_gateway/internal/usecase/interfaces/mocks"
)

func okReturn() map[string]any {
	return map[string]any{"returnCode": "200", "returnString": "OK"}
}

func payableTransaction() *entities.Transaction {
	amount := decimal.RequireFromString("25.00")
	return &entities.Transaction{
		ID:              "txn-1",
		CustomerID:      "cust-1",
		PaymentMethodID: "pm-1",
		Amount:          entities.Ptr(amount),
		Currency:        entities.Ptr("USD"),
	}
}

func TestGatewayUseCase_Run_Guards(t *testing.T) {
	t.Run("transport not configured", func(t *testing.T) {
		uc := NewGatewayUseCase(nil, nil, nil)
		_, err := uc.Authorize(context.Background(), payableTransaction())
		if !errors.Is(err, ErrTransportNotConfigured) {
			t.Fatalf("expected ErrTransportNotConfigured, got %v", err)
		}
	})

	t.Run("validation failure never reaches the transport", func(t *testing.T) {
		fake := soap.NewFakeTransport()
		uc := NewGatewayUseCase(fake, nil, nil)

		broken := payableTransaction()
		broken.Amount = nil
		_, err := uc.Authorize(context.Background(), broken)
		if !errors.Is(err, mapping.ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest, got %v", err)
		}
		if len(fake.Calls) != 0 {
			t.Fatalf("expected no transport calls, got %d", len(fake.Calls))
		}
	})

	t.Run("transport error is passed through", func(t *testing.T) {
		fake := soap.NewFakeTransport().QueueFault("soap:Server", "boom")
		uc := NewGatewayUseCase(fake, nil, nil)

		_, err := uc.Authorize(context.Background(), payableTransaction())
		if !errors.Is(err, soap.ErrFault) {
			t.Fatalf("expected ErrFault, got %v", err)
		}
	})

	t.Run("processor rejection", func(t *testing.T) {
		fake := soap.NewFakeTransport().QueueResult(entities.Record{
			"return": map[string]any{"returnCode": "400", "returnString": "Insufficient funds"},
		})
		uc := NewGatewayUseCase(fake, nil, nil)

		_, err := uc.Purchase(context.Background(), payableTransaction())
		if !errors.Is(err, ErrRequestFailed) {
			t.Fatalf("expected ErrRequestFailed, got %v", err)
		}
	})

	t.Run("processor 404 maps to not found", func(t *testing.T) {
		fake := soap.NewFakeTransport().QueueResult(entities.Record{
			"return": map[string]any{"returnCode": "404", "returnString": "No match"},
		})
		uc := NewGatewayUseCase(fake, nil, nil)

		_, err := uc.FetchTransaction(context.Background(), "txn-missing", "")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestGatewayUseCase_Purchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	records := mock_interfaces.NewMockITransactionRecordRepository(ctrl)

	fake := soap.NewFakeTransport().QueueResult(entities.Record{
		"return": okReturn(),
		"transaction": map[string]any{
			"merchantTransactionId": "txn-1",
			"VID":                   "vid-1",
			"amount":                "25.00",
			"currency":              "USD",
			"statusLog": map[string]any{
				"status": "Captured",
			},
		},
	})
	uc := NewGatewayUseCase(fake, records, nil)

	records.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec entities.TransactionRecord) (entities.TransactionRecord, error) {
			if rec.ID != "txn-1" || rec.Action != "authCapture" {
				t.Errorf("unexpected audit record: %+v", rec)
			}
			if rec.Amount != "25" || rec.Status != "Captured" {
				t.Errorf("unexpected audit amounts: %+v", rec)
			}
			return rec, nil
		})

	parsed, err := uc.Purchase(context.Background(), payableTransaction())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.ID != "txn-1" || parsed.Reference != "vid-1" {
		t.Fatalf("unexpected transaction: %+v", parsed)
	}
	if parsed.Status == nil || parsed.Status.Status != "Captured" {
		t.Fatalf("expected Captured status, got %+v", parsed.Status)
	}

	if len(fake.Calls) != 1 {
		t.Fatalf("expected one transport call, got %d", len(fake.Calls))
	}
	if fake.Calls[0].Object != "Transaction" || fake.Calls[0].Action != "authCapture" {
		t.Fatalf("unexpected call: %+v", fake.Calls[0])
	}
}

func TestGatewayUseCase_AuditFailureIsNotSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	records := mock_interfaces.NewMockITransactionRecordRepository(ctrl)
	records.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.TransactionRecord{}, errors.New("dynamo down"))

	fake := soap.NewFakeTransport().QueueResult(entities.Record{
		"return": okReturn(),
		"transaction": map[string]any{
			"merchantTransactionId": "txn-1",
		},
	})
	uc := NewGatewayUseCase(fake, records, nil)

	if _, err := uc.Authorize(context.Background(), payableTransaction()); err != nil {
		t.Fatalf("audit failure must not surface, got %v", err)
	}
}

func TestGatewayUseCase_Capture(t *testing.T) {
	t.Run("single transaction surfaces as bare object", func(t *testing.T) {
		fake := soap.NewFakeTransport().QueueResult(entities.Record{
			"return": okReturn(),
			"transactions": map[string]any{
				"merchantTransactionId": "txn-1",
				"statusLog":             map[string]any{"status": "Captured"},
			},
		})
		uc := NewGatewayUseCase(fake, nil, nil)

		parsed, err := uc.Capture(context.Background(), "txn-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.ID != "txn-1" {
			t.Fatalf("unexpected transaction: %+v", parsed)
		}
		if fake.Calls[0].Action != "capture" {
			t.Fatalf("unexpected action %q", fake.Calls[0].Action)
		}
	})

	t.Run("list response takes the first element", func(t *testing.T) {
		fake := soap.NewFakeTransport().QueueResult(entities.Record{
			"return": okReturn(),
			"transactions": []any{
				map[string]any{"merchantTransactionId": "txn-1"},
				map[string]any{"merchantTransactionId": "txn-2"},
			},
		})
		uc := NewGatewayUseCase(fake, nil, nil)

		parsed, err := uc.Capture(context.Background(), "txn-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if parsed.ID != "txn-1" {
			t.Fatalf("unexpected transaction: %+v", parsed)
		}
	})

	t.Run("missing transactions group", func(t *testing.T) {
		fake := soap.NewFakeTransport().QueueResult(entities.Record{"return": okReturn()})
		uc := NewGatewayUseCase(fake, nil, nil)

		_, err := uc.Capture(context.Background(), "txn-1", "")
		if !errors.Is(err, ErrRequestFailed) {
			t.Fatalf("expected ErrRequestFailed, got %v", err)
		}
	})
}

func TestGatewayUseCase_Refund(t *testing.T) {
	amount := decimal.RequireFromString("5.00")
	fake := soap.NewFakeTransport().QueueResult(entities.Record{
		"return": okReturn(),
		"refunds": map[string]any{
			"merchantTransactionId": "txn-1",
			"amount":                "5.00",
			"status":                "Processed",
		},
	})
	uc := NewGatewayUseCase(fake, nil, nil)

	parsed, err := uc.Refund(context.Background(), &entities.Refund{
		TransactionID: "txn-1",
		Amount:        entities.Ptr(amount),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Status != "Processed" || parsed.TransactionID != "txn-1" {
		t.Fatalf("unexpected refund: %+v", parsed)
	}
	if fake.Calls[0].Object != "Refund" || fake.Calls[0].Action != "perform" {
		t.Fatalf("unexpected call: %+v", fake.Calls[0])
	}
}

func TestGatewayUseCase_CreateCustomerAssignsID(t *testing.T) {
	fake := soap.NewFakeTransport().QueueResult(entities.Record{
		"return":  okReturn(),
		"account": map[string]any{"merchantAccountId": "generated", "VID": "vid-9"},
	})
	uc := NewGatewayUseCase(fake, nil, nil)

	c := &entities.Customer{Name: entities.Ptr("Jan Tester")}
	if _, err := uc.CreateCustomer(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID == "" {
		t.Fatal("expected a generated customer id")
	}
	account := fake.Calls[0].Params["account"].(entities.Record)
	if account["merchantAccountId"] != c.ID {
		t.Fatalf("generated id did not reach the wire: %v", account)
	}
}

func TestGatewayUseCase_CancelSubscription(t *testing.T) {
	fake := soap.NewFakeTransport().QueueResult(entities.Record{
		"return": okReturn(),
		"autobill": map[string]any{
			"merchantAutoBillId": "sub-1",
			"status":             "Cancelled",
		},
	})
	uc := NewGatewayUseCase(fake, nil, nil)

	parsed, err := uc.CancelSubscription(context.Background(), "sub-1", "", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Status != entities.SubscriptionStatus("Cancelled") {
		t.Fatalf("unexpected status %q", parsed.Status)
	}
	if fake.Calls[0].Object != "AutoBill" || fake.Calls[0].Action != "cancel" {
		t.Fatalf("unexpected call: %+v", fake.Calls[0])
	}
	if disentitle, ok := fake.Calls[0].Params["disentitle"].(bool); !ok || !disentitle {
		t.Fatalf("expected disentitle=true in payload, got %v", fake.Calls[0].Params)
	}
}

func TestGatewayUseCase_ListTransactionRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	records := mock_interfaces.NewMockITransactionRecordRepository(ctrl)
	records.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return([]entities.TransactionRecord{{ID: "txn-1"}}, nil)

	uc := NewGatewayUseCase(soap.NewFakeTransport(), records, nil)
	out, err := uc.ListTransactionRecords(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "txn-1" {
		t.Fatalf("unexpected records: %+v", out)
	}

	t.Run("repository not configured", func(t *testing.T) {
		uc := NewGatewayUseCase(soap.NewFakeTransport(), nil, nil)
		if _, err := uc.ListTransactionRecords(context.Background(), "cust-1"); err == nil {
			t.Fatal("expected an error")
		}
	})
}

package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionRecordRoundTrip(t *testing.T) {
	attributes, err := AttributeBagFromMap(map[string]any{"campaign": "spring"})
	require.NoError(t, err)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	s := &Subscription{
		ID:                     "sub-1",
		Reference:              "vid-1",
		CustomerID:             "cust-1",
		CustomerReference:      "vid-c1",
		ProductID:              "prod-1",
		ProductReference:       "vid-pr1",
		PlanID:                 "plan-1",
		PlanReference:          "vid-pl1",
		PaymentMethodID:        "pm-1",
		PaymentMethodReference: "vid-pm1",
		Currency:               Ptr("USD"),
		StartTime:              Ptr(start),
		Status:                 SubscriptionStatusActive,
		Attributes:             attributes,
	}

	back, err := SubscriptionFromRecord(s.Parameters())
	require.NoError(t, err)
	assert.Equal(t, s, back)
}

func TestSubscriptionFromRecordRejectsBadStartTime(t *testing.T) {
	_, err := SubscriptionFromRecord(Record{"id": "sub-1", "startTime": "tomorrow"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

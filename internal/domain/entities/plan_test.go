package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRecordRoundTrip(t *testing.T) {
	prices, err := PriceBagFromMap(map[string]any{"USD": "9.99", "GBP": "7.5"})
	require.NoError(t, err)
	attributes, err := AttributeBagFromMap(map[string]any{"tier": "gold"})
	require.NoError(t, err)

	p := &Plan{
		ID:            "plan-1",
		Reference:     "vid-1",
		Interval:      Ptr("month"),
		IntervalCount: Ptr(3),
		Prices:        prices,
		Attributes:    attributes,
	}

	back, err := PlanFromRecord(p.Parameters())
	require.NoError(t, err)
	assert.Equal(t, p, back)
}

func TestPlanFromRecordRejectsBadPrices(t *testing.T) {
	_, err := PlanFromRecord(Record{"id": "plan-1", "prices": "9.99"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = PlanFromRecord(Record{"id": "plan-1", "prices": map[string]any{"USD": "cheap"}})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestProductRecordRoundTrip(t *testing.T) {
	prices, err := PriceBagFromMap(map[string]any{"USD": "19.95"})
	require.NoError(t, err)

	p := &Product{
		ID:                "prod-1",
		Reference:         "vid-1",
		PlanID:            "plan-1",
		PlanReference:     "vid-pl1",
		Description:       Ptr("Monthly box"),
		TaxClassification: Ptr("TaxExempt"),
		Prices:            prices,
	}

	back, err := ProductFromRecord(p.Parameters())
	require.NoError(t, err)
	assert.Equal(t, p, back)
}

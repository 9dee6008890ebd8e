package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNameValueCoercion(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string", value: "ref-1", want: "ref-1"},
		{name: "nil", value: nil, want: "null"},
		{name: "true", value: true, want: "true"},
		{name: "false", value: false, want: "false"},
		{name: "int", value: 42, want: "42"},
		{name: "int64", value: int64(-7), want: "-7"},
		{name: "float", value: 1.5, want: "1.5"},
		{name: "decimal", value: decimal.RequireFromString("10.99"), want: "10.99"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nv, err := NewNameValue("key", tc.value)
			require.NoError(t, err)
			assert.Equal(t, "key", nv.Name)
			assert.Equal(t, tc.want, nv.Value)
		})
	}
}

func TestNewNameValueRejections(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		_, err := NewNameValue("", "x")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("slice value", func(t *testing.T) {
		_, err := NewNameValue("key", []string{"a"})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("map value", func(t *testing.T) {
		_, err := NewNameValue("key", map[string]string{"a": "b"})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("struct value", func(t *testing.T) {
		_, err := NewNameValue("key", struct{ X int }{1})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestNameValueFromAny(t *testing.T) {
	t.Run("string name passes through", func(t *testing.T) {
		nv, err := NameValueFromAny("key", 1)
		require.NoError(t, err)
		assert.Equal(t, NameValue{Name: "key", Value: "1"}, nv)
	})

	// A numeric name would render as a plausible key, but only real strings
	// are accepted on the loose path.
	t.Run("numeric name rejected", func(t *testing.T) {
		_, err := NameValueFromAny(7, "x")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("nil name rejected", func(t *testing.T) {
		_, err := NameValueFromAny(nil, "x")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("bool name rejected", func(t *testing.T) {
		_, err := NameValueFromAny(true, "x")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

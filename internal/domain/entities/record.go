package entities

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Record is the loosely-typed associative shape shared by entity construction
// (FromRecord/Parameters) and the SOAP payload layer. Inbound records come
// from XML decoding (string scalars), caller-facing records from JSON binding
// (float64/bool scalars), so the readers below coerce both.
type Record = map[string]any

func Ptr[T any](v T) *T { return &v }

func recordString(r Record, key string) (*string, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, err := scalarString(v)
	if err != nil {
		return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidArgument, key, err)
	}
	return &s, nil
}

func recordInt(r Record, key string) (*int, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch n := v.(type) {
	case int:
		return Ptr(n), nil
	case int64:
		return Ptr(int(n)), nil
	case float64:
		return Ptr(int(n)), nil
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: not an integer: %q", ErrInvalidArgument, key, n)
		}
		return Ptr(parsed), nil
	default:
		return nil, fmt.Errorf("%w: field %q: unsupported type %T", ErrInvalidArgument, key, v)
	}
}

func recordBool(r Record, key string) (*bool, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch b := v.(type) {
	case bool:
		return Ptr(b), nil
	case string:
		switch b {
		case "true", "1":
			return Ptr(true), nil
		case "false", "0":
			return Ptr(false), nil
		}
		return nil, fmt.Errorf("%w: field %q: not a boolean: %q", ErrInvalidArgument, key, b)
	default:
		return nil, fmt.Errorf("%w: field %q: unsupported type %T", ErrInvalidArgument, key, v)
	}
}

func recordDecimal(r Record, key string) (*decimal.Decimal, error) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch n := v.(type) {
	case decimal.Decimal:
		return Ptr(n), nil
	case float64:
		return Ptr(decimal.NewFromFloat(n)), nil
	case int:
		return Ptr(decimal.NewFromInt(int64(n))), nil
	case int64:
		return Ptr(decimal.NewFromInt(n)), nil
	case string:
		parsed, err := decimal.NewFromString(n)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: not a decimal: %q", ErrInvalidArgument, key, n)
		}
		return Ptr(parsed), nil
	default:
		return nil, fmt.Errorf("%w: field %q: unsupported type %T", ErrInvalidArgument, key, v)
	}
}

// stringOrEmpty reads an identity-style field where the empty string means
// "absent" (id/reference pairs are looked up by non-emptiness, never by zero
// value semantics).
func stringOrEmpty(r Record, key string) (string, error) {
	s, err := recordString(r, key)
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", nil
	}
	return *s, nil
}

// recordValueMap reads a flattened key->value map field. An absent field is
// nil; any present non-map shape is an error rather than a silent drop.
func recordValueMap(r Record, key string) (map[string]any, error) {
	switch v := r[key].(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: field %q must be a map, got %T", ErrInvalidArgument, key, v)
	}
}

func setIfPresent[T any](r Record, key string, v *T) {
	if v != nil {
		r[key] = *v
	}
}

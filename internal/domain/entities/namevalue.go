package entities

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// NameValue is the strictly-typed scalar pair serialized into the processor's
// nameValues request list. Immutable after construction; the value is stored
// in its canonical wire form (nil -> "null", bools -> "true"/"false", numbers
// -> decimal string).
type NameValue struct {
	Name  string
	Value string
}

// NewNameValue builds a NameValue, rejecting empty names and non-scalar
// values with ErrInvalidArgument.
func NewNameValue(name string, value any) (NameValue, error) {
	if name == "" {
		return NameValue{}, fmt.Errorf("%w: name value pair requires a non-empty name", ErrInvalidArgument)
	}
	s, err := scalarString(value)
	if err != nil {
		return NameValue{}, fmt.Errorf("%w: name value pair %q: %v", ErrInvalidArgument, name, err)
	}
	return NameValue{Name: name, Value: s}, nil
}

// NameValueFromAny is the loosely-typed construction path used when names
// arrive from a decoded payload rather than from Go source. A non-string name
// (number, bool, nil) is rejected even when it would render as a plausible
// key.
func NameValueFromAny(name any, value any) (NameValue, error) {
	s, ok := name.(string)
	if !ok {
		return NameValue{}, fmt.Errorf("%w: name value pair name must be a string, got %T", ErrInvalidArgument, name)
	}
	return NewNameValue(s, value)
}

// scalarString coerces a scalar to its canonical wire string. Sequences and
// associative values are not scalars and fail.
func scalarString(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "null", nil
	case string:
		return v, nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case decimal.Decimal:
		return v.String(), nil
	default:
		return "", fmt.Errorf("value must be scalar, got %T", value)
	}
}

package entities

import "errors"

var (
	// ErrInvalidArgument marks malformed primitive input to a value object
	// (NameValue name/value violations, unreadable record fields). Raised at
	// construction time, never recovered automatically.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidItem marks a line item failing its required-field validation
	// at Validate() time. Each violated rule wraps this with its own message.
	ErrInvalidItem = errors.New("invalid item")

	// ErrNoPaymentMethodVariant and ErrAmbiguousPaymentMethodVariant report
	// the polymorphic payment method holding zero, respectively more than
	// one, populated variant where exactly one is required.
	ErrNoPaymentMethodVariant        = errors.New("payment method has no populated variant")
	ErrAmbiguousPaymentMethodVariant = errors.New("payment method has more than one populated variant")
)

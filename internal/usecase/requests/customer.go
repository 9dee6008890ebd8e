package requests

import (
	"fmt"

	"vindicia_gateway/internal/domain/entities"
	"vindicia_gateway/internal/mapping"
)

// CreateCustomer upserts an account. The processor treats update as create
// when the id is new.
type CreateCustomer struct {
	Customer *entities.Customer
}

func (r *CreateCustomer) Object() string { return ObjectAccount }
func (r *CreateCustomer) Action() string { return "update" }

func (r *CreateCustomer) Validate() error {
	if r.Customer == nil {
		return fmt.Errorf("%w: create customer requires a customer", mapping.ErrInvalidRequest)
	}
	if r.Customer.ID == "" && r.Customer.Reference == "" {
		return fmt.Errorf("%w: create customer requires an id or reference", mapping.ErrInvalidRequest)
	}
	return nil
}

func (r *CreateCustomer) Build() (entities.Record, error) {
	payload, err := mapping.BuildCustomer(r.Customer)
	if err != nil {
		return nil, err
	}
	return entities.Record{"account": payload}, nil
}

// FetchCustomer looks an account up by merchant id or by VID.
type FetchCustomer struct {
	CustomerID        string
	CustomerReference string
}

func (r *FetchCustomer) Object() string { return ObjectAccount }

func (r *FetchCustomer) Action() string {
	if r.CustomerID != "" {
		return "fetchByMerchantAccountId"
	}
	return "fetchByVid"
}

func (r *FetchCustomer) Validate() error {
	if r.CustomerID == "" && r.CustomerReference == "" {
		return fmt.Errorf("%w: fetch requires a customer id or reference", mapping.ErrInvalidRequest)
	}
	return nil
}

func (r *FetchCustomer) Build() (entities.Record, error) {
	if r.CustomerID != "" {
		return entities.Record{"merchantAccountId": r.CustomerID}, nil
	}
	return entities.Record{"vid": r.CustomerReference}, nil
}

// CreatePaymentMethod stores a payment method, optionally linked to its
// owning account. Validation includes the polymorphic variant check so an
// ambiguous method never reaches the wire.
type CreatePaymentMethod struct {
	PaymentMethod *entities.PaymentMethod

	// ValidateCard asks the processor to run a verification authorization
	// before storing a card.
	ValidateCard bool

	// Hosted marks the web-session flow: the processor's form supplies the
	// card data, so no variant sub-object is required or sent.
	Hosted bool
}

func (r *CreatePaymentMethod) Object() string { return ObjectPaymentMethod }
func (r *CreatePaymentMethod) Action() string { return "update" }

func (r *CreatePaymentMethod) Validate() error {
	if r.PaymentMethod == nil {
		return fmt.Errorf("%w: create payment method requires a payment method", mapping.ErrInvalidRequest)
	}
	if r.Hosted {
		if r.PaymentMethod.ID == "" && r.PaymentMethod.Reference == "" {
			return fmt.Errorf("%w: hosted create payment method requires an id or reference", mapping.ErrInvalidRequest)
		}
		return nil
	}
	if _, err := r.PaymentMethod.ActiveVariant(); err != nil {
		return fmt.Errorf("%w: %v", mapping.ErrInvalidRequest, err)
	}
	return nil
}

func (r *CreatePaymentMethod) Build() (entities.Record, error) {
	opts := mapping.BuildOptions{Customer: mapping.EmbedRef}
	var (
		payload entities.Record
		err     error
	)
	if r.Hosted {
		payload, err = mapping.BuildHostedPaymentMethod(r.PaymentMethod, opts)
	} else {
		payload, err = mapping.BuildPaymentMethod(r.PaymentMethod, opts)
	}
	if err != nil {
		return nil, err
	}
	return entities.Record{
		"paymentMethod": payload,
		"validate":      r.ValidateCard,
	}, nil
}

// FetchPaymentMethod looks a payment method up by merchant id or by VID.
type FetchPaymentMethod struct {
	PaymentMethodID        string
	PaymentMethodReference string
}

func (r *FetchPaymentMethod) Object() string { return ObjectPaymentMethod }

func (r *FetchPaymentMethod) Action() string {
	if r.PaymentMethodID != "" {
		return "fetchByMerchantPaymentMethodId"
	}
	return "fetchByVid"
}

func (r *FetchPaymentMethod) Validate() error {
	if r.PaymentMethodID == "" && r.PaymentMethodReference == "" {
		return fmt.Errorf("%w: fetch requires a payment method id or reference", mapping.ErrInvalidRequest)
	}
	return nil
}

func (r *FetchPaymentMethod) Build() (entities.Record, error) {
	if r.PaymentMethodID != "" {
		return entities.Record{"merchantPaymentMethodId": r.PaymentMethodID}, nil
	}
	return entities.Record{"vid": r.PaymentMethodReference}, nil
}

package requests

import (
	"fmt"

	"vindicia_gateway/internal/domain/entities"
	"vindicia_gateway/internal/mapping"
)

// Web session method names, one per operation the hosted flow can wrap.
const (
	HOAMethodAuthorize           = "Transaction_Auth"
	HOAMethodPurchase            = "Transaction_AuthCapture"
	HOAMethodCreatePaymentMethod = "PaymentMethod_Update"
	HOAMethodCreateSubscription  = "AutoBill_Update"
)

// HOA is the hosted-order-automation variant of a direct request: the
// processor hosts the payment form, so instead of executing the operation we
// initialize a web session describing it. The direct request is owned and
// delegated to for validation and payload building in full — the two wire
// contracts cannot drift apart because there is only one builder.
type HOA struct {
	Direct Request
	Method string

	ReturnURL string
	ErrorURL  string
	IP        *string
}

func NewHOAAuthorize(direct *Authorize, returnURL, errorURL string) *HOA {
	return &HOA{Direct: direct, Method: HOAMethodAuthorize, ReturnURL: returnURL, ErrorURL: errorURL}
}

func NewHOAPurchase(direct *Purchase, returnURL, errorURL string) *HOA {
	return &HOA{Direct: direct, Method: HOAMethodPurchase, ReturnURL: returnURL, ErrorURL: errorURL}
}

func NewHOACreatePaymentMethod(direct *CreatePaymentMethod, returnURL, errorURL string) *HOA {
	return &HOA{Direct: direct, Method: HOAMethodCreatePaymentMethod, ReturnURL: returnURL, ErrorURL: errorURL}
}

func NewHOACreateSubscription(direct *CreateSubscription, returnURL, errorURL string) *HOA {
	return &HOA{Direct: direct, Method: HOAMethodCreateSubscription, ReturnURL: returnURL, ErrorURL: errorURL}
}

func (r *HOA) Object() string { return ObjectWebSession }
func (r *HOA) Action() string { return "initialize" }

func (r *HOA) Validate() error {
	if r.Direct == nil {
		return fmt.Errorf("%w: hosted request requires a direct request", mapping.ErrInvalidRequest)
	}
	if r.Method == "" {
		return fmt.Errorf("%w: hosted request requires a method", mapping.ErrInvalidRequest)
	}
	if r.ReturnURL == "" {
		return fmt.Errorf("%w: hosted request requires a returnUrl", mapping.ErrInvalidRequest)
	}
	if r.ErrorURL == "" {
		return fmt.Errorf("%w: hosted request requires an errorUrl", mapping.ErrInvalidRequest)
	}
	return r.Direct.Validate()
}

func (r *HOA) Build() (entities.Record, error) {
	payload, err := r.Direct.Build()
	if err != nil {
		return nil, err
	}
	session := entities.Record{
		"method":       r.Method,
		"returnUrl":    r.ReturnURL,
		"errorUrl":     r.ErrorURL,
		"methodParams": payload,
	}
	if r.IP != nil {
		session["ipAddress"] = *r.IP
	}
	return entities.Record{"session": session}, nil
}

// CompleteHOA finalizes a previously initialized web session after the
// hosted form posted back, yielding the wrapped method's direct result.
type CompleteHOA struct {
	SessionReference string
}

func (r *CompleteHOA) Object() string { return ObjectWebSession }
func (r *CompleteHOA) Action() string { return "finalize" }

func (r *CompleteHOA) Validate() error {
	if r.SessionReference == "" {
		return fmt.Errorf("%w: complete requires a session reference", mapping.ErrInvalidRequest)
	}
	return nil
}

func (r *CompleteHOA) Build() (entities.Record, error) {
	return entities.Record{"session": entities.Record{"VID": r.SessionReference}}, nil
}

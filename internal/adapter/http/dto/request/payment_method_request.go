package request

import (
	"vindicia_gateway/internal/domain/entities"
)

// CardRequest carries raw card data for direct (non-hosted) flows. Hosted
// flows never see these fields; the processor's form collects them.

type CardRequest struct {
	Number          string `json:"number" binding:"required"`
	ExpiryMonth     int    `json:"expiry_month" binding:"required"`
	ExpiryYear      int    `json:"expiry_year" binding:"required"`
	CVV             string `json:"cvv"`
	Name            string `json:"name"`
	BillingPostcode string `json:"billing_postcode"`
	BillingCountry  string `json:"billing_country"`
}

type PayPalRequest struct {
	Email     string `json:"email"`
	ReturnURL string `json:"return_url" binding:"required"`
	CancelURL string `json:"cancel_url" binding:"required"`
}

type ECPRequest struct {
	AccountNumber string `json:"account_number" binding:"required"`
	RoutingNumber string `json:"routing_number" binding:"required"`
	AccountType   string `json:"account_type"`
}

type ApplePayRequest struct {
	PaymentData string `json:"payment_data" binding:"required"`
	DisplayName string `json:"display_name"`
	Network     string `json:"network"`
}

// PaymentMethodRequest describes either a new payment method (one variant
// sub-object set) or a pointer to an existing one (id/reference only).
type PaymentMethodRequest struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`

	CustomerID        string `json:"customer_id"`
	CustomerReference string `json:"customer_reference"`

	Card     *CardRequest     `json:"card,omitempty"`
	PayPal   *PayPalRequest   `json:"paypal,omitempty"`
	ECP      *ECPRequest      `json:"ecp,omitempty"`
	ApplePay *ApplePayRequest `json:"apple_pay,omitempty"`

	Attributes map[string]string `json:"attributes,omitempty"`
}

func (r *PaymentMethodRequest) ToEntity() (*entities.PaymentMethod, error) {
	pm := &entities.PaymentMethod{
		ID:                r.ID,
		Reference:         r.Reference,
		CustomerID:        r.CustomerID,
		CustomerReference: r.CustomerReference,
	}
	if r.Card != nil {
		card := &entities.CreditCard{
			Number:      r.Card.Number,
			ExpiryMonth: entities.Ptr(r.Card.ExpiryMonth),
			ExpiryYear:  entities.Ptr(r.Card.ExpiryYear),
		}
		if r.Card.CVV != "" {
			card.CVV = entities.Ptr(r.Card.CVV)
		}
		if r.Card.Name != "" {
			card.Name = entities.Ptr(r.Card.Name)
		}
		if r.Card.BillingPostcode != "" {
			card.BillingPostcode = entities.Ptr(r.Card.BillingPostcode)
		}
		if r.Card.BillingCountry != "" {
			card.BillingCountry = entities.Ptr(r.Card.BillingCountry)
		}
		pm.CreditCard = card
	}
	if r.PayPal != nil {
		pp := &entities.PayPal{
			ReturnURL: entities.Ptr(r.PayPal.ReturnURL),
			CancelURL: entities.Ptr(r.PayPal.CancelURL),
		}
		if r.PayPal.Email != "" {
			pp.Email = entities.Ptr(r.PayPal.Email)
		}
		pm.PayPal = pp
	}
	if r.ECP != nil {
		ecp := &entities.ECPAccount{
			AccountNumber: r.ECP.AccountNumber,
			RoutingNumber: r.ECP.RoutingNumber,
		}
		if r.ECP.AccountType != "" {
			ecp.AccountType = entities.Ptr(r.ECP.AccountType)
		}
		pm.ECP = ecp
	}
	if r.ApplePay != nil {
		ap := &entities.ApplePayCard{PaymentData: r.ApplePay.PaymentData}
		if r.ApplePay.DisplayName != "" {
			ap.DisplayName = entities.Ptr(r.ApplePay.DisplayName)
		}
		if r.ApplePay.Network != "" {
			ap.Network = entities.Ptr(r.ApplePay.Network)
		}
		pm.ApplePay = ap
	}
	if len(r.Attributes) > 0 {
		bag, err := attributeBag(r.Attributes)
		if err != nil {
			return nil, err
		}
		pm.Attributes = bag
	}
	return pm, nil
}

func attributeBag(values map[string]string) (*entities.AttributeBag, error) {
	m := make(map[string]any, len(values))
	for k, v := range values {
		m[k] = v
	}
	return entities.AttributeBagFromMap(m)
}

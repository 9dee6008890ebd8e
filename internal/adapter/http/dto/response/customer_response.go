package response

import (
	"vindicia_gateway/internal/domain/entities"
)

type CustomerResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference,omitempty"`

	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`

	PaymentMethods []PaymentMethodResponse `json:"payment_methods,omitempty"`
	Attributes     map[string]string       `json:"attributes,omitempty"`
}

func FromCustomer(c *entities.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:        c.ID,
		Reference: c.Reference,
	}
	if c.Name != nil {
		resp.Name = *c.Name
	}
	if c.Email != nil {
		resp.Email = *c.Email
	}
	for _, pm := range c.PaymentMethods {
		resp.PaymentMethods = append(resp.PaymentMethods, FromPaymentMethod(pm))
	}
	resp.Attributes = attributesMap(c.Attributes)
	return resp
}

// CardResponse never carries the full PAN; only what the processor echoes
// back (brand, last four, bin, expiry).
type CardResponse struct {
	Brand       string `json:"brand,omitempty"`
	LastFour    string `json:"last_four,omitempty"`
	BIN         string `json:"bin,omitempty"`
	ExpiryMonth int    `json:"expiry_month,omitempty"`
	ExpiryYear  int    `json:"expiry_year,omitempty"`
}

type PaymentMethodResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference,omitempty"`

	CustomerID        string `json:"customer_id,omitempty"`
	CustomerReference string `json:"customer_reference,omitempty"`

	Type string `json:"type,omitempty"`

	Card *CardResponse `json:"card,omitempty"`

	Active     *bool             `json:"active,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

func FromPaymentMethod(pm *entities.PaymentMethod) PaymentMethodResponse {
	resp := PaymentMethodResponse{
		ID:                pm.ID,
		Reference:         pm.Reference,
		CustomerID:        pm.CustomerID,
		CustomerReference: pm.CustomerReference,
		Active:            pm.Active,
	}
	if variant, err := pm.ActiveVariant(); err == nil {
		resp.Type = string(variant)
	}
	if card := pm.CreditCard; card != nil {
		cr := &CardResponse{
			Brand:    card.Brand,
			LastFour: card.LastFour,
			BIN:      card.BIN,
		}
		if card.ExpiryMonth != nil {
			cr.ExpiryMonth = *card.ExpiryMonth
		}
		if card.ExpiryYear != nil {
			cr.ExpiryYear = *card.ExpiryYear
		}
		resp.Card = cr
	}
	resp.Attributes = attributesMap(pm.Attributes)
	return resp
}

func attributesMap(bag *entities.AttributeBag) map[string]string {
	if bag == nil || bag.Count() == 0 {
		return nil
	}
	out := make(map[string]string, bag.Count())
	for _, attr := range bag.All() {
		out[attr.Name] = attr.Value
	}
	return out
}

package request

import (
	"vindicia_gateway/internal/domain/entities"
)

type CustomerRequest struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`

	Name  string `json:"name"`
	Email string `json:"email"`

	TaxExemptions map[string]string `json:"tax_exemptions,omitempty"`
	Attributes    map[string]string `json:"attributes,omitempty"`
}

func (r *CustomerRequest) ToEntity() (*entities.Customer, error) {
	c := &entities.Customer{
		ID:        r.ID,
		Reference: r.Reference,
	}
	if r.Name != "" {
		c.Name = entities.Ptr(r.Name)
	}
	if r.Email != "" {
		c.Email = entities.Ptr(r.Email)
	}
	if len(r.TaxExemptions) > 0 {
		bag, err := entities.TaxExemptionBagFromMap(r.TaxExemptions)
		if err != nil {
			return nil, err
		}
		c.TaxExemptions = bag
	}
	if len(r.Attributes) > 0 {
		bag, err := attributeBag(r.Attributes)
		if err != nil {
			return nil, err
		}
		c.Attributes = bag
	}
	return c, nil
}

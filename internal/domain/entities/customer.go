package entities

import "fmt"

// Customer is the paying account holder. ID is the merchant-assigned id
// (wire merchantAccountId), Reference the processor VID; remote lookups need
// at least one of the two.
type Customer struct {
	ID        string
	Reference string

	Name  *string
	Email *string

	// PaymentMethods is only populated from fetch responses; the processor
	// returns every method stored under the account.
	PaymentMethods []*PaymentMethod

	TaxExemptions *TaxExemptionBag
	Attributes    *AttributeBag
}

func CustomerFromRecord(r Record) (*Customer, error) {
	c := &Customer{}
	var err error
	if c.ID, err = stringOrEmpty(r, "id"); err != nil {
		return nil, err
	}
	if c.Reference, err = stringOrEmpty(r, "reference"); err != nil {
		return nil, err
	}
	if c.Name, err = recordString(r, "name"); err != nil {
		return nil, err
	}
	if c.Email, err = recordString(r, "email"); err != nil {
		return nil, err
	}
	attributes, err := recordValueMap(r, "attributes")
	if err != nil {
		return nil, err
	}
	if attributes != nil {
		bag, err := AttributeBagFromMap(attributes)
		if err != nil {
			return nil, err
		}
		c.Attributes = bag
	}
	switch exemptions := r["taxExemptions"].(type) {
	case nil:
	case map[string]string:
		bag, err := TaxExemptionBagFromMap(exemptions)
		if err != nil {
			return nil, err
		}
		c.TaxExemptions = bag
	case map[string]any:
		flat := make(map[string]string, len(exemptions))
		for id, region := range exemptions {
			s, err := scalarString(region)
			if err != nil {
				return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidArgument, "taxExemptions", err)
			}
			flat[id] = s
		}
		bag, err := TaxExemptionBagFromMap(flat)
		if err != nil {
			return nil, err
		}
		c.TaxExemptions = bag
	default:
		return nil, fmt.Errorf("%w: field %q must be a map of exemption id to region", ErrInvalidArgument, "taxExemptions")
	}
	return c, nil
}

func (c *Customer) Parameters() Record {
	r := Record{}
	if c.ID != "" {
		r["id"] = c.ID
	}
	if c.Reference != "" {
		r["reference"] = c.Reference
	}
	setIfPresent(r, "name", c.Name)
	setIfPresent(r, "email", c.Email)
	if attributes := c.Attributes.Flatten(); attributes != nil {
		r["attributes"] = attributes
	}
	if exemptions := c.TaxExemptions.Flatten(); exemptions != nil {
		r["taxExemptions"] = exemptions
	}
	return r
}

package entities

// Plan is the billing plan (wire billingPlan) defining the renewal cadence a
// subscription follows.
type Plan struct {
	ID        string
	Reference string

	// Interval is one of day, week, month, year; IntervalCount the number of
	// intervals between renewals.
	Interval      *string
	IntervalCount *int

	Prices     *PriceBag
	Attributes *AttributeBag
}

func PlanFromRecord(r Record) (*Plan, error) {
	p := &Plan{}
	var err error
	if p.ID, err = stringOrEmpty(r, "id"); err != nil {
		return nil, err
	}
	if p.Reference, err = stringOrEmpty(r, "reference"); err != nil {
		return nil, err
	}
	if p.Interval, err = recordString(r, "interval"); err != nil {
		return nil, err
	}
	if p.IntervalCount, err = recordInt(r, "intervalCount"); err != nil {
		return nil, err
	}
	prices, err := recordValueMap(r, "prices")
	if err != nil {
		return nil, err
	}
	if prices != nil {
		bag, err := PriceBagFromMap(prices)
		if err != nil {
			return nil, err
		}
		p.Prices = bag
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
		p.Attributes = bag
	}
	return p, nil
}

func (p *Plan) Parameters() Record {
	r := Record{}
	if p.ID != "" {
		r["id"] = p.ID
	}
	if p.Reference != "" {
		r["reference"] = p.Reference
	}
	setIfPresent(r, "interval", p.Interval)
	setIfPresent(r, "intervalCount", p.IntervalCount)
	if prices := p.Prices.Flatten(); prices != nil {
		r["prices"] = prices
	}
	if attributes := p.Attributes.Flatten(); attributes != nil {
		r["attributes"] = attributes
	}
	return r
}

// Product is the catalog entry a subscription bills for. A product may pin a
// default plan by id/reference or embed it outright.
type Product struct {
	ID        string
	Reference string

	PlanID        string
	PlanReference string
	Plan          *Plan

	Description       *string
	TaxClassification *string

	Prices     *PriceBag
	Attributes *AttributeBag
}

func ProductFromRecord(r Record) (*Product, error) {
	p := &Product{}
	var err error
	if p.ID, err = stringOrEmpty(r, "id"); err != nil {
		return nil, err
	}
	if p.Reference, err = stringOrEmpty(r, "reference"); err != nil {
		return nil, err
	}
	if p.PlanID, err = stringOrEmpty(r, "planId"); err != nil {
		return nil, err
	}
	if p.PlanReference, err = stringOrEmpty(r, "planReference"); err != nil {
		return nil, err
	}
	if p.Description, err = recordString(r, "description"); err != nil {
		return nil, err
	}
	if p.TaxClassification, err = recordString(r, "taxClassification"); err != nil {
		return nil, err
	}
	prices, err := recordValueMap(r, "prices")
	if err != nil {
		return nil, err
	}
	if prices != nil {
		bag, err := PriceBagFromMap(prices)
		if err != nil {
			return nil, err
		}
		p.Prices = bag
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
		p.Attributes = bag
	}
	return p, nil
}

func (p *Product) Parameters() Record {
	r := Record{}
	if p.ID != "" {
		r["id"] = p.ID
	}
	if p.Reference != "" {
		r["reference"] = p.Reference
	}
	if p.PlanID != "" {
		r["planId"] = p.PlanID
	}
	if p.PlanReference != "" {
		r["planReference"] = p.PlanReference
	}
	setIfPresent(r, "description", p.Description)
	setIfPresent(r, "taxClassification", p.TaxClassification)
	if prices := p.Prices.Flatten(); prices != nil {
		r["prices"] = prices
	}
	if attributes := p.Attributes.Flatten(); attributes != nil {
		r["attributes"] = attributes
	}
	return r
}

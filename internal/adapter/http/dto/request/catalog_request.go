package request

import (
	"fmt"
	"time"

	"vindicia_gateway/internal/domain/entities"
	"vindicia_gateway/internal/mapping"
)

type PlanRequest struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`

	Interval      string `json:"interval"`
	IntervalCount int    `json:"interval_count"`

	// Prices maps currency code to amount, e.g. {"USD": "9.99"}.
	Prices     map[string]string `json:"prices,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

func (r *PlanRequest) ToEntity() (*entities.Plan, error) {
	p := &entities.Plan{
		ID:        r.ID,
		Reference: r.Reference,
	}
	if r.Interval != "" {
		p.Interval = entities.Ptr(r.Interval)
	}
	if r.IntervalCount != 0 {
		p.IntervalCount = entities.Ptr(r.IntervalCount)
	}
	if len(r.Prices) > 0 {
		bag, err := priceBag(r.Prices)
		if err != nil {
			return nil, err
		}
		p.Prices = bag
	}
	if len(r.Attributes) > 0 {
		bag, err := attributeBag(r.Attributes)
		if err != nil {
			return nil, err
		}
		p.Attributes = bag
	}
	return p, nil
}

type ProductRequest struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`

	PlanID        string `json:"plan_id"`
	PlanReference string `json:"plan_reference"`

	Description       string `json:"description"`
	TaxClassification string `json:"tax_classification"`

	Prices     map[string]string `json:"prices,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

func (r *ProductRequest) ToEntity() (*entities.Product, error) {
	p := &entities.Product{
		ID:            r.ID,
		Reference:     r.Reference,
		PlanID:        r.PlanID,
		PlanReference: r.PlanReference,
	}
	if r.Description != "" {
		p.Description = entities.Ptr(r.Description)
	}
	if r.TaxClassification != "" {
		p.TaxClassification = entities.Ptr(r.TaxClassification)
	}
	if len(r.Prices) > 0 {
		bag, err := priceBag(r.Prices)
		if err != nil {
			return nil, err
		}
		p.Prices = bag
	}
	if len(r.Attributes) > 0 {
		bag, err := attributeBag(r.Attributes)
		if err != nil {
			return nil, err
		}
		p.Attributes = bag
	}
	return p, nil
}

type SubscriptionRequest struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`

	CustomerID        string `json:"customer_id"`
	CustomerReference string `json:"customer_reference"`

	ProductID        string `json:"product_id"`
	ProductReference string `json:"product_reference"`

	PlanID        string `json:"plan_id"`
	PlanReference string `json:"plan_reference"`

	PaymentMethodID        string                `json:"payment_method_id"`
	PaymentMethodReference string                `json:"payment_method_reference"`
	PaymentMethod          *PaymentMethodRequest `json:"payment_method,omitempty"`

	Currency  string `json:"currency"`
	StartTime string `json:"start_time"`

	Items      []ItemRequest     `json:"items,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

func (r *SubscriptionRequest) ToEntity() (*entities.Subscription, error) {
	s := &entities.Subscription{
		ID:                     r.ID,
		Reference:              r.Reference,
		CustomerID:             r.CustomerID,
		CustomerReference:      r.CustomerReference,
		ProductID:              r.ProductID,
		ProductReference:       r.ProductReference,
		PlanID:                 r.PlanID,
		PlanReference:          r.PlanReference,
		PaymentMethodID:        r.PaymentMethodID,
		PaymentMethodReference: r.PaymentMethodReference,
	}
	if r.Currency != "" {
		s.Currency = entities.Ptr(r.Currency)
	}
	if r.StartTime != "" {
		start, err := time.Parse(time.RFC3339, r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: start_time %q is not RFC3339", mapping.ErrInvalidRequest, r.StartTime)
		}
		s.StartTime = entities.Ptr(start)
	}
	if r.PaymentMethod != nil {
		pm, err := r.PaymentMethod.ToEntity()
		if err != nil {
			return nil, err
		}
		s.PaymentMethod = pm
	}
	if len(r.Items) > 0 {
		bag := entities.NewItemBag()
		for _, item := range r.Items {
			it, err := item.toEntity()
			if err != nil {
				return nil, err
			}
			bag.Add(it)
		}
		s.Items = bag
	}
	if len(r.Attributes) > 0 {
		bag, err := attributeBag(r.Attributes)
		if err != nil {
			return nil, err
		}
		s.Attributes = bag
	}
	return s, nil
}

func priceBag(values map[string]string) (*entities.PriceBag, error) {
	m := make(map[string]any, len(values))
	for k, v := range values {
		m[k] = v
	}
	return entities.PriceBagFromMap(m)
}

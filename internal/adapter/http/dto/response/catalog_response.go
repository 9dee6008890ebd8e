package response

import (
	"time"

	"vindicia_gateway/internal/domain/entities"
)

type PlanResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference,omitempty"`

	Interval      string `json:"interval,omitempty"`
	IntervalCount int    `json:"interval_count,omitempty"`

	Prices map[string]string `json:"prices,omitempty"`
}

func FromPlan(p *entities.Plan) PlanResponse {
	resp := PlanResponse{
		ID:        p.ID,
		Reference: p.Reference,
	}
	if p.Interval != nil {
		resp.Interval = *p.Interval
	}
	if p.IntervalCount != nil {
		resp.IntervalCount = *p.IntervalCount
	}
	resp.Prices = pricesMap(p.Prices)
	return resp
}

type ProductResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference,omitempty"`

	PlanID        string `json:"plan_id,omitempty"`
	PlanReference string `json:"plan_reference,omitempty"`

	Description       string `json:"description,omitempty"`
	TaxClassification string `json:"tax_classification,omitempty"`

	Prices map[string]string `json:"prices,omitempty"`
}

func FromProduct(p *entities.Product) ProductResponse {
	resp := ProductResponse{
		ID:            p.ID,
		Reference:     p.Reference,
		PlanID:        p.PlanID,
		PlanReference: p.PlanReference,
	}
	if p.Description != nil {
		resp.Description = *p.Description
	}
	if p.TaxClassification != nil {
		resp.TaxClassification = *p.TaxClassification
	}
	resp.Prices = pricesMap(p.Prices)
	return resp
}

type SubscriptionResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference,omitempty"`

	CustomerID        string `json:"customer_id,omitempty"`
	CustomerReference string `json:"customer_reference,omitempty"`

	ProductID        string `json:"product_id,omitempty"`
	ProductReference string `json:"product_reference,omitempty"`

	PlanID        string `json:"plan_id,omitempty"`
	PlanReference string `json:"plan_reference,omitempty"`

	PaymentMethodID        string `json:"payment_method_id,omitempty"`
	PaymentMethodReference string `json:"payment_method_reference,omitempty"`

	Currency  string     `json:"currency,omitempty"`
	StartTime *time.Time `json:"start_time,omitempty"`
	Status    string     `json:"status,omitempty"`
}

func FromSubscription(s *entities.Subscription) SubscriptionResponse {
	resp := SubscriptionResponse{
		ID:                     s.ID,
		Reference:              s.Reference,
		CustomerID:             s.CustomerID,
		CustomerReference:      s.CustomerReference,
		ProductID:              s.ProductID,
		ProductReference:       s.ProductReference,
		PlanID:                 s.PlanID,
		PlanReference:          s.PlanReference,
		PaymentMethodID:        s.PaymentMethodID,
		PaymentMethodReference: s.PaymentMethodReference,
		StartTime:              s.StartTime,
		Status:                 string(s.Status),
	}
	if s.Currency != nil {
		resp.Currency = *s.Currency
	}
	return resp
}

func pricesMap(bag *entities.PriceBag) map[string]string {
	if bag == nil || bag.Count() == 0 {
		return nil
	}
	out := make(map[string]string, bag.Count())
	for _, price := range bag.All() {
		out[price.Currency] = price.Amount.String()
	}
	return out
}

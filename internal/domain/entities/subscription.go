package entities

import (
	"fmt"
	"time"
)

// SubscriptionStatus mirrors the autobill lifecycle states the processor
// reports.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "Active"
	SubscriptionStatusPending   SubscriptionStatus = "Pending Activation"
	SubscriptionStatusSuspended SubscriptionStatus = "Suspended"
	SubscriptionStatusCancelled SubscriptionStatus = "Cancelled"
)

// Subscription is the recurring billing agreement (wire autobill) tying a
// customer, product, plan and payment method together. Each related entity
// can be referenced by flattened scalars or embedded whole; the mapping layer
// prefers the scalars when both are present.
type Subscription struct {
	ID        string
	Reference string

	CustomerID        string
	CustomerReference string
	Customer          *Customer

	ProductID        string
	ProductReference string
	Product          *Product

	PlanID        string
	PlanReference string
	Plan          *Plan

	PaymentMethodID        string
	PaymentMethodReference string
	PaymentMethod          *PaymentMethod

	Currency  *string
	StartTime *time.Time
	Status    SubscriptionStatus

	Items      *ItemBag
	Attributes *AttributeBag
}

func SubscriptionFromRecord(r Record) (*Subscription, error) {
	s := &Subscription{}
	var err error
	if s.ID, err = stringOrEmpty(r, "id"); err != nil {
		return nil, err
	}
	if s.Reference, err = stringOrEmpty(r, "reference"); err != nil {
		return nil, err
	}
	if s.CustomerID, err = stringOrEmpty(r, "customerId"); err != nil {
		return nil, err
	}
	if s.CustomerReference, err = stringOrEmpty(r, "customerReference"); err != nil {
		return nil, err
	}
	if s.ProductID, err = stringOrEmpty(r, "productId"); err != nil {
		return nil, err
	}
	if s.ProductReference, err = stringOrEmpty(r, "productReference"); err != nil {
		return nil, err
	}
	if s.PlanID, err = stringOrEmpty(r, "planId"); err != nil {
		return nil, err
	}
	if s.PlanReference, err = stringOrEmpty(r, "planReference"); err != nil {
		return nil, err
	}
	if s.PaymentMethodID, err = stringOrEmpty(r, "paymentMethodId"); err != nil {
		return nil, err
	}
	if s.PaymentMethodReference, err = stringOrEmpty(r, "paymentMethodReference"); err != nil {
		return nil, err
	}
	if s.Currency, err = recordString(r, "currency"); err != nil {
		return nil, err
	}
	status, err := stringOrEmpty(r, "status")
	if err != nil {
		return nil, err
	}
	s.Status = SubscriptionStatus(status)
	start, err := recordString(r, "startTime")
	if err != nil {
		return nil, err
	}
	if start != nil {
		ts, perr := time.Parse(time.RFC3339, *start)
		if perr != nil {
			return nil, fmt.Errorf("%w: field %q: not an RFC3339 timestamp: %q", ErrInvalidArgument, "startTime", *start)
		}
		s.StartTime = &ts
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
		s.Attributes = bag
	}
	return s, nil
}

func (s *Subscription) Parameters() Record {
	r := Record{}
	if s.ID != "" {
		r["id"] = s.ID
	}
	if s.Reference != "" {
		r["reference"] = s.Reference
	}
	if s.CustomerID != "" {
		r["customerId"] = s.CustomerID
	}
	if s.CustomerReference != "" {
		r["customerReference"] = s.CustomerReference
	}
	if s.ProductID != "" {
		r["productId"] = s.ProductID
	}
	if s.ProductReference != "" {
		r["productReference"] = s.ProductReference
	}
	if s.PlanID != "" {
		r["planId"] = s.PlanID
	}
	if s.PlanReference != "" {
		r["planReference"] = s.PlanReference
	}
	if s.PaymentMethodID != "" {
		r["paymentMethodId"] = s.PaymentMethodID
	}
	if s.PaymentMethodReference != "" {
		r["paymentMethodReference"] = s.PaymentMethodReference
	}
	setIfPresent(r, "currency", s.Currency)
	if s.Status != "" {
		r["status"] = string(s.Status)
	}
	if s.StartTime != nil {
		r["startTime"] = s.StartTime.UTC().Format(time.RFC3339)
	}
	if attributes := s.Attributes.Flatten(); attributes != nil {
		r["attributes"] = attributes
	}
	return r
}

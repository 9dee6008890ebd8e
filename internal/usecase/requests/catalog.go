package requests

import (
	"fmt"

	"vindicia_gateway/internal/domain/entities"
	"vindicia_gateway/internal/mapping"
)

// CreatePlan upserts a billing plan.
type CreatePlan struct {
	Plan *entities.Plan
}

func (r *CreatePlan) Object() string { return ObjectBillingPlan }
func (r *CreatePlan) Action() string { return "update" }

func (r *CreatePlan) Validate() error {
	if r.Plan == nil {
		return fmt.Errorf("%w: create plan requires a plan", mapping.ErrInvalidRequest)
	}
	if r.Plan.ID == "" && r.Plan.Reference == "" {
		return fmt.Errorf("%w: create plan requires an id or reference", mapping.ErrInvalidRequest)
	}
	if r.Plan.Interval == nil {
		return fmt.Errorf("%w: create plan requires an interval", mapping.ErrInvalidRequest)
	}
	return nil
}

func (r *CreatePlan) Build() (entities.Record, error) {
	payload, err := mapping.BuildPlan(r.Plan)
	if err != nil {
		return nil, err
	}
	return entities.Record{"billingPlan": payload}, nil
}

// FetchPlan looks a billing plan up by merchant id or by VID.
type FetchPlan struct {
	PlanID        string
	PlanReference string
}

func (r *FetchPlan) Object() string { return ObjectBillingPlan }

func (r *FetchPlan) Action() string {
	if r.PlanID != "" {
		return "fetchByMerchantBillingPlanId"
	}
	return "fetchByVid"
}

func (r *FetchPlan) Validate() error {
	if r.PlanID == "" && r.PlanReference == "" {
		return fmt.Errorf("%w: fetch requires a plan id or reference", mapping.ErrInvalidRequest)
	}
	return nil
}

func (r *FetchPlan) Build() (entities.Record, error) {
	if r.PlanID != "" {
		return entities.Record{"merchantBillingPlanId": r.PlanID}, nil
	}
	return entities.Record{"vid": r.PlanReference}, nil
}

// CreateProduct upserts a product.
type CreateProduct struct {
	Product *entities.Product
}

func (r *CreateProduct) Object() string { return ObjectProduct }
func (r *CreateProduct) Action() string { return "update" }

func (r *CreateProduct) Validate() error {
	if r.Product == nil {
		return fmt.Errorf("%w: create product requires a product", mapping.ErrInvalidRequest)
	}
	if r.Product.ID == "" && r.Product.Reference == "" {
		return fmt.Errorf("%w: create product requires an id or reference", mapping.ErrInvalidRequest)
	}
	return nil
}

func (r *CreateProduct) Build() (entities.Record, error) {
	payload, err := mapping.BuildProduct(r.Product, mapping.BuildOptions{Plan: mapping.EmbedRef})
	if err != nil {
		return nil, err
	}
	return entities.Record{"product": payload}, nil
}

// FetchProduct looks a product up by merchant id or by VID.
type FetchProduct struct {
	ProductID        string
	ProductReference string
}

func (r *FetchProduct) Object() string { return ObjectProduct }

func (r *FetchProduct) Action() string {
	if r.ProductID != "" {
		return "fetchByMerchantProductId"
	}
	return "fetchByVid"
}

func (r *FetchProduct) Validate() error {
	if r.ProductID == "" && r.ProductReference == "" {
		return fmt.Errorf("%w: fetch requires a product id or reference", mapping.ErrInvalidRequest)
	}
	return nil
}

func (r *FetchProduct) Build() (entities.Record, error) {
	if r.ProductID != "" {
		return entities.Record{"merchantProductId": r.ProductID}, nil
	}
	return entities.Record{"vid": r.ProductReference}, nil
}

// CreateSubscription upserts an autobill. Relations keep their id/reference
// form; create-subscription composites that carry full entities embed the
// customer and payment method.
type CreateSubscription struct {
	Subscription *entities.Subscription
}

func (r *CreateSubscription) Object() string { return ObjectAutoBill }
func (r *CreateSubscription) Action() string { return "update" }

func (r *CreateSubscription) Validate() error {
	s := r.Subscription
	if s == nil {
		return fmt.Errorf("%w: create subscription requires a subscription", mapping.ErrInvalidRequest)
	}
	if s.ID == "" && s.Reference == "" {
		return fmt.Errorf("%w: create subscription requires an id or reference", mapping.ErrInvalidRequest)
	}
	if s.Customer == nil && s.CustomerID == "" && s.CustomerReference == "" {
		return fmt.Errorf("%w: create subscription requires a customer", mapping.ErrInvalidRequest)
	}
	if s.Product == nil && s.ProductID == "" && s.ProductReference == "" {
		return fmt.Errorf("%w: create subscription requires a product", mapping.ErrInvalidRequest)
	}
	if s.Plan == nil && s.PlanID == "" && s.PlanReference == "" {
		return fmt.Errorf("%w: create subscription requires a plan", mapping.ErrInvalidRequest)
	}
	return nil
}

func (r *CreateSubscription) Build() (entities.Record, error) {
	payload, err := mapping.BuildSubscription(r.Subscription, mapping.BuildOptions{
		Customer:      mapping.EmbedFull,
		PaymentMethod: mapping.EmbedFull,
		Product:       mapping.EmbedRef,
		Plan:          mapping.EmbedRef,
	})
	if err != nil {
		return nil, err
	}
	return entities.Record{"autobill": payload}, nil
}

// FetchSubscription looks an autobill up by merchant id or by VID.
type FetchSubscription struct {
	SubscriptionID        string
	SubscriptionReference string
}

func (r *FetchSubscription) Object() string { return ObjectAutoBill }

func (r *FetchSubscription) Action() string {
	if r.SubscriptionID != "" {
		return "fetchByMerchantAutoBillId"
	}
	return "fetchByVid"
}

func (r *FetchSubscription) Validate() error {
	if r.SubscriptionID == "" && r.SubscriptionReference == "" {
		return fmt.Errorf("%w: fetch requires a subscription id or reference", mapping.ErrInvalidRequest)
	}
	return nil
}

func (r *FetchSubscription) Build() (entities.Record, error) {
	if r.SubscriptionID != "" {
		return entities.Record{"merchantAutoBillId": r.SubscriptionID}, nil
	}
	return entities.Record{"vid": r.SubscriptionReference}, nil
}

// CancelSubscription stops an autobill. Disentitle controls whether the
// customer keeps access through the end of the paid period.
type CancelSubscription struct {
	SubscriptionID        string
	SubscriptionReference string
	Disentitle            bool
}

func (r *CancelSubscription) Object() string { return ObjectAutoBill }
func (r *CancelSubscription) Action() string { return "cancel" }

func (r *CancelSubscription) Validate() error {
	if r.SubscriptionID == "" && r.SubscriptionReference == "" {
		return fmt.Errorf("%w: cancel requires a subscription id or reference", mapping.ErrInvalidRequest)
	}
	return nil
}

func (r *CancelSubscription) Build() (entities.Record, error) {
	ref := entities.Record{}
	if r.SubscriptionID != "" {
		ref["merchantAutoBillId"] = r.SubscriptionID
	}
	if r.SubscriptionReference != "" {
		ref["VID"] = r.SubscriptionReference
	}
	return entities.Record{"autobill": ref, "disentitle": r.Disentitle}, nil
}

package mapping

import (
	"fmt"
	"time"

	"vindicia_gateway/internal/domain/entities"
)

// EmbedMode selects how a related entity travels in an outbound payload:
// as its id/reference pair only, or as the fully built nested object. The
// right choice is operation-specific, so every call site picks its own.
type EmbedMode int

const (
	EmbedRef EmbedMode = iota
	EmbedFull
)

// BuildOptions carries the per-relation embed choices for one build call.
type BuildOptions struct {
	Customer      EmbedMode
	PaymentMethod EmbedMode
	Product       EmbedMode
	Plan          EmbedMode
}

// identity resolves an id/reference pair against an embedded entity. The
// explicit scalars win; the embedded entity only fills the halves the caller
// left blank.
func identity(id, reference string, embeddedID, embeddedReference string) (string, string) {
	if id == "" {
		id = embeddedID
	}
	if reference == "" {
		reference = embeddedReference
	}
	return id, reference
}

// BuildTransaction produces the wire transaction object.
func BuildTransaction(t *entities.Transaction, opts BuildOptions) (entities.Record, error) {
	r := entities.Record{}
	pair(r, wireTransactionID, t.ID, t.Reference)

	if account, err := buildCustomerRelation(t.CustomerID, t.CustomerReference, t.Customer, opts.Customer); err != nil {
		return nil, err
	} else if account != nil {
		r[wireAccount] = account
	}

	if pm, err := buildPaymentMethodRelation(t.PaymentMethodID, t.PaymentMethodReference, t.PaymentMethod, opts.PaymentMethod); err != nil {
		return nil, err
	} else if pm != nil {
		r[wireSourcePayment] = pm
	}

	if t.Amount != nil {
		r["amount"] = t.Amount.String()
	}
	if t.Currency != nil {
		r["currency"] = *t.Currency
	}
	if t.IP != nil {
		r["sourceIp"] = *t.IP
	}
	if t.Timestamp != nil {
		r["timestamp"] = t.Timestamp.UTC().Format(time.RFC3339)
	}
	if t.Items != nil && t.Items.Count() > 0 {
		items, err := buildItems(t.Items)
		if err != nil {
			return nil, err
		}
		r[wireItems] = items
	}
	if len(t.NameValues) > 0 {
		r[wireNameValues] = buildNameValues(t.NameValues)
	}
	return r, nil
}

// BuildCustomer produces the wire account object. Attributes ride along as
// nameValues; tax exemptions as their own repeating group.
func BuildCustomer(c *entities.Customer) (entities.Record, error) {
	r := entities.Record{}
	pair(r, wireAccountID, c.ID, c.Reference)
	if c.Name != nil {
		r["name"] = *c.Name
	}
	if c.Email != nil {
		r["emailAddress"] = *c.Email
	}
	if c.TaxExemptions != nil && c.TaxExemptions.Count() > 0 {
		exemptions := make([]any, 0, c.TaxExemptions.Count())
		for _, te := range c.TaxExemptions.All() {
			exemptions = append(exemptions, entities.Record{
				"exemptionId": te.ExemptionID,
				"region":      te.Region,
				"active":      te.Active,
			})
		}
		r[wireTaxExemptions] = exemptions
	}
	if nvs := attributeNameValues(c.Attributes); nvs != nil {
		r[wireNameValues] = nvs
	}
	return r, nil
}

// BuildPaymentMethod produces the wire paymentMethod object for exactly the
// populated variant, failing with ErrInvalidRequest when the variant is
// absent or ambiguous.
func BuildPaymentMethod(pm *entities.PaymentMethod, opts BuildOptions) (entities.Record, error) {
	r, err := buildPaymentVariant(pm)
	if err != nil {
		return nil, err
	}
	pair(r, wirePaymentMethodID, pm.ID, pm.Reference)

	if account, err := buildCustomerRelation(pm.CustomerID, pm.CustomerReference, pm.Customer, opts.Customer); err != nil {
		return nil, err
	} else if account != nil {
		r[wireAccount] = account
	}

	if pm.Active != nil {
		r["active"] = *pm.Active
	}
	if nvs := attributeNameValues(pm.Attributes); nvs != nil {
		r[wireNameValues] = nvs
	}
	return r, nil
}

// BuildHostedPaymentMethod produces the skeleton paymentMethod object for
// hosted flows, where the processor's form supplies the card data. Only
// identity, account linkage and attributes go over the wire; the type
// defaults to CreditCard, which is the only variant hosted forms collect.
func BuildHostedPaymentMethod(pm *entities.PaymentMethod, opts BuildOptions) (entities.Record, error) {
	r := entities.Record{wireType: string(entities.PaymentVariantCreditCard)}
	pair(r, wirePaymentMethodID, pm.ID, pm.Reference)

	if account, err := buildCustomerRelation(pm.CustomerID, pm.CustomerReference, pm.Customer, opts.Customer); err != nil {
		return nil, err
	} else if account != nil {
		r[wireAccount] = account
	}

	if nvs := attributeNameValues(pm.Attributes); nvs != nil {
		r[wireNameValues] = nvs
	}
	return r, nil
}

// BuildSubscription produces the wire autobill object.
func BuildSubscription(s *entities.Subscription, opts BuildOptions) (entities.Record, error) {
	r := entities.Record{}
	pair(r, wireAutoBillID, s.ID, s.Reference)

	if account, err := buildCustomerRelation(s.CustomerID, s.CustomerReference, s.Customer, opts.Customer); err != nil {
		return nil, err
	} else if account != nil {
		r[wireAccount] = account
	}
	if pm, err := buildPaymentMethodRelation(s.PaymentMethodID, s.PaymentMethodReference, s.PaymentMethod, opts.PaymentMethod); err != nil {
		return nil, err
	} else if pm != nil {
		r[wirePaymentMethod] = pm
	}
	if product, err := buildProductRelation(s, opts); err != nil {
		return nil, err
	} else if product != nil {
		r[wireProduct] = product
	}
	if plan, err := buildPlanRelation(s.PlanID, s.PlanReference, s.Plan, opts.Plan); err != nil {
		return nil, err
	} else if plan != nil {
		r[wireBillingPlan] = plan
	}

	if s.Currency != nil {
		r["currency"] = *s.Currency
	}
	if s.StartTime != nil {
		r["startTimestamp"] = s.StartTime.UTC().Format(time.RFC3339)
	}
	if s.Items != nil && s.Items.Count() > 0 {
		items, err := buildItems(s.Items)
		if err != nil {
			return nil, err
		}
		r[wireItems] = items
	}
	if nvs := attributeNameValues(s.Attributes); nvs != nil {
		r[wireNameValues] = nvs
	}
	return r, nil
}

// BuildProduct produces the wire product object.
func BuildProduct(p *entities.Product, opts BuildOptions) (entities.Record, error) {
	r := entities.Record{}
	pair(r, wireProductID, p.ID, p.Reference)
	if plan, err := buildPlanRelation(p.PlanID, p.PlanReference, p.Plan, opts.Plan); err != nil {
		return nil, err
	} else if plan != nil {
		r[wireDefaultPlan] = plan
	}
	if p.Description != nil {
		r["description"] = *p.Description
	}
	if p.TaxClassification != nil {
		r["taxClassification"] = *p.TaxClassification
	}
	if prices := priceList(p.Prices); prices != nil {
		r[wirePrices] = prices
	}
	if nvs := attributeNameValues(p.Attributes); nvs != nil {
		r[wireNameValues] = nvs
	}
	return r, nil
}

// BuildPlan produces the wire billingPlan object.
func BuildPlan(p *entities.Plan) (entities.Record, error) {
	r := entities.Record{}
	pair(r, wireBillingPlanID, p.ID, p.Reference)
	if p.Interval != nil {
		r["periodType"] = *p.Interval
	}
	if p.IntervalCount != nil {
		r["periodCount"] = *p.IntervalCount
	}
	if prices := priceList(p.Prices); prices != nil {
		r[wirePrices] = prices
	}
	if nvs := attributeNameValues(p.Attributes); nvs != nil {
		r[wireNameValues] = nvs
	}
	return r, nil
}

// BuildRefund produces the wire refund object. Refund items are validated
// before serialization.
func BuildRefund(rf *entities.Refund) (entities.Record, error) {
	r := entities.Record{}
	id, reference := identity(rf.TransactionID, rf.TransactionReference, transactionID(rf.Transaction), transactionReference(rf.Transaction))
	if id != "" {
		r[wireTransactionID] = id
	}
	if reference != "" {
		r["transactionVid"] = reference
	}
	if rf.Amount != nil {
		r["amount"] = rf.Amount.String()
	}
	if rf.Currency != nil {
		r["currency"] = *rf.Currency
	}
	if rf.Reason != nil {
		r["note"] = *rf.Reason
	}
	if rf.Items != nil && rf.Items.Count() > 0 {
		if err := rf.Items.Validate(); err != nil {
			return nil, err
		}
		items := make([]any, 0, rf.Items.Count())
		for _, it := range rf.Items.All() {
			items = append(items, it.Parameters())
		}
		r[wireRefundItems] = items
	}
	return r, nil
}

func transactionID(t *entities.Transaction) string {
	if t == nil {
		return ""
	}
	return t.ID
}

func transactionReference(t *entities.Transaction) string {
	if t == nil {
		return ""
	}
	return t.Reference
}

func buildCustomerRelation(id, reference string, c *entities.Customer, mode EmbedMode) (entities.Record, error) {
	if mode == EmbedFull && c != nil {
		full, err := BuildCustomer(c)
		if err != nil {
			return nil, err
		}
		// Explicit scalars still take precedence over the embedded entity's
		// own identity.
		pair(full, wireAccountID, id, reference)
		return full, nil
	}
	id, reference = identity(id, reference, customerID(c), customerReference(c))
	if id == "" && reference == "" {
		return nil, nil
	}
	r := entities.Record{}
	pair(r, wireAccountID, id, reference)
	return r, nil
}

func customerID(c *entities.Customer) string {
	if c == nil {
		return ""
	}
	return c.ID
}

func customerReference(c *entities.Customer) string {
	if c == nil {
		return ""
	}
	return c.Reference
}

func buildPaymentMethodRelation(id, reference string, pm *entities.PaymentMethod, mode EmbedMode) (entities.Record, error) {
	if mode == EmbedFull && pm != nil {
		full, err := BuildPaymentMethod(pm, BuildOptions{})
		if err != nil {
			return nil, err
		}
		pair(full, wirePaymentMethodID, id, reference)
		return full, nil
	}
	var embeddedID, embeddedReference string
	if pm != nil {
		embeddedID, embeddedReference = pm.ID, pm.Reference
	}
	id, reference = identity(id, reference, embeddedID, embeddedReference)
	if id == "" && reference == "" {
		return nil, nil
	}
	r := entities.Record{}
	pair(r, wirePaymentMethodID, id, reference)
	return r, nil
}

func buildProductRelation(s *entities.Subscription, opts BuildOptions) (entities.Record, error) {
	if opts.Product == EmbedFull && s.Product != nil {
		full, err := BuildProduct(s.Product, opts)
		if err != nil {
			return nil, err
		}
		pair(full, wireProductID, s.ProductID, s.ProductReference)
		return full, nil
	}
	var embeddedID, embeddedReference string
	if s.Product != nil {
		embeddedID, embeddedReference = s.Product.ID, s.Product.Reference
	}
	id, reference := identity(s.ProductID, s.ProductReference, embeddedID, embeddedReference)
	if id == "" && reference == "" {
		return nil, nil
	}
	r := entities.Record{}
	pair(r, wireProductID, id, reference)
	return r, nil
}

func buildPlanRelation(id, reference string, p *entities.Plan, mode EmbedMode) (entities.Record, error) {
	if mode == EmbedFull && p != nil {
		full, err := BuildPlan(p)
		if err != nil {
			return nil, err
		}
		pair(full, wireBillingPlanID, id, reference)
		return full, nil
	}
	var embeddedID, embeddedReference string
	if p != nil {
		embeddedID, embeddedReference = p.ID, p.Reference
	}
	id, reference = identity(id, reference, embeddedID, embeddedReference)
	if id == "" && reference == "" {
		return nil, nil
	}
	r := entities.Record{}
	pair(r, wireBillingPlanID, id, reference)
	return r, nil
}

// buildPaymentVariant emits the wire shape for exactly the populated payment
// variant.
func buildPaymentVariant(pm *entities.PaymentMethod) (entities.Record, error) {
	kind, err := pm.ActiveVariant()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	r := entities.Record{wireType: string(kind)}
	switch kind {
	case entities.PaymentVariantCreditCard:
		card, err := buildCreditCard(pm.CreditCard)
		if err != nil {
			return nil, err
		}
		r[wireCreditCard] = card
	case entities.PaymentVariantPayPal:
		r[wirePayPal] = buildPayPal(pm.PayPal)
	case entities.PaymentVariantECP:
		r[wireECP] = buildECP(pm.ECP)
	case entities.PaymentVariantApplePay:
		r[wireApplePay] = buildApplePay(pm.ApplePay)
	}
	return r, nil
}

func buildCreditCard(cc *entities.CreditCard) (entities.Record, error) {
	r := entities.Record{}
	if cc.Number != "" {
		r[wireCardAccount] = cc.Number
	}
	if (cc.ExpiryMonth == nil) != (cc.ExpiryYear == nil) {
		return nil, fmt.Errorf("%w: credit card expiry requires both month and year", ErrInvalidRequest)
	}
	if cc.ExpiryMonth != nil {
		if *cc.ExpiryMonth < 1 || *cc.ExpiryMonth > 12 {
			return nil, fmt.Errorf("%w: credit card expiry month %d out of range", ErrInvalidRequest, *cc.ExpiryMonth)
		}
		r[wireCardExpiration] = fmt.Sprintf("%04d%02d", *cc.ExpiryYear, *cc.ExpiryMonth)
	}
	if cc.LastFour != "" {
		r[wireCardLastDigits] = cc.LastFour
	}
	if cc.BIN != "" {
		r[wireCardBIN] = cc.BIN
	}
	if cc.Brand != "" {
		r[wireCardNetwork] = cc.Brand
	}
	if cc.CVV != nil {
		r[wireCardCVN] = *cc.CVV
	}
	if cc.Name != nil {
		r["name"] = *cc.Name
	}
	if cc.BillingPostcode != nil || cc.BillingCountry != nil {
		address := entities.Record{}
		if cc.BillingPostcode != nil {
			address["postalCode"] = *cc.BillingPostcode
		}
		if cc.BillingCountry != nil {
			address["country"] = *cc.BillingCountry
		}
		r[wireBillingAddress] = address
	}
	return r, nil
}

func buildPayPal(pp *entities.PayPal) entities.Record {
	r := entities.Record{}
	if pp.Email != nil {
		r["paypalEmail"] = *pp.Email
	}
	if pp.Token != nil {
		r["paypalBillingAgreementId"] = *pp.Token
	}
	if pp.ReturnURL != nil {
		r["returnUrl"] = *pp.ReturnURL
	}
	if pp.CancelURL != nil {
		r["cancelUrl"] = *pp.CancelURL
	}
	return r
}

func buildECP(ecp *entities.ECPAccount) entities.Record {
	r := entities.Record{}
	if ecp.AccountNumber != "" {
		r["account"] = ecp.AccountNumber
	}
	if ecp.RoutingNumber != "" {
		r["routingNumber"] = ecp.RoutingNumber
	}
	if ecp.AccountType != nil {
		r["accountType"] = *ecp.AccountType
	}
	return r
}

func buildApplePay(ap *entities.ApplePayCard) entities.Record {
	r := entities.Record{}
	if ap.PaymentData != "" {
		r["paymentInstrument"] = ap.PaymentData
	}
	if ap.DisplayName != nil {
		r["displayName"] = *ap.DisplayName
	}
	if ap.Network != nil {
		r["network"] = *ap.Network
	}
	if ap.ApplePayTransactionID != nil {
		r["applePayTransactionId"] = *ap.ApplePayTransactionID
	}
	return r
}

// buildItems validates and serializes a transaction item bag, preserving
// insertion order.
func buildItems(bag *entities.ItemBag) ([]any, error) {
	if err := bag.Validate(); err != nil {
		return nil, err
	}
	items := make([]any, 0, bag.Count())
	for _, it := range bag.All() {
		items = append(items, it.Parameters())
	}
	return items, nil
}

func buildNameValues(nvs []entities.NameValue) []any {
	out := make([]any, 0, len(nvs))
	for _, nv := range nvs {
		out = append(out, entities.Record{"name": nv.Name, "value": nv.Value})
	}
	return out
}

// attributeNameValues serializes an attribute bag into the wire nameValues
// list the processor expects annotations in.
func attributeNameValues(bag *entities.AttributeBag) []any {
	if bag == nil || bag.Count() == 0 {
		return nil
	}
	out := make([]any, 0, bag.Count())
	for _, a := range bag.All() {
		out = append(out, entities.Record{"name": a.Name, "value": a.Value})
	}
	return out
}

func priceList(bag *entities.PriceBag) []any {
	if bag == nil || bag.Count() == 0 {
		return nil
	}
	out := make([]any, 0, bag.Count())
	for _, p := range bag.All() {
		out = append(out, entities.Record{"currency": p.Currency, "amount": p.Amount.String()})
	}
	return out
}

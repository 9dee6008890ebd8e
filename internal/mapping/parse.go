package mapping

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"vindicia_gateway/internal/domain/entities"
)

// ParseTransaction reconstructs a Transaction from the wire transaction
// object.
func ParseTransaction(r entities.Record) (*entities.Transaction, error) {
	const entity = "transaction"
	t := &entities.Transaction{}
	t.ID = stringIn(r, wireTransactionID)
	t.Reference = stringIn(r, wireVID)

	account, err := recordIn(r, entity, wireAccount)
	if err != nil {
		return nil, err
	}
	if account != nil {
		customer, err := ParseCustomer(account)
		if err != nil {
			return nil, err
		}
		t.CustomerID = customer.ID
		t.CustomerReference = customer.Reference
		t.Customer = customer
	}

	source, err := recordIn(r, entity, wireSourcePayment)
	if err != nil {
		return nil, err
	}
	if source != nil {
		pm, err := ParsePaymentMethod(source)
		if err != nil {
			return nil, err
		}
		t.PaymentMethodID = pm.ID
		t.PaymentMethodReference = pm.Reference
		t.PaymentMethod = pm
	}

	if t.Amount, err = parseDecimal(r, entity, "amount"); err != nil {
		return nil, err
	}
	if t.Currency, err = optionalString(r, entity, "currency"); err != nil {
		return nil, err
	}
	if t.IP, err = optionalString(r, entity, "sourceIp"); err != nil {
		return nil, err
	}
	if t.Timestamp, err = parseTimestamp(r, entity, "timestamp"); err != nil {
		return nil, err
	}

	itemRecords, err := recordsIn(r, entity, wireItems)
	if err != nil {
		return nil, err
	}
	if len(itemRecords) > 0 {
		bag, err := entities.ItemBagFromRecords(itemRecords)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %v", ErrMalformedResponse, entity, wireItems, err)
		}
		t.Items = bag
	}

	if t.NameValues, err = parseNameValues(r, entity); err != nil {
		return nil, err
	}

	statusRecords, err := recordsIn(r, entity, wireStatusLog)
	if err != nil {
		return nil, err
	}
	for _, sr := range statusRecords {
		status, err := parseTransactionStatus(sr)
		if err != nil {
			return nil, err
		}
		t.StatusLog = append(t.StatusLog, status)
	}
	// The processor reports the status log newest first.
	if len(t.StatusLog) > 0 {
		t.Status = &t.StatusLog[0]
	}

	refundRecords, err := recordsIn(r, entity, wireRefunds)
	if err != nil {
		return nil, err
	}
	for _, rr := range refundRecords {
		refund, err := ParseRefund(rr)
		if err != nil {
			return nil, err
		}
		t.Refunds = append(t.Refunds, refund)
	}

	chargebackRecords, err := recordsIn(r, entity, wireChargebacks)
	if err != nil {
		return nil, err
	}
	for _, cr := range chargebackRecords {
		chargeback, err := ParseChargeback(cr)
		if err != nil {
			return nil, err
		}
		t.Chargebacks = append(t.Chargebacks, chargeback)
	}
	return t, nil
}

func parseTransactionStatus(r entities.Record) (entities.TransactionStatus, error) {
	const entity = "transactionStatus"
	status, err := requireString(r, entity, "status")
	if err != nil {
		return entities.TransactionStatus{}, err
	}
	ts := entities.TransactionStatus{Status: status}
	if ts.Timestamp, err = parseTimestamp(r, entity, "timestamp"); err != nil {
		return entities.TransactionStatus{}, err
	}
	card, err := recordIn(r, entity, "creditCardStatus")
	if err != nil {
		return entities.TransactionStatus{}, err
	}
	if card != nil {
		if ts.AuthCode, err = optionalString(card, entity, "authCode"); err != nil {
			return entities.TransactionStatus{}, err
		}
		if ts.AVSCode, err = optionalString(card, entity, "avsCode"); err != nil {
			return entities.TransactionStatus{}, err
		}
		if ts.CVNCode, err = optionalString(card, entity, "cvnCode"); err != nil {
			return entities.TransactionStatus{}, err
		}
	}
	return ts, nil
}

// ParseCustomer reconstructs a Customer from the wire account object,
// including any payment methods the processor nested under it.
func ParseCustomer(r entities.Record) (*entities.Customer, error) {
	const entity = "account"
	c := &entities.Customer{}
	c.ID = stringIn(r, wireAccountID)
	c.Reference = stringIn(r, wireVID)

	var err error
	if c.Name, err = optionalString(r, entity, "name"); err != nil {
		return nil, err
	}
	if c.Email, err = optionalString(r, entity, "emailAddress"); err != nil {
		return nil, err
	}

	exemptionRecords, err := recordsIn(r, entity, wireTaxExemptions)
	if err != nil {
		return nil, err
	}
	if len(exemptionRecords) > 0 {
		bag, err := entities.TaxExemptionBagFromRecords(exemptionRecords)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %v", ErrMalformedResponse, entity, wireTaxExemptions, err)
		}
		c.TaxExemptions = bag
	}

	if c.Attributes, err = parseAttributeBag(r, entity); err != nil {
		return nil, err
	}

	methodRecords, err := recordsIn(r, entity, wirePaymentMethods)
	if err != nil {
		return nil, err
	}
	for _, mr := range methodRecords {
		pm, err := ParsePaymentMethod(mr)
		if err != nil {
			return nil, err
		}
		c.PaymentMethods = append(c.PaymentMethods, pm)
	}
	return c, nil
}

// ParsePaymentMethod reconstructs the payment method variant an inbound
// payload represents. The variant is decided by which discriminator
// sub-object is present (card data, PayPal agreement, routing-number account,
// Apple Pay instrument) — the exact inverse of the outbound selection — and
// a payload carrying more than one is rejected.
func ParsePaymentMethod(r entities.Record) (*entities.PaymentMethod, error) {
	const entity = "paymentMethod"
	pm := &entities.PaymentMethod{}
	pm.ID = stringIn(r, wirePaymentMethodID)
	pm.Reference = stringIn(r, wireVID)

	account, err := recordIn(r, entity, wireAccount)
	if err != nil {
		return nil, err
	}
	if account != nil {
		pm.CustomerID = stringIn(account, wireAccountID)
		pm.CustomerReference = stringIn(account, wireVID)
	}

	var variants int
	card, err := recordIn(r, entity, wireCreditCard)
	if err != nil {
		return nil, err
	}
	if card != nil {
		variants++
		if pm.CreditCard, err = parseCreditCard(card); err != nil {
			return nil, err
		}
	}
	paypal, err := recordIn(r, entity, wirePayPal)
	if err != nil {
		return nil, err
	}
	if paypal != nil {
		variants++
		if pm.PayPal, err = parsePayPal(paypal); err != nil {
			return nil, err
		}
	}
	ecp, err := recordIn(r, entity, wireECP)
	if err != nil {
		return nil, err
	}
	if ecp != nil {
		variants++
		if pm.ECP, err = parseECP(ecp); err != nil {
			return nil, err
		}
	}
	applePay, err := recordIn(r, entity, wireApplePay)
	if err != nil {
		return nil, err
	}
	if applePay != nil {
		variants++
		if pm.ApplePay, err = parseApplePay(applePay); err != nil {
			return nil, err
		}
	}
	if variants > 1 {
		return nil, fmt.Errorf("%w: %s carries %d payment variants", ErrMalformedResponse, entity, variants)
	}

	if active, ok := r["active"]; ok {
		switch v := active.(type) {
		case bool:
			pm.Active = entities.Ptr(v)
		case string:
			pm.Active = entities.Ptr(v == "true" || v == "1")
		default:
			return nil, fmt.Errorf("%w: %s.active: expected bool, got %T", ErrMalformedResponse, entity, active)
		}
	}

	if pm.Attributes, err = parseAttributeBag(r, entity); err != nil {
		return nil, err
	}
	return pm, nil
}

// parseCreditCard rebuilds the card. An account number the processor already
// provided is kept verbatim, masked or not; expiry splits the wire YYYYMM
// form into integer month and year.
func parseCreditCard(r entities.Record) (*entities.CreditCard, error) {
	const entity = "creditCard"
	cc := &entities.CreditCard{}
	cc.Number = stringIn(r, wireCardAccount)
	cc.LastFour = stringIn(r, wireCardLastDigits)
	cc.BIN = stringIn(r, wireCardBIN)
	cc.Brand = stringIn(r, wireCardNetwork)

	if raw, ok := r[wireCardExpiration]; ok && raw != nil {
		s, ok := raw.(string)
		if !ok || len(s) != 6 {
			return nil, fmt.Errorf("%w: %s.%s: expected YYYYMM string, got %v", ErrMalformedResponse, entity, wireCardExpiration, raw)
		}
		year, err := strconv.Atoi(s[:4])
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: bad year in %q", ErrMalformedResponse, entity, wireCardExpiration, s)
		}
		month, err := strconv.Atoi(s[4:])
		if err != nil || month < 1 || month > 12 {
			return nil, fmt.Errorf("%w: %s.%s: bad month in %q", ErrMalformedResponse, entity, wireCardExpiration, s)
		}
		cc.ExpiryYear = entities.Ptr(year)
		cc.ExpiryMonth = entities.Ptr(month)
	}

	var err error
	if cc.Name, err = optionalString(r, entity, "name"); err != nil {
		return nil, err
	}
	address, err := recordIn(r, entity, wireBillingAddress)
	if err != nil {
		return nil, err
	}
	if address != nil {
		if cc.BillingPostcode, err = optionalString(address, entity, "postalCode"); err != nil {
			return nil, err
		}
		if cc.BillingCountry, err = optionalString(address, entity, "country"); err != nil {
			return nil, err
		}
	}
	return cc, nil
}

func parsePayPal(r entities.Record) (*entities.PayPal, error) {
	const entity = "paypal"
	pp := &entities.PayPal{}
	var err error
	if pp.Email, err = optionalString(r, entity, "paypalEmail"); err != nil {
		return nil, err
	}
	if pp.Token, err = optionalString(r, entity, "paypalBillingAgreementId"); err != nil {
		return nil, err
	}
	if pp.ReturnURL, err = optionalString(r, entity, "returnUrl"); err != nil {
		return nil, err
	}
	if pp.CancelURL, err = optionalString(r, entity, "cancelUrl"); err != nil {
		return nil, err
	}
	return pp, nil
}

func parseECP(r entities.Record) (*entities.ECPAccount, error) {
	const entity = "ecp"
	ecp := &entities.ECPAccount{}
	ecp.AccountNumber = stringIn(r, "account")
	ecp.RoutingNumber = stringIn(r, "routingNumber")
	var err error
	if ecp.AccountType, err = optionalString(r, entity, "accountType"); err != nil {
		return nil, err
	}
	return ecp, nil
}

func parseApplePay(r entities.Record) (*entities.ApplePayCard, error) {
	const entity = "applePay"
	ap := &entities.ApplePayCard{}
	ap.PaymentData = stringIn(r, "paymentInstrument")
	var err error
	if ap.DisplayName, err = optionalString(r, entity, "displayName"); err != nil {
		return nil, err
	}
	if ap.Network, err = optionalString(r, entity, "network"); err != nil {
		return nil, err
	}
	if ap.ApplePayTransactionID, err = optionalString(r, entity, "applePayTransactionId"); err != nil {
		return nil, err
	}
	return ap, nil
}

// ParseSubscription reconstructs a Subscription from the wire autobill
// object.
func ParseSubscription(r entities.Record) (*entities.Subscription, error) {
	const entity = "autobill"
	s := &entities.Subscription{}
	s.ID = stringIn(r, wireAutoBillID)
	s.Reference = stringIn(r, wireVID)

	account, err := recordIn(r, entity, wireAccount)
	if err != nil {
		return nil, err
	}
	if account != nil {
		customer, err := ParseCustomer(account)
		if err != nil {
			return nil, err
		}
		s.CustomerID = customer.ID
		s.CustomerReference = customer.Reference
		s.Customer = customer
	}

	pmRecord, err := recordIn(r, entity, wirePaymentMethod)
	if err != nil {
		return nil, err
	}
	if pmRecord != nil {
		pm, err := ParsePaymentMethod(pmRecord)
		if err != nil {
			return nil, err
		}
		s.PaymentMethodID = pm.ID
		s.PaymentMethodReference = pm.Reference
		s.PaymentMethod = pm
	}

	productRecord, err := recordIn(r, entity, wireProduct)
	if err != nil {
		return nil, err
	}
	if productRecord != nil {
		product, err := ParseProduct(productRecord)
		if err != nil {
			return nil, err
		}
		s.ProductID = product.ID
		s.ProductReference = product.Reference
		s.Product = product
	}

	planRecord, err := recordIn(r, entity, wireBillingPlan)
	if err != nil {
		return nil, err
	}
	if planRecord != nil {
		plan, err := ParsePlan(planRecord)
		if err != nil {
			return nil, err
		}
		s.PlanID = plan.ID
		s.PlanReference = plan.Reference
		s.Plan = plan
	}

	if s.Currency, err = optionalString(r, entity, "currency"); err != nil {
		return nil, err
	}
	if s.StartTime, err = parseTimestamp(r, entity, "startTimestamp"); err != nil {
		return nil, err
	}
	s.Status = entities.SubscriptionStatus(stringIn(r, "status"))

	itemRecords, err := recordsIn(r, entity, wireItems)
	if err != nil {
		return nil, err
	}
	if len(itemRecords) > 0 {
		bag, err := entities.ItemBagFromRecords(itemRecords)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %v", ErrMalformedResponse, entity, wireItems, err)
		}
		s.Items = bag
	}

	if s.Attributes, err = parseAttributeBag(r, entity); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseProduct reconstructs a Product from the wire product object.
func ParseProduct(r entities.Record) (*entities.Product, error) {
	const entity = "product"
	p := &entities.Product{}
	p.ID = stringIn(r, wireProductID)
	p.Reference = stringIn(r, wireVID)

	planRecord, err := recordIn(r, entity, wireDefaultPlan)
	if err != nil {
		return nil, err
	}
	if planRecord != nil {
		plan, err := ParsePlan(planRecord)
		if err != nil {
			return nil, err
		}
		p.PlanID = plan.ID
		p.PlanReference = plan.Reference
		p.Plan = plan
	}

	if p.Description, err = optionalString(r, entity, "description"); err != nil {
		return nil, err
	}
	if p.TaxClassification, err = optionalString(r, entity, "taxClassification"); err != nil {
		return nil, err
	}
	if p.Prices, err = parsePriceBag(r, entity); err != nil {
		return nil, err
	}
	if p.Attributes, err = parseAttributeBag(r, entity); err != nil {
		return nil, err
	}
	return p, nil
}

// ParsePlan reconstructs a Plan from the wire billingPlan object.
func ParsePlan(r entities.Record) (*entities.Plan, error) {
	const entity = "billingPlan"
	p := &entities.Plan{}
	p.ID = stringIn(r, wireBillingPlanID)
	p.Reference = stringIn(r, wireVID)

	var err error
	if p.Interval, err = optionalString(r, entity, "periodType"); err != nil {
		return nil, err
	}
	if raw, ok := r["periodCount"]; ok && raw != nil {
		switch v := raw.(type) {
		case string:
			count, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %s.periodCount: not an integer: %q", ErrMalformedResponse, entity, v)
			}
			p.IntervalCount = entities.Ptr(count)
		case float64:
			p.IntervalCount = entities.Ptr(int(v))
		case int:
			p.IntervalCount = entities.Ptr(v)
		default:
			return nil, fmt.Errorf("%w: %s.periodCount: expected integer, got %T", ErrMalformedResponse, entity, raw)
		}
	}
	if p.Prices, err = parsePriceBag(r, entity); err != nil {
		return nil, err
	}
	if p.Attributes, err = parseAttributeBag(r, entity); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseRefund reconstructs a Refund from the wire refund object.
func ParseRefund(r entities.Record) (*entities.Refund, error) {
	const entity = "refund"
	rf := &entities.Refund{}
	rf.ID = stringIn(r, "merchantRefundId")
	rf.Reference = stringIn(r, wireVID)
	rf.TransactionID = stringIn(r, wireTransactionID)
	rf.TransactionReference = stringIn(r, "transactionVid")
	rf.Status = stringIn(r, "status")

	var err error
	if rf.Amount, err = parseDecimal(r, entity, "amount"); err != nil {
		return nil, err
	}
	if rf.Currency, err = optionalString(r, entity, "currency"); err != nil {
		return nil, err
	}
	if rf.Reason, err = optionalString(r, entity, "note"); err != nil {
		return nil, err
	}
	if rf.Timestamp, err = parseTimestamp(r, entity, "timestamp"); err != nil {
		return nil, err
	}

	itemRecords, err := recordsIn(r, entity, wireRefundItems)
	if err != nil {
		return nil, err
	}
	if len(itemRecords) > 0 {
		bag, err := entities.RefundItemBagFromRecords(itemRecords)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %v", ErrMalformedResponse, entity, wireRefundItems, err)
		}
		rf.Items = bag
	}
	return rf, nil
}

// ParseChargeback reconstructs a Chargeback from the wire chargeback object.
func ParseChargeback(r entities.Record) (*entities.Chargeback, error) {
	const entity = "chargeback"
	cb := &entities.Chargeback{}
	cb.ID = stringIn(r, "merchantChargebackId")
	cb.Reference = stringIn(r, wireVID)
	cb.TransactionID = stringIn(r, wireTransactionID)
	cb.TransactionReference = stringIn(r, "transactionVid")
	cb.Status = stringIn(r, "status")

	var err error
	if cb.Amount, err = parseDecimal(r, entity, "amount"); err != nil {
		return nil, err
	}
	if cb.Currency, err = optionalString(r, entity, "currency"); err != nil {
		return nil, err
	}
	if cb.ReasonCode, err = optionalString(r, entity, "reasonCode"); err != nil {
		return nil, err
	}
	if cb.CaseNumber, err = optionalString(r, entity, "caseNumber"); err != nil {
		return nil, err
	}
	if cb.Timestamp, err = parseTimestamp(r, entity, "timestamp"); err != nil {
		return nil, err
	}
	return cb, nil
}

func parseNameValues(r entities.Record, entity string) ([]entities.NameValue, error) {
	records, err := recordsIn(r, entity, wireNameValues)
	if err != nil {
		return nil, err
	}
	out := make([]entities.NameValue, 0, len(records))
	for _, nv := range records {
		pair, err := entities.NameValueFromAny(nv["name"], nv["value"])
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %v", ErrMalformedResponse, entity, wireNameValues, err)
		}
		out = append(out, pair)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// parseAttributeBag reads the wire nameValues list back into an attribute
// bag for the entities that model annotations as attributes.
func parseAttributeBag(r entities.Record, entity string) (*entities.AttributeBag, error) {
	records, err := recordsIn(r, entity, wireNameValues)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	bag, err := entities.AttributeBagFromRecords(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %s.%s: %v", ErrMalformedResponse, entity, wireNameValues, err)
	}
	return bag, nil
}

func parsePriceBag(r entities.Record, entity string) (*entities.PriceBag, error) {
	records, err := recordsIn(r, entity, wirePrices)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	bag, err := entities.PriceBagFromRecords(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %s.%s: %v", ErrMalformedResponse, entity, wirePrices, err)
	}
	return bag, nil
}

func parseDecimal(r entities.Record, entity, field string) (*decimal.Decimal, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return nil, nil
	}
	switch n := v.(type) {
	case string:
		parsed, err := decimal.NewFromString(n)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: not a decimal: %q", ErrMalformedResponse, entity, field, n)
		}
		return entities.Ptr(parsed), nil
	case float64:
		return entities.Ptr(decimal.NewFromFloat(n)), nil
	default:
		return nil, fmt.Errorf("%w: %s.%s: expected decimal, got %T", ErrMalformedResponse, entity, field, v)
	}
}

func parseTimestamp(r entities.Record, entity, field string) (*time.Time, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s: expected timestamp string, got %T", ErrMalformedResponse, entity, field, v)
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s.%s: bad timestamp %q", ErrMalformedResponse, entity, field, s)
	}
	return entities.Ptr(ts), nil
}

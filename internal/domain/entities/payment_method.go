package entities

// PaymentMethod is the polymorphic payment instrument. Exactly one of the
// variant sub-objects (CreditCard, PayPal, ECP, ApplePay) may be populated;
// ActiveVariant enforces that before the method is serialized. Identity is
// the (ID, Reference) pair: ID is the merchant-assigned id, Reference the
// processor-assigned VID.
type PaymentMethod struct {
	ID        string
	Reference string

	// Owning customer, as flattened scalars and/or embedded entity. When both
	// are set the scalars win during payload building.
	CustomerID        string
	CustomerReference string
	Customer          *Customer

	CreditCard *CreditCard
	PayPal     *PayPal
	ECP        *ECPAccount
	ApplePay   *ApplePayCard

	Active     *bool
	Attributes *AttributeBag
}

type PaymentVariant string

const (
	PaymentVariantCreditCard PaymentVariant = "CreditCard"
	PaymentVariantPayPal     PaymentVariant = "PayPal"
	PaymentVariantECP        PaymentVariant = "ECP"
	PaymentVariantApplePay   PaymentVariant = "ApplePay"
)

// ActiveVariant reports which variant is populated, failing when none or more
// than one is.
func (pm *PaymentMethod) ActiveVariant() (PaymentVariant, error) {
	var found []PaymentVariant
	if pm.CreditCard != nil {
		found = append(found, PaymentVariantCreditCard)
	}
	if pm.PayPal != nil {
		found = append(found, PaymentVariantPayPal)
	}
	if pm.ECP != nil {
		found = append(found, PaymentVariantECP)
	}
	if pm.ApplePay != nil {
		found = append(found, PaymentVariantApplePay)
	}
	switch len(found) {
	case 0:
		return "", ErrNoPaymentMethodVariant
	case 1:
		return found[0], nil
	default:
		return "", ErrAmbiguousPaymentMethodVariant
	}
}

// CreditCard holds card data as the processor reports it. Number keeps
// whatever the source provided, masked or full, without re-masking. Expiry
// month and year are integers (month 1-12, year four digits).
type CreditCard struct {
	Number          string
	Brand           string
	LastFour        string
	BIN             string
	ExpiryMonth     *int
	ExpiryYear      *int
	Name            *string
	CVV             *string
	BillingPostcode *string
	BillingCountry  *string
}

// PayPal references a PayPal billing agreement flow. Return and cancel URLs
// are required when establishing the agreement; Token identifies it
// afterwards.
type PayPal struct {
	Email     *string
	Token     *string
	ReturnURL *string
	CancelURL *string
}

// ECPAccount is an electronic check / ACH account.
type ECPAccount struct {
	AccountNumber string
	RoutingNumber string
	AccountType   *string
}

// ApplePayCard carries the opaque Apple Pay payment token plus the display
// metadata Apple exposes about the underlying card.
type ApplePayCard struct {
	PaymentData           string
	DisplayName           *string
	Network               *string
	ApplePayTransactionID *string
}

func PaymentMethodFromRecord(r Record) (*PaymentMethod, error) {
	pm := &PaymentMethod{}
	var err error
	if pm.ID, err = stringOrEmpty(r, "id"); err != nil {
		return nil, err
	}
	if pm.Reference, err = stringOrEmpty(r, "reference"); err != nil {
		return nil, err
	}
	if pm.CustomerID, err = stringOrEmpty(r, "customerId"); err != nil {
		return nil, err
	}
	if pm.CustomerReference, err = stringOrEmpty(r, "customerReference"); err != nil {
		return nil, err
	}
	if pm.Active, err = recordBool(r, "active"); err != nil {
		return nil, err
	}
	card, err := recordValueMap(r, "card")
	if err != nil {
		return nil, err
	}
	if card != nil {
		if pm.CreditCard, err = creditCardFromRecord(card); err != nil {
			return nil, err
		}
	}
	paypal, err := recordValueMap(r, "paypal")
	if err != nil {
		return nil, err
	}
	if paypal != nil {
		if pm.PayPal, err = payPalFromRecord(paypal); err != nil {
			return nil, err
		}
	}
	ecp, err := recordValueMap(r, "ecp")
	if err != nil {
		return nil, err
	}
	if ecp != nil {
		if pm.ECP, err = ecpFromRecord(ecp); err != nil {
			return nil, err
		}
	}
	applePay, err := recordValueMap(r, "applePay")
	if err != nil {
		return nil, err
	}
	if applePay != nil {
		if pm.ApplePay, err = applePayFromRecord(applePay); err != nil {
			return nil, err
		}
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
		pm.Attributes = bag
	}
	return pm, nil
}

func creditCardFromRecord(r Record) (*CreditCard, error) {
	cc := &CreditCard{}
	var err error
	if cc.Number, err = stringOrEmpty(r, "number"); err != nil {
		return nil, err
	}
	if cc.Brand, err = stringOrEmpty(r, "brand"); err != nil {
		return nil, err
	}
	if cc.LastFour, err = stringOrEmpty(r, "lastFour"); err != nil {
		return nil, err
	}
	if cc.BIN, err = stringOrEmpty(r, "bin"); err != nil {
		return nil, err
	}
	if cc.ExpiryMonth, err = recordInt(r, "expiryMonth"); err != nil {
		return nil, err
	}
	if cc.ExpiryYear, err = recordInt(r, "expiryYear"); err != nil {
		return nil, err
	}
	if cc.Name, err = recordString(r, "name"); err != nil {
		return nil, err
	}
	if cc.CVV, err = recordString(r, "cvv"); err != nil {
		return nil, err
	}
	if cc.BillingPostcode, err = recordString(r, "billingPostcode"); err != nil {
		return nil, err
	}
	if cc.BillingCountry, err = recordString(r, "billingCountry"); err != nil {
		return nil, err
	}
	return cc, nil
}

func payPalFromRecord(r Record) (*PayPal, error) {
	pp := &PayPal{}
	var err error
	if pp.Email, err = recordString(r, "email"); err != nil {
		return nil, err
	}
	if pp.Token, err = recordString(r, "token"); err != nil {
		return nil, err
	}
	if pp.ReturnURL, err = recordString(r, "returnUrl"); err != nil {
		return nil, err
	}
	if pp.CancelURL, err = recordString(r, "cancelUrl"); err != nil {
		return nil, err
	}
	return pp, nil
}

func ecpFromRecord(r Record) (*ECPAccount, error) {
	ecp := &ECPAccount{}
	var err error
	if ecp.AccountNumber, err = stringOrEmpty(r, "accountNumber"); err != nil {
		return nil, err
	}
	if ecp.RoutingNumber, err = stringOrEmpty(r, "routingNumber"); err != nil {
		return nil, err
	}
	if ecp.AccountType, err = recordString(r, "accountType"); err != nil {
		return nil, err
	}
	return ecp, nil
}

func applePayFromRecord(r Record) (*ApplePayCard, error) {
	ap := &ApplePayCard{}
	var err error
	if ap.PaymentData, err = stringOrEmpty(r, "paymentData"); err != nil {
		return nil, err
	}
	if ap.DisplayName, err = recordString(r, "displayName"); err != nil {
		return nil, err
	}
	if ap.Network, err = recordString(r, "network"); err != nil {
		return nil, err
	}
	if ap.ApplePayTransactionID, err = recordString(r, "applePayTransactionId"); err != nil {
		return nil, err
	}
	return ap, nil
}

func (pm *PaymentMethod) Parameters() Record {
	r := Record{}
	if pm.ID != "" {
		r["id"] = pm.ID
	}
	if pm.Reference != "" {
		r["reference"] = pm.Reference
	}
	if pm.CustomerID != "" {
		r["customerId"] = pm.CustomerID
	}
	if pm.CustomerReference != "" {
		r["customerReference"] = pm.CustomerReference
	}
	setIfPresent(r, "active", pm.Active)
	if pm.CreditCard != nil {
		r["card"] = pm.CreditCard.parameters()
	}
	if pm.PayPal != nil {
		r["paypal"] = pm.PayPal.parameters()
	}
	if pm.ECP != nil {
		r["ecp"] = pm.ECP.parameters()
	}
	if pm.ApplePay != nil {
		r["applePay"] = pm.ApplePay.parameters()
	}
	return r
}

func (cc *CreditCard) parameters() Record {
	r := Record{}
	if cc.Number != "" {
		r["number"] = cc.Number
	}
	if cc.Brand != "" {
		r["brand"] = cc.Brand
	}
	if cc.LastFour != "" {
		r["lastFour"] = cc.LastFour
	}
	if cc.BIN != "" {
		r["bin"] = cc.BIN
	}
	setIfPresent(r, "expiryMonth", cc.ExpiryMonth)
	setIfPresent(r, "expiryYear", cc.ExpiryYear)
	setIfPresent(r, "name", cc.Name)
	setIfPresent(r, "cvv", cc.CVV)
	setIfPresent(r, "billingPostcode", cc.BillingPostcode)
	setIfPresent(r, "billingCountry", cc.BillingCountry)
	return r
}

func (pp *PayPal) parameters() Record {
	r := Record{}
	setIfPresent(r, "email", pp.Email)
	setIfPresent(r, "token", pp.Token)
	setIfPresent(r, "returnUrl", pp.ReturnURL)
	setIfPresent(r, "cancelUrl", pp.CancelURL)
	return r
}

func (ecp *ECPAccount) parameters() Record {
	r := Record{}
	if ecp.AccountNumber != "" {
		r["accountNumber"] = ecp.AccountNumber
	}
	if ecp.RoutingNumber != "" {
		r["routingNumber"] = ecp.RoutingNumber
	}
	setIfPresent(r, "accountType", ecp.AccountType)
	return r
}

func (ap *ApplePayCard) parameters() Record {
	r := Record{}
	if ap.PaymentData != "" {
		r["paymentData"] = ap.PaymentData
	}
	setIfPresent(r, "displayName", ap.DisplayName)
	setIfPresent(r, "network", ap.Network)
	setIfPresent(r, "applePayTransactionId", ap.ApplePayTransactionID)
	return r
}

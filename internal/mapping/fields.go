// Package mapping translates between the domain entities and the processor's
// SOAP object graph, in both directions. Builders produce the nested
// associative payload the transport serializes; parsers reconstruct entities
// from the loosely-typed structures XML decoding yields.
package mapping

import "errors"

var (
	// ErrInvalidRequest marks an outbound payload that cannot be built, most
	// prominently a payment method with zero or multiple populated variants.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMalformedResponse marks an inbound payload missing a required field
	// or carrying an unexpected type for one. The message names the entity
	// and field.
	ErrMalformedResponse = errors.New("malformed response")
)

// Domain field names and their wire counterparts. The tables below are the
// wire contract; renaming an entry is a compatibility break with the
// processor.
const (
	wireTransactionID   = "merchantTransactionId"
	wireAccountID       = "merchantAccountId"
	wirePaymentMethodID = "merchantPaymentMethodId"
	wireAutoBillID      = "merchantAutoBillId"
	wireProductID       = "merchantProductId"
	wireBillingPlanID   = "merchantBillingPlanId"
	wireVID             = "VID"

	wireAccount        = "account"
	wireSourcePayment  = "sourcePaymentMethod"
	wirePaymentMethod  = "paymentMethod"
	wireProduct        = "product"
	wireBillingPlan    = "billingPlan"
	wireDefaultPlan    = "defaultBillingPlan"
	wireItems          = "transactionItems"
	wireRefundItems    = "refundItems"
	wireNameValues     = "nameValues"
	wirePrices         = "prices"
	wireTaxExemptions  = "taxExemptions"
	wireStatusLog      = "statusLog"
	wireRefunds        = "refunds"
	wireChargebacks    = "chargebacks"
	wirePaymentMethods = "paymentMethods"

	wireType           = "type"
	wireCreditCard     = "creditCard"
	wirePayPal         = "paypal"
	wireECP            = "ecp"
	wireApplePay       = "applePay"
	wireCardAccount    = "account"
	wireCardExpiration = "expirationDate"
	wireCardLastDigits = "lastDigits"
	wireCardBIN        = "bin"
	wireCardNetwork    = "paymentNetwork"
	wireCardCVN        = "cvn"
	wireBillingAddress = "billingAddress"
)

// pair writes an (id, reference) identity pair under the wire field names for
// the given entity kind, omitting absent halves.
func pair(r map[string]any, idField, id, reference string) {
	if id != "" {
		r[idField] = id
	}
	if reference != "" {
		r[wireVID] = reference
	}
}

// Package requests defines one type per remote operation. A request knows
// its SOAP destination (object + action), validates its inputs, and builds
// its payload through the mapping layer. Hosted-flow variants wrap the
// direct requests defined here, reusing their validation and payload
// building wholesale.
package requests

import (
	"vindicia_gateway/internal/domain/entities"
)

// Request is one remote operation ready to hand to the transport.
type Request interface {
	// Object is the SOAP object the operation belongs to (Transaction,
	// Account, AutoBill, ...).
	Object() string
	// Action is the operation name on that object (auth, capture, update,
	// fetchByVid, ...).
	Action() string
	Validate() error
	Build() (entities.Record, error)
}

// SOAP object names.
const (
	ObjectTransaction   = "Transaction"
	ObjectAccount       = "Account"
	ObjectPaymentMethod = "PaymentMethod"
	ObjectAutoBill      = "AutoBill"
	ObjectProduct       = "Product"
	ObjectBillingPlan   = "BillingPlan"
	ObjectRefund        = "Refund"
	ObjectWebSession    = "WebSession"
)

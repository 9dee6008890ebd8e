package entities

import "time"

// HOASessionStatus represents the lifecycle of a hosted-order web session.
//
// Domain notes:
//   - The processor hosts the payment form; we only see the session at
//     initialize time and again when the return callback triggers finalize.
//   - The session row is what lets the finalize step recover which method the
//     session wrapped.

type HOASessionStatus string

const (
	HOASessionStatusPending   HOASessionStatus = "pending"
	HOASessionStatusCompleted HOASessionStatus = "completed"
	HOASessionStatusFailed    HOASessionStatus = "failed"
)

// HOASession is the persisted hosted-order session.
//
// Storage model (DynamoDB):
//   - PK: reference (the processor-assigned session VID)
//
type HOASession struct {
	Reference string           `json:"reference"`
	Method    string           `json:"method"`
	ReturnURL string           `json:"return_url"`
	ErrorURL  string           `json:"error_url"`
	Status    HOASessionStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

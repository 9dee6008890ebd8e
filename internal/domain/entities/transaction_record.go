package entities

import "time"

// TransactionRecord is the audit row persisted for each gateway operation
// that touched money.
//
// Storage model (DynamoDB):
//   - PK: id (merchant transaction id)
//   - GSI1 (customer_id-index): customer_id
//
// Processor payload:
//   - Payload keeps the parsed result object for traceability/audit, since
//     response schemas vary per operation.

type TransactionRecord struct {
	ID         string    `json:"id"`
	Reference  string    `json:"reference"`
	CustomerID string    `json:"customer_id"`
	Action     string    `json:"action"`
	Amount     string    `json:"amount"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	Date       time.Time `json:"date"`

	Payload map[string]interface{} `json:"payload,omitempty"`
}

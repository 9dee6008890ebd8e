package interfaces

import (
	"context"

	"vindicia_gateway/internal/domain/entities"
)

// ITransactionRecordRepository abstracts DynamoDB persistence for the
// per-operation audit records.
type ITransactionRecordRepository interface {
	Create(ctx context.Context, r entities.TransactionRecord) (entities.TransactionRecord, error)
	GetByID(ctx context.Context, id string) (entities.TransactionRecord, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.TransactionRecord, error)
}

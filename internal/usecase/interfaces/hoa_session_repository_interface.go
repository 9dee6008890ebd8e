package interfaces

import (
	"context"

	"vindicia_gateway/internal/domain/entities"
)

// IHOASessionRepository abstracts DynamoDB persistence for HOASession.
//
// The gateway must be able to:
//   - record a session when a hosted flow is initialized
//   - recover the session (and the method it wraps) at finalize time
//   - mark the session completed or failed after finalize
type IHOASessionRepository interface {
	Create(ctx context.Context, s entities.HOASession) (entities.HOASession, error)
	GetByReference(ctx context.Context, reference string) (entities.HOASession, error)
	UpdateStatus(ctx context.Context, reference string, status entities.HOASessionStatus) (entities.HOASession, error)
}

package interfaces

import (
	"context"

	"vindicia_gateway/internal/domain/entities"
)

// ISoapTransport abstracts the processor's SOAP endpoint. The use case layer
// hands it the destination (object + action) and the built payload and gets
// back the decoded result record; credentials, envelopes and HTTP belong to
// the implementation.
type ISoapTransport interface {
	Call(ctx context.Context, object, action string, params entities.Record) (entities.Record, error)
}

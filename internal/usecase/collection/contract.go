package collection

import (
	"context"

	domschema "github.com/kailas-cloud/weaviq/internal/domain/schema"
)

// SchemaSource supplies the current schema payload of the connected
// instance.
type SchemaSource interface {
	Schema(ctx context.Context) (*domschema.Payload, error)
}

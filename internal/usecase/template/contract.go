package template

import (
	"context"

	"github.com/kailas-cloud/weaviq/internal/domain/schema"
)

// SchemaSource supplies the current schema payload of the connected
// Weaviate instance.
type SchemaSource interface {
	Schema(ctx context.Context) (*schema.Payload, error)
}

// ConceptEmbedder resolves concept text into a literal embedding vector for
// nearVector templates.
type ConceptEmbedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

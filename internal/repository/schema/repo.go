// Package schema provides schema retrieval from a Weaviate instance, with an
// optional TTL-bounded cache layered on a key-value store.
package schema

import (
	"context"
	"fmt"

	domschema "github.com/kailas-cloud/weaviq/internal/domain/schema"
	"github.com/kailas-cloud/weaviq/internal/transport/weaviate"
)

// Repo fetches schema payloads straight from the instance.
type Repo struct {
	client *weaviate.Client
}

// New creates a schema repository.
func New(client *weaviate.Client) *Repo {
	return &Repo{client: client}
}

// Schema returns the current schema payload of the instance.
func (r *Repo) Schema(ctx context.Context) (*domschema.Payload, error) {
	payload, err := r.client.Schema(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch schema: %w", err)
	}
	return payload, nil
}

// Package collection exposes the schema browsing operations of the
// workbench: listing collections and inspecting their definitions.
package collection

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/weaviq/internal/domain"
	domschema "github.com/kailas-cloud/weaviq/internal/domain/schema"
)

// Summary is a collection listing entry.
type Summary struct {
	Name          string
	Description   string
	PropertyCount int
	Vectorized    bool
}

// Service handles collection browsing.
type Service struct {
	schemas SchemaSource
}

// New creates a collection service.
func New(schemas SchemaSource) *Service {
	return &Service{schemas: schemas}
}

// List returns a summary of every collection on the instance.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	payload, err := s.schemas.Schema(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	summaries := make([]Summary, 0, len(payload.Classes))
	for i := range payload.Classes {
		c := &payload.Classes[i]
		summaries = append(summaries, Summary{
			Name:          c.CollectionName(),
			Description:   c.Description,
			PropertyCount: len(c.Properties),
			Vectorized:    domschema.HasTextVectorizer(c),
		})
	}
	return summaries, nil
}

// Get returns the full class definition of one collection, matched
// case-insensitively.
func (s *Service) Get(ctx context.Context, name string) (*domschema.Class, error) {
	if v := domschema.ValidateCollectionName(name); !v.Valid {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidName, v.Error)
	}

	payload, err := s.schemas.Schema(ctx)
	if err != nil {
		return nil, fmt.Errorf("get collection: %w", err)
	}

	class := domschema.Lookup(payload, name)
	if class == nil {
		return nil, fmt.Errorf("collection %s: %w", name, domain.ErrNotFound)
	}
	return class, nil
}

// ValidateName runs the advisory collection name check.
func (s *Service) ValidateName(name string) domschema.NameValidation {
	return domschema.ValidateCollectionName(name)
}

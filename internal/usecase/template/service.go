package template

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/weaviq/internal/domain/query"
	"github.com/kailas-cloud/weaviq/internal/domain/schema"
	"github.com/kailas-cloud/weaviq/internal/metrics"
)

// Service generates query templates with live schema awareness. Schema or
// embedding failures degrade to static generation instead of failing the
// request; generation itself cannot fail.
type Service struct {
	schemas SchemaSource
	embed   ConceptEmbedder
	logger  *zap.Logger
}

// New creates a template service. schemas may be nil for fully static
// generation.
func New(schemas SchemaSource, logger *zap.Logger) *Service {
	return &Service{schemas: schemas, logger: logger}
}

// WithEmbedder enables concept-vector resolution for nearVector templates.
func (s *Service) WithEmbedder(e ConceptEmbedder) *Service {
	s.embed = e
	return s
}

// Catalog returns the template catalog.
func (s *Service) Catalog() []Entry {
	return Catalog()
}

// Generate renders a template by catalog name or raw text for a collection.
func (s *Service) Generate(
	ctx context.Context, nameOrRaw, collection string, limit int, cfg *query.Config,
) string {
	payload := s.fetchSchema(ctx)
	cfg = s.resolveVector(ctx, nameOrRaw, cfg)

	out := NewGenerator(payload).Process(nameOrRaw, collection, limit, cfg)

	shapeLabel := "raw"
	if entry, ok := entryByName(nameOrRaw); ok {
		shapeLabel = string(entry.Shape)
	}
	schemaLabel := "static"
	if schema.Lookup(payload, collection) != nil {
		schemaLabel = "aware"
	}
	metrics.TemplateGenerationsTotal.WithLabelValues(shapeLabel, schemaLabel).Inc()

	return out
}

// fetchSchema loads the schema payload, degrading to nil on any failure.
func (s *Service) fetchSchema(ctx context.Context) *schema.Payload {
	if s.schemas == nil {
		return nil
	}
	payload, err := s.schemas.Schema(ctx)
	if err != nil {
		s.logger.Warn("schema fetch failed, generating without schema", zap.Error(err))
		return nil
	}
	return payload
}

// resolveVector embeds the configured concepts into a literal vector for
// nearVector templates when an embedder is wired and no vector was supplied.
// Works on a copy so the caller's config is never mutated.
func (s *Service) resolveVector(ctx context.Context, nameOrRaw string, cfg *query.Config) *query.Config {
	if s.embed == nil || cfg == nil || len(cfg.Concepts) == 0 || len(cfg.Vector) > 0 {
		return cfg
	}
	entry, ok := entryByName(nameOrRaw)
	if !ok || entry.Shape != query.ShapeNearVector {
		return cfg
	}

	vec, err := s.embed.Embed(ctx, strings.Join(cfg.Concepts, " "))
	if err != nil {
		s.logger.Warn("concept embedding failed, using placeholder vector", zap.Error(err))
		return cfg
	}

	resolved := *cfg
	resolved.Vector = vec
	return &resolved
}

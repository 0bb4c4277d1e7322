package template

import (
	"strings"

	"github.com/kailas-cloud/weaviq/internal/domain/query"
	"github.com/kailas-cloud/weaviq/internal/domain/schema"
)

// Process resolves a catalog entry by display name, or treats the input as
// raw template text and substitutes every known placeholder token in it.
// Unknown placeholders are left untouched. A config-supplied limit overrides
// the positional one. Never fails: absent or partial schema degrades to the
// static variant of each shape.
func (g *Generator) Process(nameOrRaw, collection string, limit int, cfg *query.Config) string {
	limit = cfg.LimitOr(limit)
	if limit <= 0 {
		limit = query.DefaultLimit
	}

	if entry, ok := entryByName(nameOrRaw); ok {
		return g.render(entry.Shape, collection, limit, cfg)
	}

	out := nameOrRaw
	for token, shape := range placeholders {
		if strings.Contains(out, token) {
			out = strings.ReplaceAll(out, token, g.render(shape, collection, limit, cfg))
		}
	}
	return out
}

func (g *Generator) render(shape query.Shape, collection string, limit int, cfg *query.Config) string {
	switch shape {
	case query.ShapeNearVector:
		return g.NearVector(collection, limit, cfg)
	case query.ShapeNearText:
		return g.NearText(collection, limit, cfg)
	case query.ShapeHybrid:
		return g.Hybrid(collection, limit, cfg)
	case query.ShapeBM25:
		return g.BM25(collection, limit, cfg)
	case query.ShapeGenerative:
		return g.Generative(collection, limit, cfg)
	case query.ShapeFilter:
		return g.Filter(collection, limit, cfg)
	case query.ShapeAggregation:
		return g.Aggregation(collection, limit, cfg)
	case query.ShapeGroupBy:
		return g.GroupBy(collection, limit, cfg)
	case query.ShapeSample:
		return g.Sample(collection, limit, cfg)
	default:
		return g.Sample(collection, limit, cfg)
	}
}

// Process is the schema-less convenience wrapper around Generator.Process.
func Process(nameOrRaw, collection string, limit int, payload *schema.Payload, cfg *query.Config) string {
	return NewGenerator(payload).Process(nameOrRaw, collection, limit, cfg)
}

// NearVectorQuery renders a static vector similarity query.
func NearVectorQuery(collection string, limit int) string {
	return NewGenerator(nil).NearVector(collection, limit, nil)
}

// NearTextQuery renders a static semantic text query.
func NearTextQuery(collection string, limit int) string {
	return NewGenerator(nil).NearText(collection, limit, nil)
}

// HybridQuery renders a static hybrid query.
func HybridQuery(collection string, limit int) string {
	return NewGenerator(nil).Hybrid(collection, limit, nil)
}

// BM25Query renders a static keyword query.
func BM25Query(collection string, limit int) string {
	return NewGenerator(nil).BM25(collection, limit, nil)
}

// FilterQuery renders a static filtered query.
func FilterQuery(collection string, limit int) string {
	return NewGenerator(nil).Filter(collection, limit, nil)
}

// AggregationQuery renders a static aggregation query.
func AggregationQuery(collection string) string {
	return NewGenerator(nil).Aggregation(collection, 0, nil)
}

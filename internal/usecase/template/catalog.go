// Package template generates ready-to-run Weaviate GraphQL queries from a
// collection schema. Every generator is a pure function of its inputs and
// degrades to a placeholder query when the schema is missing or malformed.
package template

import "github.com/kailas-cloud/weaviq/internal/domain/query"

// Entry is one catalog item. Template holds the placeholder token that
// Process substitutes when handed raw template text.
type Entry struct {
	Name        string
	Description string
	Shape       query.Shape
	Template    string
}

// catalog is the fixed, hand-authored template list. Read-only after
// initialization.
var catalog = []Entry{
	{
		Name:        "Vector Similarity Search",
		Description: "Find objects nearest to a literal embedding vector",
		Shape:       query.ShapeNearVector,
		Template:    "{nearVectorQuery}",
	},
	{
		Name:        "Semantic Search",
		Description: "Find objects near the meaning of text concepts",
		Shape:       query.ShapeNearText,
		Template:    "{nearTextQuery}",
	},
	{
		Name:        "Hybrid Search",
		Description: "Blend keyword and vector search with an alpha weight",
		Shape:       query.ShapeHybrid,
		Template:    "{hybridQuery}",
	},
	{
		Name:        "Keyword Search",
		Description: "BM25 keyword search over text properties",
		Shape:       query.ShapeBM25,
		Template:    "{bm25Query}",
	},
	{
		Name:        "Generative Search",
		Description: "Semantic search with an LLM generation step per result",
		Shape:       query.ShapeGenerative,
		Template:    "{generativeQuery}",
	},
	{
		Name:        "Filtered Search",
		Description: "Fetch objects matching a where filter",
		Shape:       query.ShapeFilter,
		Template:    "{filterQuery}",
	},
	{
		Name:        "Aggregation",
		Description: "Aggregate metrics per property",
		Shape:       query.ShapeAggregation,
		Template:    "{aggregationQuery}",
	},
	{
		Name:        "Group By",
		Description: "Aggregate objects grouped by a property value",
		Shape:       query.ShapeGroupBy,
		Template:    "{groupByQuery}",
	},
	{
		Name:        "Sample Objects",
		Description: "Fetch a few objects with schema-derived properties",
		Shape:       query.ShapeSample,
		Template:    "{sampleQuery}",
	},
}

// placeholders maps raw-template tokens to query shapes. Tokens not listed
// here are left untouched by Process.
var placeholders = map[string]query.Shape{
	"{nearVectorQuery}":  query.ShapeNearVector,
	"{nearTextQuery}":    query.ShapeNearText,
	"{hybridQuery}":      query.ShapeHybrid,
	"{bm25Query}":        query.ShapeBM25,
	"{generativeQuery}":  query.ShapeGenerative,
	"{filterQuery}":      query.ShapeFilter,
	"{aggregationQuery}": query.ShapeAggregation,
	"{groupByQuery}":     query.ShapeGroupBy,
	"{sampleQuery}":      query.ShapeSample,
}

// Catalog returns a copy of the template catalog.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// entryByName resolves a catalog entry by its display name.
func entryByName(name string) (Entry, bool) {
	for _, e := range catalog {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

package template

import (
	"fmt"

	"github.com/kailas-cloud/weaviq/internal/domain/query"
	"github.com/kailas-cloud/weaviq/internal/domain/schema"
)

// Generator renders query templates against one schema payload. A nil
// payload (or one that does not contain the collection) produces the static
// placeholder variant of each shape. Generators never fail: malformed or
// partial schemas degrade to placeholders, never to an error.
type Generator struct {
	payload *schema.Payload
}

// NewGenerator creates a generator for a schema payload. payload may be nil.
func NewGenerator(payload *schema.Payload) *Generator {
	return &Generator{payload: payload}
}

func (g *Generator) class(collection string) *schema.Class {
	return schema.Lookup(g.payload, collection)
}

// NearVector renders a vector similarity query. The vector comes from the
// config when supplied, otherwise a three-element placeholder annotated with
// an estimated dimension for the collection's vectorizer model.
func (g *Generator) NearVector(collection string, limit int, cfg *query.Config) string {
	class := g.class(collection)

	var blockLines []string
	if v := cfg.CustomVector(); len(v) > 0 {
		blockLines = append(blockLines, "vector: "+formatVector(v))
	} else {
		blockLines = append(blockLines, dimensionComment(class), "vector: [0.1, 0.2, 0.3]")
	}
	blockLines = append(blockLines, thresholdLine(cfg))

	args := append(commonArgs(limit, cfg), block("nearVector", blockLines))
	fields := append(g.selectFields(class), additionalLines(cfg, true)...)
	return getQuery(collection, nil, args, fields)
}

// dimensionComment estimates the embedding dimension from the collection's
// vectorizer model. The model-name table is approximate; unknown models get
// a generic reminder instead of a guess.
func dimensionComment(class *schema.Class) string {
	model := schema.VectorizerModel(class)
	if dims, ok := schema.EstimateDimensions(model); ok {
		return fmt.Sprintf("# Replace with a real vector (%d dimensions estimated for %s)", dims, model)
	}
	return "# Replace with a real vector matching your vectorizer dimensions"
}

// NearText renders a semantic text query with moveTo/moveAwayFrom steering.
// When the collection's schema shows no text vectorizer, the query is
// prefixed with a warning comment since nearText would fail at runtime.
func (g *Generator) NearText(collection string, limit int, cfg *query.Config) string {
	class := g.class(collection)

	concepts := cfg.ConceptsOr([]string{"your", "search", "concepts"})
	blockLines := []string{
		"concepts: " + formatConcepts(concepts),
		thresholdLine(cfg),
	}
	blockLines = append(blockLines, moveLines("moveTo",
		cfg.MoveToOr([]string{"relevant topic"}), cfg.MoveToForceOr(query.DefaultMoveToForce))...)
	blockLines = append(blockLines, moveLines("moveAwayFrom",
		cfg.MoveAwayFromOr([]string{"irrelevant topic"}), cfg.MoveAwayForceOr(query.DefaultMoveAwayForce))...)

	var comments []string
	if class != nil && !schema.HasTextVectorizer(class) {
		comments = append(comments, fmt.Sprintf(
			"# Warning: collection %s has no text vectorizer configured; nearText requires one", collection))
	}

	args := append(commonArgs(limit, cfg), block("nearText", blockLines))
	fields := append(g.selectFields(class), additionalLines(cfg, true)...)
	return getQuery(collection, comments, args, fields)
}

func moveLines(name string, concepts []string, force float64) []string {
	inner := []string{
		"concepts: " + formatConcepts(concepts),
		"force: " + formatNumber(force),
	}
	return []string{block(name, inner)}
}

// Hybrid renders a blended keyword/vector query. Keyword matching is
// restricted to the configured properties, defaulting to up to three text
// properties detected in the schema; with no schema the restriction is
// omitted and Weaviate searches all text properties.
func (g *Generator) Hybrid(collection string, limit int, cfg *query.Config) string {
	class := g.class(collection)

	blockLines := []string{
		fmt.Sprintf("query: %q", cfg.QueryOr("your search terms")),
		"alpha: " + formatNumber(cfg.AlphaOr(query.DefaultAlpha)),
	}
	if props := keywordProperties(class, cfg); len(props) > 0 {
		blockLines = append(blockLines, "properties: "+formatProperties(props))
	}
	if v := cfg.CustomVector(); len(v) > 0 {
		blockLines = append(blockLines, "vector: "+formatVector(v))
	}

	args := append(commonArgs(limit, cfg), block("hybrid", blockLines))
	fields := append(g.selectFields(class), additionalLines(cfg, true)...)
	return getQuery(collection, nil, args, fields)
}

// BM25 renders a keyword-only query with the same property restriction rule
// as Hybrid.
func (g *Generator) BM25(collection string, limit int, cfg *query.Config) string {
	class := g.class(collection)

	blockLines := []string{
		fmt.Sprintf("query: %q", cfg.QueryOr("your search terms")),
	}
	if props := keywordProperties(class, cfg); len(props) > 0 {
		blockLines = append(blockLines, "properties: "+formatProperties(props))
	}

	args := append(commonArgs(limit, cfg), block("bm25", blockLines))
	fields := append(g.selectFields(class), additionalLines(cfg, false)...)
	return getQuery(collection, nil, args, fields)
}

// keywordProperties resolves the keyword-matching property list: the config
// override when present, otherwise up to three text properties from schema.
func keywordProperties(class *schema.Class, cfg *query.Config) []string {
	if props := cfg.PropertyOverride(); len(props) > 0 {
		return props
	}
	return schema.TextProperties(class, 3)
}

// Generative renders a semantic query with a per-result LLM generation step.
// The task prompt interpolates up to two text properties from the schema.
func (g *Generator) Generative(collection string, limit int, cfg *query.Config) string {
	class := g.class(collection)

	concepts := cfg.ConceptsOr([]string{"your", "search", "concepts"})
	nearText := block("nearText", []string{
		"concepts: " + formatConcepts(concepts),
		thresholdLine(cfg),
	})

	prompt := cfg.PromptOr(defaultPrompt(class))

	fields := g.selectFields(class)
	fields = append(fields,
		"_additional {",
		"  id",
		"  generate(singleResult: {",
		fmt.Sprintf("    prompt: %q", prompt),
		"  }) {",
		"    singleResult",
		"    error",
		"  }",
		"}",
	)

	args := append(commonArgs(limit, cfg), nearText)
	return getQuery(collection, nil, args, fields)
}

// defaultPrompt builds a generation prompt interpolating up to two text
// properties, falling back to a generic instruction without schema.
func defaultPrompt(class *schema.Class) string {
	names := schema.TextProperties(class, 2)
	if len(names) == 0 {
		return "Summarize this result in one sentence"
	}
	prompt := "Summarize this result in one sentence:"
	for _, n := range names {
		prompt += " {" + n + "}"
	}
	return prompt
}

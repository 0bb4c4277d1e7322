package template

import (
	"strings"
	"testing"

	"github.com/kailas-cloud/weaviq/internal/domain/query"
	"github.com/kailas-cloud/weaviq/internal/domain/schema"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// articlePayload is a two-class schema exercising every property kind.
func articlePayload() *schema.Payload {
	return &schema.Payload{Classes: []schema.Class{
		{
			Class:      "Article",
			Vectorizer: "text2vec-openai",
			ModuleConfig: map[string]any{
				"text2vec-openai": map[string]any{"model": "text-embedding-3-small"},
			},
			Properties: []schema.Property{
				{Name: "title", DataType: []string{"text"}},
				{Name: "likes", DataType: []string{"int"}},
				{Name: "location", DataType: []string{"geoCoordinates"}},
				{Name: "author", DataType: []string{"Person"}},
			},
		},
		{
			Class: "Person",
			Properties: []schema.Property{
				{Name: "name", DataType: []string{"text"}},
				{Name: "email", DataType: []string{"text"}},
				{Name: "phone", DataType: []string{"text"}},
				{Name: "gender", DataType: []string{"text"}},
				{Name: "age", DataType: []string{"int"}},
			},
		},
	}}
}

func mustContain(t *testing.T, out string, subs ...string) {
	t.Helper()
	for _, s := range subs {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestNearVectorQuery_Static(t *testing.T) {
	out := NearVectorQuery("Article", 5)
	mustContain(t, out, "Article", "limit: 5", "nearVector", "vector: [0.1, 0.2, 0.3]", "id")
}

func TestNearVector_DimensionComment(t *testing.T) {
	g := NewGenerator(articlePayload())
	out := g.NearVector("Article", 10, nil)
	mustContain(t, out, "1536 dimensions", "text-embedding-3-small")
}

func TestNearVector_UnknownModelGenericComment(t *testing.T) {
	out := NearVectorQuery("Article", 10)
	mustContain(t, out, "# Replace with a real vector matching your vectorizer dimensions")
}

func TestNearVector_CustomVector(t *testing.T) {
	cfg := &query.Config{Vector: []float32{0.25, 0.5}}
	out := NewGenerator(nil).NearVector("Article", 10, cfg)
	mustContain(t, out, "vector: [0.25, 0.5]")
	if strings.Contains(out, "[0.1, 0.2, 0.3]") {
		t.Error("placeholder vector emitted alongside a custom vector")
	}
}

func TestNearVector_DistanceOverridesCertainty(t *testing.T) {
	cfg := &query.Config{Distance: floatPtr(0.3), Certainty: floatPtr(0.9)}
	out := NewGenerator(nil).NearVector("Article", 10, cfg)
	mustContain(t, out, "distance: 0.3")
	if strings.Contains(out, "certainty") {
		t.Error("certainty emitted despite explicit distance")
	}
}

func TestNearVector_DefaultCertainty(t *testing.T) {
	out := NearVectorQuery("Article", 10)
	mustContain(t, out, "certainty: 0.7")
}

func TestNearText_Static(t *testing.T) {
	out := NearTextQuery("Article", 10)
	mustContain(t, out,
		"nearText",
		`concepts: ["your", "search", "concepts"]`,
		"moveTo",
		"force: 0.85",
		"moveAwayFrom",
		"force: 0.45",
	)
}

func TestNearText_NoPropertiesFieldWithoutSchema(t *testing.T) {
	out := NearTextQuery("Article", 10)
	if strings.Contains(out, "properties:") {
		t.Errorf("nearText emitted properties without schema:\n%s", out)
	}
	mustContain(t, out, "nearText")
}

func TestNearText_WarnsWithoutTextVectorizer(t *testing.T) {
	p := &schema.Payload{Classes: []schema.Class{
		{Class: "Article", Vectorizer: "none", Properties: []schema.Property{
			{Name: "title", DataType: []string{"text"}},
		}},
		{Class: "Other"},
	}}

	out := NewGenerator(p).NearText("Article", 10, nil)
	mustContain(t, out, "# Warning: collection Article has no text vectorizer configured")
}

func TestNearText_NoWarningWithVectorizer(t *testing.T) {
	out := NewGenerator(articlePayload()).NearText("Article", 10, nil)
	if strings.Contains(out, "# Warning") {
		t.Errorf("unexpected vectorizer warning:\n%s", out)
	}
}

func TestHybrid_SchemaAware(t *testing.T) {
	out := NewGenerator(articlePayload()).Hybrid("Article", 10, nil)
	mustContain(t, out, "hybrid", "alpha: 0.5", `properties: ["title"]`, `query: "your search terms"`)
}

func TestHybrid_ConfigOverrides(t *testing.T) {
	cfg := &query.Config{
		Query:      "red wine",
		Alpha:      floatPtr(0.8),
		Properties: []string{"summary", "body"},
	}
	out := NewGenerator(articlePayload()).Hybrid("Article", 10, cfg)
	mustContain(t, out, `query: "red wine"`, "alpha: 0.8", `properties: ["summary", "body"]`)
}

func TestBM25_Static(t *testing.T) {
	out := BM25Query("Article", 10)
	mustContain(t, out, "bm25", `query: "your search terms"`)
	if strings.Contains(out, "properties:") {
		t.Error("bm25 emitted properties without schema")
	}
	if strings.Contains(out, "distance") {
		t.Error("bm25 emitted a similarity distance field")
	}
}

func TestGenerative_PromptInterpolatesTextProperties(t *testing.T) {
	out := NewGenerator(articlePayload()).Generative("Article", 10, nil)
	mustContain(t, out, "generate(singleResult:", "{title}", "singleResult", "error")
}

func TestGenerative_CustomPrompt(t *testing.T) {
	cfg := &query.Config{Prompt: "Translate {title} to French"}
	out := NewGenerator(articlePayload()).Generative("Article", 10, cfg)
	mustContain(t, out, `prompt: "Translate {title} to French"`)
}

func TestFilterQuery_Static(t *testing.T) {
	out := FilterQuery("Article", 12)
	mustContain(t, out, "where:", "Article", "limit: 12", `path: ["propertyName"]`)
}

func TestFilter_OperandsPerDeclaredType(t *testing.T) {
	p := &schema.Payload{Classes: []schema.Class{{
		Class: "Thing",
		Properties: []schema.Property{
			{Name: "name", DataType: []string{"text"}},
			{Name: "count", DataType: []string{"int"}},
			{Name: "active", DataType: []string{"boolean"}},
			{Name: "created", DataType: []string{"date"}},
		},
	}}}

	out := NewGenerator(p).Filter("Thing", 10, nil)
	mustContain(t, out,
		"operator: And",
		"operator: Like",
		`valueText: "*example*"`,
		"operator: GreaterThan",
		"valueNumber: 0",
	)
	// Only the first three primitives get an operand.
	if strings.Contains(out, "valueDate") {
		t.Errorf("fourth property should not appear in the where clause:\n%s", out)
	}
}

func TestFilter_OrOperator(t *testing.T) {
	cfg := &query.Config{Operator: "Or"}
	out := NewGenerator(articlePayload()).Filter("Article", 10, cfg)
	mustContain(t, out, "operator: Or")
}

func TestAggregation_SchemaAware(t *testing.T) {
	out := NewGenerator(articlePayload()).Aggregation("Article", 0, nil)
	mustContain(t, out,
		"Aggregate",
		"meta {",
		"count",
		"topOccurrences",
		"mean",
	)
	if strings.Contains(out, "limit:") {
		t.Error("aggregation should not carry a limit")
	}
}

func TestAggregationQuery_StaticFallback(t *testing.T) {
	out := AggregationQuery("Article")
	mustContain(t, out, "Aggregate", "meta {", "# Add per-property blocks")
}

func TestGroupBy(t *testing.T) {
	out := NewGenerator(articlePayload()).GroupBy("Article", 0, nil)
	mustContain(t, out, `groupBy: ["title"]`, "groupedBy {", "value", "meta {")
}

func TestGroupBy_FallbackKey(t *testing.T) {
	out := NewGenerator(nil).GroupBy("Article", 0, nil)
	mustContain(t, out, `groupBy: ["category"]`)
}

func TestSample_SchemaFieldSelection(t *testing.T) {
	out := NewGenerator(articlePayload()).Sample("Article", 10, nil)
	mustContain(t, out,
		"title",
		"likes",
		"latitude",
		"longitude",
		"author",
		"... on Person",
		"name",
		"email",
		"phone",
		"gender",
		"age",
		"_additional {",
		"id",
		"# Cross-reference: result fan-out may be large",
	)
}

func TestSample_NoSchemaPlaceholder(t *testing.T) {
	out := NewGenerator(nil).Sample("Article", 10, nil)
	mustContain(t, out, "# Add the properties you want returned", "_additional {")
}

func TestCommonArgs_OffsetTenantSort(t *testing.T) {
	cfg := &query.Config{
		Offset: intPtr(20),
		Tenant: "acme",
		Sort:   []query.SortSpec{{Path: "title", Order: "desc"}},
	}
	out := NewGenerator(nil).Sample("Article", 10, cfg)
	mustContain(t, out, "offset: 20", `tenant: "acme"`, `sort: [{path: ["title"], order: desc}]`)
}

func TestIncludeVector(t *testing.T) {
	cfg := &query.Config{IncludeVector: true}
	out := NewGenerator(nil).NearVector("Article", 10, cfg)
	mustContain(t, out, "vector\n")
}

func TestGenerators_Idempotent(t *testing.T) {
	g := NewGenerator(articlePayload())
	cfg := &query.Config{Concepts: []string{"wine"}, Certainty: floatPtr(0.8)}

	shapes := map[string]func() string{
		"nearVector":  func() string { return g.NearVector("Article", 10, cfg) },
		"nearText":    func() string { return g.NearText("Article", 10, cfg) },
		"hybrid":      func() string { return g.Hybrid("Article", 10, cfg) },
		"bm25":        func() string { return g.BM25("Article", 10, cfg) },
		"generative":  func() string { return g.Generative("Article", 10, cfg) },
		"filter":      func() string { return g.Filter("Article", 10, cfg) },
		"aggregation": func() string { return g.Aggregation("Article", 0, cfg) },
		"groupBy":     func() string { return g.GroupBy("Article", 0, cfg) },
		"sample":      func() string { return g.Sample("Article", 10, cfg) },
	}

	for name, gen := range shapes {
		if first, second := gen(), gen(); first != second {
			t.Errorf("%s: repeated generation differs", name)
		}
	}
}

func TestNearVector_IdempotentWithGenerativeModule(t *testing.T) {
	payload := &schema.Payload{Classes: []schema.Class{{
		Class: "Article",
		ModuleConfig: map[string]any{
			"text2vec-openai":   map[string]any{"model": "ada-002"},
			"generative-openai": map[string]any{"model": "gpt-4"},
		},
		Properties: []schema.Property{{Name: "title", DataType: []string{"text"}}},
	}}}
	g := NewGenerator(payload)

	first := g.NearVector("Article", 10, nil)
	mustContain(t, first, "1536 dimensions", "ada-002")
	for i := 0; i < 100; i++ {
		if got := g.NearVector("Article", 10, nil); got != first {
			t.Fatalf("call %d: repeated generation differs:\n%s\n---\n%s", i, first, got)
		}
	}
}

func TestEscapeString(t *testing.T) {
	cfg := &query.Config{Query: `say "hello" \ world`}
	out := NewGenerator(nil).BM25("Article", 10, cfg)
	mustContain(t, out, `query: "say \"hello\" \\ world"`)
}

package template

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/weaviq/internal/domain/query"
	"github.com/kailas-cloud/weaviq/internal/domain/schema"
)

// --- Mocks ---

type mockSchemas struct {
	payload *schema.Payload
	err     error
	calls   int
}

func (m *mockSchemas) Schema(_ context.Context) (*schema.Payload, error) {
	m.calls++
	return m.payload, m.err
}

type mockEmbedder struct {
	vector   []float32
	err      error
	lastText string
	calls    int
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	m.calls++
	m.lastText = text
	return m.vector, m.err
}

func TestService_Generate_SchemaAware(t *testing.T) {
	svc := New(&mockSchemas{payload: articlePayload()}, zap.NewNop())

	out := svc.Generate(context.Background(), "Sample Objects", "Article", 10, nil)
	mustContain(t, out, "title", "likes", "... on Person")
}

func TestService_Generate_SchemaErrorDegradesToStatic(t *testing.T) {
	svc := New(&mockSchemas{err: errors.New("connection refused")}, zap.NewNop())

	out := svc.Generate(context.Background(), "Sample Objects", "Article", 10, nil)
	mustContain(t, out, "Article", "# Add the properties you want returned")
}

func TestService_Generate_NilSchemaSource(t *testing.T) {
	svc := New(nil, zap.NewNop())

	out := svc.Generate(context.Background(), "Semantic Search", "Article", 10, nil)
	mustContain(t, out, "nearText", "Article")
}

func TestService_Generate_EmbedsConceptsForNearVector(t *testing.T) {
	emb := &mockEmbedder{vector: []float32{0.5, 0.25}}
	svc := New(&mockSchemas{payload: articlePayload()}, zap.NewNop()).WithEmbedder(emb)

	cfg := &query.Config{Concepts: []string{"red", "wine"}}
	out := svc.Generate(context.Background(), "Vector Similarity Search", "Article", 10, cfg)

	if emb.calls != 1 {
		t.Fatalf("embedder calls = %d, want 1", emb.calls)
	}
	if emb.lastText != "red wine" {
		t.Errorf("embedded text = %q, want %q", emb.lastText, "red wine")
	}
	mustContain(t, out, "vector: [0.5, 0.25]")
	if strings.Contains(out, "[0.1, 0.2, 0.3]") {
		t.Error("placeholder vector used despite a resolved embedding")
	}
}

func TestService_Generate_EmbedderSkippedForOtherShapes(t *testing.T) {
	emb := &mockEmbedder{vector: []float32{0.5}}
	svc := New(nil, zap.NewNop()).WithEmbedder(emb)

	cfg := &query.Config{Concepts: []string{"wine"}}
	svc.Generate(context.Background(), "Semantic Search", "Article", 10, cfg)

	if emb.calls != 0 {
		t.Errorf("embedder called %d times for a nearText template, want 0", emb.calls)
	}
}

func TestService_Generate_EmbedErrorDegradesToPlaceholder(t *testing.T) {
	emb := &mockEmbedder{err: errors.New("quota exceeded")}
	svc := New(nil, zap.NewNop()).WithEmbedder(emb)

	cfg := &query.Config{Concepts: []string{"wine"}}
	out := svc.Generate(context.Background(), "Vector Similarity Search", "Article", 10, cfg)
	mustContain(t, out, "vector: [0.1, 0.2, 0.3]")
}

func TestService_Generate_ExplicitVectorSkipsEmbedder(t *testing.T) {
	emb := &mockEmbedder{vector: []float32{9}}
	svc := New(nil, zap.NewNop()).WithEmbedder(emb)

	cfg := &query.Config{Concepts: []string{"wine"}, Vector: []float32{0.125}}
	out := svc.Generate(context.Background(), "Vector Similarity Search", "Article", 10, cfg)

	if emb.calls != 0 {
		t.Errorf("embedder called despite an explicit vector")
	}
	mustContain(t, out, "vector: [0.125]")
}

func TestService_Catalog(t *testing.T) {
	svc := New(nil, zap.NewNop())
	if got := len(svc.Catalog()); got != 9 {
		t.Errorf("Catalog() returned %d entries, want 9", got)
	}
}

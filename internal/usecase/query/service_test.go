package query

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/kailas-cloud/weaviq/internal/domain"
	"github.com/kailas-cloud/weaviq/internal/transport/weaviate"
)

// --- Mocks ---

type mockRunner struct {
	resp      *weaviate.GraphQLResponse
	err       error
	lastQuery string
	calls     int
}

func (m *mockRunner) RunGraphQL(_ context.Context, query string, _ map[string]any) (*weaviate.GraphQLResponse, error) {
	m.calls++
	m.lastQuery = query
	return m.resp, m.err
}

func TestRun_ProxiesSanitizedQuery(t *testing.T) {
	runner := &mockRunner{resp: &weaviate.GraphQLResponse{Data: json.RawMessage(`{"Get":{}}`)}}
	svc := New(runner)

	resp, err := svc.Run(context.Background(), "  { Get { Article { title } } }  ")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if resp == nil || len(resp.Data) == 0 {
		t.Fatal("Run returned no data")
	}
	if runner.lastQuery != "{ Get { Article { title } } }" {
		t.Errorf("proxied query = %q, want trimmed text", runner.lastQuery)
	}
}

func TestRun_RejectsInvalidQuery(t *testing.T) {
	runner := &mockRunner{}
	svc := New(runner)

	_, err := svc.Run(context.Background(), "{ Get { Article { title } }")
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Fatalf("err = %v, want ErrInvalidQuery", err)
	}
	if runner.calls != 0 {
		t.Error("invalid query reached the runner")
	}
}

func TestRun_TransportErrorWrapped(t *testing.T) {
	runner := &mockRunner{err: domain.ErrWeaviateUnavailable}
	svc := New(runner)

	_, err := svc.Run(context.Background(), "{ Get }")
	if !errors.Is(err, domain.ErrWeaviateUnavailable) {
		t.Errorf("err = %v, want ErrWeaviateUnavailable", err)
	}
}

func TestRun_GraphQLErrorsReturnedInResponse(t *testing.T) {
	runner := &mockRunner{resp: &weaviate.GraphQLResponse{
		Errors: []weaviate.GraphQLError{{Message: "Cannot query field"}},
	}}
	svc := New(runner)

	resp, err := svc.Run(context.Background(), "{ Get { Nope } }")
	if err != nil {
		t.Fatalf("GraphQL-level error became a Go error: %v", err)
	}
	if len(resp.Errors) != 1 {
		t.Errorf("resp.Errors = %v, want one entry", resp.Errors)
	}
}

func TestValidate(t *testing.T) {
	svc := New(&mockRunner{})

	if v := svc.Validate("{ Get { Article { title } } }"); !v.Valid {
		t.Errorf("valid query rejected: %v", v.Errors)
	}
	if v := svc.Validate("nope"); v.Valid {
		t.Error("invalid query accepted")
	}
}

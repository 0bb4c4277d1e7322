package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/kailas-cloud/weaviq/internal/domain"
)

func newTestEmbedder(t *testing.T, handler http.HandlerFunc) *Embedder {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewEmbedder(&Config{
		APIKey:  "test-key",
		BaseURL: srv.URL + "/v1",
		Model:   "text-embedding-3-small",
		Logger:  zap.NewNop(),
	})
}

func TestEmbedderEmbed(t *testing.T) {
	var gotReq struct {
		Input []string `json:"input"`
		Model string   `json:"model"`
	}

	emb := newTestEmbedder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/embeddings", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		err := json.NewDecoder(r.Body).Decode(&gotReq)
		assert.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"object": "list",
			"data": [{"object": "embedding", "index": 0, "embedding": [0.5, -0.25, 0.125]}],
			"model": "text-embedding-3-small",
			"usage": {"prompt_tokens": 3, "total_tokens": 3}
		}`))
	})

	vec, err := emb.Embed(context.Background(), "red wine")
	assert.NoError(t, err)
	assert.Equal(t, []float32{0.5, -0.25, 0.125}, vec)
	assert.Equal(t, []string{"red wine"}, gotReq.Input)
	assert.Equal(t, "text-embedding-3-small", gotReq.Model)
}

func TestEmbedderEmbedDimensions(t *testing.T) {
	var gotDimensions int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Dimensions int `json:"dimensions"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotDimensions = req.Dimensions

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [{"embedding": [0.1]}], "model": "text-embedding-3-small"}`))
	}))
	defer srv.Close()

	emb := NewEmbedder(&Config{
		APIKey:     "test-key",
		BaseURL:    srv.URL + "/v1",
		Model:      "text-embedding-3-small",
		Dimensions: 256,
		Logger:     zap.NewNop(),
	})

	_, err := emb.Embed(context.Background(), "hello")
	assert.NoError(t, err)
	assert.Equal(t, 256, gotDimensions)
}

func TestEmbedderEmbedAPIError(t *testing.T) {
	emb := newTestEmbedder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "invalid api key", "type": "invalid_request_error"}}`))
	})

	vec, err := emb.Embed(context.Background(), "hello")
	assert.Nil(t, vec)
	assert.ErrorIs(t, err, domain.ErrEmbeddingProviderError)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestEmbedderEmbedEmptyResponse(t *testing.T) {
	emb := newTestEmbedder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [], "model": "text-embedding-3-small"}`))
	})

	vec, err := emb.Embed(context.Background(), "hello")
	assert.Nil(t, vec)
	assert.ErrorIs(t, err, domain.ErrEmbeddingProviderError)
}

func TestEmbedderEmbedTransportError(t *testing.T) {
	emb := NewEmbedder(&Config{
		APIKey:  "test-key",
		BaseURL: "http://127.0.0.1:1/v1",
		Model:   "text-embedding-3-small",
		Logger:  zap.NewNop(),
	})

	_, err := emb.Embed(context.Background(), "hello")
	assert.ErrorIs(t, err, domain.ErrEmbeddingProviderError)
}

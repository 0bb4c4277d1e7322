// Package weaviate is an HTTP client for the Weaviate REST and GraphQL
// endpoints the workbench drives: schema, query execution, aliases, and
// backups.
package weaviate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/weaviq/internal/domain"
	"github.com/kailas-cloud/weaviq/internal/metrics"
)

const defaultRequestTimeout = 30 * time.Second

// Config holds connection settings for a Weaviate instance.
type Config struct {
	Endpoint string // base URL including /v1, e.g. http://localhost:8080/v1
	APIKey   string
	Username string
	Password string
	Timeout  time.Duration
	Logger   *zap.Logger
}

// Client talks to one Weaviate instance. Safe for concurrent use.
type Client struct {
	endpoint string
	apiKey   string
	username string
	password string
	http     *http.Client
	logger   *zap.Logger
}

// NewClient creates a Weaviate client.
func NewClient(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		apiKey:   cfg.APIKey,
		username: cfg.Username,
		password: cfg.Password,
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Ready checks the instance readiness endpoint.
func (c *Client) Ready(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/.well-known/ready", nil, nil)
}

// WaitForReady polls Ready until the instance responds or timeout expires.
func (c *Client) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for weaviate: %w", ctx.Err())
		case <-ticker.C:
			if err := c.Ready(ctx); err == nil {
				return nil
			}
		}
	}
}

// doJSON executes one request against the instance. body and out may be nil.
// Non-2xx statuses become errors wrapping domain.ErrWeaviateUnavailable for
// 5xx/transport failures and domain.ErrNotFound for 404.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	endpoint := metricEndpoint(path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.WeaviateRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("%w: %v", domain.ErrWeaviateUnavailable, err)
	}
	defer resp.Body.Close()

	metrics.WeaviateRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	metrics.WeaviateRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s %s: %s", domain.ErrNotFound, method, path, strings.TrimSpace(string(data)))
		}
		if resp.StatusCode >= 500 {
			return fmt.Errorf("%w: %s %s returned %d: %s",
				domain.ErrWeaviateUnavailable, method, path, resp.StatusCode, strings.TrimSpace(string(data)))
		}
		return fmt.Errorf("%s %s returned %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	switch {
	case c.apiKey != "":
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	case c.username != "" && c.password != "":
		req.SetBasicAuth(c.username, c.password)
	}
}

// metricEndpoint maps a request path to a low-cardinality metric label.
func metricEndpoint(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i > 0 {
		trimmed = trimmed[:i]
	}
	if trimmed == "" {
		return "unknown"
	}
	return trimmed
}

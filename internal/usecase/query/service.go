// Package query validates and executes GraphQL query text against the
// connected Weaviate instance.
package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/kailas-cloud/weaviq/internal/domain"
	domquery "github.com/kailas-cloud/weaviq/internal/domain/query"
	"github.com/kailas-cloud/weaviq/internal/metrics"
	"github.com/kailas-cloud/weaviq/internal/transport/weaviate"
)

// Service handles query validation and proxied execution.
type Service struct {
	runner Runner
}

// New creates a query service.
func New(runner Runner) *Service {
	return &Service{runner: runner}
}

// Validate performs the advisory syntactic check on query text.
func (s *Service) Validate(q string) domquery.Validation {
	return domquery.ValidateAndSanitize(q)
}

// Run sanitizes the query, rejects syntactically broken text, and proxies
// the rest to the instance. GraphQL-level errors come back inside the
// response for the caller to display.
func (s *Service) Run(ctx context.Context, q string) (*weaviate.GraphQLResponse, error) {
	v := domquery.ValidateAndSanitize(q)
	if !v.Valid {
		metrics.QueryExecutionsTotal.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidQuery, strings.Join(v.Errors, "; "))
	}

	resp, err := s.runner.RunGraphQL(ctx, v.Sanitized, nil)
	if err != nil {
		metrics.QueryExecutionsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("execute query: %w", err)
	}

	if len(resp.Errors) > 0 {
		metrics.QueryExecutionsTotal.WithLabelValues("graphql_error").Inc()
	} else {
		metrics.QueryExecutionsTotal.WithLabelValues("success").Inc()
	}
	return resp, nil
}

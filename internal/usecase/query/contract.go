package query

import (
	"context"

	"github.com/kailas-cloud/weaviq/internal/transport/weaviate"
)

// Runner executes GraphQL queries against the connected instance.
type Runner interface {
	RunGraphQL(ctx context.Context, query string, variables map[string]any) (*weaviate.GraphQLResponse, error)
}

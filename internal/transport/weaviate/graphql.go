package weaviate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GraphQLRequest is the /graphql request body.
type GraphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// GraphQLError is one error entry of a GraphQL response.
type GraphQLError struct {
	Message string   `json:"message"`
	Path    []string `json:"path,omitempty"`
}

// GraphQLResponse is the raw /graphql response. Data is kept unparsed; the
// workbench relays it to the caller as-is.
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// RunGraphQL executes a GraphQL query against the instance. GraphQL-level
// errors are returned inside the response, not as a Go error; only transport
// failures error out.
func (c *Client) RunGraphQL(ctx context.Context, query string, variables map[string]any) (*GraphQLResponse, error) {
	req := GraphQLRequest{Query: query, Variables: variables}

	var resp GraphQLResponse
	if err := c.doJSON(ctx, http.MethodPost, "/graphql", req, &resp); err != nil {
		return nil, fmt.Errorf("run graphql: %w", err)
	}
	return &resp, nil
}

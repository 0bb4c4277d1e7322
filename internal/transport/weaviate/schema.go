package weaviate

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kailas-cloud/weaviq/internal/domain/schema"
)

// Schema fetches the full schema payload of the instance.
func (c *Client) Schema(ctx context.Context) (*schema.Payload, error) {
	var payload schema.Payload
	if err := c.doJSON(ctx, http.MethodGet, "/schema", nil, &payload); err != nil {
		return nil, fmt.Errorf("get schema: %w", err)
	}
	return &payload, nil
}

// Class fetches one class definition by name.
func (c *Client) Class(ctx context.Context, name string) (*schema.Class, error) {
	var class schema.Class
	if err := c.doJSON(ctx, http.MethodGet, "/schema/"+name, nil, &class); err != nil {
		return nil, fmt.Errorf("get class %s: %w", name, err)
	}
	return &class, nil
}

// DeleteClass removes a class and all its objects.
func (c *Client) DeleteClass(ctx context.Context, name string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/schema/"+name, nil, nil); err != nil {
		return fmt.Errorf("delete class %s: %w", name, err)
	}
	return nil
}

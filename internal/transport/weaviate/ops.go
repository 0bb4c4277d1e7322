package weaviate

import (
	"context"
	"fmt"
	"net/http"
)

// Alias maps an alternate name onto a class.
type Alias struct {
	Alias string `json:"alias"`
	Class string `json:"class"`
}

type aliasList struct {
	Aliases []Alias `json:"aliases"`
}

// ListAliases returns all aliases configured on the instance.
func (c *Client) ListAliases(ctx context.Context) ([]Alias, error) {
	var list aliasList
	if err := c.doJSON(ctx, http.MethodGet, "/aliases", nil, &list); err != nil {
		return nil, fmt.Errorf("list aliases: %w", err)
	}
	return list.Aliases, nil
}

// CreateAlias points a new alias at a class.
func (c *Client) CreateAlias(ctx context.Context, alias Alias) error {
	if err := c.doJSON(ctx, http.MethodPost, "/aliases", alias, nil); err != nil {
		return fmt.Errorf("create alias %s: %w", alias.Alias, err)
	}
	return nil
}

// DeleteAlias removes an alias. The aliased class is untouched.
func (c *Client) DeleteAlias(ctx context.Context, alias string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/aliases/"+alias, nil, nil); err != nil {
		return fmt.Errorf("delete alias %s: %w", alias, err)
	}
	return nil
}

// BackupRequest starts a backup on the given backend. Include limits the
// backup to the named classes; empty backs up everything.
type BackupRequest struct {
	ID      string   `json:"id"`
	Include []string `json:"include,omitempty"`
}

// BackupStatus reports the state of a backup.
type BackupStatus struct {
	ID     string `json:"id"`
	Path   string `json:"path,omitempty"`
	Status string `json:"status"` // STARTED, TRANSFERRING, SUCCESS, FAILED
	Error  string `json:"error,omitempty"`
}

// CreateBackup starts a backup on the given backend (filesystem, s3, gcs).
func (c *Client) CreateBackup(ctx context.Context, backend string, req BackupRequest) (*BackupStatus, error) {
	var status BackupStatus
	if err := c.doJSON(ctx, http.MethodPost, "/backups/"+backend, req, &status); err != nil {
		return nil, fmt.Errorf("create backup %s/%s: %w", backend, req.ID, err)
	}
	return &status, nil
}

// BackupStatus polls the state of a backup.
func (c *Client) BackupStatus(ctx context.Context, backend, id string) (*BackupStatus, error) {
	var status BackupStatus
	if err := c.doJSON(ctx, http.MethodGet, "/backups/"+backend+"/"+id, nil, &status); err != nil {
		return nil, fmt.Errorf("backup status %s/%s: %w", backend, id, err)
	}
	return &status, nil
}

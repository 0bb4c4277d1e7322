// Package ops wraps the administrative operations of the workbench: alias
// management and backup creation.
package ops

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/weaviq/internal/domain"
	domschema "github.com/kailas-cloud/weaviq/internal/domain/schema"
	"github.com/kailas-cloud/weaviq/internal/transport/weaviate"
)

// supportedBackends are the backup backends Weaviate ships modules for.
var supportedBackends = map[string]bool{
	"filesystem": true,
	"s3":         true,
	"gcs":        true,
	"azure":      true,
}

// Service handles alias and backup operations.
type Service struct {
	admin InstanceAdmin
}

// New creates an ops service.
func New(admin InstanceAdmin) *Service {
	return &Service{admin: admin}
}

// ListAliases returns all aliases on the instance.
func (s *Service) ListAliases(ctx context.Context) ([]weaviate.Alias, error) {
	aliases, err := s.admin.ListAliases(ctx)
	if err != nil {
		return nil, fmt.Errorf("list aliases: %w", err)
	}
	return aliases, nil
}

// CreateAlias validates both names and points a new alias at a class.
func (s *Service) CreateAlias(ctx context.Context, alias, class string) error {
	if v := domschema.ValidateCollectionName(alias); !v.Valid {
		return fmt.Errorf("%w: alias: %s", domain.ErrInvalidName, v.Error)
	}
	if v := domschema.ValidateCollectionName(class); !v.Valid {
		return fmt.Errorf("%w: class: %s", domain.ErrInvalidName, v.Error)
	}
	if err := s.admin.CreateAlias(ctx, weaviate.Alias{Alias: alias, Class: class}); err != nil {
		return fmt.Errorf("create alias: %w", err)
	}
	return nil
}

// DeleteAlias removes an alias.
func (s *Service) DeleteAlias(ctx context.Context, alias string) error {
	if err := s.admin.DeleteAlias(ctx, alias); err != nil {
		return fmt.Errorf("delete alias: %w", err)
	}
	return nil
}

// CreateBackup starts a backup of the named collections (all when empty).
func (s *Service) CreateBackup(ctx context.Context, backend, id string, include []string) (*weaviate.BackupStatus, error) {
	if !supportedBackends[backend] {
		return nil, fmt.Errorf("%w: unsupported backup backend %q", domain.ErrInvalidName, backend)
	}
	if v := domschema.ValidateCollectionName(id); !v.Valid {
		return nil, fmt.Errorf("%w: backup id: %s", domain.ErrInvalidName, v.Error)
	}

	status, err := s.admin.CreateBackup(ctx, backend, weaviate.BackupRequest{ID: id, Include: include})
	if err != nil {
		return nil, fmt.Errorf("create backup: %w", err)
	}
	return status, nil
}

// BackupStatus polls a backup's state.
func (s *Service) BackupStatus(ctx context.Context, backend, id string) (*weaviate.BackupStatus, error) {
	status, err := s.admin.BackupStatus(ctx, backend, id)
	if err != nil {
		return nil, fmt.Errorf("backup status: %w", err)
	}
	return status, nil
}

package ops

import (
	"context"

	"github.com/kailas-cloud/weaviq/internal/transport/weaviate"
)

// InstanceAdmin is the Weaviate administrative surface the service drives.
type InstanceAdmin interface {
	ListAliases(ctx context.Context) ([]weaviate.Alias, error)
	CreateAlias(ctx context.Context, alias weaviate.Alias) error
	DeleteAlias(ctx context.Context, alias string) error
	CreateBackup(ctx context.Context, backend string, req weaviate.BackupRequest) (*weaviate.BackupStatus, error)
	BackupStatus(ctx context.Context, backend, id string) (*weaviate.BackupStatus, error)
}

package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/simaogato/marketfolio-backend/internal/adapter/repository/memory"
	"github.com/simaogato/marketfolio-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/marketfolio-backend/internal/domain"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Repositories groups the persistence adapters of one backend
type Repositories struct {
	Backend  string
	Accounts domain.AccountRepository
	Catalog  domain.ItemCatalog

	close func() error
}

// Close releases the underlying connection, if any
func (r *Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// Open returns the repositories for the given backend name.
// "postgres" connects with connStr and applies the schema; "memory" keeps
// everything in-process. An empty backend defaults to postgres.
func Open(ctx context.Context, backend, connStr string) (*Repositories, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendMemory:
		return &Repositories{
			Backend:  BackendMemory,
			Accounts: memory.NewAccountRepository(),
			Catalog:  memory.NewItemCatalog(),
		}, nil
	case BackendPostgres, "":
		db, err := postgres.NewDB(ctx, connStr)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return &Repositories{
			Backend:  BackendPostgres,
			Accounts: postgres.NewAccountRepository(db),
			Catalog:  postgres.NewItemRepository(db),
			close:    db.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", backend)
	}
}

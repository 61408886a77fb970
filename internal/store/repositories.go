package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shelfsync/internal/config"
	"github.com/MKhiriev/shelfsync/internal/logger"
)

// Repositories groups the server-side postgres repositories.
type Repositories struct {
	UserRepository     UserRepository
	SnapshotRepository SnapshotRepository

	db *DB
}

// NewRepositories connects to postgres, applies migrations and builds the
// server repositories.
func NewRepositories(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Repositories, error) {
	logger.Info().Msg("creating new repositories...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Repositories{
		UserRepository:     NewUserRepository(db, logger),
		SnapshotRepository: NewSnapshotRepository(db, logger),
		db:                 db,
	}, nil
}

// Close releases the database connection pool.
func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shelfsync/internal/config"
	"github.com/MKhiriev/shelfsync/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// KeyValue holds the device id and the session token.
	KeyValue KeyValueRepository
	// State is the application document synchronized with the server.
	State LocalStateStore

	db *DB
}

// NewClientStorages opens the sqlite file from cfg, runs pending migrations
// and loads the local state.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	state, err := NewLocalStateStore(ctx, db, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("loading local state: %w", err)
	}

	return &ClientStorages{
		KeyValue: NewKeyValueRepository(db, logger),
		State:    state,
		db:       db,
	}, nil
}

// Close releases the sqlite connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/shelfsync/internal/logger"
)

type keyValueRepository struct {
	*DB
	logger *logger.Logger
}

// NewKeyValueRepository constructs a [KeyValueRepository] over the sqlite kv table.
func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueRepository {
	return &keyValueRepository{DB: db, logger: logger}
}

func (r *keyValueRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.QueryRowContext(ctx, kvGet, key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		r.logger.Err(err).Str("func", "keyValueRepository.Get").Str("key", key).Msg("failed to read key")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return value, true, nil
}

func (r *keyValueRepository) Set(ctx context.Context, key, value string) error {
	if _, err := r.ExecContext(ctx, kvSet, key, value); err != nil {
		r.logger.Err(err).Str("func", "keyValueRepository.Set").Str("key", key).Msg("failed to write key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

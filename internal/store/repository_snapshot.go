// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/models"
)

// snapshotRepository is the PostgreSQL-backed [SnapshotRepository]. The whole
// AppData document is stored as JSONB in one row per user.
type snapshotRepository struct {
	*DB
	logger   *logger.Logger
	attempts int
}

// NewSnapshotRepository constructs a [SnapshotRepository] that retries
// transient postgres failures up to three times.
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	logger.Debug().Msg("creating snapshot repository")
	return &snapshotRepository{
		DB:       db,
		logger:   logger,
		attempts: defaultRetryAttempts,
	}
}

func (r *snapshotRepository) GetSnapshot(ctx context.Context, userID int64) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSnapshotQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.GetSnapshot").Int64("user_id", userID).Msg("failed to create query")
		return models.Snapshot{}, err
	}

	var (
		snapshot models.Snapshot
		data     []byte
	)
	err = withRetry(ctx, r.errorClassificator, r.attempts, defaultRetryBackoff, func() error {
		return r.QueryRowContext(ctx, query, args...).Scan(&data, &snapshot.Version, &snapshot.Timestamp, &snapshot.DeviceID)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Snapshot{}, ErrSnapshotNotFound
	case err != nil:
		log.Err(err).Str("func", "snapshotRepository.GetSnapshot").Int64("user_id", userID).Msg("failed to select snapshot")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal(data, &snapshot.Data); err != nil {
		log.Err(err).Str("func", "snapshotRepository.GetSnapshot").Int64("user_id", userID).Msg("stored snapshot is not valid json")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	return snapshot, nil
}

func (r *snapshotRepository) UpsertSnapshot(ctx context.Context, userID int64, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(snapshot.Data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	query, args, err := buildUpsertSnapshotQuery(userID, data, snapshot.Version, snapshot.Timestamp, snapshot.DeviceID)
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.UpsertSnapshot").Int64("user_id", userID).Msg("failed to create query")
		return err
	}

	err = withRetry(ctx, r.errorClassificator, r.attempts, defaultRetryBackoff, func() error {
		_, execErr := r.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.UpsertSnapshot").
			Int64("user_id", userID).
			Int64("version", snapshot.Version).
			Str("device_id", snapshot.DeviceID).
			Msg("failed to upsert snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Int64("user_id", userID).Int64("version", snapshot.Version).Msg("snapshot stored")
	return nil
}

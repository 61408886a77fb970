package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/store"
	"github.com/MKhiriev/shelfsync/models"
)

type snapshotService struct {
	snapshotRepository store.SnapshotRepository

	logger *logger.Logger
}

func NewSnapshotService(snapshotRepository store.SnapshotRepository, logger *logger.Logger) SnapshotService {
	return &snapshotService{
		snapshotRepository: snapshotRepository,
		logger:             logger,
	}
}

func (s *snapshotService) GetSnapshot(ctx context.Context, userID int64) (models.Snapshot, error) {
	snapshot, err := s.snapshotRepository.GetSnapshot(ctx, userID)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("get snapshot of user %d: %w", userID, err)
	}
	return snapshot, nil
}

func (s *snapshotService) PutSnapshot(ctx context.Context, userID int64, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)

	if err := s.snapshotRepository.UpsertSnapshot(ctx, userID, snapshot); err != nil {
		return fmt.Errorf("put snapshot of user %d: %w", userID, err)
	}

	log.Info().
		Int64("user_id", userID).
		Int64("version", snapshot.Version).
		Str("device_id", snapshot.DeviceID).
		Msg("snapshot stored")
	return nil
}

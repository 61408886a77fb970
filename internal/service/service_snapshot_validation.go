package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/shelfsync/internal/validators"
	"github.com/MKhiriev/shelfsync/models"
)

// SnapshotServiceWrapper defines middleware composition for SnapshotService.
// Implementations wrap an existing SnapshotService to add behavior such as
// logging or validating.
type SnapshotServiceWrapper interface {
	Wrap(SnapshotService) SnapshotService // returns a decorated SnapshotService applying additional behavior
}

// SnapshotValidationService rejects malformed snapshots before they reach
// the wrapped SnapshotService. It never compares versions: a valid snapshot
// always overwrites the stored one.
type SnapshotValidationService struct {
	inner     SnapshotService
	validator validators.Validator
}

func NewSnapshotValidationService() SnapshotServiceWrapper {
	return &SnapshotValidationService{
		validator: validators.NewSnapshotValidator(),
	}
}

func (v *SnapshotValidationService) GetSnapshot(ctx context.Context, userID int64) (models.Snapshot, error) {
	if userID <= 0 {
		return models.Snapshot{}, ErrValidationNoUserID
	}
	return v.inner.GetSnapshot(ctx, userID)
}

func (v *SnapshotValidationService) PutSnapshot(ctx context.Context, userID int64, snapshot models.Snapshot) error {
	if userID <= 0 {
		return ErrValidationNoUserID
	}
	if err := v.validator.Validate(ctx, snapshot); err != nil {
		return fmt.Errorf("error during snapshot validation before saving: %w", err)
	}
	return v.inner.PutSnapshot(ctx, userID, snapshot)
}

func (v *SnapshotValidationService) Wrap(wrapped SnapshotService) SnapshotService {
	v.inner = wrapped
	return v
}

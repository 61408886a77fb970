package validators

import (
	"context"

	"github.com/MKhiriev/shelfsync/models"
)

type SnapshotValidator struct {
}

func NewSnapshotValidator() Validator {
	return &SnapshotValidator{}
}

func (v *SnapshotValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Snapshot:
		return v.validateSnapshot(ctx, value, fields...)
	case *models.Snapshot:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSnapshot(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SnapshotValidator) validateSnapshot(_ context.Context, snapshot models.Snapshot, fields ...string) error {
	if len(fields) == 0 {
		fields = snapshotFields
	}

	for _, f := range fields {
		switch f {
		case FieldVersion:
			if snapshot.Version < 0 {
				return ErrNegativeVersion
			}
		case FieldDeviceID:
			if snapshot.DeviceID == "" {
				return ErrNoDeviceID
			}
		case FieldTimestamp:
			if snapshot.Timestamp <= 0 {
				return ErrInvalidTimestamp
			}
		case FieldChallenge:
			// no challenge set is valid
			if snapshot.Data.Challenge != nil && snapshot.Data.Challenge.Goal < 0 {
				return ErrNegativeChallengeGoal
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

package store

import (
	"context"

	"github.com/MKhiriev/shelfsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists snapshot server accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// SnapshotRepository holds at most one snapshot per user. Upsert overwrites
// whatever is stored; there is no version check.
type SnapshotRepository interface {
	GetSnapshot(ctx context.Context, userID int64) (models.Snapshot, error)
	UpsertSnapshot(ctx context.Context, userID int64, snapshot models.Snapshot) error
}

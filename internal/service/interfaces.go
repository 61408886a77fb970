package service

import (
	"context"

	"github.com/MKhiriev/shelfsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SnapshotService serves the remote snapshot record of a user.
type SnapshotService interface {
	// GetSnapshot returns the stored snapshot; store.ErrSnapshotNotFound when
	// the user never pushed.
	GetSnapshot(ctx context.Context, userID int64) (models.Snapshot, error)
	// PutSnapshot overwrites the stored snapshot. Last write wins.
	PutSnapshot(ctx context.Context, userID int64, snapshot models.Snapshot) error
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

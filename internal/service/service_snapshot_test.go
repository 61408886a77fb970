package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/mock"
	"github.com/MKhiriev/shelfsync/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSnapshotService_GetSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := mock.NewMockSnapshotRepository(gomock.NewController(t))
		want := validSnapshot()
		repo.EXPECT().GetSnapshot(ctx, int64(2)).Return(want, nil)

		got, err := NewSnapshotService(repo, logger.Nop()).GetSnapshot(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("never pushed", func(t *testing.T) {
		repo := mock.NewMockSnapshotRepository(gomock.NewController(t))
		repo.EXPECT().GetSnapshot(ctx, int64(2)).Return(validSnapshot(), store.ErrSnapshotNotFound)

		got, err := NewSnapshotService(repo, logger.Nop()).GetSnapshot(ctx, 2)

		assert.ErrorIs(t, err, store.ErrSnapshotNotFound)
		assert.Zero(t, got.Version)
	})
}

func TestSnapshotService_PutSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("stored as is", func(t *testing.T) {
		repo := mock.NewMockSnapshotRepository(gomock.NewController(t))
		snapshot := validSnapshot()
		repo.EXPECT().UpsertSnapshot(ctx, int64(2), snapshot).Return(nil)

		assert.NoError(t, NewSnapshotService(repo, logger.Nop()).PutSnapshot(ctx, 2, snapshot))
	})

	t.Run("older version still overwrites", func(t *testing.T) {
		repo := mock.NewMockSnapshotRepository(gomock.NewController(t))
		snapshot := validSnapshot()
		snapshot.Version = 1
		repo.EXPECT().UpsertSnapshot(ctx, int64(2), snapshot).Return(nil)

		assert.NoError(t, NewSnapshotService(repo, logger.Nop()).PutSnapshot(ctx, 2, snapshot))
	})

	t.Run("repository error", func(t *testing.T) {
		repo := mock.NewMockSnapshotRepository(gomock.NewController(t))
		dbErr := errors.New("connection reset")
		repo.EXPECT().UpsertSnapshot(ctx, int64(2), gomock.Any()).Return(dbErr)

		assert.ErrorIs(t, NewSnapshotService(repo, logger.Nop()).PutSnapshot(ctx, 2, validSnapshot()), dbErr)
	})
}

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/shelfsync/internal/adapter"
	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/store"
	"github.com/MKhiriev/shelfsync/models"
	"github.com/rs/zerolog"
)

type clientSyncService struct {
	state    store.LocalStateStore
	adapter  adapter.ServerAdapter
	devices  DeviceIdentityService
	identity IdentityProvider
	probe    ConnectivityProbe

	configured bool
	job        ClientSyncJob

	mu       sync.RWMutex
	deviceID string

	syncing atomic.Bool
	now     func() time.Time

	logger *logger.Logger
}

// SyncDeps are the collaborators of the sync engine.
type SyncDeps struct {
	State    store.LocalStateStore
	Adapter  adapter.ServerAdapter
	Devices  DeviceIdentityService
	Identity IdentityProvider
	Probe    ConnectivityProbe
}

// NewClientSyncService builds the sync engine. configured is the result of
// the configuration check; when false every operation is a no-op that never
// touches the network. jobFactory builds the periodic jobs around the engine.
func NewClientSyncService(deps SyncDeps, configured bool, jobFactory func(engine ClientSyncService) ClientSyncJob, logger *logger.Logger) ClientSyncService {
	s := &clientSyncService{
		state:      deps.State,
		adapter:    deps.Adapter,
		devices:    deps.Devices,
		identity:   deps.Identity,
		probe:      deps.Probe,
		configured: configured,
		now:        time.Now,
		logger:     logger,
	}
	s.job = jobFactory(s)
	return s
}

func (s *clientSyncService) Initialize(ctx context.Context) {
	s.setDeviceID(s.devices.Resolve(ctx))

	if !s.configured {
		s.logger.Info().Msg("sync is not configured, engine stays idle")
		return
	}

	// the local document must belong to the signed-in user before anything
	// reads it
	if userID, ok := s.identity.CurrentUserID(ctx); ok {
		log := s.logger.With().Str("op", "initialize").Logger()
		s.claimLocalState(ctx, &log, userID)
	}

	s.job.Stop()

	// the initial pull is not awaited
	go s.Pull(context.WithoutCancel(ctx))

	s.job.Start(ctx)
	s.logger.Info().Str("device_id", s.DeviceID()).Msg("sync started")
}

func (s *clientSyncService) StopSync() {
	s.job.Stop()
}

func (s *clientSyncService) ForceSyncNow(ctx context.Context) bool {
	return s.Push(ctx)
}

func (s *clientSyncService) GetSyncStatus() models.SyncStatus {
	return models.SyncStatus{
		LastSyncTimestamp: s.state.LastSyncTimestamp(),
		Version:           s.state.Version(),
		IsSyncing:         s.syncing.Load(),
		IsConfigured:      s.configured,
	}
}

func (s *clientSyncService) Pull(ctx context.Context) (replaced bool) {
	log := s.logger.With().Str("op", "pull").Logger()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Any("panic", r).Msg("pull panicked")
			replaced = false
		}
	}()

	if !s.configured {
		log.Debug().Msg("sync is not configured")
		return false
	}

	userID, ok := s.identity.CurrentUserID(ctx)
	if !ok {
		log.Info().Msg("no authenticated user")
		return false
	}

	if !s.probe.IsOnline(ctx) {
		log.Info().Msg("device is offline")
		return false
	}

	if !s.claimLocalState(ctx, &log, userID) {
		return false
	}

	remote, err := s.adapter.FetchSnapshot(ctx, userID)
	if errors.Is(err, adapter.ErrNotFound) {
		log.Info().Str("user_id", userID).Msg("no remote snapshot yet")
		return false
	}
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("fetching remote snapshot failed")
		return false
	}

	applied, err := s.state.RestoreIfNewer(ctx, remote.Data, remote.Version, remote.Timestamp)
	if err != nil {
		log.Err(err).Int64("remote_version", remote.Version).Msg("restoring remote snapshot failed")
		return false
	}
	if !applied {
		log.Debug().
			Int64("local_version", s.state.Version()).
			Int64("remote_version", remote.Version).
			Msg("local state is up to date")
		return false
	}

	log.Info().
		Int64("remote_version", remote.Version).
		Str("remote_device_id", remote.DeviceID).
		Msg("local state restored from remote snapshot")
	return true
}

func (s *clientSyncService) Push(ctx context.Context) (pushed bool) {
	log := s.logger.With().Str("op", "push").Logger()

	if !s.configured {
		log.Debug().Msg("sync is not configured")
		return false
	}

	if !s.syncing.CompareAndSwap(false, true) {
		log.Debug().Msg("push already in progress")
		return false
	}
	defer s.syncing.Store(false)
	defer func() {
		if r := recover(); r != nil {
			log.Error().Any("panic", r).Msg("push panicked")
			pushed = false
		}
	}()

	userID, ok := s.identity.CurrentUserID(ctx)
	if !ok {
		log.Info().Msg("no authenticated user")
		return false
	}

	if !s.probe.IsOnline(ctx) {
		log.Info().Msg("device is offline")
		return false
	}

	switch owner := s.state.Owner(); owner {
	case userID:
	case "":
		if !s.claimLocalState(ctx, &log, userID) {
			return false
		}
	default:
		log.Warn().Str("user_id", userID).Str("owner", owner).Msg("local state belongs to another user, not pushing")
		return false
	}

	data, version := s.state.CurrentStateVersion()
	snapshot := models.Snapshot{
		Data:      data,
		Version:   version,
		Timestamp: s.now().UnixMilli(),
		DeviceID:  s.ensureDeviceID(ctx),
	}

	if err := s.adapter.UpsertSnapshot(ctx, userID, snapshot); err != nil {
		log.Err(err).Str("user_id", userID).Int64("version", version).Msg("uploading snapshot failed")
		return false
	}

	if err := s.state.SetLastSyncTimestamp(ctx, snapshot.Timestamp); err != nil {
		log.Err(err).Msg("snapshot uploaded but last sync time was not saved")
	}

	log.Info().Str("user_id", userID).Int64("version", version).Msg("snapshot uploaded")
	return true
}

// claimLocalState binds the local document to userID, wiping another user's
// data. It reports false when ownership could not be recorded.
func (s *clientSyncService) claimLocalState(ctx context.Context, log *zerolog.Logger, userID string) bool {
	reset, err := s.state.ClaimOwner(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("claiming local state failed")
		return false
	}
	if reset {
		log.Info().Str("user_id", userID).Msg("local state of the previous user discarded")
	}
	return true
}

func (s *clientSyncService) IsSyncing() bool {
	return s.syncing.Load()
}

func (s *clientSyncService) DeviceID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deviceID
}

func (s *clientSyncService) setDeviceID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deviceID = id
}

// ensureDeviceID resolves the device id when a push runs before Initialize.
func (s *clientSyncService) ensureDeviceID(ctx context.Context) string {
	if id := s.DeviceID(); id != "" {
		return id
	}
	id := s.devices.Resolve(ctx)
	s.setDeviceID(id)
	return id
}

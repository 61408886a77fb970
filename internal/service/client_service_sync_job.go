package service

import (
	"context"

	"github.com/MKhiriev/shelfsync/internal/config"
	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/workers"
)

type clientSyncJob struct {
	engine ClientSyncService
	probe  ConnectivityProbe

	workers *workers.Workers

	logger *logger.Logger
}

// NewClientSyncJob creates a clientSyncJob around engine: a push every
// cfg.SyncInterval and a connectivity poll every cfg.ConnectivityPollInterval
// that pushes when the server is reachable and no push is running. Non-positive
// intervals default to 5 minutes and 30 seconds. The job is idle until Start
// is called.
func NewClientSyncJob(engine ClientSyncService, probe ConnectivityProbe, cfg config.ClientWorkers, logger *logger.Logger) ClientSyncJob {
	syncInterval := cfg.SyncInterval
	if syncInterval <= 0 {
		syncInterval = config.DefaultSyncInterval
	}
	pollInterval := cfg.ConnectivityPollInterval
	if pollInterval <= 0 {
		pollInterval = config.DefaultConnectivityPollInterval
	}

	j := &clientSyncJob{engine: engine, probe: probe, logger: logger}
	j.workers = workers.NewWorkers(
		workers.NewTickerWorker("periodic-push", syncInterval, j.periodicPush, logger),
		workers.NewTickerWorker("connectivity-poll", pollInterval, j.connectivityPoll, logger),
	)
	return j
}

// Start implements ClientSyncJob.
func (j *clientSyncJob) Start(ctx context.Context) {
	j.workers.Start(ctx)
}

// Stop implements ClientSyncJob. It waits for a tick that is already running,
// but the push inside it is not cancelled.
func (j *clientSyncJob) Stop() {
	j.workers.Stop()
}

func (j *clientSyncJob) periodicPush(ctx context.Context) {
	j.engine.Push(context.WithoutCancel(ctx))
}

func (j *clientSyncJob) connectivityPoll(ctx context.Context) {
	if j.engine.IsSyncing() {
		return
	}
	if !j.probe.IsOnline(ctx) {
		return
	}
	j.logger.Debug().Msg("server reachable, pushing")
	j.engine.Push(context.WithoutCancel(ctx))
}

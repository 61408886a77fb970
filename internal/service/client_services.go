package service

import (
	"github.com/MKhiriev/shelfsync/internal/adapter"
	"github.com/MKhiriev/shelfsync/internal/config"
	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	DeviceIdentity DeviceIdentityService
	Identity       IdentityProvider
	Probe          ConnectivityProbe
	SyncService    ClientSyncService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	devices := NewDeviceIdentityService(storages.KeyValue, logger)
	identity := NewIdentityProvider(serverAdapter, logger)
	probe := NewConnectivityProbe(serverAdapter, cfg.Adapter.ProbeTimeout, logger)

	syncSvc := NewClientSyncService(SyncDeps{
		State:    storages.State,
		Adapter:  serverAdapter,
		Devices:  devices,
		Identity: identity,
		Probe:    probe,
	}, cfg.Adapter.IsConfigured(), func(engine ClientSyncService) ClientSyncJob {
		return NewClientSyncJob(engine, probe, cfg.Workers, logger)
	}, logger)

	return &ClientServices{
		AuthService:    NewClientAuthService(storages.KeyValue, serverAdapter, logger),
		DeviceIdentity: devices,
		Identity:       identity,
		Probe:          probe,
		SyncService:    syncSvc,
	}
}

package config

import (
	"fmt"
	"time"
)

// Client-side defaults applied by [ClientConfig.applyDefaults].
const (
	DefaultSyncInterval             = 5 * time.Minute
	DefaultConnectivityPollInterval = 30 * time.Second
	DefaultRequestTimeout           = 15 * time.Second
	DefaultProbeTimeout             = 3 * time.Second
	DefaultLocalDSN                 = "shelfsync.db"
	DefaultClientLogFile            = "shelfsync.log"
	DefaultLogMaxSizeMB             = 10
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the snapshot server.
	HTTPAddress string
	// APIKey is attached to every request as X-API-Key.
	APIKey string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// ProbeTimeout bounds a connectivity probe.
	ProbeTimeout time.Duration
}

// IsConfigured reports whether remote credentials are present. When it
// returns false the sync engine runs in permanent no-op mode.
func (a ClientAdapter) IsConfigured() bool {
	return a.HTTPAddress != "" && a.APIKey != ""
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DSN is the SQLite file path of the local state store.
	DSN string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the unconditional push runs.
	SyncInterval time.Duration
	// ConnectivityPollInterval defines how often connectivity is polled.
	ConnectivityPollInterval time.Duration
}

// ClientLog contains client log file settings.
type ClientLog struct {
	File      string
	MaxSizeMB int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the remote snapshot server address and credentials.
	Adapter ClientAdapter
	// Storage contains local storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Log contains log file settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps the fields of cfg relevant to the client runtime,
// fills defaults, and validates the result.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			APIKey:         cfg.Adapter.APIKey,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			ProbeTimeout:   cfg.Adapter.ProbeTimeout,
		},
		Storage: ClientStorage{DSN: cfg.Storage.Local.DSN},
		Workers: ClientWorkers{
			SyncInterval:             cfg.Workers.SyncInterval,
			ConnectivityPollInterval: cfg.Workers.ConnectivityPollInterval,
		},
		Log: ClientLog{File: cfg.Log.File, MaxSizeMB: cfg.Log.MaxSizeMB},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.ProbeTimeout == 0 {
		cfg.Adapter.ProbeTimeout = DefaultProbeTimeout
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = DefaultLocalDSN
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Workers.ConnectivityPollInterval == 0 {
		cfg.Workers.ConnectivityPollInterval = DefaultConnectivityPollInterval
	}
	if cfg.Log.File == "" {
		cfg.Log.File = DefaultClientLogFile
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = DefaultLogMaxSizeMB
	}
}

package config

import (
	"fmt"
	"time"
)

// Server-side defaults applied by [ServerConfig.applyDefaults].
const (
	DefaultTokenDuration = 24 * time.Hour
	DefaultTokenIssuer   = "shelfsync"
)

// ServerApp holds the server's token and API key settings.
type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	APIKey        string
}

// ServerConfig is the snapshot server configuration view.
type ServerConfig struct {
	App     ServerApp
	DB      DB
	Server  Server
}

// GetServerConfig builds and validates the server config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewServerConfig(cfg)
}

// NewServerConfig maps cfg to a [ServerConfig], fills defaults, and validates it.
func NewServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			APIKey:        cfg.App.APIKey,
		},
		DB:     cfg.Storage.DB,
		Server: cfg.Server,
	}
	serverCfg.applyDefaults()

	return serverCfg, serverCfg.validate()
}

func (cfg *ServerConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
}

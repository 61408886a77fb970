package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructuredServerConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "sign", APIKey: "key"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
}

func TestNewServerConfig_Defaults(t *testing.T) {
	cfg, err := NewServerConfig(validStructuredServerConfig())
	require.NoError(t, err)

	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/db", cfg.DB.DSN)
}

func TestNewServerConfig_KeepsExplicitValues(t *testing.T) {
	s := validStructuredServerConfig()
	s.App.TokenIssuer = "custom"
	s.App.TokenDuration = time.Hour

	cfg, err := NewServerConfig(s)
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
}

func TestNewServerConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "no sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no api key", mutate: func(c *StructuredConfig) { c.App.APIKey = "" }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validStructuredServerConfig()
			tt.mutate(s)

			_, err := NewServerConfig(s)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

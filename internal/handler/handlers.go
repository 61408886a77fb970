package handler

import (
	"github.com/MKhiriev/shelfsync/internal/config"
	"github.com/MKhiriev/shelfsync/internal/handler/http"
	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if cfg.App.APIKey == "" {
		return nil, errNoAPIKey
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg.App.APIKey, logger)}, nil
}

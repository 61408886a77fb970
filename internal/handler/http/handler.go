package http

import (
	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/service"
	"github.com/MKhiriev/shelfsync/internal/utils"
)

type Handler struct {
	services *service.Services
	apiKey   string
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, apiKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		apiKey:   apiKey,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

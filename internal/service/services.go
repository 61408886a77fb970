package service

import (
	"github.com/MKhiriev/shelfsync/internal/config"
	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/store"
)

type Services struct {
	AuthService     AuthService
	SnapshotService SnapshotService
}

func NewServices(repositories *store.Repositories, cfg config.ServerApp, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, cfg, logger),
		SnapshotService: NewSnapshotValidationService().
			Wrap(NewSnapshotService(repositories.SnapshotRepository, logger)),
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/shelfsync/internal/adapter"
	"github.com/MKhiriev/shelfsync/internal/client"
	"github.com/MKhiriev/shelfsync/internal/config"
	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/service"
	"github.com/MKhiriev/shelfsync/internal/store"
	"github.com/MKhiriev/shelfsync/internal/tui"
	"github.com/MKhiriev/shelfsync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("shelfsync-client", "", 0).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("shelfsync-client", cfg.Log.File, cfg.Log.MaxSizeMB)
	if err = run(cfg, log); err != nil {
		log.Error().Err(err).Msg("client run error")
		os.Exit(1)
	}
}

func run(cfg *config.ClientConfig, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return err
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return err
	}
	defer storages.Close()

	services := service.NewClientServices(storages, serverAdapter, *cfg, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(services, storages.State, buildInfo, log)

	app, err := client.NewApp(services, ui, cfg.Adapter.IsConfigured(), log)
	if err != nil {
		return err
	}

	log.Info().Str("version", buildInfo.BuildVersion()).Msg("client started")
	return app.Run(ctx)
}

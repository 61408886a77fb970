package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/service"
	"github.com/MKhiriev/shelfsync/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       UI
	online   bool
	logger   *logger.Logger
}

// NewApp builds the client runtime. With online false no sign-in is asked
// for and the client works purely on local state.
func NewApp(services *service.ClientServices, ui UI, online bool, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{
		services: services,
		ui:       ui,
		online:   online,
		logger:   logger,
	}, nil
}

// Run signs in, starts sync and shows the main screen until the user quits.
// A logout clears the session and starts over from sign-in.
func (a *App) Run(ctx context.Context) error {
	for {
		if a.online {
			if err := a.signIn(ctx); err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return err
			}
		}

		a.services.SyncService.Initialize(ctx)
		logout, err := a.ui.MainLoop(ctx)
		a.services.SyncService.StopSync()
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.logger.Info().Msg("signed out")

		if !a.online {
			return nil
		}
	}
}

func (a *App) signIn(ctx context.Context) error {
	err := a.services.AuthService.RestoreSession(ctx)
	switch {
	case err == nil:
		a.logger.Info().Msg("session restored")
		return nil
	case errors.Is(err, service.ErrNoSavedSession), errors.Is(err, service.ErrTokenIsExpired):
		a.logger.Info().Err(err).Msg("sign-in required")
		return a.ui.LoginFlow(ctx)
	default:
		return fmt.Errorf("restore session: %w", err)
	}
}

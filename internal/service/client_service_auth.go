package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/shelfsync/internal/adapter"
	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/store"
	"github.com/MKhiriev/shelfsync/internal/utils"
	"github.com/MKhiriev/shelfsync/models"
)

type clientAuthService struct {
	keyValue store.KeyValueRepository
	adapter  adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientAuthService(keyValue store.KeyValueRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{keyValue: keyValue, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) error {
	if _, err := a.adapter.Register(ctx, user); err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.saveSession(ctx)
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) error {
	if _, err := a.adapter.Login(ctx, user); err != nil {
		return fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.saveSession(ctx)
}

// saveSession persists the adapter's current token. A failure here leaves the
// in-memory session usable; only the next restart will ask for a login again.
func (a *clientAuthService) saveSession(ctx context.Context) error {
	if err := a.keyValue.Set(ctx, store.KeySessionToken, a.adapter.Token()); err != nil {
		a.logger.Err(err).Msg("session token was not saved")
		return fmt.Errorf("save session token: %w", err)
	}
	return nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) error {
	token, found, err := a.keyValue.Get(ctx, store.KeySessionToken)
	if err != nil {
		return fmt.Errorf("load session token: %w", err)
	}
	if !found || token == "" {
		return ErrNoSavedSession
	}

	if _, err = utils.SubjectFromUnverifiedJWT(token); err != nil {
		a.logger.Info().Err(err).Msg("saved session is not usable")
		if errors.Is(err, utils.ErrTokenExpired) {
			return ErrTokenIsExpired
		}
		return ErrNoSavedSession
	}

	a.adapter.SetToken(token)
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	if err := a.keyValue.Set(ctx, store.KeySessionToken, ""); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/shelfsync/internal/adapter"
	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/store"
	"github.com/MKhiriev/shelfsync/internal/utils"
)

// deviceIDRandomLength is the number of random characters after the
// timestamp in a generated device id.
const deviceIDRandomLength = 9

type deviceIdentityService struct {
	keyValue store.KeyValueRepository
	ids      *utils.UUIDGenerator
	now      func() time.Time

	logger *logger.Logger
}

// NewDeviceIdentityService builds a DeviceIdentityService persisting the id
// under store.KeyDeviceID.
func NewDeviceIdentityService(keyValue store.KeyValueRepository, logger *logger.Logger) DeviceIdentityService {
	return &deviceIdentityService{
		keyValue: keyValue,
		ids:      utils.NewUUIDGenerator(),
		now:      time.Now,
		logger:   logger,
	}
}

// Resolve implements DeviceIdentityService. Generated ids look like
// "device-1718000000000-3f9a0c1b2"; the fallback is "device-1718000000000".
func (d *deviceIdentityService) Resolve(ctx context.Context) string {
	id, err := d.resolve(ctx)
	if err != nil {
		fallback := fmt.Sprintf("device-%d", d.now().UnixMilli())
		d.logger.Err(err).Str("device_id", fallback).Msg("device id resolution failed, using fallback")
		return fallback
	}
	return id
}

func (d *deviceIdentityService) resolve(ctx context.Context) (string, error) {
	id, found, err := d.keyValue.Get(ctx, store.KeyDeviceID)
	if err != nil {
		return "", fmt.Errorf("read device id: %w", err)
	}
	if found && id != "" {
		return id, nil
	}

	random, err := d.ids.Short(deviceIDRandomLength)
	if err != nil {
		return "", fmt.Errorf("generate device id: %w", err)
	}

	id = fmt.Sprintf("device-%d-%s", d.now().UnixMilli(), random)
	if err = d.keyValue.Set(ctx, store.KeyDeviceID, id); err != nil {
		return "", fmt.Errorf("persist device id: %w", err)
	}

	d.logger.Info().Str("device_id", id).Msg("new device id created")
	return id, nil
}

type identityProvider struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

// NewIdentityProvider builds an IdentityProvider reading the session token
// held by serverAdapter.
func NewIdentityProvider(serverAdapter adapter.ServerAdapter, logger *logger.Logger) IdentityProvider {
	return &identityProvider{adapter: serverAdapter, logger: logger}
}

// CurrentUserID implements IdentityProvider. The token's signature is not
// checked here; the server does that on every request.
func (p *identityProvider) CurrentUserID(ctx context.Context) (string, bool) {
	token := p.adapter.Token()
	if token == "" {
		return "", false
	}

	userID, err := utils.SubjectFromUnverifiedJWT(token)
	if err != nil {
		p.logger.Debug().Err(err).Msg("session token is not usable")
		return "", false
	}
	return userID, true
}

type connectivityProbe struct {
	adapter adapter.ServerAdapter
	timeout time.Duration

	logger *logger.Logger
}

// NewConnectivityProbe builds a ConnectivityProbe pinging the server through
// serverAdapter. A non-positive timeout leaves the caller's deadline alone.
func NewConnectivityProbe(serverAdapter adapter.ServerAdapter, timeout time.Duration, logger *logger.Logger) ConnectivityProbe {
	return &connectivityProbe{adapter: serverAdapter, timeout: timeout, logger: logger}
}

// IsOnline implements ConnectivityProbe.
func (p *connectivityProbe) IsOnline(ctx context.Context) (online bool) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().Any("panic", r).Msg("connectivity probe panicked")
			online = false
		}
	}()

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.adapter.Ping(ctx); err != nil {
		p.logger.Debug().Err(err).Msg("server is not reachable")
		return false
	}
	return true
}

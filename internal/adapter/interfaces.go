// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the snapshot server protocol.
//
// [ServerAdapter] decouples the service layer from the transport. The package
// ships an HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty.
// HTTP status codes are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is] (e.g. [ErrNotFound] for a user that has never
// pushed a snapshot).
package adapter

import (
	"context"

	"github.com/MKhiriev/shelfsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of the snapshot server. Every request
// carries the configured API key; snapshot requests also carry the bearer
// token set by Register, Login or SetToken.
type ServerAdapter interface {
	// SetToken stores the bearer token for subsequent authenticated requests.
	SetToken(token string)

	// Token returns the current bearer token or "".
	Token() string

	// Register creates an account and stores the returned bearer token.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates and stores the returned bearer token.
	Login(ctx context.Context, user models.User) (models.User, error)

	// Ping checks that the server answers. It is the connectivity probe.
	Ping(ctx context.Context) error

	// FetchSnapshot returns the user's remote record. A user that has never
	// pushed yields an error matching [ErrNotFound]. Any other 404 matches
	// [ErrEndpointNotFound] instead.
	FetchSnapshot(ctx context.Context, userID string) (models.Snapshot, error)

	// UpsertSnapshot overwrites the user's remote record.
	UpsertSnapshot(ctx context.Context, userID string, snapshot models.Snapshot) error
}

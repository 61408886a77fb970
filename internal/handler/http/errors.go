// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middlewares when reading
// request headers. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when a protected request has
	// no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of
	// the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidAPIKey is returned when X-API-Key is missing or wrong.
	ErrInvalidAPIKey = errors.New("invalid `X-API-Key` header")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// snapshot server handlers and the client's error mapping.
//
// All Msg* constants are human-readable message strings written into the
// "error" field of JSON error bodies. Keeping them in one place lets the
// client recognise a specific failure behind a generic status code.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgInvalidAPIKey is returned when the X-API-Key header is missing or
	// does not match the server's key.
	MsgInvalidAPIKey = "invalid api key"

	// MsgNoUserIDProvided is returned when the path user id is missing or
	// not a number.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the authenticated user addresses the
	// snapshot of a different user.
	MsgAccessDenied = "access denied"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgSnapshotNotFound is returned when the user has never pushed.
	MsgSnapshotNotFound = "snapshot not found"
)

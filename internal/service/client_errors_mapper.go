// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/MKhiriev/shelfsync/internal/adapter"
	"github.com/MKhiriev/shelfsync/internal/app"
	"github.com/MKhiriev/shelfsync/internal/store"
	"github.com/MKhiriev/shelfsync/models"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractMessage(err)

	switch {
	case errors.Is(err, adapter.ErrNotConfigured):
		return ErrServerOffline

	case errors.Is(err, adapter.ErrBadRequest):
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		return ErrUnauthorizedAccessToDifferentUserData

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrSnapshotNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgLoginAlreadyExists {
			return store.ErrLoginAlreadyExists
		}
	}

	return err
}

// extractMessage pulls the "error" field out of a message of the form
// `bad request: {"error":"<message>"}`, falling back to the raw body.
func extractMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		msg = msg[idx+2:]
	}

	var body models.ErrorResponse
	if json.Unmarshal([]byte(msg), &body) == nil && body.Error != "" {
		return body.Error
	}
	return msg
}

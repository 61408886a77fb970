// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
	// is configured. This is treated as a fatal misconfiguration.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoAPIKey is returned by NewHandlers when the server has no API key;
	// every request would be rejected.
	errNoAPIKey = errors.New("api key is not configured")
)

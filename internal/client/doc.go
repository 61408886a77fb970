// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the client services and the snapshot sync
// engine into a single process lifecycle: restore or create a session, start
// sync, run the main screen, stop sync.
package client

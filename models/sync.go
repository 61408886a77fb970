// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncStatus is a point-in-time view of the sync engine, suitable for a
// settings screen.
type SyncStatus struct {
	// LastSyncTimestamp is the epoch-millisecond time of the last successful
	// push or of the restored snapshot after a pull. Zero means never.
	LastSyncTimestamp int64 `json:"lastSyncTimestamp"`

	// Version is the current local mutation counter.
	Version int64 `json:"version"`

	// IsSyncing reports whether a push is in flight.
	IsSyncing bool `json:"isSyncing"`

	// IsConfigured reports whether remote credentials are present.
	IsConfigured bool `json:"isConfigured"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field names accepted by the snapshot validator to restrict validation to a
// subset of rules.
const (
	// FieldDeviceID targets the id of the device that produced the snapshot.
	FieldDeviceID = "device_id"

	// FieldVersion targets the mutation counter of the snapshot.
	FieldVersion = "version"

	// FieldTimestamp targets the epoch-millisecond creation time.
	FieldTimestamp = "timestamp"

	// FieldChallenge targets the optional reading challenge inside the data.
	FieldChallenge = "challenge"
)

var snapshotFields = []string{FieldVersion, FieldDeviceID, FieldTimestamp, FieldChallenge}

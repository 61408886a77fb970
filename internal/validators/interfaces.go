// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks snapshots received by the server before they are
// stored.
//
// A Validator accepts a value and an optional list of field names. With no
// fields every rule for the value's type is applied; with fields only the
// named rules run, in the given order, and the first failure is returned.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request structs before they reach the account
// and catalog services.
//
// A [Validator] accepts any supported request type and an optional list of
// field names. Without field names every field of the request is checked;
// with them only the named ones are. The first violated rule is returned as
// one of the Err* sentinels of this package.
package validators

import "context"

// Validator validates arbitrary request values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of leave-request input before it
// reaches the store.
//
// Rules are declared as go-playground/validator struct tags on the request
// models; failures are reported as a [ValidationError] whose field names match
// the JSON wire names.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts the reported errors to specific JSON field names.
	Validate(context.Context, any, ...string) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the store.
//
// Core concepts:
//   - Rule: a single check over an optional string value (required,
//     minLength, email, oneOf, datetime, ...).
//   - Schema: the ordered rules for every field of one request shape.
//   - Validator: dispatches a request value to its schema.
//
// Violations are reported as Errors, a list of {field, constraint} pairs
// that matches ErrValidationFailed with errors.Is.
package validators

import "context"

// Validator defines a generic validation interface for request values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

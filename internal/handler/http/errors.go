// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrMissingToken is returned by the auth middleware when the request
	// carries no usable bearer token: the header is absent, uses another
	// scheme or holds an empty token. It maps to 401.
	ErrMissingToken = errors.New("missing bearer token")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidTaskID is returned for a task id path segment that is not a
	// positive integer. It is always wrapped together with
	// store.ErrTaskNotFound so the client sees a missing task.
	ErrInvalidTaskID = errors.New("invalid task id")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading request input. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body is not the expected JSON
	// document.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrIdempotencyKeyReused is returned when an Idempotency-Key arrives
	// again with a different request body.
	ErrIdempotencyKeyReused = errors.New("idempotency key reused with a different request")
)

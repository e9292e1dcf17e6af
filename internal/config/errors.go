// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by the validate methods.
var (
	// ErrInvalidAppConfigs is returned when a required App setting is missing
	// or out of range (e.g. no token sign key, negative allowance).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidStorageConfigs is returned when the database DSN is unusable.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs is returned when no transport can be started.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidAdapterConfigs is returned when the client cannot reach a server.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidWorkerConfigs is returned for a non-positive refresh interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

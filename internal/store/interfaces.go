// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-leave-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LeaveRepository performs the single-statement operations on the leaves
// table. No method opens a transaction or retries.
type LeaveRepository interface {
	// ListLeaves returns every record in store order.
	ListLeaves(ctx context.Context) ([]models.LeaveRequest, error)

	// ListLeavesByName returns the records whose name equals name.
	ListLeavesByName(ctx context.Context, name string) ([]models.LeaveRequest, error)

	// CreateLeave inserts leave and returns it with the store-assigned ID and
	// creation time.
	CreateLeave(ctx context.Context, leave models.LeaveRequest) (models.LeaveRequest, error)

	// DeleteLeave removes the record with id and returns it. It fails with
	// [ErrLeaveNotFound] when nothing matched.
	DeleteLeave(ctx context.Context, id int64) (models.LeaveRequest, error)
}

// IdempotencyStore remembers the first response produced for an
// Idempotency-Key so repeated requests can be answered without re-executing.
type IdempotencyStore interface {
	// Get returns the stored response for key and whether one exists.
	Get(ctx context.Context, key string) (StoredResponse, bool, error)

	// Save stores resp for key unless a response is already stored.
	Save(ctx context.Context, key string, resp StoredResponse) error

	Close() error
}

// ErrorClassificator decides whether a driver error is transient. The result
// is only attached to log records.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

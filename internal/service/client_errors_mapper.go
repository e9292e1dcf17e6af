// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-leave-tracker/internal/adapter"
	"github.com/MKhiriev/go-leave-tracker/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Validation errors pass through untouched so the page can
// read their field messages.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrInvalidDataProvided):
		return err
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", store.ErrLeaveNotFound, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	return err
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// leave tracker handlers, middleware and terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, rendered on the leave page or attached to log entries.
// Keeping them in one place ensures consistent wording on every surface.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails field validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgLeaveNotFound is returned when a delete names an ID that matches no
	// record.
	MsgLeaveNotFound = "leave not found"

	// MsgSignInRequired is returned by endpoints reserved for signed-in users.
	MsgSignInRequired = "sign in required"

	// MsgTokenIsExpiredOrInvalid is logged when a session token is either
	// expired or cannot be verified. The caller is treated as signed out.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgIdempotencyKeyReused is returned when an Idempotency-Key is sent
	// again with a different request body.
	MsgIdempotencyKeyReused = "idempotency key reused with a different request"

	// MsgMethodNotAllowed is returned when a route exists but not for the
	// request method.
	MsgMethodNotAllowed = "method not allowed"
)

// Leave page texts shared by the web page and the terminal page.
const (
	// MsgFailedToDeleteLeave is shown when a delete fails without field errors.
	MsgFailedToDeleteLeave = "Failed to delete leave! Please try again later."

	// MsgLoadingLeaves is shown while the list request is in flight.
	MsgLoadingLeaves = "Loading leaves..."

	// MsgLoggedInAs prefixes the signed-in display name.
	MsgLoggedInAs = "Logged in as "
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the leave tracker server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Non-2xx responses are mapped by mapHTTPError so callers can use [errors.Is]
// and [errors.As] for transport-agnostic handling: a 400 carrying field errors
// becomes a *validators.ValidationError, 404 becomes [ErrNotFound] and 401
// becomes [ErrUnauthorized].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-leave-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the leave
// tracker server. Every method issues exactly one request; nothing is retried.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	// An empty token signs the adapter out.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set.
	Token() string

	// ListLeaves fetches every leave record in store order.
	ListLeaves(ctx context.Context) ([]models.LeaveRequest, error)

	// CreateLeave submits req. A non-empty idempotencyKey is sent in the
	// Idempotency-Key header so a repeated request cannot insert twice.
	CreateLeave(ctx context.Context, req models.CreateLeaveRequest, idempotencyKey string) (models.LeaveRequest, error)

	// DeleteLeave removes the record with id and returns it.
	DeleteLeave(ctx context.Context, id int64) (models.LeaveRequest, error)

	// LeaveBalance fetches the computed balance of name.
	LeaveBalance(ctx context.Context, name string) (models.LeaveBalance, error)

	// SignIn asks the identity provider for a session and stores its token
	// via SetToken.
	SignIn(ctx context.Context, name string) (models.Session, error)

	// SignOut tells the server to clear the session and drops the local token.
	SignOut(ctx context.Context) error

	// Session returns the session the server sees for the current token.
	Session(ctx context.Context) (models.Session, error)

	// SecretMessage returns the provider's secret message. It fails with
	// [ErrUnauthorized] when signed out.
	SecretMessage(ctx context.Context) (string, error)

	// Hello returns the server greeting for text.
	Hello(ctx context.Context, text string) (string, error)

	// Version returns the server application version.
	Version(ctx context.Context) (string, error)
}

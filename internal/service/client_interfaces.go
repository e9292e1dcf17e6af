package service

import (
	"context"

	"github.com/MKhiriev/go-leave-tracker/models"
)

// LeaveListService is the terminal client's local copy of the leave list.
//
// It follows a patch-then-refetch contract: a mutation that completes
// successfully patches the local copy first and then issues a refetch. A
// refetch result is applied only if no mutation completed after that refetch
// began. Failed mutations never touch the local copy.
type LeaveListService interface {
	// Snapshot returns a copy of the current list and its loading state.
	Snapshot() LeaveListSnapshot

	// Refresh refetches the list from the server.
	Refresh(ctx context.Context) error

	// Create submits req with a fresh idempotency key and, on success,
	// appends the created record before refetching.
	Create(ctx context.Context, req models.CreateLeaveRequest) (models.LeaveRequest, error)

	// Delete removes the record with id and, on success, drops it from the
	// local copy before refetching.
	Delete(ctx context.Context, id int64) (models.LeaveRequest, error)
}

// ClientAuthService holds the terminal client's session. The session value is
// kept here and handed to the page explicitly.
type ClientAuthService interface {
	// SignIn signs in as name and stores the returned session.
	SignIn(ctx context.Context, name string) (models.Session, error)

	// SignOut clears the session locally and on the server. The local session
	// is cleared even when the server call fails.
	SignOut(ctx context.Context) error

	// Session returns the current session. The zero value means signed out.
	Session() models.Session

	// SecretMessage fetches the secret message for the signed-in user.
	SecretMessage(ctx context.Context) (string, error)
}

// ClientInfoService fetches the side-panel data of the leave page.
type ClientInfoService interface {
	Balance(ctx context.Context, name string) (models.LeaveBalance, error)
	Greeting(ctx context.Context, text string) (string, error)
	Version(ctx context.Context) (string, error)
}

// KeyGenerator produces idempotency keys.
type KeyGenerator interface {
	Generate() string
}

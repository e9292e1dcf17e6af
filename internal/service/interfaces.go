package service

import (
	"context"

	"github.com/MKhiriev/go-leave-tracker/models"
)

// LeaveService exposes the three leave operations plus the computed balance.
// Every operation issues exactly one repository call.
type LeaveService interface {
	// ListLeaves returns all records in store order. Store errors propagate
	// wrapped with %w.
	ListLeaves(ctx context.Context) ([]models.LeaveRequest, error)

	// CreateLeave inserts one record and returns it with its new ID.
	CreateLeave(ctx context.Context, req models.CreateLeaveRequest) (models.LeaveRequest, error)

	// DeleteLeave removes the record with req.ID and returns it. A missing
	// record fails with store.ErrLeaveNotFound.
	DeleteLeave(ctx context.Context, req models.DeleteLeaveRequest) (models.LeaveRequest, error)

	// LeaveBalance computes the remaining yearly allowance of name.
	LeaveBalance(ctx context.Context, name string) (models.LeaveBalance, error)
}

// AuthService is the stock identity provider behind the sign-in toggle.
type AuthService interface {
	// SignIn issues a signed session for name.
	SignIn(ctx context.Context, name string) (models.Session, error)

	// ParseSession validates token and returns the session it carries.
	ParseSession(ctx context.Context, token string) (models.Session, error)

	// SecretMessage returns the provider's secret message to signed-in
	// sessions and ErrUnauthorized to everyone else.
	SecretMessage(ctx context.Context, session models.Session) (string, error)

	// Greeting returns "Hello <text>".
	Greeting(ctx context.Context, text string) string
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// LeaveServiceWrapper defines middleware composition for LeaveService.
// Implementations wrap an existing LeaveService to add behavior such as
// validation.
type LeaveServiceWrapper interface {
	Wrap(LeaveService) LeaveService
}

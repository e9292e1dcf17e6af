package http

import (
	"context"

	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/service"
	"github.com/MKhiriev/go-leave-tracker/internal/store"
	"github.com/MKhiriev/go-leave-tracker/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

// mockLeaveService implements service.LeaveService with overridable funcs.
// A nil func returns zero values.
type mockLeaveService struct {
	listFn    func(ctx context.Context) ([]models.LeaveRequest, error)
	createFn  func(ctx context.Context, req models.CreateLeaveRequest) (models.LeaveRequest, error)
	deleteFn  func(ctx context.Context, req models.DeleteLeaveRequest) (models.LeaveRequest, error)
	balanceFn func(ctx context.Context, name string) (models.LeaveBalance, error)

	createCalls int
}

func (m *mockLeaveService) ListLeaves(ctx context.Context) ([]models.LeaveRequest, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx)
}

func (m *mockLeaveService) CreateLeave(ctx context.Context, req models.CreateLeaveRequest) (models.LeaveRequest, error) {
	m.createCalls++
	if m.createFn == nil {
		return models.LeaveRequest{}, nil
	}
	return m.createFn(ctx, req)
}

func (m *mockLeaveService) DeleteLeave(ctx context.Context, req models.DeleteLeaveRequest) (models.LeaveRequest, error) {
	if m.deleteFn == nil {
		return models.LeaveRequest{}, nil
	}
	return m.deleteFn(ctx, req)
}

func (m *mockLeaveService) LeaveBalance(ctx context.Context, name string) (models.LeaveBalance, error) {
	if m.balanceFn == nil {
		return models.LeaveBalance{}, nil
	}
	return m.balanceFn(ctx, name)
}

// mockAuthService implements service.AuthService. Tokens of the form
// "valid-<name>" parse into a signed-in session for <name>.
type mockAuthService struct {
	secret string
}

func (m *mockAuthService) SignIn(_ context.Context, name string) (models.Session, error) {
	if name == "" {
		return models.Session{}, service.ErrInvalidDataProvided
	}
	return models.Session{SignedIn: true, Name: name, Token: "valid-" + name}, nil
}

func (m *mockAuthService) ParseSession(_ context.Context, token string) (models.Session, error) {
	if len(token) > len("valid-") && token[:len("valid-")] == "valid-" {
		return models.Session{SignedIn: true, Name: token[len("valid-"):], Token: token}, nil
	}
	return models.Session{}, service.ErrTokenIsExpiredOrInvalid
}

func (m *mockAuthService) SecretMessage(_ context.Context, session models.Session) (string, error) {
	if !session.SignedIn {
		return "", service.ErrUnauthorized
	}
	return m.secret, nil
}

func (m *mockAuthService) Greeting(_ context.Context, text string) string {
	return "Hello " + text
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// newTestHandler builds a Handler over the given leave service with stock
// auth and app info mocks.
func newTestHandler(leaves *mockLeaveService, idempotency store.IdempotencyStore) *Handler {
	if leaves == nil {
		leaves = &mockLeaveService{}
	}
	return NewHandler(&service.Services{
		LeaveService:   leaves,
		AuthService:    &mockAuthService{secret: "psst"},
		AppInfoService: &mockAppInfoService{version: "1.0.0"},
	}, idempotency, logger.Nop())
}

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-leave-tracker/internal/config"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/utils"
	"github.com/MKhiriev/go-leave-tracker/models"
	"github.com/go-resty/resty/v2"
)

// IdempotencyKeyHeader carries the client-chosen key of a create request.
const IdempotencyKeyHeader = "Idempotency-Key"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ListLeaves implements [ServerAdapter]. GET /api/leaves.
func (h *httpServerAdapter) ListLeaves(ctx context.Context) ([]models.LeaveRequest, error) {
	var leaves []models.LeaveRequest

	resp, err := h.request(ctx).
		SetResult(&leaves).
		Get("/api/leaves")
	if err != nil {
		return nil, fmt.Errorf("list leaves request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if leaves == nil {
		leaves = []models.LeaveRequest{}
	}
	return leaves, nil
}

// CreateLeave implements [ServerAdapter]. POST /api/leaves.
func (h *httpServerAdapter) CreateLeave(ctx context.Context, req models.CreateLeaveRequest, idempotencyKey string) (models.LeaveRequest, error) {
	var created models.LeaveRequest

	r := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created)
	if idempotencyKey != "" {
		r.SetHeader(IdempotencyKeyHeader, idempotencyKey)
	}

	resp, err := r.Post("/api/leaves")
	if err != nil {
		return models.LeaveRequest{}, fmt.Errorf("create leave request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LeaveRequest{}, err
	}

	return created, nil
}

// DeleteLeave implements [ServerAdapter]. DELETE /api/leaves/{id}.
func (h *httpServerAdapter) DeleteLeave(ctx context.Context, id int64) (models.LeaveRequest, error) {
	var deleted models.LeaveRequest

	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&deleted).
		Delete("/api/leaves/{id}")
	if err != nil {
		return models.LeaveRequest{}, fmt.Errorf("delete leave request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LeaveRequest{}, err
	}

	return deleted, nil
}

// LeaveBalance implements [ServerAdapter]. GET /api/leaves/balance?name=.
func (h *httpServerAdapter) LeaveBalance(ctx context.Context, name string) (models.LeaveBalance, error) {
	var balance models.LeaveBalance

	resp, err := h.request(ctx).
		SetQueryParam("name", name).
		SetResult(&balance).
		Get("/api/leaves/balance")
	if err != nil {
		return models.LeaveBalance{}, fmt.Errorf("leave balance request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LeaveBalance{}, err
	}

	return balance, nil
}

// SignIn implements [ServerAdapter]. POST /api/auth/signin. The bearer token
// is taken from the Authorization response header.
func (h *httpServerAdapter) SignIn(ctx context.Context, name string) (models.Session, error) {
	var session models.Session

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SignInRequest{Name: name}).
		SetResult(&session).
		Post("/api/auth/signin")
	if err != nil {
		return models.Session{}, fmt.Errorf("sign in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("sign in parse bearer token: %w", err)
	}

	h.SetToken(token)
	return session, nil
}

// SignOut implements [ServerAdapter]. POST /api/auth/signout. The local token
// is dropped even when the request fails.
func (h *httpServerAdapter) SignOut(ctx context.Context) error {
	resp, err := h.request(ctx).Post("/api/auth/signout")
	h.SetToken("")
	if err != nil {
		return fmt.Errorf("sign out request: %w", err)
	}

	return mapHTTPError(resp)
}

// Session implements [ServerAdapter]. GET /api/auth/session.
func (h *httpServerAdapter) Session(ctx context.Context) (models.Session, error) {
	var session models.Session

	resp, err := h.request(ctx).
		SetResult(&session).
		Get("/api/auth/session")
	if err != nil {
		return models.Session{}, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	return session, nil
}

// SecretMessage implements [ServerAdapter]. GET /api/auth/secret.
func (h *httpServerAdapter) SecretMessage(ctx context.Context) (string, error) {
	var secret models.SecretMessageResponse

	resp, err := h.request(ctx).
		SetResult(&secret).
		Get("/api/auth/secret")
	if err != nil {
		return "", fmt.Errorf("secret message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return secret.Message, nil
}

// Hello implements [ServerAdapter]. GET /api/hello?text=.
func (h *httpServerAdapter) Hello(ctx context.Context, text string) (string, error) {
	var greeting models.GreetingResponse

	resp, err := h.request(ctx).
		SetQueryParam("text", text).
		SetResult(&greeting).
		Get("/api/hello")
	if err != nil {
		return "", fmt.Errorf("hello request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return greeting.Greeting, nil
}

// Version implements [ServerAdapter]. GET /api/version answers with plain text.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("http %d: unexpected version response", resp.StatusCode())
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

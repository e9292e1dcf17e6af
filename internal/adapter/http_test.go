// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-leave-tracker/internal/config"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/validators"
	"github.com/MKhiriev/go-leave-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func aliceLeave() models.LeaveRequest {
	return models.LeaveRequest{
		ID:        1,
		Name:      "Alice",
		StartDate: models.NewDate(2024, time.January, 10),
		EndDate:   models.NewDate(2024, time.January, 12),
		Reason:    "Travel",
	}
}

// ── NewHTTPServerAdapter ────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	got, err = normalizeBaseURL(" https://leaves.example.com ")
	require.NoError(t, err)
	assert.Equal(t, "https://leaves.example.com", got)
}

// ── Leaves ──────────────────────────────────────────────────────────────────

func TestListLeaves_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/leaves", r.URL.Path)
		writeJSON(t, w, http.StatusOK, []models.LeaveRequest{aliceLeave()})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListLeaves(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].Name)
	assert.Equal(t, "10-01-2024", got[0].StartDate.Display())
}

func TestListLeaves_EmptyBodyIsEmptySlice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.LeaveRequest{})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListLeaves(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListLeaves_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    models.CodeInternalServerError,
			Message: "connection refused",
		})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListLeaves(context.Background())

	require.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestCreateLeave_SendsBodyAndIdempotencyKey(t *testing.T) {
	req := models.CreateLeaveRequest{Name: "Alice", StartDate: "2024-01-10", EndDate: "2024-01-12", Reason: "Travel"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/leaves", r.URL.Path)
		assert.Equal(t, "key-1", r.Header.Get(IdempotencyKeyHeader))

		var got models.CreateLeaveRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, req, got)

		writeJSON(t, w, http.StatusCreated, aliceLeave())
	}))
	defer srv.Close()

	created, err := newTestAdapter(t, srv.URL).CreateLeave(context.Background(), req, "key-1")

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestCreateLeave_ValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{
			Code:        models.CodeBadRequest,
			Message:     "invalid data provided",
			FieldErrors: map[string][]string{"name": {"Required"}},
		})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateLeave(context.Background(), models.CreateLeaveRequest{}, "")

	var vErr *validators.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []string{"Required"}, vErr.FieldErrors["name"])
	assert.ErrorIs(t, err, validators.ErrInvalidDataProvided)
}

func TestCreateLeave_BadRequestWithoutFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("malformed json"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateLeave(context.Background(), models.CreateLeaveRequest{}, "")

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "malformed json")
}

func TestDeleteLeave_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/leaves/1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, aliceLeave())
	}))
	defer srv.Close()

	deleted, err := newTestAdapter(t, srv.URL).DeleteLeave(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Alice", deleted.Name)
}

func TestDeleteLeave_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Code: models.CodeNotFound, Message: "leave not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).DeleteLeave(context.Background(), 42)

	require.ErrorIs(t, err, ErrNotFound)
	var vErr *validators.ValidationError
	assert.False(t, errors.As(err, &vErr))
}

func TestLeaveBalance_SendsName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/leaves/balance", r.URL.Path)
		assert.Equal(t, "Alice Smith", r.URL.Query().Get("name"))
		writeJSON(t, w, http.StatusOK, models.LeaveBalance{Name: "Alice Smith", Allowance: 14, Used: 3, Remaining: 11})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).LeaveBalance(context.Background(), "Alice Smith")

	require.NoError(t, err)
	assert.Equal(t, 11, got.Remaining)
}

// ── Auth ────────────────────────────────────────────────────────────────────

func TestSignIn_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/signin", r.URL.Path)
		w.Header().Set("Authorization", "Bearer signed.jwt.token")
		writeJSON(t, w, http.StatusOK, models.Session{SignedIn: true, Name: "Alice"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	session, err := a.SignIn(context.Background(), "Alice")

	require.NoError(t, err)
	assert.True(t, session.SignedIn)
	assert.Equal(t, "signed.jwt.token", a.Token())
}

func TestSignIn_MissingTokenHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.Session{SignedIn: true, Name: "Alice"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignIn(context.Background(), "Alice")

	require.Error(t, err)
	assert.Empty(t, a.Token())
}

func TestSignOut_ClearsTokenAndSendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/signout", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tok ")

	require.NoError(t, a.SignOut(context.Background()))
	assert.Empty(t, a.Token())
}

func TestSecretMessage_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Code: models.CodeUnauthorized, Message: "sign in required"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).SecretMessage(context.Background())

	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestSecretMessage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.SecretMessageResponse{Message: "psst"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	got, err := a.SecretMessage(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "psst", got)
}

func TestSession_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/session", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.Session{})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Session(context.Background())

	require.NoError(t, err)
	assert.False(t, got.SignedIn)
}

// ── Info ────────────────────────────────────────────────────────────────────

func TestHello(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.GreetingResponse{Greeting: "Hello " + r.URL.Query().Get("text")})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Hello(context.Background(), "world")

	require.NoError(t, err)
	assert.Equal(t, "Hello world", got)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

func TestUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.Error(t, err)
	assert.Equal(t, "http 503: Service Unavailable", err.Error())
}

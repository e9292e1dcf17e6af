// Package utils provides general-purpose helpers used across the
// application: typed context keys, JSON response writing, the resty client,
// JWT session tokens and request fingerprints.
package utils

import (
	"context"

	"github.com/MKhiriev/go-leave-tracker/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key used to store the caller's [models.Session] in the
// context. The session middleware always stores one, signed in or not.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext retrieves the session stored by [WithSession].
// A missing session is reported as a signed-out one with ok == false.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-leave-tracker/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetSessionFromContext_Success(t *testing.T) {
	ctx := WithSession(context.Background(), models.Session{SignedIn: true, Name: "Alice"})

	session, ok := GetSessionFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if !session.SignedIn || session.Name != "Alice" {
		t.Errorf("unexpected session %+v", session)
	}
}

func TestGetSessionFromContext_Missing(t *testing.T) {
	session, ok := GetSessionFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if session.SignedIn {
		t.Error("missing session must read as signed out")
	}
}

func TestGetSessionFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, "Alice")

	if _, ok := GetSessionFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong value type")
	}
}

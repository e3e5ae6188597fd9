// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/MKhiriev/creator-hub/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestSessionCtxKey(t *testing.T) {
	if SessionCtxKey.String() != "session" {
		t.Errorf("expected 'session', got '%s'", SessionCtxKey.String())
	}
}

func TestGetSessionFromContext_Success(t *testing.T) {
	token := models.Token{UserID: uuid.New(), Email: "alice@example.com", Username: "alice"}
	ctx := context.WithValue(context.Background(), SessionCtxKey, token)

	session, ok := GetSessionFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if session.UserID != token.UserID {
		t.Errorf("expected userID=%s, got %s", token.UserID, session.UserID)
	}
	if session.Email != token.Email {
		t.Errorf("expected email=%s, got %s", token.Email, session.Email)
	}
}

func TestGetSessionFromContext_Missing(t *testing.T) {
	_, ok := GetSessionFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
}

func TestGetSessionFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, "not-a-token")

	_, ok := GetSessionFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetUserIDFromContext_Success(t *testing.T) {
	userID := uuid.New()
	ctx := context.WithValue(context.Background(), SessionCtxKey, models.Token{UserID: userID})

	got, ok := GetUserIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != userID {
		t.Errorf("expected userID=%s, got %s", userID, got)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	got, ok := GetUserIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if got != uuid.Nil {
		t.Errorf("expected uuid.Nil, got %s", got)
	}
}

func TestGetUserIDFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, models.Token{UserID: uuid.New()})

	got, ok := GetUserIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for different key, got true")
	}
	if got != uuid.Nil {
		t.Errorf("expected uuid.Nil, got %s", got)
	}
}

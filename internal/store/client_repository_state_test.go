// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/creator-hub/internal/logger"
	"github.com/MKhiriev/creator-hub/models"
)

func newTestLocalStateRepo(t *testing.T) (*localStateRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &localStateRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveSession_Success(t *testing.T) {
	repo, mock, db := newTestLocalStateRepo(t)
	defer db.Close()

	session := models.LocalSession{
		Email:    "john@example.com",
		Username: "john",
		Token:    "signed.jwt.token",
		SavedAt:  time.Now().UTC(),
	}
	payload, _ := json.Marshal(session)

	mock.ExpectExec("INSERT INTO local_state").
		WithArgs(sessionStateKey, string(payload)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SaveSession(context.Background(), session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaveSession_ExecError(t *testing.T) {
	repo, mock, db := newTestLocalStateRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO local_state").
		WillReturnError(errors.New("disk full"))

	err := repo.SaveSession(context.Background(), models.LocalSession{Token: "t"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Errorf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetSession_Success(t *testing.T) {
	repo, mock, db := newTestLocalStateRepo(t)
	defer db.Close()

	want := models.LocalSession{
		Email:    "john@example.com",
		Username: "john",
		Token:    "signed.jwt.token",
		SavedAt:  time.Now().UTC().Truncate(time.Second),
	}
	payload, _ := json.Marshal(want)

	mock.ExpectQuery("SELECT value").
		WithArgs(sessionStateKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(string(payload)))

	got, err := repo.GetSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Token != want.Token {
		t.Errorf("expected token %q, got %q", want.Token, got.Token)
	}
	if got.Email != want.Email {
		t.Errorf("expected email %q, got %q", want.Email, got.Email)
	}
}

func TestGetSession_NotFound(t *testing.T) {
	repo, mock, db := newTestLocalStateRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value").
		WithArgs(sessionStateKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := repo.GetSession(context.Background())
	if !errors.Is(err, ErrLocalSessionNotFound) {
		t.Errorf("expected ErrLocalSessionNotFound, got %v", err)
	}
}

func TestGetSession_CorruptPayload(t *testing.T) {
	repo, mock, db := newTestLocalStateRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value").
		WithArgs(sessionStateKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("{not json"))

	_, err := repo.GetSession(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if errors.Is(err, ErrLocalSessionNotFound) {
		t.Errorf("corrupt payload must not read as absent session, got %v", err)
	}
}

func TestClearSession_Success(t *testing.T) {
	repo, mock, db := newTestLocalStateRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM local_state").
		WithArgs(sessionStateKey).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ClearSession(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClearSession_AbsentSessionIsNotAnError(t *testing.T) {
	repo, mock, db := newTestLocalStateRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM local_state").
		WithArgs(sessionStateKey).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.ClearSession(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetPreference_KeyIsPrefixed(t *testing.T) {
	repo, mock, db := newTestLocalStateRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO local_state").
		WithArgs(preferencePrefix+"output", "json").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SetPreference(context.Background(), "output", "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetPreference_Success(t *testing.T) {
	repo, mock, db := newTestLocalStateRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value").
		WithArgs(preferencePrefix + "output").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("json"))

	got, err := repo.GetPreference(context.Background(), "output")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "json" {
		t.Errorf("expected %q, got %q", "json", got)
	}
}

func TestGetPreference_NotFound(t *testing.T) {
	repo, mock, db := newTestLocalStateRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value").
		WithArgs(preferencePrefix + "missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := repo.GetPreference(context.Background(), "missing")
	if !errors.Is(err, ErrPreferenceNotFound) {
		t.Errorf("expected ErrPreferenceNotFound, got %v", err)
	}
}

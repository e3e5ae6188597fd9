// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/creator-hub/internal/store"
	"github.com/MKhiriev/creator-hub/internal/utils"
	"github.com/MKhiriev/creator-hub/models"
)

// ─────────────────────────────────────────────
// Mock ProfileService
// ─────────────────────────────────────────────

type mockProfileService struct {
	createFn        func(ctx context.Context, userID uuid.UUID, request models.CreateProfileRequest) (models.Profile, error)
	updateFn        func(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (models.Profile, error)
	getMineFn       func(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	getByUsernameFn func(ctx context.Context, username string) (models.Profile, error)
	listAllFn       func(ctx context.Context, skillsFilter string) ([]models.Profile, error)
}

func (m *mockProfileService) Create(ctx context.Context, userID uuid.UUID, request models.CreateProfileRequest) (models.Profile, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, request)
	}
	return models.Profile{}, nil
}

func (m *mockProfileService) Update(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (models.Profile, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, update)
	}
	return models.Profile{}, store.ErrProfileNotFound
}

func (m *mockProfileService) GetMine(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	if m.getMineFn != nil {
		return m.getMineFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileService) GetByUsername(ctx context.Context, username string) (models.Profile, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return models.Profile{}, store.ErrProfileNotFound
}

func (m *mockProfileService) ListAll(ctx context.Context, skillsFilter string) ([]models.Profile, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx, skillsFilter)
	}
	return []models.Profile{}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// withSession attaches an authenticated session to the request context, the
// way the auth middleware does after validating a token.
func withSession(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), utils.SessionCtxKey, models.Token{UserID: userID})
	return req.WithContext(ctx)
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// createProfile
// ─────────────────────────────────────────────

func TestCreateProfile_Created(t *testing.T) {
	userID := uuid.New()
	profileSvc := &mockProfileService{
		createFn: func(_ context.Context, id uuid.UUID, request models.CreateProfileRequest) (models.Profile, error) {
			assert.Equal(t, userID, id)
			return models.Profile{ID: uuid.New(), UserID: id, Name: request.Name, Username: "jane"}, nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, profileSvc)
	body := jsonBody(t, models.CreateProfileRequest{Name: "Jane Doe", Skills: []string{"go"}})
	req := withSession(httptest.NewRequest(http.MethodPost, "/profile", strings.NewReader(body)), userID)
	rec := httptest.NewRecorder()

	h.createProfile(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Jane Doe", created.Name)
	assert.Equal(t, "jane", created.Username)
}

func TestCreateProfile_NoSession(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockProfileService{})
	body := jsonBody(t, models.CreateProfileRequest{Name: "Jane Doe"})
	req := httptest.NewRequest(http.MethodPost, "/profile", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.createProfile(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateProfile_AlreadyExists(t *testing.T) {
	profileSvc := &mockProfileService{
		createFn: func(_ context.Context, _ uuid.UUID, _ models.CreateProfileRequest) (models.Profile, error) {
			return models.Profile{}, store.ErrProfileAlreadyExists
		},
	}

	h := newTestHandler(t, &mockAuthService{}, profileSvc)
	body := jsonBody(t, models.CreateProfileRequest{Name: "Jane Doe"})
	req := withSession(httptest.NewRequest(http.MethodPost, "/profile", strings.NewReader(body)), uuid.New())
	rec := httptest.NewRecorder()

	h.createProfile(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateProfile_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockProfileService{})
	req := withSession(httptest.NewRequest(http.MethodPost, "/profile", strings.NewReader("{")), uuid.New())
	rec := httptest.NewRecorder()

	h.createProfile(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// myProfile
// ─────────────────────────────────────────────

func TestMyProfile_NoneYetReturnsNull(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockProfileService{})
	req := withSession(httptest.NewRequest(http.MethodGet, "/profile/me", nil), uuid.New())
	rec := httptest.NewRecorder()

	h.myProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestMyProfile_Found(t *testing.T) {
	userID := uuid.New()
	profileSvc := &mockProfileService{
		getMineFn: func(_ context.Context, id uuid.UUID) (*models.Profile, error) {
			return &models.Profile{UserID: id, Name: "Jane Doe", Skills: []string{"go"}}, nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, profileSvc)
	req := withSession(httptest.NewRequest(http.MethodGet, "/profile/me", nil), userID)
	rec := httptest.NewRecorder()

	h.myProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var profile models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, userID, profile.UserID)
}

func TestMyProfile_NoSession(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockProfileService{})
	req := httptest.NewRequest(http.MethodGet, "/profile/me", nil)
	rec := httptest.NewRecorder()

	h.myProfile(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// updateProfile
// ─────────────────────────────────────────────

func TestUpdateProfile_Success(t *testing.T) {
	userID := uuid.New()
	profileSvc := &mockProfileService{
		updateFn: func(_ context.Context, id uuid.UUID, update models.ProfileUpdate) (models.Profile, error) {
			require.NotNil(t, update.Name)
			assert.Nil(t, update.Bio)
			return models.Profile{UserID: id, Name: *update.Name}, nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, profileSvc)
	req := withSession(httptest.NewRequest(http.MethodPut, "/profile/me", strings.NewReader(`{"name":"New Name"}`)), userID)
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "New Name", updated.Name)
}

func TestUpdateProfile_NoProfileYet(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockProfileService{})
	req := withSession(httptest.NewRequest(http.MethodPut, "/profile/me", strings.NewReader(`{"name":"New Name"}`)), uuid.New())
	rec := httptest.NewRecorder()

	h.updateProfile(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// profileByUsername / allProfiles
// ─────────────────────────────────────────────

func TestProfileByUsername_Found(t *testing.T) {
	profileSvc := &mockProfileService{
		getByUsernameFn: func(_ context.Context, username string) (models.Profile, error) {
			return models.Profile{Name: "Jane Doe", Username: username}, nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, profileSvc)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/profile/username/jane", nil), "username", "jane")
	rec := httptest.NewRecorder()

	h.profileByUsername(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var profile models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "jane", profile.Username)
}

func TestProfileByUsername_NotFound(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockProfileService{})
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/profile/username/ghost", nil), "username", "ghost")
	rec := httptest.NewRecorder()

	h.profileByUsername(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAllProfiles_PassesSkillFilter(t *testing.T) {
	var gotFilter string
	profileSvc := &mockProfileService{
		listAllFn: func(_ context.Context, skillsFilter string) ([]models.Profile, error) {
			gotFilter = skillsFilter
			return []models.Profile{{Name: "Jane Doe"}}, nil
		},
	}

	h := newTestHandler(t, &mockAuthService{}, profileSvc)
	req := httptest.NewRequest(http.MethodGet, "/profile/all?skills=go,react", nil)
	rec := httptest.NewRecorder()

	h.allProfiles(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "go,react", gotFilter)

	var profiles []models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profiles))
	require.Len(t, profiles, 1)
}

func TestAllProfiles_EmptyList(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockProfileService{})
	req := httptest.NewRequest(http.MethodGet, "/profile/all", nil)
	rec := httptest.NewRecorder()

	h.allProfiles(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

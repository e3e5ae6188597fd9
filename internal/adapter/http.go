package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/creator-hub/internal/config"
	"github.com/MKhiriev/creator-hub/internal/logger"
	"github.com/MKhiriev/creator-hub/internal/utils"
	"github.com/MKhiriev/creator-hub/models"
)

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs an HTTP/REST implementation of [APIClient].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying resty client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPAPIClient(cfg config.ClientAdapter, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid client base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpAPIClient{client: client, logger: logger}, nil
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

// SetToken implements [APIClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [APIClient]. It returns the bearer token currently held
// by the client, or an empty string if none has been set.
func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [APIClient]. It POSTs the registration payload to
// POST /auth/signup and stores the returned access token via SetToken.
func (h *httpAPIClient) Signup(ctx context.Context, request models.SignupRequest) (models.AuthResponse, error) {
	var response models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&response).
		Post("/auth/signup")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(tokenFromResponse(resp, response))
	return response, nil
}

// Login implements [APIClient]. It POSTs the credentials to POST /auth/login
// and stores the returned access token via SetToken.
func (h *httpAPIClient) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	var response models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&response).
		Post("/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(tokenFromResponse(resp, response))
	return response, nil
}

// tokenFromResponse picks the session token from an auth response. The
// server mirrors the JWT in the "Authorization: Bearer <jwt>" response
// header; when that header is present and well-formed it wins over the
// JSON body.
func tokenFromResponse(resp *resty.Response, body models.AuthResponse) string {
	if header := resp.Header().Get("Authorization"); header != "" {
		if token, err := utils.ParseBearerToken(header); err == nil {
			return token
		}
	}
	return body.AccessToken
}

// Logout implements [APIClient]. The stored token is cleared even when the
// request fails, a stale local session is worse than a failed logout call.
func (h *httpAPIClient) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/auth/logout")

	h.SetToken("")

	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapHTTPError(resp)
}

// CreateProfile implements [APIClient]. It POSTs the payload to
// POST /profile with the stored bearer token attached.
func (h *httpAPIClient) CreateProfile(ctx context.Context, request models.CreateProfileRequest) (models.Profile, error) {
	var created models.Profile

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&created).
		Post("/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("create profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return created, nil
}

// MyProfile implements [APIClient]. The server answers with a JSON null when
// the caller has not created a profile yet; that case is returned as nil.
func (h *httpAPIClient) MyProfile(ctx context.Context) (*models.Profile, error) {
	resp, err := h.authedRequest(ctx).
		Get("/profile/me")
	if err != nil {
		return nil, fmt.Errorf("my profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var profile *models.Profile
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return nil, fmt.Errorf("my profile decode: %w", err)
	}

	return profile, nil
}

// UpdateProfile implements [APIClient]. It PUTs the partial update to
// PUT /profile/me with the stored bearer token attached.
func (h *httpAPIClient) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error) {
	var updated models.Profile

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&updated).
		Put("/profile/me")
	if err != nil {
		return models.Profile{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return updated, nil
}

// ProfileByUsername implements [APIClient].
func (h *httpAPIClient) ProfileByUsername(ctx context.Context, username string) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&profile).
		Get("/profile/username/" + url.PathEscape(username))
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile by username request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// ListProfiles implements [APIClient]. A non-empty skillsFilter is passed as
// the "skills" query parameter.
func (h *httpAPIClient) ListProfiles(ctx context.Context, skillsFilter string) ([]models.Profile, error) {
	var profiles []models.Profile

	request := h.client.R().
		SetContext(ctx).
		SetResult(&profiles)
	if skillsFilter != "" {
		request.SetQueryParam("skills", skillsFilter)
	}

	resp, err := request.Get("/profile/all")
	if err != nil {
		return nil, fmt.Errorf("list profiles request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return profiles, nil
}

// authedRequest returns a request with the stored bearer token attached.
func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	request := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		request.SetHeader("Authorization", "Bearer "+token)
	}
	return request
}

package http

import (
	"time"

	"github.com/MKhiriev/creator-hub/internal/config"
	"github.com/MKhiriev/creator-hub/internal/logger"
	"github.com/MKhiriev/creator-hub/internal/service"
)

type Handler struct {
	services *service.Services

	// tokenDuration sets the MaxAge of the auth cookie so it expires
	// together with the JWT it carries.
	tokenDuration time.Duration

	// secureCookies marks the auth cookie Secure outside of development.
	secureCookies bool

	// allowedOrigins feeds the CORS middleware. Concrete origins, never
	// "*": the browser client sends credentialed (cookie) requests.
	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, srv config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		tokenDuration:  cfg.TokenDuration,
		secureCookies:  cfg.Environment == config.EnvironmentProduction,
		allowedOrigins: srv.AllowedOrigins,
		logger:         logger,
	}
}

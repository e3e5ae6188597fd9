package config

import "time"

// Recognised deployment environments.
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// Default configuration values applied when no other source provides one.
const (
	// DefaultTokenDuration is the session token lifetime: 7 days.
	DefaultTokenDuration = 7 * 24 * time.Hour

	// DefaultTokenIssuer is the "iss" claim used when none is configured.
	DefaultTokenIssuer = "creator-hub"

	// DefaultBcryptCost is the bcrypt work factor for password hashing.
	DefaultBcryptCost = 10

	// DefaultHTTPAddress is the listen address of the HTTP server.
	DefaultHTTPAddress = ":8080"

	// DefaultRequestTimeout bounds a single inbound request.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultEnvironment is the deployment environment assumed when unset.
	DefaultEnvironment = EnvironmentDevelopment

	// DefaultClientBaseURL is where the CLI client looks for the API.
	DefaultClientBaseURL = "http://localhost:8080"

	// DefaultClientTimeout bounds a single outbound client request.
	DefaultClientTimeout = 15 * time.Second
)

// DefaultAllowedOrigins covers the local browser frontend during development.
// Production deployments override it via SERVER_ALLOWED_ORIGINS.
var DefaultAllowedOrigins = []string{"http://localhost:3000"}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			BcryptCost:    DefaultBcryptCost,
			Environment:   DefaultEnvironment,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			AllowedOrigins: DefaultAllowedOrigins,
		},
		Client: Client{
			BaseURL:        DefaultClientBaseURL,
			RequestTimeout: DefaultClientTimeout,
		},
	}
}

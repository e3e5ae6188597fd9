package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func validAppConfig() App {
	return App{
		TokenSignKey:  "secret",
		TokenIssuer:   "creator-hub",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.DefaultCost,
		Environment:   EnvironmentDevelopment,
	}
}

func TestValidate_Success(t *testing.T) {
	cfg := &StructuredConfig{App: validAppConfig()}

	assert.NoError(t, cfg.validate())
}

func TestValidate_TokenDuration(t *testing.T) {
	for _, duration := range []time.Duration{0, -time.Hour} {
		cfg := &StructuredConfig{App: validAppConfig()}
		cfg.App.TokenDuration = duration

		assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
	}
}

func TestValidate_BcryptCostBounds(t *testing.T) {
	tests := []struct {
		name    string
		cost    int
		wantErr bool
	}{
		{name: "min cost", cost: bcrypt.MinCost, wantErr: false},
		{name: "max cost", cost: bcrypt.MaxCost, wantErr: false},
		{name: "below min", cost: bcrypt.MinCost - 1, wantErr: true},
		{name: "above max", cost: bcrypt.MaxCost + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StructuredConfig{App: validAppConfig()}
			cfg.App.BcryptCost = tt.cost

			err := cfg.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAppConfigs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateServer(t *testing.T) {
	valid := StructuredConfig{
		App:     validAppConfig(),
		Storage: Storage{DB: DB{DSN: "postgres://localhost/creatorhub"}},
		Server:  Server{HTTPAddress: ":8080", RequestTimeout: 30 * time.Second},
	}

	t.Run("valid", func(t *testing.T) {
		cfg := valid
		assert.NoError(t, cfg.ValidateServer())
	})

	t.Run("missing sign key", func(t *testing.T) {
		cfg := valid
		cfg.App.TokenSignKey = ""
		assert.ErrorIs(t, cfg.ValidateServer(), ErrMissingTokenSignKey)
	})

	t.Run("missing DSN", func(t *testing.T) {
		cfg := valid
		cfg.Storage.DB.DSN = ""
		assert.ErrorIs(t, cfg.ValidateServer(), ErrInvalidStorageConfigs)
	})

	t.Run("missing address", func(t *testing.T) {
		cfg := valid
		cfg.Server.HTTPAddress = ""
		assert.ErrorIs(t, cfg.ValidateServer(), ErrInvalidServerConfigs)
	})
}

func TestClientConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &ClientConfig{Adapter: ClientAdapter{BaseURL: "http://localhost:8080", RequestTimeout: 15 * time.Second}}
		require.NoError(t, cfg.validate())
	})

	t.Run("missing base url", func(t *testing.T) {
		cfg := &ClientConfig{Adapter: ClientAdapter{RequestTimeout: 15 * time.Second}}
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
	})

	t.Run("missing timeout", func(t *testing.T) {
		cfg := &ClientConfig{Adapter: ClientAdapter{BaseURL: "http://localhost:8080"}}
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
	})
}

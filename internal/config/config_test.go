package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, AuthModeDemo, cfg.AuthMode)
	assert.Equal(t, "demo-user-123", cfg.DemoUserID)
	assert.Equal(t, "demo@example.com", cfg.DemoUserEmail)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Empty(t, cfg.CORSOrigins)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"PORT":             "9000",
		"AUTH_MODE":        "TOKEN",
		"JWT_SECRET_KEY":   "s3cret",
		"STORE_DRIVER":     "sqlite",
		"CORS_ORIGIN":      "http://localhost:5173, https://gym.example.com",
		"RATE_LIMIT_RPS":   "2.5",
		"RATE_LIMIT_BURST": "5",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, AuthModeToken, cfg.AuthMode)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, []string{"http://localhost:5173", "https://gym.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 5, cfg.RateLimitBurst)
}

func TestFromEnvRejectsInvalid(t *testing.T) {
	tests := map[string]map[string]string{
		"token without secret": {"AUTH_MODE": "token"},
		"unknown auth mode":    {"AUTH_MODE": "oauth"},
		"unknown driver":       {"STORE_DRIVER": "postgres"},
		"bad rps":              {"RATE_LIMIT_RPS": "fast"},
		"zero burst":           {"RATE_LIMIT_BURST": "0"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(envOf(env))
			assert.Error(t, err)
		})
	}
}

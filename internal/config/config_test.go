package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "confidant", cfg.DBName)
	assert.Equal(t, time.Duration(0), cfg.TokenTTL)
	assert.Equal(t, "test-secret", cfg.TokenSecret)
}

func TestLoadMissingTokenSecret(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN_SECRET")
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestLoadTokenTTL(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL", "15m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
}

func TestLoadNegativeTokenTTL(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL", "-1h")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadTrustedProxies(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "test-secret")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "app",
		DBPassword: "pw",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "confidant",
	}

	assert.Equal(t, "postgres://app:pw@db:5433/confidant?sslmode=disable", cfg.GetDBConnString())
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSONConfig(t, `{
		"app": {"environment": "production", "version": "1.2.3"},
		"security": {
			"token_sign_key": "super-secret",
			"token_issuer": "finance-api",
			"access_token_ttl": "15m",
			"refresh_token_ttl": "168h",
			"password_min_length": 10
		},
		"storage": {"driver": "postgres", "dsn": "postgres://localhost/finance", "max_open_conns": 20},
		"server": {"http_address": "0.0.0.0:9000", "request_timeout": "45s"},
		"notifier": {"enabled": true, "webhook_url": "https://hooks.example.edu/budget", "timeout": "5s", "utilization_threshold": 0.8}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.App.Environment)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "super-secret", cfg.Security.TokenSignKey)
	assert.Equal(t, 15*time.Minute, cfg.Security.AccessTokenTTL)
	assert.Equal(t, 168*time.Hour, cfg.Security.RefreshTokenTTL)
	assert.Equal(t, 10, cfg.Security.PasswordMinLength)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, 20, cfg.Storage.MaxOpenConns)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Notifier.Enabled)
	assert.Equal(t, 0.8, cfg.Notifier.UtilizationThreshold)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSONConfig(t, "{not valid json")
	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestParseJSON_BadDuration(t *testing.T) {
	path := writeTempJSONConfig(t, `{"server": {"request_timeout": "soon"}}`)
	_, err := parseJSON(path)
	assert.Error(t, err)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_FullSet(t *testing.T) {
	t.Setenv("APP_DEVICE_SECRET", "s3cr3t-device")
	t.Setenv("ADAPTER_HTTP_ADDRESS", "https://vault.example.com")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "30s")
	t.Setenv("STORAGE_BACKEND", "keyring")
	t.Setenv("STORAGE_KEYRING_SERVICE", "passvault-test")
	t.Setenv("SESSION_TICK_INTERVAL", "250ms")

	cfg := &ClientConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "s3cr3t-device", cfg.App.DeviceSecret)
	assert.Equal(t, "https://vault.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, BackendKeyring, cfg.Storage.Backend)
	assert.Equal(t, "passvault-test", cfg.Storage.KeyringService)
	assert.Equal(t, 250*time.Millisecond, cfg.Session.TickInterval)
}

func TestParseEnv_Defaults(t *testing.T) {
	cfg := &ClientConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, time.Second, cfg.Session.TickInterval)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &ClientConfig{}
	assert.Error(t, parseEnv(cfg))
}

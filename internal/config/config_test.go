package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	o, err := Load("server", []string{"-c", filepath.Join(dir, "missing.json"), "-env-file", filepath.Join(dir, ".env")}, noEnv)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", o.Address)
	assert.Equal(t, StoreFile, o.StoreDriver)
	assert.Equal(t, "data", o.StoreDSN)
	assert.Equal(t, 24*time.Hour, o.TokenTTL.Duration)
	assert.Equal(t, time.Hour, o.CleanupInterval.Duration)
	assert.Equal(t, ExportNone, o.ExportDriver)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(cfg, []byte(`{"address":":9000","store_driver":"sqlite","store_dsn":"fleet.db","token_ttl":"2h"}`), 0o600))

	o, err := Load("server", []string{"-a", ":7000", "-c", cfg, "-env-file", ""}, envOf(map[string]string{
		"STORE_DSN": "/var/lib/fleet.db",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9000", o.Address, "file overrides flags")
	assert.Equal(t, StoreSQLite, o.StoreDriver)
	assert.Equal(t, "/var/lib/fleet.db", o.StoreDSN, "env overrides file")
	assert.Equal(t, 2*time.Hour, o.TokenTTL.Duration)
}

func TestLoad_YAMLAndDotenv(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "fleet.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("store_driver: redis\nstore_dsn: redis://localhost:6379/0\nnotification_retention: 48h\n"), 0o600))
	dotenv := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("JWT_SECRET=from-dotenv\nLOG_LEVEL=debug\n"), 0o600))

	o, err := Load("server", []string{"-env-file", dotenv}, envOf(map[string]string{
		"CONFIG":    cfg,
		"LOG_LEVEL": "warn",
	}))
	require.NoError(t, err)

	assert.Equal(t, StoreRedis, o.StoreDriver)
	assert.Equal(t, 48*time.Hour, o.NotificationRetention.Duration)
	assert.Equal(t, "from-dotenv", o.JWTSecret)
	assert.Equal(t, "warn", o.LogLevel, "process env wins over dotenv")
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	base := []string{"-c", filepath.Join(dir, "none.json"), "-env-file", ""}

	_, err := Load("server", append(base, "-store", "mongo"), noEnv)
	assert.Error(t, err)

	_, err = Load("server", append(base, "-export", "s3"), noEnv)
	assert.Error(t, err)

	_, err = Load("server", base, envOf(map[string]string{"TOKEN_TTL": "forever"}))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o600))
	_, err = Load("server", []string{"-c", bad, "-env-file", ""}, noEnv)
	assert.Error(t, err)
}

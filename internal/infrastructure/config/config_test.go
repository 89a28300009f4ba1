package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsAndFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, `
server:
  port: 9000
database:
  driver: sqlite
identity:
  url: https://sso.example.com/
  realm: lockers
`)

	cfg, err := Load("", path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "nfc-scanner", cfg.Identity.ScannerClientID)
	assert.Equal(t, "admin", cfg.Identity.AdminRole)
	assert.Equal(t, 5*time.Minute, cfg.Identity.JWKSCacheTTL)
	assert.Equal(t, time.Minute, cfg.Identity.JWKSMinRefreshInterval)
	assert.Equal(t, "https://sso.example.com/realms/lockers/protocol/openid-connect/certs", cfg.Identity.JWKSURL())
	assert.Equal(t, 60, cfg.RateLimit.HealthPerMinute)
	assert.Equal(t, 100, cfg.RateLimit.RootPerMinute)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, `
identity:
  realm: lockers
`)
	t.Setenv("SMARTLOCK_IDENTITY_REALM", "override")
	t.Setenv("SMARTLOCK_IDENTITY_JWKS_CACHE_TTL", "30s")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/smartlock?sslmode=disable")

	cfg, err := Load("release", path)
	require.NoError(t, err)

	assert.Equal(t, "override", cfg.Identity.Realm)
	assert.Equal(t, 30*time.Second, cfg.Identity.JWKSCacheTTL)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "postgres://u:p@db:5432/smartlock?sslmode=disable", cfg.Database.GetDSN())
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SMARTLOCK_SERVER_PORT=7001\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SMARTLOCK_SERVER_PORT") })

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.Server.Port)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("", "")
	require.NoError(t, err)

	cfg.Database.Driver = "oracle"
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = "postgres"
	cfg.Identity.Realm = ""
	assert.Error(t, cfg.Validate())

	cfg.Identity.Realm = "smartlock"
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.HealthPerMinute = 0
	assert.Error(t, cfg.Validate())
}

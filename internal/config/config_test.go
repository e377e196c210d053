package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "BASE_DIR", "IG_BASE_URL", "IG_TIMEOUT",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_PREFIX", "REDIS_SESSION_TTL",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadPathFileAndEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `
env: dev
base_dir: ./accounts
api:
  timeout: 10s
redis:
  addr: localhost:6379
  db: 2
`)
	t.Setenv("REDIS_PREFIX", "test:")

	cfg, err := LoadPath(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "./accounts", cfg.BaseDir)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "https://i.instagram.com/api/v1", cfg.API.BaseURL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "test:", cfg.Redis.Prefix)
	assert.Equal(t, 720*time.Hour, cfg.Redis.TTL)
}

func TestLoadPathEnvOnly(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_DIR", "/srv/accounts")
	t.Setenv("IG_TIMEOUT", "5s")

	cfg, err := LoadPath("")
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "/srv/accounts", cfg.BaseDir)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "ig:session:", cfg.Redis.Prefix)
}

func TestLoadPathErrors(t *testing.T) {
	clearEnv(t)

	_, err := LoadPath("")
	assert.ErrorContains(t, err, "base_dir")

	_, err = LoadPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "base_dir: [unterminated")
	_, err = LoadPath(bad)
	assert.Error(t, err)
}

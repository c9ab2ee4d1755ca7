package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
server:
  port: 9090
  mode: release
database:
  driver: postgres
  dsn: host=db user=plub
jwt:
  secret: s3cret
  encrypt_key: 0123456789abcdef0123456789abcdef
  access_duration: 30m
`

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(sample), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessDuration)
	// 默认值
	assert.Equal(t, 720*time.Hour, cfg.JWT.RefreshDuration)
	assert.Equal(t, 4, cfg.Notification.Workers)
	assert.Equal(t, int64(10<<20), cfg.Storage.MaxSize)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(sample), 0o600))
	t.Setenv("PLUB_SERVER_PORT", "7070")
	t.Setenv("PLUB_REDIS_ADDR", "redis:6379")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestLoadValidation(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorContains(t, err, "jwt.secret")

	t.Setenv("PLUB_JWT_SECRET", "x")
	t.Setenv("PLUB_JWT_ENCRYPT_KEY", "short")
	_, err = Load(t.TempDir())
	assert.ErrorContains(t, err, "encrypt_key")
}

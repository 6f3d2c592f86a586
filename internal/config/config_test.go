package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("PG_HOST", "pg-host")
	t.Setenv("DB_HOST", "ignored-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("AWS_ACCESS_KEY", "legacy-key")
	t.Setenv("KVS_HLS_EXPIRES_SEC", "600")
	t.Setenv("TRANSCRIPT_STORAGE", "MinIO")

	cfg := Load()

	assert.Equal(t, "pg-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "legacy-key", cfg.AWS.AccessKeyID)
	assert.Equal(t, 600, cfg.AWS.HLSExpiresSec)
	assert.Equal(t, "minio", cfg.TranscriptStorage)
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "AWS_REGION", "KVS_HLS_EXPIRES_SEC", "REDIS_ADDR", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, 3600, cfg.AWS.HLSExpiresSec)
	assert.Equal(t, "anthropic.claude-3-5-haiku-20241022-v1:0", cfg.AWS.BedrockDefaultModel)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

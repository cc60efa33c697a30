// pkg/configs/config_test.go
package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBindsSecretsFromEnv(t *testing.T) {
	t.Setenv("APP_AUTH_JWT_SECRET", "super-secret")
	t.Setenv("APP_REDIS_PASSWORD", "redis-pass")
	t.Setenv("APP_PUSH_VAPID_PUBLIC_KEY", "vapid-pub")
	t.Setenv("APP_PUSH_VAPID_PRIVATE_KEY", "vapid-priv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "super-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "redis-pass", cfg.Redis.Password)
	assert.Equal(t, "vapid-pub", cfg.Push.VAPIDPublicKey)
	assert.Equal(t, "vapid-priv", cfg.Push.VAPIDPrivateKey)
}

func TestLoadAppliesDefaultsAndEnvOverrides(t *testing.T) {
	t.Setenv("APP_AUTH_JWT_SECRET", "s")
	t.Setenv("APP_SERVER_PORT", "9999")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 256, cfg.Realtime.SendBuffer)
}

func TestLoadFailsWithoutJWTSecret(t *testing.T) {
	t.Setenv("APP_AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_AUTH_JWT_SECRET")
}

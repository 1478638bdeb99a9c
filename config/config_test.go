// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationConfig_Defaults(t *testing.T) {
	t.Setenv("ENV_PATH", "")

	v, err := InitConfig()
	require.NoError(t, err)
	cfg, err := GetApplicationConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "gujarati-frontend", cfg.Name)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 4, cfg.BatchConcurrency)
	assert.Equal(t, "localhost", cfg.RedisConfig.Host)
	assert.Equal(t, 6379, cfg.RedisConfig.Port)
	assert.False(t, cfg.CacheConfig.Enabled)
	assert.Equal(t, time.Hour, cfg.CacheTTL())
	assert.Empty(t, cfg.NormalizerRules())
	assert.True(t, cfg.IsDevelopment())
}

func TestApplicationConfig_Environment(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	t.Setenv("PORT", "8088")
	t.Setenv("ENV", "production")
	t.Setenv("REDIS__HOST", "redis.internal")
	t.Setenv("CACHE__ENABLED", "true")
	t.Setenv("CACHE__TTL_SECONDS", "60")
	t.Setenv("NORMALIZER__RULES", "unicode, validation,,cardinal")
	t.Setenv("CORS__ALLOWED_ORIGINS", "https://a.example,https://b.example")

	v, err := InitConfig()
	require.NoError(t, err)
	cfg, err := GetApplicationConfig(v)
	require.NoError(t, err)

	assert.Equal(t, 8088, cfg.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "redis.internal", cfg.RedisConfig.Host)
	assert.True(t, cfg.CacheConfig.Enabled)
	assert.Equal(t, time.Minute, cfg.CacheTTL())
	assert.Equal(t, []string{"unicode", "validation", "cardinal"}, cfg.NormalizerRules())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

func TestApplicationConfig_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frontend.env")
	require.NoError(t, os.WriteFile(path, []byte("SERVICE_NAME=frontend-test\nBATCH_CONCURRENCY=9\n"), 0o600))
	t.Setenv("ENV_PATH", path)

	v, err := InitConfig()
	require.NoError(t, err)
	cfg, err := GetApplicationConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "frontend-test", cfg.Name)
	assert.Equal(t, 9, cfg.BatchConcurrency)
}

func TestApplicationConfig_Invalid(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	t.Setenv("LOG_LEVEL", "verbose")

	v, err := InitConfig()
	require.NoError(t, err)
	_, err = GetApplicationConfig(v)
	assert.Error(t, err)
}

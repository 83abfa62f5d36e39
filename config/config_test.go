package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BEANSTREAM_MERCHANT_ID", "100200000")
	t.Setenv("BEANSTREAM_USERNAME", "username")
	t.Setenv("BEANSTREAM_PASSWORD", "password")
	t.Setenv("BEANSTREAM_PASS_CODE", "pass code")
	t.Setenv("BEANSTREAM_TEST_MODE", "true")
	t.Setenv("BEANSTREAM_TIMEOUT", "45")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadFromEnv()

	require.NoError(t, err)
	assert.Equal(t, "100200000", cfg.Gateway.MerchantID)
	assert.Equal(t, "username", cfg.Gateway.Username)
	assert.Equal(t, "password", cfg.Gateway.Password)
	assert.Equal(t, "pass code", cfg.Gateway.PassCode)
	assert.True(t, cfg.Gateway.TestMode)
	assert.Equal(t, 45, cfg.Gateway.Timeout)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("BEANSTREAM_MERCHANT_ID", "100200000")

	cfg, err := LoadFromEnv()

	require.NoError(t, err)
	assert.False(t, cfg.Gateway.TestMode)
	assert.Equal(t, 30, cfg.Gateway.Timeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.Logger.Development)
}

func TestLoadFromEnv_MissingMerchantID(t *testing.T) {
	t.Setenv("BEANSTREAM_MERCHANT_ID", "")

	_, err := LoadFromEnv()

	assert.Error(t, err)
}

func TestLoadFromEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("BEANSTREAM_MERCHANT_ID", "100200000")
	t.Setenv("BEANSTREAM_TIMEOUT", "not a number")
	t.Setenv("BEANSTREAM_TEST_MODE", "maybe")

	cfg, err := LoadFromEnv()

	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Gateway.Timeout)
	assert.False(t, cfg.Gateway.TestMode)
}

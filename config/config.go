package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything needed to construct a gateway and its
// collaborators.
type Config struct {
	Gateway GatewayConfig
	Logger  LoggerConfig
}

// GatewayConfig holds Beanstream credentials. MerchantID is the merchant
// number; Username/Password must be enabled under order settings for
// capture, void and credit; PassCode authenticates the recurring API.
type GatewayConfig struct {
	MerchantID string
	Username   string
	Password   string
	PassCode   string
	TestMode   bool
	Timeout    int // request timeout in seconds
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level       string // debug, info, warn, error
	Development bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Gateway: GatewayConfig{
			MerchantID: getEnv("BEANSTREAM_MERCHANT_ID", ""),
			Username:   getEnv("BEANSTREAM_USERNAME", ""),
			Password:   getEnv("BEANSTREAM_PASSWORD", ""),
			PassCode:   getEnv("BEANSTREAM_PASS_CODE", ""),
			TestMode:   getEnvAsBool("BEANSTREAM_TEST_MODE", false),
			Timeout:    getEnvAsInt("BEANSTREAM_TIMEOUT", 30),
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
	}

	if cfg.Gateway.MerchantID == "" {
		return nil, fmt.Errorf("BEANSTREAM_MERCHANT_ID is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

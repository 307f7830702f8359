package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	GatewayAPIToken string
	Port            string
	Env             string
	LogLevel        string
	RelayAPIKey     string
	BodyLimit       int
}

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		GatewayAPIToken: getEnv("GATEWAYAPI_TOKEN", ""),
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		RelayAPIKey:     getEnv("RELAY_API_KEY", ""),
		BodyLimit:       getEnvInt("BODY_LIMIT", 1024*1024),
	}

	if cfg.GatewayAPIToken == "" {
		return nil, errors.New("GATEWAYAPI_TOKEN environment variable is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GATEWAYAPI_TOKEN", "token")
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("RELAY_API_KEY", "")
	t.Setenv("BODY_LIMIT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.GatewayAPIToken != "token" {
		t.Errorf("Expected token 'token', got '%s'", cfg.GatewayAPIToken)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got '%s'", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Expected default env development, got '%s'", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level info, got '%s'", cfg.LogLevel)
	}
	if cfg.BodyLimit != 1024*1024 {
		t.Errorf("Expected default body limit 1MiB, got %d", cfg.BodyLimit)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GATEWAYAPI_TOKEN", "token")
	t.Setenv("PORT", "9090")
	t.Setenv("RELAY_API_KEY", "relay-key")
	t.Setenv("BODY_LIMIT", "2048")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got '%s'", cfg.Port)
	}
	if cfg.RelayAPIKey != "relay-key" {
		t.Errorf("Expected relay key, got '%s'", cfg.RelayAPIKey)
	}
	if cfg.BodyLimit != 2048 {
		t.Errorf("Expected body limit 2048, got %d", cfg.BodyLimit)
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("GATEWAYAPI_TOKEN", "token")
	t.Setenv("BODY_LIMIT", "lots")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.BodyLimit != 1024*1024 {
		t.Errorf("Expected fallback body limit, got %d", cfg.BodyLimit)
	}
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("GATEWAYAPI_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Errorf("Expected error when GATEWAYAPI_TOKEN is missing")
	}
}

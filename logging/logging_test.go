package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New("production", "debug", &buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	logger.Info().Str("component", "test").Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "hello" || entry["component"] != "test" {
		t.Errorf("Unexpected log entry: %v", entry)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New("production", "WARN", &buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if logger.GetLevel() != zerolog.WarnLevel {
		t.Errorf("Expected warn level, got %s", logger.GetLevel())
	}

	logger.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Errorf("Expected info message to be filtered, got %q", buf.String())
	}
}

func TestNew_DefaultsToInfo(t *testing.T) {
	logger, err := New("production", "", &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if logger.GetLevel() != zerolog.InfoLevel {
		t.Errorf("Expected info level, got %s", logger.GetLevel())
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("production", "loud", nil); err == nil {
		t.Errorf("Expected error for unknown level")
	}
}

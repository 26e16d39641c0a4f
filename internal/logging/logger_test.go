package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "abroadctl.log")
	logger, err := NewLogger(path, "INFO")
	if err != nil {
		t.Fatalf("NewLogger() failed: %v", err)
	}
	logger.With("request_id", "r1").Info("api request", "method", "GET")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "api request" {
		t.Errorf("msg = %v, want %q", entry["msg"], "api request")
	}
	if entry["request_id"] != "r1" {
		t.Errorf("request_id = %v, want r1", entry["request_id"])
	}
	if entry["method"] != "GET" {
		t.Errorf("method = %v, want GET", entry["method"])
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abroadctl.log")
	logger, err := NewLogger(path, "ERROR")
	if err != nil {
		t.Fatalf("NewLogger() failed: %v", err)
	}
	logger.Info("quiet")
	logger.Error("loud")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if got := string(data); !json.Valid(data) || len(data) == 0 {
		t.Fatalf("unexpected log contents: %q", got)
	}
	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "loud" {
		t.Errorf("msg = %v, want only the ERROR entry", entry["msg"])
	}
}

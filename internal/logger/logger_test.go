package logger

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestInitFileOutput tests that Init routes log output to the configured file
func TestInitFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridge.log")

	defer func() {
		log.SetOutput(os.Stderr)
		GlobalLogging = nil
	}()

	Init(&LoggingConfig{Level: "info", File: path})
	LogInfo("file output check %d", 42)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "file output check 42") {
		t.Errorf("expected log message in file, got: %q", string(data))
	}
}

// TestInitSetsGlobalConfig tests that Init installs the level configuration
func TestInitSetsGlobalConfig(t *testing.T) {
	defer func() {
		log.SetOutput(os.Stderr)
		GlobalLogging = nil
	}()

	Init(&LoggingConfig{Level: "warn"})

	if GlobalLogging == nil || GlobalLogging.Level != "warn" {
		t.Fatal("expected Init to install the logging configuration")
	}
	if enabled(LogLevelInfo) {
		t.Error("info messages must be suppressed at warn level")
	}
	if !enabled(LogLevelError) {
		t.Error("error messages must pass at warn level")
	}
}

// TestShouldLogOrdering tests the level hierarchy
func TestShouldLogOrdering(t *testing.T) {
	tests := []struct {
		current, message string
		want             bool
	}{
		{"error", "error", true},
		{"error", "warn", false},
		{"info", "warn", true},
		{"info", "debug", false},
		{"trace", "debug", true},
		{"bogus", "debug", true}, // unknown level defaults to allowing
	}

	for _, tt := range tests {
		if got := shouldLog(tt.current, tt.message); got != tt.want {
			t.Errorf("shouldLog(%q, %q): expected %v, got %v", tt.current, tt.message, tt.want, got)
		}
	}
}

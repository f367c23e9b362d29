package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "verbose writes debug", verbose: true, wantDebug: true},
		{name: "quiet drops debug", verbose: false, wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.verbose)

			logger.Debug("loaded profile", String("path", "p.yml"))
			if got := strings.Contains(buf.String(), "loaded profile"); got != tt.wantDebug {
				t.Errorf("debug written = %v, want %v (output %q)", got, tt.wantDebug, buf.String())
			}

			buf.Reset()
			logger.Warn("line failed")
			if !strings.Contains(buf.String(), "line failed") {
				t.Errorf("warn not written: %q", buf.String())
			}
		})
	}
}

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	logger.Error("render failed", errors.New("bad scope"), String("role", "info"), Int("line", 3))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", buf.String(), err)
	}

	if entry["level"] != "error" {
		t.Errorf("level = %v, want error", entry["level"])
	}
	if entry["error"] != "bad scope" {
		t.Errorf("error = %v, want bad scope", entry["error"])
	}
	if entry["role"] != "info" {
		t.Errorf("role = %v, want info", entry["role"])
	}
	if entry["line"] != float64(3) {
		t.Errorf("line = %v, want 3", entry["line"])
	}
	if entry["component"] != "notify" {
		t.Errorf("component = %v, want notify", entry["component"])
	}
}

func TestNewNopLogger(t *testing.T) {
	// Must not panic.
	logger := NewNopLogger()
	logger.Info("ignored")
	logger.Error("ignored", errors.New("x"))
}

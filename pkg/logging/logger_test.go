package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 entries at WarnLevel, got %d: %q", len(lines), buf.String())
	}

	var entry LogEntry
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid JSON entry: %v", err)
	}
	if entry.Level != "WARN" || entry.Message != "warn message" {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestJSONLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	logger.Info("layout settled",
		Component("layout"),
		NodeCount(42),
		Alpha(0.0009),
		Ticks(117),
	)

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON entry: %v", err)
	}
	if entry.Fields["component"] != "layout" {
		t.Errorf("component field = %v", entry.Fields["component"])
	}
	if entry.Fields["nodes"] != float64(42) {
		t.Errorf("nodes field = %v", entry.Fields["nodes"])
	}
	if entry.Fields["ticks"] != float64(117) {
		t.Errorf("ticks field = %v", entry.Fields["ticks"])
	}
}

func TestChildLoggerInheritsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	child := logger.With(Component("viewport"))
	child.Info("zoom applied", Float64("scale", 2.5))

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON entry: %v", err)
	}
	if entry.Fields["component"] != "viewport" {
		t.Errorf("child logger lost parent field: %+v", entry.Fields)
	}
	if entry.Fields["scale"] != 2.5 {
		t.Errorf("scale field = %v", entry.Fields["scale"])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"warning", WarnLevel},
		{"ERROR", ErrorLevel},
		{"bogus", InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	// Must not panic and must swallow everything.
	logger.Info("ignored", NodeCount(1))
	logger.With(Component("render")).Error("also ignored")
}

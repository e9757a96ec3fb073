package logging

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
)

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe failed: %v", err)
	}
	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()

	w.Close()
	buf := make([]byte, 4096)
	n, _ := r.Read(buf)
	return string(buf[:n])
}

func TestLoggerInfoWritesJSONToStderr(t *testing.T) {
	l := New(LevelInfo)
	out := captureStderr(t, func() { l.Info("hello", "k", "v") })

	var entry map[string]any
	if err := json.Unmarshal([]byte(out), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, out)
	}
	if entry["message"] != "hello" || entry["level"] != "info" || entry["k"] != "v" {
		t.Errorf("log entry = %v", entry)
	}
}

func TestLoggerDebugSuppressedAboveDebugLevel(t *testing.T) {
	l := New(LevelInfo)
	out := captureStderr(t, func() { l.Debug("should not appear") })
	if out != "" {
		t.Errorf("expected Debug to be suppressed at info level, got %q", out)
	}
}

func TestLoggerDebugEmittedAtDebugLevel(t *testing.T) {
	l := New(LevelDebug)
	out := captureStderr(t, func() { l.Debug("visible") })
	if out == "" {
		t.Error("expected Debug to be emitted at debug level")
	}
}

func TestLoggerErrorIncludesErrorField(t *testing.T) {
	l := New(LevelInfo)
	out := captureStderr(t, func() { l.Error("failed", errors.New("boom")) })
	var entry map[string]any
	if err := json.Unmarshal([]byte(out), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["error"] != "boom" {
		t.Errorf("log entry = %v, want error field \"boom\"", entry)
	}
}

func TestLoggerWithFieldsPersistsAcrossCalls(t *testing.T) {
	l := New(LevelInfo).WithFields("request_id", "abc123")
	out := captureStderr(t, func() { l.Info("step") })
	var entry map[string]any
	json.Unmarshal([]byte(out), &entry)
	if entry["request_id"] != "abc123" {
		t.Errorf("log entry = %v, want persisted field request_id", entry)
	}
}

func TestSetLevelAffectsGlobalLogger(t *testing.T) {
	SetLevel(LevelDebug)
	defer SetLevel(LevelInfo)
	out := captureStderr(t, func() { GetLogger().Debug("now visible") })
	if out == "" {
		t.Error("expected global logger to emit Debug after SetLevel(LevelDebug)")
	}
}

package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func stopWatcher(t *testing.T, fw *FileWatcher) {
	t.Helper()
	if err := fw.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}

func TestNewFileWatcher(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	if fw == nil {
		t.Fatal("NewFileWatcher returned nil")
	}
	stopWatcher(t, fw)
}

func TestWatchInvalidPath(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer stopWatcher(t, fw)

	_, err = fw.Watch(context.Background(), "/nonexistent/dir/that/does/not/exist/file.toon")
	if err == nil {
		t.Error("expected error for nonexistent directory, got nil")
	}
}

func TestWatchStoppedWatcher(t *testing.T) {
	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	if err := fw.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "data.toon")
	if err := os.WriteFile(target, []byte("a: 1\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture file: %v", err)
	}

	if _, err := fw.Watch(context.Background(), target); err == nil {
		t.Error("expected error watching after Stop, got nil")
	}
}

func TestWatch_DetectsWrite(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "data.toon")
	if err := os.WriteFile(target, []byte("a: 1\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture file: %v", err)
	}

	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer stopWatcher(t, fw)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := fw.Watch(ctx, target)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(target, []byte("a: 2\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite fixture file: %v", err)
	}

	select {
	case evt := <-events:
		absTarget, _ := filepath.Abs(target)
		if evt.Path != absTarget {
			t.Errorf("event path = %q, want %q", evt.Path, absTarget)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "data.toon")
	other := filepath.Join(tmpDir, "other.toon")
	if err := os.WriteFile(target, []byte("a: 1\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture file: %v", err)
	}

	fw, err := NewFileWatcher()
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer stopWatcher(t, fw)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := fw.Watch(ctx, target)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(other, []byte("b: 2\n"), 0o644); err != nil {
		t.Fatalf("failed to write other file: %v", err)
	}

	select {
	case evt := <-events:
		t.Fatalf("unexpected event for unrelated file: %+v", evt)
	case <-time.After(300 * time.Millisecond):
		// expected: no event
	}
}

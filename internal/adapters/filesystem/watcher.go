// Package filesystem adapts fsnotify to the toon CLI's watch command.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileChangeEvent reports a single change the watcher observed on the
// file it is watching.
type FileChangeEvent struct {
	Path string
	Op   string // "create", "write", "remove", "rename", "chmod"
}

// FileWatcher watches a single file for changes, debouncing rapid events.
// It watches the file's containing directory rather than the file itself
// so it survives the remove+create cycle many editors use when saving.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	events  chan FileChangeEvent
	done    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	stopped bool
}

// NewFileWatcher creates a new file watcher.
func NewFileWatcher() (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	return &FileWatcher{
		watcher: w,
		events:  make(chan FileChangeEvent, 10),
		done:    make(chan struct{}),
	}, nil
}

// Watch starts monitoring path for changes. Returns a read-only channel of
// FileChangeEvent; the channel is closed when Stop is called.
func (fw *FileWatcher) Watch(ctx context.Context, path string) (<-chan FileChangeEvent, error) {
	fw.mu.Lock()
	if fw.stopped {
		fw.mu.Unlock()
		return nil, fmt.Errorf("watcher already stopped")
	}
	fw.mu.Unlock()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	dir := filepath.Dir(absPath)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("invalid directory: %s", dir)
	}

	if err := fw.watcher.Add(dir); err != nil {
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	fw.wg.Add(1)
	go func() {
		defer fw.wg.Done()
		fw.processEvents(ctx, absPath)
	}()

	return fw.events, nil
}

// Stop halts watching and closes the event channel.
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	if fw.stopped {
		fw.mu.Unlock()
		return nil
	}
	fw.stopped = true
	fw.mu.Unlock()

	close(fw.done)
	err := fw.watcher.Close()
	fw.wg.Wait()
	close(fw.events)

	if err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

// processEvents reads from fsnotify, filters to targetPath, and sends a
// debounced event once activity settles for 100ms.
func (fw *FileWatcher) processEvents(ctx context.Context, targetPath string) {
	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C // drain the initial tick

	var pending *FileChangeEvent

	for {
		select {
		case <-fw.done:
			return

		case <-ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			eventPath, err := filepath.Abs(event.Name)
			if err != nil || eventPath != targetPath {
				continue
			}
			evt := FileChangeEvent{Path: targetPath, Op: fw.mapOperation(event.Op)}
			pending = &evt
			debounceTimer.Reset(100 * time.Millisecond)

		case <-debounceTimer.C:
			if pending == nil {
				continue
			}
			evt := *pending
			pending = nil
			select {
			case fw.events <- evt:
			case <-fw.done:
				return
			case <-ctx.Done():
				return
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			_ = err
		}
	}
}

// mapOperation converts fsnotify.Op to a FileChangeEvent operation string.
func (fw *FileWatcher) mapOperation(op fsnotify.Op) string {
	switch {
	case op&fsnotify.Create == fsnotify.Create:
		return "create"
	case op&fsnotify.Write == fsnotify.Write:
		return "write"
	case op&fsnotify.Remove == fsnotify.Remove:
		return "remove"
	case op&fsnotify.Rename == fsnotify.Rename:
		return "rename"
	case op&fsnotify.Chmod == fsnotify.Chmod:
		return "chmod"
	default:
		return "write"
	}
}

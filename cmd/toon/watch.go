package main

import (
	"context"
	"fmt"

	"github.com/madstone-tech/toon/internal/adapters/cli"
	"github.com/madstone-tech/toon/internal/adapters/filesystem"
	"github.com/madstone-tech/toon/internal/adapters/jsontext"
	"github.com/madstone-tech/toon/internal/adapters/logging"
	"github.com/madstone-tech/toon/internal/codec"
)

// WatchCommand watches a single TOON or JSON file and re-validates it (or,
// for a JSON source, re-encodes it as TOON) on every write, reporting the
// outcome; the re-encoded text is not written to any file.
type WatchCommand struct {
	path     string
	toFormat string // "toon" or "json", inferred from extension if empty
}

// NewWatchCommand creates a new watch command over path.
func NewWatchCommand(path string) *WatchCommand {
	return &WatchCommand{path: path}
}

// WithTarget overrides the inferred conversion target format.
func (wc *WatchCommand) WithTarget(format string) *WatchCommand {
	wc.toFormat = format
	return wc
}

// Execute blocks, re-running the conversion/validation on every write to
// path until ctx is cancelled.
func (wc *WatchCommand) Execute(ctx context.Context) error {
	logger := logging.GetLogger()
	reporter := cli.NewProgressReporter()

	fw, err := filesystem.NewFileWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer fw.Stop()

	events, err := fw.Watch(ctx, wc.path)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", wc.path, err)
	}

	target := wc.toFormat
	if target == "" {
		target = oppositeFormat(formatForExt(wc.path, "toon"))
	}

	reporter.ReportInfo(fmt.Sprintf("watching %s", wc.path))
	wc.process(reporter, logger, target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-events:
			if !ok {
				return nil
			}
			logger.Debug("file event", "path", evt.Path, "op", evt.Op)
			if evt.Op == "remove" {
				continue
			}
			wc.process(reporter, logger, target)
		}
	}
}

func (wc *WatchCommand) process(reporter *cli.ProgressReporter, logger logging.Interface, target string) {
	data, err := readInput(wc.path)
	if err != nil {
		reporter.ReportError(err)
		return
	}

	switch target {
	case "toon":
		if _, err := jsontext.FromJSONText(data); err != nil {
			reporter.ReportError(err)
			logger.Error("encode failed", err, "path", wc.path)
			return
		}
	default:
		if _, err := codec.Decode(string(data), codec.DefaultDecodeOptions()); err != nil {
			reporter.ReportError(err)
			logger.Error("validation failed", err, "path", wc.path)
			return
		}
	}
	reporter.ReportSuccess(fmt.Sprintf("%s ok", wc.path))
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/madstone-tech/toon/internal/adapters/cli"
	"github.com/madstone-tech/toon/internal/codec"
)

// ValidateCommand checks that one or more files decode as well-formed TOON.
type ValidateCommand struct {
	paths    []string
	strict   bool
	exitCode bool
}

// NewValidateCommand creates a new validate command over the given paths.
func NewValidateCommand(paths []string) *ValidateCommand {
	return &ValidateCommand{paths: paths, strict: true}
}

// WithStrict toggles strict-mode diagnostics.
func (vc *ValidateCommand) WithStrict(strict bool) *ValidateCommand {
	vc.strict = strict
	return vc
}

// WithExitCode makes Execute return an error (non-zero exit) when any
// file fails validation, instead of just printing the report.
func (vc *ValidateCommand) WithExitCode(enabled bool) *ValidateCommand {
	vc.exitCode = enabled
	return vc
}

// Execute validates every configured path and prints a report.
func (vc *ValidateCommand) Execute(ctx context.Context) error {
	opts := codec.BuildDecodeOptions(codec.WithStrictMode(vc.strict))

	results := make([]cli.ValidationResult, 0, len(vc.paths))
	failed := 0
	for _, path := range vc.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			results = append(results, cli.ValidationResult{Path: path, Err: err})
			failed++
			continue
		}
		if _, err := codec.Decode(string(data), opts); err != nil {
			results = append(results, cli.ValidationResult{Path: path, Err: err})
			failed++
			continue
		}
		results = append(results, cli.ValidationResult{Path: path})
	}

	cli.NewReportFormatter().PrintValidationReport(results)

	if failed > 0 && vc.exitCode {
		return fmt.Errorf("validation failed for %d of %d file(s)", failed, len(vc.paths))
	}
	return nil
}

// Package config handles application configuration and setup
package config

import (
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with the level selected by the debug and quiet options
func CreateLogger(opts options.Program) *log.Logger {
	cfg := log.DefaultConfig()
	if opts.Debug {
		cfg.Level = log.DebugLevel
	} else if opts.Quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// RedirectOutput appends everything written to the standard output streams to
// the given file, leaving the terminal to the frontend. The returned function
// restores the original streams and closes the file.
func RedirectOutput(path string) (func() error, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file '%s': %w", path, err)
	}

	stdout, stderr := os.Stdout, os.Stderr
	os.Stdout = file
	os.Stderr = file

	restore := func() error {
		os.Stdout = stdout
		os.Stderr = stderr
		if err := file.Close(); err != nil {
			return fmt.Errorf("closing log file '%s': %w", path, err)
		}
		return nil
	}
	return restore, nil
}

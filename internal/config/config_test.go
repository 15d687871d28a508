package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	tests := []struct {
		name string
		opts options.Program
	}{
		{"default", options.Program{}},
		{"debug", options.Program{Flags: options.Flags{Debug: true}}},
		{"quiet", options.Program{Flags: options.Flags{Quiet: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, CreateLogger(tt.opts))
		})
	}
}

func TestRedirectOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chip8.log")
	stdout, stderr := os.Stdout, os.Stderr

	restore, err := RedirectOutput(path)
	assert.NoError(t, err)
	_, _ = fmt.Fprintln(os.Stdout, "to stdout")
	_, _ = fmt.Fprintln(os.Stderr, "to stderr")
	assert.NoError(t, restore())

	assert.True(t, os.Stdout == stdout)
	assert.True(t, os.Stderr == stderr)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "to stdout")
	assert.Contains(t, string(data), "to stderr")
}

func TestRedirectOutputInvalidPath(t *testing.T) {
	_, err := RedirectOutput(filepath.Join(t.TempDir(), "missing", "chip8.log"))
	assert.ErrorContains(t, err, "opening log file")
}

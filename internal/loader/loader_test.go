package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load cartridge file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x12, 0x34, 0x56, 0x78})
		defer os.Remove(tmpFile) //nolint:errcheck // test cleanup

		data, err := New().Load(tmpFile, chip8.ProgramStart)
		assert.NoError(t, err)
		assert.Equal(t, [4]byte{0x12, 0x34, 0x56, 0x78}, [4]byte(data))
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load("/nonexistent/file.ch8", chip8.ProgramStart)
		assert.ErrorContains(t, err, "opening file")
	})

	t.Run("error on empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)
		defer os.Remove(tmpFile) //nolint:errcheck // test cleanup

		_, err := New().Load(tmpFile, chip8.ProgramStart)
		assert.True(t, errors.Is(err, ErrEmptyCartridge))
	})
}

func TestLoadFromReader(t *testing.T) {
	maxSize := chip8.MemorySize - chip8.ProgramStart

	tests := []struct {
		name    string
		size    int
		address int
		wantErr error
	}{
		{"fills memory", maxSize, chip8.ProgramStart, nil},
		{"one byte too large", maxSize + 1, chip8.ProgramStart, ErrCartridgeTooLarge},
		{"last address", 1, chip8.MemorySize - 1, nil},
		{"loaded at zero", chip8.MemorySize, 0, nil},
		{"empty", 0, chip8.ProgramStart, ErrEmptyCartridge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := New().LoadFromReader(bytes.NewReader(make([]byte, tt.size)), tt.address)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			assert.NoError(t, err)
			assert.Len(t, data, tt.size)
		})
	}
}

func TestLoadFromReaderInvalidAddress(t *testing.T) {
	for _, address := range []int{-1, chip8.MemorySize} {
		_, err := New().LoadFromReader(bytes.NewReader([]byte{0x00}), address)
		assert.ErrorContains(t, err, "invalid base address")
	}
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}

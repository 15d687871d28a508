// Package loader handles cartridge file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
)

var (
	// ErrEmptyCartridge is returned for a cartridge file without content.
	ErrEmptyCartridge = errors.New("cartridge is empty")
	// ErrCartridgeTooLarge is returned for a cartridge that does not fit into
	// memory at its base address.
	ErrCartridgeTooLarge = errors.New("cartridge does not fit into memory")
)

// Loader handles loading cartridge files from disk.
type Loader struct{}

// New creates a new cartridge loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the cartridge file and checks that it fits into memory when
// loaded at the given base address.
func (l *Loader) Load(path string, address int) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.LoadFromReader(file, address)
}

// LoadFromReader reads a cartridge image from the reader, reading at most one
// byte more than the available memory above the base address.
func (l *Loader) LoadFromReader(reader io.Reader, address int) ([]byte, error) {
	available := chip8.MemorySize - address
	if address < 0 || available <= 0 {
		return nil, fmt.Errorf("invalid base address $%03X", address)
	}

	data, err := io.ReadAll(io.LimitReader(reader, int64(available)+1))
	if err != nil {
		return nil, fmt.Errorf("reading cartridge: %w", err)
	}

	switch {
	case len(data) == 0:
		return nil, ErrEmptyCartridge
	case len(data) > available:
		return nil, fmt.Errorf("%w: more than %d bytes available at address $%03X",
			ErrCartridgeTooLarge, available, address)
	}
	return data, nil
}

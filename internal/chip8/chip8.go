package chip8

import "fmt"

// CHIP-8 machine constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 0x10

	// FlagRegister is the index of VF, which is overwritten as a side effect of
	// arithmetic, shift and draw instructions.
	FlagRegister = 0xF

	// ProgramStart is the conventional address that cartridges are loaded to.
	ProgramStart = 0x200

	// OpcodeSize is the size of an instruction in bytes.
	OpcodeSize = 2

	// DisplayWidth is the width of the display in pixels.
	DisplayWidth = 64

	// DisplayHeight is the height of the display in pixels.
	DisplayHeight = 32

	// SpriteWidth is the width in pixels of a sprite row, one bit per pixel.
	SpriteWidth = 8

	// KeyCount is the number of keys on the hex key pad.
	KeyCount = 0x10
)

// Frame is the monochrome display buffer, indexed by row then column.
type Frame [DisplayHeight][DisplayWidth]bool

// Key identifies a key of the hex key pad.
type Key uint8

// KeyQuit is a reserved key signalling that the user requested to quit.
// It is distinct from all 16 pad keys.
const KeyQuit Key = 0xFF

// IsPad returns whether the key is one of the 16 hex pad keys.
func (k Key) IsPad() bool {
	return k < KeyCount
}

// String returns the key name.
func (k Key) String() string {
	if k == KeyQuit {
		return "quit"
	}
	return fmt.Sprintf("%X", uint8(k))
}

// KeyEvent is a key press or release reported by an input frontend.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// String returns a readable representation of the event.
func (e KeyEvent) String() string {
	if e.Pressed {
		return "pressed(" + e.Key.String() + ")"
	}
	return "released(" + e.Key.String() + ")"
}

// Package font contains the default hexadecimal digit font.
package font

// Address is the default memory address that the font is loaded to.
const Address = 0x050

// GlyphSize is the size of a single glyph in bytes, one byte per row.
const GlyphSize = 5

// Size is the size of the font in bytes.
const Size = 16 * GlyphSize

// glyphs contains the 4x5 pixel sprites for the digits 0-F, the upper nibble
// of each row byte holds the pixels.
var glyphs = [Size]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Default returns a copy of the default font data.
func Default() []byte {
	data := make([]byte, len(glyphs))
	copy(data, glyphs[:])
	return data
}

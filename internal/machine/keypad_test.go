package machine

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestGetKeyRoundTrip(t *testing.T) {
	m := newTestMachine(t, 0xF30A) // ld V3, K

	steps(t, m, 1)
	assert.Equal(t, KeyWaitPaused, m.KeyWait())
	assert.Equal(t, uint16(chip8.ProgramStart), m.pc)
	assert.True(t, m.keyWait.blocked())

	m.handleKeyEvents([]chip8.KeyEvent{pressKey(7)})
	assert.Equal(t, KeyWaitPressed, m.KeyWait())
	assert.Equal(t, chip8.Key(7), m.keyWait.key)
	assert.True(t, m.keys[7])
	assert.True(t, m.keyWait.blocked())

	m.handleKeyEvents([]chip8.KeyEvent{releaseKey(7)})
	assert.Equal(t, KeyWaitReleased, m.KeyWait())
	assert.False(t, m.keys[7])
	assert.False(t, m.keyWait.blocked())

	steps(t, m, 1)
	assert.Equal(t, KeyWaitIdle, m.KeyWait())
	assert.Equal(t, uint8(7), m.registers[3])
	assert.Equal(t, uint16(chip8.ProgramStart+2), m.pc)
}

func TestGetKeyIgnoresOtherKeyRelease(t *testing.T) {
	m := newTestMachine(t, 0xF30A)
	steps(t, m, 1)

	m.handleKeyEvents([]chip8.KeyEvent{pressKey(7), pressKey(2)})
	assert.Equal(t, KeyWaitPressed, m.KeyWait())
	assert.Equal(t, chip8.Key(7), m.keyWait.key)

	m.handleKeyEvents([]chip8.KeyEvent{releaseKey(2)})
	assert.Equal(t, KeyWaitPressed, m.KeyWait())

	m.handleKeyEvents([]chip8.KeyEvent{releaseKey(7)})
	assert.Equal(t, KeyWaitReleased, m.KeyWait())
}

func TestKeyEventsWhileIdle(t *testing.T) {
	m := newTestMachine(t)

	m.handleKeyEvents([]chip8.KeyEvent{pressKey(0xA), pressKey(0x1)})
	assert.Equal(t, KeyWaitIdle, m.KeyWait())
	assert.True(t, m.keys[0xA])
	assert.True(t, m.keys[0x1])

	m.handleKeyEvents([]chip8.KeyEvent{releaseKey(0xA)})
	assert.Equal(t, KeyWaitIdle, m.KeyWait())
	assert.False(t, m.keys[0xA])
	assert.True(t, m.keys[0x1])
}

func TestQuitKey(t *testing.T) {
	m := newTestMachine(t)
	m.running = true

	m.handleKeyEvents([]chip8.KeyEvent{releaseKey(chip8.KeyQuit)})
	assert.True(t, m.running)

	m.handleKeyEvents([]chip8.KeyEvent{pressKey(chip8.KeyQuit)})
	assert.False(t, m.running)
	assert.Equal(t, [chip8.KeyCount]bool{}, m.keys)
}

func TestSkipKey(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint16
		pressed  bool
		wantSkip bool
	}{
		{"skp pressed", 0xE19E, true, true},
		{"skp released", 0xE19E, false, false},
		{"sknp pressed", 0xE1A1, true, false},
		{"sknp released", 0xE1A1, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine(t, tt.opcode)
			m.registers[1] = 0x0C
			m.keys[0xC] = tt.pressed

			steps(t, m, 1)
			expected := uint16(chip8.ProgramStart + 2)
			if tt.wantSkip {
				expected += 2
			}
			assert.Equal(t, expected, m.pc)
		})
	}
}

func TestSkipKeyUsesLowNibble(t *testing.T) {
	m := newTestMachine(t, 0xE19E)
	m.registers[1] = 0xF5
	m.keys[0x5] = true

	steps(t, m, 1)
	assert.Equal(t, uint16(chip8.ProgramStart+4), m.pc)
}

func TestKeyWaitStateString(t *testing.T) {
	assert.Equal(t, "idle", KeyWaitIdle.String())
	assert.Equal(t, "paused", KeyWaitPaused.String())
	assert.Equal(t, "pressed", KeyWaitPressed.String())
	assert.Equal(t, "released", KeyWaitReleased.String())
}

package terminal

import (
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

var testTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func press(key chip8.Key) chip8.KeyEvent {
	return chip8.KeyEvent{Key: key, Pressed: true}
}

func release(key chip8.Key) chip8.KeyEvent {
	return chip8.KeyEvent{Key: key}
}

// assertEvents compares the events against the expected ones.
func assertEvents(t *testing.T, expected, events []chip8.KeyEvent) {
	t.Helper()
	assert.Len(t, events, len(expected))
	for i := range min(len(expected), len(events)) {
		assert.Equal(t, expected[i], events[i])
	}
}

func TestKeyboardKitty(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []chip8.KeyEvent
	}{
		{"press", "\x1b[119u", []chip8.KeyEvent{press(0x5)}},
		{"press with event type", "\x1b[119;1:1u", []chip8.KeyEvent{press(0x5)}},
		{"release", "\x1b[119;1:3u", []chip8.KeyEvent{release(0x5)}},
		{"repeat ignored", "\x1b[119;1:2u", nil},
		{"shifted key", "\x1b[118:86;2u", []chip8.KeyEvent{press(0xF)}},
		{"escape quits", "\x1b[27u", []chip8.KeyEvent{press(chip8.KeyQuit)}},
		{"escape release ignored", "\x1b[27;1:3u", nil},
		{"unmapped key", "\x1b[112u", nil},
		{"other sequence", "\x1b[A", nil},
		{"invalid key code", "\x1b[99999999999999999999u", nil},
		{"press and release", "\x1b[49u\x1b[49;1:3u", []chip8.KeyEvent{press(0x1), release(0x1)}},
		{"caps lock", "\x1b[119;65u", []chip8.KeyEvent{press(0x5)}},
		{"ctrl+c quits", "\x1b[99;5u", []chip8.KeyEvent{press(chip8.KeyQuit)}},
		{"ctrl+c with caps lock quits", "\x1b[99;69:1u", []chip8.KeyEvent{press(chip8.KeyQuit)}},
		{"ctrl+c release ignored", "\x1b[99;5:3u", nil},
		{"ctrl+shift+c ignored", "\x1b[99;6u", nil},
		{"ctrl key ignored", "\x1b[119;5u", nil},
		{"alt key ignored", "\x1b[119;3u", nil},
		{"invalid modifiers", "\x1b[119;0u", nil},
		{"flags response", "\x1b[?11u", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := newKeyboard()
			assertEvents(t, tt.want, k.feed([]byte(tt.input), testTime))
			assert.Len(t, k.held, 0)
		})
	}
}

func TestKeyboardSplitSequence(t *testing.T) {
	k := newKeyboard()

	assert.Len(t, k.feed([]byte("\x1b[11"), testTime), 0)
	events := k.feed([]byte("9;1:3u"), testTime)
	assertEvents(t, []chip8.KeyEvent{release(0x5)}, events)
	assert.Len(t, k.pending, 0)
}

func TestKeyboardSplitEscape(t *testing.T) {
	k := newKeyboard()
	k.feed([]byte("\x1b[?11u"), testTime)
	assert.True(t, k.kitty)

	assert.Len(t, k.feed([]byte("\x1b"), testTime), 0)
	assert.Equal(t, []byte{escape}, k.pending)

	events := k.feed([]byte("[49u"), testTime)
	assertEvents(t, []chip8.KeyEvent{press(0x1)}, events)
	assert.Len(t, k.pending, 0)
}

func TestKeyboardPlain(t *testing.T) {
	k := newKeyboard()

	events := k.feed([]byte("wQ5"), testTime)
	assertEvents(t, []chip8.KeyEvent{press(0x5), press(0x4)}, events)

	deadline, ok := k.nextRelease()
	assert.True(t, ok)
	assert.Equal(t, testTime.Add(holdDuration), deadline)

	// repeated character extends the hold duration without a second press
	later := testTime.Add(holdDuration / 2)
	assert.Len(t, k.feed([]byte("w"), later), 0)

	events = k.expire(testTime.Add(holdDuration))
	assertEvents(t, []chip8.KeyEvent{release(0x4)}, events)

	events = k.expire(later.Add(holdDuration))
	assertEvents(t, []chip8.KeyEvent{release(0x5)}, events)

	_, ok = k.nextRelease()
	assert.False(t, ok)
}

func TestKeyboardPlainQuit(t *testing.T) {
	for _, input := range []string{"\x1b", "\x03"} {
		k := newKeyboard()
		events := k.feed([]byte(input), testTime)
		assertEvents(t, []chip8.KeyEvent{press(chip8.KeyQuit)}, events)
		assert.Len(t, k.held, 0)
		assert.False(t, k.kitty)
	}
}

func TestKeyboardKittyReleasesHeldKey(t *testing.T) {
	k := newKeyboard()
	k.feed([]byte("a"), testTime)

	events := k.feed([]byte("\x1b[97;1:3u"), testTime)
	assertEvents(t, []chip8.KeyEvent{release(0x7)}, events)
	assert.Len(t, k.held, 0)
}

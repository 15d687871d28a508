package terminal

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
)

const (
	escape    = 0x1B
	interrupt = 0x03 // ctrl+c, delivered as a byte in raw mode

	// holdDuration is the time a key stays pressed when the terminal reports
	// only key presses.
	holdDuration = 200 * time.Millisecond

	maxPending = 32 // maximum length of an incomplete escape sequence
)

// kitty keyboard protocol event types.
const (
	kittyPress   = 1
	kittyRepeat  = 2
	kittyRelease = 3
)

// kitty keyboard protocol modifier bits, the modifier field is encoded as
// 1 + bits. Shift, caps lock and num lock do not change the pad key.
const (
	kittyAlt   = 0x02
	kittyCtrl  = 0x04
	kittySuper = 0x08
	kittyHyper = 0x10
	kittyMeta  = 0x20
	kittyLocks = 0x40 | 0x80 // caps lock, num lock

	// kittyCommand contains the modifiers that turn a key into a shortcut
	// that is not forwarded to the key pad.
	kittyCommand = kittyAlt | kittyCtrl | kittySuper | kittyHyper | kittyMeta
)

const codeC = 'c'

// keyboard decodes terminal input into key events. Terminals that support the
// kitty keyboard protocol report presses and releases as CSI u sequences,
// other terminals send plain characters which are held pressed for a short
// duration.
type keyboard struct {
	pending []byte                  // incomplete escape sequence of the last read
	held    map[chip8.Key]time.Time // release deadlines of plain character presses
	kitty   bool                    // terminal has sent kitty protocol sequences
}

func newKeyboard() *keyboard {
	return &keyboard{
		held: map[chip8.Key]time.Time{},
	}
}

// feed decodes the input data received at the given time.
func (k *keyboard) feed(data []byte, now time.Time) []chip8.KeyEvent {
	buf := append(k.pending, data...)
	k.pending = nil

	var events []chip8.KeyEvent
	for i := 0; i < len(buf); {
		b := buf[i]
		switch {
		case b == escape && i+1 < len(buf) && buf[i+1] == '[':
			end := sequenceEnd(buf, i+2)
			if end < 0 {
				if len(buf)-i <= maxPending {
					k.pending = append([]byte(nil), buf[i:]...)
				}
				return events
			}
			if buf[end] == 'u' {
				events = k.kittyKey(events, string(buf[i+2:end]))
			}
			i = end + 1

		case b == escape && i+1 == len(buf) && k.kitty:
			// the escape key is reported as a CSI u sequence, a lone escape
			// byte is the start of a sequence that continues in the next read
			k.pending = []byte{escape}
			return events

		case b == interrupt:
			events = append(events, chip8.KeyEvent{Key: chip8.KeyQuit, Pressed: true})
			i++

		default:
			if key, ok := chip8.MapKey(rune(b)); ok {
				events = k.plainKey(events, key, now)
			}
			i++
		}
	}
	return events
}

// expire releases plain character presses whose hold duration elapsed.
func (k *keyboard) expire(now time.Time) []chip8.KeyEvent {
	var events []chip8.KeyEvent
	for _, key := range k.heldKeys() {
		if !now.Before(k.held[key]) {
			delete(k.held, key)
			events = append(events, chip8.KeyEvent{Key: key})
		}
	}
	return events
}

// nextRelease returns the earliest release deadline of a held key.
func (k *keyboard) nextRelease() (time.Time, bool) {
	var next time.Time
	for _, deadline := range k.held {
		if next.IsZero() || deadline.Before(next) {
			next = deadline
		}
	}
	return next, !next.IsZero()
}

func (k *keyboard) heldKeys() []chip8.Key {
	keys := make([]chip8.Key, 0, len(k.held))
	for key := range k.held {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// plainKey handles a key press without release information. Repeated
// characters of a held key extend its hold duration.
func (k *keyboard) plainKey(events []chip8.KeyEvent, key chip8.Key, now time.Time) []chip8.KeyEvent {
	if key == chip8.KeyQuit {
		return append(events, chip8.KeyEvent{Key: key, Pressed: true})
	}
	_, held := k.held[key]
	k.held[key] = now.Add(holdDuration)
	if held {
		return events
	}
	return append(events, chip8.KeyEvent{Key: key, Pressed: true})
}

// kittyKey handles the parameters of a CSI u sequence in the format
// keycode[:alternates][;modifiers[:event]]. A response to the flags query
// starts with a question mark and only marks the protocol as active.
func (k *keyboard) kittyKey(events []chip8.KeyEvent, params string) []chip8.KeyEvent {
	k.kitty = true
	if strings.HasPrefix(params, "?") {
		return events
	}

	fields := strings.Split(params, ";")
	codeField, _, _ := strings.Cut(fields[0], ":")
	code, err := strconv.Atoi(codeField)
	if err != nil {
		return events
	}

	modifiers, event := 0, kittyPress
	if len(fields) > 1 {
		modifierField, eventField, found := strings.Cut(fields[1], ":")
		if modifierField != "" {
			value, err := strconv.Atoi(modifierField)
			if err != nil || value < 1 {
				return events
			}
			modifiers = value - 1
		}
		if found {
			if event, err = strconv.Atoi(eventField); err != nil {
				return events
			}
		}
	}

	key, ok := commandKey(code, modifiers)
	if !ok {
		return events
	}

	delete(k.held, key)
	switch event {
	case kittyPress:
		return append(events, chip8.KeyEvent{Key: key, Pressed: true})
	case kittyRelease:
		if key == chip8.KeyQuit {
			return events
		}
		return append(events, chip8.KeyEvent{Key: key})
	default: // kittyRepeat
		return events
	}
}

// commandKey maps a kitty key code with its modifier bits to a key. Ctrl+C
// quits, all other keys with a command modifier are ignored.
func commandKey(code, modifiers int) (chip8.Key, bool) {
	if modifiers&kittyCommand == 0 {
		return chip8.MapKey(rune(code))
	}
	if code == codeC && modifiers&^kittyLocks == kittyCtrl {
		return chip8.KeyQuit, true
	}
	return 0, false
}

// sequenceEnd returns the index of the final byte of a CSI sequence whose
// parameters start at the given index, or -1 if the sequence is incomplete.
func sequenceEnd(buf []byte, start int) int {
	for i := start; i < len(buf); i++ {
		if buf[i] >= 0x40 && buf[i] <= 0x7E {
			return i
		}
	}
	return -1
}

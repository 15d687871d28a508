package machine

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// KeyWaitState is the state of the key wait instruction.
type KeyWaitState uint8

// Key wait states. A key wait instruction is satisfied by a full press and
// release cycle of one key, instruction execution is suspended while the
// machine is paused or the key is pressed.
const (
	KeyWaitIdle     KeyWaitState = iota // no key wait pending
	KeyWaitPaused                       // waiting for a key press
	KeyWaitPressed                      // waiting for the release of the pressed key
	KeyWaitReleased                     // key cycle complete, resumed by the next step
)

var keyWaitStateNames = map[KeyWaitState]string{
	KeyWaitIdle:     "idle",
	KeyWaitPaused:   "paused",
	KeyWaitPressed:  "pressed",
	KeyWaitReleased: "released",
}

// String returns the state name.
func (s KeyWaitState) String() string {
	return keyWaitStateNames[s]
}

type keyWait struct {
	state KeyWaitState
	key   chip8.Key // valid in pressed and released state
}

// blocked returns whether instruction execution is suspended.
func (w keyWait) blocked() bool {
	return w.state == KeyWaitPaused || w.state == KeyWaitPressed
}

// getKey executes the key wait instruction. The first execution pauses the
// machine without advancing the program counter, the execution after the
// key was released stores the key and resumes.
func (m *Machine) getKey(x uint8) error {
	switch m.keyWait.state {
	case KeyWaitIdle:
		m.logger.Debug("Waiting for key", log.String("register", fmt.Sprintf("V%X", x)))
		m.keyWait = keyWait{state: KeyWaitPaused}
		return nil

	case KeyWaitReleased:
		key := m.keyWait.key
		m.logger.Debug("Key wait complete", log.String("key", key.String()))
		m.keyWait = keyWait{state: KeyWaitIdle}
		if err := m.setRegister(x, uint8(key)); err != nil {
			return err
		}
		return m.advance()

	default:
		return nil
	}
}

// skipKey executes the key state skip instructions. The low nibble of VX
// selects the key.
func (m *Machine) skipKey(op chip8.Operation) error {
	vx, err := m.register(op.X)
	if err != nil {
		return err
	}
	key := vx & 0x0F
	pressed := m.keys[key]
	m.logger.Debug("Checking key",
		log.String("key", chip8.Key(key).String()),
		log.String("pressed", fmt.Sprint(pressed)))

	return m.skipIf(pressed == (op.Kind == chip8.SkipKey))
}

// handleKeyEvents updates the key states and advances the key wait state machine.
func (m *Machine) handleKeyEvents(events []chip8.KeyEvent) {
	if len(events) > 0 {
		m.logger.Debug("Key events", log.String("events", fmt.Sprint(events)))
	}

	for _, event := range events {
		key := event.Key
		if key == chip8.KeyQuit {
			if event.Pressed {
				m.running = false
			}
			continue
		}
		if !key.IsPad() {
			continue
		}

		if event.Pressed {
			if m.keyWait.state == KeyWaitPaused {
				m.keyWait = keyWait{state: KeyWaitPressed, key: key}
			}
			m.keys[key] = true
			continue
		}

		if m.keyWait.state == KeyWaitPressed && m.keyWait.key == key {
			m.keyWait.state = KeyWaitReleased
		}
		m.keys[key] = false
	}
}

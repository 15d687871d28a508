package machine

import (
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// TickRate is the interval of the delay and sound timer decrements,
// independent of the instruction cycle.
const TickRate = 16 * time.Millisecond

func (m *Machine) resetTick() {
	m.tickCount = 0
	m.tickAt = m.clock.Now()
}

// tickDue returns whether a timer tick interval has elapsed.
func (m *Machine) tickDue() bool {
	return m.clock.Now().Sub(m.tickAt) >= TickRate
}

// nextTickLeft returns the time until the next timer tick is due.
func (m *Machine) nextTickLeft() time.Duration {
	elapsed := m.clock.Now().Sub(m.tickAt)
	if elapsed >= TickRate {
		return 0
	}
	return TickRate - elapsed
}

// tick decrements both timers, a sound timer reaching zero stops the tone.
func (m *Machine) tick() {
	m.tickAt = m.clock.Now()
	m.tickCount++

	if m.delayTimer > 0 {
		m.delayTimer--
	}
	if m.soundTimer > 0 {
		m.soundTimer--
		if m.soundTimer == 0 {
			m.tone.SetTone(false)
		}
	}
}

// timerAccess executes the timer read and write instructions.
func (m *Machine) timerAccess(op chip8.Operation) error {
	if op.Kind == chip8.GetDelayTimer {
		if err := m.setRegister(op.X, m.delayTimer); err != nil {
			return err
		}
		return m.advance()
	}

	vx, err := m.register(op.X)
	if err != nil {
		return err
	}
	switch op.Kind {
	case chip8.SetDelayTimer:
		m.delayTimer = vx
	case chip8.SetSoundTimer:
		m.soundTimer = vx
		m.tone.SetTone(vx > 0)
	default:
		return fmt.Errorf("unsupported timer operation '%s'", op)
	}
	return m.advance()
}

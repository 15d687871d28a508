package machine

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// indexAccess executes the index register instructions.
func (m *Machine) indexAccess(op chip8.Operation) error {
	var value int

	switch op.Kind {
	case chip8.SetIndex:
		value = int(op.Address)

	case chip8.AddIndex:
		vx, err := m.register(op.X)
		if err != nil {
			return err
		}
		value = int(m.index) + int(vx)

	case chip8.SetIndexFont:
		vx, err := m.register(op.X)
		if err != nil {
			return err
		}
		// the digit is scaled by the font base address instead of the glyph size
		font := int(m.fontAddress)
		value = font + int(vx)*font

	default:
		return fmt.Errorf("unsupported index operation '%s'", op)
	}

	if err := m.setIndex(value); err != nil {
		return err
	}
	return m.advance()
}

// storeBCD stores the decimal digits of VX at I, I+1 and I+2, hundreds first.
func (m *Machine) storeBCD(x uint8) error {
	vx, err := m.register(x)
	if err != nil {
		return err
	}
	digits := [3]byte{vx / 100, (vx / 10) % 10, vx % 10}
	for i, digit := range digits {
		if err := m.writeMemory(int(m.index)+i, digit); err != nil {
			return err
		}
	}
	return m.advance()
}

// store copies the registers V0 to VX to memory starting at I. I is set to
// the address following the last written byte.
func (m *Machine) store(x uint8) error {
	address := int(m.index)
	for id := uint8(0); id <= x; id++ {
		value, err := m.register(id)
		if err != nil {
			return err
		}
		if err := m.writeMemory(address, value); err != nil {
			return err
		}
		address++
	}
	if err := m.setIndex(address); err != nil {
		return err
	}
	return m.advance()
}

// restore fills the registers V0 to VX from memory starting at I. I is set
// to the address following the last read byte.
func (m *Machine) restore(x uint8) error {
	address := int(m.index)
	for id := uint8(0); id <= x; id++ {
		value, err := m.readMemory(address)
		if err != nil {
			return err
		}
		if err := m.setRegister(id, value); err != nil {
			return err
		}
		address++
	}
	if err := m.setIndex(address); err != nil {
		return err
	}
	return m.advance()
}

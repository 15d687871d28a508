package machine

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
)

func (m *Machine) readMemory(address int) (byte, error) {
	if address < 0 || address >= chip8.MemorySize {
		return 0, fmt.Errorf("reading memory at address $%04X: %w", address, ErrMemoryOverflow)
	}
	return m.memory[address], nil
}

func (m *Machine) writeMemory(address int, value byte) error {
	if address < 0 || address >= chip8.MemorySize {
		return fmt.Errorf("writing memory at address $%04X: %w", address, ErrMemoryOverflow)
	}
	m.memory[address] = value
	return nil
}

// readOpcode reads the instruction word at the address, most significant byte first.
func (m *Machine) readOpcode(address int) (uint16, error) {
	high, err := m.readMemory(address)
	if err != nil {
		return 0, err
	}
	low, err := m.readMemory(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(high)<<8 | uint16(low), nil
}

func (m *Machine) register(id uint8) (uint8, error) {
	if id >= chip8.RegisterCount {
		return 0, fmt.Errorf("reading register V%d: %w", id, ErrRegisterIndexOverflow)
	}
	return m.registers[id], nil
}

func (m *Machine) setRegister(id, value uint8) error {
	if id >= chip8.RegisterCount {
		return fmt.Errorf("writing register V%d: %w", id, ErrRegisterIndexOverflow)
	}
	m.registers[id] = value
	return nil
}

// registerPair returns the values of the registers X and Y.
func (m *Machine) registerPair(x, y uint8) (uint8, uint8, error) {
	vx, err := m.register(x)
	if err != nil {
		return 0, 0, err
	}
	vy, err := m.register(y)
	if err != nil {
		return 0, 0, err
	}
	return vx, vy, nil
}

// setFlag sets VF to 1 if set is true, otherwise to 0.
func (m *Machine) setFlag(set bool) {
	if set {
		m.registers[chip8.FlagRegister] = 1
	} else {
		m.registers[chip8.FlagRegister] = 0
	}
}

func (m *Machine) setIndex(value int) error {
	if value < 0 || value >= chip8.MemorySize {
		return fmt.Errorf("setting index register to $%04X: %w", value, ErrIndexRegisterOverflow)
	}
	m.index = uint16(value)
	return nil
}

func (m *Machine) setPC(address int) error {
	if address < 0 || address >= chip8.MemorySize {
		return fmt.Errorf("setting program counter to $%04X: %w", address, ErrProgramCounterOverflow)
	}
	m.pc = uint16(address)
	return nil
}

// advance moves the program counter to the next instruction.
func (m *Machine) advance() error {
	return m.advanceBy(1)
}

// advanceBy moves the program counter forward by the given number of instructions.
func (m *Machine) advanceBy(instructions int) error {
	return m.setPC(int(m.pc) + instructions*chip8.OpcodeSize)
}

// skipIf skips the next instruction if the condition holds.
func (m *Machine) skipIf(condition bool) error {
	if condition {
		return m.advanceBy(2)
	}
	return m.advance()
}

func (m *Machine) push(address uint16) {
	m.stack = append(m.stack, address)
}

func (m *Machine) pop() (uint16, error) {
	if len(m.stack) == 0 {
		return 0, ErrStackUnderflow
	}
	address := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return address, nil
}

// Package machine implements the CHIP-8 interpreter: the state store, the
// execution engine, the key wait state machine, the timers and the run loop.
package machine

import (
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/random"
	"github.com/retroenv/retrogolib/log"
)

// DefaultCycle is the default duration of an instruction cycle.
const DefaultCycle = time.Millisecond

// Options configures a machine. Zero values select the defaults.
type Options struct {
	Cycle  time.Duration // duration of an instruction cycle
	Random ByteSource    // source for the random number instruction
	Clock  Clock         // time source of the run loop
	Tone   ToneHandler   // notified about sound timer tone changes
	Trace  bool          // log the machine state after every instruction
}

// Machine is a CHIP-8 virtual machine.
type Machine struct {
	logger *log.Logger
	cycle  time.Duration
	rng    ByteSource
	clock  Clock
	tone   ToneHandler
	trace  bool

	running bool

	memory    [chip8.MemorySize]byte
	registers [chip8.RegisterCount]uint8
	index     uint16 // I register
	pc        uint16
	stack     []uint16

	delayTimer uint8
	soundTimer uint8
	tickCount  uint64
	tickAt     time.Time

	display display
	keys    [chip8.KeyCount]bool
	keyWait keyWait

	fontAddress      uint16
	cartridgeAddress uint16
}

// New returns a new zero initialized machine.
func New(logger *log.Logger, opts Options) *Machine {
	m := &Machine{
		logger: logger,
		cycle:  opts.Cycle,
		rng:    opts.Random,
		clock:  opts.Clock,
		tone:   opts.Tone,
		trace:  opts.Trace,
	}
	if m.cycle <= 0 {
		m.cycle = DefaultCycle
	}
	if m.rng == nil {
		m.rng = random.New()
	}
	if m.clock == nil {
		m.clock = systemClock{}
	}
	if m.tone == nil {
		m.tone = silentTone{}
	}
	m.tickAt = m.clock.Now()
	return m
}

// Load copies data into memory starting at the given address.
func (m *Machine) Load(address int, data []byte) error {
	if address < 0 || address+len(data) > chip8.MemorySize {
		return fmt.Errorf("loading %d bytes to address $%03X: %w", len(data), address, ErrMemoryOverflow)
	}
	copy(m.memory[address:], data)
	return nil
}

// LoadFont loads the font data and records its base address for the font
// sprite instruction.
func (m *Machine) LoadFont(address int, font []byte) error {
	if err := m.Load(address, font); err != nil {
		return fmt.Errorf("loading font: %w", err)
	}
	m.fontAddress = uint16(address)
	return nil
}

// LoadCartridge loads the cartridge image and sets the program counter to its
// base address.
func (m *Machine) LoadCartridge(address int, cartridge []byte) error {
	if err := m.Load(address, cartridge); err != nil {
		return fmt.Errorf("loading cartridge: %w", err)
	}
	m.cartridgeAddress = uint16(address)
	m.pc = m.cartridgeAddress
	return nil
}

// ProgramCounter returns the address of the next instruction.
func (m *Machine) ProgramCounter() uint16 {
	return m.pc
}

// TickCount returns the number of timer ticks since the machine was booted.
func (m *Machine) TickCount() uint64 {
	return m.tickCount
}

// KeyWait returns the state of the key wait state machine.
func (m *Machine) KeyWait() KeyWaitState {
	return m.keyWait.state
}

// Frame returns the display buffer.
func (m *Machine) Frame() *chip8.Frame {
	return &m.display.frame
}

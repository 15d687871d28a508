package machine

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// Step fetches, decodes and executes the instruction at the program counter.
// It must not be called while the machine is blocked waiting for a key.
func (m *Machine) Step() error {
	pc := m.pc
	opcode, err := m.readOpcode(int(pc))
	if err != nil {
		return fmt.Errorf("fetching instruction: %w", err)
	}
	op := chip8.Decode(opcode)

	if m.trace {
		m.logger.Debug("Executing",
			log.String("pc", fmt.Sprintf("$%03X", pc)),
			log.String("opcode", fmt.Sprintf("$%04X", opcode)),
			log.String("operation", op.String()))
	}

	if err := m.execute(op); err != nil {
		return fmt.Errorf("executing '%s' at $%03X: %w", op, pc, err)
	}

	if m.trace {
		m.traceState()
	}
	return nil
}

//nolint:cyclop,funlen // dispatch over the instruction set
func (m *Machine) execute(op chip8.Operation) error {
	switch op.Kind {
	case chip8.CallSys:
		m.logger.Debug("Ignoring machine code routine call",
			log.String("address", fmt.Sprintf("$%03X", op.Address)))
		return m.advance()

	case chip8.Clear:
		m.display.clear()
		return m.advance()

	case chip8.Return:
		address, err := m.pop()
		if err != nil {
			return err
		}
		return m.setPC(int(address))

	case chip8.Jump:
		return m.setPC(int(op.Address))

	case chip8.Call:
		if err := m.advance(); err != nil {
			return err
		}
		m.push(m.pc)
		return m.setPC(int(op.Address))

	case chip8.JumpV0:
		v0, err := m.register(0)
		if err != nil {
			return err
		}
		return m.setPC(int(v0) + int(op.Address))

	case chip8.SkipEqImm, chip8.SkipNeImm:
		vx, err := m.register(op.X)
		if err != nil {
			return err
		}
		return m.skipIf((vx == op.Value) == (op.Kind == chip8.SkipEqImm))

	case chip8.SkipEq, chip8.SkipNe:
		vx, vy, err := m.registerPair(op.X, op.Y)
		if err != nil {
			return err
		}
		return m.skipIf((vx == vy) == (op.Kind == chip8.SkipEq))

	case chip8.SkipKey, chip8.SkipNotKey:
		return m.skipKey(op)

	case chip8.SetImm:
		if err := m.setRegister(op.X, op.Value); err != nil {
			return err
		}
		return m.advance()

	case chip8.AddImm:
		vx, err := m.register(op.X)
		if err != nil {
			return err
		}
		if err := m.setRegister(op.X, vx+op.Value); err != nil {
			return err
		}
		return m.advance()

	case chip8.Set, chip8.Or, chip8.And, chip8.Xor, chip8.Add, chip8.Sub, chip8.Shr, chip8.SubRev, chip8.Shl:
		return m.arithmetic(op)

	case chip8.Rand:
		if err := m.setRegister(op.X, m.rng.NextByte()&op.Value); err != nil {
			return err
		}
		return m.advance()

	case chip8.Draw:
		return m.draw(op)

	case chip8.GetKey:
		return m.getKey(op.X)

	case chip8.GetDelayTimer, chip8.SetDelayTimer, chip8.SetSoundTimer:
		return m.timerAccess(op)

	case chip8.SetIndex, chip8.AddIndex, chip8.SetIndexFont:
		return m.indexAccess(op)

	case chip8.StoreBCD:
		return m.storeBCD(op.X)

	case chip8.Store:
		return m.store(op.X)

	case chip8.Restore:
		return m.restore(op.X)

	default:
		m.logger.Warn("Unknown opcode",
			log.String("pc", fmt.Sprintf("$%03X", m.pc)),
			log.String("opcode", fmt.Sprintf("$%04X", op.Opcode)))
		return m.advance()
	}
}

// traceState logs the registers and key states.
func (m *Machine) traceState() {
	m.logger.Debug("Machine state",
		log.String("registers", fmt.Sprintf("% 02X", m.registers[:])),
		log.String("i", fmt.Sprintf("$%03X", m.index)),
		log.String("pc", fmt.Sprintf("$%03X", m.pc)),
		log.Int("stack", len(m.stack)),
		log.String("keys", fmt.Sprint(m.keys)),
	)
}

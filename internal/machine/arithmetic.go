package machine

import "github.com/retroenv/retrochip8/internal/chip8"

// arithmetic executes the register to register operations of the 0x8 category.
// The result is written to VX before VF is updated, so VF as target register
// ends up holding the flag.
func (m *Machine) arithmetic(op chip8.Operation) error {
	vx, vy, err := m.registerPair(op.X, op.Y)
	if err != nil {
		return err
	}

	var result uint8
	var flag, hasFlag bool

	switch op.Kind {
	case chip8.Set:
		result = vy
	case chip8.Or:
		result, hasFlag = vx|vy, true
	case chip8.And:
		result, hasFlag = vx&vy, true
	case chip8.Xor:
		result, hasFlag = vx^vy, true
	case chip8.Add:
		result = vx + vy
		flag, hasFlag = result < vx, true // carry
	case chip8.Sub:
		result = vx - vy
		flag, hasFlag = result <= vx, true // no borrow
	case chip8.SubRev:
		result = vy - vx
		flag, hasFlag = result <= vy, true // no borrow
	case chip8.Shr:
		result = vy >> 1
		flag, hasFlag = vy&0x01 != 0, true
	case chip8.Shl:
		result = vy << 1
		flag, hasFlag = vy&0x80 != 0, true
	}

	if err := m.setRegister(op.X, result); err != nil {
		return err
	}
	if hasFlag {
		m.setFlag(flag)
	}
	return m.advance()
}

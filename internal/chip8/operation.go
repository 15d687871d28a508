package chip8

import (
	"fmt"

	cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Kind identifies one of the 35 operations of the instruction set.
type Kind uint8

// Operation kinds, the opcode encoding is noted next to each entry.
const (
	Unknown       Kind = iota // no matching encoding
	CallSys                   // 0NNN call machine code routine, ignored
	Clear                     // 00E0 clear the display
	Return                    // 00EE return from subroutine
	Jump                      // 1NNN jump to NNN
	Call                      // 2NNN call subroutine at NNN
	SkipEqImm                 // 3XNN skip if VX == NN
	SkipNeImm                 // 4XNN skip if VX != NN
	SkipEq                    // 5XY0 skip if VX == VY
	SetImm                    // 6XNN VX = NN
	AddImm                    // 7XNN VX += NN, no carry
	Set                       // 8XY0 VX = VY
	Or                        // 8XY1 VX |= VY
	And                       // 8XY2 VX &= VY
	Xor                       // 8XY3 VX ^= VY
	Add                       // 8XY4 VX += VY, VF = carry
	Sub                       // 8XY5 VX -= VY, VF = not borrow
	Shr                       // 8XY6 VX = VY >> 1, VF = lsb of VY
	SubRev                    // 8XY7 VX = VY - VX, VF = not borrow
	Shl                       // 8XYE VX = VY << 1, VF = msb of VY
	SkipNe                    // 9XY0 skip if VX != VY
	SetIndex                  // ANNN I = NNN
	JumpV0                    // BNNN jump to NNN + V0
	Rand                      // CXNN VX = random & NN
	Draw                      // DXYN draw sprite at VX, VY with N rows
	SkipKey                   // EX9E skip if key VX is pressed
	SkipNotKey                // EXA1 skip if key VX is not pressed
	GetDelayTimer             // FX07 VX = delay timer
	GetKey                    // FX0A wait for key press and release, store in VX
	SetDelayTimer             // FX15 delay timer = VX
	SetSoundTimer             // FX18 sound timer = VX
	AddIndex                  // FX1E I += VX
	SetIndexFont              // FX29 I = font sprite address of VX
	StoreBCD                  // FX33 store BCD of VX at I, I+1, I+2
	Store                     // FX55 store V0-VX at I
	Restore                   // FX65 load V0-VX from I
)

// Name returns the assembler mnemonic of the operation kind.
func (k Kind) Name() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[Unknown]
}

// Operation is a decoded instruction with its operand fields.
// Only the fields used by the Kind are set, Opcode always holds the raw word.
type Operation struct {
	Kind    Kind
	Opcode  uint16 // raw instruction word
	X       uint8  // first register index
	Y       uint8  // second register index
	N       uint8  // 4 bit immediate, sprite height
	Value   uint8  // 8 bit immediate
	Address uint16 // 12 bit address
}

// IsSkip returns whether the operation conditionally skips the next instruction.
func (o Operation) IsSkip() bool {
	return cpu.SkipInstructions.Contains(o.Kind.Name())
}

// String returns the operation in assembler syntax.
func (o Operation) String() string {
	name := o.Kind.Name()
	if params := o.params(); params != "" {
		return name + " " + params
	}
	return name
}

//nolint:cyclop // one case per operand layout
func (o Operation) params() string {
	switch o.Kind {
	case Clear, Return:
		return ""
	case CallSys, Jump, Call:
		return fmt.Sprintf("$%03X", o.Address)
	case SetIndex:
		return fmt.Sprintf("I, $%03X", o.Address)
	case JumpV0:
		return fmt.Sprintf("V0, $%03X", o.Address)
	case SkipEqImm, SkipNeImm, SetImm, AddImm, Rand:
		return fmt.Sprintf("V%X, $%02X", o.X, o.Value)
	case SkipEq, SkipNe, Set, Or, And, Xor, Add, Sub, Shr, SubRev, Shl:
		return fmt.Sprintf("V%X, V%X", o.X, o.Y)
	case Draw:
		return fmt.Sprintf("V%X, V%X, $%X", o.X, o.Y, o.N)
	case SkipKey, SkipNotKey:
		return fmt.Sprintf("V%X", o.X)
	case GetDelayTimer:
		return fmt.Sprintf("V%X, DT", o.X)
	case GetKey:
		return fmt.Sprintf("V%X, K", o.X)
	case SetDelayTimer:
		return fmt.Sprintf("DT, V%X", o.X)
	case SetSoundTimer:
		return fmt.Sprintf("ST, V%X", o.X)
	case AddIndex:
		return fmt.Sprintf("I, V%X", o.X)
	case SetIndexFont:
		return fmt.Sprintf("F, V%X", o.X)
	case StoreBCD:
		return fmt.Sprintf("B, V%X", o.X)
	case Store:
		return fmt.Sprintf("[I], V%X", o.X)
	case Restore:
		return fmt.Sprintf("V%X, [I]", o.X)
	default:
		return fmt.Sprintf("$%04X", o.Opcode)
	}
}

package chip8

import (
	cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Opcode is an entry of the CPU opcode table that matched an instruction word.
type Opcode struct {
	op cpu.Opcode
}

// LookupOpcode returns the opcode table entry whose mask and value match the word.
// The table is indexed by the top nibble of the word.
func LookupOpcode(word uint16) (Opcode, bool) {
	for _, op := range cpu.Opcodes[word>>12] {
		if word&op.Info.Mask == op.Info.Value {
			return Opcode{op: op}, true
		}
	}
	return Opcode{}, false
}

// Name returns the instruction mnemonic of the opcode.
func (o Opcode) Name() string {
	if o.op.Instruction == nil {
		return ""
	}
	return o.op.Instruction.Name
}

// Mask returns the bits of an instruction word that identify the opcode.
func (o Opcode) Mask() uint16 {
	return o.op.Info.Mask
}

// Kind returns the operation kind that the opcode decodes to.
func (o Opcode) Kind() Kind {
	if kind, ok := opcodeKinds[o.op.Info]; ok {
		return kind
	}
	return Unknown
}

// IsSkip returns whether the instruction conditionally skips the next instruction.
func (o Opcode) IsSkip() bool {
	return cpu.SkipInstructions.Contains(o.Name())
}

var opcodeKinds = map[cpu.OpcodeInfo]Kind{
	cpu.Opcode00E0: Clear,
	cpu.Opcode00EE: Return,
	cpu.Opcode1000: Jump,
	cpu.Opcode2000: Call,
	cpu.Opcode3000: SkipEqImm,
	cpu.Opcode4000: SkipNeImm,
	cpu.Opcode5000: SkipEq,
	cpu.Opcode6000: SetImm,
	cpu.Opcode7000: AddImm,
	cpu.Opcode8000: Set,
	cpu.Opcode8001: Or,
	cpu.Opcode8002: And,
	cpu.Opcode8003: Xor,
	cpu.Opcode8004: Add,
	cpu.Opcode8005: Sub,
	cpu.Opcode8006: Shr,
	cpu.Opcode8007: SubRev,
	cpu.Opcode800E: Shl,
	cpu.Opcode9000: SkipNe,
	cpu.OpcodeA000: SetIndex,
	cpu.OpcodeB000: JumpV0,
	cpu.OpcodeC000: Rand,
	cpu.OpcodeD000: Draw,
	cpu.OpcodeE09E: SkipKey,
	cpu.OpcodeE0A1: SkipNotKey,
	cpu.OpcodeF007: GetDelayTimer,
	cpu.OpcodeF00A: GetKey,
	cpu.OpcodeF015: SetDelayTimer,
	cpu.OpcodeF018: SetSoundTimer,
	cpu.OpcodeF01E: AddIndex,
	cpu.OpcodeF029: SetIndexFont,
	cpu.OpcodeF033: StoreBCD,
	cpu.OpcodeF055: Store,
	cpu.OpcodeF065: Restore,
}

// kindNames holds the mnemonics of the opcode table, keyed by the kind each
// table entry decodes to. The 0NNN machine code call has no table entry.
var kindNames = opcodeNames()

func opcodeNames() map[Kind]string {
	names := map[Kind]string{
		Unknown: "unknown",
		CallSys: "sys",
	}
	for _, opcodes := range cpu.Opcodes {
		for _, op := range opcodes {
			opcode := Opcode{op: op}
			names[opcode.Kind()] = opcode.Name()
		}
	}
	return names
}

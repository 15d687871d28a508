package chip8

// Decode maps a 16 bit instruction word to its operation.
// The word is matched against the CPU opcode table, the operand fields are
// then extracted according to the layout of the matched kind.
// Words of the 0x0 category that match no entry are machine code calls,
// all other words that match no entry are returned as Unknown.
func Decode(opcode uint16) Operation {
	entry, ok := LookupOpcode(opcode)
	if !ok {
		if opcode>>12 == 0x0 {
			return addressOperation(CallSys, opcode)
		}
		return unknown(opcode)
	}

	switch kind := entry.Kind(); kind {
	case Clear, Return:
		return Operation{Kind: kind, Opcode: opcode}
	case Jump, Call, SetIndex, JumpV0:
		return addressOperation(kind, opcode)
	case SkipEqImm, SkipNeImm, SetImm, AddImm, Rand:
		return immediateOperation(kind, opcode)
	case SkipEq, SkipNe, Set, Or, And, Xor, Add, Sub, Shr, SubRev, Shl:
		return registerOperation(kind, opcode)
	case Draw:
		op := registerOperation(kind, opcode)
		op.N = extractN(opcode)
		return op
	case Unknown:
		return unknown(opcode)
	default:
		return singleRegisterOperation(kind, opcode)
	}
}

func unknown(opcode uint16) Operation {
	return Operation{Kind: Unknown, Opcode: opcode}
}

func addressOperation(kind Kind, opcode uint16) Operation {
	return Operation{Kind: kind, Opcode: opcode, Address: extractAddress(opcode)}
}

func immediateOperation(kind Kind, opcode uint16) Operation {
	return Operation{Kind: kind, Opcode: opcode, X: extractRegisterX(opcode), Value: extractByte(opcode)}
}

func registerOperation(kind Kind, opcode uint16) Operation {
	return Operation{Kind: kind, Opcode: opcode, X: extractRegisterX(opcode), Y: extractRegisterY(opcode)}
}

func singleRegisterOperation(kind Kind, opcode uint16) Operation {
	return Operation{Kind: kind, Opcode: opcode, X: extractRegisterX(opcode)}
}

// extractRegisterX extracts the X register nibble from an opcode.
func extractRegisterX(opcode uint16) uint8 {
	return uint8((opcode & 0x0F00) >> 8)
}

// extractRegisterY extracts the Y register nibble from an opcode.
func extractRegisterY(opcode uint16) uint8 {
	return uint8((opcode & 0x00F0) >> 4)
}

// extractN extracts the bottom nibble from an opcode.
func extractN(opcode uint16) uint8 {
	return uint8(opcode & 0x000F)
}

// extractByte extracts the bottom byte from an opcode.
func extractByte(opcode uint16) uint8 {
	return uint8(opcode & 0x00FF)
}

// extractAddress extracts the 12 bit address from an opcode.
func extractAddress(opcode uint16) uint16 {
	return opcode & 0x0FFF
}

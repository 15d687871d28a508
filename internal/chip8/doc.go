// Package chip8 provides the CHIP-8 machine definitions shared by the interpreter and its frontends.
//
// # Memory Layout
//
// CHIP-8 systems have 4KB of byte addressable memory (0x000-0xFFF):
//   - 0x000-0x1FF: Interpreter area, the default font is stored here
//   - ProgramStart-0xFFF: User program and data area
//
// # Instruction Set
//
// The instruction set consists of 35 operations:
//   - All instructions are 2 bytes (16 bits), stored most significant byte first
//   - Addresses are 12 bits wide and embedded in the opcode
//   - 16 general-purpose 8-bit registers (V0-VF), VF doubles as flag register
//   - Special-purpose registers: I (12-bit index), PC, call stack
//
// Decode maps an opcode word to an Operation. Decoding never fails, opcodes that do not
// match any entry of the catalog are returned as an Unknown operation that carries the
// raw opcode word.
//
// # Display and Input
//
// The display is a 64x32 monochrome grid represented by Frame. Input is a 16 key hex pad,
// key presses and releases are delivered as KeyEvent values. KeyQuit is a reserved key
// value outside of the pad range that signals a shutdown request.
package chip8

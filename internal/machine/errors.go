package machine

import "errors"

// Fatal machine errors, all of them terminate the run loop.
var (
	ErrMemoryOverflow         = errors.New("memory overflow")
	ErrRegisterIndexOverflow  = errors.New("register index overflow")
	ErrIndexRegisterOverflow  = errors.New("index register overflow")
	ErrProgramCounterOverflow = errors.New("program counter overflow")
	ErrStackUnderflow         = errors.New("call stack underflow")
)

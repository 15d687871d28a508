// Package random provides byte sources for the random number instruction.
package random

import (
	"math/rand/v2"
)

// Source returns pseudo random bytes.
type Source struct {
	rnd *rand.Rand
}

// New returns a source that is randomly seeded.
func New() *Source {
	return NewSeeded(rand.Uint64())
}

// NewSeeded returns a source that produces a reproducible sequence for the given seed.
func NewSeeded(seed uint64) *Source {
	return &Source{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

// NextByte returns the next random byte.
func (s *Source) NextByte() byte {
	return byte(s.rnd.Uint32())
}

// Sequence returns the given bytes in order and starts over after the last one.
// An empty sequence always returns 0.
type Sequence struct {
	data []byte
	pos  int
}

// NewSequence returns a sequence source for the given bytes.
func NewSequence(data ...byte) *Sequence {
	return &Sequence{data: data}
}

// NextByte returns the next byte of the sequence.
func (s *Sequence) NextByte() byte {
	if len(s.data) == 0 {
		return 0
	}
	b := s.data[s.pos]
	s.pos = (s.pos + 1) % len(s.data)
	return b
}

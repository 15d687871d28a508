package random

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSeededSourceIsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for range 64 {
		assert.Equal(t, a.NextByte(), b.NextByte())
	}
}

func TestSourceCoversByteRange(t *testing.T) {
	src := NewSeeded(1)
	seen := map[byte]struct{}{}
	for range 1 << 14 {
		seen[src.NextByte()] = struct{}{}
	}
	assert.Equal(t, 256, len(seen))
}

func TestSequence(t *testing.T) {
	seq := NewSequence(0x01, 0x02, 0x03)
	assert.Equal(t, byte(0x01), seq.NextByte())
	assert.Equal(t, byte(0x02), seq.NextByte())
	assert.Equal(t, byte(0x03), seq.NextByte())
	assert.Equal(t, byte(0x01), seq.NextByte())

	empty := NewSequence()
	assert.Equal(t, byte(0), empty.NextByte())
}

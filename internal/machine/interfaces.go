package machine

import (
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Renderer outputs the display buffer.
// A returned error is fatal and shuts the machine down.
type Renderer interface {
	Draw(frame *chip8.Frame) error
}

// Input collects key events. PollEvents returns after at most the given timeout
// with all events that were received in the meantime, it doubles as the idle
// wait of the run loop.
type Input interface {
	PollEvents(timeout time.Duration) ([]chip8.KeyEvent, error)
}

// Frontend is an initialized display and input device. The machine takes
// ownership of it for the duration of Run and releases it on return.
type Frontend interface {
	Renderer
	Input
	Close() error
}

// ByteSource returns uniformly distributed random bytes.
type ByteSource interface {
	NextByte() byte
}

// Clock is the time source of the run loop.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// ToneHandler gets notified when the sound timer starts or stops the tone.
type ToneHandler interface {
	SetTone(on bool)
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

type silentTone struct{}

func (silentTone) SetTone(bool) {}

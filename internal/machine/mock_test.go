package machine

import (
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/font"
	"github.com/retroenv/retrochip8/internal/random"
	"github.com/retroenv/retrogolib/log"
)

// fakeClock is a simulated clock that only advances when sleeping.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.now = c.now.Add(d)
}

// fakeFrontend records rendered frames and returns scripted key events.
type fakeFrontend struct {
	onPoll   func(poll int, timeout time.Duration) []chip8.KeyEvent
	drawErr  error
	pollErr  error
	closeErr error

	polls  int
	draws  int
	last   chip8.Frame
	closed int
}

func (f *fakeFrontend) Draw(frame *chip8.Frame) error {
	if f.drawErr != nil {
		return f.drawErr
	}
	f.draws++
	f.last = *frame
	return nil
}

func (f *fakeFrontend) PollEvents(timeout time.Duration) ([]chip8.KeyEvent, error) {
	if f.pollErr != nil {
		return nil, f.pollErr
	}
	f.polls++
	if f.onPoll == nil {
		return nil, nil
	}
	return f.onPoll(f.polls, timeout), nil
}

func (f *fakeFrontend) Close() error {
	f.closed++
	return f.closeErr
}

// fakeTone records tone changes.
type fakeTone struct {
	changes []bool
}

func (f *fakeTone) SetTone(on bool) {
	f.changes = append(f.changes, on)
}

// program encodes instruction words as big endian bytes.
func program(words ...uint16) []byte {
	data := make([]byte, 0, len(words)*2)
	for _, w := range words {
		data = append(data, byte(w>>8), byte(w))
	}
	return data
}

// newTestMachine returns a machine with the default font and the given
// program loaded at the program start address.
func newTestMachine(t *testing.T, words ...uint16) *Machine {
	t.Helper()
	m := New(log.NewTestLogger(t), Options{
		Random: random.NewSequence(0xFF),
		Clock:  newFakeClock(),
	})
	if err := m.LoadFont(font.Address, font.Default()); err != nil {
		t.Fatalf("loading font: %v", err)
	}
	if err := m.LoadCartridge(chip8.ProgramStart, program(words...)); err != nil {
		t.Fatalf("loading program: %v", err)
	}
	return m
}

// steps executes the given number of instructions.
func steps(t *testing.T, m *Machine, count int) {
	t.Helper()
	for range count {
		if err := m.Step(); err != nil {
			t.Fatalf("step failed: %v", err)
		}
	}
}

func pressKey(key chip8.Key) chip8.KeyEvent {
	return chip8.KeyEvent{Key: key, Pressed: true}
}

func releaseKey(key chip8.Key) chip8.KeyEvent {
	return chip8.KeyEvent{Key: key}
}

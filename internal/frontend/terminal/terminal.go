// Package terminal implements a frontend that renders the display with block
// characters and reads the keyboard from the controlling terminal.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrClosed is returned when the frontend is used after it was closed.
var ErrClosed = errors.New("terminal frontend is closed")

const ttyPath = "/dev/tty"

// Terminal owns the controlling terminal while the machine runs.
type Terminal struct {
	logger   *log.Logger
	tty      *os.File
	fd       int
	state    *term.State
	out      io.Writer
	keyboard *keyboard
	now      func() time.Time
	buf      []byte
	input    []byte
	closed   bool
}

// Open switches the controlling terminal to raw mode and the alternate screen.
func Open(logger *log.Logger) (*Terminal, error) {
	tty, err := os.OpenFile(ttyPath, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	fd := int(tty.Fd())

	width, height, err := term.GetSize(fd)
	if err != nil {
		_ = tty.Close()
		return nil, fmt.Errorf("getting terminal size: %w", err)
	}
	if width < screenColumns || height < screenRows {
		_ = tty.Close()
		return nil, fmt.Errorf("terminal size %dx%d is too small, at least %dx%d is required",
			width, height, screenColumns, screenRows)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		_ = tty.Close()
		return nil, fmt.Errorf("setting terminal raw mode: %w", err)
	}

	t := &Terminal{
		logger:   logger,
		tty:      tty,
		fd:       fd,
		state:    state,
		out:      tty,
		keyboard: newKeyboard(),
		now:      time.Now,
		input:    make([]byte, 64),
	}
	if _, err := io.WriteString(t.out, enterScreen); err != nil {
		_ = t.Close()
		return nil, fmt.Errorf("initializing terminal screen: %w", err)
	}

	logger.Debug("Terminal frontend opened",
		log.Int("width", width),
		log.Int("height", height))
	return t, nil
}

// Draw renders the frame.
func (t *Terminal) Draw(frame *chip8.Frame) error {
	if t.closed {
		return ErrClosed
	}
	t.buf = encodeFrame(t.buf[:0], frame)
	if _, err := t.out.Write(t.buf); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// PollEvents waits up to the timeout for terminal input and returns the
// decoded key events. Pending releases of held keys shorten the wait.
func (t *Terminal) PollEvents(timeout time.Duration) ([]chip8.KeyEvent, error) {
	if t.closed {
		return nil, ErrClosed
	}

	now := t.now()
	if events := t.keyboard.expire(now); len(events) > 0 {
		return events, nil
	}
	if release, ok := t.keyboard.nextRelease(); ok {
		timeout = min(timeout, release.Sub(now))
	}

	ready, err := t.wait(timeout)
	if err != nil || !ready {
		return nil, err
	}

	n, err := t.tty.Read(t.input)
	if err != nil {
		return nil, fmt.Errorf("reading terminal input: %w", err)
	}
	return t.keyboard.feed(t.input[:n], t.now()), nil
}

// wait blocks until the terminal has input available or the timeout elapsed.
func (t *Terminal) wait(timeout time.Duration) (bool, error) {
	milliseconds := int((max(timeout, 0) + time.Millisecond - 1) / time.Millisecond)
	fds := []unix.PollFd{{Fd: int32(t.fd), Events: unix.POLLIN}}

	n, err := unix.Poll(fds, milliseconds)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return false, nil
		}
		return false, fmt.Errorf("polling terminal input: %w", err)
	}
	return n > 0 && fds[0].Revents&unix.POLLIN != 0, nil
}

// SetTone rings the terminal bell when a tone starts.
func (t *Terminal) SetTone(on bool) {
	if !on || t.closed {
		return
	}
	if _, err := io.WriteString(t.out, bell); err != nil {
		t.logger.Error("Ringing terminal bell failed", log.Err(err))
	}
}

// Close restores the terminal state and releases the terminal.
func (t *Terminal) Close() error {
	if t.closed {
		return ErrClosed
	}
	t.closed = true

	var errs []error
	if _, err := io.WriteString(t.out, leaveScreen); err != nil {
		errs = append(errs, fmt.Errorf("resetting terminal screen: %w", err))
	}
	if err := term.Restore(t.fd, t.state); err != nil {
		errs = append(errs, fmt.Errorf("restoring terminal state: %w", err))
	}
	if err := t.tty.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing terminal: %w", err))
	}
	return errors.Join(errs...)
}

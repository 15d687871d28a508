package terminal

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestEncodeFrame(t *testing.T) {
	var frame chip8.Frame
	frame[0][0] = true
	frame[0][1] = true
	frame[1][1] = true
	frame[1][2] = true
	frame[31][63] = true

	output := string(encodeFrame(nil, &frame))
	assert.True(t, strings.HasPrefix(output, cursorHome))

	rows := strings.Split(strings.TrimPrefix(output, cursorHome), "\r\n")
	assert.Len(t, rows, screenRows)
	assert.True(t, strings.HasPrefix(rows[0], "▀█▄ "))
	assert.Equal(t, screenColumns, len([]rune(rows[0])))
	assert.True(t, strings.HasSuffix(rows[screenRows-1], " ▄"))
}

func TestDrawAndTone(t *testing.T) {
	var out bytes.Buffer
	term := &Terminal{
		logger: log.NewTestLogger(t),
		out:    &out,
	}

	var frame chip8.Frame
	assert.NoError(t, term.Draw(&frame))
	assert.True(t, strings.HasPrefix(out.String(), cursorHome))

	out.Reset()
	term.SetTone(false)
	assert.Equal(t, "", out.String())
	term.SetTone(true)
	assert.Equal(t, bell, out.String())
}

func TestPollEventsExpiresHeldKeys(t *testing.T) {
	now := testTime
	term := &Terminal{
		logger:   log.NewTestLogger(t),
		keyboard: newKeyboard(),
		now:      func() time.Time { return now },
	}
	term.keyboard.feed([]byte("z"), now)

	now = now.Add(holdDuration)
	events, err := term.PollEvents(time.Millisecond)
	assert.NoError(t, err)
	assertEvents(t, []chip8.KeyEvent{release(0xA)}, events)
}

func TestClosedTerminal(t *testing.T) {
	var out bytes.Buffer
	term := &Terminal{
		logger: log.NewTestLogger(t),
		out:    &out,
		closed: true,
	}

	var frame chip8.Frame
	assert.True(t, errors.Is(term.Draw(&frame), ErrClosed))
	_, err := term.PollEvents(time.Millisecond)
	assert.True(t, errors.Is(err, ErrClosed))
	assert.True(t, errors.Is(term.Close(), ErrClosed))

	term.SetTone(true)
	assert.Equal(t, 0, out.Len())
}

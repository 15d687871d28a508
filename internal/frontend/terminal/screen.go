package terminal

import "github.com/retroenv/retrochip8/internal/chip8"

// Every terminal cell shows two vertically stacked pixels.
const (
	screenColumns = chip8.DisplayWidth
	screenRows    = chip8.DisplayHeight / 2
)

const (
	cursorHome = "\x1b[H"

	enterScreen = "\x1b[?1049h" + // alternate screen buffer
		"\x1b[?25l" + // hide cursor
		"\x1b[2J" + // clear screen
		"\x1b[>11u" + // push kitty keyboard flags: disambiguate, event types, all keys as escape codes
		"\x1b[?u" // query kitty keyboard flags, only supporting terminals respond

	leaveScreen = "\x1b[<u" + // pop kitty keyboard flags
		"\x1b[?25h" + // show cursor
		"\x1b[?1049l" // main screen buffer

	bell = "\a"
)

var halfBlocks = [2][2]string{
	{" ", "▄"}, // top unset
	{"▀", "█"}, // top set
}

// encodeFrame appends the terminal output that draws the frame at the top
// left corner of the screen.
func encodeFrame(buf []byte, frame *chip8.Frame) []byte {
	buf = append(buf, cursorHome...)
	for row := range screenRows {
		top := frame[row*2]
		bottom := frame[row*2+1]
		for x := range screenColumns {
			buf = append(buf, halfBlocks[pixel(top[x])][pixel(bottom[x])]...)
		}
		if row < screenRows-1 {
			buf = append(buf, '\r', '\n')
		}
	}
	return buf
}

func pixel(set bool) int {
	if set {
		return 1
	}
	return 0
}

package chip8

import "unicode"

// escapeCode is the character code of the escape key, shared by terminal
// input and SDL key codes.
const escapeCode = 0x1B

// keyLayout maps the left hand side of a QWERTY keyboard to the hex pad:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
var keyLayout = map[rune]Key{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// MapKey returns the pad key for a keyboard character code. Escape maps to
// KeyQuit, letters are matched case insensitive.
func MapKey(code rune) (Key, bool) {
	if code == escapeCode {
		return KeyQuit, true
	}
	key, ok := keyLayout[unicode.ToLower(code)]
	return key, ok
}

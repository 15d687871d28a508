// Package writer implements the cartridge listing output.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

const (
	dataBytesPerLine = 8
	instructionWidth = 20 // column of the comments
)

// Options of the writer.
type Options struct {
	HexComments    bool // output the opcode bytes as comment
	OffsetComments bool // output the address as comment
}

// Writer outputs a linear listing of a cartridge image. Every aligned word
// that decodes to a known instruction is written as instruction, other words
// are written as data.
type Writer struct {
	options Options
	writer  io.Writer
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// Write writes the listing of the data that is loaded at the given address.
func (w Writer) Write(address int, data []byte) error {
	var pending []byte // data bytes not yet written
	pendingAddress := address

	for i := 0; i < len(data); i += chip8.OpcodeSize {
		if i+1 >= len(data) {
			if len(pending) == 0 {
				pendingAddress = address + i
			}
			pending = append(pending, data[i])
			break
		}

		opcode := uint16(data[i])<<8 | uint16(data[i+1])
		op := chip8.Decode(opcode)
		if op.Kind == chip8.Unknown {
			if len(pending) == 0 {
				pendingAddress = address + i
			}
			pending = append(pending, data[i], data[i+1])
			continue
		}

		if err := w.writeData(pendingAddress, pending); err != nil {
			return err
		}
		pending = pending[:0]

		if err := w.writeLine(op.String(), address+i, data[i:i+2]); err != nil {
			return err
		}
	}

	return w.writeData(pendingAddress, pending)
}

// writeData bundles data bytes to dataBytesPerLine bytes per line.
func (w Writer) writeData(address int, data []byte) error {
	for i := 0; i < len(data); i += dataBytesPerLine {
		line := data[i:min(i+dataBytesPerLine, len(data))]

		buf := &strings.Builder{}
		buf.WriteString(".byte ")
		for j, b := range line {
			if j > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(fmt.Sprintf("$%02X", b))
		}

		if err := w.writeLine(buf.String(), address+i, line); err != nil {
			return err
		}
	}
	return nil
}

// writeLine writes a single listing line with the optional comments.
func (w Writer) writeLine(code string, address int, data []byte) error {
	var comment []string
	if w.options.OffsetComments {
		comment = append(comment, fmt.Sprintf("$%03X", address))
	}
	if w.options.HexComments {
		hexBytes := make([]string, len(data))
		for i, b := range data {
			hexBytes[i] = fmt.Sprintf("%02X", b)
		}
		comment = append(comment, strings.Join(hexBytes, " "))
	}

	line := "  " + code
	if len(comment) > 0 {
		line = fmt.Sprintf("  %-*s ; %s", instructionWidth, code, strings.Join(comment, " "))
	}
	if _, err := fmt.Fprintln(w.writer, line); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

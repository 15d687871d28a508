package machine

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// display is the display buffer with a flag that marks unrendered changes.
type display struct {
	frame chip8.Frame
	dirty bool
}

// clear unsets all pixels. The display is not marked dirty, a cleared screen
// is rendered with the next change.
func (d *display) clear() {
	d.frame = chip8.Frame{}
}

// xor toggles the pixel if set is true. It returns whether a set pixel got unset.
func (d *display) xor(x, y int, set bool) bool {
	current := d.frame[y][x]
	updated := current != set
	if current == updated {
		return false
	}
	d.frame[y][x] = updated
	d.dirty = true
	return current
}

// draw draws a sprite of op.N rows read from memory at I to the coordinates
// VX, VY. The start coordinates wrap around the display, the sprite itself
// is clipped at the display edges.
func (m *Machine) draw(op chip8.Operation) error {
	vx, vy, err := m.registerPair(op.X, op.Y)
	if err != nil {
		return err
	}
	x := int(vx) % chip8.DisplayWidth
	y := int(vy) % chip8.DisplayHeight
	address := int(m.index)
	m.setFlag(false)

	for row := range int(op.N) {
		data, err := m.readMemory(address + row)
		if err != nil {
			return fmt.Errorf("reading sprite row %d: %w", row, err)
		}

		py := y + row
		if py >= chip8.DisplayHeight {
			break
		}

		for column := range chip8.SpriteWidth {
			px := x + column
			if px >= chip8.DisplayWidth {
				break
			}
			set := data&(0x80>>column) != 0
			if m.display.xor(px, py, set) {
				m.setFlag(true)
			}
		}
	}

	return m.advance()
}

// render draws the display buffer if it changed since the last render.
func (m *Machine) render(renderer Renderer) error {
	if !m.display.dirty {
		return nil
	}
	if err := renderer.Draw(&m.display.frame); err != nil {
		return fmt.Errorf("rendering display: %w", err)
	}
	m.display.dirty = false
	return nil
}

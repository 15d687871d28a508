// Package window implements a frontend that renders the display into an SDL
// window and reads the keyboard from its events.
package window

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

// ErrClosed is returned when the frontend is used after it was closed.
var ErrClosed = errors.New("window frontend is closed")

const title = "retrochip8"

// SDL has to be called from the main thread.
func init() {
	runtime.LockOSThread()
}

// Window owns the SDL video subsystem while the machine runs.
type Window struct {
	logger   *log.Logger
	scale    int32
	window   *sdl.Window
	renderer *sdl.Renderer
	frame    chip8.Frame // last drawn frame, redrawn when the window is exposed
	rects    []sdl.Rect
	closed   bool
}

// Open initializes SDL and shows a window of the display size multiplied by
// the scale.
func Open(logger *log.Logger, scale int) (*Window, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("invalid window scale %d", scale)
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}

	w := &Window{
		logger: logger,
		scale:  int32(scale),
		rects:  make([]sdl.Rect, 0, chip8.DisplayWidth*chip8.DisplayHeight),
	}

	var err error
	w.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		chip8.DisplayWidth*w.scale, chip8.DisplayHeight*w.scale, uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	w.renderer, err = sdl.CreateRenderer(w.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		_ = w.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	if err := w.present(); err != nil {
		_ = w.Close()
		return nil, err
	}

	logger.Debug("Window frontend opened", log.Int("scale", scale))
	return w, nil
}

// Draw renders the frame.
func (w *Window) Draw(frame *chip8.Frame) error {
	if w.closed {
		return ErrClosed
	}
	w.frame = *frame
	return w.present()
}

// present draws the last frame as white pixels on black.
func (w *Window) present() error {
	w.rects = pixelRects(w.rects[:0], &w.frame, w.scale)

	if err := w.renderer.SetDrawColor(0x00, 0x00, 0x00, 0xFF); err != nil {
		return fmt.Errorf("setting background color: %w", err)
	}
	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing window: %w", err)
	}
	if len(w.rects) > 0 {
		if err := w.renderer.SetDrawColor(0xFF, 0xFF, 0xFF, 0xFF); err != nil {
			return fmt.Errorf("setting pixel color: %w", err)
		}
		if err := w.renderer.FillRects(w.rects); err != nil {
			return fmt.Errorf("drawing pixels: %w", err)
		}
	}
	w.renderer.Present()
	return nil
}

// PollEvents waits up to the timeout for the first SDL event and returns the
// key events of all queued events.
func (w *Window) PollEvents(timeout time.Duration) ([]chip8.KeyEvent, error) {
	if w.closed {
		return nil, ErrClosed
	}

	milliseconds := int((max(timeout, 0) + time.Millisecond - 1) / time.Millisecond)
	var events []chip8.KeyEvent
	for ev := sdl.WaitEventTimeout(milliseconds); ev != nil; ev = sdl.PollEvent() {
		if isExposed(ev) {
			if err := w.present(); err != nil {
				return events, err
			}
			continue
		}
		if event, ok := keyEvent(ev); ok {
			events = append(events, event)
		}
	}
	return events, nil
}

// Close destroys the window and shuts SDL down.
func (w *Window) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true

	var errs []error
	if err := w.renderer.Destroy(); err != nil {
		errs = append(errs, fmt.Errorf("destroying renderer: %w", err))
	}
	if err := w.window.Destroy(); err != nil {
		errs = append(errs, fmt.Errorf("destroying window: %w", err))
	}
	sdl.Quit()
	return errors.Join(errs...)
}

// keyEvent translates an SDL event to a key event. Closing the window
// presses the quit key, key repeats are ignored.
func keyEvent(ev sdl.Event) (chip8.KeyEvent, bool) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return chip8.KeyEvent{Key: chip8.KeyQuit, Pressed: true}, true

	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return chip8.KeyEvent{}, false
		}
		key, ok := chip8.MapKey(rune(ev.Keysym.Sym))
		if !ok {
			return chip8.KeyEvent{}, false
		}
		pressed := ev.Type == sdl.KEYDOWN
		if key == chip8.KeyQuit && !pressed {
			return chip8.KeyEvent{}, false
		}
		return chip8.KeyEvent{Key: key, Pressed: pressed}, true

	default:
		return chip8.KeyEvent{}, false
	}
}

func isExposed(ev sdl.Event) bool {
	windowEvent, ok := ev.(*sdl.WindowEvent)
	return ok && windowEvent.Event == sdl.WINDOWEVENT_EXPOSED
}

// pixelRects appends a scaled rectangle for every set pixel of the frame.
func pixelRects(rects []sdl.Rect, frame *chip8.Frame, scale int32) []sdl.Rect {
	for y, row := range frame {
		for x, set := range row {
			if !set {
				continue
			}
			rects = append(rects, sdl.Rect{
				X: int32(x) * scale,
				Y: int32(y) * scale,
				W: scale,
				H: scale,
			})
		}
	}
	return rects
}

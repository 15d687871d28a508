// Package options contains the program options.
package options

import "time"

// Frontend names accepted by the frontend option.
const (
	FrontendAuto     = ""
	FrontendTerminal = "terminal"
	FrontendSDL      = "sdl"
)

// Parameters contains file and address options.
type Parameters struct {
	Input            string // cartridge file
	LogFile          string // file that receives the log output
	FontAddress      int    // base address of the font
	CartridgeAddress int    // base address of the cartridge and boot address
}

// Flags contains behavior options.
type Flags struct {
	Frontend string        // frontend to use, auto-detected if empty
	Cycle    time.Duration // duration of an instruction cycle
	Scale    int           // pixel scale of the SDL window
	List     bool          // print a listing of the cartridge instead of running it
	Debug    bool
	Quiet    bool
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
}

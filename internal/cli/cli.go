// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/font"
	"github.com/retroenv/retrochip8/internal/options"
)

const (
	defaultCycleMicroseconds = 1000
	defaultScale             = 10
	defaultLogFile           = "chip8.log"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	raw := readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	opts.Input = args[0]

	if err := normalizeOptions(&opts, raw); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <cartridge file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// rawFlags contains flag values that need conversion before they can be
// stored in the program options.
type rawFlags struct {
	cycle            int
	fontAddress      string
	cartridgeAddress string
}

// validateArgs checks that the cartridge file is the only positional argument
func validateArgs(args []string) error {
	for i, arg := range args {
		if i == 0 {
			continue
		}
		if arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after cartridge file, please pass the cartridge file as last argument", arg),
			}
		}
		return &UsageError{
			msg: fmt.Sprintf("Unexpected argument %s, only one cartridge file is supported", arg),
		}
	}
	return nil
}

// normalizeOptions converts and validates option values
func normalizeOptions(opts *options.Program, raw *rawFlags) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	if opts.Frontend == "auto" {
		opts.Frontend = options.FrontendAuto
	}
	switch opts.Frontend {
	case options.FrontendAuto, options.FrontendTerminal, options.FrontendSDL:
	default:
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s, %s",
			opts.Frontend, options.FrontendTerminal, options.FrontendSDL)
	}

	if raw.cycle <= 0 {
		return fmt.Errorf("invalid cycle duration %dus, must be positive", raw.cycle)
	}
	opts.Cycle = time.Duration(raw.cycle) * time.Microsecond

	if opts.Scale <= 0 {
		return fmt.Errorf("invalid scale %d, must be positive", opts.Scale)
	}

	var err error
	opts.FontAddress, err = parseAddress("font", raw.fontAddress)
	if err != nil {
		return err
	}
	opts.CartridgeAddress, err = parseAddress("start", raw.cartridgeAddress)
	if err != nil {
		return err
	}
	return nil
}

// parseAddress parses a memory address in decimal, 0x prefixed hex or $ prefixed hex notation.
func parseAddress(name, s string) (int, error) {
	value := s
	base := 0
	if strings.HasPrefix(value, "$") {
		value = value[1:]
		base = 16
	}

	address, err := strconv.ParseUint(value, base, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s address '%s': %w", name, s, err)
	}
	if address >= chip8.MemorySize {
		return 0, fmt.Errorf("invalid %s address '%s': outside of memory", name, s)
	}
	return int(address), nil
}

// readOptionFlags registers all flags, the returned raw values are only
// valid after the flag set has been parsed.
func readOptionFlags(flags *flag.FlagSet, opts *options.Program) *rawFlags {
	raw := &rawFlags{}
	flags.StringVar(&opts.Frontend, "frontend", "", "frontend to use (terminal/sdl), auto-detected if not set")
	flags.IntVar(&raw.cycle, "cycle", defaultCycleMicroseconds, "duration of an instruction cycle in microseconds")
	flags.IntVar(&opts.Scale, "scale", defaultScale, "pixel scale of the SDL window")
	flags.StringVar(&raw.fontAddress, "font", fmt.Sprintf("0x%03X", font.Address), "base address of the font")
	flags.StringVar(&raw.cartridgeAddress, "start", fmt.Sprintf("0x%03X", chip8.ProgramStart), "base address of the cartridge")
	flags.StringVar(&opts.LogFile, "log", defaultLogFile, "name of the log file")
	flags.BoolVar(&opts.List, "list", false, "print an instruction listing of the cartridge and exit")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	return raw
}

// Package pipeline orchestrates the interpreter startup and run stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/font"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// FrontendOpener opens the named frontend.
type FrontendOpener func(name string, opts options.Program) (machine.Frontend, error)

// Pipeline orchestrates the complete interpreter workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
	open     FrontendOpener
}

// New creates a new interpreter pipeline.
func New(logger *log.Logger) *Pipeline {
	p := &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
	p.open = p.openFrontend
	return p
}

// Execute loads the cartridge and runs it until the user quits, the context
// is cancelled or the machine fails.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) error {
	frontendName := p.detector.Detect(opts)

	cartridge, err := p.loader.Load(opts.Input, opts.CartridgeAddress)
	if err != nil {
		return fmt.Errorf("loading cartridge: %w", err)
	}
	p.checkOverlap(opts, len(cartridge))

	frontend, err := p.open(frontendName, opts)
	if err != nil {
		return fmt.Errorf("opening %s frontend: %w", frontendName, err)
	}

	m, err := p.createMachine(opts, frontend, cartridge)
	if err != nil {
		_ = frontend.Close()
		return fmt.Errorf("creating machine: %w", err)
	}

	p.printInfo(opts, frontendName, len(cartridge))

	if err := m.Run(ctx, frontend); err != nil {
		return fmt.Errorf("running machine: %w", err)
	}
	return nil
}

// List writes an instruction listing of the cartridge.
func (p *Pipeline) List(opts options.Program, output io.Writer) error {
	cartridge, err := p.loader.Load(opts.Input, opts.CartridgeAddress)
	if err != nil {
		return fmt.Errorf("loading cartridge: %w", err)
	}

	w := writer.New(output, writer.Options{
		HexComments:    true,
		OffsetComments: true,
	})
	if err := w.Write(opts.CartridgeAddress, cartridge); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}

// createMachine creates the machine and loads the font and the cartridge.
// A frontend that can signal tones is used as tone handler.
func (p *Pipeline) createMachine(opts options.Program, frontend machine.Frontend, cartridge []byte) (*machine.Machine, error) {
	machineOpts := machine.Options{
		Cycle: opts.Cycle,
		Trace: opts.Debug,
	}
	if tone, ok := frontend.(machine.ToneHandler); ok {
		machineOpts.Tone = tone
	}

	m := machine.New(p.logger, machineOpts)
	if err := m.LoadFont(opts.FontAddress, font.Default()); err != nil {
		return nil, err
	}
	if err := m.LoadCartridge(opts.CartridgeAddress, cartridge); err != nil {
		return nil, err
	}
	return m, nil
}

// openFrontend opens the terminal or the window frontend.
func (p *Pipeline) openFrontend(name string, opts options.Program) (machine.Frontend, error) {
	switch name {
	case options.FrontendTerminal:
		t, err := terminal.Open(p.logger)
		if err != nil {
			return nil, err
		}
		return t, nil

	case options.FrontendSDL:
		w, err := window.Open(p.logger, opts.Scale)
		if err != nil {
			return nil, err
		}
		return w, nil

	default:
		return nil, fmt.Errorf("unsupported frontend '%s'", name)
	}
}

// checkOverlap warns if the cartridge overwrites the font.
func (p *Pipeline) checkOverlap(opts options.Program, cartridgeSize int) {
	fontEnd := opts.FontAddress + font.Size
	cartridgeEnd := opts.CartridgeAddress + cartridgeSize
	if opts.FontAddress < cartridgeEnd && opts.CartridgeAddress < fontEnd {
		p.logger.Warn("Cartridge overlaps the font",
			log.String("font", fmt.Sprintf("$%03X-$%03X", opts.FontAddress, fontEnd-1)),
			log.String("cartridge", fmt.Sprintf("$%03X-$%03X", opts.CartridgeAddress, cartridgeEnd-1)))
	}
}

// printInfo prints information about the cartridge being run.
func (p *Pipeline) printInfo(opts options.Program, frontendName string, cartridgeSize int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running CHIP-8 cartridge",
		log.String("file", opts.Input),
		log.Int("size", cartridgeSize),
		log.String("frontend", frontendName),
		log.String("cycle", opts.Cycle.String()),
	)
}

// Package detector handles frontend detection.
package detector

import (
	"os"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// Detector selects the frontend from options or the environment.
type Detector struct {
	logger     *log.Logger
	isTerminal func() bool
}

// New creates a new frontend detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger:     logger,
		isTerminal: stdinIsTerminal,
	}
}

// Detect determines the frontend to use. An explicitly requested frontend is
// returned unchanged, otherwise the terminal frontend is selected when the
// standard input is connected to a terminal and the SDL frontend if not.
func (d *Detector) Detect(opts options.Program) string {
	if opts.Frontend != options.FrontendAuto {
		return opts.Frontend
	}

	frontend := options.FrontendSDL
	if d.isTerminal() {
		frontend = options.FrontendTerminal
	}
	d.logger.Debug("Auto-detected frontend", log.String("frontend", frontend))
	return frontend
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Package main implements the entry point of the CHIP-8 interpreter
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/pipeline"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(opts)
			if msg := usageErr.Error(); msg != "" {
				fmt.Printf("%s\n\n", msg)
			}
			usageErr.ShowUsage()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}

	printBanner(opts)

	if opts.List {
		logger := config.CreateLogger(opts)
		if err := pipeline.New(logger).List(opts, os.Stdout); err != nil {
			logger.Error("Listing cartridge failed", log.Err(err))
			os.Exit(1)
		}
		return
	}

	if err := run(ctx, opts); err != nil {
		fmt.Println(fmt.Errorf("running cartridge failed: %w", err))
		os.Exit(1)
	}
}

// run executes the cartridge with all output streams redirected to the log
// file while the frontend owns the terminal.
func run(ctx context.Context, opts options.Program) (err error) {
	restore, err := config.RedirectOutput(opts.LogFile)
	if err != nil {
		return err
	}
	defer func() {
		if restoreErr := restore(); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()

	logger := config.CreateLogger(opts)

	if err := pipeline.New(logger).Execute(ctx, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return nil
		}
		logger.Error("Running cartridge failed", log.Err(err))
		return err
	}
	return nil
}

func printBanner(opts options.Program) {
	if !opts.Quiet {
		fmt.Println("[------------------------------------]")
		fmt.Println("[ retrochip8 - CHIP-8 interpreter    ]")
		fmt.Printf("[------------------------------------]\n\n")
		fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
	}
}

// Package app wires configuration, the arithmetic engines, the benchmark
// harness, and the presentation layer into the numsys command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/numsys-go/numsys/internal/config"
	apperrors "github.com/numsys-go/numsys/internal/errors"
	"github.com/numsys-go/numsys/internal/logging"
)

// Version is the release version, overridable at build time with
// -ldflags "-X .../internal/app.Version=...".
var Version = "dev"

// Application represents one numsys invocation.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Log       zerolog.Logger
}

// New creates an Application by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "numsys"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app := &Application{
		Config:    cfg,
		ErrWriter: errWriter,
	}
	if cfg.Quiet {
		app.Log = logging.Nop()
	} else {
		app.Log = logging.New(errWriter, cfg.Verbose)
	}
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.Bench {
		return a.runBench(ctx, out)
	}
	return a.runCalc(ctx, out)
}

// HasVersionFlag reports whether args request the version.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "numsys %s\n", Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// IsConfigError checks if the error is a user configuration error.
func IsConfigError(err error) bool {
	var cfgErr apperrors.ConfigError
	return errors.As(err, &cfgErr)
}

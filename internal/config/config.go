// Package config defines the application configuration and its resolution
// chain: CLI flags first, NUMSYS_-prefixed environment variables second,
// static defaults last.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/numsys-go/numsys/internal/errors"
)

// EnvPrefix is prepended to every environment variable override key.
const EnvPrefix = "NUMSYS_"

// Default values applied when neither a flag nor an environment variable
// sets the field.
const (
	DefaultSystem    = "both"
	DefaultMinDigits = 10
	DefaultMaxDigits = 500
	DefaultIters     = 100
	DefaultTimeout   = 5 * time.Minute
)

// AppConfig holds the resolved configuration for one invocation.
type AppConfig struct {
	// Calculation mode.
	LHS    string
	Op     string
	RHS    string
	System string // "binary", "factorial", or "both"
	Pow    uint   // exponent for -op pow (RHS is ignored)

	// Benchmark mode.
	Bench     bool
	MinDigits int
	MaxDigits int
	Iters     int
	Seed      int64

	// Metrics endpoint; empty disables the server.
	MetricsAddr string

	Timeout time.Duration
	Quiet   bool
	Verbose bool
}

// validOps lists the accepted -op values.
var validOps = map[string]bool{
	"add": true, "sub": true, "mul": true, "div": true, "mod": true,
	"cmp": true, "pow": true, "sqrt": true, "abs": true,
}

// BinaryOp reports whether the operation consumes a right-hand operand.
func (c AppConfig) BinaryOp() bool {
	switch c.Op {
	case "sqrt", "abs":
		return false
	case "pow":
		return false
	}
	return true
}

// ParseConfig parses the command line into an AppConfig, applies environment
// overrides for flags left unset, and validates the result. The returned
// error is flag.ErrHelp when -h/-help was requested.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		System:    DefaultSystem,
		MinDigits: DefaultMinDigits,
		MaxDigits: DefaultMaxDigits,
		Iters:     DefaultIters,
		Timeout:   DefaultTimeout,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.LHS, "lhs", "", "left operand (decimal integer)")
	fs.StringVar(&cfg.Op, "op", "", "operation: add|sub|mul|div|mod|cmp|pow|sqrt|abs")
	fs.StringVar(&cfg.RHS, "rhs", "", "right operand (decimal integer)")
	fs.StringVar(&cfg.System, "system", cfg.System, "number system: binary|factorial|both")
	fs.UintVar(&cfg.Pow, "pow", 0, "exponent for -op pow")

	fs.BoolVar(&cfg.Bench, "bench", false, "run the arithmetic benchmark instead of a calculation")
	fs.IntVar(&cfg.MinDigits, "min-digits", cfg.MinDigits, "smallest operand size in decimal digits (bench)")
	fs.IntVar(&cfg.MaxDigits, "max-digits", cfg.MaxDigits, "largest operand size in decimal digits (bench)")
	fs.IntVar(&cfg.Iters, "iters", cfg.Iters, "iterations per operation and size (bench)")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed for operand generation; 0 picks one (bench)")

	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "listen address for /metrics and /healthz; empty disables")

	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall execution timeout")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the result")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg); err != nil {
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}
	return cfg, nil
}

func validate(cfg AppConfig) error {
	if cfg.Bench {
		if cfg.MinDigits < 1 || cfg.MaxDigits < cfg.MinDigits {
			return apperrors.NewConfigError("digit range [%d, %d] is invalid", cfg.MinDigits, cfg.MaxDigits)
		}
		if cfg.Iters < 1 {
			return apperrors.NewConfigError("iterations must be at least 1")
		}
		return nil
	}

	if cfg.Op == "" {
		return apperrors.NewConfigError("an operation is required: -op add|sub|mul|div|mod|cmp|pow|sqrt|abs (or -bench)")
	}
	if !validOps[cfg.Op] {
		return apperrors.NewConfigError("unknown operation %q", cfg.Op)
	}
	if cfg.LHS == "" {
		return apperrors.NewConfigError("a left operand is required: -lhs N")
	}
	if cfg.BinaryOp() && cfg.RHS == "" {
		return apperrors.NewConfigError("operation %q requires a right operand: -rhs N", cfg.Op)
	}
	switch cfg.System {
	case "binary", "factorial", "both":
	default:
		return apperrors.NewConfigError("unknown number system %q", cfg.System)
	}
	return nil
}

// Package bench implements the arithmetic benchmark harness: random decimal
// operands over a range of digit sizes, every operation timed in both number
// systems, the two engines running concurrently, and their results
// cross-checked for consistency.
package bench

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/numsys-go/numsys"
	apperrors "github.com/numsys-go/numsys/internal/errors"
)

// Ops lists the benchmarked operations in report order.
var Ops = []string{"add", "sub", "mul", "div", "mod", "cmp"}

// Systems lists the engine names in report order.
var Systems = []string{"binary", "factorial"}

// Options configures a benchmark run.
type Options struct {
	MinDigits  int
	MaxDigits  int
	Multiplier int // size growth factor per step; defaults to 2
	Iters      int // operand pairs per size
	Seed       int64
	Log        zerolog.Logger

	// Observe, when non-nil, is called once per timed operation with the
	// engine name, the operation, and its duration in seconds.
	Observe func(system, op string, seconds float64)
}

// OpStats is the aggregate timing of one operation at one operand size.
type OpStats struct {
	Op    string
	Mean  time.Duration
	Iters int
}

// SystemRun is the outcome for one engine at one operand size.
type SystemRun struct {
	System string
	Stats  []OpStats
	Total  time.Duration
}

// SizeRun groups the per-engine outcomes for one operand size.
type SizeRun struct {
	Digits  int
	Systems []SystemRun
}

// Report is the complete benchmark outcome.
type Report struct {
	Sizes   []SizeRun
	Elapsed time.Duration
}

// operandSet holds one size step's generated decimal operand pairs. Divisors
// are a separate column because zero right-hand sides are bumped to "1" for
// div and mod.
type operandSet struct {
	lhs, rhs, divisors []string
}

// value is the operation surface the harness needs from an engine.
type value[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) (T, error)
	Mod(T) (T, error)
	Cmp(T) int
	String() string
}

// Run executes the configured benchmark and returns the timing report. The
// two engines run concurrently per size step; after each step their results
// are compared operation by operation, and any disagreement fails the run
// with a MismatchError.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Multiplier < 2 {
		opts.Multiplier = 2
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	opts.Log.Info().
		Int("min_digits", opts.MinDigits).
		Int("max_digits", opts.MaxDigits).
		Int("iters", opts.Iters).
		Int64("seed", seed).
		Msg("benchmark starting")

	var report Report
	start := time.Now()

	for digits := opts.MinDigits; digits <= opts.MaxDigits; digits *= opts.Multiplier {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		set := generateOperands(rng, digits, opts.Iters)

		var binRun, facRun SystemRun
		var binResults, facResults map[string][]string

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			binRun, binResults, err = runSystem[numsys.Binary](gctx, "binary", set, opts, numsys.ParseBinary)
			return err
		})
		g.Go(func() error {
			var err error
			facRun, facResults, err = runSystem[numsys.Factorial](gctx, "factorial", set, opts, numsys.ParseFactorial)
			return err
		})
		if err := g.Wait(); err != nil {
			return report, err
		}

		if err := compareResults(binResults, facResults); err != nil {
			return report, err
		}

		report.Sizes = append(report.Sizes, SizeRun{
			Digits:  digits,
			Systems: []SystemRun{binRun, facRun},
		})

		opts.Log.Debug().
			Int("digits", digits).
			Dur("binary", binRun.Total).
			Dur("factorial", facRun.Total).
			Msg("size step finished")
	}

	report.Elapsed = time.Since(start)
	opts.Log.Info().Dur("elapsed", report.Elapsed).Msg("benchmark finished")
	return report, nil
}

// generateOperands produces iters random operand pairs of the given decimal
// length. Multi-digit operands never start with zero, so every generated
// string is already canonical.
func generateOperands(rng *rand.Rand, digits, iters int) operandSet {
	set := operandSet{
		lhs:      make([]string, iters),
		rhs:      make([]string, iters),
		divisors: make([]string, iters),
	}
	for i := 0; i < iters; i++ {
		set.lhs[i] = randomDecimal(rng, digits)
		set.rhs[i] = randomDecimal(rng, digits)
		set.divisors[i] = set.rhs[i]
		if set.divisors[i] == "0" {
			set.divisors[i] = "1"
		}
	}
	return set
}

func randomDecimal(rng *rand.Rand, digits int) string {
	buf := make([]byte, digits)
	if digits == 1 {
		buf[0] = byte('0' + rng.Intn(10))
		return string(buf)
	}
	buf[0] = byte('1' + rng.Intn(9))
	for i := 1; i < digits; i++ {
		buf[i] = byte('0' + rng.Intn(10))
	}
	return string(buf)
}

// runSystem times every operation over the operand set in one engine and
// collects the result strings for the cross-engine comparison.
func runSystem[T value[T]](ctx context.Context, system string, set operandSet, opts Options, parse func(string) (T, error)) (SystemRun, map[string][]string, error) {
	run := SystemRun{System: system}
	results := make(map[string][]string, len(Ops))

	n := len(set.lhs)
	lhs := make([]T, n)
	rhs := make([]T, n)
	divisors := make([]T, n)
	for i := 0; i < n; i++ {
		var err error
		if lhs[i], err = parse(set.lhs[i]); err != nil {
			return run, nil, err
		}
		if rhs[i], err = parse(set.rhs[i]); err != nil {
			return run, nil, err
		}
		if divisors[i], err = parse(set.divisors[i]); err != nil {
			return run, nil, err
		}
	}

	for _, op := range Ops {
		if err := ctx.Err(); err != nil {
			return run, nil, err
		}

		outs := make([]string, n)
		opStart := time.Now()
		for i := 0; i < n; i++ {
			iterStart := time.Now()
			out, err := apply(op, lhs[i], rhs[i], divisors[i])
			if err != nil {
				return run, nil, err
			}
			if opts.Observe != nil {
				opts.Observe(system, op, time.Since(iterStart).Seconds())
			}
			outs[i] = out
		}
		opTotal := time.Since(opStart)

		run.Stats = append(run.Stats, OpStats{
			Op:    op,
			Mean:  opTotal / time.Duration(n),
			Iters: n,
		})
		run.Total += opTotal
		results[op] = outs
	}

	return run, results, nil
}

// apply executes one named operation. Division operands use the bumped
// divisor column, so divide-by-zero cannot occur here.
func apply[T value[T]](op string, lhs, rhs, divisor T) (string, error) {
	switch op {
	case "add":
		return lhs.Add(rhs).String(), nil
	case "sub":
		return lhs.Sub(rhs).String(), nil
	case "mul":
		return lhs.Mul(rhs).String(), nil
	case "div":
		q, err := lhs.Div(divisor)
		if err != nil {
			return "", err
		}
		return q.String(), nil
	case "mod":
		r, err := lhs.Mod(divisor)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	case "cmp":
		return strconv.Itoa(lhs.Cmp(rhs)), nil
	}
	return "", apperrors.Domain.New("unknown benchmark operation %q", op)
}

// compareResults checks that the two engines produced identical outputs for
// every operation and operand pair.
func compareResults(binary, factorial map[string][]string) error {
	for _, op := range Ops {
		b, f := binary[op], factorial[op]
		for i := range b {
			if b[i] != f[i] {
				return apperrors.MismatchError{Op: op, Binary: b[i], Factorial: f[i]}
			}
		}
	}
	return nil
}

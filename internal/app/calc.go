package app

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/numsys-go/numsys"
	"github.com/numsys-go/numsys/internal/cli"
	"github.com/numsys-go/numsys/internal/config"
	apperrors "github.com/numsys-go/numsys/internal/errors"
)

// integer is the operation surface the calculation mode needs from an
// engine: the derived-operator contract plus the signed operations the
// evaluator dispatches on directly.
type integer[T any] interface {
	numsys.Integral[T]
	Add(T) T
	Sub(T) T
}

// runCalc evaluates the configured operation in the selected number
// system(s), prints the results, and cross-checks them when more than one
// system ran.
func (a *Application) runCalc(ctx context.Context, out io.Writer) int {
	type outcome struct {
		results []cli.CalcResult
	}

	done := make(chan outcome, 1)
	go func() {
		var results []cli.CalcResult
		if a.Config.System == "binary" || a.Config.System == "both" {
			results = append(results, a.evalSystem(ctx, "binary"))
		}
		if a.Config.System == "factorial" || a.Config.System == "both" {
			results = append(results, a.evalSystem(ctx, "factorial"))
		}
		done <- outcome{results: results}
	}()

	var results []cli.CalcResult
	select {
	case <-ctx.Done():
		return cli.DisplayError(a.ErrWriter, ctx.Err())
	case o := <-done:
		results = o.results
	}

	firstErr := firstFailure(results)
	if a.Config.Quiet {
		if firstErr != nil {
			return cli.DisplayError(a.ErrWriter, firstErr)
		}
		cli.DisplayQuietResult(out, results[0].Value)
		if err := consistency(a.Config.Op, results); err != nil {
			return cli.DisplayError(a.ErrWriter, err)
		}
		return apperrors.ExitSuccess
	}

	cli.DisplayCalcResults(out, results, a.Config.Verbose)

	if firstErr != nil {
		return cli.DisplayError(a.ErrWriter, firstErr)
	}

	if len(results) > 1 {
		err := consistency(a.Config.Op, results)
		cli.DisplayConsistency(out, err)
		if err != nil {
			return apperrors.ExitErrorMismatch
		}
	}
	return apperrors.ExitSuccess
}

// evalSystem runs the configured operation in one engine, timing it.
func (a *Application) evalSystem(ctx context.Context, system string) cli.CalcResult {
	res := cli.CalcResult{System: system}
	start := time.Now()

	var value string
	var err error
	switch system {
	case "binary":
		value, err = evaluate[numsys.Binary](a.Config, numsys.ParseBinary)
	default:
		value, err = evaluate[numsys.Factorial](a.Config, numsys.ParseFactorial)
	}

	res.Duration = time.Since(start)
	res.Value = value
	res.Err = err
	if err == nil && ctx.Err() != nil {
		res.Err = ctx.Err()
	}

	a.Log.Debug().
		Str("system", system).
		Str("op", a.Config.Op).
		Dur("duration", res.Duration).
		Msg("evaluated")
	return res
}

// evaluate parses the operands and applies the configured operation in one
// engine.
func evaluate[T integer[T]](cfg config.AppConfig, parse func(string) (T, error)) (string, error) {
	lhs, err := parse(cfg.LHS)
	if err != nil {
		return "", err
	}

	var rhs T
	if cfg.BinaryOp() {
		if rhs, err = parse(cfg.RHS); err != nil {
			return "", err
		}
	}

	switch cfg.Op {
	case "add":
		return lhs.Add(rhs).String(), nil
	case "sub":
		return lhs.Sub(rhs).String(), nil
	case "mul":
		return lhs.Mul(rhs).String(), nil
	case "div":
		q, err := lhs.Div(rhs)
		if err != nil {
			return "", err
		}
		return q.String(), nil
	case "mod":
		r, err := lhs.Mod(rhs)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	case "cmp":
		return strconv.Itoa(lhs.Cmp(rhs)), nil
	case "pow":
		return numsys.Pow(lhs, cfg.Pow).String(), nil
	case "sqrt":
		root, err := numsys.Sqrt(lhs)
		if err != nil {
			return "", err
		}
		return root.String(), nil
	case "abs":
		return numsys.Abs(lhs).String(), nil
	}
	return "", apperrors.NewConfigError("unknown operation %q", cfg.Op)
}

func firstFailure(results []cli.CalcResult) error {
	for _, res := range results {
		if res.Err != nil {
			return res.Err
		}
	}
	return nil
}

// consistency verifies that every engine produced the same rendering.
func consistency(op string, results []cli.CalcResult) error {
	for i := 1; i < len(results); i++ {
		if results[i].Value != results[0].Value {
			return apperrors.MismatchError{
				Op:        op,
				Binary:    results[0].Value,
				Factorial: results[i].Value,
			}
		}
	}
	return nil
}

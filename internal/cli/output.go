// Package cli handles terminal presentation: calculation results, the
// benchmark report table, and the progress spinner.
//
// Display* functions write formatted output to an io.Writer; Format*
// functions return a string without performing I/O.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/numsys-go/numsys/internal/bench"
	apperrors "github.com/numsys-go/numsys/internal/errors"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	systemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// TruncationLimit is the digit threshold from which a result is truncated in
// standard output to avoid cluttering the terminal.
const TruncationLimit = 100

// DisplayEdges specifies the number of digits to display at the beginning
// and end of a truncated number.
const DisplayEdges = 25

// FormatValue renders a decimal result, truncating the middle of very long
// values unless verbose output was requested.
func FormatValue(value string, verbose bool) string {
	if verbose || len(value) <= TruncationLimit {
		return value
	}
	return fmt.Sprintf("%s...%s (%d digits)",
		value[:DisplayEdges], value[len(value)-DisplayEdges:], len(value))
}

// CalcResult is one engine's outcome for a single calculation.
type CalcResult struct {
	System   string
	Value    string
	Duration time.Duration
	Err      error
}

// DisplayQuietResult outputs the bare result value, suitable for scripting.
func DisplayQuietResult(out io.Writer, value string) {
	fmt.Fprintln(out, value)
}

// DisplayCalcResults prints each engine's result with its timing and, when
// every engine succeeded, a consistency line.
func DisplayCalcResults(out io.Writer, results []CalcResult, verbose bool) {
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(out, "%s: %s\n",
				systemStyle.Render(res.System),
				failureStyle.Render(res.Err.Error()))
			continue
		}
		fmt.Fprintf(out, "%s: %s  (%s)\n",
			systemStyle.Render(res.System),
			valueStyle.Render(FormatValue(res.Value, verbose)),
			FormatExecutionDuration(res.Duration))
	}
}

// DisplayConsistency prints the cross-engine agreement verdict for runs that
// evaluated more than one system.
func DisplayConsistency(out io.Writer, err error) {
	if err != nil {
		fmt.Fprintln(out, failureStyle.Render("engines disagree: "+err.Error()))
		return
	}
	fmt.Fprintln(out, successStyle.Render("engines agree"))
}

// DisplayBenchReport prints the per-size, per-engine mean durations as a
// table.
func DisplayBenchReport(out io.Writer, report bench.Report) {
	fmt.Fprintln(out, headerStyle.Render("Benchmark report"))

	fmt.Fprintf(out, "%-8s %-10s", "digits", "system")
	for _, op := range bench.Ops {
		fmt.Fprintf(out, " %10s", op)
	}
	fmt.Fprintln(out)

	for _, size := range report.Sizes {
		for _, sys := range size.Systems {
			fmt.Fprintf(out, "%-8d %-10s", size.Digits, systemStyle.Render(sys.System))
			for _, st := range sys.Stats {
				fmt.Fprintf(out, " %10s", FormatExecutionDuration(st.Mean))
			}
			fmt.Fprintln(out)
		}
	}

	fmt.Fprintf(out, "total: %s\n", FormatExecutionDuration(report.Elapsed))
}

// DisplayPeakStats prints the peak system usage sampled during a benchmark.
func DisplayPeakStats(out io.Writer, cpuPercent, memPercent float64) {
	fmt.Fprintf(out, "peak system usage: cpu %.1f%%, mem %.1f%%\n", cpuPercent, memPercent)
}

// DisplayError prints err and returns the exit code matching its kind.
func DisplayError(out io.Writer, err error) int {
	fmt.Fprintln(out, failureStyle.Render("error: "+err.Error()))
	switch {
	case apperrors.IsContextError(err):
		return apperrors.ExitErrorCanceled
	default:
		return apperrors.ExitErrorGeneric
	}
}

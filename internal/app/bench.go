package app

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/numsys-go/numsys/internal/bench"
	"github.com/numsys-go/numsys/internal/cli"
	apperrors "github.com/numsys-go/numsys/internal/errors"
	"github.com/numsys-go/numsys/internal/server"
	"github.com/numsys-go/numsys/internal/sysmon"
)

// runBench executes the benchmark harness, optionally exposing Prometheus
// metrics while it runs, and prints the timing report.
func (a *Application) runBench(ctx context.Context, out io.Writer) int {
	opts := bench.Options{
		MinDigits: a.Config.MinDigits,
		MaxDigits: a.Config.MaxDigits,
		Iters:     a.Config.Iters,
		Seed:      a.Config.Seed,
		Log:       a.Log,
	}

	benchCtx, benchDone := context.WithCancel(ctx)
	defer benchDone()

	var srv *server.Server
	g, gctx := errgroup.WithContext(ctx)
	if a.Config.MetricsAddr != "" {
		srv = server.New(a.Config.MetricsAddr, a.Log)
		opts.Observe = srv.Metrics.ObserveOperation
		g.Go(func() error { return srv.Start(benchCtx) })
	}

	peakChan := make(chan sysmon.Stats, 1)
	go func() { peakChan <- sysmon.Watch(benchCtx, sysmon.DefaultInterval) }()

	if srv != nil {
		srv.Metrics.IncrementActiveRuns()
	}

	var report bench.Report
	run := func() error {
		var err error
		report, err = bench.Run(gctx, opts)
		return err
	}

	var err error
	if a.Config.Quiet {
		err = run()
	} else {
		err = cli.WithSpinner(a.ErrWriter, "benchmarking", run)
	}

	if srv != nil {
		srv.Metrics.DecrementActiveRuns()
	}

	benchDone()
	peak := <-peakChan
	if serveErr := g.Wait(); serveErr != nil && err == nil {
		err = serveErr
	}

	if err != nil {
		var mismatch apperrors.MismatchError
		if errors.As(err, &mismatch) {
			cli.DisplayConsistency(a.ErrWriter, mismatch)
			return apperrors.ExitErrorMismatch
		}
		return cli.DisplayError(a.ErrWriter, err)
	}

	cli.DisplayBenchReport(out, report)
	if !a.Config.Quiet {
		cli.DisplayPeakStats(out, peak.CPUPercent, peak.MemPercent)
	}
	return apperrors.ExitSuccess
}

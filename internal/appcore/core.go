// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"isru-core/report"

	"isru/internal/runutil"
	"isru/internal/writers"
)

// Exit codes shared by every front end.
const (
	ExitOK       = 0
	ExitNoResult = 1
	ExitUsage    = 2
	ExitOutput   = 3
	ExitCanceled = 130
)

type Options struct {
	Writer           writers.Options
	NoResultExitCode int
	// Unbuffered writes straight through to stdout (long-running watch mode).
	Unbuffered bool
}

type flushWriter interface {
	io.Writer
	Flush() error
}

type directWriter struct{ io.Writer }

func (directWriter) Flush() error { return nil }

// Emit hands one report to the writer goroutine.
type Emit func(report.Report) error

// Producer evaluates whatever the front end asked for and emits reports.
// It returns the number of successful (non-failed) reports.
type Producer func(ctx context.Context, emit Emit) (int, error)

// Run wires a producer to the report writer and maps the outcome to an exit code.
func Run(parent context.Context, stdout, stderr io.Writer, log *zap.Logger, o Options, produce Producer) int {
	if log == nil {
		log = zap.NewNop()
	}
	var outw flushWriter = bufio.NewWriter(stdout)
	if o.Unbuffered {
		outw = directWriter{stdout}
	}
	inCh, writeErr := writers.StartReportWriter(outw, o.Writer, 16)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	seen := runutil.NewLRUSet[string](256)
	emit := func(r report.Report) error {
		for _, n := range r.Notes {
			if !seen.Add(r.Model + "\x00" + n) {
				log.Warn(n, zap.String("model", r.Model))
			}
		}
		if r.Failed() {
			log.Debug("point failed", zap.String("model", r.Model), zap.String("case", r.Case), zap.String("error", r.Err))
		}
		select {
		case inCh <- r:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	total, perr := produce(ctx, emit)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, "error:", werr)
		return ExitOutput
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, "error:", e)
		return ExitOutput
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCanceled
		}
		fmt.Fprintln(stderr, "error:", perr)
		return ExitUsage
	}
	if total == 0 {
		return o.NoResultExitCode
	}
	return ExitOK
}

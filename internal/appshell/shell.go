// Package appshell runs a command entry point against the process streams.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"isru/internal/appcore"
)

// Main runs the entry point with an interrupt-aware context and exits with
// its code. SIGPIPE is ignored so a closed stdout surfaces as EPIPE to the
// writers, which treat it as success.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	signal.Ignore(syscall.SIGPIPE)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == appcore.ExitOK {
		code = appcore.ExitCanceled
	}

	stop()
	os.Exit(code)
}

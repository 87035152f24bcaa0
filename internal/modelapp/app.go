// Package modelapp runs one calculator with its parameters taken from
// defaults, the environment, a scenario file and flags, in that order.
package modelapp

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"isru/internal/appcore"
	"isru/internal/cli"
	"isru/internal/clibase"
	"isru/internal/models"
)

// ToolName is the per-model binary name.
func ToolName(model string) string { return "isru-" + model }

// ParamUsage prints the model's parameter block for --help.
func ParamUsage(in models.Instance) func(io.Writer, func(string) string) {
	return func(out io.Writer, def func(string) string) {
		usage := map[string]string{}
		var flags []string
		for _, p := range in.Params() {
			usage[p.Flag] = p.Usage
			flags = append(flags, p.Flag)
		}
		clibase.ParamUsage(out, fmt.Sprintf("Parameters (%s)", in.Model().Name()), flags,
			func(f string) string { return usage[f] }, def)
	}
}

func examples(name string, in models.Instance) func(io.Writer) {
	return func(out io.Writer) {
		tool := ToolName(name)
		first := in.Params()[0].Flag
		fmt.Fprintf(out, "  # baseline\n  %s\n\n", tool)
		fmt.Fprintf(out, "  # override a parameter\n  %s --%s %s\n\n", tool, first, strings.TrimSpace(fmt.Sprint(in.Params()[0].Value()*2)))
		fmt.Fprintf(out, "  # machine-readable\n  %s -o json\n\n", tool)
		fmt.Fprintf(out, "  # parameters from a scenario file, flags still win\n  %s -c scenario.yaml --%s 10\n", tool, first)
	}
}

// For returns the RunContext of one model, for cmd mains.
func For(name string) func(context.Context, []string, io.Writer, io.Writer) int {
	return func(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
		return RunContext(ctx, name, argv, stdout, stderr)
	}
}

// RunContext evaluates one model once and writes its report.
func RunContext(ctx context.Context, name string, argv []string, stdout, stderr io.Writer) int {
	m, ok := models.Lookup(name)
	if !ok {
		fmt.Fprintf(stderr, "error: unknown model %q (known: %s)\n", name, strings.Join(models.Names(), ", "))
		return appcore.ExitUsage
	}
	in := m.New()
	sess, code, done := cli.Parse(cli.Tool{
		Name:     ToolName(name),
		Bind:     in.Bind,
		Usage:    usage(name, in),
		Examples: examples(name, in),
	}, argv, stdout, stderr)
	if done {
		return code
	}
	defer sess.Close()

	if len(sess.Positionals) > 0 {
		fmt.Fprintf(stderr, "error: unexpected arguments: %s\n", strings.Join(sess.Positionals, " "))
		return appcore.ExitUsage
	}

	label, err := ApplyScenario(sess, in)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitUsage
	}

	return appcore.Run(ctx, stdout, stderr, sess.Log, sess.CoreOptions(appcore.ExitNoResult),
		func(ctx context.Context, emit appcore.Emit) (int, error) {
			start := time.Now()
			r, err := in.Evaluate()
			sess.Log.Debug("evaluated", zap.String("model", name), zap.Duration("took", time.Since(start)))
			if err != nil {
				return 0, err
			}
			r.Case = label
			return 1, emit(r)
		})
}

func usage(name string, in models.Instance) func(io.Writer, func(string) string) {
	params := ParamUsage(in)
	return func(out io.Writer, def func(string) string) {
		fmt.Fprintf(out, "Usage:\n  %s [flags]\n\n", ToolName(name))
		params(out, def)
	}
}

// ApplyScenario overlays the session's scenario section for the instance's
// model, then restores explicit flags. It returns the scenario label when a
// section was applied.
func ApplyScenario(sess *cli.Session, in models.Instance) (string, error) {
	if sess.Scenario == nil {
		return "", nil
	}
	applied, err := in.Apply(sess.Scenario)
	if err != nil {
		return "", err
	}
	if err := sess.Reapply(); err != nil {
		return "", err
	}
	if !applied {
		sess.Log.Warn("scenario has no section for this model; using defaults",
			zap.String("model", in.Model().Name()), zap.String("scenario", sess.Scenario.Path))
		return "", nil
	}
	sess.Log.Debug("scenario applied", zap.String("model", in.Model().Name()))
	return sess.Scenario.Label(), nil
}

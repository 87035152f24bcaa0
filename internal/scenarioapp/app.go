// Package scenarioapp evaluates every model section of scenario files, and
// optionally re-evaluates them as the files change.
package scenarioapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"isru-core/inputs"

	"isru/internal/appcore"
	"isru/internal/cli"
	"isru/internal/cliutil"
	"isru/internal/config"
	"isru/internal/models"
	"isru/internal/output"
)

// ToolName is used in help and error messages.
const ToolName = "isru scenario"

// Options are the scenario-specific flags.
type Options struct {
	Watch            bool
	Debounce         time.Duration
	NoResultExitCode int
}

func bind(fs *flag.FlagSet, o *Options) {
	fs.BoolVar(&o.Watch, "watch", false, "re-evaluate when a file changes, until interrupted [false]")
	fs.BoolVar(&o.Watch, "w", false, "alias of --watch")
	fs.DurationVar(&o.Debounce, "debounce", 300*time.Millisecond, "settle time before re-evaluating [300ms]")
	fs.IntVar(&o.NoResultExitCode, "no-result-exit-code", appcore.ExitNoResult, "exit code when no section is feasible [1]")
}

func usage(out io.Writer, def func(string) string) {
	fmt.Fprintf(out, "Usage:\n  %s [flags] file.yaml [more.yaml ...]\n\n", ToolName)
	fmt.Fprintln(out, "Scenario:")
	fmt.Fprintf(out, "  -w, --watch                 Re-evaluate when a file changes, until interrupted [%s]\n", def("watch"))
	fmt.Fprintf(out, "      --debounce duration     Settle time before re-evaluating [%s]\n", def("debounce"))
	fmt.Fprintf(out, "      --no-result-exit-code int  Exit code when no section is feasible [%s]\n", def("no-result-exit-code"))
}

func examples(out io.Writer) {
	fmt.Fprintf(out, "  # evaluate every model listed in a scenario\n  %s baseline.yaml\n\n", ToolName)
	fmt.Fprintf(out, "  # several scenarios side by side, as TSV\n  %s -o tsv 'scenarios/*.yaml'\n\n", ToolName)
	fmt.Fprintf(out, "  # keep the report current while editing\n  %s --watch baseline.yaml\n", ToolName)
}

// RunContext parses flags and scenario files and evaluates them.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	var o Options
	sess, code, done := cli.Parse(cli.Tool{
		Name:     ToolName,
		Bind:     func(fs *flag.FlagSet) { bind(fs, &o) },
		Usage:    usage,
		Examples: examples,
	}, argv, stdout, stderr)
	if done {
		return code
	}
	defer sess.Close()

	files, err := cliutil.ExpandPositionals(sess.Positionals)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitUsage
	}
	if sess.Common.Config != "" {
		files = append([]string{sess.Common.Config}, files...)
	}
	if len(files) == 0 {
		fmt.Fprintln(stderr, "error: at least one scenario file is required")
		return appcore.ExitUsage
	}
	if o.Watch {
		switch sess.Common.Output {
		case output.FormatText, output.FormatTSV, output.FormatJSONL:
		default:
			fmt.Fprintf(stderr, "error: --watch needs a streaming output (text, tsv or jsonl), not %q\n", sess.Common.Output)
			return appcore.ExitUsage
		}
	}

	opts := sess.CoreOptions(o.NoResultExitCode)
	opts.Unbuffered = o.Watch
	return appcore.Run(ctx, stdout, stderr, sess.Log, opts,
		func(ctx context.Context, emit appcore.Emit) (int, error) {
			total := 0
			for _, f := range files {
				n, err := EvaluateFile(f, emit, sess.Log)
				total += n
				if err != nil {
					if !o.Watch {
						return total, err
					}
					sess.Log.Error("scenario", zap.String("file", f), zap.Error(err))
				}
			}
			if !o.Watch {
				return total, nil
			}
			return total + watch(ctx, files, o.Debounce, emit, sess.Log), nil
		})
}

func watch(ctx context.Context, files []string, debounce time.Duration, emit appcore.Emit, log *zap.Logger) int {
	w, err := NewWatcher(files, debounce, log)
	if err != nil {
		log.Error("watch", zap.Error(err))
		return 0
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		log.Error("watch", zap.Error(err))
		return 0
	}
	defer w.Stop()
	log.Info("watching scenarios; interrupt to stop", zap.Strings("files", files))

	total := 0
	for {
		select {
		case <-ctx.Done():
			return total
		case batch := <-w.Changes():
			for _, f := range batch {
				n, err := EvaluateFile(f, emit, log)
				total += n
				if err != nil {
					log.Error("scenario", zap.String("file", f), zap.Error(err))
				}
			}
		}
	}
}

// EvaluateFile emits one report per model section of the scenario at path,
// in file order. Infeasible sections become failed reports. It returns the
// number of feasible sections.
func EvaluateFile(path string, emit appcore.Emit, log *zap.Logger) (int, error) {
	sc, err := config.LoadScenario(path)
	if err != nil {
		return 0, err
	}
	if err := sc.Check(models.Known); err != nil {
		return 0, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	ok := 0
	for _, name := range sc.Models() {
		m, _ := models.Lookup(name)
		in := m.New()
		if _, err := in.Apply(sc); err != nil {
			return ok, err
		}
		r, err := in.Evaluate()
		r.Case = sc.Label()
		if err != nil {
			if !errors.Is(err, inputs.ErrInvalid) {
				return ok, err
			}
			r.Err = err.Error()
			log.Warn("section infeasible", zap.String("scenario", sc.Label()), zap.String("model", name), zap.Error(err))
		} else {
			ok++
		}
		if err := emit(r); err != nil {
			return ok, err
		}
	}
	return ok, nil
}

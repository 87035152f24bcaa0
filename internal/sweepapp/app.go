// Package sweepapp evaluates one model over a range of one parameter.
package sweepapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"isru-core/inputs"
	"isru-core/report"

	"isru/internal/appcore"
	"isru/internal/cli"
	"isru/internal/models"
	"isru/internal/modelapp"
	"isru/internal/output"
	"isru/internal/sweep"
)

// ToolName is used in help and error messages.
const ToolName = "isru sweep"

// Options are the sweep-specific flags.
type Options struct {
	Param            string
	From, To         float64
	Steps            int
	Log              bool
	Threads          int
	NoResultExitCode int
}

func bind(fs *flag.FlagSet, o *Options) {
	fs.StringVar(&o.Param, "param", "", "parameter to sweep (flag or snake_case name) [*]")
	fs.Float64Var(&o.From, "from", 0, "first value [*]")
	fs.Float64Var(&o.To, "to", 0, "last value [*]")
	fs.IntVar(&o.Steps, "steps", 11, "number of points, endpoints included [11]")
	fs.BoolVar(&o.Log, "log", false, "geometric spacing [false]")
	fs.IntVar(&o.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&o.NoResultExitCode, "no-result-exit-code", appcore.ExitNoResult, "exit code when no point is feasible [1]")
}

func validate(fs *flag.FlagSet, o Options, in models.Instance) error {
	if o.Param == "" {
		return errors.New("--param is required")
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["from"] || !set["to"] {
		return errors.New("--from and --to are required")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be >= 0")
	}
	if o.NoResultExitCode < 0 || o.NoResultExitCode > 255 {
		return errors.New("--no-result-exit-code must be between 0 and 255")
	}
	return in.Clone().SetFloat(o.Param, o.From)
}

func usage(in models.Instance) func(io.Writer, func(string) string) {
	return func(out io.Writer, def func(string) string) {
		fmt.Fprintf(out, "Usage:\n  %s <model> --param <name> --from <a> --to <b> [--steps n] [--log] [model flags]\n\n", ToolName)
		fmt.Fprintln(out, "Sweep:")
		fmt.Fprintln(out, "      --param string          Parameter to sweep (flag or snake_case name) [*]")
		fmt.Fprintln(out, "      --from float            First value [*]")
		fmt.Fprintln(out, "      --to float              Last value [*]")
		fmt.Fprintf(out, "      --steps int             Number of points, endpoints included [%s]\n", def("steps"))
		fmt.Fprintf(out, "      --log                   Geometric spacing [%s]\n", def("log"))
		fmt.Fprintf(out, "      --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintf(out, "      --no-result-exit-code int  Exit code when no point is feasible [%s]\n\n", def("no-result-exit-code"))
		if in == nil {
			fmt.Fprintf(out, "Models: %s\n", strings.Join(models.Names(), ", "))
			return
		}
		modelapp.ParamUsage(in)(out, def)
	}
}

func examples(out io.Writer) {
	fmt.Fprintf(out, "  # electrolyzer power over the water load\n  %s electrolyzer --param water-load --from 10 --to 100 --steps 10\n\n", ToolName)
	fmt.Fprintf(out, "  # dryer pressure on a log scale, as TSV\n  %s dryer --param pressure --from 50 --to 600 --steps 12 --log -o tsv\n\n", ToolName)
	fmt.Fprintf(out, "  # start from a scenario\n  %s sabatier -c mars.yaml --param conversion_efficiency --from 0.7 --to 1\n", ToolName)
}

// RunContext parses `<model> [flags]` and runs the sweep.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	var o Options
	if len(argv) == 0 || strings.HasPrefix(argv[0], "-") {
		sess, code, done := cli.Parse(cli.Tool{
			Name:     ToolName,
			Bind:     func(fs *flag.FlagSet) { bind(fs, &o) },
			Usage:    usage(nil),
			Examples: examples,
		}, argv, stdout, stderr)
		if done {
			return code
		}
		sess.Close()
		fmt.Fprintf(stderr, "error: missing model (one of: %s)\n", strings.Join(models.Names(), ", "))
		return appcore.ExitUsage
	}

	m, ok := models.Lookup(argv[0])
	if !ok {
		fmt.Fprintf(stderr, "error: unknown model %q (known: %s)\n", argv[0], strings.Join(models.Names(), ", "))
		return appcore.ExitUsage
	}
	in := m.New()
	var fs *flag.FlagSet
	sess, code, done := cli.Parse(cli.Tool{
		Name: ToolName,
		Bind: func(f *flag.FlagSet) {
			fs = f
			in.Bind(f)
			bind(f, &o)
		},
		Usage:    usage(in),
		Examples: examples,
	}, argv[1:], stdout, stderr)
	if done {
		return code
	}
	defer sess.Close()

	if len(sess.Positionals) > 0 {
		fmt.Fprintf(stderr, "error: unexpected arguments: %s\n", strings.Join(sess.Positionals, " "))
		return appcore.ExitUsage
	}
	if err := validate(fs, o, in); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitUsage
	}
	label, err := modelapp.ApplyScenario(sess, in)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitUsage
	}
	values, err := sweep.Values(o.From, o.To, o.Steps, o.Log)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitUsage
	}

	key := strings.ReplaceAll(strings.TrimLeft(o.Param, "-"), "-", "_")
	if sess.Explicit(strings.ReplaceAll(key, "_", "-")) {
		sess.Log.Warn("swept parameter overrides its flag", zap.String("param", key))
	}
	sess.Log.Debug("sweep",
		zap.String("model", m.Name()), zap.String("param", key),
		zap.Float64s("values", values), zap.Int("threads", o.Threads))

	prec := sess.Common.Precision
	return appcore.Run(ctx, stdout, stderr, sess.Log, sess.CoreOptions(o.NoResultExitCode),
		func(ctx context.Context, emit appcore.Emit) (int, error) {
			feasible := 0
			err := sweep.Run(ctx, o.Threads, values,
				func(ctx context.Context, i int, v float64) (report.Report, error) {
					return Point(in, key, v, caseLabel(label, key, v, prec))
				},
				func(i int, r report.Report) error {
					if !r.Failed() {
						feasible++
					}
					return emit(r)
				})
			return feasible, err
		})
}

// Point evaluates a copy of in with param set to v. Invalid or infeasible
// points come back as failed reports; only other errors abort the sweep.
func Point(in models.Instance, param string, v float64, label string) (report.Report, error) {
	pt := in.Clone()
	if err := pt.SetFloat(param, v); err != nil {
		return report.Report{}, err
	}
	r, err := pt.Evaluate()
	r.Case = label
	if err != nil {
		if !errors.Is(err, inputs.ErrInvalid) {
			return r, err
		}
		r.Err = err.Error()
	}
	return r, nil
}

func caseLabel(scenario, key string, v float64, prec int) string {
	c := key + "=" + output.FormatValue(v, prec)
	if scenario != "" {
		c = scenario + " " + c
	}
	return c
}

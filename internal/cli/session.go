// internal/cli/session.go
//
// Session parsing shared by the calculator front ends: environment settings,
// common flags, help/version/examples, logger and scenario file.
package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"isru/internal/appcore"
	"isru/internal/clibase"
	"isru/internal/cliutil"
	"isru/internal/config"
	"isru/internal/logging"
	"isru/internal/models"
	"isru/internal/version"
	"isru/internal/writers"
)

// Tool describes one front end.
type Tool struct {
	Name     string
	Bind     func(fs *flag.FlagSet)                       // tool-specific flags
	Usage    func(out io.Writer, def func(string) string) // tool-specific help sections
	Examples func(out io.Writer)
}

// Session is the parsed shared state of one invocation.
type Session struct {
	Name        string
	Common      clibase.Common
	Env         config.Settings
	Log         *zap.Logger
	Scenario    *config.Scenario
	Positionals []string
	RunID       string

	fs       *flag.FlagSet
	explicit map[string]string
}

// Parse handles everything up to the tool's own work. When done is true the
// caller returns code immediately (help, version, examples or an error).
func Parse(tool Tool, argv []string, stdout, stderr io.Writer) (s *Session, code int, done bool) {
	env, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return nil, appcore.ExitUsage, true
	}

	s = &Session{Name: tool.Name, Env: env, explicit: map[string]string{}}
	fs := NewFlagSet(tool.Name)
	fs.SetOutput(io.Discard)
	noHeader := clibase.Register(fs, &s.Common, env)
	if tool.Bind != nil {
		tool.Bind(fs)
	}
	clibase.UsageCommon(fs, tool.Name, tool.Usage)
	s.fs = fs

	flagArgs, pos := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, printTo(stdout, stderr, func(w io.Writer) { fs.SetOutput(w); fs.Usage() }), true
		}
		fmt.Fprintln(stderr, "error:", err)
		fmt.Fprintf(stderr, "run '%s --help' for usage\n", tool.Name)
		return nil, appcore.ExitUsage, true
	}
	s.Positionals = pos
	fs.Visit(func(f *flag.Flag) { s.explicit[f.Name] = f.Value.String() })

	if s.Common.Version {
		return nil, printTo(stdout, stderr, func(w io.Writer) {
			fmt.Fprintf(w, "%s version %s\n", tool.Name, version.Version)
		}), true
	}
	if s.Common.Examples {
		return nil, printTo(stdout, stderr, func(w io.Writer) {
			clibase.PrintExamples(w, tool.Name, tool.Examples)
		}), true
	}
	if err := clibase.AfterParse(&s.Common, noHeader); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return nil, appcore.ExitUsage, true
	}

	level := logging.Resolve(s.Common.LogLevel, s.Common.Verbose, s.Common.Quiet)
	s.Log, err = logging.New(stderr, level)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return nil, appcore.ExitUsage, true
	}

	if s.Common.Config != "" {
		sc, err := config.LoadScenario(s.Common.Config)
		if err == nil {
			err = sc.Check(models.Known)
		}
		if err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return nil, appcore.ExitUsage, true
		}
		s.Scenario = sc
		s.Log.Debug("scenario loaded", zap.String("path", sc.Path), zap.Strings("models", sc.Models()))
	}

	s.RunID = uuid.NewString()
	return s, 0, false
}

// Explicit reports whether the flag was given on the command line.
func (s *Session) Explicit(name string) bool {
	_, ok := s.explicit[name]
	return ok
}

// Reapply re-sets every explicit flag so that command-line values win over a
// scenario decoded after parsing.
func (s *Session) Reapply() error {
	for name, v := range s.explicit {
		if err := s.fs.Set(name, v); err != nil {
			return fmt.Errorf("--%s: %w", name, err)
		}
	}
	return nil
}

// CoreOptions maps the common flags onto the run loop options.
func (s *Session) CoreOptions(noResultExitCode int) appcore.Options {
	return appcore.Options{
		Writer: writers.Options{
			Format:    s.Common.Output,
			Header:    s.Common.Header,
			Pretty:    s.Common.Pretty,
			Precision: s.Common.Precision,
			RunID:     s.RunID,
		},
		NoResultExitCode: noResultExitCode,
	}
}

// Close flushes the logger.
func (s *Session) Close() { _ = s.Log.Sync() }

func printTo(stdout, stderr io.Writer, fn func(io.Writer)) int {
	w := bufio.NewWriter(stdout)
	fn(w)
	if err := w.Flush(); writers.IsBrokenPipe(err) {
		return appcore.ExitOK
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return appcore.ExitOutput
	}
	return appcore.ExitOK
}

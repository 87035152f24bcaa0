// Package rootcmd is the umbrella `isru` command.
package rootcmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"isru/internal/appcore"
	"isru/internal/config"
	"isru/internal/logging"
	"isru/internal/modelapp"
	"isru/internal/models"
	"isru/internal/scenarioapp"
	"isru/internal/sweepapp"
	"isru/internal/version"
)

// exitError carries a delegated runner's exit code through cobra.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

type runner func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

type root struct {
	stdout, stderr io.Writer
	verbose        bool
	logger         *zap.Logger
}

// New builds the command tree writing to stdout and stderr.
func New(stdout, stderr io.Writer) *cobra.Command {
	r := &root{stdout: stdout, stderr: stderr, logger: zap.NewNop()}
	cmd := &cobra.Command{
		Use:   "isru",
		Short: "ISRU plant sizing toolkit",
		Long: `isru sizes in-situ resource utilization plants: regolith extraction,
water electrolysis, ilmenite and carbothermal reduction, regolith drying and
Martian atmosphere processing.

Each model is a steady-state, single-pass calculation from scalar inputs.
Run a model directly, sweep one of its parameters, or evaluate scenario files.`,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.LoadSettings()
			if err != nil {
				return err
			}
			logger, err := logging.New(r.stderr, logging.Resolve(env.LogLevel, r.verbose, false))
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			r.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = r.logger.Sync()
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.PersistentFlags().BoolVar(&r.verbose, "verbose", false, "debug logging")
	cmd.SetVersionTemplate("isru version {{.Version}}\n")

	for _, m := range models.All() {
		name := m.Name()
		cmd.AddCommand(r.delegate(name, m.Summary(), func(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
			return modelapp.RunContext(ctx, name, argv, stdout, stderr)
		}))
	}
	cmd.AddCommand(
		r.delegate("sweep <model>", "evaluate one model over a range of one parameter", sweepapp.RunContext),
		r.delegate("scenario <file>...", "evaluate the models listed in scenario files", scenarioapp.RunContext),
		r.modelsCmd(),
		r.docCmd(),
		r.versionCmd(),
	)
	return cmd
}

// delegate wraps a flag-package runner; it parses its own flags, help included.
// Flag parsing is disabled here, so flags given before the subcommand name
// (`isru --verbose dryer`) arrive in args and reach the runner unchanged.
func (r *root) delegate(use, short string, run runner) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			r.logger.Debug("delegating", zap.String("command", cmd.Name()), zap.Strings("args", args))
			if code := run(cmd.Context(), args, r.stdout, r.stderr); code != appcore.ExitOK {
				return &exitError{code: code}
			}
			return nil
		},
	}
}

func (r *root) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(r.stdout, "isru version %s\n", version.Version)
			return err
		},
	}
}

// RunContext executes the command tree and maps the outcome to an exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := New(stdout, stderr)
	cmd.SetArgs(argv)
	err := cmd.ExecuteContext(ctx)
	var ee *exitError
	switch {
	case err == nil:
		return appcore.ExitOK
	case errors.As(err, &ee):
		return ee.code
	case errors.Is(err, context.Canceled):
		return appcore.ExitCanceled
	default:
		fmt.Fprintln(stderr, "error:", err)
		return appcore.ExitUsage
	}
}

// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"isru/internal/config"
	"isru/internal/output"
)

// Common holds CLI fields shared by every calculator front end.
type Common struct {
	// Output
	Output    string // text|tsv|json|jsonl|yaml
	Pretty    bool
	Header    bool
	Precision int

	// Configuration
	Config   string
	LogLevel string

	// Misc
	Quiet    bool
	Verbose  bool
	Version  bool
	Examples bool
}

// Register wires shared flags onto fs, seeded from the environment settings,
// and returns a pointer to the "no-header" bool that AfterParse folds into
// Common.Header.
func Register(fs *flag.FlagSet, c *Common, env config.Settings) *bool {
	c.LogLevel = env.LogLevel

	// Output
	fs.StringVar(&c.Output, "output", env.Output, "output: "+strings.Join(output.Formats(), " | "))
	fs.StringVar(&c.Output, "o", env.Output, "alias of --output")
	fs.BoolVar(&c.Pretty, "pretty", false, "framed report panels (text) [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress TSV header line [false]")
	fs.IntVar(&c.Precision, "precision", env.Precision, "significant digits in text/TSV")

	// Configuration
	fs.StringVar(&c.Config, "config", env.Config, "scenario file (YAML) to load parameters from")
	fs.StringVar(&c.Config, "c", env.Config, "alias of --config")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "only log errors [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Verbose, "verbose", false, "debug logging [false]")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Examples, "examples", false, "print quickstart examples and exit [false]")

	return &noHeader
}

// AfterParse finalizes header and runs shared validation.
func AfterParse(c *Common, noHeader *bool) error {
	c.Header = !*noHeader
	return Validate(c)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	if !output.ValidFormat(c.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", c.Output, strings.Join(output.Formats(), ", "))
	}
	if c.Precision < 1 || c.Precision > 17 {
		return errors.New("--precision must be between 1 and 17")
	}
	if c.Quiet && c.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}

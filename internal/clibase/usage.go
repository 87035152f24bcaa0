// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"isru/internal/output"
	"isru/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage line, model parameters, etc.).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s: ISRU plant sizing toolkit\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: %s [%s]\n", strings.Join(output.Formats(), " | "), def("output"))
		fmt.Fprintf(out, "      --pretty                Framed report panels (text) [%s]\n", def("pretty"))
		fmt.Fprintf(out, "      --no-header             Suppress TSV header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --precision int         Significant digits in text/TSV [%s]\n", def("precision"))

		fmt.Fprintln(out, "\nConfiguration:")
		fmt.Fprintf(out, "  -c, --config file           Scenario file (YAML) [%s]\n", def("config"))
		fmt.Fprintln(out, "      Environment: ISRU_OUTPUT, ISRU_PRECISION, ISRU_LOG_LEVEL, ISRU_CONFIG")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Only log errors [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Debug logging [%s]\n", def("verbose"))
		fmt.Fprintln(out, "      --examples              Print quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}

// ParamUsage prints one aligned line per flag, with its default.
func ParamUsage(out io.Writer, title string, flags []string, usage func(string) string, def func(string) string) {
	fmt.Fprintf(out, "%s:\n", title)
	for _, f := range flags {
		fmt.Fprintf(out, "      --%-26s %s [%s]\n", f, usage(f), def(f))
	}
}

// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"isru-core/report"
)

// Options configure a report sink.
type Options struct {
	Format    string
	Header    bool // TSV header rows
	Pretty    bool // framed panels for text output
	Precision int
	RunID     string
}

// Sink consumes reports in order; Close flushes buffered formats.
type Sink interface {
	Write(r report.Report) error
	Close() error
}

// SinkFactory builds a Sink for one output stream.
type SinkFactory func(w io.Writer, opts Options) Sink

var sinks = map[string]SinkFactory{}

// Register installs a format (idempotent last-wins).
func Register(format string, fn SinkFactory) { sinks[format] = fn }

// Registered lists known formats, sorted.
func Registered() []string {
	out := make([]string, 0, len(sinks))
	for k := range sinks {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// NewSink dispatches on opts.Format.
func NewSink(w io.Writer, opts Options) (Sink, error) {
	fn, ok := sinks[opts.Format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (no writer registered)", opts.Format)
	}
	return fn(w, opts), nil
}

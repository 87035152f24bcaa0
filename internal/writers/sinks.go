// internal/writers/sinks.go
package writers

import (
	"encoding/json"
	"io"

	"isru-core/report"

	"isru/internal/jsonutil"
	"isru/internal/output"
	"isru/internal/pretty"
)

func init() {
	Register(output.FormatText, newTextSink)
	Register(output.FormatTSV, newTSVSink)
	Register(output.FormatJSON, func(w io.Writer, o Options) Sink {
		return &bufferedSink{w: w, o: o, flush: output.WriteJSON}
	})
	Register(output.FormatYAML, func(w io.Writer, o Options) Sink {
		return &bufferedSink{w: w, o: o, flush: output.WriteYAML}
	})
	Register(output.FormatJSONL, func(w io.Writer, o Options) Sink {
		return &jsonlSink{enc: jsonutil.NewLineEncoder(w), runID: o.RunID}
	})
}

type textSink struct {
	w    io.Writer
	o    Options
	seen bool
}

func newTextSink(w io.Writer, o Options) Sink { return &textSink{w: w, o: o} }

func (s *textSink) Write(r report.Report) error {
	if s.seen {
		if _, err := io.WriteString(s.w, "\n"); err != nil {
			return err
		}
	}
	s.seen = true
	if s.o.Pretty {
		_, err := io.WriteString(s.w, pretty.Render(r, pretty.Options{Precision: s.o.Precision}))
		return err
	}
	return output.WriteText(s.w, r, s.o.Precision)
}

func (s *textSink) Close() error { return nil }

// tsvSink repeats the header whenever the report shape changes.
type tsvSink struct {
	w      io.Writer
	o      Options
	header string
}

func newTSVSink(w io.Writer, o Options) Sink { return &tsvSink{w: w, o: o} }

func (s *tsvSink) Write(r report.Report) error {
	h := output.TSVHeader(r)
	if r.Failed() && s.header != "" {
		h = s.header
	}
	if h != s.header {
		s.header = h
		if s.o.Header {
			if err := output.WriteTSVLine(s.w, h); err != nil {
				return err
			}
		}
	}
	return output.WriteTSVLine(s.w, output.TSVRow(s.header, r, s.o.Precision))
}

func (s *tsvSink) Close() error { return nil }

type jsonlSink struct {
	enc   *json.Encoder
	runID string
}

func (s *jsonlSink) Write(r report.Report) error { return output.EncodeJSONL(s.enc, r, s.runID) }
func (s *jsonlSink) Close() error               { return nil }

// bufferedSink collects everything and writes one document on Close.
type bufferedSink struct {
	w     io.Writer
	o     Options
	list  []report.Report
	flush func(io.Writer, []report.Report, string) error
}

func (s *bufferedSink) Write(r report.Report) error {
	s.list = append(s.list, r)
	return nil
}

func (s *bufferedSink) Close() error { return s.flush(s.w, s.list, s.o.RunID) }

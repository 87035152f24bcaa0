// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"isru-core/report"
)

// FigureLine renders "Label (unit) = value"; unitless figures omit the parentheses.
func FigureLine(f report.Figure, prec int) string {
	if f.Unit == "" {
		return fmt.Sprintf("%s = %s", f.Label, FormatValue(f.Value, prec))
	}
	return fmt.Sprintf("%s (%s) = %s", f.Label, f.Unit, FormatValue(f.Value, prec))
}

// Heading is the block title line of a report.
func Heading(r report.Report) string {
	if r.Case != "" {
		return fmt.Sprintf("%s [%s]:", r.Title, r.Case)
	}
	return r.Title + ":"
}

// WriteText prints one block per report, separated by a blank line by the caller.
func WriteText(w io.Writer, r report.Report, prec int) error {
	if _, err := fmt.Fprintln(w, Heading(r)); err != nil {
		return err
	}
	if r.Failed() {
		_, err := fmt.Fprintf(w, "  error: %s\n", r.Err)
		return err
	}
	for _, f := range r.Figures {
		if _, err := fmt.Fprintf(w, "  %s\n", FigureLine(f, prec)); err != nil {
			return err
		}
	}
	return nil
}

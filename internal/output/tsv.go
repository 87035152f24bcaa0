// internal/output/tsv.go
package output

import (
	"io"
	"strings"

	"isru-core/report"
)

// TSVLead and TSVTail frame every TSV header; input and figure keys sit between them.
const (
	TSVLead = "model\tcase"
	TSVTail = "error"
)

// TSVHeader is the header row for reports shaped like r.
func TSVHeader(r report.Report) string {
	cols := []string{TSVLead}
	for _, f := range r.Inputs {
		cols = append(cols, f.Key)
	}
	for _, f := range r.Figures {
		cols = append(cols, f.Key)
	}
	cols = append(cols, TSVTail)
	return strings.Join(cols, "\t")
}

// TSVRow renders r under header. Failed reports leave figure cells empty.
func TSVRow(header string, r report.Report, prec int) string {
	cols := strings.Split(header, "\t")
	row := make([]string, len(cols))
	row[0], row[1] = r.Model, r.Case
	for i := 2; i < len(cols)-1; i++ {
		key := cols[i]
		if f, ok := r.Input(key); ok {
			row[i] = FormatValue(f.Value, prec)
		} else if f, ok := r.Get(key); ok {
			row[i] = FormatValue(f.Value, prec)
		}
	}
	row[len(row)-1] = sanitize(r.Err)
	return strings.Join(row, "\t")
}

func sanitize(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ").Replace(s)
}

// WriteTSVLine writes one line.
func WriteTSVLine(w io.Writer, line string) error {
	_, err := io.WriteString(w, line+"\n")
	return err
}

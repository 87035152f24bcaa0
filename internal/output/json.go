// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"isru-core/report"

	"isru/internal/jsonutil"
	"isru/pkg/api"
)

func toAPIFigures(fs []report.Figure) []api.FigureV1 {
	if len(fs) == 0 {
		return nil
	}
	out := make([]api.FigureV1, len(fs))
	for i, f := range fs {
		out[i] = api.FigureV1{Key: f.Key, Label: f.Label, Unit: f.Unit, Value: f.Value}
	}
	return out
}

// ToAPIReport converts a domain report to the stable wire schema (v1).
func ToAPIReport(r report.Report, runID string) api.ReportV1 {
	v := api.ReportV1{
		Schema: api.SchemaReportV1,
		RunID:  runID,
		Model:  r.Model,
		Title:  r.Title,
		Case:   r.Case,
		Inputs: toAPIFigures(r.Inputs),
		Notes:  append([]string(nil), r.Notes...),
		Error:  r.Err,
	}
	if !r.Failed() {
		v.Figures = toAPIFigures(r.Figures)
	}
	return v
}

func toAPIReports(list []report.Report, runID string) []api.ReportV1 {
	out := make([]api.ReportV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIReport(r, runID))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 reports (pretty-indented).
func WriteJSON(w io.Writer, list []report.Report, runID string) error {
	return jsonutil.EncodePretty(w, toAPIReports(list, runID))
}

// EncodeJSONL writes one compact v1 report per line.
func EncodeJSONL(enc *json.Encoder, r report.Report, runID string) error {
	return enc.Encode(ToAPIReport(r, runID))
}

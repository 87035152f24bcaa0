// pkg/api/report_v1.go
package api

// SchemaReportV1 tags every ReportV1 envelope.
const SchemaReportV1 = "isru.report/v1"

// FigureV1 is one named scalar of a report.
type FigureV1 struct {
	Key   string  `json:"key" yaml:"key"`
	Label string  `json:"label" yaml:"label"`
	Unit  string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Value float64 `json:"value" yaml:"value"`
}

// ReportV1 is the stable JSON/JSONL/YAML schema for one model evaluation.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	Schema  string     `json:"schema" yaml:"schema"`
	RunID   string     `json:"run_id" yaml:"run_id"`
	Model   string     `json:"model" yaml:"model"`
	Title   string     `json:"title" yaml:"title"`
	Case    string     `json:"case,omitempty" yaml:"case,omitempty"`
	Inputs  []FigureV1 `json:"inputs" yaml:"inputs"`
	Figures []FigureV1 `json:"figures,omitempty" yaml:"figures,omitempty"`
	Notes   []string   `json:"notes,omitempty" yaml:"notes,omitempty"`
	Error   string     `json:"error,omitempty" yaml:"error,omitempty"` // set instead of Figures for failed points
}

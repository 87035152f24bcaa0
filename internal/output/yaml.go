// internal/output/yaml.go
package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"isru-core/report"
)

// WriteYAML writes the reports as a YAML sequence of v1 envelopes.
func WriteYAML(w io.Writer, list []report.Report, runID string) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toAPIReports(list, runID)); err != nil {
		return err
	}
	return enc.Close()
}

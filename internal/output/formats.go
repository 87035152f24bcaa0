// internal/output/formats.go
package output

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatYAML  = "yaml"
)

// Formats lists the accepted formats in help order.
func Formats() []string {
	return []string{FormatText, FormatTSV, FormatJSON, FormatJSONL, FormatYAML}
}

// ValidFormat reports whether f is one of Formats.
func ValidFormat(f string) bool {
	for _, x := range Formats() {
		if x == f {
			return true
		}
	}
	return false
}

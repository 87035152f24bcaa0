// internal/models/doc.go
package models

import (
	"embed"
	"fmt"
)

//go:embed docs/*.md
var docs embed.FS

// Doc returns the markdown notes (assumptions and sources) of a model.
func Doc(name string) (string, error) {
	b, err := docs.ReadFile("docs/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("no notes for model %q", name)
	}
	return string(b), nil
}

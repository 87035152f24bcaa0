// Package pretty renders reports as framed terminal panels for --pretty.
package pretty

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"isru-core/report"

	"isru/internal/output"
)

// Options control the panel rendering.
type Options struct {
	Precision int    // significant digits; <=0 uses output.DefaultPrecision
	Lang      string // BCP 47 tag for digit grouping; "" means English
}

// DefaultOptions is what --pretty uses.
var DefaultOptions = Options{Precision: output.DefaultPrecision, Lang: "en"}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#AAAAAA"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

func printer(tag string) *message.Printer {
	lang := language.English
	if tag != "" {
		if t, err := language.Parse(tag); err == nil {
			lang = t
		}
	}
	return message.NewPrinter(lang)
}

// Number formats v with grouped digits and prec significant digits.
// Very small magnitudes fall back to exponent notation.
func Number(p *message.Printer, v float64, prec int) string {
	if prec <= 0 {
		prec = output.DefaultPrecision
	}
	a := math.Abs(v)
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) || a < 1e-4 || a >= 1e15 {
		return output.FormatValue(v, prec)
	}
	d := output.Decimals(v, prec)
	s := p.Sprintf("%.*f", d, v)
	if d > 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".,")
	}
	return s
}

func table(p *message.Printer, figs []report.Figure, prec int) string {
	labels := make([]string, len(figs))
	values := make([]string, len(figs))
	lw, vw := 0, 0
	for i, f := range figs {
		labels[i] = f.Label
		values[i] = Number(p, f.Value, prec)
		lw = max(lw, lipgloss.Width(labels[i]))
		vw = max(vw, lipgloss.Width(values[i]))
	}
	var b strings.Builder
	for i, f := range figs {
		if i > 0 {
			b.WriteByte('\n')
		}
		line := fmt.Sprintf("  %-*s  %*s", lw, labels[i], vw, values[i])
		if f.Unit != "" {
			line += " " + f.Unit
		}
		b.WriteString(strings.TrimRight(line, " "))
	}
	return b.String()
}

// Render draws one report as a rounded panel followed by its notes.
func Render(r report.Report, opts Options) string {
	p := printer(opts.Lang)
	title := r.Title
	if r.Case != "" {
		title += " [" + r.Case + "]"
	}
	parts := []string{titleStyle.Render(title)}
	if len(r.Inputs) > 0 {
		parts = append(parts, "", sectionStyle.Render("Inputs"), table(p, r.Inputs, opts.Precision))
	}
	if r.Failed() {
		parts = append(parts, "", errorStyle.Render("error: "+r.Err))
	} else {
		parts = append(parts, "", sectionStyle.Render("Results"), table(p, r.Figures, opts.Precision))
	}
	out := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	for _, n := range r.Notes {
		out += "\n" + noteStyle.Render("note: "+n)
	}
	return out + "\n"
}

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/slopcheck/internal/detect"
	"github.com/dshills/slopcheck/internal/rules"
)

// TextWriter outputs a human-readable text report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *detect.Report) error {
	ew := &errWriter{w: w}

	name := report.Input.Path
	if name == "" {
		name = "(stdin)"
	}
	ew.printf("Slop Report — %s (%s)\n", name, report.Input.Kind)
	ew.println(strings.Repeat("─", 60))
	ew.printf("Score: %d/100 — %s\n", report.Score, report.Verdict)
	ew.printf("Findings: %d total\n", report.Summary.TotalFindings)
	ew.println(strings.Repeat("─", 60))

	if report.Summary.TotalFindings == 0 {
		ew.println("\nNo slop detected. Looks good!")
		return ew.err
	}

	grouped := report.ByCategory()
	for _, cat := range rules.Categories() {
		findings := grouped[cat]
		if len(findings) == 0 {
			continue
		}

		ew.printf("\n%s (%d)\n", categoryLabel(cat), len(findings))
		ew.println(strings.Repeat("─", 40))
		for _, f := range findings {
			if cat.Structural() {
				ew.printf("  line %d: '%s'\n", f.Line, f.Match)
			} else {
				ew.printf("  line %d:%d  %q\n", f.Line, f.Column, f.Match)
			}
		}
	}

	ew.printf("\n%s\n", strings.Repeat("─", 60))
	ew.printf("Scanned %d lines in %dms\n", report.Input.Lines, report.Timing.TotalMs)

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

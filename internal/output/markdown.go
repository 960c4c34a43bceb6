package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/slopcheck/internal/detect"
	"github.com/dshills/slopcheck/internal/rules"
)

// MarkdownWriter outputs a PR-comment-friendly markdown report.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *detect.Report) error {
	name := report.Input.Path
	if name == "" {
		name = "(stdin)"
	}
	fmt.Fprintf(w, "## Slop Report — `%s`\n\n", name)
	fmt.Fprintf(w, "**Score: %d/100 — %s**\n\n", report.Score, report.Verdict)

	// Summary table
	fmt.Fprintf(w, "| Category | Count |\n")
	fmt.Fprintf(w, "|----------|-------|\n")
	for _, cat := range rules.Categories() {
		if n := report.Summary.Counts[cat]; n > 0 {
			fmt.Fprintf(w, "| %s | %d |\n", titleCase(string(cat)), n)
		}
	}
	fmt.Fprintf(w, "| **Total** | **%d** |\n\n", report.Summary.TotalFindings)

	if report.Summary.TotalFindings == 0 {
		fmt.Fprintln(w, "No slop detected. :white_check_mark:")
		return nil
	}

	// Collapsible sections per category
	grouped := report.ByCategory()
	for _, cat := range rules.Categories() {
		findings := grouped[cat]
		if len(findings) == 0 {
			continue
		}

		fmt.Fprintf(w, "<details>\n<summary>%s (%d)</summary>\n\n", categoryLabel(cat), len(findings))
		for _, f := range findings {
			fmt.Fprintf(w, "- line %d: `%s` (%s)\n", f.Line, f.Match, f.Rule)
		}
		fmt.Fprintf(w, "\n</details>\n\n")
	}

	fmt.Fprintf(w, "*Scanned %d lines in %dms*\n", report.Input.Lines, report.Timing.TotalMs)
	return nil
}

// titleCase turns a snake_case category name into a display label.
func titleCase(s string) string {
	words := strings.Split(s, "_")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

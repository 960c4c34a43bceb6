package detect

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dshills/slopcheck/internal/rules"
)

const (
	toolName    = "slopcheck"
	toolVersion = "1.0"
)

// Options control a single analysis.
type Options struct {
	// Kind forces prose or code scanning. Empty means auto-detect from the
	// file extension (prose when analyzing raw text).
	Kind Kind
	// Catalog overrides the rule catalog. Nil means the built-in default.
	Catalog *rules.Catalog
}

// AnalyzeFile reads a document from disk and analyzes it. A missing or
// unreadable file is the one error condition; content never causes an error.
func AnalyzeFile(path string, opts Options) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if opts.Kind == "" {
		opts.Kind = KindForPath(path)
	}
	report := Analyze(string(data), opts)
	report.Input.Path = path
	return report, nil
}

// Analyze scans text against the catalog and returns a scored report. Empty
// input yields score 0 with zero findings in every category.
func Analyze(text string, opts Options) *Report {
	start := time.Now()

	catalog := opts.Catalog
	if catalog == nil {
		catalog = rules.Default()
	}
	kind := opts.Kind
	if kind == "" {
		kind = KindProse
	}

	scanStart := time.Now()
	findings := scan(text, catalog, kind)
	scanMs := time.Since(scanStart).Milliseconds()

	score := scoreFindings(findings, catalog)

	return &Report{
		Tool:    toolName,
		Version: toolVersion,
		RunID:   generateRunID(),
		Input: InputInfo{
			Kind:  kind,
			Bytes: len(text),
			Lines: countLines(text),
		},
		Score:    score,
		Verdict:  VerdictFor(score),
		Summary:  ComputeSummary(findings),
		Findings: findings,
		Timing: Timing{
			ScanMs:  scanMs,
			TotalMs: time.Since(start).Milliseconds(),
		},
	}
}

// KindForPath picks the scan kind from a file extension. Unknown extensions
// are treated as prose.
func KindForPath(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".go", ".py", ".r", ".js", ".jsx", ".ts", ".tsx", ".rb", ".jl",
		".c", ".h", ".cpp", ".cc", ".rs", ".java", ".kt", ".swift",
		".sh", ".sql", ".pl", ".scala":
		return KindCode
	default:
		return KindProse
	}
}

// scan runs every applicable rule over the document and returns findings
// sorted by position. Structural categories are skipped for prose inputs.
func scan(text string, catalog *rules.Catalog, kind Kind) []Finding {
	type located struct {
		offset  int
		finding Finding
	}

	starts := lineStarts(text)
	var hits []located

	for _, cat := range rules.Categories() {
		if cat.Structural() && kind != KindCode {
			continue
		}
		for _, rule := range catalog.Rules(cat) {
			matches := rule.Pattern.FindAllStringSubmatchIndex(text, -1)
			for _, m := range matches {
				matched := strings.TrimSpace(text[m[0]:m[1]])
				// Structural rules capture the offending identifier.
				if cat.Structural() && len(m) >= 4 && m[2] >= 0 {
					matched = text[m[2]:m[3]]
				}
				line, col := position(starts, text, m[0])
				hits = append(hits, located{
					offset: m[0],
					finding: Finding{
						Category: cat,
						Rule:     rule.Name,
						Match:    matched,
						Severity: rule.Severity,
						Line:     line,
						Column:   col,
					},
				})
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].offset < hits[j].offset })

	findings := make([]Finding, 0, len(hits))
	for _, h := range hits {
		findings = append(findings, h.finding)
	}
	return findings
}

// scoreFindings sums severity times category weight. Generic identifier
// categories count each unique name once so repeated use of one bad variable
// is not over-penalized. The score is clamped to 100.
func scoreFindings(findings []Finding, catalog *rules.Catalog) int {
	score := 0
	seen := make(map[string]bool)
	for _, f := range findings {
		if f.Category == rules.CategoryGenericVariables || f.Category == rules.CategoryGenericFunctions {
			key := string(f.Category) + ":" + strings.ToLower(f.Match)
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		score += f.Severity * catalog.Weight(f.Category)
	}
	if score > 100 {
		score = 100
	}
	return score
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

// lineStarts returns the byte offset of each line start.
func lineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// position converts a byte offset into a 1-based line and column. Columns
// count runes, not bytes, so multi-byte characters earlier on the line do
// not shift them.
func position(starts []int, text string, offset int) (line, col int) {
	idx := sort.SearchInts(starts, offset+1) - 1
	return idx + 1, utf8.RuneCountInString(text[starts[idx]:offset]) + 1
}

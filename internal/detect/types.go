package detect

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/dshills/slopcheck/internal/rules"
)

// Kind describes how an input document is scanned.
type Kind string

const (
	// KindProse scans only the prose categories.
	KindProse Kind = "prose"
	// KindCode additionally runs the structural code checks.
	KindCode Kind = "code"
)

// Finding is a single rule match, ordered by position of appearance.
type Finding struct {
	Category rules.Category `json:"category"`
	Rule     string         `json:"rule"`
	Match    string         `json:"match"`
	Severity int            `json:"severity"`
	Line     int            `json:"line"`
	Column   int            `json:"column"`
}

// InputInfo describes what was analyzed.
type InputInfo struct {
	Path  string `json:"path,omitempty"`
	Kind  Kind   `json:"kind"`
	Bytes int    `json:"bytes"`
	Lines int    `json:"lines"`
}

// Summary holds per-category finding counts. Every category is present even
// when its count is zero.
type Summary struct {
	TotalFindings int                    `json:"totalFindings"`
	Counts        map[rules.Category]int `json:"counts"`
}

// Timing contains scan timings in milliseconds.
type Timing struct {
	ScanMs  int64 `json:"scanMs"`
	TotalMs int64 `json:"totalMs"`
}

// Report is the immutable result of one detector invocation.
type Report struct {
	Tool     string    `json:"tool"`
	Version  string    `json:"version"`
	RunID    string    `json:"runId"`
	Input    InputInfo `json:"input"`
	Score    int       `json:"score"`
	Verdict  string    `json:"verdict"`
	Summary  Summary   `json:"summary"`
	Findings []Finding `json:"findings"`
	Timing   Timing    `json:"timing"`
}

// ByCategory groups findings by category, preserving first-to-last document
// order within each group.
func (r *Report) ByCategory() map[rules.Category][]Finding {
	m := make(map[rules.Category][]Finding)
	for _, f := range r.Findings {
		m[f.Category] = append(m[f.Category], f)
	}
	return m
}

// ComputeSummary calculates per-category counts from findings.
func ComputeSummary(findings []Finding) Summary {
	s := Summary{Counts: make(map[rules.Category]int, len(rules.Categories()))}
	for _, cat := range rules.Categories() {
		s.Counts[cat] = 0
	}
	for _, f := range findings {
		s.Counts[f.Category]++
		s.TotalFindings++
	}
	return s
}

// Verdict thresholds. Scores below VerdictModerateAt read "Low slop".
const (
	VerdictModerateAt = 20
	VerdictHighAt     = 50
)

// VerdictFor maps a score to its human-readable verdict.
func VerdictFor(score int) string {
	switch {
	case score < VerdictModerateAt:
		return "Low slop"
	case score < VerdictHighAt:
		return "Moderate slop"
	default:
		return "High slop"
	}
}

func generateRunID() string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%d", time.Now().UnixNano())))
	return fmt.Sprintf("%x", h[:16])
}

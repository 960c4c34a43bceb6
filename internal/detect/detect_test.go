package detect

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/slopcheck/internal/rules"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func matchesFor(r *Report, cat rules.Category) []string {
	var out []string
	for _, f := range r.ByCategory()[cat] {
		out = append(out, f.Match)
	}
	return out
}

func TestAnalyze_CleanText(t *testing.T) {
	content := `# Analysis

We analyzed the data and found three trends.
The system handles 100 requests per second.
`
	report := Analyze(content, Options{})

	if report.Score >= 20 {
		t.Errorf("Score = %d, want < 20", report.Score)
	}
	if report.Verdict != "Low slop" {
		t.Errorf("Verdict = %q, want %q", report.Verdict, "Low slop")
	}
	for _, cat := range rules.Categories() {
		if n := report.Summary.Counts[cat]; n != 0 {
			t.Errorf("category %s has %d findings, want 0", cat, n)
		}
	}
}

func TestAnalyze_HighRiskPhrases(t *testing.T) {
	content := `In this document, we will delve into the complexities of the system.
It is important to note that we must navigate the complexities.
In today's fast-paced world, this is crucial.
`
	report := Analyze(content, Options{})

	if report.Score <= 50 {
		t.Errorf("Score = %d, want > 50", report.Score)
	}

	matches := matchesFor(report, rules.CategoryHighRisk)
	var sawDelve, sawFastPaced bool
	for _, m := range matches {
		if strings.Contains(m, "delve into") {
			sawDelve = true
		}
		if strings.Contains(m, "fast-paced world") {
			sawFastPaced = true
		}
	}
	if !sawDelve {
		t.Errorf("high_risk matches %v missing %q", matches, "delve into")
	}
	if !sawFastPaced {
		t.Errorf("high_risk matches %v missing %q", matches, "fast-paced world")
	}
}

func TestAnalyze_Buzzwords(t *testing.T) {
	content := `We leverage a holistic approach to empower users.
This paradigm shift will create a synergistic effect.
`
	report := Analyze(content, Options{})

	matches := matchesFor(report, rules.CategoryBuzzwords)
	for _, want := range []string{"leverage", "holistic approach", "synergistic"} {
		found := false
		for _, m := range matches {
			if m == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("buzzword matches %v missing %q", matches, want)
		}
	}
}

func TestAnalyze_MetaCommentary(t *testing.T) {
	content := `In this article, we will explore the API.
Let's take a closer look at the function.
`
	report := Analyze(content, Options{})

	if n := len(report.ByCategory()[rules.CategoryMetaCommentary]); n < 2 {
		t.Errorf("meta_commentary findings = %d, want >= 2", n)
	}
}

func TestAnalyze_Empty(t *testing.T) {
	report := Analyze("", Options{})

	if report.Score != 0 {
		t.Errorf("Score = %d, want 0", report.Score)
	}
	if len(report.Findings) != 0 {
		t.Errorf("Findings = %d, want 0", len(report.Findings))
	}
	if report.Input.Lines != 0 {
		t.Errorf("Lines = %d, want 0", report.Input.Lines)
	}
}

func TestAnalyze_FindingsInDocumentOrder(t *testing.T) {
	content := "This synergistic plan will delve into the details.\n"
	report := Analyze(content, Options{})

	if len(report.Findings) < 2 {
		t.Fatalf("Findings = %d, want >= 2", len(report.Findings))
	}
	if report.Findings[0].Match != "synergistic" {
		t.Errorf("Findings[0].Match = %q, want %q", report.Findings[0].Match, "synergistic")
	}
	if !strings.Contains(report.Findings[1].Match, "delve into") {
		t.Errorf("Findings[1].Match = %q, want to contain %q", report.Findings[1].Match, "delve into")
	}
}

func TestAnalyze_LinesAndColumns(t *testing.T) {
	content := "clean first line\nwe leverage tools\n"
	report := Analyze(content, Options{})

	findings := report.ByCategory()[rules.CategoryBuzzwords]
	if len(findings) != 1 {
		t.Fatalf("buzzword findings = %d, want 1", len(findings))
	}
	if findings[0].Line != 2 {
		t.Errorf("Line = %d, want 2", findings[0].Line)
	}
	if findings[0].Column != 4 {
		t.Errorf("Column = %d, want 4", findings[0].Column)
	}
}

func TestAnalyze_ColumnsCountRunes(t *testing.T) {
	// "café" is five bytes but four runes; the column must not drift.
	content := "café teams leverage tools\n"
	report := Analyze(content, Options{})

	findings := report.ByCategory()[rules.CategoryBuzzwords]
	if len(findings) != 1 {
		t.Fatalf("buzzword findings = %d, want 1", len(findings))
	}
	if findings[0].Column != 12 {
		t.Errorf("Column = %d, want 12", findings[0].Column)
	}
}

func TestAnalyze_InvalidUTF8(t *testing.T) {
	content := string([]byte{0xff, 0xfe, 0x00, 0x80}) + "\nplain text line\n"
	report := Analyze(content, Options{})

	if report.Score != 0 {
		t.Errorf("Score = %d, want 0", report.Score)
	}
	if len(report.Findings) != 0 {
		t.Errorf("Findings = %d, want 0", len(report.Findings))
	}
}

func TestAnalyze_ProseSkipsStructural(t *testing.T) {
	content := "df <- read.csv(\"data.csv\")\n"
	report := Analyze(content, Options{Kind: KindProse})

	if n := len(report.ByCategory()[rules.CategoryGenericVariables]); n != 0 {
		t.Errorf("generic_variables findings in prose = %d, want 0", n)
	}
}

func TestAnalyze_UniqueIdentifierScoring(t *testing.T) {
	repeated := Analyze("df <- 1\ndf <- 2\ndf <- 3\n", Options{Kind: KindCode})
	single := Analyze("df <- 1\n", Options{Kind: KindCode})

	if repeated.Score != single.Score {
		t.Errorf("repeated identifier score = %d, single = %d; unique names should count once",
			repeated.Score, single.Score)
	}
	// Every occurrence still appears as a finding.
	if n := len(repeated.ByCategory()[rules.CategoryGenericVariables]); n != 3 {
		t.Errorf("generic_variables findings = %d, want 3", n)
	}
}

func TestAnalyze_ScoreClamped(t *testing.T) {
	content := strings.Repeat("We delve into the ever-evolving landscape. ", 20)
	report := Analyze(content, Options{})
	if report.Score > 100 {
		t.Errorf("Score = %d, want <= 100", report.Score)
	}
}

func TestAnalyzeFile_Missing(t *testing.T) {
	_, err := AnalyzeFile(filepath.Join(t.TempDir(), "missing.md"), Options{})
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestAnalyzeFile_SetsPathAndKind(t *testing.T) {
	path := writeTempFile(t, "doc.md", "We leverage tools.\n")
	report, err := AnalyzeFile(path, Options{})
	if err != nil {
		t.Fatalf("AnalyzeFile error: %v", err)
	}
	if report.Input.Path != path {
		t.Errorf("Input.Path = %q, want %q", report.Input.Path, path)
	}
	if report.Input.Kind != KindProse {
		t.Errorf("Input.Kind = %q, want %q", report.Input.Kind, KindProse)
	}
}

func TestKindForPath(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"notes.md", KindProse},
		{"README", KindProse},
		{"report.txt", KindProse},
		{"main.go", KindCode},
		{"script.py", KindCode},
		{"analysis.R", KindCode},
		{"model.r", KindCode},
		{"app.ts", KindCode},
	}
	for _, tt := range tests {
		if got := KindForPath(tt.path); got != tt.want {
			t.Errorf("KindForPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestVerdictFor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Low slop"},
		{19, "Low slop"},
		{20, "Moderate slop"},
		{49, "Moderate slop"},
		{50, "High slop"},
		{100, "High slop"},
	}
	for _, tt := range tests {
		if got := VerdictFor(tt.score); got != tt.want {
			t.Errorf("VerdictFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

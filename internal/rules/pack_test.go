package rules

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPack_Empty(t *testing.T) {
	pack, err := LoadPack("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pack != nil {
		t.Error("expected nil pack for empty path")
	}
}

func TestLoadPack_NotFound(t *testing.T) {
	_, err := LoadPack("/nonexistent/path/rules.json")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoadPack_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadPack(path)
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadPack_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.json")
	content := `{
		"categoryWeights": {"buzzwords": 9},
		"rules": [
			{"name": "corp-speak", "category": "buzzwords", "pattern": "\\bvisionary\\b", "severity": 2, "replacement": "notable"}
		]
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	pack, err := LoadPack(path)
	if err != nil {
		t.Fatalf("LoadPack error: %v", err)
	}
	if pack == nil {
		t.Fatal("expected non-nil pack")
	}
	if pack.CategoryWeights["buzzwords"] != 9 {
		t.Errorf("CategoryWeights[buzzwords] = %d, want 9", pack.CategoryWeights["buzzwords"])
	}
	if len(pack.Rules) != 1 {
		t.Fatalf("Rules = %d, want 1", len(pack.Rules))
	}
	if pack.Rules[0].Name != "corp-speak" {
		t.Errorf("Rules[0].Name = %q, want %q", pack.Rules[0].Name, "corp-speak")
	}
}

func TestWithPack_Nil(t *testing.T) {
	c := Default()
	merged, err := c.WithPack(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if merged != c {
		t.Error("nil pack should return the receiver")
	}
}

func TestWithPack_AppendsAndOverrides(t *testing.T) {
	c := Default()
	base := len(c.Rules(CategoryBuzzwords))

	pack := &Pack{
		CategoryWeights: map[string]int{"buzzwords": 9},
		Rules: []PackRule{
			{Name: "corp-speak", Category: "buzzwords", Pattern: `\bvisionary\b`, Replacement: "notable"},
		},
	}
	merged, err := c.WithPack(pack)
	if err != nil {
		t.Fatalf("WithPack error: %v", err)
	}

	if got := len(merged.Rules(CategoryBuzzwords)); got != base+1 {
		t.Errorf("merged buzzword rules = %d, want %d", got, base+1)
	}
	if merged.Weight(CategoryBuzzwords) != 9 {
		t.Errorf("merged buzzwords weight = %d, want 9", merged.Weight(CategoryBuzzwords))
	}

	// Severity defaults to 1 when unset.
	appended := merged.Rules(CategoryBuzzwords)[base]
	if appended.Severity != 1 {
		t.Errorf("appended severity = %d, want 1", appended.Severity)
	}

	// The original catalog is untouched.
	if len(c.Rules(CategoryBuzzwords)) != base {
		t.Error("WithPack modified the receiver")
	}
	if c.Weight(CategoryBuzzwords) == 9 {
		t.Error("WithPack modified the receiver's weights")
	}
}

func TestWithPack_UnknownCategory(t *testing.T) {
	pack := &Pack{
		Rules: []PackRule{{Name: "x", Category: "bogus", Pattern: "x"}},
	}
	if _, err := Default().WithPack(pack); err == nil {
		t.Error("expected error for unknown category")
	}

	pack = &Pack{CategoryWeights: map[string]int{"bogus": 3}}
	if _, err := Default().WithPack(pack); err == nil {
		t.Error("expected error for unknown weight category")
	}
}

func TestWithPack_InvalidPattern(t *testing.T) {
	pack := &Pack{
		Rules: []PackRule{{Name: "x", Category: "buzzwords", Pattern: "("}},
	}
	if _, err := Default().WithPack(pack); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

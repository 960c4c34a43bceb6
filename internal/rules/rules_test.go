package rules

import (
	"strings"
	"testing"
)

func TestCategories_Order(t *testing.T) {
	cats := Categories()
	if len(cats) != 9 {
		t.Fatalf("Categories() = %d entries, want 9", len(cats))
	}
	if cats[0] != CategoryHighRisk {
		t.Errorf("first category = %s, want %s", cats[0], CategoryHighRisk)
	}
}

func TestCategory_Valid(t *testing.T) {
	for _, cat := range Categories() {
		if !cat.Valid() {
			t.Errorf("category %s should be valid", cat)
		}
	}
	if Category("nonsense").Valid() {
		t.Error("unknown category should not be valid")
	}
}

func TestCategory_Structural(t *testing.T) {
	tests := []struct {
		cat  Category
		want bool
	}{
		{CategoryHighRisk, false},
		{CategoryBuzzwords, false},
		{CategoryMetaCommentary, false},
		{CategoryWordyPhrases, false},
		{CategoryTransitionWords, false},
		{CategoryGenericVariables, true},
		{CategoryGenericFunctions, true},
		{CategoryObviousComments, true},
		{CategorySingleStepChains, true},
	}
	for _, tt := range tests {
		if got := tt.cat.Structural(); got != tt.want {
			t.Errorf("%s.Structural() = %v, want %v", tt.cat, got, tt.want)
		}
	}
}

func TestDefault_EveryCategoryPopulated(t *testing.T) {
	c := Default()
	for _, cat := range Categories() {
		if len(c.Rules(cat)) == 0 {
			t.Errorf("category %s has no rules", cat)
		}
		if c.Weight(cat) <= 0 {
			t.Errorf("category %s has no weight", cat)
		}
	}
}

func TestDefault_RuleInvariants(t *testing.T) {
	c := Default()
	seen := make(map[string]bool)
	for _, r := range c.All() {
		if r.Name == "" {
			t.Errorf("rule in %s has empty name", r.Category)
		}
		if seen[r.Name] {
			t.Errorf("duplicate rule name: %s", r.Name)
		}
		seen[r.Name] = true
		if r.Severity < 1 {
			t.Errorf("rule %s: severity %d < 1", r.Name, r.Severity)
		}
		if r.Aggressive && r.Category != CategoryTransitionWords {
			t.Errorf("rule %s: aggressive flag outside transition_words", r.Name)
		}
	}
}

func TestDefault_ReplacementsAreLowercase(t *testing.T) {
	c := Default()
	for _, cat := range []Category{CategoryBuzzwords, CategoryWordyPhrases} {
		for _, r := range c.Rules(cat) {
			if r.Replacement == "" {
				t.Errorf("rule %s: substitution rule without replacement", r.Name)
				continue
			}
			if r.Replacement != strings.ToLower(r.Replacement) {
				t.Errorf("rule %s: replacement %q is not lowercase", r.Name, r.Replacement)
			}
		}
	}
}

// No replacement text may re-match any rule in the catalog, or cleaning would
// not be idempotent.
func TestDefault_ReplacementsDoNotReMatch(t *testing.T) {
	c := Default()
	all := c.All()
	for _, r := range all {
		if r.Replacement == "" || strings.Contains(r.Replacement, "$") {
			continue
		}
		for _, other := range all {
			if other.Category.Structural() {
				continue
			}
			if other.Pattern.MatchString(r.Replacement) {
				t.Errorf("replacement %q of rule %s re-matches rule %s", r.Replacement, r.Name, other.Name)
			}
		}
	}
}

func TestHighRiskRules_ConsumeTrailingSpace(t *testing.T) {
	c := Default()
	var delve *Rule
	for i, r := range c.Rules(CategoryHighRisk) {
		if r.Name == "delve-into" {
			delve = &c.Rules(CategoryHighRisk)[i]
		}
	}
	if delve == nil {
		t.Fatal("delve-into rule missing")
	}
	got := delve.Pattern.FindString("We delve into the details.")
	if got != "delve into " {
		t.Errorf("delve-into matched %q, want %q", got, "delve into ")
	}
}

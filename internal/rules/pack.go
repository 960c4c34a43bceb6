package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

// Pack represents a custom rules pack loaded from --rules.
type Pack struct {
	CategoryWeights map[string]int `json:"categoryWeights,omitempty"`
	Rules           []PackRule     `json:"rules,omitempty"`
}

// PackRule is a single user-supplied rule in source form.
type PackRule struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Pattern     string `json:"pattern"`
	Severity    int    `json:"severity,omitempty"`
	Replacement string `json:"replacement,omitempty"`
	Aggressive  bool   `json:"aggressive,omitempty"`
}

// LoadPack loads a rules pack from disk. Returns nil Pack and nil error if
// path is empty.
func LoadPack(path string) (*Pack, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	var pack Pack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}
	return &pack, nil
}

// WithPack returns a new catalog with the pack's rules appended to their
// categories and its weight overrides applied. The receiver is not modified.
// A nil pack returns the receiver unchanged.
func (c *Catalog) WithPack(pack *Pack) (*Catalog, error) {
	if pack == nil {
		return c, nil
	}

	merged := &Catalog{
		rules:   make(map[Category][]Rule, len(c.rules)),
		weights: make(map[Category]int, len(c.weights)),
	}
	for cat, rs := range c.rules {
		merged.rules[cat] = append([]Rule(nil), rs...)
	}
	for cat, w := range c.weights {
		merged.weights[cat] = w
	}

	for name, weight := range pack.CategoryWeights {
		cat := Category(name)
		if !cat.Valid() {
			return nil, fmt.Errorf("unknown category in weight override: %s", name)
		}
		if weight < 0 {
			return nil, fmt.Errorf("negative weight for category %s", name)
		}
		merged.weights[cat] = weight
	}

	for i, pr := range pack.Rules {
		cat := Category(pr.Category)
		if !cat.Valid() {
			return nil, fmt.Errorf("rule %d (%s): unknown category %q", i, pr.Name, pr.Category)
		}
		re, err := regexp.Compile(pr.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): invalid pattern: %w", i, pr.Name, err)
		}
		severity := pr.Severity
		if severity <= 0 {
			severity = 1
		}
		merged.rules[cat] = append(merged.rules[cat], Rule{
			Name:        pr.Name,
			Category:    cat,
			Pattern:     re,
			Severity:    severity,
			Replacement: pr.Replacement,
			Aggressive:  pr.Aggressive,
		})
	}

	return merged, nil
}

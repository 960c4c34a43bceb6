package clean

import (
	"fmt"
	"os"

	"github.com/dshills/slopcheck/internal/rules"
)

// passOrder is the fixed cleaning order. Later passes see the output of
// earlier ones, so order is part of the contract: deleting a high-risk phrase
// can leave spacing that a later pattern must tolerate rather than re-match.
var passOrder = []rules.Category{
	rules.CategoryHighRisk,
	rules.CategoryWordyPhrases,
	rules.CategoryBuzzwords,
	rules.CategoryMetaCommentary,
}

// Options control a single cleaning run.
type Options struct {
	// Aggressive additionally strips transition words.
	Aggressive bool
	// Catalog overrides the rule catalog. Nil means the built-in default.
	Catalog *rules.Catalog
}

// Clean applies the catalog's substitutions and deletions to text and returns
// the transformed result. Deletions consume the matched span with its
// trailing whitespace; substitutions are fixed lowercase strings and sentence
// starts are not re-capitalized. Cleaning its own output is a no-op.
func Clean(text string, opts Options) string {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = rules.Default()
	}

	order := passOrder
	if opts.Aggressive {
		order = append(append([]rules.Category{}, passOrder...), rules.CategoryTransitionWords)
	}

	for _, cat := range order {
		for _, rule := range catalog.Rules(cat) {
			if rule.Aggressive && !opts.Aggressive {
				continue
			}
			text = rule.Pattern.ReplaceAllString(text, rule.Replacement)
		}
	}
	return text
}

// File reads a document from disk and returns the cleaned text. The file on
// disk is not modified; the caller decides whether to write the result back.
func File(path string, opts Options) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return Clean(string(data), opts), nil
}
